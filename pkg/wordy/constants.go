package wordy

// Default endpoints of the production Wordy API v2.
const (
	DefaultEndpoint        = "http://www.wordy.com/api/version/2/"
	DefaultPaymentEndpoint = "http://www.wordy.com/order/new/pay/order_id/"
)

// PaymentStatus is the payment state of an order as reported by Wordy.
type PaymentStatus string

const (
	// PaymentNew means the payment was created and nobody tried to pay yet.
	PaymentNew PaymentStatus = "payment_new"

	// PaymentPending means Wordy is waiting for payment approval, usually while
	// the user is filling in the payment form.
	PaymentPending PaymentStatus = "payment_pending"

	// PaymentCompleted means the payment was received and the documents of the
	// order were placed for editing.
	PaymentCompleted PaymentStatus = "payment_completed"

	// PaymentRefund means the payment was refunded, usually because every
	// document of the order was canceled.
	PaymentRefund PaymentStatus = "payment_refund"
)

// PaymentStatuses returns every known payment status.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentNew, PaymentPending, PaymentCompleted, PaymentRefund}
}

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentNew, PaymentPending, PaymentCompleted, PaymentRefund:
		return true
	}
	return false
}

// DocumentStatus is the editing state of a single document.
type DocumentStatus string

const (
	// DocumentNew is the initial status; it does not change until the order is paid.
	DocumentNew DocumentStatus = "document_new"

	// DocumentOpen means the document is paid and waits for an editor.
	DocumentOpen DocumentStatus = "document_open"

	// DocumentPending means an editor is working on the document.
	DocumentPending DocumentStatus = "document_pending"

	// DocumentCompleted means editing is done and the customer can review it.
	DocumentCompleted DocumentStatus = "document_completed"

	// DocumentReclaimed means the customer asked for the document to be edited again.
	DocumentReclaimed DocumentStatus = "document_reclaimed"

	// DocumentClosed means the customer accepted the edited document.
	DocumentClosed DocumentStatus = "document_closed"

	// DocumentCanceled means the customer canceled the document before editing.
	DocumentCanceled DocumentStatus = "document_canceled"

	// DocumentKilled means Wordy removed the document.
	DocumentKilled DocumentStatus = "document_killed"
)

// DocumentStatuses returns every known document status.
func DocumentStatuses() []DocumentStatus {
	return []DocumentStatus{
		DocumentNew,
		DocumentOpen,
		DocumentPending,
		DocumentCompleted,
		DocumentReclaimed,
		DocumentClosed,
		DocumentCanceled,
		DocumentKilled,
	}
}

// Valid reports whether s is a known document status.
func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentNew, DocumentOpen, DocumentPending, DocumentCompleted,
		DocumentReclaimed, DocumentClosed, DocumentCanceled, DocumentKilled:
		return true
	}
	return false
}

// DocumentType decides the payload shape of a document download.
type DocumentType string

const (
	DocumentText DocumentType = "text"
	DocumentFile DocumentType = "file"
)

// DocumentTypes returns every known document type.
func DocumentTypes() []DocumentType {
	return []DocumentType{DocumentText, DocumentFile}
}

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	return t == DocumentText || t == DocumentFile
}

// FieldType is the content type of an order field.
type FieldType string

const (
	FieldShortText FieldType = "shorttext"
	FieldLongText  FieldType = "longtext"
	FieldHTML      FieldType = "html"
)

// FieldTypes returns every known field type.
func FieldTypes() []FieldType {
	return []FieldType{FieldShortText, FieldLongText, FieldHTML}
}

// Valid reports whether t is a known field type.
func (t FieldType) Valid() bool {
	switch t {
	case FieldShortText, FieldLongText, FieldHTML:
		return true
	}
	return false
}
