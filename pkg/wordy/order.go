package wordy

import (
	"context"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field is one piece of content submitted for editing.
type Field struct {
	Title string
	Type  FieldType
	Value string
}

// notZero rejects "0", which Wordy treats as an empty title or value.
var notZero = validation.NotIn("0").Error("cannot be blank")

// Validate reports why Wordy would reject the field.
func (f Field) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required, notZero),
		validation.Field(&f.Type, validation.Required, validation.In(FieldShortText, FieldLongText, FieldHTML)),
		validation.Field(&f.Value, validation.Required, notZero),
	)
}

// CreateOrder places an order with one document per valid field.
//
// Invalid fields are dropped, not rejected, and the remaining ones are
// numbered from 1. With no fields at all no request is made and the result is
// nil. Metadata is encoded as described on Metadata.
//
// Orders are not idempotent: retrying after a transport error may create the
// order twice.
func (c *Client) CreateOrder(ctx context.Context, brief, languageCode string, fields []Field, metadata Metadata) (*OrderResult, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	params := c.customerParams()
	params["brief"] = brief
	params["language_code"] = languageCode

	dropped := encodeFields(params, fields)
	if dropped > 0 {
		c.logger.Debug("dropped invalid order fields", "dropped", dropped, "kept", len(fields)-dropped)
	}

	if collisions := metadata.encode(params, c.logger); collisions > 0 {
		c.logger.Warn("structured metadata values share the metavalue key, only the last one is sent",
			"overwritten", collisions)
	}

	return call[OrderResult](ctx, c, "order/create", "/order/create/", params, true)
}

// encodeFields adds titleN/typeN/valueN for every valid field and returns how
// many fields were dropped.
func encodeFields(params Params, fields []Field) int {
	idx, dropped := 0, 0
	for _, f := range fields {
		if f.Validate() != nil {
			dropped++
			continue
		}
		idx++
		n := strconv.Itoa(idx)
		params["title"+n] = f.Title
		params["type"+n] = string(f.Type)
		params["value"+n] = f.Value
	}
	return dropped
}
