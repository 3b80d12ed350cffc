package wordy

import (
	"context"
	"time"
)

func (c *Client) documentParams(documentID ID) Params {
	params := c.customerParams()
	params["id"] = documentID.String()
	return params
}

// DocumentInfo returns the document with its type and status.
func (c *Client) DocumentInfo(ctx context.Context, documentID ID) (*DocumentResult, error) {
	return call[DocumentResult](ctx, c, "document/info", "/document/info/", c.documentParams(documentID), true)
}

// DocumentDownload fetches the content of a document.
//
// The shape of a download depends on the document type, so the document is
// probed with document/info first. File documents come back as raw bytes,
// text documents as a decoded JSON result. When the probe fails or reports an
// unknown type only the probe result is returned.
func (c *Client) DocumentDownload(ctx context.Context, documentID ID) (*DownloadResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	params := c.documentParams(documentID)

	info, err := callLocked[DocumentResult](ctx, c, "document/info", "/document/info/", params, true)
	if err != nil {
		return nil, err
	}

	out := &DownloadResult{Info: info}
	if !info.Success || info.Document == nil {
		return out, nil
	}

	switch info.Document.Type {
	case DocumentText:
		text, err := callLocked[Result](ctx, c, "document/download", "/document/download/", params, true)
		if err != nil {
			return nil, err
		}
		out.Type = DocumentText
		out.Text = text

	case DocumentFile:
		start := time.Now()
		resp, err := c.roundTrip(ctx, "document/download", "/document/download/", params, true)
		if err != nil {
			return nil, err
		}
		observeRequest("document/download", outcomeRaw, time.Since(start))
		out.Type = DocumentFile
		out.Content = resp.Body

	default:
		c.logger.Warn("unknown document type, skipping download",
			"document_id", documentID.String(),
			"type", string(info.Document.Type),
		)
	}

	return out, nil
}

// DocumentCancel cancels a document that was not edited yet.
func (c *Client) DocumentCancel(ctx context.Context, documentID ID) (*DocumentResult, error) {
	return call[DocumentResult](ctx, c, "document/cancel", "/document/cancel/", c.documentParams(documentID), true)
}

// DocumentReedit sends a completed document back to the editor with a message.
func (c *Client) DocumentReedit(ctx context.Context, documentID ID, message string) (*DocumentResult, error) {
	params := c.documentParams(documentID)
	params["message"] = message
	return call[DocumentResult](ctx, c, "document/reedit", "/document/reedit/", params, true)
}
