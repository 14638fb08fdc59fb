package ota

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"

	"hotel-pms/internal/pkg/errs"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeXML  = "application/xml"
)

// NormalizeContentType maps a request content type onto JSON or XML,
// sniffing the body when the header says neither.
func NormalizeContentType(contentType string, body []byte) string {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "json"):
		return ContentTypeJSON
	case strings.Contains(ct, "xml"):
		return ContentTypeXML
	}
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '<' {
		return ContentTypeXML
	}
	return ContentTypeJSON
}

// Decode parses a raw payload into a validated Booking.
func Decode(contentType string, body []byte) (*Booking, error) {
	var report BookingReport
	switch NormalizeContentType(contentType, body) {
	case ContentTypeXML:
		if err := xml.Unmarshal(body, &report); err != nil {
			return nil, errs.Kindf(ErrMalformedPayload, "decode xml: %v", err)
		}
	default:
		if err := json.Unmarshal(body, &report); err != nil {
			return nil, errs.Kindf(ErrMalformedPayload, "decode json: %v", err)
		}
	}
	return FromReport(&report)
}
