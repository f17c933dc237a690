package webhook

import (
	"errors"
)

// ErrUnrecognizedPayload means neither the JSON nor the legacy layout yielded a return id.
var ErrUnrecognizedPayload = errors.New("unrecognized return webhook payload")

// Parse tries the structured JSON layout first and falls back to legacy key/value
// text. A body that yields no return id in either layout is rejected so the caller
// can record it as unparsed.
func Parse(topic string, body []byte) (Payload, error) {
	if r, ok := parseReturnV1(topic, body); ok {
		return r, nil
	}
	lt := ParseLegacyText(string(body))
	if lt.ReturnID() == "" {
		return nil, ErrUnrecognizedPayload
	}
	if topic != "" && lt.Fields["topic"] == "" {
		lt.Fields["topic"] = topic
	}
	return lt, nil
}
