package api

import (
	"bytes"
	"encoding/json"
)

// DriverResponse is the reply envelope of the drivers endpoint. Result
// and Error are mutually exclusive in practice, keyed off Success.
type DriverResponse struct {
	Success bool          `json:"success"`
	Result  *DriverResult `json:"result,omitempty"`
	Error   *DriverError  `json:"error,omitempty"`
}

// DriverResult carries the assistant message and the raw usage payload.
// Both content and usage vary per driver, so they stay raw until
// collapsed by Text and the usage normaliser.
type DriverResult struct {
	Message DriverMessage   `json:"message"`
	Usage   json.RawMessage `json:"usage,omitempty"`
}

// DriverMessage is the assistant turn; content is either a plain string
// or a list of {text} parts depending on the upstream provider.
type DriverMessage struct {
	Content json.RawMessage `json:"content"`
}

// DriverError is the server-reported failure payload.
type DriverError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Text collapses the polymorphic content field: the string form is
// returned directly, a parts list yields its first element's text, and
// anything else is the empty string.
func (r *DriverResult) Text() string {
	raw := bytes.TrimSpace(r.Message.Content)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '[':
		var parts []struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(raw, &parts); err != nil || len(parts) == 0 {
			return ""
		}
		return parts[0].Text
	default:
		return ""
	}
}
