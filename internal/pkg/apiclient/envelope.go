package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Envelope is the standard backend response wrapper.
type Envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Decode unmarshals the data field of a wrapped response into out. Bodies
// without a usable data field are decoded whole, so unwrapped endpoints work
// too. An explicit success:false is reported as an error.
func Decode(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] != '{' {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(trimmed, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	var env Envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if env.Success != nil && !*env.Success {
		return &APIError{Status: 200, Message: env.Message}
	}
	if out == nil {
		return nil
	}
	payload := trimmed
	if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		payload = env.Data
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// RouteLabel collapses id-like path segments so metrics keep a bounded label
// set: "/admin/posts/65f0c1.../edit" becomes "/admin/posts/:id/edit".
func RouteLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if looksLikeID(s) {
			segs[i] = ":id"
		}
	}
	return strings.Join(segs, "/")
}

func looksLikeID(s string) bool {
	if len(s) < 8 {
		if s == "" {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') || r == '-':
		default:
			return false
		}
	}
	return digits > 0
}
