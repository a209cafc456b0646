package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Text is a string field that tolerates numeric JSON values. The backend is
// inconsistent about counts such as totalPosts, sending either 120 or "120".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*t = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return string(t) }

// Int is the numeric value of t, or 0 when t is not an integer.
func (t Text) Int() int {
	n, err := strconv.Atoi(strings.TrimSpace(string(t)))
	if err != nil {
		return 0
	}
	return n
}

// DateOnly truncates an ISO-8601 timestamp to its date part:
// "2026-03-01T00:00:00.000Z" becomes "2026-03-01". Values without a time part
// are returned unchanged.
func DateOnly(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}
