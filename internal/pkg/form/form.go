// Package form holds field-level validation results shared by the console forms.
package form

import (
	"sort"
	"strconv"
	"strings"
)

// InvalidSlug is the message for a slug outside [a-z0-9] and single hyphens.
const InvalidSlug = "Slug may only contain lowercase letters, numbers and hyphens"

// ValidationErrors maps a field name to its message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + v[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Require records message for field when value is blank.
func (v ValidationErrors) Require(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		v[field] = message
	}
}

// Check records message for field when ok is false and the field has no
// earlier error.
func (v ValidationErrors) Check(field string, ok bool, message string) {
	if _, seen := v[field]; !ok && !seen {
		v[field] = message
	}
}

// Get returns the message for field, "" when valid.
func (v ValidationErrors) Get(field string) string { return v[field] }

// Err returns v as an error, nil when empty.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Int parses a numeric form value, returning def when blank or invalid.
func Int(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}

// Bool reports whether a checkbox value is set.
func Bool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// Confirmed reports whether a destructive action carries explicit confirmation.
func Confirmed(raw string) bool { return strings.TrimSpace(raw) == "yes" }
