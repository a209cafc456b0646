package layout

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dailyexamresult/admin/internal/models"
)

const displayDate = "02 Jan 2006"

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"add":        func(a, b int) int { return a + b },
		"sub":        func(a, b int) int { return a - b },
		"formatDate": FormatDate,
		"formatTime": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format(displayDate)
		},
		"dateOnly": models.DateOnly,
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"lower":    strings.ToLower,
		"selected": func(a, b string) template.HTMLAttr {
			if a == b {
				return "selected"
			}
			return ""
		},
		"checked": func(v bool) template.HTMLAttr {
			if v {
				return "checked"
			}
			return ""
		},
		"itoa": func(v any) string { return fmt.Sprint(v) },
		"row":  Row,
	}
}

// FormatDate renders an API date (RFC3339 or YYYY-MM-DD) for display.
// Unparsable input is returned unchanged.
func FormatDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(displayDate)
		}
	}
	if d := models.DateOnly(raw); d != raw {
		if t, err := time.Parse(time.DateOnly, d); err == nil {
			return t.Format(displayDate)
		}
	}
	return raw
}

// RowData addresses one repeatable form row.
type RowData struct {
	List  string
	Index int
	Row   any
}

// Row bundles a row with its list name and position for a sub-template.
func Row(list string, index int, row any) RowData {
	return RowData{List: list, Index: index, Row: row}
}
