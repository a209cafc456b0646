package pagination

import (
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
)

// LimitOptions are the page sizes offered by list views.
var LimitOptions = []int{50, 100, 150, 200}

// Query holds parsed pagination parameters.
type Query struct {
	Page  int
	Limit int
}

// Meta is the pagination block returned by the backend.
type Meta struct {
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// FromContext extracts page and limit from the request, falling back to the
// defaults for anything unparsable or not offered.
func FromContext(c *gin.Context) Query {
	return Parse(c.Query("page"), c.Query("limit"))
}

// Parse normalizes raw page and limit values.
func Parse(rawPage, rawLimit string) Query {
	page := parseIntOr(rawPage, DefaultPage)
	if page < 1 {
		page = DefaultPage
	}
	return Query{Page: page, Limit: NormalizeLimit(parseIntOr(rawLimit, DefaultLimit))}
}

// NormalizeLimit maps any value outside LimitOptions to DefaultLimit.
func NormalizeLimit(limit int) int {
	if slices.Contains(LimitOptions, limit) {
		return limit
	}
	return DefaultLimit
}

// Clamp keeps page within [1, pages]. Zero pages clamps to 1.
func Clamp(page, pages int) int {
	if pages < 1 {
		pages = 1
	}
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// RowNumber is the 1-based position of the index-th row of page across the
// whole collection.
func RowNumber(page, limit, index int) int {
	return (page-1)*limit + index + 1
}

// Item is one control in a pagination bar.
type Item struct {
	Number   int
	Current  bool
	Ellipsis bool
}

// Window lays out the page buttons: the first and last page, two pages on
// each side of the current one, and an ellipsis wherever pages are skipped.
func Window(page, pages int) []Item {
	if pages < 1 {
		return nil
	}
	items := make([]Item, 0, 9)
	for p := 1; p <= pages; p++ {
		if p == 1 || p == pages || (p >= page-2 && p <= page+2) {
			items = append(items, Item{Number: p, Current: p == page})
			continue
		}
		if (p == 2 && page > 4) || (p == pages-1 && page < pages-3) {
			items = append(items, Item{Ellipsis: true})
		}
	}
	return items
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
