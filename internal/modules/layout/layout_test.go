package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func activeNames(items []NavItem) []string {
	var out []string
	for _, it := range items {
		if it.Active {
			out = append(out, it.Name)
		}
	}
	return out
}

func TestNavigationActive(t *testing.T) {
	cases := map[string][]string{
		"/dashboard":                {"Overview"},
		"/dashboard/":               {"Overview"},
		"/dashboard/posts":          {"Posts"},
		"/dashboard/posts/abc/edit": {"Posts"},
		"/dashboard/categories":     {"Categories"},
		"/dashboard/pages/1/edit":   {"Pages"},
		"/dashboard/media":          {"Media"},
		"/dashboard/postsx":         nil,
		"/login":                    nil,
	}
	for path, want := range cases {
		assert.Equal(t, want, activeNames(Navigation(path)), path)
	}
}

func TestNavigationOrder(t *testing.T) {
	items := Navigation("/dashboard")
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	assert.Equal(t, []string{"Overview", "Categories", "Posts", "Pages", "Media"}, names)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05 Mar 2026", FormatDate("2026-03-05"))
	assert.Equal(t, "05 Mar 2026", FormatDate("2026-03-05T10:00:00.000Z"))
	assert.Equal(t, "-", FormatDate(""))
	assert.Equal(t, "soon", FormatDate("soon"))
}
