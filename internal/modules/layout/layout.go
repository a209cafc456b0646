package layout

import (
	"strings"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/modules/auth"
	"github.com/gin-gonic/gin"
)

// NavItem is one sidebar entry.
type NavItem struct {
	Name   string
	Href   string
	Active bool
}

var navigation = []NavItem{
	{Name: "Overview", Href: "/dashboard"},
	{Name: "Categories", Href: "/dashboard/categories"},
	{Name: "Posts", Href: "/dashboard/posts"},
	{Name: "Pages", Href: "/dashboard/pages"},
	{Name: "Media", Href: "/dashboard/media"},
}

// Navigation marks the entry owning path. The overview entry only matches
// /dashboard itself; every other entry also owns its sub-paths.
func Navigation(path string) []NavItem {
	path = strings.TrimRight(path, "/")
	items := make([]NavItem, len(navigation))
	for i, item := range navigation {
		item.Active = path == item.Href ||
			(item.Href != "/dashboard" && strings.HasPrefix(path, item.Href+"/"))
		items[i] = item
	}
	return items
}

// View is the data every full page template receives.
type View struct {
	Title string
	Nav   []NavItem
	User  *models.User
	Flash string
	Error string
	Data  any
}

// NewView builds the shell for the current request.
func NewView(c *gin.Context, title string, data any) *View {
	return &View{
		Title: title,
		Nav:   Navigation(c.Request.URL.Path),
		User:  auth.FromContext(c).GetUser(c.Request.Context()),
		Data:  data,
	}
}

// Render writes a full page wrapped in the dashboard shell.
func Render(c *gin.Context, status int, name, title string, data any) {
	c.HTML(status, name, NewView(c, title, data))
}

// RenderView writes v with name.
func RenderView(c *gin.Context, status int, name string, v *View) {
	c.HTML(status, name, v)
}

// IsFragment reports whether the request asks for a partial update.
func IsFragment(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// Confirm is the data of the shared confirmation page.
type Confirm struct {
	Message string
	Action  string
	Cancel  string
}
