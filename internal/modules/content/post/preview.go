package post

import (
	"bytes"
	"html/template"
	"regexp"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	htmlTag = regexp.MustCompile(`(?i)<(p|div|br|h[1-6]|ul|ol|li|table|strong|em|span|a)\b`)
	md      = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
)

// Description renders a post body. Rich-text HTML from the editor passes
// through; anything else is treated as Markdown.
func Description(src string) template.HTML {
	if src == "" {
		return ""
	}
	if htmlTag.MatchString(src) {
		return template.HTML(src)
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// Preview is the read-only view of one post.
type Preview struct {
	Post        *models.Post
	Body        template.HTML
	ActionLabel string
	ActionLink  string
	Notice      string
	Variant     Variant
}

func NewPreview(p *models.Post) *Preview {
	return &Preview{
		Post:        p,
		Body:        Description(p.FullDescription),
		ActionLabel: p.Category.Category.ActionLabel(),
		ActionLink:  p.ActionLink(),
		Notice:      p.NotificationLink(),
		Variant:     VariantFor(categorySlug(p)),
	}
}

func categorySlug(p *models.Post) string {
	if p.Category.Category == nil {
		return ""
	}
	return p.Category.Category.Slug
}
