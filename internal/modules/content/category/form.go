package category

import (
	"strings"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/pkg/form"
	"github.com/dailyexamresult/admin/internal/pkg/slug"
)

const saveFailed = "Failed to save category"

// Form is the create/edit state of one category.
type Form struct {
	ID                 string
	Edit               bool
	Name               string
	Slug               string
	Description        string
	DisplayOrder       int
	IsActive           bool
	PrimaryActionLabel string

	Errors  form.ValidationErrors
	Message string
}

func NewCreateForm() *Form {
	return &Form{IsActive: true, Errors: form.ValidationErrors{}}
}

func NewEditForm(c *models.Category) *Form {
	return &Form{
		ID:                 c.ID,
		Edit:               true,
		Name:               c.Name,
		Slug:               c.Slug,
		Description:        c.Description,
		DisplayOrder:       c.DisplayOrder,
		IsActive:           c.IsActive,
		PrimaryActionLabel: c.PrimaryActionLabel,
		Errors:             form.ValidationErrors{},
	}
}

// SetName updates the name. In create mode the slug follows it.
func (f *Form) SetName(name string) {
	f.Name = name
	if !f.Edit {
		f.Slug = slug.Slugify(name)
	}
}

// Values is the submitted field set.
type Values struct {
	Name               string
	Slug               string
	Description        string
	DisplayOrder       string
	IsActive           string
	PrimaryActionLabel string
}

// Apply copies submitted values onto the form. In create mode the slug is
// always derived from the name; edit mode keeps the submitted slug.
func (f *Form) Apply(v Values) {
	f.SetName(v.Name)
	if f.Edit {
		f.Slug = strings.TrimSpace(v.Slug)
	}
	f.Description = v.Description
	f.DisplayOrder = form.Int(v.DisplayOrder, 0)
	f.IsActive = form.Bool(v.IsActive)
	f.PrimaryActionLabel = v.PrimaryActionLabel
}

// Validate checks the required fields.
func (f *Form) Validate() error {
	f.Errors = form.ValidationErrors{}
	f.Errors.Require("name", f.Name, "Name is required")
	f.Errors.Require("slug", f.Slug, "Slug is required")
	f.Errors.Check("slug", slug.Valid(f.Slug), form.InvalidSlug)
	return f.Errors.Err()
}

func (f *Form) Payload() Payload {
	return Payload{
		Name:               f.Name,
		Slug:               f.Slug,
		Description:        f.Description,
		DisplayOrder:       f.DisplayOrder,
		IsActive:           f.IsActive,
		PrimaryActionLabel: f.PrimaryActionLabel,
	}
}

// SubmitLabel is the primary button text.
func (f *Form) SubmitLabel() string {
	if f.Edit {
		return "Update Category"
	}
	return "Create Category"
}
