package post

import (
	"net/url"
	"strings"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/pkg/form"
	"github.com/dailyexamresult/admin/internal/pkg/slug"
)

const saveFailed = "Failed to save post"

// Repeatable row lists.
const (
	ListImportantDates  = "importantDates"
	ListCategoryVacancy = "categoryWiseVacancy"
	ListPostVacancy     = "postWiseVacancy"
	ListPSTMale         = "physicalStandardTest.male"
	ListPSTFemale       = "physicalStandardTest.female"
	ListPET             = "physicalEfficiencyTest"
)

// Form is the create/edit state of one post. Fields outside the active
// variant are kept and re-rendered hidden so switching categories loses nothing.
type Form struct {
	ID   string
	Edit bool

	Title            string
	Slug             string
	ShortDescription string
	FullDescription  string
	Category         string
	Organization     string
	PostDate         string
	LastDate         string
	Status           string
	ImportantDates   []models.ImportantDate
	Links            models.Links

	AgeLimit                 string
	Fees                     string
	TotalPosts               string
	EducationalQualification string
	CategoryWiseVacancy      []models.CategoryVacancy
	PostWiseVacancy          []models.PostVacancy
	PSTMale                  []models.PhysicalStandard
	PSTFemale                []models.PhysicalStandard
	PhysicalEfficiencyTest   []models.PhysicalEfficiency
	AvailabilityNote         string

	MetaTitle       string
	MetaDescription string

	Categories []models.Category
	Errors     form.ValidationErrors
	Message    string
	Banner     string
}

// NewCreateForm returns the blank defaults: draft status and one empty date row.
func NewCreateForm() *Form {
	return &Form{
		Status:         models.StatusDraft,
		ImportantDates: []models.ImportantDate{{}},
		Errors:         form.ValidationErrors{},
	}
}

// NewEditForm loads p, truncating dates to YYYY-MM-DD and flattening the
// category reference to its id.
func NewEditForm(p *models.Post) *Form {
	f := &Form{
		ID:               p.ID,
		Edit:             true,
		Title:            p.Title,
		Slug:             p.Slug,
		ShortDescription: p.ShortDescription,
		FullDescription:  p.FullDescription,
		Category:         p.Category.ID,
		Organization:     p.Organization,
		PostDate:         models.DateOnly(p.PostDate),
		LastDate:         models.DateOnly(p.LastDate),
		Status:           p.Status,
		Links: models.Links{
			ApplyLink:       p.ActionLink(),
			NotificationPdf: p.NotificationLink(),
			SyllabusPdf:     p.Links.SyllabusPdf,
		},
		AgeLimit:                 p.AgeLimit,
		Fees:                     p.Fees,
		TotalPosts:               p.TotalPosts.String(),
		EducationalQualification: p.EducationalQualification,
		CategoryWiseVacancy:      append([]models.CategoryVacancy(nil), p.CategoryWiseVacancy...),
		PostWiseVacancy:          append([]models.PostVacancy(nil), p.PostWiseVacancy...),
		PSTMale:                  append([]models.PhysicalStandard(nil), p.PhysicalStandardTest.Male...),
		PSTFemale:                append([]models.PhysicalStandard(nil), p.PhysicalStandardTest.Female...),
		PhysicalEfficiencyTest:   append([]models.PhysicalEfficiency(nil), p.PhysicalEfficiencyTest...),
		AvailabilityNote:         p.AvailabilityNote,
		MetaTitle:                p.MetaTitle,
		MetaDescription:          p.MetaDescription,
		Errors:                   form.ValidationErrors{},
	}
	if f.Status == "" {
		f.Status = models.StatusDraft
	}
	for _, d := range p.ImportantDates {
		f.ImportantDates = append(f.ImportantDates, models.ImportantDate{Label: d.Label, Date: models.DateOnly(d.Date)})
	}
	if p.Category.Category != nil {
		f.Categories = []models.Category{*p.Category.Category}
	}
	return f
}

// SetTitle updates the title. In create mode the slug follows it.
func (f *Form) SetTitle(title string) {
	f.Title = title
	if !f.Edit {
		f.Slug = slug.Slugify(title)
	}
}

// SelectedCategory returns the chosen category among the loaded options.
func (f *Form) SelectedCategory() *models.Category {
	for i := range f.Categories {
		if f.Categories[i].ID == f.Category {
			return &f.Categories[i]
		}
	}
	return nil
}

// Variant is decided by the selected category's slug.
func (f *Form) Variant() Variant {
	if c := f.SelectedCategory(); c != nil {
		return VariantFor(c.Slug)
	}
	return genericVariant
}

// PrimaryLinkLabel labels the apply link field.
func (f *Form) PrimaryLinkLabel() string { return f.SelectedCategory().ActionLabel() }

func (f *Form) SubmitLabel() string {
	if f.Edit {
		return "Update Post"
	}
	return "Create Post"
}

// Apply copies a submitted form onto f. In create mode the slug is always
// derived from the title; edit mode keeps the submitted slug.
func (f *Form) Apply(values url.Values) {
	f.SetTitle(values.Get("title"))
	if f.Edit {
		f.Slug = strings.TrimSpace(values.Get("slug"))
	}
	f.ShortDescription = values.Get("shortDescription")
	f.FullDescription = values.Get("fullDescription")
	f.Category = values.Get("category")
	f.Organization = values.Get("organization")
	f.PostDate = values.Get("postDate")
	f.LastDate = values.Get("lastDate")
	f.Status = values.Get("status")
	if f.Status == "" {
		f.Status = models.StatusDraft
	}
	f.Links = models.Links{
		ApplyLink:       values.Get("links.applyLink"),
		NotificationPdf: values.Get("links.notificationPdf"),
		SyllabusPdf:     values.Get("links.syllabusPdf"),
	}
	f.AgeLimit = values.Get(FieldAgeLimit)
	f.Fees = values.Get(FieldFees)
	f.TotalPosts = values.Get(FieldTotalPosts)
	f.EducationalQualification = values.Get(FieldEducationalQualification)
	f.AvailabilityNote = values.Get(FieldAvailabilityNote)
	f.MetaTitle = values.Get("metaTitle")
	f.MetaDescription = values.Get("metaDescription")

	f.ImportantDates = nil
	for _, r := range form.Rows(values, ListImportantDates) {
		f.ImportantDates = append(f.ImportantDates, models.ImportantDate{Label: r["label"], Date: r["date"]})
	}
	f.CategoryWiseVacancy = nil
	for _, r := range form.Rows(values, ListCategoryVacancy) {
		f.CategoryWiseVacancy = append(f.CategoryWiseVacancy, models.CategoryVacancy{Category: r["category"], Posts: models.Text(r["posts"])})
	}
	f.PostWiseVacancy = nil
	for _, r := range form.Rows(values, ListPostVacancy) {
		f.PostWiseVacancy = append(f.PostWiseVacancy, models.PostVacancy{
			PostName:    r["postName"],
			TotalPosts:  models.Text(r["totalPosts"]),
			Eligibility: r["eligibility"],
		})
	}
	f.PSTMale = standardRows(values, ListPSTMale)
	f.PSTFemale = standardRows(values, ListPSTFemale)
	f.PhysicalEfficiencyTest = nil
	for _, r := range form.Rows(values, ListPET) {
		f.PhysicalEfficiencyTest = append(f.PhysicalEfficiencyTest, models.PhysicalEfficiency{
			Event:  r["event"],
			Male:   r["male"],
			Female: r["female"],
		})
	}
}

func standardRows(values url.Values, list string) []models.PhysicalStandard {
	var out []models.PhysicalStandard
	for _, r := range form.Rows(values, list) {
		out = append(out, models.PhysicalStandard{
			Category: r["category"],
			Height:   r["height"],
			Chest:    r["chest"],
			Weight:   r["weight"],
		})
	}
	return out
}

// AddRow appends an empty row to list.
func (f *Form) AddRow(list string) bool {
	switch list {
	case ListImportantDates:
		f.ImportantDates = append(f.ImportantDates, models.ImportantDate{})
	case ListCategoryVacancy:
		f.CategoryWiseVacancy = append(f.CategoryWiseVacancy, models.CategoryVacancy{})
	case ListPostVacancy:
		f.PostWiseVacancy = append(f.PostWiseVacancy, models.PostVacancy{})
	case ListPSTMale:
		f.PSTMale = append(f.PSTMale, models.PhysicalStandard{})
	case ListPSTFemale:
		f.PSTFemale = append(f.PSTFemale, models.PhysicalStandard{})
	case ListPET:
		f.PhysicalEfficiencyTest = append(f.PhysicalEfficiencyTest, models.PhysicalEfficiency{})
	default:
		return false
	}
	return true
}

// RemoveRow deletes row i of list. Out-of-range indexes are ignored.
func (f *Form) RemoveRow(list string, i int) bool {
	switch list {
	case ListImportantDates:
		f.ImportantDates = removeAt(f.ImportantDates, i)
	case ListCategoryVacancy:
		f.CategoryWiseVacancy = removeAt(f.CategoryWiseVacancy, i)
	case ListPostVacancy:
		f.PostWiseVacancy = removeAt(f.PostWiseVacancy, i)
	case ListPSTMale:
		f.PSTMale = removeAt(f.PSTMale, i)
	case ListPSTFemale:
		f.PSTFemale = removeAt(f.PSTFemale, i)
	case ListPET:
		f.PhysicalEfficiencyTest = removeAt(f.PhysicalEfficiencyTest, i)
	default:
		return false
	}
	return true
}

func removeAt[T any](rows []T, i int) []T {
	if i < 0 || i >= len(rows) {
		return rows
	}
	return append(rows[:i:i], rows[i+1:]...)
}

// Validate checks the required fields. Row sub-fields are optional.
func (f *Form) Validate() error {
	f.Errors = form.ValidationErrors{}
	f.Errors.Require("title", f.Title, "Title is required")
	f.Errors.Require("slug", f.Slug, "Slug is required")
	f.Errors.Check("slug", slug.Valid(f.Slug), form.InvalidSlug)
	f.Errors.Require("category", f.Category, "Category is required")
	return f.Errors.Err()
}

// Payload is the submission body: every common field plus the fields of the
// active variant.
func (f *Form) Payload() map[string]any {
	p := map[string]any{
		"title":            strings.TrimSpace(f.Title),
		"slug":             f.Slug,
		"shortDescription": f.ShortDescription,
		"fullDescription":  f.FullDescription,
		"category":         f.Category,
		"organization":     f.Organization,
		"postDate":         dateValue(f.PostDate),
		"lastDate":         dateValue(f.LastDate),
		"status":           f.Status,
		"importantDates":   nonNil(f.ImportantDates),
		"links":            f.Links,
		"metaTitle":        f.MetaTitle,
		"metaDescription":  f.MetaDescription,
	}

	v := f.Variant()
	for _, field := range v.Fields {
		switch field {
		case FieldAgeLimit:
			p[field] = f.AgeLimit
		case FieldFees:
			p[field] = f.Fees
		case FieldTotalPosts:
			p[field] = f.TotalPosts
		case FieldEducationalQualification:
			p[field] = f.EducationalQualification
		case FieldCategoryWiseVacancy:
			p[field] = nonNil(f.CategoryWiseVacancy)
		case FieldPostWiseVacancy:
			p[field] = nonNil(f.PostWiseVacancy)
		case FieldPhysicalStandardTest:
			p[field] = models.PhysicalStandardTest{Male: nonNil(f.PSTMale), Female: nonNil(f.PSTFemale)}
		case FieldPhysicalEfficiencyTest:
			p[field] = nonNil(f.PhysicalEfficiencyTest)
		case FieldAvailabilityNote:
			p[field] = f.AvailabilityNote
		}
	}
	return p
}

func dateValue(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
