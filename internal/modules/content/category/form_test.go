package category

import (
	"testing"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/pkg/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSlugFollowsName(t *testing.T) {
	f := NewCreateForm()
	assert.True(t, f.IsActive)

	f.Apply(Values{Name: "Latest Jobs"})
	assert.Equal(t, "latest-jobs", f.Slug)

	f.Apply(Values{Name: "Latest Jobs", Slug: "jobs"})
	assert.Equal(t, "latest-jobs", f.Slug, "create mode always derives from the name")

	f.Apply(Values{Name: "Admit Cards", Slug: "latest-jobs"})
	assert.Equal(t, "admit-cards", f.Slug, "a slug carried over from an earlier round-trip is replaced")
}

func TestEditRejectsMalformedSlug(t *testing.T) {
	f := NewEditForm(&models.Category{ID: "c1", Name: "Result", Slug: "result"})
	f.Apply(Values{Name: "Result", Slug: "Not A Slug!!"})
	require.Error(t, f.Validate())
	assert.Equal(t, form.InvalidSlug, f.Errors.Get("slug"))

	f.Apply(Values{Name: "Result", Slug: " results-2026 "})
	assert.NoError(t, f.Validate())
	assert.Equal(t, "results-2026", f.Slug)
}

func TestEditKeepsSlug(t *testing.T) {
	f := NewEditForm(&models.Category{ID: "c1", Name: "Result", Slug: "result"})
	f.SetName("Results 2026")
	assert.Equal(t, "result", f.Slug)
}

func TestApplyParsesFields(t *testing.T) {
	f := NewCreateForm()
	f.Apply(Values{Name: "Admit Card", DisplayOrder: "3", IsActive: "", PrimaryActionLabel: "Download"})
	assert.Equal(t, 3, f.DisplayOrder)
	assert.False(t, f.IsActive)

	p := f.Payload()
	assert.Equal(t, Payload{Name: "Admit Card", Slug: "admit-card", DisplayOrder: 3, PrimaryActionLabel: "Download"}, p)
}

func TestValidate(t *testing.T) {
	f := NewCreateForm()
	require.Error(t, f.Validate())
	assert.Equal(t, "Name is required", f.Errors.Get("name"))
	assert.Equal(t, "Slug is required", f.Errors.Get("slug"))

	f.Apply(Values{Name: "!!!"})
	require.Error(t, f.Validate())
	assert.Empty(t, f.Errors.Get("name"))
	assert.Equal(t, "Slug is required", f.Errors.Get("slug"))
}

func TestFilter(t *testing.T) {
	cats := []models.Category{
		{Name: "Latest Jobs", Slug: "latest-jobs"},
		{Name: "Admit Card", Slug: "admit-card"},
		{Name: "Result", Slug: "result"},
	}
	assert.Len(t, Filter(cats, ""), 3)
	assert.Len(t, Filter(cats, "  JOBS "), 1)
	assert.Len(t, Filter(cats, "card"), 1)
	assert.Empty(t, Filter(cats, "syllabus"))
}
