package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRefAcceptsIDOrObject(t *testing.T) {
	var byID Post
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"p1","category":"c1"}`), &byID))
	assert.Equal(t, "c1", byID.Category.ID)
	assert.Nil(t, byID.Category.Category)

	var populated Post
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"p1","category":{"_id":"c2","name":"Result","slug":"result"}}`), &populated))
	assert.Equal(t, "c2", populated.Category.ID)
	assert.Equal(t, "Result", populated.Category.Name())

	var none Post
	require.NoError(t, json.Unmarshal([]byte(`{"category":null}`), &none))
	assert.Empty(t, none.Category.ID)

	out, err := json.Marshal(populated.Category)
	require.NoError(t, err)
	assert.JSONEq(t, `"c2"`, string(out))
}

func TestTextToleratesNumbers(t *testing.T) {
	var p Post
	require.NoError(t, json.Unmarshal([]byte(`{"totalPosts":120,"postWiseVacancy":[{"postName":"Clerk","totalPosts":"35"}]}`), &p))
	assert.Equal(t, Text("120"), p.TotalPosts)
	assert.Equal(t, 120, p.TotalPosts.Int())
	assert.Equal(t, 35, p.PostWiseVacancy[0].TotalPosts.Int())
	assert.Equal(t, 0, Text("n/a").Int())
}

func TestDateOnly(t *testing.T) {
	assert.Equal(t, "2026-03-01", DateOnly("2026-03-01T00:00:00.000Z"))
	assert.Equal(t, "2026-03-01", DateOnly("2026-03-01"))
	assert.Equal(t, "", DateOnly(""))
}

func TestPostLinkFallbacks(t *testing.T) {
	p := Post{PrimaryActionLink: "https://legacy", NotificationPdf: "https://legacy.pdf"}
	assert.Equal(t, "https://legacy", p.ActionLink())
	assert.Equal(t, "https://legacy.pdf", p.NotificationLink())

	p.Links = Links{ApplyLink: "https://apply", NotificationPdf: "https://n.pdf"}
	assert.Equal(t, "https://apply", p.ActionLink())
	assert.Equal(t, "https://n.pdf", p.NotificationLink())
}

func TestCategoryActionLabel(t *testing.T) {
	var nilCat *Category
	assert.Equal(t, DefaultPrimaryActionLabel, nilCat.ActionLabel())
	assert.Equal(t, DefaultPrimaryActionLabel, (&Category{}).ActionLabel())
	assert.Equal(t, "Download Admit Card", (&Category{PrimaryActionLabel: "Download Admit Card"}).ActionLabel())
}

func TestBulkDetail(t *testing.T) {
	ok := BulkDetail{Row: 1, Status: BulkStatusSuccess, PostID: "abc"}
	bad := BulkDetail{Row: 2, Status: BulkStatusFailed, Error: "quota"}
	assert.True(t, ok.Succeeded())
	assert.Equal(t, "/dashboard/posts/abc/edit", ok.EditPath())
	assert.False(t, bad.Succeeded())
	assert.Empty(t, bad.EditPath())
}
