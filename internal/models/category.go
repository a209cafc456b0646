package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Category groups posts. Its slug decides which post form variant applies.
type Category struct {
	ID                 string    `json:"_id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Description        string    `json:"description"`
	DisplayOrder       int       `json:"displayOrder"`
	IsActive           bool      `json:"isActive"`
	PrimaryActionLabel string    `json:"primaryActionLabel"`
	CreatedAt          time.Time `json:"createdAt"`
}

// DefaultPrimaryActionLabel labels the primary external link when a category
// has none configured.
const DefaultPrimaryActionLabel = "Apply Online/View Details"

// ActionLabel returns the configured primary action label or the default.
func (c *Category) ActionLabel() string {
	if c == nil || c.PrimaryActionLabel == "" {
		return DefaultPrimaryActionLabel
	}
	return c.PrimaryActionLabel
}

// CategoryRef is a post's category as returned by the backend: either a bare
// id string or a populated category object.
type CategoryRef struct {
	ID       string
	Category *Category
}

func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = CategoryRef{}
		return nil
	}
	if trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return err
		}
		*r = CategoryRef{ID: id}
		return nil
	}
	var cat Category
	if err := json.Unmarshal(trimmed, &cat); err != nil {
		return err
	}
	*r = CategoryRef{ID: cat.ID, Category: &cat}
	return nil
}

// MarshalJSON flattens the reference to its id.
func (r CategoryRef) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

// Name returns the populated category name, or "" when only the id is known.
func (r CategoryRef) Name() string {
	if r.Category == nil {
		return ""
	}
	return r.Category.Name
}
