package models

import "time"

// Page is a fixed static page (About, Contact, ...). Pages are only edited.
type Page struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Content         string    `json:"content"`
	MetaTitle       string    `json:"metaTitle"`
	MetaDescription string    `json:"metaDescription"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
