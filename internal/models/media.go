package models

import (
	"strings"
	"time"
)

// MediaFile is an uploaded asset in the media library.
type MediaFile struct {
	ID           string    `json:"_id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalname"`
	MimeType     string    `json:"mimetype"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsImage reports whether the file can be shown as a thumbnail.
func (m *MediaFile) IsImage() bool {
	return strings.HasPrefix(m.MimeType, "image/")
}

// SizeKB is the size in kilobytes, as shown under each tile.
func (m *MediaFile) SizeKB() float64 {
	return float64(m.Size) / 1024
}

// MediaList is the body of GET /admin/media.
type MediaList struct {
	Media []MediaFile `json:"media"`
}
