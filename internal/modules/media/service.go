package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
	"github.com/dailyexamresult/admin/internal/pkg/form"
)

var (
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// CheckError is a local upload rejection. Its Error text is shown to the user.
type CheckError struct {
	Err     error
	Message string
}

func (e *CheckError) Error() string { return e.Message }

func (e *CheckError) Unwrap() error { return e.Err }

// Checker validates a file before it is forwarded to the backend.
type Checker struct {
	maxBytes int64
}

func NewChecker(maxBytes int64) Checker { return Checker{maxBytes: maxBytes} }

// Check rejects files over the limit and anything other than images and PDFs.
func (c Checker) Check(size int64, contentType string) error {
	if c.maxBytes > 0 && size > c.maxBytes {
		return &CheckError{
			Err:     ErrFileTooLarge,
			Message: fmt.Sprintf("File size exceeds %s limit", form.Size(c.maxBytes)),
		}
	}
	if !Accepted(contentType) {
		return &CheckError{Err: ErrUnsupportedType, Message: "Only images and PDF files can be uploaded"}
	}
	return nil
}

// Accepted reports whether contentType is image/* or application/pdf.
func Accepted(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt, "image/") || mt == "application/pdf"
}

// ContentType prefers the declared type and falls back to the file extension.
func ContentType(filename, declared string) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if guessed := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); guessed != "" {
		return guessed
	}
	return "application/octet-stream"
}

// Upload is one file accepted by the handler.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Service struct {
	api     *apiclient.Client
	checker Checker
}

func NewService(api *apiclient.Client, checker Checker) *Service {
	return &Service{api: api, checker: checker}
}

func (s *Service) List(ctx context.Context) ([]models.MediaFile, error) {
	var out models.MediaList
	if err := s.api.Get(ctx, "/admin/media", nil, &out); err != nil {
		return nil, err
	}
	return out.Media, nil
}

// Upload checks u locally and forwards it. A rejected file never reaches the backend.
func (s *Service) Upload(ctx context.Context, u Upload) (*models.MediaFile, error) {
	if err := s.checker.Check(u.Size, u.ContentType); err != nil {
		return nil, err
	}
	var file models.MediaFile
	err := s.api.Upload(ctx, "/admin/media/upload", apiclient.FilePart{
		Field:       "file",
		Filename:    u.Filename,
		ContentType: u.ContentType,
		Body:        u.Body,
	}, nil, &file)
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/admin/media/"+url.PathEscape(id), nil)
}
