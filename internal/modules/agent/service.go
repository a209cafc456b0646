package agent

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
)

var (
	ErrEmptyTitle = errors.New("agent: empty title")
	ErrEmptyText  = errors.New("agent: empty text")
	ErrNoPostID   = errors.New("agent: response carried no post id")
)

// Sheet is an uploaded spreadsheet.
type Sheet struct {
	Filename string
	Body     io.Reader
}

// ContentType is derived from the extension; .xls is the legacy binary format.
func (s Sheet) ContentType() string {
	if strings.HasSuffix(strings.ToLower(s.Filename), ".xls") {
		return xlsContentType
	}
	return xlsxContentType
}

type Service struct{ api *apiclient.Client }

func NewService(api *apiclient.Client) *Service { return &Service{api: api} }

// CreateByTitle asks the agent to research title and draft a post. It returns
// the new post id.
func (s *Service) CreateByTitle(ctx context.Context, title, model string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	var out models.AgentDraft
	if err := s.api.Post(ctx, "/admin/ai/create-by-title", map[string]string{"title": title, "model": model}, &out); err != nil {
		return "", err
	}
	return draftID(out)
}

// Process turns pasted notification text into a draft post.
func (s *Service) Process(ctx context.Context, rawText string) (string, error) {
	if strings.TrimSpace(rawText) == "" {
		return "", ErrEmptyText
	}
	var out models.AgentDraft
	if err := s.api.Post(ctx, "/admin/ai/process", map[string]string{"rawText": rawText}, &out); err != nil {
		return "", err
	}
	return draftID(out)
}

// Bulk submits a spreadsheet of titles. Row failures are reported in the
// result; an error means the whole batch failed.
func (s *Service) Bulk(ctx context.Context, sheet Sheet, model string) (*models.BulkResult, error) {
	var out models.BulkResult
	err := s.api.Upload(ctx, "/admin/ai/bulk-create", apiclient.FilePart{
		Field:       "file",
		Filename:    sheet.Filename,
		ContentType: sheet.ContentType(),
		Body:        sheet.Body,
	}, map[string]string{"model": model}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func draftID(d models.AgentDraft) (string, error) {
	if d.PostID == "" {
		return "", ErrNoPostID
	}
	return d.PostID, nil
}
