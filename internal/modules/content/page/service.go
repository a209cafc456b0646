package page

import (
	"context"
	"net/url"
	"strings"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
)

// Update is the editable subset of a page.
type Update struct {
	Content         string `json:"content"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

type Service struct{ api *apiclient.Client }

func NewService(api *apiclient.Client) *Service { return &Service{api: api} }

func (s *Service) List(ctx context.Context) ([]models.Page, error) {
	var pages []models.Page
	if err := s.api.Get(ctx, "/admin/pages", nil, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Page, error) {
	var p models.Page
	if err := s.api.Get(ctx, "/admin/pages/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Update(ctx context.Context, id string, u Update) error {
	return s.api.Put(ctx, "/admin/pages/"+url.PathEscape(id), u, nil)
}

// Filter keeps pages whose title or slug contains q, ignoring case.
func Filter(pages []models.Page, q string) []models.Page {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return pages
	}
	out := make([]models.Page, 0, len(pages))
	for _, p := range pages {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Slug), q) {
			out = append(out, p)
		}
	}
	return out
}
