package category

import (
	"context"
	"net/url"
	"strings"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
)

// Payload is the create/update body for /admin/categories.
type Payload struct {
	Name               string `json:"name"`
	Slug               string `json:"slug"`
	Description        string `json:"description"`
	DisplayOrder       int    `json:"displayOrder"`
	IsActive           bool   `json:"isActive"`
	PrimaryActionLabel string `json:"primaryActionLabel,omitempty"`
}

type Service struct{ api *apiclient.Client }

func NewService(api *apiclient.Client) *Service { return &Service{api: api} }

func (s *Service) List(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := s.api.Get(ctx, "/admin/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Category, error) {
	var cat models.Category
	if err := s.api.Get(ctx, "/admin/categories/"+url.PathEscape(id), nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Create(ctx context.Context, p Payload) (*models.Category, error) {
	var cat models.Category
	if err := s.api.Post(ctx, "/admin/categories", p, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Update(ctx context.Context, id string, p Payload) (*models.Category, error) {
	var cat models.Category
	if err := s.api.Put(ctx, "/admin/categories/"+url.PathEscape(id), p, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/admin/categories/"+url.PathEscape(id), nil)
}

// Filter keeps categories whose name or slug contains q, ignoring case.
func Filter(cats []models.Category, q string) []models.Category {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return cats
	}
	out := make([]models.Category, 0, len(cats))
	for _, c := range cats {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Slug), q) {
			out = append(out, c)
		}
	}
	return out
}
