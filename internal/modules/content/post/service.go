package post

import (
	"context"
	"net/url"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
)

type Service struct{ api *apiclient.Client }

func NewService(api *apiclient.Client) *Service { return &Service{api: api} }

// List fetches one page of posts. An empty body is read as no posts.
func (s *Service) List(ctx context.Context, q url.Values) (*models.PostList, error) {
	var out models.PostList
	if err := s.api.Get(ctx, "/admin/posts", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	if err := s.api.Get(ctx, "/admin/posts/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Create(ctx context.Context, payload map[string]any) (*models.Post, error) {
	var p models.Post
	if err := s.api.Post(ctx, "/admin/posts", payload, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Update(ctx context.Context, id string, payload map[string]any) (*models.Post, error) {
	var p models.Post
	if err := s.api.Put(ctx, "/admin/posts/"+url.PathEscape(id), payload, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/admin/posts/"+url.PathEscape(id), nil)
}

// Categories loads the category options for filters and the form.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := s.api.Get(ctx, "/admin/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
