package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
)

// ErrMissingCredentials is returned before any request when email or password is blank.
var ErrMissingCredentials = errors.New("email and password are required")

type Service struct{ api *apiclient.Client }

func NewService(api *apiclient.Client) *Service { return &Service{api: api} }

// Login exchanges credentials for the backend's user profile and token pair.
func (s *Service) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	var out models.LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := s.api.Post(ctx, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, fmt.Errorf("login response carried no access token")
	}
	return &out, nil
}

