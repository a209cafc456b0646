package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dailyexamresult/admin/internal/models"
)

const (
	keyUser         = "user"
	keyAccessToken  = "accessToken"
	keyRefreshToken = "refreshToken"
)

// Store is the credential store of one browser session. A nil Store behaves
// as an empty, unauthenticated session.
type Store struct {
	storage Storage
	sid     string
}

// NewStore binds storage to the session sid.
func NewStore(storage Storage, sid string) *Store {
	return &Store{storage: storage, sid: sid}
}

// SessionID returns the bound session id, "" for a nil Store.
func (s *Store) SessionID() string {
	if s == nil {
		return ""
	}
	return s.sid
}

// SetAuth persists the user and both tokens.
func (s *Store) SetAuth(ctx context.Context, user models.User, accessToken, refreshToken string) error {
	if s == nil {
		return nil
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.storage.Set(ctx, s.sid, keyUser, string(raw)); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	if err := s.storage.Set(ctx, s.sid, keyAccessToken, accessToken); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	if err := s.storage.Set(ctx, s.sid, keyRefreshToken, refreshToken); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

// GetUser returns nil when the user is absent or unparsable.
func (s *Store) GetUser(ctx context.Context) *models.User {
	raw := s.get(ctx, keyUser)
	if raw == "" {
		return nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}
	return &u
}

func (s *Store) GetToken(ctx context.Context) string { return s.get(ctx, keyAccessToken) }

func (s *Store) GetRefreshToken(ctx context.Context) string { return s.get(ctx, keyRefreshToken) }

// ClearAuth removes all three keys.
func (s *Store) ClearAuth(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.storage.Del(ctx, s.sid, keyUser, keyAccessToken, keyRefreshToken)
}

// IsAuthenticated reports whether an access token is present. Token expiry
// is not checked.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.GetToken(ctx) != ""
}

func (s *Store) get(ctx context.Context, key string) string {
	if s == nil || s.storage == nil {
		return ""
	}
	v, ok, err := s.storage.Get(ctx, s.sid, key)
	if err != nil || !ok {
		return ""
	}
	return v
}
