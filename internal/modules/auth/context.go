package auth

import (
	"errors"

	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
	"github.com/gin-gonic/gin"
)

const (
	storeKey   = "authStore"
	renewerKey = "authRenewer"
)

// ErrNoRenewer is returned by Renew outside the session middleware.
var ErrNoRenewer = errors.New("auth: session cannot be renewed")

// Renewer replaces the request's session with a fresh id, binds the new
// store to c and returns it.
type Renewer func(c *gin.Context) (*Store, error)

// BindRenewer attaches the session renewer to the request.
func BindRenewer(c *gin.Context, r Renewer) { c.Set(renewerKey, r) }

// Renew issues a new session for the request.
func Renew(c *gin.Context) (*Store, error) {
	v, ok := c.Get(renewerKey)
	if !ok {
		return nil, ErrNoRenewer
	}
	r, ok := v.(Renewer)
	if !ok || r == nil {
		return nil, ErrNoRenewer
	}
	return r(c)
}

// Bind attaches the session store to the request.
func Bind(c *gin.Context, s *Store) { c.Set(storeKey, s) }

// FromContext returns the request's store, nil outside a session.
func FromContext(c *gin.Context) *Store {
	v, ok := c.Get(storeKey)
	if !ok {
		return nil
	}
	s, _ := v.(*Store)
	return s
}

// Client returns base bound to the session's access token.
func Client(c *gin.Context, base *apiclient.Client) *apiclient.Client {
	return base.WithToken(FromContext(c).GetToken(c.Request.Context()))
}
