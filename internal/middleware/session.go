package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dailyexamresult/admin/internal/modules/auth"
	"github.com/dailyexamresult/admin/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionOptions configures the session cookie.
type SessionOptions struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Session resolves the browser session from its signed cookie, issuing a new
// one on first visit or when the cookie fails verification, and binds the
// session's auth store to the request. Handlers can move the request to a
// fresh session id with auth.Renew.
func Session(signer *jwt.Signer, storage auth.Storage, opts SessionOptions, log *zap.Logger) gin.HandlerFunc {
	issue := func(c *gin.Context) (string, error) {
		sid := uuid.NewString()
		token, err := signer.Sign(sid, opts.TTL)
		if err != nil {
			return "", err
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(opts.CookieName, token, int(opts.TTL.Seconds()), "/", "", opts.Secure, true)
		return sid, nil
	}

	return func(c *gin.Context) {
		sid := ""
		if raw, err := c.Cookie(opts.CookieName); err == nil && raw != "" {
			if claims, err := signer.Parse(raw); err == nil {
				sid = claims.SessionID
			}
		}

		if sid == "" {
			var err error
			if sid, err = issue(c); err != nil {
				log.Error("sign session cookie", zap.Error(err))
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
		}

		auth.Bind(c, auth.NewStore(storage, sid))
		auth.BindRenewer(c, func(c *gin.Context) (*auth.Store, error) {
			sid, err := issue(c)
			if err != nil {
				return nil, fmt.Errorf("sign session cookie: %w", err)
			}
			store := auth.NewStore(storage, sid)
			auth.Bind(c, store)
			return store, nil
		})
		c.Next()
	}
}

// RequireAuth redirects to /login when the session holds no access token.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.FromContext(c).IsAuthenticated(c.Request.Context()) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
