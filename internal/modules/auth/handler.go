package auth

import (
	"errors"
	"net/http"

	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
	"github.com/dailyexamresult/admin/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const loginFailed = "Login failed"

type loginForm struct {
	Email string
	Error string
}

type Handler struct {
	api   *apiclient.Client
	log   *zap.Logger
	onEnd []func(sid string)
}

func NewHandler(api *apiclient.Client, log *zap.Logger) *Handler {
	return &Handler{api: api, log: log}
}

// OnSessionEnd registers f to run with a session id that is retired, on
// logout and when login moves the session to a fresh id.
func (h *Handler) OnSessionEnd(f func(sid string)) { h.onEnd = append(h.onEnd, f) }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, throttle gin.HandlerFunc) {
	rg.GET("/login", h.showLogin)
	rg.POST("/login", throttle, h.login)
	rg.POST("/logout", h.logout)
}

func (h *Handler) showLogin(c *gin.Context) {
	if FromContext(c).IsAuthenticated(c.Request.Context()) {
		response.Found(c, "/dashboard")
		return
	}
	response.HTML(c, http.StatusOK, "login", loginForm{})
}

func (h *Handler) login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	ctx := c.Request.Context()
	res, err := NewService(h.api).Login(ctx, email, password)
	if err != nil {
		msg := apiclient.Message(err, loginFailed)
		if errors.Is(err, ErrMissingCredentials) {
			msg = err.Error()
		}
		h.log.Warn("login failed", zap.String("email", email), zap.Error(err))
		response.HTML(c, http.StatusOK, "login", loginForm{Email: email, Error: msg})
		return
	}

	old := FromContext(c)
	store, err := Renew(c)
	if err != nil {
		h.log.Error("renew session", zap.Error(err))
		response.HTML(c, http.StatusOK, "login", loginForm{Email: email, Error: loginFailed})
		return
	}
	if err := store.SetAuth(ctx, res.User, res.AccessToken, res.RefreshToken); err != nil {
		h.log.Error("persist session", zap.Error(err))
		response.HTML(c, http.StatusOK, "login", loginForm{Email: email, Error: loginFailed})
		return
	}
	h.retire(c, old)
	response.SeeOther(c, "/dashboard")
}

// retire clears the credentials of a session that is no longer used.
func (h *Handler) retire(c *gin.Context, s *Store) {
	if s == nil {
		return
	}
	if err := s.ClearAuth(c.Request.Context()); err != nil {
		h.log.Error("clear session", zap.Error(err))
	}
	for _, f := range h.onEnd {
		f(s.SessionID())
	}
}

func (h *Handler) logout(c *gin.Context) {
	h.retire(c, FromContext(c))
	response.SeeOther(c, "/login")
}
