package app

import (
	"net/http"
	"time"

	"github.com/dailyexamresult/admin/internal/middleware"
	"github.com/dailyexamresult/admin/internal/modules/agent"
	"github.com/dailyexamresult/admin/internal/modules/auth"
	"github.com/dailyexamresult/admin/internal/modules/content/category"
	"github.com/dailyexamresult/admin/internal/modules/content/page"
	"github.com/dailyexamresult/admin/internal/modules/content/post"
	"github.com/dailyexamresult/admin/internal/modules/dashboard"
	"github.com/dailyexamresult/admin/internal/modules/media"
	"github.com/dailyexamresult/admin/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() {
	r := a.router
	cfg := a.cfg
	log := a.logger

	r.NoRoute(func(c *gin.Context) { response.NotFound(c) })

	r.GET("/healthz", a.healthz)
	if len(a.scrapers) > 0 {
		r.GET("/metrics", middleware.AllowPeers(a.scrapers), gin.WrapH(a.metrics.Handler()))
	}

	site := r.Group("", middleware.Session(a.signer, a.storage, middleware.SessionOptions{
		CookieName: cfg.CookieName,
		TTL:        cfg.SessionTTL,
		Secure:     cfg.CookieSecure,
	}, log))

	authHandler := auth.NewHandler(a.api, log.Named("auth"))
	authHandler.OnSessionEnd(a.registry.Drop)
	authHandler.RegisterRoutes(site, middleware.RateLimit(a.limiter))

	site.GET("/", func(c *gin.Context) { response.Found(c, "/dashboard") })

	dash := site.Group("/dashboard")
	authMW := middleware.RequireAuth()

	dashboard.NewHandler(a.api, log.Named("dashboard")).RegisterRoutes(dash, authMW)
	category.NewHandler(a.api, log.Named("categories")).RegisterRoutes(dash, authMW)
	post.NewHandler(a.api, a.registry, log.Named("posts")).RegisterRoutes(dash, authMW)
	agent.NewHandler(a.api, agent.Options{
		Models:       cfg.AIModels,
		DefaultModel: cfg.DefaultAIModel,
		MaxBytes:     cfg.UploadLimitBytes(),
	}, log.Named("agent")).RegisterRoutes(dash, authMW)
	page.NewHandler(a.api, log.Named("pages")).RegisterRoutes(dash, authMW)
	media.NewHandler(a.api, cfg.UploadLimitBytes(), log.Named("media")).RegisterRoutes(dash, authMW)
}

func (a *App) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"env":       a.cfg.Env,
		"api":       a.api.BaseURL(),
		"uptime":    humanizeDuration(time.Since(processStart)),
		"listViews": a.registry.Len(),
		"jobs":      a.sched.List(),
	})
}
