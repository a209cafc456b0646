package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"time"

	"github.com/dailyexamresult/admin/internal/config"
	"github.com/dailyexamresult/admin/internal/middleware"
	"github.com/dailyexamresult/admin/internal/modules/auth"
	"github.com/dailyexamresult/admin/internal/modules/content/post"
	"github.com/dailyexamresult/admin/internal/modules/layout"
	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
	pkgcron "github.com/dailyexamresult/admin/internal/pkg/cron"
	"github.com/dailyexamresult/admin/internal/pkg/jwt"
	"github.com/dailyexamresult/admin/internal/pkg/metrics"
	pkgredis "github.com/dailyexamresult/admin/internal/pkg/redis"
	"github.com/dailyexamresult/admin/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg      *config.AppConfig
	router   *gin.Engine
	logger   *zap.Logger
	metrics  *metrics.Metrics
	scrapers []netip.Prefix
	api      *apiclient.Client
	storage  auth.Storage
	signer   *jwt.Signer
	registry *post.Registry
	limiter  *middleware.IPRateLimiter
	sched    *pkgcron.Scheduler
	redis    *pkgredis.Client
	cancel   context.CancelFunc
}

// New wires config, session storage, the backend client and routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if err := applyTimezone(cfg); err != nil {
		return nil, err
	}
	scrapers, err := cfg.MetricsPrefixes()
	if err != nil {
		return nil, err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{cfg: cfg, logger: logger, metrics: metrics.New("admin"), scrapers: scrapers, cancel: cancel}

	if err := a.initSessions(ctx); err != nil {
		cancel()
		return nil, err
	}

	a.api = apiclient.New(cfg.APIBaseURL,
		apiclient.WithTimeout(cfg.HTTPTimeout),
		apiclient.WithObserver(a.metrics),
	)
	a.registry = post.NewRegistry(func(token string) *post.Controller {
		return post.NewController(post.NewService(a.api.WithToken(token)), post.ControllerOptions{
			Debounce: cfg.SearchDebounce,
			Log:      logger.Named("posts"),
			Observer: a.metrics,
		})
	})
	a.limiter = middleware.NewIPRateLimiter(0)

	router, err := a.newRouter()
	if err != nil {
		cancel()
		a.closeRedis()
		return nil, err
	}
	a.router = router
	a.registerRoutes()

	a.sched = pkgcron.New(logger)
	registerCronJobs(a.sched, a.registry, a.limiter, logger)
	go a.sched.Start(ctx)

	return a, nil
}

func (a *App) initSessions(ctx context.Context) error {
	secret := a.cfg.SessionSecret
	if secret == "" {
		generated, err := randomSecret()
		if err != nil {
			return fmt.Errorf("session secret: %w", err)
		}
		secret = generated
		a.logger.Warn("session_secret is empty, sessions will not survive a restart")
	}
	signer, err := jwt.NewSigner(secret)
	if err != nil {
		return err
	}
	a.signer = signer

	if a.cfg.RedisURL == "" {
		a.storage = auth.NewMemoryStorage()
		return nil
	}
	rc, err := pkgredis.Connect(ctx, a.cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	a.redis = rc
	a.storage = auth.NewRedisStorage(rc, a.cfg.SessionTTL)
	return nil
}

func (a *App) newRouter() (*gin.Engine, error) {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(a.logger))
	router.Use(cors.New(corsConfig(a.cfg)))
	router.Use(middleware.Metrics(a.metrics))

	tmpl, err := web.Templates(layout.Funcs())
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", web.Static())
	return router, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return a.cfg.Addr() }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown stops background jobs and closes the Redis connection.
func (a *App) Shutdown() {
	a.cancel()
	a.closeRedis()
}

func (a *App) closeRedis() {
	if a.redis == nil {
		return
	}
	if err := a.redis.Close(); err != nil {
		a.logger.Warn("close redis", zap.Error(err))
	}
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

var processStart = time.Now()
