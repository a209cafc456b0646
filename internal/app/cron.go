package app

import (
	"context"
	"time"

	"github.com/dailyexamresult/admin/internal/middleware"
	"github.com/dailyexamresult/admin/internal/modules/content/post"
	pkgcron "github.com/dailyexamresult/admin/internal/pkg/cron"
	"go.uber.org/zap"
)

const (
	jobSweepListViews   = "sweep_list_views"
	jobSweepRateLimiter = "sweep_rate_limiter"
)

// registerCronJobs registers the in-process housekeeping jobs.
func registerCronJobs(sched *pkgcron.Scheduler, registry *post.Registry, limiter *middleware.IPRateLimiter, logger *zap.Logger) {
	log := logger.Named("cron")

	sched.Register(pkgcron.Job{
		Name:        jobSweepListViews,
		Description: "Close post list controllers of idle sessions",
		Interval:    15 * time.Minute,
		Fn: func(context.Context) error {
			if n := registry.Sweep(); n > 0 {
				log.Debug("evicted idle list views", zap.Int("count", n))
			}
			return nil
		},
	})

	sched.Register(pkgcron.Job{
		Name:        jobSweepRateLimiter,
		Description: "Forget idle login rate limit buckets",
		Interval:    5 * time.Minute,
		Fn: func(context.Context) error {
			limiter.Sweep()
			return nil
		},
	})
}
