package app

import (
	"fmt"
	"os"
	"time"

	"github.com/dailyexamresult/admin/internal/config"
)

// applyTimezone makes the configured zone the process default so that
// rendered dates match what editors expect.
func applyTimezone(cfg *config.AppConfig) error {
	if cfg.Timezone == "" {
		return nil
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	time.Local = loc
	_ = os.Setenv("TZ", cfg.Timezone)
	return nil
}

func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return d.Truncate(time.Second).String()
	case d < time.Hour:
		return d.Truncate(time.Minute).String()
	case d < 24*time.Hour:
		return d.Truncate(time.Hour).String()
	default:
		return d.Truncate(24 * time.Hour).String()
	}
}
