package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/netip"
	neturl "net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort           = 3001
	defaultEnv            = "development"
	defaultAPIBaseURL     = "http://localhost:5000/api"
	defaultCookieName     = "admin_session"
	defaultSessionTTL     = 7 * 24 * time.Hour
	defaultSearchDebounce = 500 * time.Millisecond
	defaultUploadLimitMB  = 5
	defaultAIModel        = "gemini-2.5-flash"
	defaultHTTPTimeout    = 30 * time.Second
	defaultTimezone       = "UTC"

	envAPIBaseURL    = "ADMIN_API_BASE_URL"
	envSessionSecret = "ADMIN_SESSION_SECRET"
)

var (
	defaultAIModels     = []string{"gemini-2.5-flash", "gemini-2.0-flash", "gemini-flash-latest"}
	defaultMetricsAllow = []string{"127.0.0.1/32", "::1/128"}
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int           `yaml:"port"`
	Env            string        `yaml:"env"` // "development" | "production"
	APIBaseURL     string        `yaml:"api_base_url"`
	SessionSecret  string        `yaml:"session_secret"`
	CookieName     string        `yaml:"cookie_name"`
	CookieSecure   bool          `yaml:"cookie_secure"`
	RedisURL       string        `yaml:"redis_url"` // empty = in-process storage
	SessionTTL     time.Duration `yaml:"session_ttl"`
	SearchDebounce time.Duration `yaml:"search_debounce"`
	UploadLimitMB  int           `yaml:"upload_limit_mb"`
	DefaultAIModel string        `yaml:"default_ai_model"`
	AIModels       []string      `yaml:"ai_models"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	Timezone       string        `yaml:"timezone"`
	HTTPTimeout    time.Duration `yaml:"http_timeout"`
	LogDir         string        `yaml:"log_dir"`
	MetricsAllow   []string      `yaml:"metrics_allow"` // IPs or CIDRs; empty disables /metrics
}

// Default returns the configuration used when no file overrides a field.
func Default() AppConfig {
	return AppConfig{
		Port:           defaultPort,
		Env:            defaultEnv,
		APIBaseURL:     defaultAPIBaseURL,
		CookieName:     defaultCookieName,
		SessionTTL:     defaultSessionTTL,
		SearchDebounce: defaultSearchDebounce,
		UploadLimitMB:  defaultUploadLimitMB,
		DefaultAIModel: defaultAIModel,
		AIModels:       append([]string(nil), defaultAIModels...),
		Timezone:       defaultTimezone,
		HTTPTimeout:    defaultHTTPTimeout,
		MetricsAllow:   append([]string(nil), defaultMetricsAllow...),
	}
}

// Load reads path, applies defaults and environment overrides, and validates
// the result. A missing file at the default path is not an error.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	cfg := Default()
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(content, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnv(&cfg, os.Getenv)
	normalize(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return &cfg, nil
}

func decode(content []byte, cfg *AppConfig) error {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	return decoder.Decode(cfg)
}

func applyEnv(cfg *AppConfig, getenv func(string) string) {
	if v := strings.TrimSpace(getenv(envAPIBaseURL)); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(getenv(envSessionSecret)); v != "" {
		cfg.SessionSecret = v
	}
}

func normalize(cfg *AppConfig) {
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	cfg.SessionSecret = strings.TrimSpace(cfg.SessionSecret)
	cfg.CookieName = strings.TrimSpace(cfg.CookieName)
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	cfg.RedisURL = strings.TrimSpace(cfg.RedisURL)
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.SearchDebounce <= 0 {
		cfg.SearchDebounce = defaultSearchDebounce
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	cfg.AIModels = normalizeList(cfg.AIModels)
	if len(cfg.AIModels) == 0 {
		cfg.AIModels = append([]string(nil), defaultAIModels...)
	}
	cfg.DefaultAIModel = strings.TrimSpace(cfg.DefaultAIModel)
	if cfg.DefaultAIModel == "" {
		cfg.DefaultAIModel = cfg.AIModels[0]
	}
	cfg.AllowedOrigins = normalizeOrigins(cfg.AllowedOrigins)
	cfg.Timezone = strings.TrimSpace(cfg.Timezone)
	cfg.LogDir = strings.TrimSpace(cfg.LogDir)
	cfg.MetricsAllow = normalizeList(cfg.MetricsAllow)
}

// Validate reports the first invalid field.
func (c *AppConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d, expected 1-65535", c.Port)
	}
	u, err := neturl.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api_base_url %q, expected an http(s) URL", c.APIBaseURL)
	}
	if c.UploadLimitMB < 1 {
		return fmt.Errorf("invalid upload_limit_mb %d, expected >= 1", c.UploadLimitMB)
	}
	if c.IsProduction() && c.SessionSecret == "" {
		return errors.New("session_secret is required in production")
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}
	if _, err := c.MetricsPrefixes(); err != nil {
		return err
	}
	return nil
}

// MetricsPrefixes parses MetricsAllow. A bare address matches only itself.
func (c *AppConfig) MetricsPrefixes() ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(c.MetricsAllow))
	for _, v := range c.MetricsAllow {
		if strings.Contains(v, "/") {
			p, err := netip.ParsePrefix(v)
			if err != nil {
				return nil, fmt.Errorf("invalid metrics_allow entry %q: %w", v, err)
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(v)
		if err != nil {
			return nil, fmt.Errorf("invalid metrics_allow entry %q: %w", v, err)
		}
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}

// IsProduction reports whether the console runs in production mode.
func (c *AppConfig) IsProduction() bool { return c.Env == "production" }

// UploadLimitBytes is the client-side media size cap.
func (c *AppConfig) UploadLimitBytes() int64 { return int64(c.UploadLimitMB) << 20 }

// Location returns the configured display timezone, UTC when unset.
func (c *AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Addr is the listen address for the HTTP server.
func (c *AppConfig) Addr() string { return fmt.Sprintf(":%d", c.Port) }

func normalizeEnv(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "prod", "production":
		return "production"
	case "test", "testing":
		return "test"
	default:
		return defaultEnv
	}
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		v := strings.TrimSpace(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func normalizeOrigins(items []string) []string {
	out := normalizeList(items)
	for i, v := range out {
		out[i] = strings.TrimRight(v, "/")
	}
	return out
}
