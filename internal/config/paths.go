package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExecutableDir returns the directory where the current executable resides.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err == nil && strings.TrimSpace(exe) != "" {
		if resolved, resolveErr := filepath.EvalSymlinks(exe); resolveErr == nil && strings.TrimSpace(resolved) != "" {
			exe = resolved
		}
		return filepath.Dir(exe)
	}

	if wd, wdErr := os.Getwd(); wdErr == nil && strings.TrimSpace(wd) != "" {
		return wd
	}
	return "."
}

// LogPath resolves the log directory against the executable directory.
// An empty value disables file logging.
func (c *AppConfig) LogPath() string {
	if c.LogDir == "" {
		return ""
	}
	if filepath.IsAbs(c.LogDir) {
		return filepath.Clean(c.LogDir)
	}
	return filepath.Clean(filepath.Join(ExecutableDir(), c.LogDir))
}
