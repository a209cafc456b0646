package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyWriterAppendsPerDay(t *testing.T) {
	dir := t.TempDir()
	w, err := NewDailyWriter(dir)
	require.NoError(t, err)

	day := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	w.now = func() time.Time { return day }
	_, err = w.Write([]byte("first\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("second\n"))
	require.NoError(t, err)

	day = day.Add(2 * time.Minute)
	_, err = w.Write([]byte("third\n"))
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "admin_2026-03-01.log"))
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(b))

	b, err = os.ReadFile(filepath.Join(dir, "admin_2026-03-02.log"))
	require.NoError(t, err)
	assert.Equal(t, "third\n", string(b))
}

func TestNewWritesToDir(t *testing.T) {
	dir := t.TempDir()
	log, err := New(Options{Env: "production", Dir: dir})
	require.NoError(t, err)
	log.Info("hello")
	_ = log.Sync()

	b, err := os.ReadFile(filepath.Join(dir, DailyFilename(time.Now())))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}

func TestNewDevelopmentWithoutDir(t *testing.T) {
	log, err := New(Options{Env: "development"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(-1))
}
