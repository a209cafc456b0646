package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultLogFilePerm = 0o644
	defaultLogDirPerm  = 0o755
)

// Options selects the log encoding and an optional directory for daily files.
type Options struct {
	Env string
	Dir string
}

// New builds the console logger. Development gets a colored console encoder
// at debug level; anything else gets JSON at info level. When Dir is set the
// same entries are also appended to one file per day.
func New(opts Options) (*zap.Logger, error) {
	dev := strings.EqualFold(strings.TrimSpace(opts.Env), "development")

	var encCfg zapcore.EncoderConfig
	var level zap.AtomicLevel
	if dev {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		encCfg = zap.NewProductionEncoderConfig()
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	var encoder zapcore.Encoder
	if dev {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)}
	if dir := strings.TrimSpace(opts.Dir); dir != "" {
		w, err := NewDailyWriter(dir)
		if err != nil {
			return nil, err
		}
		fileCfg := encCfg
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(w), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// DailyFilename returns the log file name used for the day of now.
func DailyFilename(now time.Time) string {
	return "admin_" + now.Format("2006-01-02") + ".log"
}

// DailyWriter appends to <dir>/admin_<date>.log, rolling over at midnight.
type DailyWriter struct {
	mu  sync.Mutex
	dir string
	now func() time.Time
}

// NewDailyWriter creates dir if needed.
func NewDailyWriter(dir string) (*DailyWriter, error) {
	if err := os.MkdirAll(dir, defaultLogDirPerm); err != nil {
		return nil, err
	}
	return &DailyWriter{dir: dir, now: time.Now}, nil
}

func (w *DailyWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	path := filepath.Join(w.dir, DailyFilename(w.now()))
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, defaultLogFilePerm)
	if err != nil {
		return 0, err
	}

	n, writeErr := file.Write(p)
	closeErr := file.Close()
	if writeErr != nil {
		return n, writeErr
	}
	return n, closeErr
}

func (w *DailyWriter) Sync() error { return nil }
