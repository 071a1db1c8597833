package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/martinus/hexler/pkg/configuration"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes diagnostics to a rotating log file. It never writes to stdout.
type Logger struct {
	logger   *log.Logger
	closer   io.Closer
	jsonMode bool
}

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the process-wide logger, creating it from cfg on first use.
// A nil cfg uses the configuration defaults.
func GetLogger(cfg *configuration.LogConfig) *Logger {
	once.Do(func() {
		if cfg == nil {
			def := configuration.NewConfig().Log
			cfg = &def
		}
		globalLogger = NewLogger(cfg)
	})
	return globalLogger
}

// NewLogger creates a logger backed by a lumberjack rotating file.
func NewLogger(cfg *configuration.LogConfig) *Logger {
	logFile := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   cfg.Compress,
	}
	return newLogger(logFile, logFile, cfg.JSON)
}

func newLogger(w io.Writer, c io.Closer, jsonMode bool) *Logger {
	return &Logger{
		logger:   log.New(w, "", log.LstdFlags),
		closer:   c,
		jsonMode: jsonMode,
	}
}

// Close closes the logger resources.
func (w *Logger) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// Log logs a general message.
func (w *Logger) Log(message string) {
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": "info", "msg": message})
		return
	}
	w.logger.Print(message)
}

// Logf logs a formatted general message.
func (w *Logger) Logf(format string, v ...interface{}) {
	if w.jsonMode {
		w.Log(fmt.Sprintf(format, v...))
		return
	}
	w.logger.Printf(format, v...)
}

func (w *Logger) LogError(err error) {
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": "error", "error": err.Error()})
		return
	}
	w.logger.Printf("Error: %s", err)
}

// LogOperation records a command and its outcome.
func (w *Logger) LogOperation(operation, details string) {
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": "info", "op": operation, "msg": details})
		return
	}
	w.logger.Printf("Operation: %s, Details: %s", operation, details)
}

// NopLogger returns a logger that discards everything.
func NopLogger() *Logger {
	return newLogger(io.Discard, nil, false)
}
