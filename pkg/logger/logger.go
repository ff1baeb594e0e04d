package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

var singleton *log.Logger

// InitParams contains configuration for the global logger.
type InitParams struct {
	Debug bool
}

// Init initializes the global logger writing to stderr. This must be called
// before using any logging functions; calls made earlier are dropped.
func Init(params InitParams) {
	level := log.InfoLevel
	if params.Debug {
		level = log.DebugLevel
	}
	singleton = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

// Debug writes a message at DEBUG level.
func Debug(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	singleton.Debug(message, keyvals...)
}

// Info writes a message at INFO level.
func Info(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	singleton.Info(message, keyvals...)
}

// Warn writes a message at WARN level.
func Warn(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	singleton.Warn(message, keyvals...)
}

// Error writes a message at ERROR level.
func Error(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	singleton.Error(message, keyvals...)
}

// Fatal writes a message at FATAL level and terminates the program.
func Fatal(message string, keyvals ...any) {
	if singleton == nil {
		os.Exit(1)
	}
	singleton.Fatal(message, keyvals...)
}
