package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

// AppLogger is the application logger, a thin wrapper over logrus that emits
// structured JSON and optionally writes to a rotlog-friendly file.
type AppLogger struct {
	*logrus.Logger
	file *os.File
}

// NewAppLogger creates a new application logger from config
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{Logger: l}

	if config.Type == "file" && config.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		appLogger.file = f
		l.SetOutput(io.MultiWriter(os.Stdout, f))
	} else {
		l.SetOutput(os.Stdout)
	}

	return appLogger, nil
}

// Close releases the log file if one is open
func (a *AppLogger) Close() error {
	if a.file != nil {
		return a.file.Close()
	}
	return nil
}

// log emits an entry at the given level with structured fields
func (a *AppLogger) log(level logrus.Level, msg string, fields ...Field) {
	a.Logger.WithFields(toLogrusFields(fields)).Log(level, msg)
}

// InfoMsg logs an info message with structured fields
func (a *AppLogger) InfoMsg(msg string, fields ...Field) {
	a.log(logrus.InfoLevel, msg, fields...)
}

// WarnMsg logs a warning message with structured fields
func (a *AppLogger) WarnMsg(msg string, fields ...Field) {
	a.log(logrus.WarnLevel, msg, fields...)
}

// ErrorMsg logs an error message with structured fields
func (a *AppLogger) ErrorMsg(msg string, fields ...Field) {
	a.log(logrus.ErrorLevel, msg, fields...)
}

// DebugMsg logs a debug message with structured fields
func (a *AppLogger) DebugMsg(msg string, fields ...Field) {
	a.log(logrus.DebugLevel, msg, fields...)
}
