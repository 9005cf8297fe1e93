// Package logger provides the logrus-backed implementation of interfaces.Logger.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"seyren-notifier/domain/interfaces"
)

// Formats supported by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// logrusLogger implements the Logger interface using logrus
type logrusLogger struct {
	logger *logrus.Entry
}

// Options tune the logger output.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New creates a logrus-based logger from options.
func New(opts Options) interfaces.Logger {
	log := logrus.New()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	log.SetOutput(opts.Output)

	if opts.Format == FormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			DisableColors:   opts.Output != os.Stdout,
		})
	}

	logLevel, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	return &logrusLogger{
		logger: logrus.NewEntry(log),
	}
}

// FromEntry wraps an existing logrus entry.
func FromEntry(entry *logrus.Entry) interfaces.Logger {
	return &logrusLogger{logger: entry}
}

// Debug logs a debug message
func (l *logrusLogger) Debug(msg string, fields ...interface{}) {
	l.logger.WithFields(parseFields(fields...)).Debug(msg)
}

// Info logs an info message
func (l *logrusLogger) Info(msg string, fields ...interface{}) {
	l.logger.WithFields(parseFields(fields...)).Info(msg)
}

// Warn logs a warning message
func (l *logrusLogger) Warn(msg string, fields ...interface{}) {
	l.logger.WithFields(parseFields(fields...)).Warn(msg)
}

// Error logs an error message
func (l *logrusLogger) Error(msg string, fields ...interface{}) {
	l.logger.WithFields(parseFields(fields...)).Error(msg)
}

// Fatal logs a fatal message and exits
func (l *logrusLogger) Fatal(msg string, fields ...interface{}) {
	l.logger.WithFields(parseFields(fields...)).Fatal(msg)
}

// WithFields returns a logger with additional fields
func (l *logrusLogger) WithFields(fields map[string]interface{}) interfaces.Logger {
	return &logrusLogger{
		logger: l.logger.WithFields(fields),
	}
}

// WithError returns a logger with an error field
func (l *logrusLogger) WithError(err error) interfaces.Logger {
	return &logrusLogger{
		logger: l.logger.WithError(err),
	}
}

// parseFields converts key/value pairs to logrus.Fields. A trailing key
// without a value and non-string keys are dropped.
func parseFields(fields ...interface{}) logrus.Fields {
	result := make(logrus.Fields)

	for i := 0; i < len(fields)-1; i += 2 {
		if key, ok := fields[i].(string); ok {
			result[key] = fields[i+1]
		}
	}

	return result
}
