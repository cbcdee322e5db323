package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

var logger = log.New()

func init() {
	logger.Out = os.Stdout
	logger.Formatter = &log.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}
	logger.SetLevel(log.InfoLevel)
}

// Configure applies the level and format read from configuration. Format is "json" or "text".
func Configure(level, format string) error {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		logger.Formatter = &log.JSONFormatter{TimestampFormat: time.RFC3339Nano}
	case "text":
		logger.Formatter = &log.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339Nano}
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	logger.SetLevel(lvl)
	return nil
}

// SetOutput redirects every entry, mainly for tests.
func SetOutput(w io.Writer) {
	logger.Out = w
}

// Logger exposes the underlying logrus instance for bridges such as gorm's logger.
func Logger() *log.Logger {
	return logger
}

func GetLogger() *log.Entry {
	function, file, line, _ := runtime.Caller(1)

	functionObject := runtime.FuncForPC(function)
	entry := logger.WithFields(log.Fields{
		"function": functionObject.Name(),
		"file":     file,
		"line":     line,
	})

	return entry
}
