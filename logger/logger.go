package logger

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetLevel sets the global zerolog level from a --log-level flag value.
func SetLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		log.Logger = log.Level(zerolog.DebugLevel)
	case "info", "":
		log.Logger = log.Level(zerolog.InfoLevel)
	case "warn", "warning":
		log.Logger = log.Level(zerolog.WarnLevel)
	case "error":
		log.Logger = log.Level(zerolog.ErrorLevel)
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup sends log output to the console and, when fileName is set, also to
// that file. The returned closer releases the file.
func Setup(fileName string) (io.Closer, error) {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if fileName == "" {
		log.Logger = log.Output(console)
		return nopCloser{}, nil
	}

	path := os.ExpandEnv(fileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(console, f))
	return f, nil
}

type errorWriter struct{}

func (errorWriter) Write(p []byte) (int, error) {
	log.Error().Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}

// ErrorLog adapts the global logger for net/http's server error log.
func ErrorLog() *stdlog.Logger {
	return stdlog.New(errorWriter{}, "", 0)
}
