// Package logger builds the process slog logger: a console handler on
// stderr, plus optional file and Sentry handlers fanned out together.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

type Options struct {
	Level     slog.Level
	Format    string // "text" or "json"
	AddSource bool
	// File, when set, receives JSON records at Level or above.
	File string
	// SentryDSN enables error reporting for records at error level.
	SentryDSN   string
	Environment string
	Release     string
}

// New returns the logger and a closer that flushes Sentry and closes the
// log file. Console output goes to w.
func New(w io.Writer, opts Options) (*slog.Logger, func() error, error) {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level, AddSource: opts.AddSource}

	var handlers []slog.Handler
	if opts.Format == "json" {
		handlers = append(handlers, slog.NewJSONHandler(w, handlerOpts))
	} else {
		handlers = append(handlers, slog.NewTextHandler(w, handlerOpts))
	}

	var closers []func() error
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, handlerOpts))
		closers = append(closers, f.Close)
	}

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Environment,
			Release:     opts.Release,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("initializing sentry: %w", err)
		}
		handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		closers = append(closers, func() error {
			sentry.Flush(2 * time.Second)
			return nil
		})
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	closeAll := func() error {
		var first error
		for _, c := range closers {
			if err := c(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}
	return slog.New(handler), closeAll, nil
}

// Init builds the logger with New and installs it as the slog default.
func Init(w io.Writer, opts Options) (func() error, error) {
	log, closer, err := New(w, opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(log)
	return closer, nil
}
