// Package logging sets up structured logging to a rotating file and to the
// journal kept in the store
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/personaplus/plus/internal/osutil"
	"github.com/personaplus/plus/store"
)

const (
	maxLogSizeMB  = 5
	maxLogBackups = 3
	maxLogAgeDays = 28
)

// Options configures New.
type Options struct {
	// Journal receives a copy of every record at info level or above. Nil
	// disables the journal
	Journal store.KV
	// Path of the log file. An empty path discards file output
	Path  string
	Level slog.Level
}

// New returns a logger writing JSON records to a rotating file and, if
// enabled, to the journal. The returned closer releases the log file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)

	if opts.Path != "" {
		err := os.MkdirAll(filepath.Dir(opts.Path), osutil.DirPermission)
		if err != nil {
			return nil, nil, err
		}

		rotating := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
		}

		w, closer = rotating, rotating
	}

	handlers := []slog.Handler{
		slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level}),
	}

	if opts.Journal != nil {
		handlers = append(handlers, NewJournalHandler(opts.Journal))
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0]), closer, nil
	}

	return slog.New(fanout(handlers)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fanout sends every record to each handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error

	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}

		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))

	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}

	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))

	for i, h := range f {
		out[i] = h.WithGroup(name)
	}

	return out
}
