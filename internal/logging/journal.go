package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/personaplus/plus/store"
)

// EntryType classifies a journal entry.
type EntryType string

const (
	TypeLog     EntryType = "log"
	TypeWarn    EntryType = "warn"
	TypeError   EntryType = "error"
	TypeSuccess EntryType = "success"
)

// AttrSuccess marks an info record as a success in the journal.
const AttrSuccess = "success"

// maxJournalEntries bounds the journal; the oldest entries are dropped first.
const maxJournalEntries = 500

// Entry is a single journal record as persisted under store.KeyLogs.
type Entry struct {
	Message   string    `json:"message"`
	Type      EntryType `json:"type"`
	Timestamp int64     `json:"timestamp"` // unix milliseconds
}

// Time returns the time the entry was recorded.
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Success logs msg at info level, flagged as a success in the journal.
func Success(ctx context.Context, l *slog.Logger, msg string, args ...any) {
	l.InfoContext(ctx, msg, append(args, slog.Bool(AttrSuccess, true))...)
}

type journal struct {
	kv store.KV
	mu sync.Mutex
}

// JournalHandler appends info records and above to the journal.
type JournalHandler struct {
	j      *journal
	attrs  []slog.Attr
	prefix string
}

// NewJournalHandler returns a handler that writes to the journal held in kv.
func NewJournalHandler(kv store.KV) *JournalHandler {
	return &JournalHandler{j: &journal{kv: kv}}
}

func (h *JournalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *JournalHandler) Handle(ctx context.Context, r slog.Record) error {
	entry := Entry{
		Type:      TypeLog,
		Timestamp: r.Time.UnixMilli(),
	}

	switch {
	case r.Level >= slog.LevelError:
		entry.Type = TypeError
	case r.Level >= slog.LevelWarn:
		entry.Type = TypeWarn
	}

	var b strings.Builder

	b.WriteString(r.Message)

	write := func(a slog.Attr) {
		if a.Key == AttrSuccess {
			if a.Value.Kind() == slog.KindBool && a.Value.Bool() &&
				entry.Type == TypeLog {
				entry.Type = TypeSuccess
			}

			return
		}

		fmt.Fprintf(&b, " %s%s=%v", h.prefix, a.Key, a.Value.Resolve())
	}

	for _, a := range h.attrs {
		write(a)
	}

	r.Attrs(func(a slog.Attr) bool {
		write(a)
		return true
	})

	entry.Message = b.String()

	return h.j.append(ctx, entry)
}

func (h *JournalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(c.attrs[:len(c.attrs):len(c.attrs)], attrs...)

	return &c
}

func (h *JournalHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (j *journal) append(ctx context.Context, e Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries, err := ReadJournal(ctx, j.kv)
	if err != nil {
		return err
	}

	entries = append(entries, e)

	if len(entries) > maxJournalEntries {
		entries = entries[len(entries)-maxJournalEntries:]
	}

	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return j.kv.Set(ctx, store.KeyLogs, string(b))
}

// ReadJournal returns the journal entries, oldest first.
func ReadJournal(ctx context.Context, kv store.KV) ([]Entry, error) {
	blob, found, err := kv.Get(ctx, store.KeyLogs)
	if err != nil {
		return nil, err
	}

	if !found || strings.TrimSpace(blob) == "" {
		return nil, nil
	}

	var entries []Entry

	err = json.Unmarshal([]byte(blob), &entries)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}

	return entries, nil
}

// ClearJournal removes every journal entry.
func ClearJournal(ctx context.Context, kv store.KV) error {
	return kv.MultiRemove(ctx, []string{store.KeyLogs})
}
