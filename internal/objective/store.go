package objective

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/personaplus/plus/internal/timeutil"
	"github.com/personaplus/plus/store"
)

// Store persists the objective set as a single JSON document in a key-value
// store. Every write replaces the whole document and the last writer wins.
type Store struct {
	kv     store.KV
	now    func() time.Time
	logger *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the clock used to date completions.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithStoreLogger sets the logger of the store.
func WithStoreLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore returns a Store backed by kv.
func NewStore(kv store.KV, opts ...StoreOption) *Store {
	s := &Store{
		kv:     kv,
		now:    time.Now,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// LoadAll reads the objective set. A missing set is initialised to an empty
// one, which is persisted before it is returned.
func (s *Store) LoadAll(ctx context.Context) (*Set, error) {
	blob, found, err := s.kv.Get(ctx, store.KeyObjectives)
	if err != nil {
		return nil, ErrStorageRead.Wrap(err)
	}

	if !found || strings.TrimSpace(blob) == "" {
		return s.initialise(ctx)
	}

	return decodeSet(blob)
}

// initialise persists an empty set, or the set found under the legacy key if
// there is one.
func (s *Store) initialise(ctx context.Context) (*Set, error) {
	set := NewSet()

	legacy, found, err := s.kv.Get(ctx, store.KeyLegacyObjectives)
	if err != nil {
		return nil, ErrStorageRead.Wrap(err)
	}

	if found && strings.TrimSpace(legacy) != "" {
		set, err = decodeSet(legacy)
		if err != nil {
			return nil, err
		}

		s.logger.InfoContext(
			ctx,
			"migrating objectives from legacy key",
			slog.String("key", store.KeyLegacyObjectives),
			slog.Int("count", set.Len()),
		)
	} else {
		s.logger.WarnContext(
			ctx,
			"no objectives found, initialising an empty set",
		)
	}

	err = s.Save(ctx, set)
	if err != nil {
		return nil, err
	}

	return set, nil
}

func decodeSet(blob string) (*Set, error) {
	set := NewSet()

	err := json.Unmarshal([]byte(blob), set)
	if err != nil {
		return nil, ErrStorageRead.Wrap(err)
	}

	return set, nil
}

// FindByID returns the objective with the given id.
func (s *Store) FindByID(ctx context.Context, id int) (Objective, error) {
	set, err := s.LoadAll(ctx)
	if err != nil {
		return Objective{}, err
	}

	_, o, ok := set.Find(id)
	if !ok {
		return Objective{}, ErrNotFound.Fmt(id)
	}

	return o, nil
}

// Save replaces the persisted set with set.
func (s *Store) Save(ctx context.Context, set *Set) error {
	b, err := json.Marshal(set)
	if err != nil {
		return ErrStorageWrite.Wrap(err)
	}

	err = s.kv.Set(ctx, store.KeyObjectives, string(b))
	if err != nil {
		return ErrStorageWrite.Wrap(err)
	}

	return nil
}

// Remove deletes the objective with the given id and persists the result in a
// single write. An unknown id leaves the set unchanged but it is still written.
func (s *Store) Remove(ctx context.Context, id int) (*Set, error) {
	set, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	updated := set.Clone()

	if key, _, ok := updated.Find(id); ok {
		updated.Delete(key)
	} else {
		s.logger.WarnContext(
			ctx,
			"objective to remove was not found",
			slog.Int("id", id),
		)
	}

	err = s.Save(ctx, updated)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// MarkDone flags the objective with the given id as done today.
func (s *Store) MarkDone(ctx context.Context, id int) (*Set, error) {
	set, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	key, o, ok := set.Find(id)
	if !ok {
		return nil, ErrNotFound.Fmt(id)
	}

	o.WasDone = true
	o.DoneOn = timeutil.DayKey(s.now())

	updated := set.Clone()
	updated.Put(key, o)

	err = s.Save(ctx, updated)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Add stores a new objective. An id of zero is replaced with the next free id.
func (s *Store) Add(ctx context.Context, o Objective) (*Set, Objective, error) {
	set, err := s.LoadAll(ctx)
	if err != nil {
		return nil, Objective{}, err
	}

	if o.ID == 0 {
		o.ID = set.NextID()
	}

	if o.Detail == nil {
		o.Detail = DefaultDetail(o.Exercise)
	}

	err = o.Validate()
	if err != nil {
		return nil, Objective{}, err
	}

	updated := set.Clone()
	updated.Put(updated.freeKey(o.ID), o)

	err = s.Save(ctx, updated)
	if err != nil {
		return nil, Objective{}, err
	}

	return updated, o, nil
}

// Rollover clears the done flag of every objective that was not completed on
// the calendar day of today. The set is only written if something changed.
func (s *Store) Rollover(ctx context.Context, today time.Time) (*Set, error) {
	set, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	day := timeutil.DayKey(today)
	updated := set.Clone()

	var changed int

	for k, o := range set.All() {
		if !o.WasDone || o.DoneOn == day {
			continue
		}

		o.WasDone = false
		o.DoneOn = ""
		updated.Put(k, o)
		changed++
	}

	if changed == 0 {
		return set, nil
	}

	err = s.Save(ctx, updated)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(
		ctx,
		"reset objectives completed on a previous day",
		slog.Int("count", changed),
		slog.String("today", day),
	)

	return updated, nil
}
