package objective_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personaplus/plus/internal/objective"
	"github.com/personaplus/plus/store"
)

var errDisk = errors.New("disk on fire")

// recordingKV counts writes and can be told to fail.
type recordingKV struct {
	*store.MemoryKV
	failGet bool
	failSet bool
	writes  int
}

func (k *recordingKV) Get(ctx context.Context, key string) (string, bool, error) {
	if k.failGet {
		return "", false, errDisk
	}

	return k.MemoryKV.Get(ctx, key)
}

func (k *recordingKV) Set(ctx context.Context, key, value string) error {
	if k.failSet {
		return errDisk
	}

	k.writes++

	return k.MemoryKV.Set(ctx, key, value)
}

func fixedClock() time.Time {
	return time.Date(2024, time.June, 26, 9, 30, 0, 0, time.UTC)
}

func newTestStore(t *testing.T, seed *objective.Set) (*objective.Store, *recordingKV) {
	t.Helper()

	kv := &recordingKV{MemoryKV: store.NewMemory()}

	if seed != nil {
		b, err := json.Marshal(seed)
		require.NoError(t, err)

		require.NoError(t, kv.MemoryKV.Set(context.Background(), store.KeyObjectives, string(b)))
	}

	s := objective.NewStore(
		kv,
		objective.WithClock(fixedClock),
		objective.WithStoreLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	return s, kv
}

func TestLoadAllInitialisesMissingSet(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t, nil)

	set, err := s.LoadAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, set.Len())
	assert.Equal(t, 1, kv.writes)

	blob, found, err := kv.MemoryKV.Get(ctx, store.KeyObjectives)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "{}", blob)
}

func TestLoadAllMigratesLegacyKey(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t, nil)

	legacy := `[{"id":1,"exercise":"Walking","duration":5,"days":[true,true,true,true,true,true,true]}]`
	require.NoError(t, kv.MemoryKV.Set(ctx, store.KeyLegacyObjectives, legacy))

	set, err := s.LoadAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"0"}, set.Keys())

	blob, _, err := kv.MemoryKV.Get(ctx, store.KeyObjectives)
	require.NoError(t, err)
	assert.Contains(t, blob, `"0":{`)
}

func TestLoadAllErrors(t *testing.T) {
	ctx := context.Background()

	s, kv := newTestStore(t, nil)
	kv.failGet = true

	_, err := s.LoadAll(ctx)
	assert.ErrorIs(t, err, objective.ErrStorageRead)
	assert.ErrorIs(t, err, errDisk)

	s, kv = newTestStore(t, nil)
	require.NoError(t, kv.MemoryKV.Set(ctx, store.KeyObjectives, "{not json"))

	_, err = s.LoadAll(ctx)
	assert.ErrorIs(t, err, objective.ErrStorageRead)
}

func TestSaveThenLoadAll(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t, nil)

	want := sampleSet()

	require.NoError(t, s.Save(ctx, want))

	got, err := s.LoadAll(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(want.Keys(), got.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	for k, o := range want.All() {
		stored, ok := got.Get(k)
		require.True(t, ok, k)

		if diff := cmp.Diff(o, stored); diff != "" {
			t.Errorf("objective %q mismatch (-want +got):\n%s", k, diff)
		}
	}

	kv.failSet = true

	err = s.Save(ctx, want)
	assert.ErrorIs(t, err, objective.ErrStorageWrite)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t, sampleSet())

	set, err := s.Remove(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "legacy"}, set.Keys())
	assert.Equal(t, 1, kv.writes)

	loaded, err := s.LoadAll(ctx)
	require.NoError(t, err)

	_, _, ok := loaded.Find(7)
	assert.False(t, ok)

	set, err = s.Remove(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, 2, kv.writes, "removing an unknown id still writes the set")
}

func TestMarkDone(t *testing.T) {
	ctx := context.Background()
	seed := sampleSet()
	s, kv := newTestStore(t, seed)

	_, err := s.MarkDone(ctx, 7)
	require.NoError(t, err)

	loaded, err := s.LoadAll(ctx)
	require.NoError(t, err)

	_, got, ok := loaded.Find(7)
	require.True(t, ok)

	_, want, _ := seed.Find(7)
	want.WasDone = true
	want.DoneOn = "2024-06-26"

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("objective mismatch (-want +got):\n%s", diff)
	}

	// the other objectives are untouched
	for _, id := range []int{1, 2} {
		_, before, _ := seed.Find(id)
		_, after, _ := loaded.Find(id)

		if diff := cmp.Diff(before, after); diff != "" {
			t.Errorf("objective %d changed (-want +got):\n%s", id, diff)
		}
	}

	writes := kv.writes

	_, err = s.MarkDone(ctx, 99)
	assert.ErrorIs(t, err, objective.ErrNotFound)
	assert.Equal(t, writes, kv.writes, "marking an unknown id must not write")
}

func TestFindByID(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, sampleSet())

	o, err := s.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, objective.PushUp, o.Exercise)

	_, err = s.FindByID(ctx, 3)
	assert.ErrorIs(t, err, objective.ErrNotFound)
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, sampleSet())

	set, o, err := s.Add(ctx, objective.Objective{
		Exercise: objective.Running,
		Duration: 30,
		Days:     objective.Week{true},
	})
	require.NoError(t, err)

	assert.Equal(t, 8, o.ID)
	assert.Equal(t, objective.RunningDetail{}, o.Detail)
	assert.Equal(t, []string{"1", "7", "8", "legacy"}, set.Keys())

	_, _, err = s.Add(ctx, objective.Objective{Exercise: objective.Running})
	assert.Error(t, err)
}

func TestRollover(t *testing.T) {
	ctx := context.Background()

	seed := objective.NewSet()
	seed.Put("1", objective.Objective{ID: 1, Duration: 5, WasDone: true, DoneOn: "2024-06-25"})
	seed.Put("2", objective.Objective{ID: 2, Duration: 5, WasDone: true, DoneOn: "2024-06-26"})
	seed.Put("3", objective.Objective{ID: 3, Duration: 5, WasDone: true})
	seed.Put("4", objective.Objective{ID: 4, Duration: 5})

	s, kv := newTestStore(t, seed)

	set, err := s.Rollover(ctx, fixedClock())
	require.NoError(t, err)
	assert.Equal(t, 1, kv.writes)

	var done []int
	for _, o := range set.All() {
		if o.WasDone {
			done = append(done, o.ID)
		}
	}

	assert.Equal(t, []int{2}, done)

	_, err = s.Rollover(ctx, fixedClock())
	require.NoError(t, err)
	assert.Equal(t, 1, kv.writes, "a second rollover on the same day has nothing to write")
}
