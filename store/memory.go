package store

import (
	"context"
	"sync"
)

// MemoryKV keeps values in process memory. It backs the ephemeral mode and
// tests.
type MemoryKV struct {
	m  map[string]string
	mu sync.RWMutex
}

// NewMemory returns an empty MemoryKV.
func NewMemory() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

func (k *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}

	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	v, ok := k.m[key]

	return v, ok, nil
}

func (k *MemoryKV) Set(ctx context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	k.m[key] = value

	return nil
}

func (k *MemoryKV) MultiGet(ctx context.Context, keys []string) ([]Pair, error) {
	if err := checkKeys(keys); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	pairs := make([]Pair, len(keys))

	for i, key := range keys {
		v, ok := k.m[key]
		pairs[i] = Pair{Key: key, Value: v, Found: ok}
	}

	return pairs, nil
}

func (k *MemoryKV) MultiRemove(ctx context.Context, keys []string) error {
	if err := checkKeys(keys); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	for _, key := range keys {
		delete(k.m, key)
	}

	return nil
}

func (k *MemoryKV) Close() error {
	return nil
}
