// Package store connects to the key-value data store that holds the
// objective set and the persisted log journal
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/personaplus/plus/internal/apperr"
)

// Keys used by plus. Each holds one UTF-8 string value.
const (
	KeyObjectives       = "objs"
	KeyLegacyObjectives = "objectives"
	KeyLogs             = "globalLogs"
	KeyHasLaunched      = "hasLaunched"
	KeyUsername         = "username"
)

// KnownKeys lists every key plus writes.
var KnownKeys = []string{
	KeyObjectives,
	KeyLegacyObjectives,
	KeyLogs,
	KeyHasLaunched,
	KeyUsername,
}

// Storage drivers.
const (
	DriverBolt   = "bolt"
	DriverDiskv  = "diskv"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Drivers lists the supported storage drivers.
var Drivers = []string{DriverBolt, DriverDiskv, DriverSQLite, DriverMemory}

var (
	// ErrLocked is returned when the database file is held by another process
	// for longer than the lock timeout.
	ErrLocked = &apperr.Error{
		Message: "is plus already using the store? the database is locked",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %s",
	}

	errEmptyKey = errors.New("store: key must not be empty")
)

// Pair is one result of a MultiGet call.
type Pair struct {
	Key   string
	Value string
	Found bool
}

// KV is the key-value storage interface. Values are opaque strings and every
// write replaces the previous value entirely.
type KV interface {
	// Get retrieves the value stored under key. The boolean reports whether
	// the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error
	// MultiGet retrieves several keys at once. Results follow the order of
	// keys
	MultiGet(ctx context.Context, keys []string) ([]Pair, error)
	// MultiRemove deletes several keys at once. Missing keys are ignored
	MultiRemove(ctx context.Context, keys []string) error
	// Close releases the underlying resources
	Close() error
}

// Open returns the KV implementation for the named driver rooted at path.
func Open(driver, path string) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverBolt, "":
		return NewBolt(path)
	case DriverDiskv:
		return NewDisk(path)
	case DriverSQLite:
		return NewSQLite(path)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}
}

func checkKey(key string) error {
	if key == "" {
		return errEmptyKey
	}

	return nil
}

func checkKeys(keys []string) error {
	for _, k := range keys {
		if err := checkKey(k); err != nil {
			return fmt.Errorf("%w (in %q)", err, keys)
		}
	}

	return nil
}
