package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/personaplus/plus/internal/osutil"
)

const (
	kvBucket        = "kv"
	boltLockTimeout = 1 * time.Second
)

// BoltKV is a BoltDB backed KV. The database file is opened for the duration
// of each call only, so that a reminder daemon and an interactive session can
// take turns on the same file.
type BoltKV struct {
	path    string
	timeout time.Duration
}

func (c *BoltKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}

	var (
		value string
		found bool
	)

	err := c.view(ctx, func(b *bolt.Bucket) error {
		v := b.Get([]byte(key))
		if v == nil {
			return nil
		}

		// v is only valid for the life of the transaction
		value, found = string(v), true

		return nil
	})

	return value, found, err
}

func (c *BoltKV) Set(ctx context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	return c.update(ctx, func(b *bolt.Bucket) error {
		return b.Put([]byte(key), []byte(value))
	})
}

func (c *BoltKV) MultiGet(ctx context.Context, keys []string) ([]Pair, error) {
	if err := checkKeys(keys); err != nil {
		return nil, err
	}

	pairs := make([]Pair, len(keys))

	err := c.view(ctx, func(b *bolt.Bucket) error {
		for i, k := range keys {
			pairs[i].Key = k

			if v := b.Get([]byte(k)); v != nil {
				pairs[i].Value, pairs[i].Found = string(v), true
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return pairs, nil
}

func (c *BoltKV) MultiRemove(ctx context.Context, keys []string) error {
	if err := checkKeys(keys); err != nil {
		return err
	}

	return c.update(ctx, func(b *bolt.Bucket) error {
		for _, k := range keys {
			err := b.Delete([]byte(k))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Close is a no-op as no handle is held between calls.
func (c *BoltKV) Close() error {
	return nil
}

func (c *BoltKV) view(ctx context.Context, fn func(*bolt.Bucket) error) error {
	return c.withDB(ctx, func(db *bolt.DB) error {
		return db.View(func(tx *bolt.Tx) error {
			return fn(tx.Bucket([]byte(kvBucket)))
		})
	})
}

func (c *BoltKV) update(ctx context.Context, fn func(*bolt.Bucket) error) error {
	return c.withDB(ctx, func(db *bolt.DB) error {
		return db.Update(func(tx *bolt.Tx) error {
			return fn(tx.Bucket([]byte(kvBucket)))
		})
	})
}

func (c *BoltKV) withDB(ctx context.Context, fn func(*bolt.DB) error) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}

	db, err := openDB(c.path, c.timeout)
	if err != nil {
		return err
	}

	defer func() {
		cerr := db.Close()
		if err == nil {
			err = cerr
		}
	}()

	return fn(db)
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string, timeout time.Duration) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: timeout},
	)
	if err != nil {
		if errors.Is(err, berrors.ErrTimeout) {
			return nil, ErrLocked.Wrap(err)
		}

		return nil, err
	}

	return db, nil
}

// NewBolt returns a BoltDB backed KV stored at dbPath. The file and its bucket
// are created if they do not exist already.
func NewBolt(dbPath string) (*BoltKV, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	db, err := openDB(dbPath, boltLockTimeout)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(kvBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	err = db.Close()
	if err != nil {
		return nil, err
	}

	return &BoltKV{
		path:    dbPath,
		timeout: boltLockTimeout,
	}, nil
}
