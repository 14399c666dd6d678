package store

import (
	"context"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/personaplus/plus/internal/osutil"
)

// DiskKV stores each key in its own file beneath a base directory.
type DiskKV struct {
	d *diskv.Diskv
}

func flatTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func inverseFlatTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

// NewDisk returns a diskv backed KV rooted at basePath.
func NewDisk(basePath string) (*DiskKV, error) {
	err := os.MkdirAll(basePath, osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	return &DiskKV{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: flatTransform,
		InverseTransform:  inverseFlatTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
		FilePerm:          osutil.FilePermission,
		PathPerm:          osutil.DirPermission,
	})}, nil
}

func (k *DiskKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}

	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	if !k.d.Has(key) {
		return "", false, nil
	}

	b, err := k.d.Read(key)
	if err != nil {
		return "", false, err
	}

	return string(b), true, nil
}

func (k *DiskKV) Set(ctx context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return k.d.WriteString(key, value)
}

func (k *DiskKV) MultiGet(ctx context.Context, keys []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(keys))

	for _, key := range keys {
		v, found, err := k.Get(ctx, key)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, Pair{Key: key, Value: v, Found: found})
	}

	return pairs, nil
}

func (k *DiskKV) MultiRemove(ctx context.Context, keys []string) error {
	if err := checkKeys(keys); err != nil {
		return err
	}

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !k.d.Has(key) {
			continue
		}

		if err := k.d.Erase(key); err != nil {
			return err
		}
	}

	return nil
}

// Close is a no-op as diskv holds no open handles.
func (k *DiskKV) Close() error {
	return nil
}
