// Package blobstore persists string-keyed JSON blobs to a data
// directory, one file per key. It mirrors slice state the way a
// browser local storage would: written through on every mutation,
// read once at startup.
package blobstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/spf13/afero"
)

const (
	blobExt = ".json"
	dirPerm = 0o755
)

var _ port.BlobStore = (*BlobStore)(nil)

type BlobStore struct {
	fs  afero.Fs
	dir string
}

// New creates the data directory if needed. The filesystem is
// injectable, tests run on [afero.NewMemMapFs].
func New(fsys afero.Fs, dir string) (BlobStore, error) {
	const op = "BlobStore.New"

	if err := fsys.MkdirAll(dir, dirPerm); err != nil {
		return BlobStore{}, fmt.Errorf("%s: %w", op, err)
	}
	return BlobStore{fs: fsys, dir: dir}, nil
}

// Load decodes the blob into v. A missing key reports
// [domain.ErrNotFound], a corrupt blob reports the decode error.
func (s BlobStore) Load(key string, v any) error {
	const op = "BlobStore.Load"

	b, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if pathErr(err) {
			return fmt.Errorf("%s: %q: %w", op, key, domain.ErrNotFound)
		}
		return fmt.Errorf("%s: %q: %w", op, key, err)
	}

	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%s: %q: %w", op, key, err)
	}
	return nil
}

// Store encodes v and rewrites the blob in whole.
func (s BlobStore) Store(key string, v any) error {
	const op = "BlobStore.Store"

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: %q: %w", op, key, err)
	}

	if err := afero.WriteFile(s.fs, s.path(key), b, 0o644); err != nil {
		return fmt.Errorf("%s: %q: %w", op, key, err)
	}
	return nil
}

// Delete removes the blob file. A missing key reports
// [domain.ErrNotFound].
func (s BlobStore) Delete(key string) error {
	const op = "BlobStore.Delete"

	err := s.fs.Remove(s.path(key))
	if err != nil {
		if pathErr(err) {
			return fmt.Errorf("%s: %q: %w", op, key, domain.ErrNotFound)
		}
		return fmt.Errorf("%s: %q: %w", op, key, err)
	}
	return nil
}

func (s BlobStore) path(key string) string {
	return filepath.Join(s.dir, key+blobExt)
}

func pathErr(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
