// Package service holds one state container per storefront slice.
// Each container guards its slice with a mutex, restores it from the
// blob store once at construction and mirrors it back after every
// mutation.
package service

import (
	"errors"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// loadBlob restores slice state tolerantly: a missing key is normal,
// a corrupt blob is discarded with a warning. It never fails.
func loadBlob(blobs port.BlobStore, key string, v any) {
	const op = "service.loadBlob"

	err := blobs.Load(key, v)
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		return
	}
	slog.Warn("discarding persisted state",
		"op", op, "key", key, "err", err)
}

// storeBlob mirrors slice state after a commit. Persistence failure
// is logged, not propagated: the in-memory slice stays the source of
// truth after startup.
func storeBlob(blobs port.BlobStore, key string, v any, op string) {
	if err := blobs.Store(key, v); err != nil {
		slog.Error("failed to persist state",
			"op", op, "key", key, "err", err)
	}
}

func deleteBlob(blobs port.BlobStore, key, op string) {
	if err := blobs.Delete(key); err != nil &&
		!errors.Is(err, domain.ErrNotFound) {
		slog.Error("failed to delete persisted state",
			"op", op, "key", key, "err", err)
	}
}
