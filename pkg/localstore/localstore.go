package localstore

import (
	"context"
	"errors"

	pkgerrors "github.com/emberandoak/storefront-core/pkg/errors"
)

// ErrNotFound is returned by Read when no document exists for the key.
var ErrNotFound = errors.New("localstore: key not found")

// Storage is the whole-document key-value capability backing the client
// state stores. Every record is read in full and written in full; partial
// updates are not part of the contract.
type Storage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Unavailable is the explicit no-storage capability. Every call fails with
// a STORAGE_UNAVAILABLE error, which the stores absorb into no-ops.
type Unavailable struct{}

func (Unavailable) Read(ctx context.Context, key string) ([]byte, error) {
	return nil, pkgerrors.New(pkgerrors.CodeStorageUnavailable, "storage capability not configured")
}

func (Unavailable) Write(ctx context.Context, key string, data []byte) error {
	return pkgerrors.New(pkgerrors.CodeStorageUnavailable, "storage capability not configured")
}

func (Unavailable) Delete(ctx context.Context, key string) error {
	return pkgerrors.New(pkgerrors.CodeStorageUnavailable, "storage capability not configured")
}
