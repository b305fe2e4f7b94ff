// Package storage provides the local key-value storage the identity store
// persists into. Every key holds one opaque value; a write fully replaces the
// previous value.
package storage

import "context"

// Storage is a local key-value store.
//
// Get returns (nil, nil) for an absent key. Delete of an absent key is a no-op.
// Update runs fn against a transactional view: either every write fn made is
// applied, or, when fn returns an error, none is.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Update(ctx context.Context, fn func(ctx context.Context, tx Storage) error) error
}
