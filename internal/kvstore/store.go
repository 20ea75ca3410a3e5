// Package kvstore is the string key-value layer behind simulator history and
// the diagnostic quiz. Values are opaque serialized documents.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("kvstore: key not found")

// Store reads and writes whole values by key. Writes are last-writer-wins.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
