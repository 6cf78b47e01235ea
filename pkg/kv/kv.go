package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Store is the persistence collaborator: a plain text-valued key-value
// store. The booking store keeps its whole serialized sequence under one
// fixed key, so two operations are all it needs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
