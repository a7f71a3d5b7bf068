// Package kv defines the blob storage the tracker persists its documents in.
// The store reads and writes whole JSON documents under well-known keys, so
// the backend surface is deliberately small.
package kv

import "context"

// Backend is a string-keyed blob store. Get returns (nil, nil) when the key
// is absent; callers treat a missing document the same as an empty one.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
