// Package cache provides the cache-aside layer used in front of the movie
// metadata API. The cache is strictly an optimisation: every implementation
// degrades to a miss on failure and never propagates infrastructure errors
// to its callers.
package cache

import (
	"context"
	"time"
)

// Cache is a read-through string cache. Get reports a miss both for absent
// keys and for any backend failure; Set is best-effort and never returns an
// error to the caller.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
	Close() error
}

// Nop is the disabled-cache implementation selected when no Redis address
// is configured. Every lookup misses and every write is discarded.
type Nop struct{}

func NewNop() Nop { return Nop{} }

func (Nop) Get(_ context.Context, _ string) (string, bool) { return "", false }

func (Nop) Set(_ context.Context, _ string, _ string, _ time.Duration) {}

func (Nop) Close() error { return nil }
