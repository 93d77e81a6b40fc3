// Package cache provides a small byte cache for rendered previews.
//
// Rendering a preview through Graphviz is the slowest step of the CLI, and
// the result depends only on the DOT source and the output format. The
// CLI therefore keys rendered artifacts by a SHA-256 of those inputs and
// stores them in a [FileCache] under the user cache directory. A
// [NullCache] disables caching (--no-cache).
//
// Cache operations report hits, misses and writes through
// [observability.CacheHooks], labelled with the key type ("preview").
//
// [observability.CacheHooks]: github.com/matzehuels/audiocircuits/pkg/observability.CacheHooks
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key. A miss returns (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// keyType returns the key segment before the hash, so "v1:preview:<hash>"
// and "preview:<hash>" both report "preview".
func keyType(key string) string {
	i := strings.LastIndexByte(key, ':')
	if i <= 0 {
		return "unknown"
	}
	head := key[:i]
	return head[strings.LastIndexByte(head, ':')+1:]
}
