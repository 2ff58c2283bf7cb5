package tsv

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/zeebo/xxh3"
)

// documentCache stores parsed results keyed by content hash.
var documentCache sync.Map

// cacheEntry parses its document once and then serves the shared result.
type cacheEntry struct {
	once   sync.Once
	input  string
	result *Result
	err    error
}

// ParseString parses a complete document held in memory. Results are cached
// by content hash, so repeated parses of identical input return the same
// shared *Result, which callers must treat as read-only. Use [WithoutCache]
// to bypass the cache and get a private copy.
func ParseString(ctx context.Context, input string, opts ...Option) (*Result, error) {
	var cfg config

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.nocache {
		return Parse(ctx, strings.NewReader(input), opts...)
	}

	key := strconv.FormatUint(xxh3.HashString(input), 36)

	value, hit := documentCache.LoadOrStore(key, &cacheEntry{input: input})

	entry, ok := value.(*cacheEntry)
	if !ok || entry.input != input {
		// Hash collision: serve this document without caching it.
		return Parse(ctx, strings.NewReader(input), opts...)
	}

	cfg.logger.TraceContext(ctx, "cache lookup",
		slog.String("key", key),
		slog.Bool("hit", hit))

	entry.once.Do(func() {
		entry.result, entry.err = Parse(ctx, strings.NewReader(input), opts...)
	})

	return entry.result, entry.err
}

// ClearCache removes all cached documents. This is primarily useful for
// testing or when memory needs to be reclaimed.
func ClearCache() {
	documentCache.Clear()
}
