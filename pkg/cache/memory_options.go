package cache

// MemoryOption configures the in-memory cache.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	maxEntries int
}

func defaultMemoryOptions() *memoryOptions {
	return &memoryOptions{
		maxEntries: 0, // 0 = unlimited
	}
}

// WithMaxEntries sets the maximum number of entries in the cache.
// When the limit is reached, the least recently used entry is evicted.
// Zero or a negative value means unlimited.
// Default: 0 (unlimited).
func WithMaxEntries(n int) MemoryOption {
	return func(o *memoryOptions) {
		o.maxEntries = max(n, 0)
	}
}
