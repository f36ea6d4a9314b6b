package cache

// Cache is a generic in-process key-value store.
// Entries never expire; an implementation may evict when bounded.
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist.
	Get(key string) (V, error)

	// Set stores a value, replacing any previous one.
	Set(key string, value V)

	// Delete removes a key from the cache.
	Delete(key string)

	// Len returns the number of stored entries.
	Len() int

	// Clear removes all entries from the cache.
	Clear()
}

// Loader computes a value for a cache miss.
type Loader[V any] func() (V, error)

// GetOrLoad retrieves a value from the cache, or calls load to compute it on a miss.
// If load returns an error, nothing is stored and the error is returned, so the
// next call retries.
//
// Memory de-duplicates concurrent misses for the same key; other
// implementations fall back to a plain check-load-store sequence.
func GetOrLoad[V any](c Cache[V], key string, load Loader[V]) (V, error) {
	if m, ok := c.(*Memory[V]); ok {
		return m.GetOrLoad(key, load)
	}

	if v, err := c.Get(key); err == nil {
		return v, nil
	}

	v, err := load()
	if err != nil {
		var zero V
		return zero, err
	}
	c.Set(key, v)
	return v, nil
}
