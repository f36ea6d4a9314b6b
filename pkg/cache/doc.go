// Package cache provides a generic in-memory cache used to memoise parsed values.
//
// # Interface
//
// The [Cache] interface is generic over value type V:
//
//   - Get(key) (V, error): retrieve a value, ErrNotFound on miss
//   - Set(key, value): store a value
//   - Delete(key): remove a key
//   - Len() int: number of entries
//   - Clear(): remove all entries
//
// Entries never expire. A [Memory] cache created without [WithMaxEntries]
// grows for the life of the process, which suits small, bounded key spaces
// such as locale identifiers.
//
// # Loading
//
// [GetOrLoad] and [Memory.GetOrLoad] compute a value on a miss. Concurrent
// misses for the same key are collapsed with golang.org/x/sync/singleflight,
// so a key maps to exactly one stored value:
//
//	locales := cache.NewMemory[*locale.Locale]()
//	l, err := locales.GetOrLoad("de_AT", func() (*locale.Locale, error) {
//	    return locale.Parse("de_AT")
//	})
//
// Errors returned by the loader are never cached.
//
// # Eviction Callbacks
//
// With a bound configured the least recently used entry is evicted first:
//
//	c := cache.NewMemory[*Catalog](cache.WithMaxEntries(100))
//	c.SetEvictCallback(func(key string, cat *Catalog) {
//	    log.Printf("evicted %s", key)
//	})
//
// The callback is triggered on LRU eviction, manual deletion and clearing.
package cache
