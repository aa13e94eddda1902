// Package csync provides small thread-safe collections.
//
// The searcher in internal/catalog runs inside Bubble Tea commands, which
// execute on their own goroutines, so anything it shares between searches
// lives here behind a mutex.
//
//	cache := csync.NewBoundedMap[string, []Entry](128)
//	cache.Set("ap", entries)
//	if hit, ok := cache.Get("ap"); ok {
//		// use hit
//	}
package csync
