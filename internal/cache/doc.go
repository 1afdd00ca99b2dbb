// Package cache provides a generic LRU cache with hit and miss accounting.
//
// The software driver keys compiled shader modules by kind and source so
// that recompiling identical sources, which test suites and tools do
// constantly, skips the WGSL front end.
//
//	c := cache.New[string, int](64)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
