// Package cache provides a bounded, thread-safe memoization cache for the
// results of pure functions.
//
// Memo keeps at most a fixed number of entries and evicts the least recently
// used one when a new key would exceed the capacity. It is meant for values
// that can always be recomputed from their key, such as the classification of
// a User-Agent string, so eviction never loses information.
//
// # Usage
//
//	m := cache.NewMemo[string, useragent.Result](1024)
//
//	res := m.GetOrCompute(r.UserAgent(), classifier.Classify)
//
//	st := m.Stats()
//	log.Printf("hits=%d misses=%d evictions=%d", st.Hits, st.Misses, st.Evictions)
//
// # Thread Safety
//
// All methods may be called concurrently. GetOrCompute runs the compute
// function outside the lock, so two goroutines racing on the same cold key may
// both compute it; the function must therefore be deterministic.
package cache
