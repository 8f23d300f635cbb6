// Package benchmarks compares TryPop and CheckPop across the cache
// libraries adapted in pkg/store.
//
// Run with: go test ./benchmarks -run=TestStoreSuite -v
// or:       go test ./benchmarks -bench=.
package benchmarks
