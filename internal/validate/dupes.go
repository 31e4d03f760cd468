// internal/validate/dupes.go
package validate

// HasDuplicates reports whether keys holds fewer distinct values than entries.
// Shared by sensor ids, asset ids and per-asset sensor references.
func HasDuplicates[K comparable](keys []K) bool {
	return DistinctCount(keys) < len(keys)
}

// DistinctCount returns the number of distinct values in keys.
func DistinctCount[K comparable](keys []K) int {
	seen := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	return len(seen)
}
