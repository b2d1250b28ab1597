package utils

// Counted inventories are plain maps from key to a positive count. A key is
// removed as soon as its count reaches zero so no zero-value entries persist.

// Count returns the count held for key.
func Count(counts map[string]int, key string) int {
	return counts[key]
}

// AddCount adds n units of key. Non-positive n is ignored.
func AddCount(counts map[string]int, key string, n int) {
	if n <= 0 {
		return
	}
	counts[key] += n
}

// RemoveCount removes n units of key. It fails without touching the map when
// fewer than n units are held or n is not positive.
func RemoveCount(counts map[string]int, key string, n int) bool {
	if n <= 0 {
		return false
	}
	have := counts[key]
	if have < n {
		return false
	}
	if have == n {
		delete(counts, key)
		return true
	}
	counts[key] = have - n
	return true
}
