package chash

import "fmt"

// Hash maps key to a bucket index in [0, capacity) by summing the Unicode
// code points of its runes and reducing the sum modulo capacity.
//
// The sum ignores rune position, so anagrams always share a bucket.
// Hash panics if capacity is not positive.
func Hash(key string, capacity int) int {
	if capacity < 0 {
		panic(fmt.Sprintf("chash: negative capacity %d", capacity))
	}
	sum := 0
	for _, r := range key {
		sum += int(r)
	}
	return sum % capacity
}
