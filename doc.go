/*
Package chash provides a fixed-capacity hash table from string keys to values
of any type, using separate chaining for collision resolution.

Table is a small, readable implementation of the textbook design: an array of
buckets, each holding the chain of entries whose keys hashed to it. It is
meant for studying hash-table mechanics rather than as a production store.

Basic usage:

	import "github.com/theflywheel/chash"

	t := chash.New[int]() // 256 buckets
	t.Insert("Woffo", 1)
	t.Insert("Gato", 2)

	if v, ok := t.Get("Gato"); ok {
		fmt.Println("Value:", v)
	}

	// Update in place
	if p, ok := t.GetMut("Woffo"); ok {
		*p += 10
	}

	for k, v := range t.All() {
		fmt.Println(k, v)
	}

Features:

  - Generic value type, string keys compared by exact equality
  - Fixed bucket count chosen at construction, never resized
  - Buckets allocate their chain only when the first entry arrives
  - Collision counter and occupancy statistics
  - Borrowing (All, Keys, Values, Entries) and consuming (Drain) iterators

Implementation Details:

Keys are placed with Hash, which sums the Unicode code points of the key and
takes the result modulo the bucket count. The sum is position-independent, so
anagrams such as "listen" and "silent" always land in the same bucket. Lookups
hash the key and scan that bucket's chain linearly.

Inserting a new key appends it to the end of its chain, so iteration visits
buckets in index order and, within a bucket, entries in insertion order.
Overwriting an existing key keeps its position.

A Table is not safe for concurrent use; callers sharing one must provide their
own locking.
*/
package chash
