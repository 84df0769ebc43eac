package chash

import "fmt"

// DefaultCapacity is the number of buckets allocated by New.
const DefaultCapacity = 256

// Entry is a key/value pair stored in a Table.
type Entry[V any] struct {
	Key   string
	Value V
}

// bucket is the chain of entries sharing a hash index. A nil bucket has
// never received an entry.
type bucket[V any] []Entry[V]

// Table is a fixed-capacity hash table from string keys to values of type V,
// resolving collisions by separate chaining.
//
// The bucket array never grows. A Table is not safe for concurrent use.
type Table[V any] struct {
	buckets    []bucket[V]
	len        int
	collisions int
}

// New creates an empty table with DefaultCapacity buckets.
func New[V any]() *Table[V] {
	return NewWithCapacity[V](DefaultCapacity)
}

// NewWithCapacity creates an empty table with the given number of buckets.
// A zero-capacity table stores nothing: lookups miss and inserts are dropped.
func NewWithCapacity[V any](capacity int) *Table[V] {
	if capacity < 0 {
		panic(fmt.Sprintf("chash: negative capacity %d", capacity))
	}
	return &Table[V]{
		buckets: make([]bucket[V], capacity),
	}
}

// Insert adds or updates the value for key.
//
// An existing entry is overwritten in place. Otherwise the entry is appended
// to the chain at Hash(key, capacity); appending to an already allocated
// chain counts as one collision.
func (t *Table[V]) Insert(key string, value V) {
	if e := t.lookup(key); e != nil {
		e.Value = value
		return
	}
	if len(t.buckets) == 0 {
		return
	}

	i := Hash(key, len(t.buckets))
	entry := Entry[V]{Key: key, Value: value}
	if t.buckets[i] == nil {
		t.buckets[i] = bucket[V]{entry}
	} else {
		t.collisions++
		t.buckets[i] = append(t.buckets[i], entry)
	}
	t.len++
}

// Get returns the value stored for key and whether it was found.
func (t *Table[V]) Get(key string) (V, bool) {
	if e := t.lookup(key); e != nil {
		return e.Value, true
	}
	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored for key so it can be changed
// in place. The pointer is invalidated by the next Insert.
func (t *Table[V]) GetMut(key string) (*V, bool) {
	if e := t.lookup(key); e != nil {
		return &e.Value, true
	}
	return nil, false
}

// Contains reports whether key is present.
func (t *Table[V]) Contains(key string) bool {
	return t.lookup(key) != nil
}

// Capacity returns the fixed number of buckets.
func (t *Table[V]) Capacity() int { return len(t.buckets) }

// Len returns the number of stored entries.
func (t *Table[V]) Len() int { return t.len }

// Collisions returns how many inserts appended to an existing chain.
func (t *Table[V]) Collisions() int { return t.collisions }

// lookup scans the chain for key and returns its entry, or nil.
func (t *Table[V]) lookup(key string) *Entry[V] {
	// Hash is undefined for an empty bucket array.
	if len(t.buckets) == 0 {
		return nil
	}

	chain := t.buckets[Hash(key, len(t.buckets))]
	for i := range chain {
		if chain[i].Key == key {
			return &chain[i]
		}
	}
	return nil
}
