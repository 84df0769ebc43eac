package chash

import "iter"

// All returns an iterator over the stored key/value pairs, in bucket order
// and then insertion order within each bucket.
//
// The table must not be modified while the iterator is in use. Each call to
// range over the returned sequence starts a fresh pass.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, chain := range t.buckets {
			for _, e := range chain {
				if !yield(e.Key, e.Value) {
					return
				}
			}
		}
	}
}

// Entries is like All but yields copies of the entries.
func (t *Table[V]) Entries() iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		for _, chain := range t.buckets {
			for _, e := range chain {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over the stored keys in iteration order.
func (t *Table[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the stored values in iteration order.
func (t *Table[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Drain returns an iterator that hands ownership of every entry to the
// caller, in the same order as All.
//
// Ranging over the sequence detaches the buckets from t, leaving it with
// zero capacity: later lookups miss and inserts are dropped. Entries not
// visited before the loop stops are discarded, and ranging a second time
// yields nothing.
func (t *Table[V]) Drain() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		buckets := t.buckets
		t.buckets = nil
		t.len = 0
		for i, chain := range buckets {
			buckets[i] = nil
			for _, e := range chain {
				if !yield(e.Key, e.Value) {
					return
				}
			}
		}
	}
}
