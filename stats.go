package chash

// Stats summarizes how entries are spread over a table's buckets.
type Stats struct {
	Capacity     int
	Len          int
	Collisions   int
	UsedBuckets  int
	LongestChain int
}

// LoadFactor returns entries per bucket, or 0 for a zero-capacity table.
func (s Stats) LoadFactor() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Len) / float64(s.Capacity)
}

// Stats walks the bucket array and reports occupancy alongside the
// running counters.
func (t *Table[V]) Stats() Stats {
	s := Stats{
		Capacity:   len(t.buckets),
		Len:        t.len,
		Collisions: t.collisions,
	}
	for _, chain := range t.buckets {
		if chain == nil {
			continue
		}
		s.UsedBuckets++
		if len(chain) > s.LongestChain {
			s.LongestChain = len(chain)
		}
	}
	return s
}
