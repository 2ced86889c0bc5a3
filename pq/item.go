package pq

// item pairs a stored value with the sequence number assigned to it at enqueue time. Sequence numbers are strictly
// increasing per queue and break ties between values the comparator reports as equal, oldest first.
//
// NOTE: Items are an internal pairing, callers only ever observe the stored values.
type item[T any] struct {
	value T
	seq   uint64
}
