package pq

// heap is the backing store for a 'PriorityQueue', a binary min-heap laid out in a slice where the parent of index i
// is (i-1)/2 and its children are 2i+1 and 2i+2.
//
// NOTE: A failed comparison aborts the sift in progress; the storage remains a well-formed slice of unique items, but
// the heap property may no longer hold everywhere.
type heap[T any] struct {
	items []item[T]
	cmp   Comparator[T]
	seq   uint64
}

// less returns a boolean indicating whether the item at index i orders strictly before the item at index j, comparing
// values using the active comparator and breaking ties by ascending sequence number.
func (h *heap[T]) less(i, j int) (bool, error) {
	res, err := h.cmp(h.items[i].value, h.items[j].value)
	if err != nil {
		return false, err
	}

	if res != 0 {
		return res < 0, nil
	}

	return h.items[i].seq < h.items[j].seq, nil
}

// push appends the given value paired with a fresh sequence number, then restores the heap property via sift-up.
func (h *heap[T]) push(value T) error {
	h.items = append(h.items, item[T]{value: value, seq: h.seq})
	h.seq++

	return h.siftUp(len(h.items) - 1)
}

// pop removes and returns the root item; the final item takes the root's place and is sifted down.
//
// NOTE: Expects a non-empty heap, emptiness is handled by the caller.
func (h *heap[T]) pop() (item[T], error) {
	root, last := h.items[0], h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]

	if len(h.items) == 0 {
		return root, nil
	}

	h.items[0] = last

	return root, h.siftDown(0)
}

// siftUp moves the item at index i towards the root, swapping with its parent while it orders strictly before it.
func (h *heap[T]) siftUp(i int) error {
	for i > 0 {
		parent := (i - 1) / 2

		before, err := h.less(i, parent)
		if err != nil {
			return err
		}

		if !before {
			break
		}

		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}

	return nil
}

// siftDown moves the item at index i towards the leaves, swapping with the smaller-ordered child while that child
// orders strictly before it; missing children are skipped.
func (h *heap[T]) siftDown(i int) error {
	for {
		smallest := i

		for child := 2*i + 1; child <= 2*i+2 && child < len(h.items); child++ {
			before, err := h.less(child, smallest)
			if err != nil {
				return err
			}

			if before {
				smallest = child
			}
		}

		if smallest == i {
			return nil
		}

		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

// init re-establishes the heap property over the entire storage by sifting down from the last internal node to the
// root, the standard linear-time heap construction.
func (h *heap[T]) init() error {
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		if err := h.siftDown(i); err != nil {
			return err
		}
	}

	return nil
}

// clone returns a copy of the heap sharing no storage with the original. Items retain their sequence numbers so that
// tie-breaking in the copy matches the original exactly.
func (h *heap[T]) clone() *heap[T] {
	items := make([]item[T], len(h.items))
	copy(items, h.items)

	return &heap[T]{items: items, cmp: h.cmp, seq: h.seq}
}
