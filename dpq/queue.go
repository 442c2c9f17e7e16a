package dpq

// entry is one (key, item) pairing inside a primary-value bucket.
type entry struct {
	key  Key
	item interface{}
}

// Queue is a dual-priority queue keyed by lexicographically ordered
// tuples. Items are grouped into buckets by their key's first
// ("primary") component; within a bucket, the minimum is found by a
// linear scan over the remaining components. Re-pushing an item that
// is already present replaces its key (idempotent update), matching
// the Python DPQ's push semantics used by update_vertex.
type Queue struct {
	buckets    map[float64][]entry
	ledger     map[interface{}]Key
	minPrimary float64
	minValid   bool
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{
		buckets: make(map[float64][]entry),
		ledger:  make(map[interface{}]Key),
	}
}

// Push inserts item with the given key, or replaces item's existing
// key if it is already present.
func (q *Queue) Push(item interface{}, key Key) {
	q.DeleteKey(item)

	q.ledger[item] = key
	p := key[0]
	q.buckets[p] = append(q.buckets[p], entry{key: key, item: item})
	if !q.minValid {
		q.recomputeMin()
	} else if p < q.minPrimary {
		q.minPrimary = p
	}
}

// DeleteKey removes item from the queue. It is a no-op if item is
// not present, matching the Python DPQ's idempotent delete_key.
func (q *Queue) DeleteKey(item interface{}) {
	key, ok := q.ledger[item]
	if !ok {
		return
	}
	delete(q.ledger, item)

	p := key[0]
	bucket := q.buckets[p]
	for i, e := range bucket {
		if e.item == item {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(q.buckets, p)
		if q.minValid && p == q.minPrimary {
			q.minValid = false
		}
	} else {
		q.buckets[p] = bucket
	}
}

// Contains reports whether item currently has an entry in the queue.
func (q *Queue) Contains(item interface{}) bool {
	_, ok := q.ledger[item]
	return ok
}

// KeyOf returns item's current key, if present.
func (q *Queue) KeyOf(item interface{}) (Key, bool) {
	k, ok := q.ledger[item]
	return k, ok
}

// Size returns the number of items currently queued.
func (q *Queue) Size() int {
	return len(q.ledger)
}

// recomputeMin scans all buckets for the smallest primary value.
// Called only while the cached minimum is invalid, i.e. after the
// previous minimum bucket has emptied out.
func (q *Queue) recomputeMin() {
	first := true
	for p := range q.buckets {
		if first || p < q.minPrimary {
			q.minPrimary = p
			first = false
		}
	}
	q.minValid = !first
}

// Peek returns the item with the smallest key, without removing it.
// It returns ErrEmptyQueue if the queue has no items.
func (q *Queue) Peek() (interface{}, Key, error) {
	if !q.minValid {
		q.recomputeMin()
	}
	if !q.minValid {
		return nil, nil, ErrEmptyQueue
	}

	bucket := q.buckets[q.minPrimary]
	best := bucket[0]
	for _, e := range bucket[1:] {
		c, err := Compare(e.key, best.key)
		if err != nil {
			return nil, nil, err
		}
		if c < 0 {
			best = e
		}
	}
	return best.item, best.key, nil
}

// Pop removes and returns the item with the smallest key. It returns
// ErrEmptyQueue if the queue has no items.
func (q *Queue) Pop() (interface{}, Key, error) {
	item, key, err := q.Peek()
	if err != nil {
		return nil, nil, err
	}
	q.DeleteKey(item)
	return item, key, nil
}

// TopKey returns the smallest key currently in the queue, without
// removing its item. The second return value is false on an empty
// queue, in which case the key should not be compared against.
func (q *Queue) TopKey() (Key, bool) {
	_, key, err := q.Peek()
	if err != nil {
		return nil, false
	}
	return key, true
}

// MinState returns the minimum primary key value currently in the
// queue together with the number of items sharing it (the size of
// that primary's bucket). The third return value is false on an
// empty queue, in which case the other two should not be used.
func (q *Queue) MinState() (float64, int, bool) {
	if !q.minValid {
		q.recomputeMin()
	}
	if !q.minValid {
		return 0, 0, false
	}
	return q.minPrimary, len(q.buckets[q.minPrimary]), true
}
