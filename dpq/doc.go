// Package dpq implements the dual-priority queue shared by the LPA*
// and D* Lite engines: items are ordered by a lexicographically
// compared key tuple (primary, secondary, ...), with an O(1) lookup
// of the minimum primary value and idempotent deletion by item.
//
// Complexity:
//
//	– Push/DeleteKey: O(b) where b is the number of items sharing the
//	  pushed item's primary key component (bucket size), since buckets
//	  are scanned linearly to remove a stale secondary entry.
//	– MinState: O(1) once the minimum bucket is known; Peek/TopKey:
//	  O(b) for the linear scan of that bucket. All three add O(B)
//	  (B = number of distinct primary values) right after the minimum
//	  bucket empties out and must be recomputed.
//	– Pop: O(b) (DeleteKey cost) plus the occasional O(B) recompute.
//
// Representation: a map from primary key value to a bucket of
// (secondary, item) entries, rather than a binary heap. This layout
// is the natural fit here because keys are recomputed and re-pushed
// far more often than the queue is drained to empty, and it makes
// MinState — the minimum primary value and how many items share it —
// a direct bucket-length read instead of a scan.
//
// Errors (sentinel):
//
//	– ErrInvalidArity if two keys of different lengths are compared.
//	– ErrEmptyQueue   if Peek or Pop is called on an empty queue.
package dpq
