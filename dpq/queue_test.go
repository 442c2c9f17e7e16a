// Package dpq_test exercises the dual-priority queue's ordering,
// idempotent update, and deletion semantics directly against the
// behaviour of the Python dual_priority_queue it was ported from.
package dpq_test

import (
	"testing"

	"github.com/hwbehrens/dstarlite/dpq"
)

func TestQueue_EmptyPeekAndPop(t *testing.T) {
	q := dpq.New()
	if _, _, err := q.Peek(); err != dpq.ErrEmptyQueue {
		t.Fatalf("expected ErrEmptyQueue from Peek, got %v", err)
	}
	if _, _, err := q.Pop(); err != dpq.ErrEmptyQueue {
		t.Fatalf("expected ErrEmptyQueue from Pop, got %v", err)
	}
	if q.Size() != 0 {
		t.Fatalf("expected size 0, got %d", q.Size())
	}
}

func TestQueue_OrdersByPrimaryThenSecondary(t *testing.T) {
	q := dpq.New()
	q.Push("c", dpq.Key{2, 0})
	q.Push("a", dpq.Key{1, 5})
	q.Push("b", dpq.Key{1, 1})

	item, key, err := q.Pop()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item != "b" || key[0] != 1 || key[1] != 1 {
		t.Fatalf("expected (b, [1 1]) first, got (%v, %v)", item, key)
	}

	item, key, err = q.Pop()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item != "a" || key[0] != 1 || key[1] != 5 {
		t.Fatalf("expected (a, [1 5]) second, got (%v, %v)", item, key)
	}

	item, _, err = q.Pop()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item != "c" {
		t.Fatalf("expected c last, got %v", item)
	}

	if _, _, err := q.Pop(); err != dpq.ErrEmptyQueue {
		t.Fatalf("expected ErrEmptyQueue after draining, got %v", err)
	}
}

func TestQueue_PushReplacesExistingKey(t *testing.T) {
	q := dpq.New()
	q.Push("x", dpq.Key{5, 0})
	q.Push("y", dpq.Key{1, 0})
	// Re-push "x" with a better key; it should now sort first and the
	// queue should still report only two items, not three.
	q.Push("x", dpq.Key{0, 0})

	if q.Size() != 2 {
		t.Fatalf("expected size 2 after replace-push, got %d", q.Size())
	}
	item, _, err := q.Pop()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item != "x" {
		t.Fatalf("expected x first after re-prioritization, got %v", item)
	}
}

func TestQueue_DeleteKeyIsIdempotent(t *testing.T) {
	q := dpq.New()
	q.Push("a", dpq.Key{1, 1})
	q.DeleteKey("a")
	q.DeleteKey("a") // deleting again must not panic or corrupt state
	if q.Contains("a") {
		t.Fatalf("expected a to be absent after DeleteKey")
	}
	if q.Size() != 0 {
		t.Fatalf("expected size 0, got %d", q.Size())
	}
	// Deleting an item that was never pushed is also a no-op.
	q.DeleteKey("never-pushed")
}

func TestQueue_MinRecomputesAfterBucketEmpties(t *testing.T) {
	q := dpq.New()
	q.Push("a", dpq.Key{0, 0})
	q.Push("b", dpq.Key{1, 0})
	q.DeleteKey("a")

	key, ok := q.TopKey()
	if !ok {
		t.Fatalf("expected a valid top key after deleting the minimum")
	}
	if key[0] != 1 {
		t.Fatalf("expected recomputed min primary 1, got %v", key)
	}
}

func TestQueue_MinState(t *testing.T) {
	q := dpq.New()
	q.Push("k1", dpq.Key{5, 5})
	q.Push("k2", dpq.Key{5, 6})

	primary, count, ok := q.MinState()
	if !ok || primary != 5 || count != 2 {
		t.Fatalf("expected MinState (5, 2, true), got (%v, %v, %v)", primary, count, ok)
	}

	// Re-pushing k2 replaces its entry rather than adding a second one,
	// so the bucket count must not double-count it.
	q.Push("k2", dpq.Key{5, 1})
	primary, count, ok = q.MinState()
	if !ok || primary != 5 || count != 2 {
		t.Fatalf("expected MinState (5, 2, true) after re-push, got (%v, %v, %v)", primary, count, ok)
	}

	q.DeleteKey("k1")
	q.DeleteKey("k2")
	q.Push("k3", dpq.Key{6, 0})
	primary, count, ok = q.MinState()
	if !ok || primary != 6 || count != 1 {
		t.Fatalf("expected MinState (6, 1, true) after draining bucket 5, got (%v, %v, %v)", primary, count, ok)
	}
}

func TestQueue_KeyOf(t *testing.T) {
	q := dpq.New()
	q.Push("a", dpq.Key{3, 4})
	key, ok := q.KeyOf("a")
	if !ok || key[0] != 3 || key[1] != 4 {
		t.Fatalf("expected KeyOf to return [3 4], got %v, %v", key, ok)
	}
	if _, ok := q.KeyOf("missing"); ok {
		t.Fatalf("expected KeyOf to report absent for an unpushed item")
	}
}

func TestCompare_OrdersLexicographically(t *testing.T) {
	cases := []struct {
		a, b dpq.Key
		want int
	}{
		{dpq.Key{1, 2}, dpq.Key{1, 3}, -1},
		{dpq.Key{1, 3}, dpq.Key{1, 2}, 1},
		{dpq.Key{1, 2}, dpq.Key{1, 2}, 0},
		{dpq.Key{2, 0}, dpq.Key{1, 999}, 1},
	}
	for _, c := range cases {
		got, err := dpq.Compare(c.a, c.b)
		if err != nil {
			t.Fatalf("unexpected error comparing %v, %v: %v", c.a, c.b, err)
		}
		if (got < 0 && c.want >= 0) || (got > 0 && c.want <= 0) || (got == 0 && c.want != 0) {
			t.Fatalf("Compare(%v, %v) = %d, want sign of %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCompare_ArityMismatch(t *testing.T) {
	_, err := dpq.Compare(dpq.Key{1, 2}, dpq.Key{1, 2, 3})
	if err != dpq.ErrInvalidArity {
		t.Fatalf("expected ErrInvalidArity, got %v", err)
	}
	if _, err := dpq.Less(dpq.Key{1}, dpq.Key{1, 2}); err != dpq.ErrInvalidArity {
		t.Fatalf("expected ErrInvalidArity from Less, got %v", err)
	}
}
