package history

import "testing"

func TestRing_PushBelowCapacity(t *testing.T) {
	r := NewRing[int](5)

	for i := 1; i <= 3; i++ {
		if _, ok := r.Push(i); ok {
			t.Errorf("push %d evicted before reaching capacity", i)
		}
	}

	if r.Len() != 3 {
		t.Errorf("expected length 3, got %d", r.Len())
	}
	if v, ok := r.MostRecent(); !ok || v != 3 {
		t.Errorf("expected most recent 3, got %d (ok=%v)", v, ok)
	}
}

func TestRing_EvictsOldestAtCapacity(t *testing.T) {
	r := NewRing[int](3)

	r.Push(1)
	r.Push(2)
	r.Push(3)

	evicted, ok := r.Push(4)
	if !ok {
		t.Fatal("expected eviction when pushing past capacity")
	}
	if evicted != 1 {
		t.Errorf("expected oldest element 1 evicted, got %d", evicted)
	}
	if r.Len() != 3 {
		t.Errorf("length grew past capacity: %d", r.Len())
	}
}

func TestRing_MostRecentFirstOrder(t *testing.T) {
	r := NewRing[int](4)
	for i := 1; i <= 6; i++ {
		r.Push(i)
	}

	got := r.All()
	want := []int{6, 5, 4, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestRing_LengthNeverExceedsCapacity(t *testing.T) {
	capacities := []int{1, 2, 7, 150}
	for _, c := range capacities {
		r := NewRing[int](c)
		for i := 0; i < 3*c+5; i++ {
			r.Push(i)
			if r.Len() > c {
				t.Fatalf("capacity %d: length %d exceeds capacity after %d pushes", c, r.Len(), i+1)
			}
		}
	}
}

func TestRing_RetainsExactlyLastCapacityPushes(t *testing.T) {
	// 200 pushes into capacity 150 must leave the last 150, oldest 50 evicted.
	r := NewRing[int](150)
	for i := 0; i < 200; i++ {
		r.Push(i)
	}

	if r.Len() != 150 {
		t.Fatalf("expected 150 retained, got %d", r.Len())
	}

	i := 0
	for v := range r.Values() {
		want := 199 - i
		if v != want {
			t.Fatalf("position %d: expected %d, got %d", i, want, v)
		}
		i++
	}
	if i != 150 {
		t.Errorf("iterator yielded %d values, expected 150", i)
	}
}

func TestRing_ValuesRestartable(t *testing.T) {
	r := NewRing[int](3)
	r.Push(1)
	r.Push(2)

	seq := r.Values()
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	if first != 2 || second != 2 {
		t.Errorf("expected both passes to yield 2, got %d and %d", first, second)
	}
}

func TestRing_EmptyMostRecent(t *testing.T) {
	r := NewRing[float64](10)
	if _, ok := r.MostRecent(); ok {
		t.Error("expected ok=false on empty ring")
	}
	if r.Len() != 0 {
		t.Errorf("expected empty ring, got length %d", r.Len())
	}
}

func TestRing_CapacityOne(t *testing.T) {
	r := NewRing[string](1)
	r.Push("a")
	evicted, ok := r.Push("b")
	if !ok || evicted != "a" {
		t.Errorf("expected %q evicted, got %q (ok=%v)", "a", evicted, ok)
	}
	if v, _ := r.MostRecent(); v != "b" {
		t.Errorf("expected most recent %q, got %q", "b", v)
	}
}

func TestNewRing_RejectsNonPositiveCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for capacity 0")
		}
	}()
	NewRing[int](0)
}
