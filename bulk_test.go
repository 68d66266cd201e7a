package cowset

import (
	"errors"
	"math/rand"
	"testing"
)

func TestAddAllMergesAndDeduplicates(t *testing.T) {
	s := Of(2, 4, 6)
	changed, err := s.AddAll(5, 4, 1, 5, 7, 2)
	if err != nil {
		t.Fatalf("AddAll failed: %v", err)
	}
	if !changed {
		t.Errorf("expected AddAll to report a change")
	}
	want := []int{1, 2, 4, 5, 6, 7}
	got := s.Snapshot()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: got=%d want=%d", i, got[i], want[i])
		}
	}
}

func TestAddAllNoChange(t *testing.T) {
	s := Of(1, 2, 3)
	changed, err := s.AddAll(3, 2, 1)
	if err != nil {
		t.Fatalf("AddAll failed: %v", err)
	}
	if changed {
		t.Errorf("AddAll of present elements must report false")
	}
	if changed, err = s.AddAll(); err != nil || changed {
		t.Errorf("empty AddAll must be a no-op, got (%v,%v)", changed, err)
	}
}

func TestAddAllSingletonDelegates(t *testing.T) {
	s := NewOrdered[int]()
	changed, err := s.AddAll(42)
	if err != nil || !changed {
		t.Fatalf("singleton AddAll: got (%v,%v)", changed, err)
	}
	if s.Len() != 1 || !s.Contains(42) {
		t.Errorf("expected {42}, got %v", s.Snapshot())
	}
}

func TestAddAllIntoEmptySet(t *testing.T) {
	s := NewOrdered[int]()
	if _, err := s.AddAll(3, 1, 2, 3, 1); err != nil {
		t.Fatalf("AddAll failed: %v", err)
	}
	got := s.Snapshot()
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", got)
	}
}

func TestAddAllBrokenComparator(t *testing.T) {
	broken := func(a, b int) int { return -1 }
	s := New(broken)
	if _, err := s.AddAll(1, 2); !errors.Is(err, ErrComparatorContract) {
		t.Errorf("expected ErrComparatorContract, got %v", err)
	}
	if !s.IsEmpty() {
		t.Errorf("failed AddAll must leave the set unchanged")
	}
}

// TestAddAllEquivalence checks that bulk insertion produces the same result
// as element-wise insertion, for random batches with duplicates and overlap.
func TestAddAllEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(20260827))
	for round := 0; round < 50; round++ {
		seed := make([]int, r.Intn(20))
		for i := range seed {
			seed[i] = r.Intn(30)
		}
		batch := make([]int, r.Intn(25))
		for i := range batch {
			batch[i] = r.Intn(30)
		}
		bulk := NewOrdered[int]()
		single := NewOrdered[int]()
		if _, err := bulk.AddAll(seed...); err != nil {
			t.Fatalf("round %d: seeding failed: %v", round, err)
		}
		if _, err := single.AddAll(seed...); err != nil {
			t.Fatalf("round %d: seeding failed: %v", round, err)
		}
		if _, err := bulk.AddAll(batch...); err != nil {
			t.Fatalf("round %d: AddAll failed: %v", round, err)
		}
		for _, e := range batch {
			if _, err := single.Add(e); err != nil {
				t.Fatalf("round %d: Add failed: %v", round, err)
			}
		}
		a, b := bulk.Snapshot(), single.Snapshot()
		if len(a) != len(b) {
			t.Fatalf("round %d: length mismatch: bulk=%v single=%v", round, a, b)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("round %d: element %d differs: bulk=%v single=%v", round, i, a, b)
			}
		}
		assertAscending(t, a, bulk.Comparator())
	}
}

func TestContainsAll(t *testing.T) {
	s := Of(1, 2, 3, 4)
	if !s.ContainsAll(2, 4) {
		t.Errorf("expected ContainsAll(2,4) to be true")
	}
	if s.ContainsAll(2, 5) {
		t.Errorf("expected ContainsAll(2,5) to be false")
	}
	if !s.ContainsAll() {
		t.Errorf("ContainsAll of nothing must be true")
	}
}

func TestRemoveIf(t *testing.T) {
	s := Of(1, 2, 3, 4, 5, 6)
	if !s.RemoveIf(func(e int) bool { return e%2 == 0 }) {
		t.Errorf("expected RemoveIf to report a change")
	}
	got := s.Snapshot()
	if len(got) != 3 || got[0] != 1 || got[1] != 3 || got[2] != 5 {
		t.Errorf("expected [1 3 5], got %v", got)
	}
	if s.RemoveIf(func(e int) bool { return e > 10 }) {
		t.Errorf("expected no change for non-matching predicate")
	}
}

func TestRemoveAllRetainAll(t *testing.T) {
	s := Of(1, 2, 3, 4, 5)
	if !s.RemoveAll(2, 4, 9) {
		t.Errorf("expected RemoveAll to report a change")
	}
	if s.Len() != 3 {
		t.Errorf("expected 3 elements, got %v", s.Snapshot())
	}
	if !s.RetainAll(1, 5, 11) {
		t.Errorf("expected RetainAll to report a change")
	}
	got := s.Snapshot()
	if len(got) != 2 || got[0] != 1 || got[1] != 5 {
		t.Errorf("expected [1 5], got %v", got)
	}
	if s.RemoveAll() {
		t.Errorf("RemoveAll of nothing must report false")
	}
	if !s.RetainAll() {
		t.Errorf("RetainAll of nothing must clear the set")
	}
	if !s.IsEmpty() {
		t.Errorf("expected empty set after RetainAll()")
	}
}

func TestShards(t *testing.T) {
	s := Of(1, 2, 3, 4, 5, 6, 7)
	parts := s.Shards(3)
	if len(parts) != 3 {
		t.Fatalf("expected 3 shards, got %d", len(parts))
	}
	var flat []int
	for _, p := range parts {
		flat = append(flat, p...)
	}
	if len(flat) != 7 {
		t.Fatalf("shards do not cover the set: %v", parts)
	}
	assertAscending(t, flat, s.Comparator())
	if s.Shards(0) != nil {
		t.Errorf("expected nil for n=0")
	}
	if got := NewOrdered[int]().Shards(4); got != nil {
		t.Errorf("expected nil for empty set, got %v", got)
	}
}
