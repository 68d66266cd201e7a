package cowarray

import (
	"errors"
	"testing"
)

func TestEmptyContainer(t *testing.T) {
	c := New[int]()
	if !c.IsEmpty() {
		t.Errorf("expected new container to be empty")
	}
	if c.Len() != 0 {
		t.Errorf("expected length 0, got %d", c.Len())
	}
	if c.Snapshot() == nil {
		t.Errorf("expected non-nil empty snapshot")
	}
}

func TestInsertAt(t *testing.T) {
	c := New[string]()
	c.Lock()
	if err := c.InsertAt(0, "b"); err != nil {
		t.Fatalf("InsertAt(0) failed: %v", err)
	}
	if err := c.InsertAt(0, "a"); err != nil {
		t.Fatalf("InsertAt(0) failed: %v", err)
	}
	if err := c.InsertAt(2, "c"); err != nil {
		t.Fatalf("InsertAt(2) failed: %v", err)
	}
	c.Unlock()
	want := []string{"a", "b", "c"}
	got := c.Snapshot()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: got=%q want=%q", i, got[i], want[i])
		}
	}
}

func TestInsertAtOutOfBounds(t *testing.T) {
	c := New[int]()
	c.Lock()
	defer c.Unlock()
	if err := c.InsertAt(1, 9); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := c.InsertAt(-1, 9); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestRemoveAt(t *testing.T) {
	c := NewFromSlice([]int{1, 2, 3})
	c.Lock()
	e, err := c.RemoveAt(1)
	c.Unlock()
	if err != nil {
		t.Fatalf("RemoveAt(1) failed: %v", err)
	}
	if e != 2 {
		t.Errorf("expected removed element 2, got %d", e)
	}
	if c.Len() != 2 {
		t.Errorf("expected length 2 after removal, got %d", c.Len())
	}
	c.Lock()
	defer c.Unlock()
	if _, err = c.RemoveAt(2); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestRemoveRange(t *testing.T) {
	c := NewFromSlice([]int{1, 2, 3, 4, 5})
	c.Lock()
	if err := c.RemoveRange(1, 4); err != nil {
		t.Fatalf("RemoveRange(1,4) failed: %v", err)
	}
	c.Unlock()
	got := c.Snapshot()
	if len(got) != 2 || got[0] != 1 || got[1] != 5 {
		t.Errorf("expected [1 5], got %v", got)
	}
	c.Lock()
	defer c.Unlock()
	if err := c.RemoveRange(1, 1); err != nil {
		t.Errorf("empty range should be a no-op, got %v", err)
	}
	if err := c.RemoveRange(2, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	c := NewFromSlice([]int{1, 2, 3})
	before := c.Snapshot()
	c.Lock()
	if err := c.InsertAt(0, 0); err != nil {
		t.Fatalf("InsertAt failed: %v", err)
	}
	c.Unlock()
	if len(before) != 3 || before[0] != 1 {
		t.Errorf("pre-mutation snapshot changed: %v", before)
	}
	after := c.Snapshot()
	if len(after) != 4 || after[0] != 0 {
		t.Errorf("post-mutation snapshot wrong: %v", after)
	}
}

func TestWindowRemoveIf(t *testing.T) {
	c := NewFromSlice([]int{1, 2, 3, 4, 5, 6})
	c.Lock()
	defer c.Unlock()
	w, err := c.Window(1, 5) // covers 2,3,4,5
	if err != nil {
		t.Fatalf("Window failed: %v", err)
	}
	if w.Len() != 4 {
		t.Errorf("expected window length 4, got %d", w.Len())
	}
	even := func(e int) bool { return e%2 == 0 }
	if !w.RemoveIf(even) {
		t.Errorf("expected RemoveIf to report a change")
	}
	got := c.Snapshot()
	want := []int{1, 3, 5, 6} // 6 is outside the window and must survive
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: got=%d want=%d", i, got[i], want[i])
		}
	}
}

func TestWindowRemoveIfNoMatch(t *testing.T) {
	c := NewFromSlice([]int{1, 3, 5})
	before := c.Snapshot()
	c.Lock()
	defer c.Unlock()
	w, err := c.Window(0, 3)
	if err != nil {
		t.Fatalf("Window failed: %v", err)
	}
	if w.RemoveIf(func(e int) bool { return e%2 == 0 }) {
		t.Errorf("expected no change")
	}
	after := c.Snapshot()
	if len(after) != len(before) {
		t.Errorf("snapshot replaced although nothing was removed")
	}
}

func TestWindowClear(t *testing.T) {
	c := NewFromSlice([]int{1, 2, 3, 4})
	c.Lock()
	defer c.Unlock()
	w, err := c.Window(1, 3)
	if err != nil {
		t.Fatalf("Window failed: %v", err)
	}
	if !w.Clear() {
		t.Errorf("expected Clear to report a change")
	}
	got := c.Snapshot()
	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Errorf("expected [1 4], got %v", got)
	}
	empty, err := c.Window(1, 1)
	if err != nil {
		t.Fatalf("Window failed: %v", err)
	}
	if empty.Clear() {
		t.Errorf("empty window Clear should report no change")
	}
}

func TestWindowOutOfRange(t *testing.T) {
	c := NewFromSlice([]int{1, 2})
	c.Lock()
	defer c.Unlock()
	if _, err := c.Window(0, 3); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if _, err := c.Window(2, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}
