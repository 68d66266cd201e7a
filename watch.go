package cowset

import (
	"context"
	"sync/atomic"

	"github.com/guiguan/caster"
)

// EventKind classifies a set mutation.
type EventKind int

const (
	// EventAdd reports a single inserted element.
	EventAdd EventKind = iota + 1
	// EventRemove reports a single removed element.
	EventRemove
	// EventBulk reports a bulk mutation (AddAll, RemoveIf, RetainAll,
	// RemoveAll, Clear) without naming individual elements.
	EventBulk
)

// Event describes one published snapshot replacement.
type Event[E any] struct {
	Kind EventKind
	Elem E   // set for EventAdd and EventRemove, zero otherwise
	Len  int // element count after the mutation
}

// eventBus broadcasts mutation events to subscribers. The broadcaster is
// created lazily on first subscription; a set nobody watches pays a single
// atomic load per mutation.
type eventBus[E any] struct {
	cast atomic.Pointer[caster.Caster]
}

func (b *eventBus[E]) publish(evt Event[E]) {
	if c := b.cast.Load(); c != nil {
		// drop rather than block: a slow subscriber must not stall writers
		c.TryPub(evt)
	}
}

func (b *eventBus[E]) subscribe(ctx context.Context) <-chan Event[E] {
	c := b.cast.Load()
	if c == nil {
		fresh := caster.New(nil)
		if b.cast.CompareAndSwap(nil, fresh) {
			c = fresh
		} else {
			fresh.Close()
			c = b.cast.Load()
		}
	}
	raw, ok := c.Sub(ctx, 16)
	if !ok {
		closed := make(chan Event[E])
		close(closed)
		return closed
	}
	out := make(chan Event[E], 16)
	go func() {
		defer close(out)
		for m := range raw {
			evt, ok := m.(Event[E])
			if !ok {
				continue
			}
			select {
			case out <- evt:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Subscribe returns a channel of mutation events. Every successful mutation
// of the set, through the set itself or any of its views, emits one event
// after the new snapshot has been published.
//
// The channel is closed when ctx is done. Events are delivered best-effort:
// a subscriber that stops draining loses events instead of blocking writers.
func (s *Set[E]) Subscribe(ctx context.Context) <-chan Event[E] {
	return s.bus.subscribe(ctx)
}
