package layout

import (
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"scribe/config"
	"scribe/document"
)

func TestQueueCoalescing(t *testing.T) {
	now := time.Unix(1000, 0)
	q := NewQueue(QueueClock(func() time.Time { return now }))

	runs := 0
	q.Schedule("paginate", 100*time.Millisecond, func() { runs++ })
	q.Schedule("paginate", 100*time.Millisecond, func() { runs += 10 })

	if q.Len() != 1 {
		t.Fatalf("coalescing failed, %d pending", q.Len())
	}

	// not due yet
	if n := q.Flush(); n != 0 {
		t.Fatalf("ran %d tasks before due time", n)
	}

	now = now.Add(time.Second)
	if n := q.Flush(); n != 1 {
		t.Fatalf("ran %d tasks, want 1", n)
	}
	if runs != 10 {
		t.Errorf("stale task ran instead of replacement: runs=%d", runs)
	}
	if q.Len() != 0 {
		t.Errorf("queue not drained: %d", q.Len())
	}
}

func TestQueueOrderAndCancel(t *testing.T) {
	now := time.Unix(1000, 0)
	q := NewQueue(QueueClock(func() time.Time { return now }))

	var order []string
	q.Schedule("b", 0, func() { order = append(order, "b") })
	q.Schedule("a", 0, func() { order = append(order, "a") })
	q.Schedule("c", 0, func() { order = append(order, "c") })
	q.Cancel("a")

	now = now.Add(time.Millisecond)
	q.Flush()

	if len(order) != 2 || order[0] != "b" || order[1] != "c" {
		t.Errorf("wrong run order: %v", order)
	}
}

func TestDriverDelaySelection(t *testing.T) {
	log := zaptest.NewLogger(t)

	now := time.Unix(1000, 0)
	clock := func() time.Time { return now }

	q := NewQueue(QueueClock(clock))
	e := NewEngine(textDocument("a"), letterContext(), &fixedMeasurer{h: 100}, log, WithClock(clock))
	d := NewDriver(e, q, config.DebounceConfig{PlainMS: 250, StructuralMS: 700})

	var n document.Notifier
	d.Attach(&n)

	// structural edit takes the longer delay
	n.Notify(document.Change{First: 0, Last: 0, Structural: true})
	now = now.Add(300 * time.Millisecond)
	if ran := q.Flush(); ran != 0 {
		t.Fatal("structural pass ran on the plain delay")
	}
	now = now.Add(500 * time.Millisecond)
	if ran := q.Flush(); ran != 1 {
		t.Fatal("structural pass did not run after its delay")
	}
	if e.Phase() != PhaseResolved {
		t.Errorf("engine not resolved after flush: %v", e.Phase())
	}

	// an edit storm coalesces into a single pass
	for i := 0; i < 20; i++ {
		n.Notify(document.Change{First: i, Last: i})
	}
	if q.Len() != 1 {
		t.Errorf("edit storm left %d pending tasks", q.Len())
	}
}
