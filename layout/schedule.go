package layout

import (
	"time"
)

// Queue is a single-threaded debounced task queue with per-key coalescing.
// Scheduling a key that is already pending replaces the old task, an edit
// storm collapses into one pass. There is no mid-task cancellation, a task
// either runs to completion or is superseded before it starts.
// NOTE: presently not to be used concurrently!
type Queue struct {
	now     func() time.Time
	pending map[string]*queued
	seq     int
}

type queued struct {
	due time.Time
	seq int
	fn  func()
}

type QueueOption func(*Queue)

func QueueClock(now func() time.Time) QueueOption {
	return func(q *Queue) { q.now = now }
}

func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{
		now:     time.Now,
		pending: make(map[string]*queued),
	}
	for _, o := range opts {
		o(q)
	}
	return q
}

// Schedule queues fn to run after delay, replacing any pending task under
// the same key.
func (q *Queue) Schedule(key string, delay time.Duration, fn func()) {
	q.seq++
	q.pending[key] = &queued{
		due: q.now().Add(delay),
		seq: q.seq,
		fn:  fn,
	}
}

// Cancel drops the pending task for the key, if any.
func (q *Queue) Cancel(key string) {
	delete(q.pending, key)
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Flush runs every task due by now, in scheduling order, and returns how
// many ran. Tasks scheduled while flushing wait for the next flush.
func (q *Queue) Flush() int {
	now := q.now()

	var due []*queued
	for key, t := range q.pending {
		if !t.due.After(now) {
			due = append(due, t)
			delete(q.pending, key)
		}
	}
	// stable order regardless of map iteration
	for i := 1; i < len(due); i++ {
		for j := i; j > 0 && due[j-1].seq > due[j].seq; j-- {
			due[j-1], due[j] = due[j], due[j-1]
		}
	}
	for _, t := range due {
		t.fn()
	}
	return len(due)
}
