package document

// Change describes an edit to a paragraph range. Structural is set when the
// range touches a table or column block.
type Change struct {
	First, Last int
	Structural  bool
}

// Notifier fans document change events out to subscribers. Automated passes
// suppress notifications around their own edits so the pagination engine
// never reacts to repairs it triggered itself.
// NOTE: presently not to be used concurrently!
type Notifier struct {
	listeners  []func(Change)
	suppressed int
}

func (n *Notifier) Subscribe(fn func(Change)) {
	n.listeners = append(n.listeners, fn)
}

// Notify delivers the change to all subscribers unless suppressed.
func (n *Notifier) Notify(c Change) {
	if n.suppressed > 0 {
		return
	}
	for _, fn := range n.listeners {
		fn(c)
	}
}

// Suppress mutes notifications until the returned release function runs.
// Guards nest, delivery resumes when the last one is released. Release is
// idempotent, calling it twice is not an error.
func (n *Notifier) Suppress() (release func()) {
	n.suppressed++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		n.suppressed--
	}
}
