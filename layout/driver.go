package layout

import (
	"time"

	"scribe/config"
	"scribe/document"
)

const paginateKey = "paginate"

// Driver ties document change notifications to debounced repagination. An
// edit inside a table or column block takes the longer structural delay,
// plain text edits settle faster.
type Driver struct {
	queue  *Queue
	engine *Engine

	plainDelay      time.Duration
	structuralDelay time.Duration
}

func NewDriver(engine *Engine, queue *Queue, debounce config.DebounceConfig) *Driver {
	return &Driver{
		queue:           queue,
		engine:          engine,
		plainDelay:      time.Duration(debounce.PlainMS) * time.Millisecond,
		structuralDelay: time.Duration(debounce.StructuralMS) * time.Millisecond,
	}
}

// Attach subscribes the driver to the notifier.
func (d *Driver) Attach(n *document.Notifier) {
	n.Subscribe(d.OnChange)
}

// OnChange reschedules the pagination pass, superseding any pending one.
func (d *Driver) OnChange(c document.Change) {
	delay := d.plainDelay
	if c.Structural {
		delay = d.structuralDelay
	}
	d.engine.Invalidate()
	d.queue.Schedule(paginateKey, delay, func() {
		_, _ = d.engine.Paginate()
	})
}
