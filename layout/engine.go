package layout

import (
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"scribe/common"
	"scribe/document"
)

// Measurer is the single primitive the engine needs from the rendering
// collaborator: total laid-out content height for a container width,
// assuming unbounded height.
type Measurer interface {
	MeasureHeight(containerWidth float64) (float64, error)
}

var ErrMeasurementUnavailable = errors.New("measurement unavailable")

// Phases of the pagination lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMeasuring
	PhaseResolved
)

// materialChange is the minimal position or size delta worth a downstream
// relayout.
const materialChange = 0.5

// navigationWindow suppresses page-count shrinking after an explicit jump.
// Late measurement passes settling after the jump must not invalidate the
// target scroll position.
const navigationWindow = 4500 * time.Millisecond

// Engine turns measured content height into page count and page geometry.
// Single-threaded, all calls happen on the owning goroutine.
type Engine struct {
	log      *zap.Logger
	measurer Measurer
	now      func() time.Time

	doc *document.Document
	rc  RenderContext

	phase      Phase
	pageCount  int
	usedHeight float64
	resolvedRC RenderContext

	navigating bool
	navUntil   time.Time

	// page per paragraph index, 0-based physical, rebuilt on every resolve
	pages  []int
	breaks []SectionBreak
}

type EngineOption func(*Engine)

// WithClock replaces the wall clock, tests drive the shrink guard with it.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

func NewEngine(doc *document.Document, rc RenderContext, m Measurer, log *zap.Logger, opts ...EngineOption) *Engine {
	e := &Engine{
		log:      log.Named("layout"),
		measurer: m,
		now:      time.Now,
		doc:      doc,
		rc:       rc,
		phase:    PhaseIdle,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Engine) Phase() Phase { return e.phase }

// Invalidate marks the layout stale. Any edit, width or zoom change lands
// here.
func (e *Engine) Invalidate() {
	e.phase = PhaseMeasuring
}

// SetZoom updates the zoom factor and invalidates.
func (e *Engine) SetZoom(zoom float64) {
	if zoom > 0 && zoom != e.rc.Zoom {
		e.rc.Zoom = zoom
		e.Invalidate()
	}
}

// BeginNavigation arms the shrink guard for an explicit jump. The guard
// holds while the flag is set and for the suppression window after EndNavigation.
func (e *Engine) BeginNavigation() {
	e.navigating = true
	e.navUntil = e.now().Add(navigationWindow)
}

func (e *Engine) EndNavigation() {
	e.navigating = false
	e.navUntil = e.now().Add(navigationWindow)
}

func (e *Engine) shrinkGuarded() bool {
	return e.navigating || e.now().Before(e.navUntil)
}

// Paginate measures and resolves the page count. It reports whether the
// resolved geometry changed materially against the previous resolved state.
// A missing measurer or an empty document clamps to exactly one page.
func (e *Engine) Paginate() (changed bool, err error) {
	e.phase = PhaseMeasuring

	prevCount := e.pageCount
	prevRC := e.resolvedRC

	needed := 1
	switch {
	case e.measurer == nil:
		err = ErrMeasurementUnavailable
	case e.doc == nil || len(e.doc.Paragraphs) == 0:
		// nothing to lay out
	default:
		var used float64
		used, err = e.measurer.MeasureHeight(e.rc.ContentWidth())
		if err != nil {
			err = errors.Join(ErrMeasurementUnavailable, err)
		} else {
			e.usedHeight = used
			needed = e.neededPages(used)
		}
	}
	if err != nil {
		e.log.Debug("Measurement unavailable, clamping to one page", zap.Error(err))
		needed = 1
		err = nil
	}

	if e.shrinkGuarded() && needed < prevCount {
		e.log.Debug("Shrink guard active, keeping page count",
			zap.Int("needed", needed), zap.Int("current", prevCount))
		needed = prevCount
	}

	e.pageCount = needed
	e.rebuildPositionMap()
	e.phase = PhaseResolved
	e.resolvedRC = e.rc

	if prevCount == 0 {
		return true, nil
	}
	if needed != prevCount {
		return true, nil
	}
	// same count, geometry may still have moved (zoom or page size change)
	for i := 0; i < needed; i++ {
		if e.rc.PageFrame(i).materially(prevRC.PageFrame(i), materialChange) {
			return true, nil
		}
	}
	return false, nil
}

// neededPages spreads the measured height over page flow regions. All
// geometry is zoom-scaled, page count never drops below one.
func (e *Engine) neededPages(usedHeight float64) int {
	z := e.rc.zoom()
	pageHeight := e.rc.Page.Height * z
	margin := e.rc.Page.Margin * z
	gap := e.rc.Page.Gap * z

	n := int(math.Ceil((usedHeight + 2*margin + gap) / (pageHeight + gap)))
	if n < 1 {
		n = 1
	}
	return n
}

func (e *Engine) PageCount() int {
	if e.pageCount < 1 {
		return 1
	}
	return e.pageCount
}

func (e *Engine) PageFrame(page int) Rect {
	return e.rc.PageFrame(page)
}

func (e *Engine) ExclusionRegions(page int) []Rect {
	return e.rc.ExclusionRegions(page)
}

// rebuildPositionMap assigns a physical page to every paragraph. Without a
// real renderer the flow position is approximated proportionally to text
// length, explicit page break markers bump everything after them to the
// next page.
func (e *Engine) rebuildPositionMap() {
	if e.doc == nil {
		e.pages = nil
		e.breaks = nil
		return
	}

	total := 0
	for _, p := range e.doc.Paragraphs {
		total += p.RuneLen() + 1
	}
	perPage := float64(total) / float64(e.PageCount())

	e.pages = make([]int, len(e.doc.Paragraphs))
	e.breaks = e.breaks[:0]

	cum, bumps := 0, 0
	for i, p := range e.doc.Paragraphs {
		page := bumps
		if perPage > 0 {
			page += int(float64(cum) / perPage)
		}
		if page > e.PageCount()-1 {
			page = e.PageCount() - 1
		}
		e.pages[i] = page

		for _, m := range p.Markers() {
			switch m.Kind {
			case common.MarkerKindPageBreak:
				bumps++
			case common.MarkerKindSectionBreak:
				start := m.StartNumber
				if start < 1 {
					start = 1
				}
				e.breaks = append(e.breaks, SectionBreak{
					StartPage:   page + 1,
					StartNumber: start,
					Format:      m.Format,
				})
			}
		}
		cum += p.RuneLen() + 1
	}
}

// PageForParagraph returns the 0-based physical page of the paragraph.
func (e *Engine) PageForParagraph(idx int) int {
	if idx < 0 || idx >= len(e.pages) {
		return 0
	}
	return e.pages[idx]
}

// SectionBreaks returns the resolved breaks in source order.
func (e *Engine) SectionBreaks() []SectionBreak {
	return e.breaks
}

// DisplayedPageNumber formats the page number shown for the 0-based
// physical page under the active section numbering.
func (e *Engine) DisplayedPageNumber(page int) string {
	return DisplayedNumber(e.breaks, page)
}
