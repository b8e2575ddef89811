package layout

import (
	"math"

	"scribe/catalog"
	"scribe/document"
)

// Estimator approximates laid-out content height without a renderer. The
// batch pipeline has no text engine, an average glyph width of half the
// font size is close enough for page-count purposes.
type Estimator struct {
	doc *document.Document
	cat *catalog.Catalog
}

func NewEstimator(doc *document.Document, cat *catalog.Catalog) *Estimator {
	return &Estimator{doc: doc, cat: cat}
}

const defaultFontSize = 12

func (e *Estimator) MeasureHeight(containerWidth float64) (float64, error) {
	if containerWidth <= 0 {
		return 0, ErrMeasurementUnavailable
	}

	total := 0.0
	for _, p := range e.doc.Paragraphs {
		total += e.paragraphHeight(p, containerWidth)
	}
	return total, nil
}

func (e *Estimator) paragraphHeight(p *document.Paragraph, width float64) float64 {
	size, lineHeight := e.metrics(p)

	flow := width - p.Format.HeadIndent - p.Format.TailIndent
	if flow < size {
		flow = size
	}
	glyph := size * 0.5
	perLine := math.Max(1, math.Floor(flow/glyph))

	runes := float64(p.RuneLen())
	lines := math.Max(1, math.Ceil(runes/perLine))

	return lines*size*lineHeight + p.Format.SpacingBefore + p.Format.SpacingAfter
}

// metrics resolves effective font size and line height from the first run,
// the style definition or the defaults, in that order.
func (e *Estimator) metrics(p *document.Paragraph) (size, lineHeight float64) {
	var def *catalog.Definition
	if e.cat != nil {
		def, _ = e.cat.Lookup(p.StyleTag)
	}

	for _, r := range p.Runs {
		if r.Marker == nil && r.Format.FontSize > 0 {
			size = r.Format.FontSize
			break
		}
	}
	if size == 0 && def != nil {
		size = def.FontSize
	}
	if size == 0 {
		size = defaultFontSize
	}

	lineHeight = p.Format.LineHeightMultiple
	if lineHeight == 0 && def != nil {
		lineHeight = def.LineHeightMultiple
	}
	if lineHeight == 0 {
		lineHeight = 1.2
	}
	return size, lineHeight
}
