// Package document defines the in-memory manuscript model and its XML codec.
package document

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"scribe/common"
)

// Document is a parsed manuscript. Paragraph order is source order, offsets
// into this slice double as source offsets for outline resolution.
type Document struct {
	ID         uuid.UUID
	Lang       language.Tag
	Template   common.TemplateKind
	Paragraphs []*Paragraph
}

// Paragraph carries a resolved style tag, effective paragraph geometry and
// the formatted text runs.
type Paragraph struct {
	StyleTag string // empty when the source carried no tag
	Format   ParagraphFormat
	Runs     []*Run
}

// ParagraphFormat is the effective paragraph-level formatting. Zero values
// mean "inherited from the style definition", except Alignment which is
// always explicit after parsing.
type ParagraphFormat struct {
	Alignment          common.Alignment
	HeadIndent         float64
	FirstLineIndent    float64
	TailIndent         float64
	SpacingBefore      float64
	SpacingAfter       float64
	LineHeightMultiple float64
	TabStops           []TabStop
	Block              common.BlockKind
}

// TabStop is a single tab stop. Leader is the fill rune, 0 for none.
type TabStop struct {
	Position  float64
	Alignment common.TabAlignment
	Leader    rune
}

// Run is a span of identically formatted text. A run with a non-nil Marker
// is a zero-width structural anchor, its text is empty.
type Run struct {
	Text   string
	Format RunFormat
	Marker *Marker
}

// RunFormat is character-level formatting. Empty strings and zero size mean
// "inherited".
type RunFormat struct {
	FontName   string
	FontSize   float64
	Bold       bool
	Italic     bool
	SmallCaps  bool
	Color      string
	Background string
}

// ColorTransparent marks anchor runs whose marker payload was decoded, the
// anchor never renders visibly.
const ColorTransparent = "transparent"

// Text returns concatenated run text of the paragraph.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// IsEmpty reports whether the paragraph has no visible text.
func (p *Paragraph) IsEmpty() bool {
	for _, r := range p.Runs {
		if len(strings.TrimSpace(r.Text)) > 0 {
			return false
		}
	}
	return true
}

// HasRightTab reports whether any tab stop is right aligned. TOC and index
// entries hang their page numbers off such a stop.
func (f *ParagraphFormat) HasRightTab() bool {
	for _, ts := range f.TabStops {
		if ts.Alignment == common.TabAlignmentRight {
			return true
		}
	}
	return false
}

// Markers returns all structural markers anchored in the paragraph.
func (p *Paragraph) Markers() []*Marker {
	var ms []*Marker
	for _, r := range p.Runs {
		if r.Marker != nil {
			ms = append(ms, r.Marker)
		}
	}
	return ms
}

// RuneLen returns the visible text length of the paragraph in runes.
func (p *Paragraph) RuneLen() int {
	n := 0
	for _, r := range p.Runs {
		n += len([]rune(r.Text))
	}
	return n
}
