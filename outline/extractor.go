// Package outline derives the navigable document outline and resolves
// captured entries back to live paragraphs.
package outline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"scribe/catalog"
	"scribe/common"
	"scribe/document"
)

// Entry is one outline node. Paragraph is the source offset the entry was
// extracted from, Page the 0-based physical page at extraction time. Both
// are caches, the document is authoritative.
type Entry struct {
	Level     int
	Title     string
	StyleTag  string
	Paragraph int
	Page      int
	Anchor    string
}

var (
	sceneHeading = regexp.MustCompile(`^(INT\.|EXT\.|INT\./EXT\.|EST\.)\s+`)
	actHeading   = regexp.MustCompile(`^ACT\s+([IVXLCDM]+|\d+)\b`)
)

// Extractor scans documents into outlines using the catalog's style-to-level
// table plus per-template synthesis rules.
type Extractor struct {
	levels   map[string]int
	template common.TemplateKind
	titles   *titler
	log      *zap.Logger
}

func NewExtractor(cat *catalog.Catalog, log *zap.Logger) *Extractor {
	return &Extractor{
		levels:   cat.OutlineLevels(),
		template: cat.Template,
		titles:   newTitler(log),
		log:      log.Named("outline"),
	}
}

// TitleLimit adjusts the synthesized title ceiling, values below 10 runes
// are ignored.
func (x *Extractor) TitleLimit(runes int) {
	if runes >= 10 {
		x.titles.limit = runes
	}
}

// Extract runs a single forward scan. pageFor maps a paragraph index to its
// physical page, nil means everything lands on page 0. Entries come back in
// source order and every title is non-empty.
func (x *Extractor) Extract(d *document.Document, pageFor func(int) int) []Entry {
	if pageFor == nil {
		pageFor = func(int) int { return 0 }
	}
	if x.template == common.TemplateKindPoetry {
		return x.extractPoetry(d, pageFor)
	}

	var entries []Entry
	seen := make(map[string]int)

	for i, p := range d.Paragraphs {
		level, ok := x.levels[p.StyleTag]
		if !ok {
			if x.template != common.TemplateKindScreenplay {
				continue
			}
			// content-only imports carry no heading tags, synthesize from
			// the line shape
			level, ok = screenplayLevel(p.Text())
			if !ok {
				continue
			}
		}

		title := strings.TrimSpace(p.Text())
		if len(title) == 0 {
			title = x.titles.synthesize(d.Paragraphs, i)
			if len(title) == 0 {
				continue
			}
		}

		entries = append(entries, Entry{
			Level:     level,
			Title:     title,
			StyleTag:  p.StyleTag,
			Paragraph: i,
			Page:      pageFor(i),
			Anchor:    anchorFor(title, seen),
		})
	}
	return entries
}

func screenplayLevel(text string) (int, bool) {
	t := strings.TrimSpace(text)
	switch {
	case actHeading.MatchString(t):
		return 0, true
	case sceneHeading.MatchString(t):
		return 1, true
	default:
		return 0, false
	}
}

// extractPoetry groups verse into stanzas instead of walking heading
// levels. A stanza is the maximal run of non-blank, non-header lines not
// interrupted by an explicit break, and only quatrains make the outline.
// Other stanza lengths stay in the document but are not navigable.
func (x *Extractor) extractPoetry(d *document.Document, pageFor func(int) int) []Entry {
	var entries []Entry
	seen := make(map[string]int)

	stanzaStart := -1
	stanzaLines := 0

	flush := func() {
		if stanzaLines == 4 {
			p := d.Paragraphs[stanzaStart]
			title := strings.TrimSpace(p.Text())
			entries = append(entries, Entry{
				Level:     1,
				Title:     title,
				StyleTag:  p.StyleTag,
				Paragraph: stanzaStart,
				Page:      pageFor(stanzaStart),
				Anchor:    anchorFor(title, seen),
			})
		}
		stanzaStart = -1
		stanzaLines = 0
	}

	for i, p := range d.Paragraphs {
		if level, isHeader := x.levels[p.StyleTag]; isHeader {
			flush()
			title := strings.TrimSpace(p.Text())
			if len(title) == 0 {
				continue
			}
			entries = append(entries, Entry{
				Level:     level,
				Title:     title,
				StyleTag:  p.StyleTag,
				Paragraph: i,
				Page:      pageFor(i),
				Anchor:    anchorFor(title, seen),
			})
			continue
		}
		if p.IsEmpty() || hasExplicitBreak(p) {
			flush()
			continue
		}
		if stanzaStart < 0 {
			stanzaStart = i
		}
		stanzaLines++
	}
	flush()
	return entries
}

func hasExplicitBreak(p *document.Paragraph) bool {
	for _, m := range p.Markers() {
		if m.Kind == common.MarkerKindSectionBreak || m.Kind == common.MarkerKindPageBreak {
			return true
		}
	}
	return false
}

// anchorFor slugs the title, numbering repeats so anchors stay unique
// within one extraction.
func anchorFor(title string, seen map[string]int) string {
	s := slug.Make(title)
	seen[s]++
	if n := seen[s]; n > 1 {
		return s + "-" + strconv.Itoa(n)
	}
	return s
}
