package style

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"scribe/catalog"
	"scribe/common"
	"scribe/document"
)

// pageRefLine matches a tab followed by trailing comma-separated integers,
// the shape of a TOC or index line that survived a foreign round trip.
var pageRefLine = regexp.MustCompile(`\t.*?(\d+(?:\s*,\s*\d+)*)\s*$`)

const (
	scoreIndentMatch    = 12
	scoreIndentMismatch = -4
	scoreTailMatch      = 4
	scoreAlignMatch     = 10
	scoreAlignMismatch  = -5
	scoreSizeMatch      = 20
	scoreSizeMismatch   = -10
	scoreTraitMatch     = 5
	scoreTraitMismatch  = -5
	scoreFamilyMatch    = 5

	sizeEpsilon   = 0.5
	indentEpsilon = 0.01
)

// Infer guesses the catalog style for an untagged paragraph. Content-based
// rules run first and short-circuit, then a weighted scoring loop over the
// catalog picks the best geometric and font match. Ties favor whichever
// style comes first in catalog order.
func (r *Resolver) Infer(p *document.Paragraph) string {
	if name, ok := r.inferByContent(p); ok {
		return name
	}
	return r.inferByScore(p)
}

func (r *Resolver) inferByContent(p *document.Paragraph) (string, bool) {
	text := p.Text()
	trimmed := strings.TrimSpace(text)
	if len(trimmed) == 0 {
		return "", false
	}
	font := effectiveFont(p)

	// TOC/Index line: tab followed by trailing page number list
	if m := pageRefLine.FindStringSubmatch(text); m != nil {
		multiple := strings.Contains(m[1], ",")
		if multiple || p.Format.HeadIndent > 0 {
			if r.has("Index Entry") {
				return "Index Entry", true
			}
		}
		if r.has("TOC Entry") {
			return "TOC Entry", true
		}
	}

	// single bold uppercase letter in index-letter sizes
	if font.Bold && font.FontSize >= 13 && font.FontSize <= 16 {
		runes := []rune(trimmed)
		if len(runes) == 1 && unicode.IsUpper(runes[0]) && r.has("Index Letter") {
			return "Index Letter", true
		}
	}

	// centered bold title lines
	if p.Format.Alignment == common.AlignmentCenter && font.Bold && font.FontSize >= 16 {
		switch strings.ToLower(trimmed) {
		case "index":
			if r.has("Index Title") {
				return "Index Title", true
			}
		case "table of contents", "contents":
			if r.has("TOC Title") {
				return "TOC Title", true
			}
		}
	}
	return "", false
}

func (r *Resolver) inferByScore(p *document.Paragraph) string {
	base := r.cat.Base().Name
	if len(p.Runs) == 0 {
		return base
	}
	font := effectiveFont(p)

	best := base
	bestScore := math.MinInt
	for _, def := range r.cat.Definitions() {
		if s := score(p, font, def); s > bestScore {
			best = def.Name
			bestScore = s
		}
	}
	return best
}

func score(p *document.Paragraph, font document.RunFormat, def *catalog.Definition) int {
	s := 0

	if floatEq(p.Format.HeadIndent, def.HeadIndent, indentEpsilon) {
		s += scoreIndentMatch
	} else {
		s += scoreIndentMismatch
	}
	if floatEq(p.Format.FirstLineIndent, def.FirstLineIndent, indentEpsilon) {
		s += scoreIndentMatch
	} else {
		s += scoreIndentMismatch
	}
	if floatEq(p.Format.TailIndent, def.TailIndent, indentEpsilon) {
		s += scoreTailMatch
	}

	if p.Format.Alignment == def.Alignment {
		s += scoreAlignMatch
	} else {
		s += scoreAlignMismatch
	}

	if floatEq(font.FontSize, def.FontSize, sizeEpsilon) {
		s += scoreSizeMatch
	} else {
		s += scoreSizeMismatch
	}

	if font.Bold == def.Bold {
		s += scoreTraitMatch
	} else {
		s += scoreTraitMismatch
	}
	if font.Italic == def.Italic {
		s += scoreTraitMatch
	} else {
		s += scoreTraitMismatch
	}

	if familyMatches(font.FontName, def.FontName) {
		s += scoreFamilyMatch
	}
	return s
}

// effectiveFont returns the format of the first visible run. A paragraph
// of nothing but anchors scores like an unformatted one.
func effectiveFont(p *document.Paragraph) document.RunFormat {
	for _, run := range p.Runs {
		if run.Marker == nil {
			return run.Format
		}
	}
	return document.RunFormat{}
}

func (r *Resolver) has(name string) bool {
	_, ok := r.cat.Lookup(name)
	return ok
}

func floatEq(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func familyMatches(runFamily, defFamily string) bool {
	if len(runFamily) == 0 || len(defFamily) == 0 {
		return false
	}
	a, b := strings.ToLower(runFamily), strings.ToLower(defFamily)
	return strings.Contains(a, b) || strings.Contains(b, a)
}
