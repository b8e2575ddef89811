package outline

import (
	"strings"

	"golang.org/x/text/cases"

	"scribe/document"
)

var fold = cases.Fold()

// Resolve maps a previously captured entry back to a live paragraph index.
// Content may have shifted since capture, so candidates are all paragraphs
// whose folded trimmed title matches, narrowed by style tag when the entry
// has one. Among several candidates the nearest to the original source
// offset wins, ambiguity is never surfaced as an error.
func Resolve(d *document.Document, e Entry) (int, bool) {
	want := fold.String(strings.TrimSpace(e.Title))
	if len(want) == 0 {
		return 0, false
	}

	best := -1
	bestDist := 0
	for i, p := range d.Paragraphs {
		if len(e.StyleTag) > 0 && p.StyleTag != e.StyleTag {
			continue
		}
		if fold.String(strings.TrimSpace(p.Text())) != want {
			continue
		}
		dist := i - e.Paragraph
		if dist < 0 {
			dist = -dist
		}
		if best < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
