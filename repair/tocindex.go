// Package repair regenerates leader dots, tab stops and style tags for TOC
// and index paragraphs after width changes or lossy foreign round trips.
package repair

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"scribe/catalog"
	"scribe/common"
	"scribe/config"
	"scribe/document"
)

const (
	tocEntryStyle   = "TOC Entry"
	indexEntryStyle = "Index Entry"

	// tab stop positions within this tolerance count as unchanged
	tabEpsilon = 0.5

	// leader counts within one dot of ideal are left alone
	leaderDrift = 2
)

// Stats summarizes one repair pass. Skipped is the fast-path short-circuit,
// not an error.
type Stats struct {
	Examined         int
	Retagged         int
	TabStopsFixed    int
	LeadersRewritten int
	TabsInserted     int
	Skipped          bool
}

func (s Stats) edits() int {
	return s.Retagged + s.TabStopsFixed + s.LeadersRewritten + s.TabsInserted
}

// Pass holds the repair configuration and the last applied right-tab
// location, which selects the fast path on the next run.
type Pass struct {
	widths WidthMeasurer
	log    *zap.Logger

	// the active catalog carries TOC/Index styles only for templates where
	// repair makes sense
	enabled bool

	dotUnitWidth float64
	clearance    float64

	lastTab float64
}

func NewPass(cat *catalog.Catalog, leader config.LeaderConfig, widths WidthMeasurer, log *zap.Logger) *Pass {
	_, hasTOC := cat.Lookup(tocEntryStyle)
	_, hasIndex := cat.Lookup(indexEntryStyle)
	return &Pass{
		widths:       widths,
		log:          log.Named("repair"),
		enabled:      hasTOC && hasIndex,
		dotUnitWidth: leader.DotUnitWidth,
		clearance:    leader.Clearance,
	}
}

// edit is one planned change. Length-preserving edits (tags, tab stops)
// apply before length-changing ones (leader rewrites, tab insertions), and
// within each class back-to-front by paragraph, so earlier ranges stay
// valid while later ones are being replaced.
type edit struct {
	para          int
	lengthChanges bool
	apply         func()
}

// Run repairs the document against the right-tab location. Notifications
// are suppressed for the duration, the pass must not re-trigger itself.
func (p *Pass) Run(d *document.Document, rightTab float64, n *document.Notifier) Stats {
	if !p.enabled {
		return Stats{Skipped: true}
	}
	if n != nil {
		release := n.Suppress()
		defer release()
	}

	fastPath := math.Abs(rightTab-p.lastTab) < tabEpsilon
	p.lastTab = rightTab

	var stats Stats
	var edits []edit

	for i, para := range d.Paragraphs {
		line, looksLike := parseLine(para.Text())
		tagged := para.StyleTag == tocEntryStyle || para.StyleTag == indexEntryStyle
		if !tagged && !looksLike {
			continue
		}
		stats.Examined++
		edits = append(edits, p.planParagraph(i, para, line, looksLike, rightTab, &stats)...)
	}

	if fastPath && len(edits) == 0 {
		stats.Skipped = true
		p.log.Debug("Repair skipped, no drift found")
		return stats
	}

	// length-preserving first, then length-changing, back-to-front within each
	sort.SliceStable(edits, func(a, b int) bool {
		if edits[a].lengthChanges != edits[b].lengthChanges {
			return !edits[a].lengthChanges
		}
		return edits[a].para > edits[b].para
	})
	for _, e := range edits {
		e.apply()
	}

	if stats.edits() > 0 {
		p.log.Debug("Repaired TOC/Index paragraphs",
			zap.Int("examined", stats.Examined),
			zap.Int("retagged", stats.Retagged),
			zap.Int("tab_stops", stats.TabStopsFixed),
			zap.Int("leaders", stats.LeadersRewritten),
			zap.Int("tabs", stats.TabsInserted))
	}
	return stats
}

func (p *Pass) planParagraph(idx int, para *document.Paragraph, line parsedLine, looksLike bool, rightTab float64, stats *Stats) []edit {
	var edits []edit

	wantStyle := para.StyleTag
	if looksLike {
		wantStyle = tocEntryStyle
		if line.multiplePages() || para.Format.HeadIndent > 0 {
			wantStyle = indexEntryStyle
		}
		// navigation correctness depends on the tag, fix it even when the
		// geometry already looks fine
		if para.StyleTag != wantStyle {
			style := wantStyle
			edits = append(edits, edit{para: idx, apply: func() {
				para.StyleTag = style
				stats.Retagged++
			}})
		}
	}

	if !p.hasRightTabAt(para, rightTab) {
		edits = append(edits, edit{para: idx, apply: func() {
			p.setRightTab(para, rightTab)
			stats.TabStopsFixed++
		}})
	}

	if !looksLike {
		// tagged but structurally opaque, geometry fixes only
		return edits
	}

	isIndex := wantStyle == indexEntryStyle
	font := firstVisibleFormat(para)

	if line.cleanlySeparable() {
		ideal := p.idealUnits(line, para.Format.HeadIndent, rightTab, font)
		if drift := len(line.leader) - ideal; drift >= leaderDrift || drift <= -leaderDrift {
			text := line.rebuild(ideal, isIndex)
			edits = append(edits, edit{para: idx, lengthChanges: true, apply: func() {
				replaceText(para, text)
				stats.LeadersRewritten++
			}})
		}
	} else if !hasTab(line.separator) {
		text := line.substituteTab()
		edits = append(edits, edit{para: idx, lengthChanges: true, apply: func() {
			replaceText(para, text)
			stats.TabsInserted++
		}})
	}
	return edits
}

func (p *Pass) idealUnits(line parsedLine, headIndent, rightTab float64, font document.RunFormat) int {
	titleWidth := p.widths.TextWidth(line.title, font)
	pagesWidth := p.widths.TextWidth(line.pages, font)
	available := rightTab - headIndent - titleWidth - pagesWidth - p.clearance
	return idealLeaderUnits(available, p.dotUnitWidth)
}

func (p *Pass) hasRightTabAt(para *document.Paragraph, pos float64) bool {
	for _, ts := range para.Format.TabStops {
		if ts.Alignment == common.TabAlignmentRight && math.Abs(ts.Position-pos) < tabEpsilon {
			return true
		}
	}
	return false
}

// setRightTab moves the existing right stop or appends one. Other stops are
// author property and stay.
func (p *Pass) setRightTab(para *document.Paragraph, pos float64) {
	for i, ts := range para.Format.TabStops {
		if ts.Alignment == common.TabAlignmentRight {
			para.Format.TabStops[i].Position = pos
			if para.Format.TabStops[i].Leader == 0 {
				para.Format.TabStops[i].Leader = '.'
			}
			return
		}
	}
	para.Format.TabStops = append(para.Format.TabStops, document.TabStop{
		Position:  pos,
		Alignment: common.TabAlignmentRight,
		Leader:    '.',
	})
}

func hasTab(s string) bool {
	for _, r := range s {
		if r == '\t' {
			return true
		}
	}
	return false
}

func firstVisibleFormat(para *document.Paragraph) document.RunFormat {
	for _, r := range para.Runs {
		if r.Marker == nil {
			return r.Format
		}
	}
	return document.RunFormat{}
}

// replaceText performs a whole-line replacement: the new text lands in the
// first visible run, later runs keep their markers but lose their text.
func replaceText(para *document.Paragraph, text string) {
	placed := false
	for _, r := range para.Runs {
		if r.Marker != nil {
			continue
		}
		if !placed {
			r.Text = text
			placed = true
		} else {
			r.Text = ""
		}
	}
	if !placed {
		para.Runs = append(para.Runs, &document.Run{Text: text})
	}
}
