package repair

import (
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"scribe/catalog"
	"scribe/common"
	"scribe/config"
	"scribe/document"
)

func newPass(t *testing.T) *Pass {
	t.Helper()
	cat, err := catalog.Load(common.TemplateKindProse)
	if err != nil {
		t.Fatalf("unable to load catalog: %v", err)
	}
	leader := config.LeaderConfig{DotUnitWidth: 3.6, Clearance: 4}
	return NewPass(cat, leader, EstimatingWidths{DefaultSize: 12}, zaptest.NewLogger(t))
}

func tocParagraph(style, text string) *document.Paragraph {
	return &document.Paragraph{
		StyleTag: style,
		Runs:     []*document.Run{{Text: text, Format: document.RunFormat{FontSize: 12}}},
	}
}

func docOf(paragraphs ...*document.Paragraph) *document.Document {
	return &document.Document{Template: common.TemplateKindProse, Paragraphs: paragraphs}
}

func TestRepairRetagsMisclassified(t *testing.T) {
	p := newPass(t)

	d := docOf(
		tocParagraph("Body Text", "Chapter One\t12"),
		tocParagraph("Body Text", "whales\t12, 47, 203"),
	)
	stats := p.Run(d, 468, nil)

	if stats.Skipped {
		t.Fatal("pass skipped with drift present")
	}
	if stats.Retagged != 2 {
		t.Errorf("retagged %d paragraphs, want 2", stats.Retagged)
	}
	if d.Paragraphs[0].StyleTag != "TOC Entry" {
		t.Errorf("single page line tagged %q", d.Paragraphs[0].StyleTag)
	}
	if d.Paragraphs[1].StyleTag != "Index Entry" {
		t.Errorf("multi page line tagged %q", d.Paragraphs[1].StyleTag)
	}
}

func TestRepairFixesTabStop(t *testing.T) {
	p := newPass(t)

	// scenario: tab stop 40pt short of the current right margin
	para := tocParagraph("TOC Entry", "Chapter One\t12")
	para.Format.TabStops = []document.TabStop{
		{Position: 428, Alignment: common.TabAlignmentRight, Leader: '.'},
	}
	d := docOf(para)

	stats := p.Run(d, 468, nil)
	if stats.TabStopsFixed != 1 {
		t.Fatalf("fixed %d tab stops, want 1", stats.TabStopsFixed)
	}
	if para.Format.TabStops[0].Position != 468 {
		t.Errorf("tab stop at %f, want 468", para.Format.TabStops[0].Position)
	}
	if got := para.Text(); got != "Chapter One\t12" {
		t.Errorf("text was altered: %q", got)
	}
}

func TestRepairInsertsTabForSpaces(t *testing.T) {
	p := newPass(t)

	para := tocParagraph("TOC Entry", "Chapter One    12")
	d := docOf(para)

	stats := p.Run(d, 468, nil)
	if stats.TabsInserted != 1 {
		t.Fatalf("inserted %d tabs, want 1", stats.TabsInserted)
	}
	if got := para.Text(); got != "Chapter One\t12" {
		t.Errorf("substitution produced %q", got)
	}
}

func TestRepairRewritesDriftedLeader(t *testing.T) {
	p := newPass(t)

	para := tocParagraph("TOC Entry", "Chapter One.....\t12")
	d := docOf(para)

	stats := p.Run(d, 468, nil)
	if stats.LeadersRewritten != 1 {
		t.Fatalf("rewrote %d leaders, want 1", stats.LeadersRewritten)
	}
	text := para.Text()
	if !strings.HasPrefix(text, "Chapter One") || !strings.HasSuffix(text, "\t12") {
		t.Fatalf("title or pages damaged: %q", text)
	}
	dots := strings.Count(text, ".")
	// rightTab 468 - title 66 - pages 12 - clearance 4 = 386; 386/3.6 = 107
	if dots != 107 {
		t.Errorf("leader has %d dots, want 107", dots)
	}
}

func TestRepairMinimumLeader(t *testing.T) {
	p := newPass(t)

	long := strings.Repeat("very long chapter title ", 4)
	para := tocParagraph("TOC Entry", long+".....\t12")
	d := docOf(para)

	p.Run(d, 468, nil)
	text := para.Text()
	if dots := strings.Count(text, "."); dots != 3 {
		t.Errorf("crowded line got %d dots, want the 3-dot floor", dots)
	}
}

func TestRepairIdempotent(t *testing.T) {
	p := newPass(t)

	d := docOf(
		tocParagraph("Body Text", "Chapter One.....\t12"),
		tocParagraph("Body Text", "Chapter Two    7"),
		tocParagraph("", "whales\t12, 47"),
	)

	first := p.Run(d, 468, nil)
	if first.Skipped || first.edits() == 0 {
		t.Fatalf("first pass made no edits: %+v", first)
	}

	var texts []string
	for _, para := range d.Paragraphs {
		texts = append(texts, para.Text())
	}

	second := p.Run(d, 468, nil)
	if !second.Skipped {
		t.Errorf("second pass not skipped: %+v", second)
	}
	for i, para := range d.Paragraphs {
		if para.Text() != texts[i] {
			t.Errorf("paragraph %d drifted on second pass: %q", i, para.Text())
		}
	}
}

func TestRepairFullPassOnWidthChange(t *testing.T) {
	p := newPass(t)

	para := tocParagraph("TOC Entry", "Chapter One\t12")
	d := docOf(para)

	p.Run(d, 468, nil)
	if para.Format.TabStops[0].Position != 468 {
		t.Fatalf("setup failed: %+v", para.Format.TabStops)
	}

	// zoom or margin change moved the right tab location
	stats := p.Run(d, 400, nil)
	if stats.Skipped {
		t.Fatal("width change must force the full pass")
	}
	if para.Format.TabStops[0].Position != 400 {
		t.Errorf("tab stop not moved: %f", para.Format.TabStops[0].Position)
	}
}

func TestRepairLeavesProseAlone(t *testing.T) {
	p := newPass(t)

	para := tocParagraph("Body Text", "It was the best of times, it was the worst of times.")
	d := docOf(para)

	stats := p.Run(d, 468, nil)
	if stats.Examined != 0 || stats.edits() != 0 {
		t.Errorf("prose paragraph touched: %+v", stats)
	}
	if len(para.Format.TabStops) != 0 {
		t.Error("prose paragraph got a tab stop")
	}
}

func TestRepairSuppressesNotifications(t *testing.T) {
	p := newPass(t)

	var n document.Notifier
	fired := 0
	n.Subscribe(func(document.Change) { fired++ })

	d := docOf(tocParagraph("Body Text", "Chapter One    12"))
	p.Run(d, 468, &n)

	if fired != 0 {
		t.Errorf("repair leaked %d notifications", fired)
	}
	// guard must be released on exit
	n.Notify(document.Change{})
	if fired != 1 {
		t.Error("suppression guard left set after the pass")
	}
}

func TestRepairDisabledForScreenplay(t *testing.T) {
	cat, err := catalog.Load(common.TemplateKindScreenplay)
	if err != nil {
		t.Fatalf("unable to load catalog: %v", err)
	}
	p := NewPass(cat, config.LeaderConfig{DotUnitWidth: 3.6, Clearance: 4}, EstimatingWidths{}, zaptest.NewLogger(t))

	d := docOf(tocParagraph("Action", "INT. HOUSE\t12"))
	stats := p.Run(d, 468, nil)
	if !stats.Skipped || stats.edits() != 0 {
		t.Errorf("screenplay document repaired: %+v", stats)
	}
}
