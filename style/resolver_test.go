package style

import (
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap/zaptest"

	"scribe/catalog"
	"scribe/common"
	"scribe/document"
)

func proseResolver(t *testing.T) *Resolver {
	t.Helper()
	c, err := catalog.Load(common.TemplateKindProse)
	if err != nil {
		t.Fatalf("unable to load catalog: %v", err)
	}
	return NewResolver(c, zaptest.NewLogger(t))
}

func screenplayResolver(t *testing.T) *Resolver {
	t.Helper()
	c, err := catalog.Load(common.TemplateKindScreenplay)
	if err != nil {
		t.Fatalf("unable to load catalog: %v", err)
	}
	return NewResolver(c, zaptest.NewLogger(t))
}

func bodyParagraph(text string) *document.Paragraph {
	return &document.Paragraph{
		Format: document.ParagraphFormat{
			Alignment:       common.AlignmentJustified,
			FirstLineIndent: 18,
		},
		Runs: []*document.Run{{
			Text:   text,
			Format: document.RunFormat{FontName: "Times New Roman", FontSize: 12},
		}},
	}
}

func TestApplyUnknownStyle(t *testing.T) {
	r := proseResolver(t)

	p := bodyParagraph("hello")
	before := *p
	beforeFormat := p.Format

	err := r.Apply(p, "No Such Style")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Fatalf("expected ErrStyleNotFound, got %v", err)
	}
	if p.StyleTag != before.StyleTag || !reflect.DeepEqual(p.Format, beforeFormat) {
		t.Error("no-op apply mutated the paragraph")
	}
}

func TestApplyAdoptsInheritedValues(t *testing.T) {
	r := proseResolver(t)

	p := &document.Paragraph{
		Format: document.ParagraphFormat{Alignment: common.AlignmentJustified},
		Runs:   []*document.Run{{Text: "plain"}},
	}
	if err := r.Apply(p, "Body Text"); err != nil {
		t.Fatalf("unable to apply style: %v", err)
	}
	if p.StyleTag != "Body Text" {
		t.Errorf("tag not set: %q", p.StyleTag)
	}
	if p.Format.FirstLineIndent != 18 {
		t.Errorf("inherited first-line indent not adopted: %f", p.Format.FirstLineIndent)
	}
	if p.Format.LineHeightMultiple != 1.15 {
		t.Errorf("line height not adopted: %f", p.Format.LineHeightMultiple)
	}
	rf := p.Runs[0].Format
	if rf.FontName != "Times New Roman" || rf.FontSize != 12 {
		t.Errorf("font not adopted: %+v", rf)
	}
}

func TestApplyKeepsManualOverrides(t *testing.T) {
	r := proseResolver(t)

	p := &document.Paragraph{
		Format: document.ParagraphFormat{
			Alignment:       common.AlignmentLeft, // differs from justified
			FirstLineIndent: 36,                   // differs from 18
			TabStops: []document.TabStop{
				{Position: 200, Alignment: common.TabAlignmentCenter},
			},
			Block: common.BlockKindTable,
		},
		Runs: []*document.Run{{
			Text:   "emphasized",
			Format: document.RunFormat{FontName: "Times New Roman", FontSize: 14, Italic: true},
		}},
	}
	if err := r.Apply(p, "Body Text"); err != nil {
		t.Fatalf("unable to apply style: %v", err)
	}

	if p.Format.Alignment != common.AlignmentLeft {
		t.Error("manual alignment override lost")
	}
	if p.Format.FirstLineIndent != 36 {
		t.Error("manual indent override lost")
	}
	if len(p.Format.TabStops) != 1 || p.Format.TabStops[0].Position != 200 {
		t.Error("tab stops were replaced by style apply")
	}
	if p.Format.Block != common.BlockKindTable {
		t.Error("structural block reference lost")
	}
	rf := p.Runs[0].Format
	if rf.FontSize != 14 || !rf.Italic {
		t.Errorf("inline font override lost: %+v", rf)
	}
}

func TestApplyColorsOnlyWithoutOverride(t *testing.T) {
	c, err := catalog.Load(common.TemplateKindProse)
	if err != nil {
		t.Fatalf("unable to load catalog: %v", err)
	}
	def, _ := c.Lookup("Body Text")
	def.Color = "#101010"
	r := NewResolver(c, zaptest.NewLogger(t))

	p := bodyParagraph("colored")
	p.Runs = append(p.Runs, &document.Run{
		Text:   "red",
		Format: document.RunFormat{FontName: "Times New Roman", FontSize: 12, Color: "#ff0000"},
	})
	if err := r.Apply(p, "Body Text"); err != nil {
		t.Fatalf("unable to apply style: %v", err)
	}
	if p.Runs[0].Format.Color != "#101010" {
		t.Errorf("style color not applied to plain run: %q", p.Runs[0].Format.Color)
	}
	if p.Runs[1].Format.Color != "#ff0000" {
		t.Errorf("run color override lost: %q", p.Runs[1].Format.Color)
	}
}

func TestApplyForcedFamily(t *testing.T) {
	r := screenplayResolver(t)

	p := &document.Paragraph{
		Runs: []*document.Run{{
			Text:   "He draws the curtain.",
			Format: document.RunFormat{FontName: "Helvetica", FontSize: 14, Bold: true},
		}},
	}
	if err := r.Apply(p, "Action"); err != nil {
		t.Fatalf("unable to apply style: %v", err)
	}
	rf := p.Runs[0].Format
	if rf.FontName != "Courier Prime" {
		t.Errorf("family not forced on layout-sensitive template: %q", rf.FontName)
	}
	if rf.FontSize != 14 || !rf.Bold {
		t.Errorf("size and trait overrides must survive forcing: %+v", rf)
	}
}

func TestApplyIdempotent(t *testing.T) {
	r := proseResolver(t)

	p := bodyParagraph("stable")
	if err := r.Apply(p, "Body Text"); err != nil {
		t.Fatalf("unable to apply style: %v", err)
	}
	afterFirst := p.Format
	afterFirstRun := p.Runs[0].Format

	if err := r.Apply(p, "Body Text"); err != nil {
		t.Fatalf("unable to re-apply style: %v", err)
	}
	if !reflect.DeepEqual(p.Format, afterFirst) {
		t.Errorf("paragraph format drifted on re-apply: %+v != %+v", p.Format, afterFirst)
	}
	if p.Runs[0].Format != afterFirstRun {
		t.Errorf("run format drifted on re-apply: %+v != %+v", p.Runs[0].Format, afterFirstRun)
	}
}

func TestApplySkipsMarkerRuns(t *testing.T) {
	r := proseResolver(t)

	p := bodyParagraph("anchored")
	anchor := &document.Run{
		Marker: &document.Marker{Kind: common.MarkerKindPageBreak},
		Format: document.RunFormat{Color: document.ColorTransparent},
	}
	p.Runs = append(p.Runs, anchor)

	if err := r.Apply(p, "Body Text"); err != nil {
		t.Fatalf("unable to apply style: %v", err)
	}
	if anchor.Format.FontName != "" || anchor.Format.Color != document.ColorTransparent {
		t.Errorf("anchor run was restyled: %+v", anchor.Format)
	}
}

func TestInferContentRules(t *testing.T) {
	r := proseResolver(t)

	for _, tc := range []struct {
		name string
		p    *document.Paragraph
		want string
	}{
		{
			name: "toc line",
			p: &document.Paragraph{Runs: []*document.Run{{
				Text: "Chapter One\t12",
			}}},
			want: "TOC Entry",
		},
		{
			name: "index line with several pages",
			p: &document.Paragraph{Runs: []*document.Run{{
				Text: "whales\t12, 47, 203",
			}}},
			want: "Index Entry",
		},
		{
			name: "indented single page is index",
			p: &document.Paragraph{
				Format: document.ParagraphFormat{HeadIndent: 18},
				Runs:   []*document.Run{{Text: "sperm whale\t88"}},
			},
			want: "Index Entry",
		},
		{
			name: "index letter",
			p: &document.Paragraph{Runs: []*document.Run{{
				Text:   "W",
				Format: document.RunFormat{FontSize: 14, Bold: true},
			}}},
			want: "Index Letter",
		},
		{
			name: "toc title",
			p: &document.Paragraph{
				Format: document.ParagraphFormat{Alignment: common.AlignmentCenter},
				Runs: []*document.Run{{
					Text:   "Table of Contents",
					Format: document.RunFormat{FontSize: 16, Bold: true},
				}},
			},
			want: "TOC Title",
		},
		{
			name: "index title",
			p: &document.Paragraph{
				Format: document.ParagraphFormat{Alignment: common.AlignmentCenter},
				Runs: []*document.Run{{
					Text:   "INDEX",
					Format: document.RunFormat{FontSize: 18, Bold: true},
				}},
			},
			want: "Index Title",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Infer(tc.p); got != tc.want {
				t.Errorf("inferred %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInferByScore(t *testing.T) {
	r := proseResolver(t)

	// matches Body Text exactly: justified, 18pt first line, 12pt Times
	if got := r.Infer(bodyParagraph("An ordinary paragraph of prose.")); got != "Body Text" {
		t.Errorf("inferred %q, want Body Text", got)
	}

	heading := &document.Paragraph{
		Format: document.ParagraphFormat{Alignment: common.AlignmentCenter},
		Runs: []*document.Run{{
			Text:   "The Voyage Out",
			Format: document.RunFormat{FontName: "Times New Roman", FontSize: 18, Bold: true},
		}},
	}
	if got := r.Infer(heading); got != "Chapter Title" {
		t.Errorf("inferred %q, want Chapter Title", got)
	}
}

func TestInferFallsBackToBase(t *testing.T) {
	r := proseResolver(t)
	if got := r.Infer(&document.Paragraph{}); got != "Body Text" {
		t.Errorf("empty paragraph inferred %q, want Body Text", got)
	}

	pr := screenplayResolver(t)
	if got := pr.Infer(&document.Paragraph{}); got != "Action" {
		t.Errorf("empty screenplay paragraph inferred %q, want Action", got)
	}
}

func TestNormalize(t *testing.T) {
	r := proseResolver(t)

	d := &document.Document{
		Template: common.TemplateKindProse,
		Paragraphs: []*document.Paragraph{
			bodyParagraph("tagged"),
			bodyParagraph("untagged"),
		},
	}
	d.Paragraphs[0].StyleTag = "Body Text"

	r.Normalize(d)

	for i, p := range d.Paragraphs {
		if p.StyleTag != "Body Text" {
			t.Errorf("paragraph %d tagged %q, want Body Text", i, p.StyleTag)
		}
	}
}
