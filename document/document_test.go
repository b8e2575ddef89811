package document

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	"scribe/common"
)

const sampleManuscript = `<?xml version="1.0" encoding="UTF-8"?>
<manuscript id="018f4a9e-9c1a-7aaa-bbbb-0123456789ab" template="prose" lang="en">
  <p style="Chapter Title" align="center">
    <run size="18" bold="true">Chapter One</run>
  </p>
  <p style="Body Text" first="18">
    <run>It was a dark and stormy night.</run>
    <run italic="true">Suddenly</run>
    <run> a shot rang out.</run>
  </p>
  <p>
    <tabs><tab pos="468" align="right" leader="."/></tabs>
    <run>Chapter One	3</run>
  </p>
</manuscript>`

func TestParse(t *testing.T) {
	log := zaptest.NewLogger(t)

	d, err := Parse(strings.NewReader(sampleManuscript), log)
	if err != nil {
		t.Fatalf("unable to parse manuscript: %v", err)
	}
	if d.Template != common.TemplateKindProse {
		t.Errorf("wrong template: %s", d.Template)
	}
	if d.Lang.String() != "en" {
		t.Errorf("wrong language: %s", d.Lang)
	}
	if len(d.Paragraphs) != 3 {
		t.Fatalf("wrong paragraph count: %d", len(d.Paragraphs))
	}

	title := d.Paragraphs[0]
	if title.StyleTag != "Chapter Title" || title.Format.Alignment != common.AlignmentCenter {
		t.Errorf("title paragraph parsed wrong: %+v", title)
	}
	if title.Runs[0].Format.FontSize != 18 || !title.Runs[0].Format.Bold {
		t.Errorf("title run parsed wrong: %+v", title.Runs[0].Format)
	}

	body := d.Paragraphs[1]
	if got := body.Text(); got != "It was a dark and stormy night.Suddenly a shot rang out." {
		t.Errorf("body text parsed wrong: %q", got)
	}
	if body.Format.FirstLineIndent != 18 {
		t.Errorf("first line indent lost: %f", body.Format.FirstLineIndent)
	}

	toc := d.Paragraphs[2]
	if !toc.Format.HasRightTab() {
		t.Error("right tab stop lost")
	}
	if toc.Format.TabStops[0].Leader != '.' {
		t.Errorf("tab leader lost: %q", toc.Format.TabStops[0].Leader)
	}
}

func TestParseRepairsID(t *testing.T) {
	log := zaptest.NewLogger(t)

	src := `<manuscript id="not-a-uuid" template="prose"><p><run>x</run></p></manuscript>`
	d, err := Parse(strings.NewReader(src), log)
	if err != nil {
		t.Fatalf("unable to parse manuscript: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Error("invalid ID was not replaced")
	}
}

func TestParseUnknownAttributesDegrade(t *testing.T) {
	log := zaptest.NewLogger(t)

	src := `<manuscript template="libretto"><p align="sideways"><run>x</run></p></manuscript>`
	d, err := Parse(strings.NewReader(src), log)
	if err != nil {
		t.Fatalf("unable to parse manuscript: %v", err)
	}
	if d.Template != common.TemplateKindProse {
		t.Errorf("unknown template did not degrade to prose: %s", d.Template)
	}
	if d.Paragraphs[0].Format.Alignment != common.AlignmentLeft {
		t.Errorf("unknown alignment did not degrade to left: %s", d.Paragraphs[0].Format.Alignment)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	log := zaptest.NewLogger(t)

	d, err := Parse(strings.NewReader(sampleManuscript), log)
	if err != nil {
		t.Fatalf("unable to parse manuscript: %v", err)
	}

	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		t.Fatalf("unable to write manuscript: %v", err)
	}

	d2, err := Parse(bytes.NewReader(buf.Bytes()), log)
	if err != nil {
		t.Fatalf("unable to parse written manuscript: %v", err)
	}
	if d2.ID != d.ID {
		t.Errorf("ID changed in round trip: %s != %s", d2.ID, d.ID)
	}
	if len(d2.Paragraphs) != len(d.Paragraphs) {
		t.Fatalf("paragraph count changed in round trip: %d != %d", len(d2.Paragraphs), len(d.Paragraphs))
	}
	if d2.Paragraphs[1].Text() != d.Paragraphs[1].Text() {
		t.Errorf("text changed in round trip: %q", d2.Paragraphs[1].Text())
	}
	if !d2.Paragraphs[2].Format.HasRightTab() {
		t.Error("tab stops lost in round trip")
	}
}

func TestMarkerCodec(t *testing.T) {
	id := uuid.MustParse("018f4a9e-9c1a-7aaa-bbbb-0123456789ab")

	for _, tc := range []struct {
		name string
		m    Marker
	}{
		{"section break", Marker{Kind: common.MarkerKindSectionBreak, ID: id, StartNumber: 1, Format: common.NumberFormatRomanLower, Name: "Front Matter"}},
		{"page break", Marker{Kind: common.MarkerKindPageBreak}},
		{"page break with spacer", Marker{Kind: common.MarkerKindPageBreak, SpacerHeight: 24}},
		{"bookmark", Marker{Kind: common.MarkerKindBookmark, ID: id, Name: "notes & queries"}},
		{"cross reference", Marker{Kind: common.MarkerKindCrossReference, Target: id}},
		{"note reference", Marker{Kind: common.MarkerKindNoteReference, ID: id, Label: "7"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			href := tc.m.Encode()
			if !IsMarkerPayload(href) {
				t.Fatalf("encoded payload not recognized: %s", href)
			}
			got, err := DecodeMarker(href)
			if err != nil {
				t.Fatalf("unable to decode %s: %v", href, err)
			}
			if *got != tc.m {
				t.Errorf("round trip mismatch: %+v != %+v", *got, tc.m)
			}
		})
	}
}

func TestMarkerDecodeRejectsGarbage(t *testing.T) {
	for _, href := range []string{
		"https://example.com/not-a-marker",
		"scribe-marker://teleport",
		"scribe-marker://bookmark",
		"scribe-marker://sectionBreak?id=nope&start=1&format=arabic",
		"scribe-marker://sectionBreak?id=018f4a9e-9c1a-7aaa-bbbb-0123456789ab&start=one&format=arabic",
	} {
		if _, err := DecodeMarker(href); err == nil {
			t.Errorf("expected decode failure for %s", href)
		}
	}
}

func TestParseDropsBadMarker(t *testing.T) {
	log := zaptest.NewLogger(t)

	src := `<manuscript><p><run href="scribe-marker://bookmark?id=garbage">anchor</run></p></manuscript>`
	d, err := Parse(strings.NewReader(src), log)
	if err != nil {
		t.Fatalf("unable to parse manuscript: %v", err)
	}
	r := d.Paragraphs[0].Runs[0]
	if r.Marker != nil {
		t.Error("bad marker was not dropped")
	}
	if r.Format.Color != ColorTransparent {
		t.Errorf("orphaned anchor is not transparent: %q", r.Format.Color)
	}
	if r.Text != "anchor" {
		t.Errorf("anchor text lost: %q", r.Text)
	}
}

func TestNotifierSuppression(t *testing.T) {
	var n Notifier
	var got []Change
	n.Subscribe(func(c Change) { got = append(got, c) })

	n.Notify(Change{First: 0, Last: 0})

	release1 := n.Suppress()
	release2 := n.Suppress()
	n.Notify(Change{First: 1, Last: 1})
	release2()
	n.Notify(Change{First: 2, Last: 2})
	release1()
	release1() // double release must be harmless

	n.Notify(Change{First: 3, Last: 3})

	if len(got) != 2 || got[0].First != 0 || got[1].First != 3 {
		t.Errorf("unexpected delivery: %+v", got)
	}
}
