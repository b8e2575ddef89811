package document

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/language"

	"scribe/common"
)

// Parse reads a manuscript XML stream into the document model. Reading is
// deliberately permissive, files exported by foreign word processors are
// often not well formed and we prefer a degraded document over a refusal.
func Parse(r io.Reader, log *zap.Logger) (*Document, error) {

	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		ValidateInput: false,
		Permissive:    true,
	}

	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read manuscript: %w", err)
	}

	root := doc.SelectElement("manuscript")
	if root == nil {
		return nil, fmt.Errorf("unable to parse manuscript: no root element")
	}

	d := &Document{}

	// Make sure document ID is not empty and is valid UUID
	oldID := root.SelectAttrValue("id", "")
	if id, err := uuid.Parse(oldID); err == nil {
		d.ID = id
	} else {
		if d.ID, err = uuid.NewV7(); err != nil {
			return nil, fmt.Errorf("unable to generate new manuscript UUID: %w", err)
		}
		log.Warn("Manuscript has invalid ID, correcting", zap.String("old_id", oldID), zap.Stringer("new_id", d.ID))
	}

	if tag, err := language.Parse(root.SelectAttrValue("lang", "")); err == nil {
		d.Lang = tag
	} else {
		d.Lang = language.Und
	}

	if kind, err := common.ParseTemplateKind(root.SelectAttrValue("template", "prose")); err == nil {
		d.Template = kind
	} else {
		log.Debug("Unknown manuscript template, assuming prose", zap.Error(err))
		d.Template = common.TemplateKindProse
	}

	for _, pe := range root.SelectElements("p") {
		d.Paragraphs = append(d.Paragraphs, parseParagraph(pe, log))
	}
	return d, nil
}

func parseParagraph(pe *etree.Element, log *zap.Logger) *Paragraph {
	p := &Paragraph{StyleTag: pe.SelectAttrValue("style", "")}

	if a, err := common.ParseAlignment(pe.SelectAttrValue("align", "left")); err == nil {
		p.Format.Alignment = a
	} else {
		log.Debug("Unknown paragraph alignment, assuming left", zap.Error(err))
	}
	p.Format.HeadIndent = parseFloat(pe, "head")
	p.Format.FirstLineIndent = parseFloat(pe, "first")
	p.Format.TailIndent = parseFloat(pe, "tail")
	p.Format.SpacingBefore = parseFloat(pe, "before")
	p.Format.SpacingAfter = parseFloat(pe, "after")
	p.Format.LineHeightMultiple = parseFloat(pe, "lineheight")

	if b, err := common.ParseBlockKind(pe.SelectAttrValue("block", "none")); err == nil {
		p.Format.Block = b
	} else {
		log.Debug("Unknown block kind, assuming none", zap.Error(err))
	}

	if tabs := pe.SelectElement("tabs"); tabs != nil {
		for _, te := range tabs.SelectElements("tab") {
			ts := TabStop{Position: parseFloat(te, "pos")}
			if a, err := common.ParseTabAlignment(te.SelectAttrValue("align", "left")); err == nil {
				ts.Alignment = a
			}
			if leader := te.SelectAttrValue("leader", ""); len(leader) > 0 {
				ts.Leader = []rune(leader)[0]
			}
			p.Format.TabStops = append(p.Format.TabStops, ts)
		}
	}

	for _, re := range pe.SelectElements("run") {
		p.Runs = append(p.Runs, parseRun(re, log))
	}
	return p
}

func parseRun(re *etree.Element, log *zap.Logger) *Run {
	r := &Run{
		Text: re.Text(),
		Format: RunFormat{
			FontName:   re.SelectAttrValue("font", ""),
			FontSize:   parseFloat(re, "size"),
			Bold:       parseBool(re, "bold"),
			Italic:     parseBool(re, "italic"),
			SmallCaps:  parseBool(re, "smallcaps"),
			Color:      re.SelectAttrValue("color", ""),
			Background: re.SelectAttrValue("background", ""),
		},
	}

	if href := re.SelectAttrValue("href", ""); IsMarkerPayload(href) {
		m, err := DecodeMarker(href)
		if err != nil {
			// marker is dropped, the anchor stays as transparent text
			log.Debug("Dropping undecodable marker", zap.String("href", href), zap.Error(err))
			r.Format.Color = ColorTransparent
			return r
		}
		r.Marker = m
		r.Text = ""
		r.Format.Color = ColorTransparent
	}
	return r
}

func parseFloat(e *etree.Element, attr string) float64 {
	v, err := strconv.ParseFloat(e.SelectAttrValue(attr, ""), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseBool(e *etree.Element, attr string) bool {
	v, err := strconv.ParseBool(e.SelectAttrValue(attr, "false"))
	if err != nil {
		return false
	}
	return v
}
