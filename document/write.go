package document

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
)

// WriteTo serializes the document as manuscript XML. Attributes carrying
// zero values are omitted, parsing restores them as inherited.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}

	root := doc.CreateElement("manuscript")
	root.CreateAttr("id", d.ID.String())
	root.CreateAttr("template", d.Template.String())
	if !d.Lang.IsRoot() {
		root.CreateAttr("lang", d.Lang.String())
	}

	for _, p := range d.Paragraphs {
		writeParagraph(root, p)
	}

	doc.Indent(2)
	return doc.WriteTo(w)
}

func writeParagraph(root *etree.Element, p *Paragraph) {
	pe := root.CreateElement("p")
	if len(p.StyleTag) > 0 {
		pe.CreateAttr("style", p.StyleTag)
	}
	pe.CreateAttr("align", p.Format.Alignment.String())
	writeFloat(pe, "head", p.Format.HeadIndent)
	writeFloat(pe, "first", p.Format.FirstLineIndent)
	writeFloat(pe, "tail", p.Format.TailIndent)
	writeFloat(pe, "before", p.Format.SpacingBefore)
	writeFloat(pe, "after", p.Format.SpacingAfter)
	writeFloat(pe, "lineheight", p.Format.LineHeightMultiple)
	if p.Format.Block != 0 {
		pe.CreateAttr("block", p.Format.Block.String())
	}

	if len(p.Format.TabStops) > 0 {
		tabs := pe.CreateElement("tabs")
		for _, ts := range p.Format.TabStops {
			te := tabs.CreateElement("tab")
			writeFloat(te, "pos", ts.Position)
			te.CreateAttr("align", ts.Alignment.String())
			if ts.Leader != 0 {
				te.CreateAttr("leader", string(ts.Leader))
			}
		}
	}

	for _, r := range p.Runs {
		writeRun(pe, r)
	}
}

func writeRun(pe *etree.Element, r *Run) {
	re := pe.CreateElement("run")
	if len(r.Format.FontName) > 0 {
		re.CreateAttr("font", r.Format.FontName)
	}
	writeFloat(re, "size", r.Format.FontSize)
	writeBool(re, "bold", r.Format.Bold)
	writeBool(re, "italic", r.Format.Italic)
	writeBool(re, "smallcaps", r.Format.SmallCaps)
	if len(r.Format.Color) > 0 {
		re.CreateAttr("color", r.Format.Color)
	}
	if len(r.Format.Background) > 0 {
		re.CreateAttr("background", r.Format.Background)
	}
	if r.Marker != nil {
		re.CreateAttr("href", r.Marker.Encode())
	}
	if len(r.Text) > 0 {
		re.SetText(r.Text)
	}
}

func writeFloat(e *etree.Element, attr string, v float64) {
	if v != 0 {
		e.CreateAttr(attr, strconv.FormatFloat(v, 'f', -1, 64))
	}
}

func writeBool(e *etree.Element, attr string, v bool) {
	if v {
		e.CreateAttr(attr, "true")
	}
}
