package layout

import (
	"scribe/config"
)

// RenderContext carries everything geometry depends on. It is passed
// explicitly into the engine, nothing in this package reads ambient state.
type RenderContext struct {
	Page config.PageConfig
	Zoom float64
}

func (rc RenderContext) zoom() float64 {
	if rc.Zoom > 0 {
		return rc.Zoom
	}
	if rc.Page.Zoom > 0 {
		return rc.Page.Zoom
	}
	return 1.0
}

// ContentWidth is the effective text-flow width at the current zoom.
func (rc RenderContext) ContentWidth() float64 {
	z := rc.zoom()
	return (rc.Page.Width - 2*rc.Page.Margin) * z
}

// Rect is an axis-aligned rectangle in scaled document coordinates. Pages
// stack vertically with the inter-page gap between them.
type Rect struct {
	X, Y, Width, Height float64
}

// PageFrame returns the outer frame of the 0-based page.
func (rc RenderContext) PageFrame(page int) Rect {
	z := rc.zoom()
	h := rc.Page.Height * z
	g := rc.Page.Gap * z
	return Rect{
		X:      0,
		Y:      float64(page) * (h + g),
		Width:  rc.Page.Width * z,
		Height: h,
	}
}

// ExclusionRegions returns the bands of the page excluded from the text
// flow: the header band (top margin plus header clearance), the footer band
// (bottom margin plus footer clearance) and the inter-page gap below the
// page. Body text never overlaps chrome.
func (rc RenderContext) ExclusionRegions(page int) []Rect {
	z := rc.zoom()
	frame := rc.PageFrame(page)
	top := (rc.Page.Margin + rc.Page.HeaderClearance) * z
	bottom := (rc.Page.Margin + rc.Page.FooterClearance) * z

	return []Rect{
		{X: frame.X, Y: frame.Y, Width: frame.Width, Height: top},
		{X: frame.X, Y: frame.Y + frame.Height - bottom, Width: frame.Width, Height: bottom},
		{X: frame.X, Y: frame.Y + frame.Height, Width: frame.Width, Height: rc.Page.Gap * z},
	}
}

// materially reports whether two rectangles differ by at least the given
// threshold in any coordinate.
func (r Rect) materially(o Rect, eps float64) bool {
	return abs(r.X-o.X) >= eps || abs(r.Y-o.Y) >= eps ||
		abs(r.Width-o.Width) >= eps || abs(r.Height-o.Height) >= eps
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
