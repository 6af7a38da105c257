package areatracker

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// highlightAlpha is the opacity of the palette fill painted over the white
// base of a highlighted region.
const highlightAlpha = 0x80

// tracePolygon adds the outline of r to the current path of dc.
func tracePolygon(dc *gg.Context, r *Region) {
	dc.NewSubPath()
	for i, p := range r.Vertices() {
		if i == 0 {
			dc.MoveTo(px(p.X), px(p.Y))
			continue
		}
		dc.LineTo(px(p.X), px(p.Y))
	}
	dc.ClosePath()
}

// HighlightDelta describes one highlight sync: the region that lost the
// highlight, the one that gained it, and the pending link endpoint, which is
// drawn tinted whether or not it is highlighted.
type HighlightDelta struct {
	Previous int
	Current  int
	Clicked  int
	Changed  bool
}

// renderer paints the map raster and the highlight deltas on top of it.
type renderer struct {
	cfg      MapConfig
	regions  *RegionSet
	palette  *Palette
	areaFace font.Face
	bossFace font.Face
}

// drawMap repaints img from scratch: background, then every region in id
// order with its resolved fill, border, and link label.
func (r *renderer) drawMap(img *image.RGBA) {
	dc := gg.NewContextForRGBA(img)
	dc.SetColor(r.cfg.BackgroundColor)
	dc.Clear()
	for _, reg := range r.regions.All() {
		r.drawRegion(dc, reg, false)
	}
}

// drawHighlight paints d onto the map raster. After a full map rebuild
// (fresh) nothing is tinted yet, so the current and clicked regions are
// painted regardless of whether the highlight moved.
func (r *renderer) drawHighlight(img *image.RGBA, d HighlightDelta, fresh bool) {
	dc := gg.NewContextForRGBA(img)
	if fresh {
		if reg := r.regions.Region(d.Clicked); reg != nil && d.Clicked != d.Current {
			r.drawRegion(dc, reg, true)
		}
		if reg := r.regions.Region(d.Current); reg != nil {
			r.drawRegion(dc, reg, true)
		}
		return
	}
	if !d.Changed {
		return
	}
	if reg := r.regions.Region(d.Previous); reg != nil {
		r.drawRegion(dc, reg, d.Previous == d.Clicked)
	}
	if reg := r.regions.Region(d.Current); reg != nil {
		r.drawRegion(dc, reg, true)
	}
}

func (r *renderer) drawRegion(dc *gg.Context, reg *Region, tinted bool) {
	fill := r.palette.Resolve(reg).FillColor

	tracePolygon(dc, reg)
	if tinted {
		dc.SetColor(color.White)
		dc.FillPreserve()
		dc.SetColor(color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: highlightAlpha})
	} else {
		dc.SetColor(fill)
	}
	dc.FillPreserve()
	dc.SetColor(r.cfg.BorderColor)
	dc.SetLineWidth(r.cfg.borderWidth())
	dc.Stroke()

	r.drawLabel(dc, reg)
}

// drawLabel centers the link label of reg in its bounding box over a backing
// rectangle in the link's text background color. Text that does not fit is
// clipped to the box.
func (r *renderer) drawLabel(dc *gg.Context, reg *Region) {
	link, ok := reg.Link()
	if !ok || link.Label == "" {
		return
	}
	face := r.areaFace
	if reg.IsBoss() {
		face = r.bossFace
	}
	if face == nil {
		return
	}
	box := reg.Bounds()
	if box.Empty() {
		return
	}

	dc.SetFontFace(face)
	tw, th := dc.MeasureMultilineString(link.Label, 1)
	w := min(tw, float64(box.Dx()))
	h := min(th, float64(box.Dy()))
	x := float64(box.Min.X) + (float64(box.Dx())-w)/2
	y := float64(box.Min.Y) + (float64(box.Dy())-h)/2

	// gg keeps the clip mask across Push/Pop, so clear it explicitly.
	defer dc.ResetClip()
	dc.DrawRectangle(x, y, w, h)
	dc.Clip()

	dc.SetColor(link.Colors.TextBackgroundColor)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	// Lines are centered as a block, so overflow is lost evenly on both sides.
	top := float64(box.Min.Y) + (float64(box.Dy())-th)/2
	cx := float64(box.Min.X) + float64(box.Dx())/2
	fh := dc.FontHeight()
	dc.SetColor(link.Colors.FillColor)
	for i, line := range strings.Split(link.Label, "\n") {
		dc.DrawStringAnchored(line, cx, top+float64(i)*fh, 0.5, 1)
	}
}
