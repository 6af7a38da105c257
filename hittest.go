package areatracker

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// hitTestBackground is the reserved color of pixels that belong to no region.
// It decodes to 0xFFFFFF, which is never a valid id.
var hitTestBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// HitTestIndex is an offscreen raster in which every pixel of a region's fill
// and border carries that region's id in its color channels. Looking up the
// region under the cursor is a single pixel read.
type HitTestIndex struct {
	img   *image.RGBA
	count int
}

// NewHitTestIndex allocates an empty index for a canvas of the given size.
// Every pixel decodes to NoRegion until Build is called.
func NewHitTestIndex(width, height int) *HitTestIndex {
	return &HitTestIndex{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Build repaints the index from scratch. Regions are painted in ascending id
// order so later regions cover earlier ones where they overlap. Edges shared
// by two regions are then repainted in the background color, so a click
// exactly on a common border resolves to no region instead of to whichever
// neighbor happened to be drawn last.
//
// gg always anti-aliases, so each shape is rasterized into a scratch mask
// first and only pixels at least half covered are copied. Every pixel of the
// index therefore holds an exact id or the background, never a blend that
// could decode to an unrelated region.
func (h *HitTestIndex) Build(regions *RegionSet, borderWidth float64) {
	dc := gg.NewContextForRGBA(h.img)
	dc.SetColor(hitTestBackground)
	dc.Clear()

	pad := int(math.Ceil(borderWidth/2)) + 1
	var edges EdgeSet
	for _, r := range regions.All() {
		h.stamp(vertexBox(r.Vertices()).Inset(-pad), idColor(r.ID), func(dc *gg.Context) {
			tracePolygon(dc, r)
			dc.FillPreserve()
			dc.SetLineWidth(borderWidth)
			dc.Stroke()
		})
		edges.AddRegion(r)
	}

	for _, e := range edges.Duplicates() {
		box := image.Rect(e.A.X, e.A.Y, e.B.X, e.B.Y)
		box.Max = box.Max.Add(image.Pt(1, 1))
		h.stamp(box.Inset(-pad), hitTestBackground, func(dc *gg.Context) {
			dc.SetLineWidth(borderWidth)
			dc.DrawLine(px(e.A.X), px(e.A.Y), px(e.B.X), px(e.B.Y))
			dc.Stroke()
		})
	}
	h.count = regions.Len()
}

// stamp runs draw on a scratch context covering box and paints c into the
// index wherever the result is at least half opaque.
func (h *HitTestIndex) stamp(box image.Rectangle, c color.RGBA, draw func(dc *gg.Context)) {
	box = box.Intersect(h.img.Rect)
	if box.Empty() {
		return
	}
	dc := gg.NewContext(box.Dx(), box.Dy())
	dc.Translate(-float64(box.Min.X), -float64(box.Min.Y))
	dc.SetColor(color.White)
	draw(dc)

	mask := dc.Image().(*image.RGBA)
	for y := 0; y < box.Dy(); y++ {
		for x := 0; x < box.Dx(); x++ {
			if mask.RGBAAt(x, y).A >= 0x80 {
				h.img.SetRGBA(box.Min.X+x, box.Min.Y+y, c)
			}
		}
	}
}

// vertexBox returns the smallest rectangle holding every vertex pixel.
func vertexBox(pts []image.Point) image.Rectangle {
	var b image.Rectangle
	for i, p := range pts {
		r := image.Rect(p.X, p.Y, p.X+1, p.Y+1)
		if i == 0 {
			b = r
			continue
		}
		b = b.Union(r)
	}
	return b
}

// Decode returns the id of the region painted at (x, y), or NoRegion for
// background pixels and points off the raster.
func (h *HitTestIndex) Decode(x, y int) int {
	if !image.Pt(x, y).In(h.img.Rect) {
		return NoRegion
	}
	c := h.img.RGBAAt(x, y)
	id := int(c.R)<<16 | int(c.G)<<8 | int(c.B)
	if id >= h.count {
		return NoRegion
	}
	return id
}

// Image returns the raw index raster.
func (h *HitTestIndex) Image() *image.RGBA {
	return h.img
}

// idColor encodes id as red = bits 16-23, green = bits 8-15, blue = bits 0-7.
func idColor(id int) color.RGBA {
	return color.RGBA{
		R: uint8(id >> 16),
		G: uint8(id >> 8),
		B: uint8(id),
		A: 0xFF,
	}
}
