package areatracker

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// Link is the outbound association of a region: the region it points at, the
// label drawn inside the source region, and the colors the label uses.
type Link struct {
	// Target is the linked region id, or NoRegion for a boss label that no
	// boss region carries.
	Target int
	Label  string
	Colors Colors
}

// Region is an immutable polygon plus its mutable link state. Regions are
// addressed by id through a RegionSet; links refer to other regions by id.
type Region struct {
	ID      int
	Variant Variant
	// Group is the palette key of an area. For a boss it is "Boss".
	Group string
	// Name is the display label. Multi-word names are split across lines.
	Name string

	vertices []image.Point
	bounds   image.Rectangle

	link   Link
	linked bool
}

// NewRegion validates a polygon against a canvas of the given size and
// returns an unlinked region. The id is assigned when the region is added to
// a RegionSet.
func NewRegion(v Variant, group, name string, vertices []image.Point, width, height int) (*Region, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("areatracker: region %q: there must be at least three coordinates in each polygon", name)
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for i, p := range vertices {
		if p.X < 0 || p.X >= width {
			return nil, fmt.Errorf("areatracker: region %q: vertex %d: x coordinate %d outside [0,%d)", name, i, p.X, width)
		}
		if p.Y < 0 || p.Y >= height {
			return nil, fmt.Errorf("areatracker: region %q: vertex %d: y coordinate %d outside [0,%d)", name, i, p.Y, height)
		}
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	pts := make([]image.Point, len(vertices))
	copy(pts, vertices)
	return &Region{
		ID:       NoRegion,
		Variant:  v,
		Group:    group,
		Name:     name,
		vertices: pts,
		// Labels stay one pixel inside the outermost vertices.
		bounds: image.Rectangle{
			Min: image.Pt(minX+1, minY+1),
			Max: image.Pt(maxX-1, maxY-1),
		},
		link: Link{Target: NoRegion},
	}, nil
}

// Vertices returns the polygon outline. The returned slice MUST NOT be mutated.
func (r *Region) Vertices() []image.Point {
	return r.vertices
}

// Bounds returns the label box: the vertex bounding box inset by one pixel.
// Degenerate polygons yield an empty rectangle.
func (r *Region) Bounds() image.Rectangle {
	b := r.bounds
	if b.Max.X < b.Min.X {
		b.Max.X = b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Max.Y = b.Min.Y
	}
	return b
}

// IsBoss reports whether the region is a boss region.
func (r *Region) IsBoss() bool {
	return r.Variant == VariantBoss
}

// Link returns the current outbound link and whether one is set.
func (r *Region) Link() (Link, bool) {
	return r.link, r.linked
}

// Edges returns one edge per consecutive vertex pair plus the closing edge
// from the last vertex back to the first.
func (r *Region) Edges() []Edge {
	n := len(r.vertices)
	edges := make([]Edge, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, Edge{A: r.vertices[i-1], B: r.vertices[i]})
	}
	return append(edges, Edge{A: r.vertices[n-1], B: r.vertices[0]})
}

// setLink replaces the link and returns the previously linked region id.
func (r *Region) setLink(l Link) int {
	prev := r.previousTarget()
	r.link = l
	r.linked = true
	return prev
}

// clearLink removes the link and returns what it was.
func (r *Region) clearLink() (Link, bool) {
	l, ok := r.link, r.linked
	r.link = Link{Target: NoRegion}
	r.linked = false
	return l, ok
}

func (r *Region) previousTarget() int {
	if !r.linked {
		return NoRegion
	}
	return r.link.Target
}

// RegionSet is the arena of all regions. Boss regions occupy ids
// [0, BossCount()) and area regions follow; an id below BossCount() is the
// only test for the boss variant.
type RegionSet struct {
	regions   []*Region
	bossCount int
}

// ErrTooManyRegions is returned when the region count cannot be encoded in the
// hit-test raster.
var ErrTooManyRegions = errors.New("areatracker: too many regions for the hit-test raster")

// NewRegionSet assigns ids, bosses first, each list in the given order.
func NewRegionSet(bosses, areas []*Region) (*RegionSet, error) {
	total := len(bosses) + len(areas)
	if total >= maxRegions {
		return nil, ErrTooManyRegions
	}
	s := &RegionSet{
		regions:   make([]*Region, 0, total),
		bossCount: len(bosses),
	}
	for _, r := range bosses {
		if r.Variant != VariantBoss {
			return nil, fmt.Errorf("areatracker: region %q is not a boss region", r.Name)
		}
		r.ID = len(s.regions)
		s.regions = append(s.regions, r)
	}
	for _, r := range areas {
		if r.Variant != VariantArea {
			return nil, fmt.Errorf("areatracker: region %q is not an area region", r.Name)
		}
		r.ID = len(s.regions)
		s.regions = append(s.regions, r)
	}
	return s, nil
}

// Len returns the total number of regions.
func (s *RegionSet) Len() int {
	return len(s.regions)
}

// BossCount returns the number of boss regions.
func (s *RegionSet) BossCount() int {
	return s.bossCount
}

// Valid reports whether id names a region.
func (s *RegionSet) Valid(id int) bool {
	return id >= 0 && id < len(s.regions)
}

// IsBoss reports whether id names a boss region.
func (s *RegionSet) IsBoss(id int) bool {
	return id >= 0 && id < s.bossCount
}

// Region returns the region with the given id, or nil.
func (s *RegionSet) Region(id int) *Region {
	if !s.Valid(id) {
		return nil
	}
	return s.regions[id]
}

// All returns every region in id order. The returned slice MUST NOT be mutated.
func (s *RegionSet) All() []*Region {
	return s.regions
}

// BossNamed returns the id of the last boss region with the given name, or
// NoRegion.
func (s *RegionSet) BossNamed(name string) int {
	id := NoRegion
	for i := 0; i < s.bossCount; i++ {
		if sameName(s.regions[i].Name, name) {
			id = i
		}
	}
	return id
}

// SetLink points id at target and returns the previously linked region id.
func (s *RegionSet) SetLink(id, target int, label string, colors Colors) int {
	r := s.Region(id)
	if r == nil {
		return NoRegion
	}
	return r.setLink(Link{Target: target, Label: label, Colors: colors})
}

// ClearLink removes the link of id and returns what it was.
func (s *RegionSet) ClearLink(id int) (Link, bool) {
	r := s.Region(id)
	if r == nil {
		return Link{Target: NoRegion}, false
	}
	return r.clearLink()
}
