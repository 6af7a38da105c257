package areatracker

import (
	"image/color"
	"strings"
)

// Colors is a palette entry: the fill used for a region and the backing color
// drawn behind link labels in that fill.
type Colors struct {
	Name                string
	FillColor           color.RGBA
	TextBackgroundColor color.RGBA
}

// Palette holds the Area entries (keyed by region group) and the Boss entries
// (keyed by boss name), each in configuration order. Boss order drives link
// rotation.
type Palette struct {
	Areas  []Colors
	Bosses []Colors

	// Default is used by regions without an entry and by link pairs whose
	// fills would collide.
	Default Colors
}

// NewPalette returns an empty palette whose default styling fills with the
// self-link color over a transparent label background.
func NewPalette(selfLink color.RGBA) *Palette {
	return &Palette{Default: Colors{FillColor: selfLink}}
}

// AddArea appends an Area entry for the given group name.
func (p *Palette) AddArea(c Colors) {
	p.Areas = append(p.Areas, c)
}

// AddBoss appends a Boss entry for the given boss name.
func (p *Palette) AddBoss(c Colors) {
	p.Bosses = append(p.Bosses, c)
}

// Area returns the entry for an area group and whether one was found.
func (p *Palette) Area(group string) (Colors, bool) {
	return lookup(p.Areas, group)
}

// Boss returns the entry for a boss name and whether one was found.
func (p *Palette) Boss(name string) (Colors, bool) {
	return lookup(p.Bosses, name)
}

// Resolve returns the colors a region is drawn with, falling back to Default.
func (p *Palette) Resolve(r *Region) Colors {
	var (
		c  Colors
		ok bool
	)
	if r.Variant == VariantBoss {
		c, ok = p.Boss(r.Name)
	} else {
		c, ok = p.Area(r.Group)
	}
	if !ok {
		return p.Default
	}
	return c
}

// nextBoss returns the Boss entry name that follows name in rotation order.
// An empty result means the rotation has wrapped to "no link". A name that
// is not in the palette restarts the rotation at the first entry.
func (p *Palette) nextBoss(name string) string {
	if len(p.Bosses) == 0 {
		return ""
	}
	for i, c := range p.Bosses {
		if !sameName(c.Name, name) {
			continue
		}
		if i+1 < len(p.Bosses) {
			return p.Bosses[i+1].Name
		}
		return ""
	}
	return p.Bosses[0].Name
}

// firstBoss returns the first Boss entry name, or "" for an empty list.
func (p *Palette) firstBoss() string {
	if len(p.Bosses) == 0 {
		return ""
	}
	return p.Bosses[0].Name
}

func lookup(entries []Colors, name string) (Colors, bool) {
	for _, c := range entries {
		if sameName(c.Name, name) {
			return c, true
		}
	}
	return Colors{}, false
}

// sameName compares palette and region names. Region names carry line breaks
// where the file name had spaces, so the two are treated as equal.
func sameName(a, b string) bool {
	return a == b || strings.ReplaceAll(a, "\n", " ") == strings.ReplaceAll(b, "\n", " ")
}
