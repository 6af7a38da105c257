package areatracker

import (
	"image"
	"image/color"
	"testing"
)

// --- fixtures ---

var (
	forestColors = Colors{Name: "Forest", FillColor: color.RGBA{0xC0, 0x30, 0x30, 0xFF}, TextBackgroundColor: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}}
	lakeColors   = Colors{Name: "Lake", FillColor: color.RGBA{0x30, 0x30, 0xC0, 0xFF}, TextBackgroundColor: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}}
	p1Colors     = Colors{Name: "P1", FillColor: color.RGBA{0xE0, 0xE0, 0x00, 0xFF}, TextBackgroundColor: color.RGBA{0, 0, 0, 0xFF}}
	p2Colors     = Colors{Name: "P2", FillColor: color.RGBA{0x00, 0xE0, 0xE0, 0xFF}, TextBackgroundColor: color.RGBA{0, 0, 0, 0xFF}}
)

// Points well inside each scenario region.
var (
	bossPoint  = image.Pt(600, 200)
	area1Point = image.Pt(166, 166)
	area2Point = image.Pt(233, 233)
	background = image.Pt(50, 50)
)

func scenarioConfig() MapConfig {
	return MapConfig{
		Width:           800,
		Height:          600,
		Margin:          10,
		BorderSize:      3,
		BackgroundColor: color.RGBA{0x20, 0x20, 0x20, 0xFF},
		BorderColor:     color.RGBA{0, 0, 0, 0xFF},
		SelfLinkColor:   color.RGBA{0xC0, 0xC0, 0xC0, 0xFF},
	}
}

func mustRegion(t *testing.T, v Variant, group, name string, pts ...image.Point) *Region {
	t.Helper()
	r, err := NewRegion(v, group, name, pts, 800, 600)
	if err != nil {
		t.Fatalf("NewRegion(%q): %v", name, err)
	}
	return r
}

// scenarioRegions is an 800x600 map with one boss region (id 0) and two
// triangular areas (ids 1 and 2) sharing their diagonal edge.
func scenarioRegions(t *testing.T) *RegionSet {
	t.Helper()
	boss := mustRegion(t, VariantBoss, "Boss", "Keep",
		image.Pt(500, 100), image.Pt(700, 100), image.Pt(700, 300), image.Pt(500, 300))
	a1 := mustRegion(t, VariantArea, "Forest", "West",
		image.Pt(100, 100), image.Pt(300, 100), image.Pt(100, 300))
	a2 := mustRegion(t, VariantArea, "Lake", "East",
		image.Pt(300, 100), image.Pt(300, 300), image.Pt(100, 300))
	set, err := NewRegionSet([]*Region{boss}, []*Region{a1, a2})
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func scenarioPalette() *Palette {
	p := NewPalette(scenarioConfig().SelfLinkColor)
	p.AddArea(forestColors)
	p.AddArea(lakeColors)
	p.AddBoss(p1Colors)
	p.AddBoss(p2Colors)
	return p
}

func newScenarioSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(scenarioConfig(), scenarioRegions(t), scenarioPalette())
	s.Present()
	return s
}

func (s *Session) clickAt(p image.Point) { s.Click(p.X, p.Y) }

// --- MapConfig ---

func TestMapConfigContains(t *testing.T) {
	c := MapConfig{Width: 100, Height: 50}
	tests := []struct {
		name   string
		x, y   int
		expect bool
	}{
		{"origin", 0, 0, true},
		{"inside", 50, 25, true},
		{"last pixel", 99, 49, true},
		{"right edge", 100, 10, false},
		{"bottom edge", 10, 50, false},
		{"negative", -1, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestMapConfigBorderWidth(t *testing.T) {
	if w := (MapConfig{}).borderWidth(); w != 1 {
		t.Errorf("zero border width = %v, want 1", w)
	}
	if w := (MapConfig{BorderSize: 4}).borderWidth(); w != 4 {
		t.Errorf("border width = %v, want 4", w)
	}
}

func TestEnumStrings(t *testing.T) {
	if VariantBoss.String() != "Boss" || VariantArea.String() != "Area" {
		t.Error("variant names")
	}
	if LayerHitTest.String() != "hittest" || LayerMap.String() != "map" || LayerHighlight.String() != "highlight" {
		t.Error("layer names")
	}
	if StateValid.String() != "valid" || StateInvalid.String() != "invalid" || StateRedraw.String() != "redraw" {
		t.Error("state names")
	}
	if LinkCreated.String() != "created" || LinkEventType(99).String() != "unknown" {
		t.Error("event names")
	}
}
