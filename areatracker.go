package areatracker

import (
	"image"
	"image/color"
)

// NoRegion is the region id reported when nothing is under the cursor, no
// region is highlighted, or a link has no target region.
const NoRegion = -1

// maxRegions is the number of ids the hit-test raster can encode in its three
// 8-bit color channels.
const maxRegions = 1 << 24

// Variant distinguishes the two kinds of region.
type Variant uint8

const (
	VariantArea Variant = iota // ordinary map area, linked in pairs
	VariantBoss                // boss region, linked by single-click rotation
)

// String returns "Area" or "Boss".
func (v Variant) String() string {
	if v == VariantBoss {
		return "Boss"
	}
	return "Area"
}

// Layer names one of the three cached rasters.
type Layer uint8

const (
	LayerHitTest   Layer = iota // id-encoded raster used for cursor lookups
	LayerMap                    // fully composed map
	LayerHighlight              // highlight delta painted over the map
	layerCount
)

// String returns the layer name used in log output.
func (l Layer) String() string {
	switch l {
	case LayerHitTest:
		return "hittest"
	case LayerMap:
		return "map"
	case LayerHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}

// LayerState is the validity flag of a cached layer.
type LayerState uint8

const (
	StateValid   LayerState = iota // raster matches the current data
	StateInvalid                   // raster must be rebuilt
	StateRedraw                    // data changed since the last rebuild started
)

// String returns the state name used in log output.
func (s LayerState) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	case StateRedraw:
		return "redraw"
	default:
		return "unknown"
	}
}

// MapConfig holds the canvas geometry and global colors supplied by the map
// configuration.
type MapConfig struct {
	Width, Height int
	// Margin is the offset of the canvas from the window origin.
	Margin int
	// BorderSize is the pen width used for region borders, in pixels.
	BorderSize int

	BackgroundColor color.RGBA
	BorderColor     color.RGBA
	// SelfLinkColor is the fill of the default styling used by regions without
	// a palette entry and by same-colored link pairs.
	SelfLinkColor color.RGBA

	AreaFontSize int
	BossFontSize int
}

// Bounds returns the canvas rectangle with its origin at (0, 0).
func (c MapConfig) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// Contains reports whether the canvas-local point (x, y) lies on the canvas.
func (c MapConfig) Contains(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// borderWidth returns the pen width, never less than one pixel.
func (c MapConfig) borderWidth() float64 {
	if c.BorderSize < 1 {
		return 1
	}
	return float64(c.BorderSize)
}

// px converts an integer pixel coordinate to the center of that pixel.
func px(v int) float64 {
	return float64(v) + 0.5
}
