package areatracker

import (
	"image"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
)

// Session is one interactive exploration of a region set. It owns the
// rasters, the layer cache, and the interaction engine. All methods must be
// called from the goroutine that drives input and repaint.
type Session struct {
	cfg     MapConfig
	regions *RegionSet
	palette *Palette

	engine *Engine
	cache  *LayerCache
	render renderer

	hit      *HitTestIndex
	mapImg   *image.RGBA
	mapFresh bool
	version  uint64

	debug bool

	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
}

// NewSession creates a session over regions. Nothing is drawn until the
// first Present. Font sizes that are not positive leave that variant's
// labels undrawn.
func NewSession(cfg MapConfig, regions *RegionSet, palette *Palette) *Session {
	s := &Session{
		cfg:           cfg,
		regions:       regions,
		palette:       palette,
		hit:           NewHitTestIndex(cfg.Width, cfg.Height),
		mapImg:        image.NewRGBA(cfg.Bounds()),
		ScreenshotDir: "screenshots",
	}
	s.render = renderer{
		cfg:      cfg,
		regions:  regions,
		palette:  palette,
		areaFace: sessionFace(cfg.AreaFontSize, VariantArea),
		bossFace: sessionFace(cfg.BossFontSize, VariantBoss),
	}
	s.cache = NewLayerCache(s.rebuildHitTest, s.rebuildMap, s.rebuildHighlight)
	s.engine = NewEngine(regions, palette, s.cache)
	return s
}

func sessionFace(size int, v Variant) font.Face {
	if size <= 0 {
		return nil
	}
	face, err := LoadFace(size)
	if err != nil {
		logger.WithError(err).WithField("variant", v).Warn("labels disabled")
		return nil
	}
	return face
}

func (s *Session) rebuildHitTest() {
	s.hit.Build(s.regions, s.cfg.borderWidth())
	s.engine.Reset()
}

func (s *Session) rebuildMap() {
	s.render.drawMap(s.mapImg)
	s.mapFresh = true
}

func (s *Session) rebuildHighlight() {
	d := s.engine.SyncHighlight()
	s.render.drawHighlight(s.mapImg, d, s.mapFresh)
	s.mapFresh = false
}

// Config returns the canvas configuration.
func (s *Session) Config() MapConfig { return s.cfg }

// Regions returns the region set.
func (s *Session) Regions() *RegionSet { return s.regions }

// Palette returns the palette.
func (s *Session) Palette() *Palette { return s.palette }

// State returns the interaction state.
func (s *Session) State() InteractionState { return s.engine.State() }

// LayerState returns the validity flag of l.
func (s *Session) LayerState(l Layer) LayerState { return s.cache.State(l) }

// SetEventSink sets the receiver of link events.
func (s *Session) SetEventSink(sink EventSink) { s.engine.SetSink(sink) }

// SetDebugMode enables rebuild timing logs and state dumps.
func (s *Session) SetDebugMode(on bool) { s.debug = on }

// Invalidate marks a layer for rebuild on the next Present.
func (s *Session) Invalidate(l Layer) { s.cache.Invalidate(l) }

// RegionAt decodes the canvas-local point (x, y). It returns NoRegion while
// the hit-test raster is not valid.
func (s *Session) RegionAt(x, y int) int {
	id := NoRegion
	s.cache.WithValid(LayerHitTest, func() {
		id = s.hit.Decode(x, y)
	})
	return id
}

// Move handles a cursor move to the canvas-local point (x, y). It is a no-op
// until the hit-test raster has been built.
func (s *Session) Move(x, y int) {
	id := NoRegion
	if !s.cache.WithValid(LayerHitTest, func() { id = s.hit.Decode(x, y) }) {
		return
	}
	s.engine.Select(id)
}

// Leave handles the cursor leaving the canvas or the window losing focus.
func (s *Session) Leave() {
	if !s.cache.Valid(LayerHitTest) {
		return
	}
	s.engine.Select(NoRegion)
}

// Click handles a click at the canvas-local point (x, y). The selection is
// re-resolved at the click position and the highlight brought up to date
// before the click is acted on.
func (s *Session) Click(x, y int) {
	if !s.cache.Valid(LayerHitTest) {
		return
	}
	s.Move(x, y)
	s.Present()
	s.engine.Click()
	if s.debug {
		s.debugDumpState("click")
	}
}

// Present rebuilds whatever the last events invalidated and returns the
// composed map raster. The raster is drawn at Origin on the display.
func (s *Session) Present() *image.RGBA {
	stats := s.cache.Present()
	if stats.Rebuilds() > 0 {
		s.version++
		if s.debug {
			s.debugLog(stats)
		}
	}
	s.flushScreenshots()
	return s.mapImg
}

// Image returns the composed map raster as of the last Present.
func (s *Session) Image() *image.RGBA { return s.mapImg }

// HitTestImage returns the hit-test raster as of the last Present.
func (s *Session) HitTestImage() *image.RGBA { return s.hit.Image() }

// Origin is where the composed raster goes on the display surface.
func (s *Session) Origin() image.Point {
	return image.Pt(s.cfg.Margin, s.cfg.Margin)
}

// Version increases every time Present changes the composed raster.
func (s *Session) Version() uint64 { return s.version }

// Update consumes scripted and injected input. Call once per frame before
// Present. It reports whether an injected event was consumed, in which case
// real input for the frame should be ignored.
func (s *Session) Update() bool {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	return s.processInjectedInput()
}

func (s *Session) log() *logrus.Entry {
	return logger.WithField("regions", s.regions.Len())
}
