package areatracker

import (
	"sync"
	"time"
)

// lazyLayer is a cached value rebuilt on demand. Its flag moves
// Valid -> Redraw on invalidation, Redraw -> Invalid when a rebuild starts,
// and Invalid -> Valid only when the rebuild finishes without a new
// invalidation arriving in between.
type lazyLayer struct {
	state   LayerState
	rebuild func()
}

func (l *lazyLayer) markRedraw() {
	l.state = StateRedraw
}

// begin demotes a pending Redraw: the rebuild about to run starts from the
// data as it is now, so only invalidations after this point make it stale.
func (l *lazyLayer) begin() {
	if l.state == StateRedraw {
		l.state = StateInvalid
	}
}

// finish settles the flag after a rebuild pass.
func (l *lazyLayer) finish() {
	if l.state == StateRedraw {
		l.state = StateInvalid
		return
	}
	l.state = StateValid
}

// PresentStats reports what a Present call rebuilt.
type PresentStats struct {
	Passes  int
	Rebuilt [layerCount]int
	Elapsed [layerCount]time.Duration
}

// Rebuilds returns the total number of layer rebuilds.
func (s PresentStats) Rebuilds() int {
	n := 0
	for _, c := range s.Rebuilt {
		n += c
	}
	return n
}

// LayerCache owns the validity flags of the hit-test, map, and highlight
// rasters. Rebuild functions run without the lock held, so a rebuild may
// itself invalidate a layer; the affected layer is simply rebuilt again.
type LayerCache struct {
	mu     sync.Mutex
	layers [layerCount]lazyLayer
}

// NewLayerCache creates a cache whose layers all start out needing a rebuild.
// The rebuild functions are called in layer order: hit-test, map, highlight.
func NewLayerCache(hitTest, mapLayer, highlight func()) *LayerCache {
	c := &LayerCache{}
	c.layers[LayerHitTest].rebuild = hitTest
	c.layers[LayerMap].rebuild = mapLayer
	c.layers[LayerHighlight].rebuild = highlight
	for i := range c.layers {
		c.layers[i].state = StateRedraw
	}
	return c
}

// Invalidate marks l for redraw. Invalidating the hit-test layer also
// invalidates the map, and every invalidation also invalidates the
// highlight, which depends on whichever raster changed underneath it.
func (c *LayerCache) Invalidate(l Layer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.layers[LayerHighlight].markRedraw()
	if l == LayerMap || l == LayerHitTest {
		c.layers[LayerMap].markRedraw()
	}
	if l == LayerHitTest {
		c.layers[LayerHitTest].markRedraw()
	}
}

// State returns the current flag of l.
func (c *LayerCache) State(l Layer) LayerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layers[l].state
}

// Valid reports whether l is currently valid.
func (c *LayerCache) Valid(l Layer) bool {
	return c.State(l) == StateValid
}

// WithValid runs fn under the cache lock if l is valid and reports whether
// it ran. Reads of a layer's raster go through here so they never observe a
// rebuild in progress.
func (c *LayerCache) WithValid(l Layer, fn func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.layers[l].state != StateValid {
		return false
	}
	fn()
	return true
}

// Present rebuilds every layer that is not valid and repeats until a full
// pass completes with no invalidation arriving during it. A rebuild whose
// result went stale while it ran is thrown away by running it again.
func (c *LayerCache) Present() PresentStats {
	var stats PresentStats

	c.mu.Lock()
	for i := range c.layers {
		c.layers[i].begin()
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	for !allValid(snap) {
		stats.Passes++
		for i := range c.layers {
			if snap[i] == StateValid {
				continue
			}
			t0 := time.Now()
			if fn := c.layers[i].rebuild; fn != nil {
				fn()
			}
			stats.Elapsed[i] += time.Since(t0)
			stats.Rebuilt[i]++
		}

		c.mu.Lock()
		for i := range c.layers {
			c.layers[i].finish()
		}
		snap = c.snapshotLocked()
		c.mu.Unlock()
	}
	return stats
}

func (c *LayerCache) snapshotLocked() [layerCount]LayerState {
	var snap [layerCount]LayerState
	for i := range c.layers {
		snap[i] = c.layers[i].state
	}
	return snap
}

func allValid(states [layerCount]LayerState) bool {
	for _, s := range states {
		if s != StateValid {
			return false
		}
	}
	return true
}
