package areatracker

// InteractionState is the cursor-driven part of a session.
type InteractionState struct {
	// Selected is the region under the cursor.
	Selected int
	// Highlighted is the region painted as highlighted. It catches up with
	// Selected on the next highlight rebuild.
	Highlighted int
	// Clicked is the first endpoint of a pending area link. It is never a
	// boss region.
	Clicked int
}

// Pending reports whether a first click is waiting for its second endpoint.
func (s InteractionState) Pending() bool {
	return s.Clicked != NoRegion
}

func noInteraction() InteractionState {
	return InteractionState{Selected: NoRegion, Highlighted: NoRegion, Clicked: NoRegion}
}

// Invalidator is the part of the layer cache the engine needs.
type Invalidator interface {
	Invalidate(Layer)
}

// Engine is the click/select/link state machine. It is the only writer of
// region links and of the interaction state.
type Engine struct {
	regions *RegionSet
	palette *Palette
	inv     Invalidator
	sink    EventSink
	state   InteractionState
}

// NewEngine creates an idle engine over regions.
func NewEngine(regions *RegionSet, palette *Palette, inv Invalidator) *Engine {
	return &Engine{
		regions: regions,
		palette: palette,
		inv:     inv,
		state:   noInteraction(),
	}
}

// State returns a copy of the interaction state.
func (e *Engine) State() InteractionState {
	return e.state
}

// SetSink sets the receiver of link events. Nil disables events.
func (e *Engine) SetSink(sink EventSink) {
	e.sink = sink
}

// Reset forgets every region identity. Called whenever the hit-test raster is
// rebuilt.
func (e *Engine) Reset() {
	e.state = noInteraction()
}

// Select records id as the region under the cursor and invalidates the
// highlight if it changed. Ids that name no region select nothing.
func (e *Engine) Select(id int) bool {
	if !e.regions.Valid(id) {
		id = NoRegion
	}
	if id == e.state.Selected {
		return false
	}
	e.state.Selected = id
	e.inv.Invalidate(LayerHighlight)
	return true
}

// SyncHighlight moves the highlight to the selected region and returns what
// the highlight raster must repaint.
func (e *Engine) SyncHighlight() HighlightDelta {
	d := HighlightDelta{
		Previous: e.state.Highlighted,
		Current:  e.state.Selected,
		Clicked:  e.state.Clicked,
	}
	if e.state.Highlighted != e.state.Selected {
		d.Changed = true
		e.state.Highlighted = e.state.Selected
	}
	return d
}

// Click resolves a click against the current state. The second endpoint of
// an area link is the highlighted region, so callers sync the highlight
// first.
func (e *Engine) Click() {
	s := &e.state
	if s.Clicked == NoRegion {
		switch {
		case s.Selected == NoRegion:
		case e.regions.IsBoss(s.Selected):
			e.rotateBossLink(s.Selected)
		default:
			s.Clicked = s.Selected
			e.emit(LinkEvent{Type: ClickPending, Source: s.Clicked, Target: NoRegion})
		}
		return
	}

	if s.Selected == NoRegion || e.regions.IsBoss(s.Selected) || e.regions.IsBoss(s.Clicked) ||
		!e.regions.Valid(s.Highlighted) || e.regions.IsBoss(s.Highlighted) {
		e.cancel()
		return
	}
	a := s.Clicked
	s.Clicked = NoRegion
	e.createAreaLink(a, s.Highlighted)
}

func (e *Engine) cancel() {
	s := &e.state
	clicked := s.Clicked
	s.Highlighted = clicked
	s.Clicked = NoRegion
	e.inv.Invalidate(LayerHighlight)
	e.emit(LinkEvent{Type: ClickCancelled, Source: clicked, Target: NoRegion})
}

// createAreaLink links a and b to each other. Linking a region to itself
// removes its link instead.
func (e *Engine) createAreaLink(a, b int) {
	if a == b {
		prev, ok := e.regions.ClearLink(a)
		e.state.Highlighted = NoRegion
		if !ok {
			e.inv.Invalidate(LayerHighlight)
			return
		}
		e.emit(LinkEvent{Type: LinkRemoved, Source: a, Target: NoRegion})
		e.clearBackLink(prev.Target, a)
		e.inv.Invalidate(LayerMap)
		return
	}

	ra, rb := e.regions.Region(a), e.regions.Region(b)
	ca, cb := e.palette.Resolve(ra), e.palette.Resolve(rb)
	if ca.FillColor == cb.FillColor {
		ca, cb = e.palette.Default, e.palette.Default
	}

	prevA := e.regions.SetLink(a, b, rb.Name, cb)
	prevB := e.regions.SetLink(b, a, ra.Name, ca)
	if prevA != b {
		e.clearBackLink(prevA, a)
	}
	if prevB != a {
		e.clearBackLink(prevB, b)
	}

	e.state.Highlighted = a
	e.inv.Invalidate(LayerMap)
	e.emit(LinkEvent{Type: LinkCreated, Source: a, Target: b, Label: rb.Name})
	e.emit(LinkEvent{Type: LinkCreated, Source: b, Target: a, Label: ra.Name})
}

// clearBackLink removes the link of partner if it still points at id.
func (e *Engine) clearBackLink(partner, id int) {
	r := e.regions.Region(partner)
	if r == nil {
		return
	}
	if l, ok := r.Link(); !ok || l.Target != id {
		return
	}
	r.clearLink()
	e.emit(LinkEvent{Type: LinkRemoved, Source: partner, Target: NoRegion})
}

// rotateBossLink moves the label of boss id to the next Boss palette entry.
// Past the last entry the boss is left unlinked; the following click starts
// over at the first entry.
func (e *Engine) rotateBossLink(id int) {
	prev, had := e.regions.ClearLink(id)

	var next string
	if had && (prev.Target == NoRegion || e.regions.IsBoss(prev.Target)) {
		next = e.palette.nextBoss(prev.Label)
	} else {
		next = e.palette.firstBoss()
	}

	ev := LinkEvent{Type: BossLinkRotated, Source: id, Target: NoRegion, Label: next}
	if next != "" {
		colors, _ := e.palette.Boss(next)
		ev.Target = e.regions.BossNamed(next)
		e.regions.SetLink(id, ev.Target, next, colors)
	}

	e.state.Highlighted = NoRegion
	e.inv.Invalidate(LayerMap)
	e.emit(ev)
}

func (e *Engine) emit(ev LinkEvent) {
	if e.sink != nil {
		e.sink.EmitLink(ev)
	}
}
