package areatracker

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticClick
	syntheticLeave
)

// syntheticEvent is one queued cursor event in canvas-local coordinates.
type syntheticEvent struct {
	kind syntheticKind
	x, y int
}

// InjectMove queues a cursor move. Events are consumed one per Update.
func (s *Session) InjectMove(x, y int) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectClick queues a move to (x, y) followed by a click there. Consumes
// two frames.
func (s *Session) InjectClick(x, y int) {
	s.InjectMove(x, y)
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticClick, x: x, y: y})
}

// InjectLeave queues the cursor leaving the canvas.
func (s *Session) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticLeave})
}

// processInjectedInput pops and applies one queued event. Returns true if an
// event was consumed.
func (s *Session) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		s.Move(evt.x, evt.y)
	case syntheticClick:
		s.Click(evt.x, evt.y)
	case syntheticLeave:
		s.Leave()
	}
	return true
}
