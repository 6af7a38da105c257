package areatracker

// LinkEventType identifies what happened to the link graph.
type LinkEventType uint8

const (
	LinkCreated      LinkEventType = iota // Source now links to Target
	LinkRemoved                           // Source no longer links anywhere
	BossLinkRotated                       // boss Source moved to the next label
	ClickPending                          // Source is the first endpoint of a pending link
	ClickCancelled                        // the pending click on Source was dropped
)

var linkEventNames = [...]string{
	LinkCreated:     "created",
	LinkRemoved:     "removed",
	BossLinkRotated: "boss-rotated",
	ClickPending:    "pending",
	ClickCancelled:  "cancelled",
}

// String returns the event name used in log output.
func (t LinkEventType) String() string {
	if int(t) < len(linkEventNames) {
		return linkEventNames[t]
	}
	return "unknown"
}

// LinkEvent is emitted by the interaction engine after every change to the
// link graph or the pending click.
type LinkEvent struct {
	Type   LinkEventType
	Source int
	// Target is the linked region, or NoRegion.
	Target int
	// Label is the text now drawn in Source. Empty when the link was removed.
	Label string
}

// EventSink receives link events. Implementations must not call back into
// the session that emitted the event.
type EventSink interface {
	EmitLink(LinkEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(LinkEvent)

// EmitLink calls f(e).
func (f EventSinkFunc) EmitLink(e LinkEvent) { f(e) }
