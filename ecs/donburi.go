package ecs

import (
	"github.com/phanxgames/areatracker"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LinkEventType is the Donburi event type for areatracker link events.
var LinkEventType = events.NewEventType[areatracker.LinkEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on LinkEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) areatracker.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitLink(event areatracker.LinkEvent) {
	LinkEventType.Publish(s.world, event)
}
