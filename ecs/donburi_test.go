package ecs

import (
	"image"
	"testing"

	"github.com/phanxgames/areatracker"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitLink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []areatracker.LinkEvent
	LinkEventType.Subscribe(world, func(w donburi.World, e areatracker.LinkEvent) {
		received = append(received, e)
	})

	sink.EmitLink(areatracker.LinkEvent{Type: areatracker.LinkCreated, Source: 1, Target: 2, Label: "Woods"})
	sink.EmitLink(areatracker.LinkEvent{Type: areatracker.LinkRemoved, Source: 2, Target: areatracker.NoRegion})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	LinkEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != areatracker.LinkCreated || e.Source != 1 || e.Target != 2 || e.Label != "Woods" {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != areatracker.LinkRemoved || e.Target != areatracker.NoRegion {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	LinkEventType.Subscribe(world, func(w donburi.World, e areatracker.LinkEvent) { count1++ })
	LinkEventType.Subscribe(world, func(w donburi.World, e areatracker.LinkEvent) { count2++ })

	sink.EmitLink(areatracker.LinkEvent{Type: areatracker.BossLinkRotated, Label: "P1"})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_SessionLinks(t *testing.T) {
	cfg := areatracker.MapConfig{Width: 400, Height: 400, BorderSize: 1}
	a1, err := areatracker.NewRegion(areatracker.VariantArea, "Forest", "West",
		[]image.Point{{10, 10}, {190, 10}, {190, 190}, {10, 190}}, cfg.Width, cfg.Height)
	if err != nil {
		t.Fatal(err)
	}
	a2, err := areatracker.NewRegion(areatracker.VariantArea, "Lake", "East",
		[]image.Point{{210, 10}, {390, 10}, {390, 190}, {210, 190}}, cfg.Width, cfg.Height)
	if err != nil {
		t.Fatal(err)
	}
	regions, err := areatracker.NewRegionSet(nil, []*areatracker.Region{a1, a2})
	if err != nil {
		t.Fatal(err)
	}

	world := donburi.NewWorld()
	var created int
	LinkEventType.Subscribe(world, func(w donburi.World, e areatracker.LinkEvent) {
		if e.Type == areatracker.LinkCreated {
			created++
		}
	})

	s := areatracker.NewSession(cfg, regions, areatracker.NewPalette(cfg.SelfLinkColor))
	s.SetEventSink(NewDonburiSink(world))
	s.Present()
	s.Click(100, 100)
	s.Click(300, 100)
	LinkEventType.ProcessEvents(world)

	if created != 2 {
		t.Errorf("created events = %d, want 2 (one per side)", created)
	}
}
