// Package ecs provides ECS adapters for areatracker's link events.
//
// The primary adapter is [NewDonburiSink], which publishes every change to
// the link graph (links created and removed, boss rotations, pending and
// cancelled clicks) into a [Donburi] world as typed events. Subscribe to
// [LinkEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	session.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
