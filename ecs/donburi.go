// Package ecs provides ECS adapters for easel.
package ecs

import (
	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CanvasEventType is the Donburi event type for easel canvas changes.
var CanvasEventType = events.NewEventType[easel.CanvasEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Canvas events are published to CanvasEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) easel.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event easel.CanvasEvent) {
	CanvasEventType.Publish(s.world, event)
}
