package ecs

import (
	"github.com/phanxgames/tapmap"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TapEventType is the Donburi event type for tapmap tap notifications.
// Events are queued; call TapEventType.ProcessEvents from a system to
// deliver them.
var TapEventType = events.NewEventType[tapmap.TapEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a TapSink backed by a Donburi world.
func NewDonburiSink(world donburi.World) tapmap.TapSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTap(event tapmap.TapEvent) {
	TapEventType.Publish(s.world, event)
}
