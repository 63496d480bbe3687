// Package ecs provides ECS adapters for tapmap's tap notifications.
//
// [NewDonburiSink] publishes every dispatched tap into a [Donburi] world.
// Subscribe to [TapEventType] in your ECS systems to receive them:
//
//	sink := ecs.NewDonburiSink(world)
//	ctrl, err := tapmap.NewModeController(tapmap.ControllerOptions{
//		// ...
//		Sink: sink,
//	})
//
//	ecs.TapEventType.Subscribe(world, func(w donburi.World, e tapmap.TapEvent) {
//		// ...
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
