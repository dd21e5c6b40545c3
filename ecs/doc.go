// Package ecs provides ECS adapters for starwake fields.
//
// [NewDonburiSink] bridges flame respawns into a [Donburi] world as typed
// events. Subscribe to [RespawnEventType] in your ECS systems to receive
// them. [Mirror] keeps one entity per ensemble member, carrying a [Member]
// component whose transform is refreshed by [Mirror.Sync].
//
// Usage:
//
//	world := donburi.NewWorld()
//	field, _ := starwake.New(cfg, starwake.WithEventSink(ecs.NewDonburiSink(world)))
//	mirror := ecs.NewMirror(world, field)
//
//	// each frame:
//	field.Advance(now, dt)
//	mirror.Sync(field)
//	ecs.RespawnEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
