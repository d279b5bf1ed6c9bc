// Package ecs provides ECS adapters for easel's canvas change events.
//
// The primary adapter is [NewDonburiStore], which forwards committed board
// changes (create, move, delete, selection, mode) into a [Donburi] world as
// typed events. Subscribe to [CanvasEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	editor.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
