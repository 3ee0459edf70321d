// Package ecs bridges pencil interaction events into a [Donburi] world.
//
// Nodes with a non-zero EntityID forward every pointer event fired on them
// (mousedown, hover, click, zoomin...) as an [pencil.InteractionEvent]:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	ecs.InteractionEventType.Subscribe(world, onInteraction)
//	ecs.ClickEventType.Subscribe(world, onClick)
//
// Events can be narrowed with WithEntityFilter and WithoutEvents.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
