// Package ecs integrates measure quantities with a [Donburi] world.
//
// Attach the [Motion] component to entities and call [Step] once per tick
// with the tick's [measure.TimeSpan]. Entities whose speed is clamped to
// their limit publish a [LimitReached] event; subscribe to
// [LimitReachedEventType] in your systems to react.
//
// Usage:
//
//	limit, _ := measure.NewRange(measure.FromKPH(0), measure.FromKPH(120))
//	e := world.Create(ecs.Motion)
//	ecs.Motion.SetValue(world.Entry(e), ecs.MotionData{
//		Acceleration: measure.FromMetersPerSecondSquared(3),
//		Limit:        &limit,
//	})
//
//	ecs.Step(world, measure.FromTicks(1))
//	ecs.LimitReachedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
