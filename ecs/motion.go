package ecs

import (
	"github.com/phanxgames/measure"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// MotionData is the per-entity state advanced by Step. A nil Limit leaves
// the speed unbounded.
type MotionData struct {
	Speed        measure.Speed
	Acceleration measure.Acceleration
	Traveled     measure.Distance
	Limit        *measure.SpeedRange
}

// Motion is the Donburi component holding an entity's MotionData.
var Motion = donburi.NewComponentType[MotionData]()

// LimitReached is published when an entity's speed is first clamped to one
// end of its Limit.
type LimitReached struct {
	Entity donburi.Entity
	Speed  measure.Speed
	AtMax  bool
}

// LimitReachedEventType is the Donburi event type for LimitReached.
// Events are queued; call ProcessEvents to deliver them.
var LimitReachedEventType = events.NewEventType[LimitReached]()

var motionQuery = donburi.NewQuery(filter.Contains(Motion))

// Step advances every entity with a Motion component by dt: speed gains
// acceleration·dt and is clamped to Limit, then the entity travels
// speed·dt.
func Step(world donburi.World, dt measure.TimeSpan) {
	motionQuery.Each(world, func(entry *donburi.Entry) {
		m := Motion.Get(entry)
		if ev, hit := advance(m, dt); hit {
			ev.Entity = entry.Entity()
			LimitReachedEventType.Publish(world, ev)
		}
	})
}

// advance integrates one entity and reports whether the speed was newly
// pinned to a limit.
func advance(m *MotionData, dt measure.TimeSpan) (LimitReached, bool) {
	prev := m.Speed
	next := prev + m.Acceleration.MulTime(dt)
	var ev LimitReached
	hit := false
	if m.Limit != nil {
		atMax := next >= m.Limit.Max()
		pinned := atMax || next <= m.Limit.Min()
		clamped := m.Limit.Clamp(next)
		// Landing exactly on a bound counts; staying there does not.
		if pinned && clamped != prev {
			ev = LimitReached{Speed: clamped, AtMax: atMax}
			hit = true
		}
		next = clamped
	}
	m.Speed = next
	m.Traveled += next.MulTime(dt)
	return ev, hit
}
