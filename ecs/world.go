package ecs

import "github.com/milk9111/cosmosraiders/ecs/components"

// World owns entities, components, and system order.
type World struct {
	entities  entityStore
	scheduler Scheduler
	events    EventQueue
	last      []Event
	round     components.Round

	transforms *SparseSet[*components.Transform]
	sprites    *SparseSet[*components.Sprite]
	aliens     *SparseSet[*components.Alien]
	lasers     *SparseSet[*components.Laser]
	ships      *SparseSet[*components.Ship]
	explosions *SparseSet[*components.Explosion]
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components. It returns false
// for entities that are not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	w.transforms.Remove(e.ID)
	w.sprites.Remove(e.ID)
	w.aliens.Remove(e.ID)
	w.lasers.Remove(e.ID)
	w.ships.Remove(e.ID)
	w.explosions.Remove(e.ID)
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entity returns the live handle for a component-set id.
func (w *World) Entity(id int) (Entity, bool) {
	if w == nil {
		return Entity{}, false
	}
	return w.entities.current(id)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.live
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs all systems once, in order. Events pushed during the tick are
// available from LastEvents until the next Update.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.round.Ticks++
	w.scheduler.Update(w, dt)
	w.last = w.events.Drain()
}

// Events returns the queue systems push to during a tick.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// LastEvents returns the events of the most recent Update.
func (w *World) LastEvents() []Event {
	if w == nil {
		return nil
	}
	return w.last
}

// Round returns the round bookkeeping.
func (w *World) Round() *components.Round {
	if w == nil {
		return nil
	}
	return &w.round
}

// Scheduler returns the system order.
func (w *World) Scheduler() *Scheduler {
	if w == nil {
		return nil
	}
	return &w.scheduler
}
