package ecs

import "github.com/milk9111/cosmosraiders/ecs/components"

func lazySet[T any](s **SparseSet[T]) *SparseSet[T] {
	if *s == nil {
		*s = &SparseSet[T]{}
	}
	return *s
}

// Transforms returns the transform storage.
func (w *World) Transforms() *SparseSet[*components.Transform] {
	if w == nil {
		return nil
	}
	return lazySet(&w.transforms)
}

// Sprites returns the sprite storage.
func (w *World) Sprites() *SparseSet[*components.Sprite] {
	if w == nil {
		return nil
	}
	return lazySet(&w.sprites)
}

// Aliens returns the alien storage.
func (w *World) Aliens() *SparseSet[*components.Alien] {
	if w == nil {
		return nil
	}
	return lazySet(&w.aliens)
}

// Lasers returns the laser storage.
func (w *World) Lasers() *SparseSet[*components.Laser] {
	if w == nil {
		return nil
	}
	return lazySet(&w.lasers)
}

// Ships returns the ship storage.
func (w *World) Ships() *SparseSet[*components.Ship] {
	if w == nil {
		return nil
	}
	return lazySet(&w.ships)
}

// Explosions returns the explosion storage.
func (w *World) Explosions() *SparseSet[*components.Explosion] {
	if w == nil {
		return nil
	}
	return lazySet(&w.explosions)
}

// SetTransform attaches a transform to an entity.
func (w *World) SetTransform(e Entity, t *components.Transform) {
	if w == nil || !w.IsAlive(e) || t == nil {
		return
	}
	w.Transforms().Set(e.ID, t)
}

// GetTransform returns the transform for an entity, or nil.
func (w *World) GetTransform(e Entity) *components.Transform {
	if w == nil || !w.IsAlive(e) {
		return nil
	}
	t, _ := w.Transforms().Get(e.ID)
	return t
}

// SetSprite attaches a sprite to an entity.
func (w *World) SetSprite(e Entity, s *components.Sprite) {
	if w == nil || !w.IsAlive(e) || s == nil {
		return
	}
	w.Sprites().Set(e.ID, s)
}

// GetSprite returns the sprite for an entity, or nil.
func (w *World) GetSprite(e Entity) *components.Sprite {
	if w == nil || !w.IsAlive(e) {
		return nil
	}
	s, _ := w.Sprites().Get(e.ID)
	return s
}

// SetAlien attaches an alien component to an entity.
func (w *World) SetAlien(e Entity, a *components.Alien) {
	if w == nil || !w.IsAlive(e) || a == nil {
		return
	}
	w.Aliens().Set(e.ID, a)
}

// GetAlien returns the alien component for an entity, or nil.
func (w *World) GetAlien(e Entity) *components.Alien {
	if w == nil || !w.IsAlive(e) {
		return nil
	}
	a, _ := w.Aliens().Get(e.ID)
	return a
}

// SetLaser attaches a laser component to an entity.
func (w *World) SetLaser(e Entity, l *components.Laser) {
	if w == nil || !w.IsAlive(e) || l == nil {
		return
	}
	w.Lasers().Set(e.ID, l)
}

// GetLaser returns the laser component for an entity, or nil.
func (w *World) GetLaser(e Entity) *components.Laser {
	if w == nil || !w.IsAlive(e) {
		return nil
	}
	l, _ := w.Lasers().Get(e.ID)
	return l
}

// SetShip attaches a ship component to an entity.
func (w *World) SetShip(e Entity, s *components.Ship) {
	if w == nil || !w.IsAlive(e) || s == nil {
		return
	}
	w.Ships().Set(e.ID, s)
}

// GetShip returns the ship component for an entity, or nil.
func (w *World) GetShip(e Entity) *components.Ship {
	if w == nil || !w.IsAlive(e) {
		return nil
	}
	s, _ := w.Ships().Get(e.ID)
	return s
}

// SetExplosion attaches an explosion component to an entity.
func (w *World) SetExplosion(e Entity, x *components.Explosion) {
	if w == nil || !w.IsAlive(e) || x == nil {
		return
	}
	w.Explosions().Set(e.ID, x)
}

// GetExplosion returns the explosion component for an entity, or nil.
func (w *World) GetExplosion(e Entity) *components.Explosion {
	if w == nil || !w.IsAlive(e) {
		return nil
	}
	x, _ := w.Explosions().Get(e.ID)
	return x
}
