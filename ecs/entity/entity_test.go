package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/cosmosraiders/common"
	"github.com/milk9111/cosmosraiders/ecs"
	"github.com/milk9111/cosmosraiders/prefabs"
	"github.com/milk9111/cosmosraiders/swarm"
)

func TestBuildersAttachComponents(t *testing.T) {
	w := ecs.NewWorld()

	alien, err := NewAlien(w, swarm.DefaultTiers[1], common.Vec2{X: 5, Y: 6})
	if err != nil {
		t.Fatalf("alien: %v", err)
	}
	if a := w.GetAlien(alien); a == nil || a.Tier.PointValue != 20 {
		t.Fatalf("alien component missing or wrong: %+v", a)
	}
	if s := w.GetSprite(alien); s == nil || s.Index != 3 {
		t.Fatalf("alien sprite wrong: %+v", s)
	}

	ship, err := NewShip(w, prefabs.ShipSpec{StartY: -130})
	if err != nil {
		t.Fatalf("ship: %v", err)
	}
	if tr := w.GetTransform(ship); tr == nil || tr.Pos != (common.Vec2{Y: -130}) {
		t.Fatalf("ship transform wrong: %+v", tr)
	}
	if w.GetShip(ship) == nil {
		t.Fatalf("ship component missing")
	}

	laser, err := NewLaser(w, common.Vec2{Y: 10}, prefabs.LaserSpec{Velocity: 480, Sprite: 2})
	if err != nil {
		t.Fatalf("laser: %v", err)
	}
	if l := w.GetLaser(laser); l == nil || l.Velocity != 480 {
		t.Fatalf("laser component wrong: %+v", l)
	}

	boom, err := NewExplosion(w, common.Vec2{}, prefabs.ExplosionSpec{Sprite: 12, TTLMs: 50})
	if err != nil {
		t.Fatalf("explosion: %v", err)
	}
	if x := w.GetExplosion(boom); x == nil || x.MsecsTillDrop != 50 {
		t.Fatalf("explosion component wrong: %+v", x)
	}
	if w.EntityCount() != 4 {
		t.Fatalf("expected 4 entities, got %d", w.EntityCount())
	}
}

func TestBuilderErrors(t *testing.T) {
	if _, err := NewShip(nil, prefabs.ShipSpec{}); !errors.Is(err, ErrNilWorld) {
		t.Fatalf("expected ErrNilWorld, got %v", err)
	}
	w := ecs.NewWorld()
	for _, idx := range []int{-1, common.SpriteN} {
		if _, err := NewLaser(w, common.Vec2{}, prefabs.LaserSpec{Sprite: idx}); !errors.Is(err, ErrSpriteIndex) {
			t.Fatalf("sprite %d: expected ErrSpriteIndex, got %v", idx, err)
		}
	}
	if w.EntityCount() != 0 {
		t.Fatalf("failed builds should not leave entities")
	}
}

func TestSpawnFormation(t *testing.T) {
	w := ecs.NewWorld()
	slots := prefabs.GridFormation(prefabs.FormationSpec{Cols: 3, Rows: 2, SpacingX: 40, SpacingY: 36}, len(swarm.DefaultTiers))

	ents, err := SpawnFormation(w, slots, swarm.DefaultTiers)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if len(ents) != 6 || w.Aliens().Len() != 6 {
		t.Fatalf("expected 6 aliens, got %d", w.Aliens().Len())
	}
	top := w.GetAlien(ents[0])
	bottom := w.GetAlien(ents[5])
	if top.Tier.Name != "mid" || bottom.Tier.Name != "low" {
		t.Fatalf("unexpected tiers top=%s bottom=%s", top.Tier.Name, bottom.Tier.Name)
	}

	_, err = SpawnFormation(w, []prefabs.Slot{{Tier: 7}}, swarm.DefaultTiers)
	if !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("expected ErrUnknownTier, got %v", err)
	}
}
