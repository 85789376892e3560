package entity

import (
	"fmt"

	"github.com/milk9111/cosmosraiders/common"
	"github.com/milk9111/cosmosraiders/ecs"
	"github.com/milk9111/cosmosraiders/ecs/components"
	"github.com/milk9111/cosmosraiders/prefabs"
	"github.com/milk9111/cosmosraiders/swarm"
)

func NewAlien(w *ecs.World, tier swarm.Tier, pos common.Vec2) (ecs.Entity, error) {
	e, err := buildSprite(w, pos, tier.SpriteIndex)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("alien %q: %w", tier.Name, err)
	}
	w.SetAlien(e, &components.Alien{Tier: tier})
	return e, nil
}

// SpawnFormation creates one alien per slot. Slot tiers index into tiers.
func SpawnFormation(w *ecs.World, slots []prefabs.Slot, tiers []swarm.Tier) ([]ecs.Entity, error) {
	if w == nil {
		return nil, ErrNilWorld
	}
	out := make([]ecs.Entity, 0, len(slots))
	for i, slot := range slots {
		if slot.Tier < 0 || slot.Tier >= len(tiers) {
			return out, fmt.Errorf("%w: slot %d tier %d", ErrUnknownTier, i, slot.Tier)
		}
		e, err := NewAlien(w, tiers[slot.Tier], slot.Pos)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}
