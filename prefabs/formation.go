package prefabs

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/cosmosraiders/common"
)

// Slot is one formation position and the tier index of the alien placed there.
type Slot struct {
	Pos  common.Vec2
	Tier int
}

// Formation lays out the round's aliens. It runs the formation script when one
// is configured and falls back to GridFormation when the script is missing or
// fails; the returned error reports why the fallback was used.
func Formation(ctx context.Context, spec *RaidersSpec) ([]Slot, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil spec", ErrInvalidConfig)
	}
	if spec.Formation.Script == "" {
		return GridFormation(spec.Formation, len(spec.Tiers)), nil
	}
	src, err := LoadScript(spec.Formation.Script)
	if err != nil {
		return GridFormation(spec.Formation, len(spec.Tiers)), fmt.Errorf("prefabs: load script %s: %w", spec.Formation.Script, err)
	}
	slots, err := RunFormationScript(ctx, src, spec.Formation, len(spec.Tiers))
	if err != nil {
		return GridFormation(spec.Formation, len(spec.Tiers)), err
	}
	return slots, nil
}

// RunFormationScript runs a tengo formation script. The script sees the
// formation fields plus tiers, the tier count, and must define formation as an
// array of [x, y, tier_index].
func RunFormationScript(ctx context.Context, src []byte, f FormationSpec, tiers int) ([]Slot, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	vars := map[string]any{
		"cols":      f.Cols,
		"rows":      f.Rows,
		"spacing_x": f.SpacingX,
		"spacing_y": f.SpacingY,
		"origin_x":  f.OriginX,
		"origin_y":  f.OriginY,
		"tiers":     tiers,
	}
	for name, v := range vars {
		if err := script.Add(name, v); err != nil {
			return nil, fmt.Errorf("prefabs: formation script: add %s: %w", name, err)
		}
	}

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("prefabs: formation script: %w", err)
	}
	if !compiled.IsDefined("formation") {
		return nil, fmt.Errorf("prefabs: formation script: formation is not defined")
	}

	raw := compiled.Get("formation").Array()
	slots := make([]Slot, 0, len(raw))
	for i, item := range raw {
		entry, ok := item.([]any)
		if !ok || len(entry) != 3 {
			return nil, fmt.Errorf("prefabs: formation script: entry %d is not [x, y, tier]", i)
		}
		x, okX := toFloat(entry[0])
		y, okY := toFloat(entry[1])
		t, okT := toFloat(entry[2])
		if !okX || !okY || !okT {
			return nil, fmt.Errorf("prefabs: formation script: entry %d has a non-numeric field", i)
		}
		tier := int(t)
		if tier < 0 || tier >= tiers {
			return nil, fmt.Errorf("prefabs: formation script: entry %d tier %d out of range [0, %d)", i, tier, tiers)
		}
		slots = append(slots, Slot{Pos: common.Vec2{X: x, Y: y}, Tier: tier})
	}
	return slots, nil
}

// GridFormation is the built-in layout: Rows x Cols starting at the origin,
// rows going down, with the strongest tier on the top row.
func GridFormation(f FormationSpec, tiers int) []Slot {
	if f.Cols <= 0 || f.Rows <= 0 || tiers <= 0 {
		return nil
	}
	slots := make([]Slot, 0, f.Cols*f.Rows)
	for row := 0; row < f.Rows; row++ {
		tier := (f.Rows - 1 - row) * tiers / f.Rows
		for col := 0; col < f.Cols; col++ {
			slots = append(slots, Slot{
				Pos: common.Vec2{
					X: f.OriginX + float64(col)*f.SpacingX,
					Y: f.OriginY - float64(row)*f.SpacingY,
				},
				Tier: tier,
			})
		}
	}
	return slots
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
