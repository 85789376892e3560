package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/cosmosraiders/swarm"
	"gopkg.in/yaml.v3"
)

// RaidersFile is the tunables prefab the game loads at startup.
const RaidersFile = "raiders.yaml"

var ErrInvalidConfig = errors.New("prefabs: invalid config")

type SwarmSpec struct {
	Velocity float64 `yaml:"velocity"`
	Boundary float64 `yaml:"boundary"`
	StepY    float64 `yaml:"step_y"`
}

type SpatialSpec struct {
	RefreshEvery int `yaml:"refresh_every"`
}

type LaserSpec struct {
	Velocity     float64 `yaml:"velocity"`
	DespawnY     float64 `yaml:"despawn_y"`
	SpawnOffsetY float64 `yaml:"spawn_offset_y"`
	Sprite       int     `yaml:"sprite"`
}

type ShipSpec struct {
	Acceleration float64 `yaml:"acceleration"`
	MaxVelocity  float64 `yaml:"max_velocity"`
	Damping      float64 `yaml:"damping"`
	StartY       float64 `yaml:"start_y"`
	Sprite       int     `yaml:"sprite"`
}

type ExplosionSpec struct {
	Sprite int     `yaml:"sprite"`
	TTLMs  float64 `yaml:"ttl_ms"`
}

type TierSpec struct {
	Name   string `yaml:"name"`
	Points int    `yaml:"points"`
	Sprite int    `yaml:"sprite"`
}

type FormationSpec struct {
	Script   string  `yaml:"script"`
	Cols     int     `yaml:"cols"`
	Rows     int     `yaml:"rows"`
	SpacingX float64 `yaml:"spacing_x"`
	SpacingY float64 `yaml:"spacing_y"`
	OriginX  float64 `yaml:"origin_x"`
	OriginY  float64 `yaml:"origin_y"`
}

type RaidersSpec struct {
	Name      string        `yaml:"name"`
	Swarm     SwarmSpec     `yaml:"swarm"`
	Spatial   SpatialSpec   `yaml:"spatial"`
	Laser     LaserSpec     `yaml:"laser"`
	Ship      ShipSpec      `yaml:"ship"`
	Explosion ExplosionSpec `yaml:"explosion"`
	Tiers     []TierSpec    `yaml:"tiers"`
	Formation FormationSpec `yaml:"formation"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadRaidersSpec loads raiders.yaml, applies environment overrides and
// validates the result.
func LoadRaidersSpec() (*RaidersSpec, error) {
	spec, err := LoadSpec[RaidersSpec](RaidersFile)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(&spec); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// DecodeRaidersSpec parses and validates a tunables document without
// touching the environment.
func DecodeRaidersSpec(data []byte) (*RaidersSpec, error) {
	var spec RaidersSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", RaidersFile, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// MaxRefreshEvery keeps the spatial index at most one tick behind.
const MaxRefreshEvery = 2

func (s *RaidersSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidConfig)
	}
	switch {
	case s.Swarm.Velocity <= 0:
		return fmt.Errorf("%w: swarm.velocity must be positive, got %v", ErrInvalidConfig, s.Swarm.Velocity)
	case s.Swarm.Boundary <= 0:
		return fmt.Errorf("%w: swarm.boundary must be positive, got %v", ErrInvalidConfig, s.Swarm.Boundary)
	case s.Swarm.StepY <= 0:
		return fmt.Errorf("%w: swarm.step_y must be positive, got %v", ErrInvalidConfig, s.Swarm.StepY)
	case s.Spatial.RefreshEvery < 0:
		return fmt.Errorf("%w: spatial.refresh_every must not be negative, got %d", ErrInvalidConfig, s.Spatial.RefreshEvery)
	case s.Spatial.RefreshEvery > MaxRefreshEvery:
		return fmt.Errorf("%w: spatial.refresh_every must be at most %d, got %d", ErrInvalidConfig, MaxRefreshEvery, s.Spatial.RefreshEvery)
	case s.Ship.Damping < 0 || s.Ship.Damping > 1:
		return fmt.Errorf("%w: ship.damping must be in [0, 1], got %v", ErrInvalidConfig, s.Ship.Damping)
	case len(s.Tiers) == 0:
		return fmt.Errorf("%w: at least one tier is required", ErrInvalidConfig)
	case s.Formation.Cols < 0 || s.Formation.Rows < 0:
		return fmt.Errorf("%w: formation size must not be negative", ErrInvalidConfig)
	}
	return nil
}

// SwarmConfig converts the swarm section for swarm.Advance.
func (s *RaidersSpec) SwarmConfig() swarm.Config {
	return swarm.Config{
		Velocity: s.Swarm.Velocity,
		Boundary: s.Swarm.Boundary,
		StepY:    s.Swarm.StepY,
	}
}

// SwarmTiers converts the tier list, weakest first.
func (s *RaidersSpec) SwarmTiers() []swarm.Tier {
	out := make([]swarm.Tier, 0, len(s.Tiers))
	for _, t := range s.Tiers {
		out = append(out, swarm.Tier{Name: t.Name, PointValue: t.Points, SpriteIndex: t.Sprite})
	}
	return out
}
