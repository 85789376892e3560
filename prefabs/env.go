package prefabs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvSwarmVelocity = "RAIDERS_SWARM_VELOCITY"
	EnvRefreshEvery  = "RAIDERS_REFRESH_EVERY"
	EnvPrefabsDir    = "RAIDERS_PREFABS_DIR"
)

// LoadEnv reads the given .env files into the process environment. Missing
// files are ignored; existing variables are never overwritten.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("prefabs: load env %s: %w", f, err)
		}
	}
	if dir := os.Getenv(EnvPrefabsDir); dir != "" {
		Dir = dir
	}
	return nil
}

// ApplyEnv overrides spec fields from RAIDERS_* variables.
func ApplyEnv(spec *RaidersSpec) error {
	if spec == nil {
		return nil
	}
	if v := os.Getenv(EnvSwarmVelocity); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSwarmVelocity, v, err)
		}
		spec.Swarm.Velocity = f
	}
	if v := os.Getenv(EnvRefreshEvery); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvRefreshEvery, v, err)
		}
		spec.Spatial.RefreshEvery = n
	}
	return nil
}
