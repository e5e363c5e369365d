// Package config holds runtime settings, loadable from a YAML file with
// clamped accessors for the values other subsystems consume.
package config

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

// Settings is the on-disk configuration shape.
type Settings struct {
	RenderDistance int   `yaml:"render_distance"` // in chunks
	MeshWorkers    int   `yaml:"mesh_workers"`    // 0 = NumCPU
	MeshQueueSize  int   `yaml:"mesh_queue_size"`
	WorldSeed      int64 `yaml:"world_seed"`
}

var (
	mu      sync.RWMutex
	current = defaults()
)

func defaults() Settings {
	return Settings{
		RenderDistance: 8,
		MeshWorkers:    0,
		MeshQueueSize:  200,
		WorldSeed:      1337,
	}
}

// Load reads settings from a YAML file and installs them. A missing file
// is not an error; defaults stay in place.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("could not read config file: %w", err)
	}
	s := defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("could not parse config file: %w", err)
	}
	mu.Lock()
	current = s
	mu.Unlock()
	return nil
}

// GetRenderDistance returns the render distance in chunks, clamped to a
// sane range.
func GetRenderDistance() int {
	mu.RLock()
	defer mu.RUnlock()
	d := current.RenderDistance
	if d < 2 {
		d = 2
	}
	if d > 32 {
		d = 32
	}
	return d
}

// SetRenderDistance overrides the render distance at runtime.
func SetRenderDistance(d int) {
	mu.Lock()
	current.RenderDistance = d
	mu.Unlock()
}

// GetMeshWorkers returns the mesh worker count, defaulting to NumCPU.
func GetMeshWorkers() int {
	mu.RLock()
	defer mu.RUnlock()
	if current.MeshWorkers <= 0 {
		return runtime.NumCPU()
	}
	return current.MeshWorkers
}

// GetMeshQueueSize returns the mesh job queue capacity.
func GetMeshQueueSize() int {
	mu.RLock()
	defer mu.RUnlock()
	if current.MeshQueueSize <= 0 {
		return 200
	}
	return current.MeshQueueSize
}

// GetWorldSeed returns the world generation seed.
func GetWorldSeed() int64 {
	mu.RLock()
	defer mu.RUnlock()
	return current.WorldSeed
}
