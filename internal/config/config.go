package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultScale    = 2
	MaxScale        = 10
	DefaultDrawSize = 8
	MaxDrawSize     = 500
	TargetFPS       = 120.0
)

// GravConst folds the gravitational constant together with a display
// multiplier so on-screen masses produce visible acceleration.
const (
	GravConst            = 6.6743e-11 * 1e-12
	PhysicsResistance    = 0.999
	CollisionRestitution = 0.8
	SmallValue           = 1e-6

	// DistanceScale maps buffer pixels to metres. Spawn mass comes from
	// the draw radius: 4/3*pi*r^3*ParticleDensity.
	DistanceScale   = 1.1970456e15
	ParticleDensity = 5514.0 * DistanceScale
)

const (
	MouseDrawbackMultiplier = 10.0
	CameraSpeed             = 5.0 / TargetFPS
	CameraResistance        = 115.0 / TargetFPS
)

const (
	EngineGravity = "gravity"
	EngineRigid   = "rigid"
)

const (
	CollisionBounce = "bounce"
	CollisionMerge  = "merge"
)

// ParticleSpec seeds one particle. Mass is derived from Radius via
// ParticleDensity.
type ParticleSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Radius float64 `yaml:"radius"`
}

type BodySpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	VX   float64 `yaml:"vx"`
	VY   float64 `yaml:"vy"`
	Size float64 `yaml:"size"`
	Mass float64 `yaml:"mass"`
}

type Config struct {
	Engine      string  `yaml:"engine"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Scale       int     `yaml:"scale"`
	DrawSize    int     `yaml:"draw_size"`
	Collision   string  `yaml:"collision"`
	Gravity     float64 `yaml:"gravity"`
	Damping     float64 `yaml:"damping"`
	Restitution float64 `yaml:"restitution"`
	Workers     int     `yaml:"workers"`
	Seed        int64   `yaml:"seed"`

	Particles []ParticleSpec `yaml:"particles"`
	Bodies    []BodySpec     `yaml:"bodies"`
}

func DefaultConfig() *Config {
	return &Config{
		Engine:      EngineGravity,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Scale:       DefaultScale,
		DrawSize:    DefaultDrawSize,
		Collision:   CollisionBounce,
		Gravity:     GravConst,
		Damping:     PhysicsResistance,
		Restitution: CollisionRestitution,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Engine != EngineGravity && c.Engine != EngineRigid {
		return fmt.Errorf("unknown engine %q", c.Engine)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Scale < 1 || c.Scale > MaxScale {
		return fmt.Errorf("scale must be in [1,%d], got %d", MaxScale, c.Scale)
	}
	if c.Engine == EngineGravity && c.Collision != CollisionBounce && c.Collision != CollisionMerge {
		return fmt.Errorf("unknown collision strategy %q", c.Collision)
	}
	if c.Damping <= 0 || c.Damping > 1 {
		return fmt.Errorf("damping must be in (0,1], got %f", c.Damping)
	}
	if c.Restitution < 0 || c.Restitution > 1 {
		return fmt.Errorf("restitution must be in [0,1], got %f", c.Restitution)
	}
	return nil
}
