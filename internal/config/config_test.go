package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Engine != EngineGravity {
		t.Errorf("expected engine gravity, got %s", cfg.Engine)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("viewport should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad engine", func(c *Config) { c.Engine = "plasma" }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"scale too large", func(c *Config) { c.Scale = MaxScale + 1 }},
		{"scale zero", func(c *Config) { c.Scale = 0 }},
		{"bad collision", func(c *Config) { c.Collision = "phase" }},
		{"damping zero", func(c *Config) { c.Damping = 0 }},
		{"damping above one", func(c *Config) { c.Damping = 1.5 }},
		{"restitution negative", func(c *Config) { c.Restitution = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset(EngineGravity, "binary")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Particles) != 2 {
		t.Errorf("expected 2 particles, got %d", len(cfg.Particles))
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset(EngineGravity, "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "binary")
	if cfg != nil {
		t.Error("expected nil for nonexistent engine")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets(EngineGravity)
	if len(presets) == 0 {
		t.Error("expected presets for gravity engine")
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent engine")
	}
}

func TestPresetsValidate(t *testing.T) {
	for engine, byName := range Presets {
		for name, cfg := range byName {
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s/%s: %v", engine, name, err)
			}
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Engine = EngineRigid
	cfg.Scale = 3
	cfg.Bodies = []BodySpec{{X: 100, Y: 100, Size: 40, Mass: 5}}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Engine != EngineRigid || loaded.Scale != 3 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if len(loaded.Bodies) != 1 || loaded.Bodies[0].Size != 40 {
		t.Errorf("round trip lost bodies: %+v", loaded.Bodies)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
