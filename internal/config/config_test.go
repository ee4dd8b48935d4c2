package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultWalkerConfigValid(t *testing.T) {
	cfg := DefaultWalkerConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	if cfg.Map.Width != 23 || cfg.Map.Height != 23 {
		t.Errorf("expected 23x23 default map, got %dx%d", cfg.Map.Width, cfg.Map.Height)
	}
	if cfg.Render.Bands != 20 {
		t.Errorf("expected 20 shading bands, got %d", cfg.Render.Bands)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg WalkerConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}

	want := DefaultWalkerConfig()
	if cfg.Map != want.Map {
		t.Errorf("map mismatch: %+v vs %+v", cfg.Map, want.Map)
	}
	if cfg.Render != want.Render {
		t.Errorf("render mismatch: %+v vs %+v", cfg.Render, want.Render)
	}
	if math.Abs(cfg.Player.MoveStep-want.Player.MoveStep) > 1e-9 {
		t.Errorf("move_step mismatch: %v vs %v", cfg.Player.MoveStep, want.Player.MoveStep)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded YAML should validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	base := DefaultWalkerConfig()

	tests := []struct {
		name   string
		mutate func(*WalkerConfig)
	}{
		{"map too small", func(c *WalkerConfig) { c.Map.Width = 3 }},
		{"even width", func(c *WalkerConfig) { c.Map.Width = 24 }},
		{"even height", func(c *WalkerConfig) { c.Map.Height = 10 }},
		{"zero max_depth", func(c *WalkerConfig) { c.Render.MaxDepth = 0 }},
		{"zero step", func(c *WalkerConfig) { c.Render.Step = 0 }},
		{"step beyond depth", func(c *WalkerConfig) { c.Render.Step = 30 }},
		{"too few bands", func(c *WalkerConfig) { c.Render.Bands = 1 }},
		{"zero move_step", func(c *WalkerConfig) { c.Player.MoveStep = 0 }},
		{"negative turn_step", func(c *WalkerConfig) { c.Player.TurnStep = -0.1 }},
		{"inverted fov bounds", func(c *WalkerConfig) { c.Player.FOVMin = 3.0 }},
		{"fov below min", func(c *WalkerConfig) { c.Player.FOV = 0.01 }},
		{"fov above max", func(c *WalkerConfig) { c.Player.FOV = 3.0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoadWalkerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walker.yaml")
	body := []byte("map:\n  width: 31\n  height: 17\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadWalker(path)
	if err != nil {
		t.Fatalf("LoadWalker failed: %v", err)
	}
	if cfg.Map.Width != 31 || cfg.Map.Height != 17 {
		t.Errorf("expected 31x17 from file, got %dx%d", cfg.Map.Width, cfg.Map.Height)
	}
}

func TestLoadWalkerMissingCustomPath(t *testing.T) {
	_, err := LoadWalker(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("missing explicit config file should be an error")
	}
}

func TestLoadWalkerBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walker.yaml")
	if err := os.WriteFile(path, []byte("map: [not a map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadWalker(path); err == nil {
		t.Error("malformed YAML should be an error")
	}
}
