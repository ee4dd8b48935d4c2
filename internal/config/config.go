// Package config provides YAML-based configuration loading for the
// raymaze platform.
package config

import "fmt"

// WalkerConfig contains all tunable parameters for the maze walker.
type WalkerConfig struct {
	Map    MapConfig    `yaml:"map"`
	Render RenderConfig `yaml:"render"`
	Player PlayerConfig `yaml:"player"`
}

// MapConfig defines the generated maze dimensions.
type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RenderConfig defines ray-marching and shading parameters.
type RenderConfig struct {
	MaxDepth float64 `yaml:"max_depth"` // ray saturation distance in grid units
	Step     float64 `yaml:"step"`      // march increment in grid units
	Bands    int     `yaml:"bands"`     // shading levels per palette
}

// PlayerConfig defines movement and field-of-view parameters.
// Angles are in radians.
type PlayerConfig struct {
	MoveStep float64 `yaml:"move_step"` // translation per move action
	TurnStep float64 `yaml:"turn_step"` // rotation per turn action
	FOV      float64 `yaml:"fov"`       // initial field of view
	FOVMin   float64 `yaml:"fov_min"`   // narrowest allowed field of view
	FOVMax   float64 `yaml:"fov_max"`   // widest allowed field of view
}

// Validate checks the configuration for values that would break generation
// or rendering. Returns the first problem found.
func (c WalkerConfig) Validate() error {
	if c.Map.Width < 5 || c.Map.Height < 5 {
		return fmt.Errorf("config: map %dx%d is below the 5x5 minimum", c.Map.Width, c.Map.Height)
	}
	if c.Map.Width%2 == 0 || c.Map.Height%2 == 0 {
		return fmt.Errorf("config: map %dx%d must have odd dimensions", c.Map.Width, c.Map.Height)
	}
	if c.Render.MaxDepth <= 0 {
		return fmt.Errorf("config: max_depth %v must be positive", c.Render.MaxDepth)
	}
	if c.Render.Step <= 0 || c.Render.Step >= c.Render.MaxDepth {
		return fmt.Errorf("config: step %v must be in (0, max_depth)", c.Render.Step)
	}
	if c.Render.Bands < 2 {
		return fmt.Errorf("config: bands %d must be at least 2", c.Render.Bands)
	}
	if c.Player.MoveStep <= 0 {
		return fmt.Errorf("config: move_step %v must be positive", c.Player.MoveStep)
	}
	if c.Player.TurnStep <= 0 {
		return fmt.Errorf("config: turn_step %v must be positive", c.Player.TurnStep)
	}
	if c.Player.FOVMin <= 0 || c.Player.FOVMax <= c.Player.FOVMin {
		return fmt.Errorf("config: fov bounds [%v, %v] must satisfy 0 < min < max", c.Player.FOVMin, c.Player.FOVMax)
	}
	if c.Player.FOV < c.Player.FOVMin || c.Player.FOV > c.Player.FOVMax {
		return fmt.Errorf("config: fov %v outside bounds [%v, %v]", c.Player.FOV, c.Player.FOVMin, c.Player.FOVMax)
	}
	return nil
}
