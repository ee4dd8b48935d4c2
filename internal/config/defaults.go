package config

import (
	_ "embed"
)

//go:embed defaults/walker.yaml
var defaultWalkerYAML []byte

// DefaultWalkerConfig returns the default walker configuration.
// Values mirror defaults/walker.yaml and serve as the last-resort
// fallback if the embedded YAML fails to parse.
func DefaultWalkerConfig() WalkerConfig {
	return WalkerConfig{
		Map: MapConfig{
			Width:  23,
			Height: 23,
		},
		Render: RenderConfig{
			MaxDepth: 25.0,
			Step:     0.1,
			Bands:    20,
		},
		Player: PlayerConfig{
			MoveStep: 0.5,
			TurnStep: 0.0982, // pi/32
			FOV:      0.7854, // pi/4
			FOVMin:   0.1963, // pi/16
			FOVMax:   2.7489, // 7*pi/8
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultWalkerYAML
}
