package config

import (
	_ "embed"
)

//go:embed defaults/minefield.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 20x20 board with the
// default mine density.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  20,
			Height: 20,
			Mines:  0,
		},
	}
}
