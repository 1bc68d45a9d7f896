package config

import (
	_ "embed"
)

//go:embed defaults/board.yaml
var defaultBoardYAML []byte

// DefaultBoardConfig returns the hardcoded board configuration. It matches
// the embedded defaults/board.yaml.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Engine: EngineSection{
			MarginX:          2,
			MarginY:          1,
			MinWidth:         12,
			MinHeight:        5,
			GridUnit:         2,
			InitialFraction:  0.25,
			ResizeDebounceMS: 150,
		},
		Terminal: TerminalSection{
			InsetX: 1,
			InsetY: 1,
			Footer: 1,
		},
		Grid: GridNormal,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBoardYAML
}
