package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-ladders/internal/engine"
)

//go:embed defaults/ladders.yaml
var defaultLaddersYAML []byte

// DefaultLaddersConfig returns the built-in configuration, matching the
// embedded defaults/ladders.yaml.
func DefaultLaddersConfig() LaddersConfig {
	board := engine.DefaultBoard()
	shortcuts := make(map[int]int, len(board.Shortcuts))
	for src, dst := range board.Shortcuts {
		shortcuts[int(src)] = int(dst)
	}

	return LaddersConfig{
		Board: BoardConfig{
			Size:      int(board.Size),
			Terminal:  int(board.Terminal),
			Shortcuts: shortcuts,
		},
		Computer: ComputerConfig{
			DelayMS: 1000,
		},
		Display: DisplayConfig{
			Columns: 6,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `ladders config --dump`
// style output and as a template for user files.
func DefaultYAML() []byte {
	return defaultLaddersYAML
}
