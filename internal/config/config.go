// Package config provides YAML-based configuration loading for the
// snakes and ladders board, computer pacing and display layout.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-ladders/internal/engine"
)

// LaddersConfig contains all configuration for a game.
type LaddersConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Computer ComputerConfig `yaml:"computer"`
	Display  DisplayConfig  `yaml:"display"`
}

// BoardConfig defines the track and its shortcuts.
type BoardConfig struct {
	Size      int         `yaml:"size"`
	Terminal  int         `yaml:"terminal"`
	Shortcuts map[int]int `yaml:"shortcuts"` // source -> destination
}

// ComputerConfig defines how the computer opponent is presented.
type ComputerConfig struct {
	DelayMS int `yaml:"delay_ms"` // Pause before the computer's turn
}

// DisplayConfig defines the board layout on screen.
type DisplayConfig struct {
	Columns int `yaml:"columns"`
}

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks ranges that the engine and renderer rely on.
func (c LaddersConfig) Validate() error {
	if err := c.EngineBoard().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Computer.DelayMS < 0 {
		return fmt.Errorf("%w: computer.delay_ms %d is negative", ErrInvalidConfig, c.Computer.DelayMS)
	}
	if c.Display.Columns < 1 || c.Display.Columns > c.Board.Size {
		return fmt.Errorf("%w: display.columns %d must be in [1, %d]", ErrInvalidConfig, c.Display.Columns, c.Board.Size)
	}
	return nil
}

// EngineBoard converts the board section into an engine.Board.
func (c LaddersConfig) EngineBoard() engine.Board {
	shortcuts := make(engine.ShortcutMap, len(c.Board.Shortcuts))
	for src, dst := range c.Board.Shortcuts {
		shortcuts[engine.Position(src)] = engine.Position(dst)
	}
	return engine.Board{
		Size:      engine.Position(c.Board.Size),
		Terminal:  engine.Position(c.Board.Terminal),
		Shortcuts: shortcuts,
	}
}

// ComputerDelay returns the pause before the computer's turn.
func (c LaddersConfig) ComputerDelay() time.Duration {
	return time.Duration(c.Computer.DelayMS) * time.Millisecond
}
