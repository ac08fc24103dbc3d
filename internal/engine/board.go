package engine

import (
	"errors"
	"fmt"
	"sort"
)

// Position is a cell index on the track. 1 is the start cell.
type Position int

// Default board dimensions.
const (
	DefaultSize     Position = 30
	DefaultTerminal Position = 30
)

// ShortcutKind classifies a shortcut by the direction it sends a piece.
type ShortcutKind int

const (
	ShortcutNone ShortcutKind = iota
	ShortcutLadder
	ShortcutSnake
)

// ShortcutMap relocates a piece that comes to rest on a key to its value.
type ShortcutMap map[Position]Position

// Kind reports whether pos is the foot of a ladder, the head of a snake, or neither.
func (m ShortcutMap) Kind(pos Position) ShortcutKind {
	dst, ok := m[pos]
	switch {
	case !ok || dst == pos:
		return ShortcutNone
	case dst > pos:
		return ShortcutLadder
	default:
		return ShortcutSnake
	}
}

// Sources returns the shortcut origins in ascending order.
func (m ShortcutMap) Sources() []Position {
	keys := make([]Position, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Clone returns an independent copy of the map.
func (m ShortcutMap) Clone() ShortcutMap {
	out := make(ShortcutMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Board is the fixed context a turn is played on.
type Board struct {
	Size      Position
	Terminal  Position
	Shortcuts ShortcutMap
}

// DefaultBoard returns the classic 30-cell board with three ladders and three snakes.
func DefaultBoard() Board {
	return Board{
		Size:     DefaultSize,
		Terminal: DefaultTerminal,
		Shortcuts: ShortcutMap{
			5:  7,
			9:  27,
			11: 29,
			17: 4,
			20: 6,
			24: 16,
		},
	}
}

// ErrInvalidBoard wraps every Validate failure.
var ErrInvalidBoard = errors.New("engine: invalid board")

// Validate checks a board loaded from configuration. PlayTurn never calls it;
// callers that build boards from untrusted input should.
func (b Board) Validate() error {
	if b.Size < 2 {
		return fmt.Errorf("%w: size %d must be at least 2", ErrInvalidBoard, b.Size)
	}
	if b.Terminal < 2 || b.Terminal > b.Size {
		return fmt.Errorf("%w: terminal %d must be in [2, %d]", ErrInvalidBoard, b.Terminal, b.Size)
	}
	for _, src := range b.Shortcuts.Sources() {
		dst := b.Shortcuts[src]
		if src <= 1 || src >= b.Terminal || src > b.Size {
			return fmt.Errorf("%w: shortcut source %d out of range", ErrInvalidBoard, src)
		}
		if dst < 1 || dst > b.Size {
			return fmt.Errorf("%w: shortcut %d -> %d lands off the board", ErrInvalidBoard, src, dst)
		}
		if dst == src {
			return fmt.Errorf("%w: shortcut %d points to itself", ErrInvalidBoard, src)
		}
	}
	return nil
}
