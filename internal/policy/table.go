// Package policy holds the fixed action table that drives the computer
// opponent, plus an offline value-iteration solver used to audit it.
package policy

import (
	"sort"

	"github.com/vovakirdan/tui-ladders/internal/engine"
)

// DefaultAction is returned for any position the table does not list.
const DefaultAction = engine.ActionStep

// Table maps a resting position to the action the computer plays from it.
type Table map[engine.Position]engine.Action

// Entry is a single row of a Table.
type Entry struct {
	Position engine.Position
	Action   engine.Action
}

// fixed was precomputed offline for the default board. Positions 5, 9, 11,
// 17, 20, 24 are shortcut sources and 30 is terminal, so a piece never
// rests there; they fall back to DefaultAction.
var fixed = Table{
	1: 3, 2: 3, 3: 3, 4: 3, 6: 3, 7: 3, 8: 3, 10: 3,
	12: 3, 13: 3, 14: 3, 15: 3, 16: 3, 18: 3, 19: 3,
	21: 3, 22: 3, 23: 3, 25: 3, 26: 2, 27: 2, 28: 2, 29: 1,
}

// Optimal returns the computer's action for position. It never fails.
func Optimal(position engine.Position) engine.Action {
	return fixed.Lookup(position)
}

// Fixed returns a copy of the built-in table.
func Fixed() Table {
	out := make(Table, len(fixed))
	for k, v := range fixed {
		out[k] = v
	}
	return out
}

// Lookup returns the listed action for position, or DefaultAction.
func (t Table) Lookup(position engine.Position) engine.Action {
	if a, ok := t[position]; ok {
		return a
	}
	return DefaultAction
}

// Entries returns the listed rows sorted by position.
func (t Table) Entries() []Entry {
	out := make([]Entry, 0, len(t))
	for p, a := range t {
		out = append(out, Entry{Position: p, Action: a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// Disagreement is a position where two tables pick different actions.
type Disagreement struct {
	Position engine.Position
	Left     engine.Action
	Right    engine.Action
}

// Compare lists positions in [1, terminal) where left and right differ,
// after applying the default fallback to both.
func Compare(left, right Table, terminal engine.Position) []Disagreement {
	var out []Disagreement
	for p := engine.Position(1); p < terminal; p++ {
		l, r := left.Lookup(p), right.Lookup(p)
		if l != r {
			out = append(out, Disagreement{Position: p, Left: l, Right: r})
		}
	}
	return out
}
