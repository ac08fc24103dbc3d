package game

import "github.com/vovakirdan/tui-ladders/internal/engine"

// DefaultColumns is the row width of the classic 5x6 board.
const DefaultColumns = 6

// Layout places board positions on a zig-zag grid. Row 0 holds positions
// 1..cols left to right; each following row continues from the end of the
// previous one, so odd rows run right to left.
type Layout struct {
	Cols  int
	Rows  int
	Cells [][]engine.Position // 0 marks a cell past the end of the board
}

// NewLayout builds the grid for a board of the given size.
func NewLayout(size engine.Position, cols int) Layout {
	if cols < 1 {
		cols = DefaultColumns
	}
	n := int(size)
	rows := (n + cols - 1) / cols

	cells := make([][]engine.Position, rows)
	for r := range rows {
		row := make([]engine.Position, cols)
		for c := range cols {
			pos := r*cols + c + 1
			if pos > n {
				continue
			}
			col := c
			if r%2 == 1 {
				col = cols - 1 - c
			}
			row[col] = engine.Position(pos)
		}
		cells[r] = row
	}

	return Layout{Cols: cols, Rows: rows, Cells: cells}
}

// Locate returns the row and column holding pos, or ok=false.
func (l Layout) Locate(pos engine.Position) (row, col int, ok bool) {
	if pos < 1 || l.Cols == 0 {
		return 0, 0, false
	}
	idx := int(pos) - 1
	row = idx / l.Cols
	if row >= l.Rows {
		return 0, 0, false
	}
	col = idx % l.Cols
	if row%2 == 1 {
		col = l.Cols - 1 - col
	}
	return row, col, l.Cells[row][col] == pos
}
