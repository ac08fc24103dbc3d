package game

import (
	"fmt"

	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 3 // Height of each cell (including top border)
	hudHeight  = 3
	footHeight = 4
)

// Status describes what the front end is waiting for. It only changes the
// turn line of the HUD.
type Status int

const (
	StatusWaiting  Status = iota // waiting for the player or finished
	StatusThinking               // computer move is scheduled
)

// BoardRect returns the screen area the grid occupies on a w-wide screen.
func (s *Session) BoardRect(w int) core.Rect {
	boardW := s.layout.Cols*cellWidth + 1
	boardH := s.layout.Rows*cellHeight + 1
	return core.NewRect((w-boardW)/2, hudHeight, boardW, boardH)
}

// Render draws the board, both pieces and the HUD into dst.
func (s *Session) Render(dst *core.Screen, status Status) {
	dst.Clear()

	board := s.BoardRect(dst.Width())
	if !core.NewRect(board.X, 0, board.W, board.Bottom()+footHeight).Fits(dst.Width(), dst.Height()) {
		renderTooSmall(dst)
		return
	}

	s.renderHUD(dst, status)
	s.renderGrid(dst, board)
	s.renderCells(dst, board)
	s.renderFooter(dst, board.Bottom())

	if s.state.GameOver {
		centerX := board.X + board.W/2
		centerY := board.Y + board.H/2
		drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Winner: %s", s.state.Winner),
			"Press R to play again")
	}
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, both positions and whose turn it is.
func (s *Session) renderHUD(dst *core.Screen, status Status) {
	dst.DrawTextCentered(0, "SNAKES & LADDERS - You vs Computer")

	st := s.state
	you := fmt.Sprintf("You: %d (reward %d)", st.Player, st.PlayerReward)
	cpu := fmt.Sprintf("Computer: %d (reward %d)", st.Computer, st.ComputerReward)
	gap := 4
	x := core.Clamp((dst.Width()-len(you)-gap-len(cpu))/2, 0, dst.Width())
	dst.DrawTextColor(x, 1, you, core.ColorPlayer)
	dst.DrawTextColor(x+len(you)+gap, 1, cpu, core.ColorComputer)

	var turn string
	switch {
	case st.GameOver:
		turn = fmt.Sprintf("Game Over! Winner: %s", st.Winner)
	case status == StatusThinking || st.Turn == SideComputer:
		turn = "Computer's Turn..."
	default:
		turn = "Your Turn! Choose your action: 1, 2 or 3"
	}
	dst.DrawTextCentered(2, turn)
}

// renderGrid draws the cell borders.
func (s *Session) renderGrid(dst *core.Screen, r core.Rect) {
	cols, rows := s.layout.Cols, s.layout.Rows
	for y := range rows + 1 {
		for x := range cols + 1 {
			px := r.X + x*cellWidth
			py := r.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGrid)

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGrid)
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGrid)
				}
			}
		}
	}
}

// renderCells draws each position number, its shortcut and the pieces on it.
//
//	│12 ↑29│
//	│ P  C │
func (s *Session) renderCells(dst *core.Screen, r core.Rect) {
	for row, cells := range s.layout.Cells {
		for col, pos := range cells {
			if pos == 0 {
				continue
			}
			x := r.X + col*cellWidth + 1
			y := r.Y + row*cellHeight + 1

			inner := core.NewRect(x, y, cellWidth-1, cellHeight-1)
			numColor := core.ColorDefault
			switch s.board.Shortcuts.Kind(pos) {
			case engine.ShortcutLadder:
				numColor = core.ColorLadder
				dst.DrawText(x+3, y, fmt.Sprintf("↑%2d", s.board.Shortcuts[pos]))
			case engine.ShortcutSnake:
				numColor = core.ColorSnake
				dst.DrawText(x+3, y, fmt.Sprintf("↓%2d", s.board.Shortcuts[pos]))
			}
			if pos == s.board.Terminal {
				numColor = core.ColorGoal
				dst.DrawText(x+2, y, "GOAL")
			}
			dst.DrawText(x, y, fmt.Sprintf("%2d", pos))
			dst.FillColor(inner, numColor)

			if s.state.Player == pos {
				dst.SetColor(x+1, y+1, 'P', core.ColorPlayer)
			}
			if s.state.Computer == pos {
				dst.SetColor(x+4, y+1, 'C', core.ColorComputer)
			}
		}
	}
}

// renderFooter draws the last message, the action legend and controls.
func (s *Session) renderFooter(dst *core.Screen, top int) {
	msg := s.state.Message
	msg = msg[:core.Min(len(msg), dst.Width())]
	dst.DrawTextCentered(top, msg)

	dst.DrawTextCentered(top+1, "1: exactly 1 (-3)   2: 1-3 steps (-1)   3: 4-7 steps (-2)")
	dst.DrawTextColor((dst.Width()-len(Controls()))/2, top+2, Controls(), core.ColorGray)
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})
	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func Controls() string {
	return "1/2/3: Move | R: Reset | Tab: History | Q: Quit"
}
