package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

// Board roles.
const (
	ColorLadder   = ColorGreen
	ColorSnake    = ColorRed
	ColorPlayer   = ColorBrightYellow
	ColorComputer = ColorBrightCyan
	ColorGoal     = ColorBrightWhite
	ColorGrid     = ColorGray
)
