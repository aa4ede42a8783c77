package core

// Color represents a foreground color for a screen cell.
// Maps to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the runner scene.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
