package core

// Color represents a display color for a screen cell.
// The platform layer maps these to ANSI styles.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
	// ColorExploded marks the losing mine: white on a red background
	// rather than a plain foreground color.
	ColorExploded
)
