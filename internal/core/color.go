package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Palette used by the invaders renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorGray
	ColorBrightGreen
	ColorBrightYellow
)

// ANSI returns the 256-color code for the color, or "" for the terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "15"
	case ColorGray:
		return "245"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	default:
		return ""
	}
}
