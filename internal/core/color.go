package core

// Color is a foreground color tag for a screen cell. Games pick from the
// fixed palette below; the tui render layer maps each tag to a lipgloss
// style, so game packages never import a styling library.
type Color uint8

// The palette covers the portal's needs: the eight ANSI colors and their
// bright variants, plus Orange and Gray so the 2048 tile ramp has enough
// distinct steps between its low and high tiles.
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
	ColorOrange
	ColorGray
)
