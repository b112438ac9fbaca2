package core

// Color is a foreground colour for a screen cell.
// The platform maps it to an ANSI 256-colour code.
type Color uint8

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
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// HealthColor picks a gauge colour for a remaining-life ratio.
func HealthColor(ratio float64) Color {
	switch {
	case ratio > 0.66:
		return ColorBrightGreen
	case ratio > 0.33:
		return ColorYellow
	default:
		return ColorRed
	}
}
