package core

// Color is a small palette index. The platform layer maps it to
// terminal styles; the game layer only ever names colors from this set.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
)

// String returns the palette name.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorOrange:
		return "orange"
	default:
		return "default"
	}
}

// ParseColor maps a palette name (as used in theme files) to a Color.
// Unknown names map to ColorDefault and ok is false.
func ParseColor(name string) (Color, bool) {
	switch name {
	case "black":
		return ColorBlack, true
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "blue":
		return ColorBlue, true
	case "magenta":
		return ColorMagenta, true
	case "cyan":
		return ColorCyan, true
	case "white":
		return ColorWhite, true
	case "gray", "grey":
		return ColorGray, true
	case "orange":
		return ColorOrange, true
	case "default", "":
		return ColorDefault, true
	}
	return ColorDefault, false
}
