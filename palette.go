package gfx

import "fmt"

// Palette is a named, fixed, ordered sequence of colors. The predefined
// palettes are process-wide constant tables; they require no
// initialization and must not be mutated.
type Palette struct {
	Name   string
	Colors []Color
}

// Len returns the number of colors in the palette.
func (p Palette) Len() int {
	return len(p.Colors)
}

// Get returns the color at index i. An out-of-range index is reported
// as an explicit error, never wrapped or clamped, since a silently
// substituted color would mask caller bugs in visible output.
func (p Palette) Get(i int) (Color, error) {
	if i < 0 || i >= len(p.Colors) {
		return Transparent, fmt.Errorf("%w: %d not in [0,%d) of %q",
			ErrPaletteIndex, i, len(p.Colors), p.Name)
	}
	return p.Colors[i], nil
}

// CatppuccinMocha is the Catppuccin Mocha dark theme.
var CatppuccinMocha = Palette{
	Name: "Catppuccin Mocha",
	Colors: []Color{
		0xFF1E1E2E, // Base
		0xFF181825, // Mantle
		0xFF11111B, // Crust
		0xFFCDD6F4, // Text
		0xFFBAC2DE, // Subtext1
		0xFFA6ADC8, // Subtext0
		0xFF9399B2, // Overlay2
		0xFF7F849C, // Overlay1
		0xFF6C7086, // Overlay0
		0xFF585B70, // Surface2
		0xFF45475A, // Surface1
		0xFF313244, // Surface0
		0xFFF5E0DC, // Rosewater
		0xFFF2CDCD, // Flamingo
		0xFFF5C2E7, // Pink
		0xFFCBA6F7, // Mauve
		0xFFFF0000, // Red
		0xFFFAB387, // Peach
		0xFFF9E2AF, // Yellow
		0xFFA6E3A1, // Green
		0xFF94E2D5, // Teal
		0xFF89DCEB, // Sky
		0xFF74C7EC, // Sapphire
		0xFF89B4FA, // Blue
		0xFFB4BEFE, // Lavender
	},
}

// CatppuccinLatte is the Catppuccin Latte light theme.
var CatppuccinLatte = Palette{
	Name: "Catppuccin Latte",
	Colors: []Color{
		0xFFEFF1F5, // Base
		0xFFE6E9EF, // Mantle
		0xFFDCE0E8, // Crust
		0xFF4C4F69, // Text
		0xFF5C5F77, // Subtext1
		0xFF6C6F85, // Subtext0
		0xFF7C7F93, // Overlay2
		0xFF8C8FA1, // Overlay1
		0xFF9CA0B0, // Overlay0
		0xFFACB0BE, // Surface2
		0xFFBCC0CC, // Surface1
		0xFFCCD0DA, // Surface0
		0xFFDC8A78, // Rosewater
		0xFFDD7878, // Flamingo
		0xFFEA76CB, // Pink
		0xFF8839EF, // Mauve
		0xFFD20F39, // Red
		0xFFFE640B, // Peach
		0xFFDF8E1D, // Yellow
		0xFF40A02B, // Green
		0xFF179299, // Teal
		0xFF04A5E5, // Sky
		0xFF209FB5, // Sapphire
		0xFF1E66F5, // Blue
		0xFF7287FD, // Lavender
	},
}

// Dracula is the Dracula theme.
var Dracula = Palette{
	Name: "Dracula",
	Colors: []Color{
		0xFF282A36, // Background
		0xFF44475A, // Current Line
		0xFFF8F8F2, // Foreground
		0xFF6272A4, // Comment
		0xFF8BE9FD, // Cyan
		0xFF50FA7B, // Green
		0xFFFFB86C, // Orange
		0xFFFF79C6, // Pink
		0xFFBD93F9, // Purple
		0xFFFF5555, // Red
		0xFFF1FA8C, // Yellow
	},
}

// Nord is the Nord theme.
var Nord = Palette{
	Name: "Nord",
	Colors: []Color{
		0xFF2E3440, // Polar Night 0
		0xFF3B4252, // Polar Night 1
		0xFF434C5E, // Polar Night 2
		0xFF4C566A, // Polar Night 3
		0xFFD8DEE9, // Snow Storm 0
		0xFFE5E9F0, // Snow Storm 1
		0xFFECEFF4, // Snow Storm 2
		0xFF8FBCBB, // Frost 0
		0xFF88C0D0, // Frost 1
		0xFF81A1C1, // Frost 2
		0xFF5E81AC, // Frost 3
		0xFFBF616A, // Aurora Red
		0xFFD08770, // Aurora Orange
		0xFFEBCB8B, // Aurora Yellow
		0xFFA3BE8C, // Aurora Green
		0xFFB48EAD, // Aurora Purple
	},
}

// RedstoneDefault is the RedstoneOS default theme.
var RedstoneDefault = Palette{
	Name: "RedstoneOS",
	Colors: []Color{
		0xFF1E1E2E, // Background
		0xFF2D2D2D, // Surface
		0xFF45475A, // Surface Light
		0xFFCDD6F4, // Text
		0xFFA6ADC8, // Text Muted
		0xFFEE6A50, // Primary (Redstone Orange)
		0xFF89B4FA, // Accent (Blue)
		0xFFA6E3A1, // Success (Green)
		0xFFF9E2AF, // Warning (Yellow)
		0xFFF38BA8, // Error (Red)
	},
}
