package gfx

import "math"

// Color is a 32-bit packed ARGB color: 0xAARRGGBB, 8 bits per channel
// with straight (non-premultiplied) alpha. The channel order within the
// packed value is the same regardless of storage endianness; PixelFormat
// defines how the value maps to bytes in memory.
type Color uint32

// Basic colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
	Yellow      Color = 0xFFFFFF00
	Cyan        Color = 0xFF00FFFF
	Magenta     Color = 0xFFFF00FF
	Orange      Color = 0xFFFF8000
	Purple      Color = 0xFF800080
	Gray        Color = 0xFF808080
	DarkGray    Color = 0xFF404040
	LightGray   Color = 0xFFC0C0C0
)

// RGB creates an opaque color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return ARGB(255, r, g, b)
}

// ARGB creates a color from alpha and 8-bit channel values.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA creates a color from 8-bit channel values and alpha.
func RGBA(r, g, b, a uint8) Color {
	return ARGB(a, r, g, b)
}

// GrayColor creates an opaque gray with all color channels set to level.
func GrayColor(level uint8) Color {
	return RGB(level, level, level)
}

// FromHex creates an opaque color from the low 24 bits of a 0xRRGGBB
// value; any high bits are discarded and alpha defaults to 255.
func FromHex(hex uint32) Color {
	return Color(0xFF000000 | hex&0x00FFFFFF)
}

// FromRaw reinterprets a raw packed 0xAARRGGBB value as a Color,
// keeping all 32 bits including alpha.
func FromRaw(raw uint32) Color {
	return Color(raw)
}

// Raw returns the packed 0xAARRGGBB value.
func (c Color) Raw() uint32 {
	return uint32(c)
}

// A returns the alpha channel.
func (c Color) A() uint8 {
	return uint8(c >> 24)
}

// R returns the red channel.
func (c Color) R() uint8 {
	return uint8(c >> 16)
}

// G returns the green channel.
func (c Color) G() uint8 {
	return uint8(c >> 8)
}

// B returns the blue channel.
func (c Color) B() uint8 {
	return uint8(c)
}

// IsTransparent reports whether alpha is zero.
func (c Color) IsTransparent() bool {
	return c.A() == 0
}

// IsOpaque reports whether alpha is 255.
func (c Color) IsOpaque() bool {
	return c.A() == 255
}

// WithAlpha returns a new color with only the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// WithRed returns a new color with only the red channel replaced.
func (c Color) WithRed(r uint8) Color {
	return Color(uint32(c)&0xFF00FFFF | uint32(r)<<16)
}

// WithGreen returns a new color with only the green channel replaced.
func (c Color) WithGreen(g uint8) Color {
	return Color(uint32(c)&0xFFFF00FF | uint32(g)<<8)
}

// WithBlue returns a new color with only the blue channel replaced.
func (c Color) WithBlue(b uint8) Color {
	return Color(uint32(c)&0xFFFFFF00 | uint32(b))
}

// MultiplyAlpha scales the alpha channel by factor, clamped to [0,255].
func (c Color) MultiplyAlpha(factor float32) Color {
	a := float64(c.A()) * float64(factor)
	return c.WithAlpha(uint8(clampF(a, 0, 255)))
}

// Invert inverts the color channels (255 - c); alpha is preserved.
func (c Color) Invert() Color {
	return ARGB(c.A(), 255-c.R(), 255-c.G(), 255-c.B())
}

// Luminance returns the perceived brightness in [0,255] using the
// Rec. 601 luma weights 0.299/0.587/0.114.
func (c Color) Luminance() uint8 {
	l := 0.299*float64(c.R()) + 0.587*float64(c.G()) + 0.114*float64(c.B())
	return uint8(l)
}

// ToGrayscale replaces the color channels with the luminance; alpha is
// preserved.
func (c Color) ToGrayscale() Color {
	l := c.Luminance()
	return ARGB(c.A(), l, l, l)
}

// Lerp interpolates each channel independently and rounds to the
// nearest channel value. t is not clamped: values outside [0,1]
// extrapolate, with each resulting channel saturated to [0,255].
// Use LerpClamped when t must stay within the endpoints.
func (c Color) Lerp(other Color, t float32) Color {
	return ARGB(
		lerpByte(c.A(), other.A(), t),
		lerpByte(c.R(), other.R(), t),
		lerpByte(c.G(), other.G(), t),
		lerpByte(c.B(), other.B(), t),
	)
}

// LerpClamped is Lerp with t clamped to [0,1].
func (c Color) LerpClamped(other Color, t float32) Color {
	return c.Lerp(other, clampF32(t, 0, 1))
}

// ToFloat converts to the float representation. The conversion is
// exact; converting back with ColorF.ToColor recovers c bit-for-bit.
func (c Color) ToFloat() ColorF {
	return ColorF{
		R: float32(c.R()) / 255,
		G: float32(c.G()) / 255,
		B: float32(c.B()) / 255,
		A: float32(c.A()) / 255,
	}
}

// ColorF is a color with float32 channels in [0,1] and straight alpha,
// used for blending and gamma math.
//
// Layout: r, g, b, a (float32); 16 bytes, no padding.
type ColorF struct {
	R, G, B, A float32
}

// ColorFBlack, ColorFWhite and ColorFTransparent are the float
// counterparts of the basic packed constants.
var (
	ColorFBlack       = ColorF{A: 1}
	ColorFWhite       = ColorF{R: 1, G: 1, B: 1, A: 1}
	ColorFTransparent = ColorF{}
)

// RGBF creates an opaque float color.
func RGBF(r, g, b float32) ColorF {
	return ColorF{R: r, G: g, B: b, A: 1}
}

// IsTransparent reports whether alpha is zero or below.
func (c ColorF) IsTransparent() bool {
	return c.A <= 0
}

// IsOpaque reports whether alpha is one or above.
func (c ColorF) IsOpaque() bool {
	return c.A >= 1
}

// Saturate clamps every channel to [0,1].
func (c ColorF) Saturate() ColorF {
	return ColorF{
		R: clampF32(c.R, 0, 1),
		G: clampF32(c.G, 0, 1),
		B: clampF32(c.B, 0, 1),
		A: clampF32(c.A, 0, 1),
	}
}

// Lerp interpolates each channel independently. t is not clamped;
// values outside [0,1] extrapolate.
func (c ColorF) Lerp(other ColorF, t float32) ColorF {
	return ColorF{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Premultiply scales the color channels by alpha.
func (c ColorF) Premultiply() ColorF {
	return ColorF{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply divides the color channels by alpha. A fully
// transparent color maps to ColorFTransparent.
func (c ColorF) Unpremultiply() ColorF {
	if c.A <= 0 {
		return ColorFTransparent
	}
	invA := 1 / c.A
	return ColorF{R: c.R * invA, G: c.G * invA, B: c.B * invA, A: c.A}
}

// ToColor packs to 8-bit channels, saturating and rounding to the
// nearest quantized value.
func (c ColorF) ToColor() Color {
	s := c.Saturate()
	return ARGB(
		uint8(math.Round(float64(s.A)*255)),
		uint8(math.Round(float64(s.R)*255)),
		uint8(math.Round(float64(s.G)*255)),
		uint8(math.Round(float64(s.B)*255)),
	)
}

// lerpByte interpolates a single channel with nearest rounding,
// saturating extrapolated values to the channel range.
func lerpByte(a, b uint8, t float32) uint8 {
	v := float64(a) + (float64(b)-float64(a))*float64(t)
	return uint8(clampF(math.Round(v), 0, 255))
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
