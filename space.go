package gfx

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorSpace identifies the color space a value is expressed in.
type ColorSpace uint8

const (
	// SpaceSRGB is the standard gamma-corrected sRGB space.
	SpaceSRGB ColorSpace = iota
	// SpaceLinearRGB is linear-light RGB without gamma.
	SpaceLinearRGB
	// SpaceDisplayP3 is the wide-gamut Display P3 space.
	SpaceDisplayP3
	// SpaceAdobeRGB is the Adobe RGB (1998) space.
	SpaceAdobeRGB
	// SpaceRec709 is the HDTV space.
	SpaceRec709
	// SpaceRec2020 is the UHDTV/HDR space.
	SpaceRec2020
)

// String returns the color space name.
func (s ColorSpace) String() string {
	switch s {
	case SpaceSRGB:
		return "sRGB"
	case SpaceLinearRGB:
		return "Linear RGB"
	case SpaceDisplayP3:
		return "Display P3"
	case SpaceAdobeRGB:
		return "Adobe RGB"
	case SpaceRec709:
		return "Rec. 709"
	case SpaceRec2020:
		return "Rec. 2020"
	default:
		return "Unknown"
	}
}

// IsGammaCorrected reports whether values in the space are
// gamma-encoded.
func (s ColorSpace) IsGammaCorrected() bool {
	return s != SpaceLinearRGB
}

// IsWideGamut reports whether the space exceeds the sRGB gamut.
func (s ColorSpace) IsWideGamut() bool {
	switch s {
	case SpaceDisplayP3, SpaceAdobeRGB, SpaceRec2020:
		return true
	}
	return false
}

// Gamma returns the nominal display gamma of the space.
func (s ColorSpace) Gamma() float32 {
	switch s {
	case SpaceLinearRGB:
		return 1.0
	case SpaceRec709, SpaceRec2020:
		return 2.4
	default:
		return 2.2
	}
}

// SRGBToLinear converts a gamma-encoded sRGB component in [0,1] to
// linear light (the sRGB EOTF).
func SRGBToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return float32(math.Pow(float64(v+0.055)/1.055, 2.4))
}

// LinearToSRGB converts a linear-light component in [0,1] to
// gamma-encoded sRGB (the sRGB OETF).
func LinearToSRGB(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*float32(math.Pow(float64(v), 1.0/2.4)) - 0.055
}

// ToLinear converts the color channels from sRGB to linear light.
// Alpha is never gamma-encoded and passes through unchanged.
func (c ColorF) ToLinear() ColorF {
	return ColorF{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
		A: c.A,
	}
}

// ToSRGB converts the color channels from linear light to sRGB.
// Alpha passes through unchanged.
func (c ColorF) ToSRGB() ColorF {
	return ColorF{
		R: LinearToSRGB(c.R),
		G: LinearToSRGB(c.G),
		B: LinearToSRGB(c.B),
		A: c.A,
	}
}

// HSL creates an opaque color from hue (degrees, [0,360)), saturation
// and lightness (both [0,1]).
func HSL(h, s, l float32) Color {
	cc := colorful.Hsl(float64(h), float64(s), float64(l))
	return colorfulToColor(cc, 255)
}

// HSL returns hue (degrees), saturation and lightness of the color
// channels; alpha is ignored.
func (c Color) HSL() (h, s, l float32) {
	hd, sd, ld := c.colorful().Hsl()
	return float32(hd), float32(sd), float32(ld)
}

// HSV creates an opaque color from hue (degrees, [0,360)), saturation
// and value (both [0,1]).
func HSV(h, s, v float32) Color {
	cc := colorful.Hsv(float64(h), float64(s), float64(v))
	return colorfulToColor(cc, 255)
}

// DistanceLab returns the perceptual distance between two colors in
// CIE-L*a*b* space. Alpha is ignored.
func (c Color) DistanceLab(other Color) float32 {
	return float32(c.colorful().DistanceLab(other.colorful()))
}

// MixLab interpolates between two colors through L*a*b* space, which
// avoids the muddy midpoints of naive per-channel interpolation. Alpha
// interpolates linearly. t is clamped to [0,1] by the underlying
// conversion.
func (c Color) MixLab(other Color, t float32) Color {
	mixed := c.colorful().BlendLab(other.colorful(), float64(t)).Clamped()
	return colorfulToColor(mixed, lerpByte(c.A(), other.A(), t))
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

func colorfulToColor(cc colorful.Color, a uint8) Color {
	r, g, b := cc.RGB255()
	return ARGB(a, r, g, b)
}
