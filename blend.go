package gfx

// BlendMode is a color compositing operation. It is a closed
// enumeration with fixed numeric values, so kernel and compositor agree
// on the raw encoding.
//
// Blend operates on straight-alpha Color values. Modes whose formulas
// are defined over premultiplied alpha convert internally and convert
// back; callers never handle premultiplied values.
type BlendMode uint8

const (
	// BlendNormal replaces the destination with the source, no blending.
	BlendNormal BlendMode = 0

	// Porter-Duff compositing operators.

	// BlendSourceOver composites source over destination (default
	// alpha blending): out = S + D*(1-Sa).
	BlendSourceOver BlendMode = 1
	// BlendSourceIn keeps source where destination exists: S*Da.
	BlendSourceIn BlendMode = 2
	// BlendSourceOut keeps source where destination is empty: S*(1-Da).
	BlendSourceOut BlendMode = 3
	// BlendSourceAtop draws source on top of destination: S*Da + D*(1-Sa).
	BlendSourceAtop BlendMode = 4
	// BlendDestOver composites destination over source: S*(1-Da) + D.
	BlendDestOver BlendMode = 5
	// BlendDestIn keeps destination where source exists: D*Sa.
	BlendDestIn BlendMode = 6
	// BlendDestOut keeps destination where source is empty: D*(1-Sa).
	BlendDestOut BlendMode = 7
	// BlendDestAtop draws destination on top of source: S*(1-Da) + D*Sa.
	BlendDestAtop BlendMode = 8
	// BlendXor keeps source and destination where they do not overlap.
	BlendXor BlendMode = 9
	// BlendClear produces full transparency.
	BlendClear BlendMode = 10

	// Separable blend modes (W3C Compositing and Blending Level 1).

	// BlendMultiply multiplies channels: B(Cb,Cs) = Cb*Cs.
	BlendMultiply BlendMode = 20
	// BlendScreen lightens: B(Cb,Cs) = 1-(1-Cb)*(1-Cs).
	BlendScreen BlendMode = 21
	// BlendOverlay is HardLight with swapped layers.
	BlendOverlay BlendMode = 22
	// BlendDarken keeps the darker channel.
	BlendDarken BlendMode = 23
	// BlendLighten keeps the lighter channel.
	BlendLighten BlendMode = 24
	// BlendColorDodge brightens the backdrop: Cb/(1-Cs).
	BlendColorDodge BlendMode = 25
	// BlendColorBurn darkens the backdrop: 1-(1-Cb)/Cs.
	BlendColorBurn BlendMode = 26
	// BlendHardLight multiplies or screens depending on the source.
	BlendHardLight BlendMode = 27
	// BlendSoftLight is a softer version of HardLight.
	BlendSoftLight BlendMode = 28
	// BlendDifference takes the absolute channel difference.
	BlendDifference BlendMode = 29
	// BlendExclusion is Difference with lower contrast.
	BlendExclusion BlendMode = 30

	// Additive modes.

	// BlendAdd sums channels, clamped to full intensity.
	BlendAdd BlendMode = 40
	// BlendSubtract subtracts source from destination, clamped to zero.
	BlendSubtract BlendMode = 41
)

// IsPorterDuff reports whether the mode is one of the Porter-Duff
// compositing operators.
func (m BlendMode) IsPorterDuff() bool {
	return m >= BlendSourceOver && m <= BlendClear
}

// IsSeparable reports whether the mode is a separable (per-channel)
// blend mode.
func (m BlendMode) IsSeparable() bool {
	return m >= BlendMultiply && m <= BlendExclusion
}

// BlendModeFromRaw converts a raw encoded value to a BlendMode,
// reporting whether the value names a defined mode.
func BlendModeFromRaw(value uint8) (BlendMode, bool) {
	m := BlendMode(value)
	switch {
	case m == BlendNormal, m.IsPorterDuff(), m.IsSeparable(),
		m == BlendAdd, m == BlendSubtract:
		return m, true
	}
	return BlendNormal, false
}

// String returns the mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendSourceOver:
		return "SourceOver"
	case BlendSourceIn:
		return "SourceIn"
	case BlendSourceOut:
		return "SourceOut"
	case BlendSourceAtop:
		return "SourceAtop"
	case BlendDestOver:
		return "DestOver"
	case BlendDestIn:
		return "DestIn"
	case BlendDestOut:
		return "DestOut"
	case BlendDestAtop:
		return "DestAtop"
	case BlendXor:
		return "Xor"
	case BlendClear:
		return "Clear"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendOverlay:
		return "Overlay"
	case BlendDarken:
		return "Darken"
	case BlendLighten:
		return "Lighten"
	case BlendColorDodge:
		return "ColorDodge"
	case BlendColorBurn:
		return "ColorBurn"
	case BlendHardLight:
		return "HardLight"
	case BlendSoftLight:
		return "SoftLight"
	case BlendDifference:
		return "Difference"
	case BlendExclusion:
		return "Exclusion"
	case BlendAdd:
		return "Add"
	case BlendSubtract:
		return "Subtract"
	default:
		return "Unknown"
	}
}

// Blend composites src onto dst and returns the result. Both inputs
// and the result use straight alpha. Blend is total: every input pair
// produces a defined result, including the alpha extremes.
// Unknown modes fall back to SourceOver.
func (m BlendMode) Blend(src, dst Color) Color {
	switch m {
	case BlendNormal:
		return src
	case BlendClear:
		return Transparent
	}

	// A fully transparent operand passes the other side through
	// unchanged for modes where the formula reduces to it. Taking the
	// shortcut here keeps the untouched operand bit-exact instead of
	// routing it through the premultiply round-trip.
	sa, da := src.A(), dst.A()
	if sa == 0 && m.passesDstThrough() {
		return dst
	}
	if da == 0 && m.passesSrcThrough() {
		return src
	}
	if m == BlendSourceOver && sa == 255 {
		return src
	}

	sr := mulDiv255Exact(src.R(), sa)
	sg := mulDiv255Exact(src.G(), sa)
	sb := mulDiv255Exact(src.B(), sa)
	dr := mulDiv255Exact(dst.R(), da)
	dg := mulDiv255Exact(dst.G(), da)
	db := mulDiv255Exact(dst.B(), da)

	r, g, b, a := m.blendFunc()(sr, sg, sb, sa, dr, dg, db, da)
	return unpremultiply(r, g, b, a)
}

// passesDstThrough reports whether blending a fully transparent source
// yields the destination unchanged.
func (m BlendMode) passesDstThrough() bool {
	switch m {
	case BlendSourceOver, BlendSourceAtop, BlendDestOver, BlendDestOut,
		BlendXor, BlendAdd, BlendSubtract:
		return true
	}
	return m.IsSeparable()
}

// passesSrcThrough reports whether blending onto a fully transparent
// destination yields the source unchanged.
func (m BlendMode) passesSrcThrough() bool {
	switch m {
	case BlendSourceOver, BlendSourceOut, BlendDestOver, BlendDestAtop,
		BlendXor, BlendAdd:
		return true
	}
	return m.IsSeparable()
}

// blendFunc returns the premultiplied-alpha blend function for the
// mode. Unknown modes fall back to SourceOver.
func (m BlendMode) blendFunc() blendFunc {
	switch m {
	case BlendSourceOver:
		return blendSourceOver
	case BlendSourceIn:
		return blendSourceIn
	case BlendSourceOut:
		return blendSourceOut
	case BlendSourceAtop:
		return blendSourceAtop
	case BlendDestOver:
		return blendDestOver
	case BlendDestIn:
		return blendDestIn
	case BlendDestOut:
		return blendDestOut
	case BlendDestAtop:
		return blendDestAtop
	case BlendXor:
		return blendXor
	case BlendMultiply:
		return blendMultiply
	case BlendScreen:
		return blendScreen
	case BlendOverlay:
		return blendOverlay
	case BlendDarken:
		return blendDarken
	case BlendLighten:
		return blendLighten
	case BlendColorDodge:
		return blendColorDodge
	case BlendColorBurn:
		return blendColorBurn
	case BlendHardLight:
		return blendHardLight
	case BlendSoftLight:
		return blendSoftLight
	case BlendDifference:
		return blendDifference
	case BlendExclusion:
		return blendExclusion
	case BlendAdd:
		return blendAdd
	case BlendSubtract:
		return blendSubtract
	default:
		return blendSourceOver
	}
}

// unpremultiply converts premultiplied bytes back to a straight-alpha
// Color with round-to-nearest division.
func unpremultiply(r, g, b, a uint8) Color {
	if a == 0 {
		return Transparent
	}
	un := func(c uint8) uint8 {
		v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return ARGB(a, un(r), un(g), un(b))
}
