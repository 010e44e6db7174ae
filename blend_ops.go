package gfx

import "math"

// blendFunc is the signature for blend operations. All channel values
// are premultiplied alpha in [0,255].
type blendFunc func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// Porter-Duff operators over premultiplied channels.

func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

func blendSourceIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

func blendSourceOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

func blendSourceAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

func blendDestOver(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), dr),
		addClamp(mulDiv255(sg, invDa), dg),
		addClamp(mulDiv255(sb, invDa), db),
		addClamp(mulDiv255(sa, invDa), da)
}

func blendDestIn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

func blendDestOut(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

func blendDestAtop(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, sa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, sa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, sa)),
		sa
}

func blendXor(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addClamp(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

// Additive modes.

func blendAdd(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

func blendSubtract(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return subClamp(dr, sr), subClamp(dg, sg), subClamp(db, sb),
		addClamp(sa, mulDiv255(da, invSa))
}

// separableBlend applies a per-channel blend function following the
// standard compositing formula
//
//	Result = (1-Sa)*D + (1-Da)*S + Sa*Da*B(Sc, Dc)
//
// where B operates on unmultiplied source and destination channels.
func separableBlend(sr, sg, sb, sa, dr, dg, db, da uint8, blendChan func(s, d uint8) uint8) (uint8, uint8, uint8, uint8) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	// Unmultiply both operands for the per-channel function.
	sur := uint8(uint16(sr) * 255 / uint16(sa))
	sug := uint8(uint16(sg) * 255 / uint16(sa))
	sub := uint8(uint16(sb) * 255 / uint16(sa))
	dur := uint8(uint16(dr) * 255 / uint16(da))
	dug := uint8(uint16(dg) * 255 / uint16(da))
	dub := uint8(uint16(db) * 255 / uint16(da))

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	mix := func(s, d, blended uint8) uint8 {
		v := addClamp(mulDiv255(d, invSa), mulDiv255(s, invDa))
		return addClamp(v, mulDiv255(saDa, blended))
	}
	return mix(sr, dr, blendChan(sur, dur)),
		mix(sg, dg, blendChan(sug, dug)),
		mix(sb, db, blendChan(sub, dub)),
		addClamp(sa, mulDiv255(da, invSa))
}

func blendMultiply(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

func blendScreen(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		return 255 - mulDiv255(255-s, 255-d)
	})
}

func blendOverlay(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		return hardLightChan(d, s)
	})
}

func blendDarken(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		return min(s, d)
	})
}

func blendLighten(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		return max(s, d)
	})
}

func blendColorDodge(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		if s == 255 {
			return 255
		}
		v := uint16(d) * 255 / uint16(255-s)
		if v > 255 {
			return 255
		}
		return uint8(v)
	})
}

func blendColorBurn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		if s == 0 {
			return 0
		}
		v := uint16(255-d) * 255 / uint16(s)
		if v > 255 {
			return 0
		}
		return 255 - uint8(v)
	})
}

func blendHardLight(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, hardLightChan)
}

// hardLightChan multiplies for dark sources and screens for light ones.
func hardLightChan(s, d uint8) uint8 {
	if s <= 128 {
		return mulDiv255(uint8(clampAddU16(2*uint16(s))), d)
	}
	return 255 - mulDiv255(2*(255-s), 255-d)
}

func blendSoftLight(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		sf := float64(s) / 255
		df := float64(d) / 255

		var result float64
		if sf <= 0.5 {
			result = df - (1-2*sf)*df*(1-df)
		} else {
			var dx float64
			if df <= 0.25 {
				dx = ((16*df-12)*df + 4) * df
			} else {
				dx = math.Sqrt(df)
			}
			result = df + (2*sf-1)*(dx-df)
		}
		return uint8(clampF(math.Round(result*255), 0, 255))
	})
}

func blendDifference(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		if s > d {
			return s - d
		}
		return d - s
	})
}

func blendExclusion(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d uint8) uint8 {
		sum := uint16(s) + uint16(d)
		p := 2 * uint16(mulDiv255(s, d))
		// The fast division can overshoot by one per product; guard
		// the subtraction against wrapping.
		if p > sum {
			return 0
		}
		return uint8(clampAddU16(sum - p))
	})
}

// Byte math helpers. The div255 family avoids integer division in the
// hot per-pixel path.

// div255 divides x by 255 using the fast shift approximation
// (x+255)>>8. The maximum error is +1, imperceptible in blending.
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// div255Exact divides x by 255 exactly without division, using
// Alvy Ray Smith's formula. Used where bit-exact results matter
// (premultiplication round-trips).
func div255Exact(x uint16) uint16 {
	t := x + 1
	return (t + t>>8) >> 8
}

// mulDiv255 multiplies two channel values and renormalizes with the
// fast approximation.
func mulDiv255(a, b uint8) uint8 {
	return uint8(div255(uint16(a) * uint16(b)))
}

// mulDiv255Exact multiplies two channel values and renormalizes
// exactly.
func mulDiv255Exact(a, b uint8) uint8 {
	return uint8(div255Exact(uint16(a) * uint16(b)))
}

// addClamp adds two channel values, saturating at 255.
func addClamp(a, b uint8) uint8 {
	return uint8(clampAddU16(uint16(a) + uint16(b)))
}

// subClamp subtracts b from a, saturating at 0.
func subClamp(a, b uint8) uint8 {
	if b >= a {
		return 0
	}
	return a - b
}

func clampAddU16(v uint16) uint16 {
	if v > 255 {
		return 255
	}
	return v
}
