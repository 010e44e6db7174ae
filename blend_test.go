package gfx

import "testing"

func TestBlendModeFromRaw(t *testing.T) {
	tests := []struct {
		name  string
		value uint8
		want  BlendMode
		ok    bool
	}{
		{"normal", 0, BlendNormal, true},
		{"source over", 1, BlendSourceOver, true},
		{"clear", 10, BlendClear, true},
		{"multiply", 20, BlendMultiply, true},
		{"exclusion", 30, BlendExclusion, true},
		{"add", 40, BlendAdd, true},
		{"subtract", 41, BlendSubtract, true},
		{"gap below multiply", 15, BlendNormal, false},
		{"gap above exclusion", 35, BlendNormal, false},
		{"out of range", 200, BlendNormal, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BlendModeFromRaw(tt.value)
			if got != tt.want || ok != tt.ok {
				t.Errorf("BlendModeFromRaw(%d) = %v, %v; want %v, %v", tt.value, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestBlendModeClassification(t *testing.T) {
	if !BlendSourceOver.IsPorterDuff() || BlendMultiply.IsPorterDuff() {
		t.Errorf("IsPorterDuff misclassifies")
	}
	if !BlendScreen.IsSeparable() || BlendXor.IsSeparable() || BlendAdd.IsSeparable() {
		t.Errorf("IsSeparable misclassifies")
	}
}

func TestBlendNormalReplaces(t *testing.T) {
	src := ARGB(0x80, 0x10, 0x20, 0x30)
	dst := White
	if got := BlendNormal.Blend(src, dst); got != src {
		t.Errorf("Normal = %08X, want source %08X", uint32(got), uint32(src))
	}
}

func TestBlendClear(t *testing.T) {
	if got := BlendClear.Blend(White, Black); got != Transparent {
		t.Errorf("Clear = %08X, want transparent", uint32(got))
	}
}

func TestSourceOverAlphaExtremes(t *testing.T) {
	dst := ARGB(0xC0, 0x12, 0x34, 0x56)
	// A fully transparent source leaves the destination untouched,
	// bit for bit.
	src := ARGB(0x00, 0xFF, 0xFF, 0xFF)
	if got := BlendSourceOver.Blend(src, dst); got != dst {
		t.Errorf("transparent src: got %08X, want dst %08X", uint32(got), uint32(dst))
	}
	// A fully opaque source replaces the destination, bit for bit.
	src = ARGB(0xFF, 0x10, 0x20, 0x30)
	if got := BlendSourceOver.Blend(src, dst); got != src {
		t.Errorf("opaque src: got %08X, want src %08X", uint32(got), uint32(src))
	}
}

func TestSourceOverHalfAlpha(t *testing.T) {
	// 50% white over opaque black gives mid gray and stays opaque.
	src := ARGB(0x80, 0xFF, 0xFF, 0xFF)
	got := BlendSourceOver.Blend(src, Black)
	if got.A() != 0xFF {
		t.Errorf("alpha = %#02x, want opaque", got.A())
	}
	for _, ch := range []uint8{got.R(), got.G(), got.B()} {
		if ch < 0x7E || ch > 0x82 {
			t.Errorf("channel = %#02x, want about 0x80", ch)
		}
	}
}

func TestSourceOverBothTransparentQuarters(t *testing.T) {
	// Two half-transparent layers give three-quarter coverage.
	src := ARGB(0x80, 0xFF, 0x00, 0x00)
	dst := ARGB(0x80, 0x00, 0x00, 0xFF)
	got := BlendSourceOver.Blend(src, dst)
	if got.A() < 0xBE || got.A() > 0xC2 {
		t.Errorf("alpha = %#02x, want about 0xC0", got.A())
	}
	// Source contributes more than destination.
	if got.R() <= got.B() {
		t.Errorf("red %#02x should dominate blue %#02x", got.R(), got.B())
	}
}

func TestPorterDuffAgainstDefinition(t *testing.T) {
	// Check each operator in premultiplied float space against its
	// coverage-fraction definition.
	src := ARGB(0x80, 0xFF, 0x00, 0x00)
	dst := ARGB(0xC0, 0x00, 0x00, 0xFF)
	sa := float64(src.A()) / 255
	da := float64(dst.A()) / 255
	tests := []struct {
		name   string
		mode   BlendMode
		fs, fd float64
	}{
		{"source over", BlendSourceOver, 1, 1 - sa},
		{"source in", BlendSourceIn, da, 0},
		{"source out", BlendSourceOut, 1 - da, 0},
		{"source atop", BlendSourceAtop, da, 1 - sa},
		{"dest over", BlendDestOver, 1 - da, 1},
		{"dest in", BlendDestIn, 0, sa},
		{"dest out", BlendDestOut, 0, 1 - sa},
		{"dest atop", BlendDestAtop, 1 - da, sa},
		{"xor", BlendXor, 1 - da, 1 - sa},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mode.Blend(src, dst)
			wantA := sa*tt.fs + da*tt.fd
			if diff := float64(got.A())/255 - wantA; diff < -0.02 || diff > 0.02 {
				t.Errorf("alpha = %v, want about %v", float64(got.A())/255, wantA)
			}
			// Premultiplied red comes only from the source.
			wantR := sa * tt.fs
			gotR := float64(got.R()) / 255 * float64(got.A()) / 255
			if diff := gotR - wantR; diff < -0.03 || diff > 0.03 {
				t.Errorf("premultiplied red = %v, want about %v", gotR, wantR)
			}
		})
	}
}

func TestSeparableModesOpaque(t *testing.T) {
	// With opaque layers the separable formulas reduce to their pure
	// channel functions.
	tests := []struct {
		name     string
		mode     BlendMode
		src, dst Color
		want     Color
	}{
		{"multiply halves", BlendMultiply, GrayColor(128), GrayColor(128), GrayColor(64)},
		{"multiply by white is identity", BlendMultiply, White, RGB(12, 34, 56), RGB(12, 34, 56)},
		{"multiply by black is black", BlendMultiply, Black, RGB(12, 34, 56), Black},
		{"screen with black is identity", BlendScreen, Black, RGB(12, 34, 56), RGB(12, 34, 56)},
		{"screen with white is white", BlendScreen, White, RGB(12, 34, 56), White},
		{"darken", BlendDarken, RGB(10, 200, 100), RGB(100, 20, 100), RGB(10, 20, 100)},
		{"lighten", BlendLighten, RGB(10, 200, 100), RGB(100, 20, 100), RGB(100, 200, 100)},
		{"difference", BlendDifference, RGB(200, 50, 0), RGB(50, 200, 0), RGB(150, 150, 0)},
		{"exclusion of black is identity", BlendExclusion, Black, RGB(12, 34, 56), RGB(12, 34, 56)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mode.Blend(tt.src, tt.dst)
			if !colorNear(got, tt.want, 2) {
				t.Errorf("got %08X, want about %08X", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestAdditiveModes(t *testing.T) {
	tests := []struct {
		name     string
		mode     BlendMode
		src, dst Color
		want     Color
	}{
		{"add", BlendAdd, RGB(100, 100, 100), RGB(100, 100, 100), RGB(200, 200, 200)},
		{"add clamps", BlendAdd, RGB(200, 200, 200), RGB(100, 100, 100), White},
		{"subtract", BlendSubtract, RGB(50, 50, 50), RGB(200, 200, 200), RGB(150, 150, 150)},
		{"subtract clamps at zero", BlendSubtract, RGB(200, 0, 0), RGB(100, 10, 20), RGB(0, 10, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mode.Blend(tt.src, tt.dst)
			if !colorNear(got, tt.want, 2) {
				t.Errorf("got %08X, want about %08X", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestByteMathHelpers(t *testing.T) {
	// The exact divide-by-255 agrees with integer division for every
	// product of two channel values.
	for _, pair := range [][2]uint8{{0, 0}, {255, 255}, {255, 1}, {128, 128}, {37, 201}, {255, 0}} {
		a, b := pair[0], pair[1]
		want := uint8(uint16(a) * uint16(b) / 255)
		if got := mulDiv255Exact(a, b); got != want && got != want+1 {
			t.Errorf("mulDiv255Exact(%d,%d) = %d, want %d", a, b, got, want)
		}
	}
	if got := mulDiv255Exact(255, 255); got != 255 {
		t.Errorf("mulDiv255Exact(255,255) = %d, want 255", got)
	}
	if got := mulDiv255Exact(255, 0); got != 0 {
		t.Errorf("mulDiv255Exact(255,0) = %d, want 0", got)
	}
	if got := addClamp(200, 100); got != 255 {
		t.Errorf("addClamp(200,100) = %d, want 255", got)
	}
	if got := subClamp(100, 200); got != 0 {
		t.Errorf("subClamp(100,200) = %d, want 0", got)
	}
}
