// Package gfx is the shared graphics vocabulary of RedstoneOS.
//
// # Overview
//
// gfx defines the value types that the kernel, the compositor, and
// applications exchange: points, rectangles, affine transforms, packed
// ARGB colors, pixel formats, buffer descriptors and views, and damage
// regions. All three sides link against this package independently and
// must agree bit-for-bit on layout and semantics, so every composite
// type has a fixed, documented field order with fixed-width fields
// (int32/uint32/float32) and no hidden state.
//
// # Quick Start
//
//	import "github.com/redstoneos/gfx"
//
//	// Place a window and hit-test a click.
//	bounds := gfx.NewRect(100, 100, 640, 480)
//	if bounds.ContainsPoint(gfx.Pt(120, 150)) {
//	    // ...
//	}
//
//	// Composite a translucent color over a background.
//	out := gfx.BlendSourceOver.Blend(gfx.ARGB(128, 255, 0, 0), gfx.White)
//
//	// Address pixels in a shared framebuffer.
//	desc, err := gfx.NewBufferDescriptor(800, 600, gfx.ARGB8888)
//
// # Semantics
//
// Every operation is a pure, synchronous computation over value types.
// Nothing here allocates except buffer views (which borrow caller-owned
// memory) and the damage tracker's rect list. Degenerate geometry
// (empty rects, zero-radius circles) is valid input everywhere and
// yields empty/false results rather than errors. Genuine failures -
// undersized buffers, size overflow, out-of-range access - are returned
// as explicit errors and never clamped or wrapped silently.
//
// # Architecture
//
// The package is organized into:
//   - Geometry: Point, Size, Rect, Line, Circle, Insets and float variants
//   - Transform: Transform2D affine composition
//   - Color: Color, ColorF, BlendMode, PixelFormat, Palette
//   - Buffer: BufferDescriptor, View, ViewMut, BufferRegion
//   - Damage: DamageTracker, DamageHint
package gfx
