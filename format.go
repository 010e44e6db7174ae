package gfx

// PixelFormat identifies how pixel color values are laid out in buffer
// memory. It is a closed enumeration; metadata such as bytes-per-pixel
// and alpha presence is derived by exhaustive dispatch.
//
// Format names list the packed channels from most to least significant
// bit, and the packed value is stored little-endian (the DRM fourcc
// convention): ARGB8888 stores the packed 0xAARRGGBB value as the bytes
// B,G,R,A in memory.
type PixelFormat uint32

const (
	// ARGB8888 is the canonical packed 32-bit format with alpha.
	ARGB8888 PixelFormat = iota
	// XRGB8888 is 32-bit without alpha; the high byte is ignored.
	XRGB8888
	// RGB565 is a 16-bit format with 5/6/5 bits per channel.
	RGB565
	// BGRA8888 is 32-bit packed B:G:R:A, used by some scanout hardware.
	BGRA8888
	// RGBA8888 is 32-bit packed R:G:B:A.
	RGBA8888
	// RGB888 is 24-bit packed R:G:B with no padding byte.
	RGB888
	// BGR888 is 24-bit packed B:G:R.
	BGR888
	// Gray8 is 8-bit grayscale.
	Gray8
	// Gray16 is 16-bit grayscale, little-endian.
	Gray16
	// Alpha8 is 8-bit alpha-only, used for masks.
	Alpha8

	numPixelFormats
)

// BytesPerPixel returns the storage size of one pixel.
func (f PixelFormat) BytesPerPixel() uint32 {
	switch f {
	case ARGB8888, XRGB8888, BGRA8888, RGBA8888:
		return 4
	case RGB888, BGR888:
		return 3
	case RGB565, Gray16:
		return 2
	case Gray8, Alpha8:
		return 1
	default:
		return 0
	}
}

// BitsPerPixel returns the storage size of one pixel in bits.
func (f PixelFormat) BitsPerPixel() uint32 {
	return f.BytesPerPixel() * 8
}

// HasAlpha reports whether the format carries an alpha channel.
func (f PixelFormat) HasAlpha() bool {
	switch f {
	case ARGB8888, BGRA8888, RGBA8888, Alpha8:
		return true
	}
	return false
}

// IsGrayscale reports whether the format stores a single channel.
func (f PixelFormat) IsGrayscale() bool {
	switch f {
	case Gray8, Gray16, Alpha8:
		return true
	}
	return false
}

// IsValid reports whether f is one of the defined formats.
func (f PixelFormat) IsValid() bool {
	return f < numPixelFormats
}

// MinStride returns the minimum bytes per row for the given width.
func (f PixelFormat) MinStride(width uint32) uint32 {
	return width * f.BytesPerPixel()
}

// AlignedStride returns the stride rounded up to a multiple of
// alignment bytes. A zero alignment means no alignment requirement and
// yields the minimum stride.
func (f PixelFormat) AlignedStride(width, alignment uint32) uint32 {
	m := f.MinStride(width)
	if alignment == 0 {
		return m
	}
	return (m + alignment - 1) / alignment * alignment
}

// AlphaMode describes how a buffer's alpha channel relates to its
// color channels.
type AlphaMode uint8

const (
	// AlphaStraight means color channels are independent of alpha.
	AlphaStraight AlphaMode = iota
	// AlphaPremultiplied means color channels are pre-scaled by alpha.
	AlphaPremultiplied
	// AlphaOpaque means the alpha channel is ignored.
	AlphaOpaque
)

// String returns the alpha mode name.
func (m AlphaMode) String() string {
	switch m {
	case AlphaStraight:
		return "Straight"
	case AlphaPremultiplied:
		return "Premultiplied"
	case AlphaOpaque:
		return "Opaque"
	default:
		return "Unknown"
	}
}

// String returns the format name.
func (f PixelFormat) String() string {
	switch f {
	case ARGB8888:
		return "ARGB8888"
	case XRGB8888:
		return "XRGB8888"
	case RGB565:
		return "RGB565"
	case BGRA8888:
		return "BGRA8888"
	case RGBA8888:
		return "RGBA8888"
	case RGB888:
		return "RGB888"
	case BGR888:
		return "BGR888"
	case Gray8:
		return "Gray8"
	case Gray16:
		return "Gray16"
	case Alpha8:
		return "Alpha8"
	default:
		return "Unknown"
	}
}
