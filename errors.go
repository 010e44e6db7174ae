package gfx

import "errors"

var (
	// ErrBufferTooSmall indicates a byte slice shorter than the size its
	// descriptor requires.
	ErrBufferTooSmall = errors.New("gfx: buffer too small for descriptor")

	// ErrSizeOverflow indicates that width*height*bytes-per-pixel does not
	// fit the addressable size type.
	ErrSizeOverflow = errors.New("gfx: buffer size overflows")

	// ErrOutOfBounds indicates a pixel access outside the buffer's
	// width/height.
	ErrOutOfBounds = errors.New("gfx: pixel coordinates out of bounds")

	// ErrInvalidStride indicates a stride smaller than the minimum the
	// format requires for the given width.
	ErrInvalidStride = errors.New("gfx: stride smaller than minimum row size")

	// ErrInvalidFormat indicates a pixel format outside the defined set.
	ErrInvalidFormat = errors.New("gfx: invalid pixel format")

	// ErrPaletteIndex indicates a palette lookup beyond the palette length.
	ErrPaletteIndex = errors.New("gfx: palette index out of range")

	// ErrSingularTransform indicates a transform with zero determinant,
	// which has no inverse.
	ErrSingularTransform = errors.New("gfx: transform is not invertible")
)
