package gfx

import (
	"fmt"
	"math"
)

// BufferDescriptor describes the dimensions and memory layout of a
// pixel buffer. Stride is the distance between rows in bytes and may
// exceed width*bytes-per-pixel for alignment.
//
// Layout: width (uint32), height (uint32), stride (uint32),
// format (uint32); 16 bytes, no padding.
type BufferDescriptor struct {
	Width  uint32
	Height uint32
	Stride uint32
	Format PixelFormat
}

// NewBufferDescriptor creates a descriptor with the minimum stride for
// the format. ErrInvalidFormat is returned for formats outside the
// defined set. ErrSizeOverflow is returned when width*height*bytes-per-
// pixel does not fit the addressable size type; the size is never
// silently truncated.
func NewBufferDescriptor(width, height uint32, format PixelFormat) (BufferDescriptor, error) {
	if !format.IsValid() {
		return BufferDescriptor{}, fmt.Errorf("%w: %d", ErrInvalidFormat, uint32(format))
	}
	bpp := format.BytesPerPixel()
	if bpp != 0 && width > math.MaxUint32/bpp {
		return BufferDescriptor{}, fmt.Errorf("%w: %dx%d %v", ErrSizeOverflow, width, height, format)
	}
	return NewBufferDescriptorWithStride(width, height, width*bpp, format)
}

// NewBufferDescriptorWithStride creates a descriptor with an explicit
// stride, validating that the stride covers at least one row and that
// the total size stays addressable.
func NewBufferDescriptorWithStride(width, height, stride uint32, format PixelFormat) (BufferDescriptor, error) {
	if !format.IsValid() {
		return BufferDescriptor{}, fmt.Errorf("%w: %d", ErrInvalidFormat, uint32(format))
	}
	if stride < format.MinStride(width) {
		return BufferDescriptor{}, fmt.Errorf("%w: stride %d < %d", ErrInvalidStride, stride, format.MinStride(width))
	}
	if size := uint64(stride) * uint64(height); size > math.MaxInt {
		return BufferDescriptor{}, fmt.Errorf("%w: %dx%d stride %d", ErrSizeOverflow, width, height, stride)
	}
	return BufferDescriptor{Width: width, Height: height, Stride: stride, Format: format}, nil
}

// Size returns the pixel dimensions.
func (d BufferDescriptor) Size() Size {
	return Size{Width: d.Width, Height: d.Height}
}

// Rect returns the full buffer rectangle at the origin.
func (d BufferDescriptor) Rect() Rect {
	return Rect{Width: d.Width, Height: d.Height}
}

// SizeBytes returns the total buffer size in bytes.
func (d BufferDescriptor) SizeBytes() int {
	return int(d.Stride) * int(d.Height)
}

// PixelCount returns the total number of pixels.
func (d BufferDescriptor) PixelCount() uint64 {
	return uint64(d.Width) * uint64(d.Height)
}

// Contains reports whether (x, y) addresses a pixel inside the buffer.
func (d BufferDescriptor) Contains(x, y uint32) bool {
	return x < d.Width && y < d.Height
}

// IsEmpty reports whether the buffer has zero pixels.
func (d BufferDescriptor) IsEmpty() bool {
	return d.Width == 0 || d.Height == 0
}

// PixelOffset returns the byte offset of pixel (x, y). Out-of-range
// coordinates are an explicit error, never clamped: a clamped offset
// would silently read or corrupt a neighboring pixel through a
// zero-copy view.
func (d BufferDescriptor) PixelOffset(x, y uint32) (int, error) {
	if !d.Contains(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, d.Width, d.Height)
	}
	return d.pixelOffset(x, y), nil
}

// pixelOffset computes the offset without the bounds check; callers
// must have validated (x, y).
func (d BufferDescriptor) pixelOffset(x, y uint32) int {
	return int(y)*int(d.Stride) + int(x)*int(d.Format.BytesPerPixel())
}

// RowOffset returns the byte offset of row y.
func (d BufferDescriptor) RowOffset(y uint32) (int, error) {
	if y >= d.Height {
		return 0, fmt.Errorf("%w: row %d in %dx%d", ErrOutOfBounds, y, d.Width, d.Height)
	}
	return int(y) * int(d.Stride), nil
}

// BytesPerRow returns the used bytes per row, excluding stride padding.
func (d BufferDescriptor) BytesPerRow() uint32 {
	return d.Width * d.Format.BytesPerPixel()
}

// RowPadding returns the stride padding per row in bytes.
func (d BufferDescriptor) RowPadding() uint32 {
	return d.Stride - d.BytesPerRow()
}

// SubRegion returns a descriptor addressing the given rectangle of the
// buffer, together with the byte offset of its first pixel. The
// sub-descriptor keeps the parent stride. Rectangles reaching outside
// the buffer are an error.
func (d BufferDescriptor) SubRegion(r Rect) (BufferDescriptor, int, error) {
	if r.X < 0 || r.Y < 0 ||
		r.right64() > int64(d.Width) || r.bottom64() > int64(d.Height) {
		return BufferDescriptor{}, 0, fmt.Errorf("%w: region %+v in %dx%d",
			ErrOutOfBounds, r, d.Width, d.Height)
	}
	sub := BufferDescriptor{
		Width:  r.Width,
		Height: r.Height,
		Stride: d.Stride,
		Format: d.Format,
	}
	return sub, d.pixelOffset(uint32(r.X), uint32(r.Y)), nil
}
