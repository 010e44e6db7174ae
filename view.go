package gfx

import "fmt"

// View is a read-only view over a caller-owned byte region interpreted
// through a BufferDescriptor. Construction validates that the region is
// large enough for the descriptor; a View never reads past it.
//
// Views borrow the bytes for their lifetime and hold no other state.
// Any number of read-only Views may alias the same region.
type View struct {
	data []byte
	desc BufferDescriptor
}

// NewView creates a read-only view over data. ErrBufferTooSmall is
// returned when data is shorter than desc.SizeBytes().
func NewView(data []byte, desc BufferDescriptor) (*View, error) {
	if len(data) < desc.SizeBytes() {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(data), desc.SizeBytes())
	}
	return &View{data: data, desc: desc}, nil
}

// Descriptor returns the buffer descriptor.
func (v *View) Descriptor() BufferDescriptor {
	return v.desc
}

// Width returns the buffer width in pixels.
func (v *View) Width() uint32 {
	return v.desc.Width
}

// Height returns the buffer height in pixels.
func (v *View) Height() uint32 {
	return v.desc.Height
}

// Stride returns the row distance in bytes.
func (v *View) Stride() uint32 {
	return v.desc.Stride
}

// Format returns the pixel format.
func (v *View) Format() PixelFormat {
	return v.desc.Format
}

// Data returns the underlying bytes.
func (v *View) Data() []byte {
	return v.data
}

// Row returns the pixel bytes of row y, excluding stride padding.
func (v *View) Row(y uint32) ([]byte, error) {
	start, err := v.desc.RowOffset(y)
	if err != nil {
		return nil, err
	}
	return v.data[start : start+int(v.desc.BytesPerRow())], nil
}

// PixelOffset returns the byte offset of pixel (x, y), or an explicit
// error for out-of-range coordinates.
func (v *View) PixelOffset(x, y uint32) (int, error) {
	return v.desc.PixelOffset(x, y)
}

// GetPixel decodes the color of pixel (x, y). Out-of-range coordinates
// are an explicit error.
func (v *View) GetPixel(x, y uint32) (Color, error) {
	off, err := v.desc.PixelOffset(x, y)
	if err != nil {
		return Transparent, err
	}
	return v.desc.Format.decodePixel(v.data[off:]), nil
}

// ViewMut is a mutable view over a caller-owned byte region. A ViewMut
// must be the only live view over its bytes: the single-writer
// discipline is part of the contract and is not enforced at runtime.
type ViewMut struct {
	View
}

// NewViewMut creates a mutable view over data. ErrBufferTooSmall is
// returned when data is shorter than desc.SizeBytes().
func NewViewMut(data []byte, desc BufferDescriptor) (*ViewMut, error) {
	if len(data) < desc.SizeBytes() {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(data), desc.SizeBytes())
	}
	return &ViewMut{View: View{data: data, desc: desc}}, nil
}

// RowMut returns the mutable pixel bytes of row y, excluding stride
// padding.
func (v *ViewMut) RowMut(y uint32) ([]byte, error) {
	return v.Row(y)
}

// SetPixel encodes c into pixel (x, y). Out-of-range coordinates are an
// explicit error, never clamped.
func (v *ViewMut) SetPixel(x, y uint32, c Color) error {
	off, err := v.desc.PixelOffset(x, y)
	if err != nil {
		return err
	}
	v.desc.Format.encodePixel(v.data[off:], c)
	return nil
}

// Fill sets every byte covered by the descriptor to value, including
// stride padding.
func (v *ViewMut) Fill(value byte) {
	covered := v.data[:v.desc.SizeBytes()]
	for i := range covered {
		covered[i] = value
	}
}

// Clear writes the format's neutral zero value to every pixel. For all
// supported formats the zero value is all-zero bytes (transparent or
// black), so the whole region is zeroed, stride padding included.
func (v *ViewMut) Clear() {
	v.Fill(0)
}

// FillColor encodes c into every pixel. The first row is encoded
// pixel-by-pixel and then replicated row-wise.
func (v *ViewMut) FillColor(c Color) {
	if v.desc.IsEmpty() {
		return
	}
	bpp := int(v.desc.Format.BytesPerPixel())
	first := v.data[:int(v.desc.BytesPerRow())]
	for x := 0; x < len(first); x += bpp {
		v.desc.Format.encodePixel(first[x:], c)
	}
	for y := uint32(1); y < v.desc.Height; y++ {
		start := int(y) * int(v.desc.Stride)
		copy(v.data[start:start+len(first)], first)
	}
}
