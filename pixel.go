package gfx

import "encoding/binary"

// encodePixel writes c to dst in the format's memory layout. dst must
// hold at least BytesPerPixel bytes; view bounds checks guarantee that.
// Formats without an alpha channel drop alpha; grayscale formats store
// the luminance.
func (f PixelFormat) encodePixel(dst []byte, c Color) {
	switch f {
	case ARGB8888, XRGB8888:
		binary.LittleEndian.PutUint32(dst, uint32(c))
	case BGRA8888:
		packed := uint32(c.B())<<24 | uint32(c.G())<<16 | uint32(c.R())<<8 | uint32(c.A())
		binary.LittleEndian.PutUint32(dst, packed)
	case RGBA8888:
		packed := uint32(c.R())<<24 | uint32(c.G())<<16 | uint32(c.B())<<8 | uint32(c.A())
		binary.LittleEndian.PutUint32(dst, packed)
	case RGB565:
		packed := uint16(c.R()>>3)<<11 | uint16(c.G()>>2)<<5 | uint16(c.B()>>3)
		binary.LittleEndian.PutUint16(dst, packed)
	case RGB888:
		dst[0], dst[1], dst[2] = c.B(), c.G(), c.R()
	case BGR888:
		dst[0], dst[1], dst[2] = c.R(), c.G(), c.B()
	case Gray8:
		dst[0] = c.Luminance()
	case Gray16:
		l := uint16(c.Luminance())
		binary.LittleEndian.PutUint16(dst, l<<8|l)
	case Alpha8:
		dst[0] = c.A()
	}
}

// decodePixel reads a Color from src in the format's memory layout.
// Formats without alpha decode as fully opaque; Alpha8 decodes as
// transparent black with the stored alpha.
func (f PixelFormat) decodePixel(src []byte) Color {
	switch f {
	case ARGB8888:
		return Color(binary.LittleEndian.Uint32(src))
	case XRGB8888:
		return Color(binary.LittleEndian.Uint32(src)) | 0xFF000000
	case BGRA8888:
		packed := binary.LittleEndian.Uint32(src)
		return ARGB(uint8(packed), uint8(packed>>8), uint8(packed>>16), uint8(packed>>24))
	case RGBA8888:
		packed := binary.LittleEndian.Uint32(src)
		return ARGB(uint8(packed), uint8(packed>>24), uint8(packed>>16), uint8(packed>>8))
	case RGB565:
		packed := binary.LittleEndian.Uint16(src)
		r := uint8(packed >> 11)
		g := uint8(packed >> 5 & 0x3F)
		b := uint8(packed & 0x1F)
		// Replicate the high bits into the low bits so that full
		// intensity maps back to 255, not 248.
		return RGB(r<<3|r>>2, g<<2|g>>4, b<<3|b>>2)
	case RGB888:
		return RGB(src[2], src[1], src[0])
	case BGR888:
		return RGB(src[0], src[1], src[2])
	case Gray8:
		return GrayColor(src[0])
	case Gray16:
		return GrayColor(uint8(binary.LittleEndian.Uint16(src) >> 8))
	case Alpha8:
		return ARGB(src[0], 0, 0, 0)
	default:
		return Transparent
	}
}
