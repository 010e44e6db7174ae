package gfx

// Size is a 2D extent (width x height) with unsigned 32-bit components.
//
// Layout: width (uint32), height (uint32); 8 bytes, no padding.
type Size struct {
	Width, Height uint32
}

// Sz is a convenience function to create a Size.
func Sz(width, height uint32) Size {
	return Size{Width: width, Height: height}
}

// Area returns the total number of pixels covered by the size.
func (s Size) Area() uint64 {
	return uint64(s.Width) * uint64(s.Height)
}

// IsEmpty reports whether either dimension is zero.
func (s Size) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// MaxSide returns the larger dimension.
func (s Size) MaxSide() uint32 {
	return max(s.Width, s.Height)
}

// MinSide returns the smaller dimension.
func (s Size) MinSide() uint32 {
	return min(s.Width, s.Height)
}

// AspectRatio returns width/height, or 0 for a zero height.
func (s Size) AspectRatio() float32 {
	if s.Height == 0 {
		return 0
	}
	return float32(s.Width) / float32(s.Height)
}

// FitInside scales the size proportionally so it fits inside container.
func (s Size) FitInside(container Size) Size {
	if s.IsEmpty() || container.IsEmpty() {
		return Size{}
	}
	scaleX := float32(container.Width) / float32(s.Width)
	scaleY := float32(container.Height) / float32(s.Height)
	scale := min(scaleX, scaleY)
	return Size{
		Width:  uint32(float32(s.Width) * scale),
		Height: uint32(float32(s.Height) * scale),
	}
}

// Cover scales the size proportionally so it covers container.
func (s Size) Cover(container Size) Size {
	if s.IsEmpty() || container.IsEmpty() {
		return Size{}
	}
	scaleX := float32(container.Width) / float32(s.Width)
	scaleY := float32(container.Height) / float32(s.Height)
	scale := max(scaleX, scaleY)
	return Size{
		Width:  uint32(float32(s.Width) * scale),
		Height: uint32(float32(s.Height) * scale),
	}
}

// ToFloat converts to a SizeF.
func (s Size) ToFloat() SizeF {
	return SizeF{Width: float32(s.Width), Height: float32(s.Height)}
}

// SizeF is a 2D extent with float32 components.
//
// Layout: width (float32), height (float32); 8 bytes, no padding.
type SizeF struct {
	Width, Height float32
}

// SzF is a convenience function to create a SizeF.
func SzF(width, height float32) SizeF {
	return SizeF{Width: width, Height: height}
}

// Area returns width*height.
func (s SizeF) Area() float32 {
	return s.Width * s.Height
}

// IsEmpty reports whether either dimension is non-positive.
func (s SizeF) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Lerp performs linear interpolation between two sizes.
// t is not clamped; values outside [0,1] extrapolate.
func (s SizeF) Lerp(other SizeF, t float32) SizeF {
	return SizeF{
		Width:  s.Width + (other.Width-s.Width)*t,
		Height: s.Height + (other.Height-s.Height)*t,
	}
}
