package gfx

// BufferRegion is a sub-region of a buffer in unsigned buffer
// coordinates, exchanged with the kernel when flushing partial updates.
//
// Layout: x, y, width, height (uint32); 16 bytes, no padding.
type BufferRegion struct {
	X, Y          uint32
	Width, Height uint32
}

// FullRegion returns the region covering an entire buffer.
func FullRegion(width, height uint32) BufferRegion {
	return BufferRegion{Width: width, Height: height}
}

// IsEmpty reports whether the region has zero extent.
func (r BufferRegion) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Area returns the covered area in pixels.
func (r BufferRegion) Area() uint64 {
	return uint64(r.Width) * uint64(r.Height)
}

// Contains reports whether (x, y) lies inside the region.
func (r BufferRegion) Contains(x, y uint32) bool {
	return x >= r.X && uint64(x) < uint64(r.X)+uint64(r.Width) &&
		y >= r.Y && uint64(y) < uint64(r.Y)+uint64(r.Height)
}

// ToRect converts to a signed Rect.
func (r BufferRegion) ToRect() Rect {
	return Rect{X: satI32(int64(r.X)), Y: satI32(int64(r.Y)), Width: r.Width, Height: r.Height}
}

// RegionFromRect converts a signed Rect to a BufferRegion, clipping
// away any part left of or above the origin.
func RegionFromRect(rect Rect) BufferRegion {
	clipped := rect.Intersect(Rect{Width: ^uint32(0), Height: ^uint32(0)})
	return BufferRegion{
		X:      uint32(clipped.X),
		Y:      uint32(clipped.Y),
		Width:  clipped.Width,
		Height: clipped.Height,
	}
}
