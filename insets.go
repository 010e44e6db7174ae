package gfx

// Insets describes offsets from the four edges of a rectangle, used for
// margins, paddings and window decorations.
//
// Layout: top, right, bottom, left (int32); 16 bytes, no padding.
type Insets struct {
	Top, Right, Bottom, Left int32
}

// NewInsets creates insets with the given edge offsets.
func NewInsets(top, right, bottom, left int32) Insets {
	return Insets{Top: top, Right: right, Bottom: bottom, Left: left}
}

// UniformInsets creates equal insets on all four edges.
func UniformInsets(amount int32) Insets {
	return Insets{Top: amount, Right: amount, Bottom: amount, Left: amount}
}

// Horizontal returns the combined left and right insets.
func (i Insets) Horizontal() int32 {
	return i.Left + i.Right
}

// Vertical returns the combined top and bottom insets.
func (i Insets) Vertical() int32 {
	return i.Top + i.Bottom
}

// IsZero reports whether all four insets are zero.
func (i Insets) IsZero() bool {
	return i.Top == 0 && i.Right == 0 && i.Bottom == 0 && i.Left == 0
}

// Apply shrinks the rectangle by the insets. The extent never goes
// below zero.
func (i Insets) Apply(r Rect) Rect {
	return Rect{
		X:      r.X + i.Left,
		Y:      r.Y + i.Top,
		Width:  satU32(int64(r.Width) - int64(i.Horizontal())),
		Height: satU32(int64(r.Height) - int64(i.Vertical())),
	}
}

// Remove grows the rectangle by the insets, undoing Apply for
// non-degenerate results.
func (i Insets) Remove(r Rect) Rect {
	return Rect{
		X:      r.X - i.Left,
		Y:      r.Y - i.Top,
		Width:  satU32(int64(r.Width) + int64(i.Horizontal())),
		Height: satU32(int64(r.Height) + int64(i.Vertical())),
	}
}
