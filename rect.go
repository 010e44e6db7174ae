package gfx

import "math"

// Rect is a rectangle defined by a signed origin and an unsigned extent.
// The right and bottom edges are exclusive: a Rect covers the half-open
// ranges [X, X+Width) x [Y, Y+Height). A Rect with Width or Height zero
// is a valid empty rectangle that contains no points and intersects
// nothing.
//
// Layout: x (int32), y (int32), width (uint32), height (uint32);
// 16 bytes, no padding.
type Rect struct {
	X, Y          int32
	Width, Height uint32
}

// NewRect creates a rectangle from origin and extent.
func NewRect(x, y int32, width, height uint32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromSize creates a rectangle at the origin with the given size.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// RectFromPoints creates the rectangle spanned by two corner points in
// any order.
func RectFromPoints(p1, p2 Point) Rect {
	x1, x2 := min(p1.X, p2.X), max(p1.X, p2.X)
	y1, y2 := min(p1.Y, p2.Y), max(p1.Y, p2.Y)
	return Rect{
		X:      x1,
		Y:      y1,
		Width:  uint32(int64(x2) - int64(x1)),
		Height: uint32(int64(y2) - int64(y1)),
	}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the extent.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() int32 {
	return r.X
}

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() int32 {
	return r.Y
}

// Right returns the X coordinate of the exclusive right edge, saturated
// to the int32 range.
func (r Rect) Right() int32 {
	return satI32(r.right64())
}

// Bottom returns the Y coordinate of the exclusive bottom edge,
// saturated to the int32 range.
func (r Rect) Bottom() int32 {
	return satI32(r.bottom64())
}

func (r Rect) right64() int64  { return int64(r.X) + int64(r.Width) }
func (r Rect) bottom64() int64 { return int64(r.Y) + int64(r.Height) }

// Center returns the center point, truncated toward the origin.
func (r Rect) Center() Point {
	return Point{
		X: r.X + int32(r.Width/2),
		Y: r.Y + int32(r.Height/2),
	}
}

// IsEmpty reports whether the rectangle has zero extent.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Area returns the covered area in pixels.
func (r Rect) Area() uint64 {
	return uint64(r.Width) * uint64(r.Height)
}

// ContainsPoint reports whether p lies inside the rectangle. The right
// and bottom edges are exclusive; an empty rectangle contains no point,
// including its own origin.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && int64(p.X) < r.right64() &&
		p.Y >= r.Y && int64(p.Y) < r.bottom64()
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.right64() <= r.right64() && other.bottom64() <= r.bottom64()
}

// Intersects reports whether the two rectangles overlap. Empty
// rectangles intersect nothing.
func (r Rect) Intersects(other Rect) bool {
	return int64(r.X) < other.right64() && r.right64() > int64(other.X) &&
		int64(r.Y) < other.bottom64() && r.bottom64() > int64(other.Y)
}

// Intersect returns the set-intersection of the two rectangles. When
// they do not overlap the zero Rect is returned; the result never has
// negative extent.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(int64(r.X), int64(other.X))
	y1 := max(int64(r.Y), int64(other.Y))
	x2 := min(r.right64(), other.right64())
	y2 := min(r.bottom64(), other.bottom64())
	if x1 >= x2 || y1 >= y2 {
		return Rect{}
	}
	return Rect{
		X:      int32(x1),
		Y:      int32(y1),
		Width:  uint32(x2 - x1),
		Height: uint32(y2 - y1),
	}
}

// Union returns the bounding box of the two rectangles. An empty
// operand acts as the identity: the other operand is returned
// unchanged.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x1 := min(int64(r.X), int64(other.X))
	y1 := min(int64(r.Y), int64(other.Y))
	x2 := max(r.right64(), other.right64())
	y2 := max(r.bottom64(), other.bottom64())
	return Rect{
		X:      int32(x1),
		Y:      int32(y1),
		Width:  satU32(x2 - x1),
		Height: satU32(y2 - y1),
	}
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy int32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Expand grows the rectangle by amount on every side. A negative amount
// shrinks it; the extent never goes below zero.
func (r Rect) Expand(amount int32) Rect {
	return Rect{
		X:      r.X - amount,
		Y:      r.Y - amount,
		Width:  satU32(int64(r.Width) + 2*int64(amount)),
		Height: satU32(int64(r.Height) + 2*int64(amount)),
	}
}

// Shrink shrinks the rectangle by amount on every side.
func (r Rect) Shrink(amount int32) Rect {
	return r.Expand(-amount)
}

// SplitHorizontal splits the rectangle into a left part of width at and
// the remainder. at is clamped to the rectangle's width.
func (r Rect) SplitHorizontal(at uint32) (Rect, Rect) {
	at = min(at, r.Width)
	return Rect{X: r.X, Y: r.Y, Width: at, Height: r.Height},
		Rect{X: r.X + int32(at), Y: r.Y, Width: r.Width - at, Height: r.Height}
}

// SplitVertical splits the rectangle into a top part of height at and
// the remainder. at is clamped to the rectangle's height.
func (r Rect) SplitVertical(at uint32) (Rect, Rect) {
	at = min(at, r.Height)
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: at},
		Rect{X: r.X, Y: r.Y + int32(at), Width: r.Width, Height: r.Height - at}
}

// ToFloat converts to a RectF.
func (r Rect) ToFloat() RectF {
	return RectF{
		X:      float32(r.X),
		Y:      float32(r.Y),
		Width:  float32(r.Width),
		Height: float32(r.Height),
	}
}

// RectF is a rectangle with float32 coordinates. Width or Height <= 0
// means empty.
//
// Layout: x, y, width, height (float32); 16 bytes, no padding.
type RectF struct {
	X, Y          float32
	Width, Height float32
}

// NewRectF creates a float rectangle from origin and extent.
func NewRectF(x, y, width, height float32) RectF {
	return RectF{X: x, Y: y, Width: width, Height: height}
}

// Origin returns the top-left corner.
func (r RectF) Origin() PointF {
	return PointF{X: r.X, Y: r.Y}
}

// Size returns the extent.
func (r RectF) Size() SizeF {
	return SizeF{Width: r.Width, Height: r.Height}
}

// Right returns the exclusive right edge.
func (r RectF) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r RectF) Bottom() float32 {
	return r.Y + r.Height
}

// Center returns the center point.
func (r RectF) Center() PointF {
	return PointF{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// IsEmpty reports whether the rectangle has non-positive extent.
func (r RectF) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ContainsPoint reports whether p lies inside the rectangle; right and
// bottom edges are exclusive.
func (r RectF) ContainsPoint(p PointF) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the set-intersection of the two rectangles, or the
// zero RectF when they do not overlap.
func (r RectF) Intersect(other RectF) RectF {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x1 >= x2 || y1 >= y2 {
		return RectF{}
	}
	return RectF{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Union returns the bounding box of the two rectangles; an empty
// operand acts as the identity.
func (r RectF) Union(other RectF) RectF {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return RectF{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Offset returns the rectangle translated by (dx, dy).
func (r RectF) Offset(dx, dy float32) RectF {
	return RectF{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Lerp performs linear interpolation between two rectangles.
// t is not clamped; values outside [0,1] extrapolate.
func (r RectF) Lerp(other RectF, t float32) RectF {
	return RectF{
		X:      r.X + (other.X-r.X)*t,
		Y:      r.Y + (other.Y-r.Y)*t,
		Width:  r.Width + (other.Width-r.Width)*t,
		Height: r.Height + (other.Height-r.Height)*t,
	}
}

// Round returns the nearest integer Rect. Negative extents round to
// zero.
func (r RectF) Round() Rect {
	return Rect{
		X:      int32(math.Round(float64(r.X))),
		Y:      int32(math.Round(float64(r.Y))),
		Width:  satU32(int64(math.Round(float64(r.Width)))),
		Height: satU32(int64(math.Round(float64(r.Height)))),
	}
}

// RoundedRect is a rectangle with uniformly rounded corners. The
// stored radius may exceed half the shorter side; callers that need a
// geometrically valid radius use ClampedRadius.
//
// Layout: rect (RectF), radius (float32); 20 bytes, no padding.
type RoundedRect struct {
	Rect   RectF
	Radius float32
}

// NewRoundedRect creates a rounded rectangle from a base rectangle and
// a corner radius.
func NewRoundedRect(rect RectF, radius float32) RoundedRect {
	return RoundedRect{Rect: rect, Radius: radius}
}

// MaxRadius returns the largest usable corner radius, half the shorter
// side.
func (r RoundedRect) MaxRadius() float32 {
	return min(r.Rect.Width, r.Rect.Height) * 0.5
}

// ClampedRadius returns the stored radius limited to MaxRadius.
func (r RoundedRect) ClampedRadius() float32 {
	return min(r.Radius, r.MaxRadius())
}

// InnerRect returns the rectangle inset by the clamped radius on all
// sides, the region untouched by the corner arcs.
func (r RoundedRect) InnerRect() RectF {
	cr := r.ClampedRadius()
	return RectF{
		X:      r.Rect.X + cr,
		Y:      r.Rect.Y + cr,
		Width:  r.Rect.Width - cr*2,
		Height: r.Rect.Height - cr*2,
	}
}

// satI32 saturates an int64 to the int32 range.
func satI32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// satU32 saturates an int64 to the uint32 range.
func satU32(v int64) uint32 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
