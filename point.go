package gfx

import "math"

// Point is a 2D coordinate with signed 32-bit integer components.
// Coordinates may be negative (offscreen positions are valid).
//
// Layout: x (int32), y (int32); 8 bytes, no padding.
type Point struct {
	X, Y int32
}

// Pt is a convenience function to create a Point.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns the point with both components negated.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Mul returns the point scaled by an integer factor.
func (p Point) Mul(s int32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Offset returns the point translated by (dx, dy).
func (p Point) Offset(dx, dy int32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistanceSquared returns the squared distance to q, computed in int64
// to avoid overflowing the 32-bit coordinate range.
func (p Point) DistanceSquared(q Point) int64 {
	dx := int64(p.X) - int64(q.X)
	dy := int64(p.Y) - int64(q.Y)
	return dx*dx + dy*dy
}

// Midpoint returns the point halfway between p and q, truncated toward
// zero.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// ToFloat converts to a PointF.
func (p Point) ToFloat() PointF {
	return PointF{X: float32(p.X), Y: float32(p.Y)}
}

// PointF is a 2D coordinate with float32 components, used for subpixel
// precision in animation and transforms.
//
// Layout: x (float32), y (float32); 8 bytes, no padding.
type PointF struct {
	X, Y float32
}

// PtF is a convenience function to create a PointF.
func PtF(x, y float32) PointF {
	return PointF{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p PointF) Add(q PointF) PointF {
	return PointF{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p PointF) Sub(q PointF) PointF {
	return PointF{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns the point with both components negated.
func (p PointF) Neg() PointF {
	return PointF{X: -p.X, Y: -p.Y}
}

// Mul returns the point scaled by a scalar.
func (p PointF) Mul(s float32) PointF {
	return PointF{X: p.X * s, Y: p.Y * s}
}

// Offset returns the point translated by (dx, dy).
func (p PointF) Offset(dx, dy float32) PointF {
	return PointF{X: p.X + dx, Y: p.Y + dy}
}

// Dot returns the dot product of two vectors.
func (p PointF) Dot(q PointF) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p PointF) Cross(q PointF) float32 {
	return p.X*q.Y - p.Y*q.X
}

// DistanceSquared returns the squared distance to q, accumulated in
// float64 so large coordinates do not overflow to +Inf prematurely.
func (p PointF) DistanceSquared(q PointF) float64 {
	dx := float64(p.X) - float64(q.X)
	dy := float64(p.Y) - float64(q.Y)
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance to q. The squared sum is
// computed in float64 before the square root, so the result is finite
// for all representable float32 inputs.
func (p PointF) Distance(q PointF) float32 {
	return float32(math.Sqrt(p.DistanceSquared(q)))
}

// Midpoint returns the point halfway between p and q.
func (p PointF) Midpoint(q PointF) PointF {
	return PointF{X: (p.X + q.X) * 0.5, Y: (p.Y + q.Y) * 0.5}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
// t is not clamped; values outside [0,1] extrapolate.
func (p PointF) Lerp(q PointF, t float32) PointF {
	return PointF{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (p PointF) Normalize() PointF {
	length := float32(math.Sqrt(float64(p.X)*float64(p.X) + float64(p.Y)*float64(p.Y)))
	if length == 0 {
		return p
	}
	return PointF{X: p.X / length, Y: p.Y / length}
}

// Round returns the nearest integer Point.
func (p PointF) Round() Point {
	return Point{
		X: int32(math.Round(float64(p.X))),
		Y: int32(math.Round(float64(p.Y))),
	}
}

// Floor returns the Point with both components rounded down.
func (p PointF) Floor() Point {
	return Point{
		X: int32(math.Floor(float64(p.X))),
		Y: int32(math.Floor(float64(p.Y))),
	}
}

// Ceil returns the Point with both components rounded up.
func (p PointF) Ceil() Point {
	return Point{
		X: int32(math.Ceil(float64(p.X))),
		Y: int32(math.Ceil(float64(p.Y))),
	}
}
