package gfx

import "math"

// Line is a segment between two integer points.
//
// Layout: start (Point), end (Point); 16 bytes, no padding.
type Line struct {
	Start, End Point
}

// NewLine creates a line segment between two points.
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end}
}

// LengthSquared returns the squared segment length in int64.
func (l Line) LengthSquared() int64 {
	return l.Start.DistanceSquared(l.End)
}

// Length returns the segment length.
func (l Line) Length() float32 {
	return float32(math.Sqrt(float64(l.LengthSquared())))
}

// Dx returns the horizontal delta.
func (l Line) Dx() int32 {
	return l.End.X - l.Start.X
}

// Dy returns the vertical delta.
func (l Line) Dy() int32 {
	return l.End.Y - l.Start.Y
}

// Midpoint returns the point halfway along the segment.
func (l Line) Midpoint() Point {
	return l.Start.Midpoint(l.End)
}

// IsHorizontal reports whether both endpoints share a Y coordinate.
func (l Line) IsHorizontal() bool {
	return l.Start.Y == l.End.Y
}

// IsVertical reports whether both endpoints share an X coordinate.
func (l Line) IsVertical() bool {
	return l.Start.X == l.End.X
}

// IsPoint reports whether the segment is degenerate (start == end).
func (l Line) IsPoint() bool {
	return l.Start == l.End
}

// Reverse swaps the segment direction.
func (l Line) Reverse() Line {
	return Line{Start: l.End, End: l.Start}
}

// ToFloat converts to a LineF.
func (l Line) ToFloat() LineF {
	return LineF{Start: l.Start.ToFloat(), End: l.End.ToFloat()}
}

// LineF is a segment between two float points.
//
// Layout: start (PointF), end (PointF); 16 bytes, no padding.
type LineF struct {
	Start, End PointF
}

// NewLineF creates a line segment between two float points.
func NewLineF(start, end PointF) LineF {
	return LineF{Start: start, End: end}
}

// LengthSquared returns the squared segment length.
func (l LineF) LengthSquared() float64 {
	return l.Start.DistanceSquared(l.End)
}

// Length returns the segment length.
func (l LineF) Length() float32 {
	return l.Start.Distance(l.End)
}

// Dx returns the horizontal delta.
func (l LineF) Dx() float32 {
	return l.End.X - l.Start.X
}

// Dy returns the vertical delta.
func (l LineF) Dy() float32 {
	return l.End.Y - l.Start.Y
}

// Midpoint returns the point halfway along the segment.
func (l LineF) Midpoint() PointF {
	return l.Start.Midpoint(l.End)
}

// PointAt returns the point at parameter t along the segment
// (t=0 is Start, t=1 is End; t is not clamped).
func (l LineF) PointAt(t float32) PointF {
	return l.Start.Lerp(l.End, t)
}

// Direction returns the normalized direction vector. Degenerate
// segments yield the zero vector.
func (l LineF) Direction() PointF {
	return PointF{X: l.Dx(), Y: l.Dy()}.Normalize()
}

// Normal returns the unit normal, perpendicular to the direction.
func (l LineF) Normal() PointF {
	d := l.Direction()
	return PointF{X: -d.Y, Y: d.X}
}

// Angle returns the segment angle in radians.
func (l LineF) Angle() float32 {
	return float32(math.Atan2(float64(l.Dy()), float64(l.Dx())))
}

// Reverse swaps the segment direction.
func (l LineF) Reverse() LineF {
	return LineF{Start: l.End, End: l.Start}
}

// Round returns the nearest integer Line.
func (l LineF) Round() Line {
	return Line{Start: l.Start.Round(), End: l.End.Round()}
}
