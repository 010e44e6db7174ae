package gfx

import "math"

// Circle is a circle defined by center and radius. A zero radius is a
// valid degenerate circle containing only its center.
//
// Layout: center (PointF), radius (float32); 12 bytes, no padding.
type Circle struct {
	Center PointF
	Radius float32
}

// NewCircle creates a circle from center and radius.
func NewCircle(center PointF, radius float32) Circle {
	return Circle{Center: center, Radius: radius}
}

// Diameter returns twice the radius.
func (c Circle) Diameter() float32 {
	return c.Radius * 2
}

// Area returns the enclosed area.
func (c Circle) Area() float32 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns the perimeter length.
func (c Circle) Circumference() float32 {
	return 2 * math.Pi * c.Radius
}

// Bounds returns the axis-aligned bounding box.
func (c Circle) Bounds() RectF {
	return RectF{
		X:      c.Center.X - c.Radius,
		Y:      c.Center.Y - c.Radius,
		Width:  c.Diameter(),
		Height: c.Diameter(),
	}
}

// ContainsPoint reports whether p lies inside or on the circle. The
// comparison uses squared distances, avoiding the square root.
func (c Circle) ContainsPoint(p PointF) bool {
	return c.Center.DistanceSquared(p) <= float64(c.Radius)*float64(c.Radius)
}

// Intersects reports whether the two circles overlap (touching edges do
// not count).
func (c Circle) Intersects(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// PointAtAngle returns the point on the circumference at the given
// angle in radians, measured counterclockwise from the positive X axis.
// The angle is not normalized or wrapped; that is the caller's
// responsibility.
func (c Circle) PointAtAngle(angle float32) PointF {
	return PointF{
		X: c.Center.X + c.Radius*float32(math.Cos(float64(angle))),
		Y: c.Center.Y + c.Radius*float32(math.Sin(float64(angle))),
	}
}

// circleRadiusEps bounds the radius difference under which an ellipse
// still counts as a circle.
const circleRadiusEps = 1e-4

// Ellipse is an axis-aligned ellipse defined by center and the two
// half-axis radii. A non-positive radius on either axis makes the
// ellipse empty.
//
// Layout: center (PointF), radiusX (float32), radiusY (float32);
// 16 bytes, no padding.
type Ellipse struct {
	Center  PointF
	RadiusX float32
	RadiusY float32
}

// NewEllipse creates an ellipse from center and half-axis radii.
func NewEllipse(center PointF, radiusX, radiusY float32) Ellipse {
	return Ellipse{Center: center, RadiusX: radiusX, RadiusY: radiusY}
}

// EllipseInRect returns the ellipse inscribed in r, touching all four
// edges.
func EllipseInRect(r RectF) Ellipse {
	return Ellipse{
		Center:  r.Center(),
		RadiusX: r.Width * 0.5,
		RadiusY: r.Height * 0.5,
	}
}

// IsEmpty reports whether either radius is non-positive.
func (e Ellipse) IsEmpty() bool {
	return e.RadiusX <= 0 || e.RadiusY <= 0
}

// IsCircle reports whether both radii are equal within a small
// tolerance.
func (e Ellipse) IsCircle() bool {
	d := e.RadiusX - e.RadiusY
	if d < 0 {
		d = -d
	}
	return d < circleRadiusEps
}

// ToCircle collapses the ellipse to a circle with the mean of the two
// radii.
func (e Ellipse) ToCircle() Circle {
	return Circle{Center: e.Center, Radius: (e.RadiusX + e.RadiusY) * 0.5}
}

// Bounds returns the axis-aligned bounding box.
func (e Ellipse) Bounds() RectF {
	return RectF{
		X:      e.Center.X - e.RadiusX,
		Y:      e.Center.Y - e.RadiusY,
		Width:  e.RadiusX * 2,
		Height: e.RadiusY * 2,
	}
}

// Area returns the enclosed area.
func (e Ellipse) Area() float32 {
	return math.Pi * e.RadiusX * e.RadiusY
}

// ContainsPoint reports whether p lies inside or on the ellipse. An
// empty ellipse contains nothing.
func (e Ellipse) ContainsPoint(p PointF) bool {
	if e.IsEmpty() {
		return false
	}
	dx := (p.X - e.Center.X) / e.RadiusX
	dy := (p.Y - e.Center.Y) / e.RadiusY
	return dx*dx+dy*dy <= 1
}

// Offset returns the ellipse translated by (dx, dy).
func (e Ellipse) Offset(dx, dy float32) Ellipse {
	return Ellipse{Center: e.Center.Offset(dx, dy), RadiusX: e.RadiusX, RadiusY: e.RadiusY}
}
