package gfx

import "math"

// Transform2D is a 2D affine transformation matrix.
// It stores the six meaningful scalars of the 3x3 matrix
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0  1  |
//
// representing the transformation:
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty
//
// Composition is associative but not commutative: the order operations
// are chained is the order they apply.
//
// Layout: a, b, c, d, tx, ty (float32); 24 bytes, no padding.
type Transform2D struct {
	A, B, C, D, Tx, Ty float32
}

// Identity returns the identity transformation, the neutral element of
// composition.
func Identity() Transform2D {
	return Transform2D{A: 1, D: 1}
}

// Translate creates a translation transform.
func Translate(tx, ty float32) Transform2D {
	return Transform2D{A: 1, D: 1, Tx: tx, Ty: ty}
}

// Scale creates a uniform scaling transform.
func Scale(s float32) Transform2D {
	return ScaleXY(s, s)
}

// ScaleXY creates a non-uniform scaling transform.
func ScaleXY(sx, sy float32) Transform2D {
	return Transform2D{A: sx, D: sy}
}

// Rotate creates a rotation about the origin (angle in radians,
// counterclockwise).
func Rotate(angle float32) Transform2D {
	sin, cos := math.Sincos(float64(angle))
	return Transform2D{
		A: float32(cos), B: float32(sin),
		C: float32(-sin), D: float32(cos),
	}
}

// RotateDegrees creates a rotation about the origin (angle in degrees).
func RotateDegrees(degrees float32) Transform2D {
	return Rotate(degrees * math.Pi / 180)
}

// Skew creates a skew transform from the two skew angles in radians.
func Skew(skewX, skewY float32) Transform2D {
	return Transform2D{
		A: 1, B: float32(math.Tan(float64(skewY))),
		C: float32(math.Tan(float64(skewX))), D: 1,
	}
}

// IsIdentity reports whether the transform is the identity.
func (t Transform2D) IsIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 && t.D == 1 && t.Tx == 0 && t.Ty == 0
}

// IsTranslationOnly reports whether the transform only translates.
func (t Transform2D) IsTranslationOnly() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 && t.D == 1
}

// IsScaleTranslation reports whether the transform has no rotation or
// skew component.
func (t Transform2D) IsScaleTranslation() bool {
	return t.B == 0 && t.C == 0
}

// Then composes on the right: the result applies t first, then other.
// For all points p, t.Then(other).TransformPoint(p) equals
// other.TransformPoint(t.TransformPoint(p)). The matrices accumulate;
// no intermediate rounding occurs between chained operations.
func (t Transform2D) Then(other Transform2D) Transform2D {
	return Transform2D{
		A:  t.A*other.A + t.B*other.C,
		B:  t.A*other.B + t.B*other.D,
		C:  t.C*other.A + t.D*other.C,
		D:  t.C*other.B + t.D*other.D,
		Tx: t.Tx*other.A + t.Ty*other.C + other.Tx,
		Ty: t.Tx*other.B + t.Ty*other.D + other.Ty,
	}
}

// Pre composes on the left: the result applies other first, then t.
func (t Transform2D) Pre(other Transform2D) Transform2D {
	return other.Then(t)
}

// ThenTranslate appends a translation in the output space of t.
func (t Transform2D) ThenTranslate(tx, ty float32) Transform2D {
	return Transform2D{A: t.A, B: t.B, C: t.C, D: t.D, Tx: t.Tx + tx, Ty: t.Ty + ty}
}

// ThenScale appends a scale in the output space of t.
func (t Transform2D) ThenScale(sx, sy float32) Transform2D {
	return Transform2D{
		A: t.A * sx, B: t.B * sy,
		C: t.C * sx, D: t.D * sy,
		Tx: t.Tx * sx, Ty: t.Ty * sy,
	}
}

// ThenRotate appends a rotation about the origin in the output space
// of t.
func (t Transform2D) ThenRotate(angle float32) Transform2D {
	return t.Then(Rotate(angle))
}

// Determinant returns the determinant of the linear part.
func (t Transform2D) Determinant() float32 {
	return t.A*t.D - t.B*t.C
}

// Inverse returns the inverse transform, or ErrSingularTransform when
// the determinant is zero.
func (t Transform2D) Inverse() (Transform2D, error) {
	det := t.Determinant()
	if det == 0 {
		return Transform2D{}, ErrSingularTransform
	}
	invDet := 1 / det
	return Transform2D{
		A:  t.D * invDet,
		B:  -t.B * invDet,
		C:  -t.C * invDet,
		D:  t.A * invDet,
		Tx: (t.C*t.Ty - t.D*t.Tx) * invDet,
		Ty: (t.B*t.Tx - t.A*t.Ty) * invDet,
	}, nil
}

// TransformPoint applies the transform to a point.
func (t Transform2D) TransformPoint(p PointF) PointF {
	return PointF{
		X: t.A*p.X + t.C*p.Y + t.Tx,
		Y: t.B*p.X + t.D*p.Y + t.Ty,
	}
}

// TransformPointI applies the transform to an integer point, rounding
// the result to the nearest integer coordinates.
func (t Transform2D) TransformPointI(p Point) Point {
	return t.TransformPoint(p.ToFloat()).Round()
}

// TransformVector applies only the linear part of the transform,
// ignoring translation.
func (t Transform2D) TransformVector(p PointF) PointF {
	return PointF{
		X: t.A*p.X + t.C*p.Y,
		Y: t.B*p.X + t.D*p.Y,
	}
}

// TransformRect transforms a rectangle and returns the axis-aligned
// bounding box of the result. Under rotation or skew the four corners
// are transformed individually, since their images leave the original
// axis alignment.
func (t Transform2D) TransformRect(r RectF) RectF {
	if t.IsScaleTranslation() && t.A >= 0 && t.D >= 0 {
		return RectF{
			X:      r.X*t.A + t.Tx,
			Y:      r.Y*t.D + t.Ty,
			Width:  r.Width * t.A,
			Height: r.Height * t.D,
		}
	}
	p1 := t.TransformPoint(PointF{X: r.X, Y: r.Y})
	p2 := t.TransformPoint(PointF{X: r.Right(), Y: r.Y})
	p3 := t.TransformPoint(PointF{X: r.X, Y: r.Bottom()})
	p4 := t.TransformPoint(PointF{X: r.Right(), Y: r.Bottom()})

	minX := min(p1.X, p2.X, p3.X, p4.X)
	minY := min(p1.Y, p2.Y, p3.Y, p4.Y)
	maxX := max(p1.X, p2.X, p3.X, p4.X)
	maxY := max(p1.Y, p2.Y, p3.Y, p4.Y)
	return RectF{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
