package gfx

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"add", Pt(3, 4).Add(Pt(1, -2)), Pt(4, 2)},
		{"sub", Pt(3, 4).Sub(Pt(1, -2)), Pt(2, 6)},
		{"neg", Pt(3, -4).Neg(), Pt(-3, 4)},
		{"mul", Pt(3, -4).Mul(2), Pt(6, -8)},
		{"mul zero", Pt(3, 4).Mul(0), Pt(0, 0)},
		{"offset", Pt(10, 20).Offset(-5, 5), Pt(5, 25)},
		{"midpoint", Pt(0, 0).Midpoint(Pt(10, 6)), Pt(5, 3)},
		{"midpoint odd", Pt(0, 0).Midpoint(Pt(3, 3)), Pt(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestPointDistanceSquared(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want int64
	}{
		{"same point", Pt(5, 5), Pt(5, 5), 0},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 25},
		{"negative coords", Pt(-3, -4), Pt(0, 0), 25},
		{"no int32 overflow", Pt(-1000000000, 0), Pt(1000000000, 0), 4000000000000000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.DistanceSquared(tt.q)
			if got != tt.want {
				t.Errorf("DistanceSquared = %d, want %d", got, tt.want)
			}
			if got != tt.q.DistanceSquared(tt.p) {
				t.Errorf("DistanceSquared not symmetric")
			}
		})
	}
}

func TestPointFDistance(t *testing.T) {
	got := PtF(1, 2).Distance(PtF(4, 6))
	if math.Abs(float64(got)-5) > 1e-6 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointFLerp(t *testing.T) {
	a := PtF(0, 0)
	b := PtF(10, 20)
	tests := []struct {
		name string
		t    float32
		want PointF
	}{
		{"t=0", 0, a},
		{"t=1", 1, b},
		{"t=0.5", 0.5, PtF(5, 10)},
		{"extrapolate below", -1, PtF(-10, -20)},
		{"extrapolate above", 2, PtF(20, 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Lerp(b, tt.t)
			if !pointFNear(got, tt.want, 1e-6) {
				t.Errorf("Lerp(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestPointFNormalize(t *testing.T) {
	tests := []struct {
		name string
		p    PointF
		want PointF
	}{
		{"unit x", PtF(5, 0), PtF(1, 0)},
		{"unit y", PtF(0, -3), PtF(0, -1)},
		{"diagonal", PtF(3, 4), PtF(0.6, 0.8)},
		{"zero stays zero", PtF(0, 0), PtF(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Normalize()
			if !pointFNear(got, tt.want, 1e-6) {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPointFRounding(t *testing.T) {
	tests := []struct {
		name  string
		p     PointF
		round Point
		floor Point
		ceil  Point
	}{
		{"positive", PtF(1.4, 2.6), Pt(1, 3), Pt(1, 2), Pt(2, 3)},
		{"negative", PtF(-1.4, -2.6), Pt(-1, -3), Pt(-2, -3), Pt(-1, -2)},
		{"half", PtF(0.5, 1.5), Pt(1, 2), Pt(0, 1), Pt(1, 2)},
		{"integral", PtF(3, -7), Pt(3, -7), Pt(3, -7), Pt(3, -7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Round(); got != tt.round {
				t.Errorf("Round() = %+v, want %+v", got, tt.round)
			}
			if got := tt.p.Floor(); got != tt.floor {
				t.Errorf("Floor() = %+v, want %+v", got, tt.floor)
			}
			if got := tt.p.Ceil(); got != tt.ceil {
				t.Errorf("Ceil() = %+v, want %+v", got, tt.ceil)
			}
		})
	}
}

func TestPointFDotCross(t *testing.T) {
	a := PtF(1, 2)
	b := PtF(3, 4)
	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := a.Cross(b); got != -2 {
		t.Errorf("Cross = %v, want -2", got)
	}
	if got := a.Cross(a); got != 0 {
		t.Errorf("Cross with self = %v, want 0", got)
	}
}

func pointFNear(a, b PointF, eps float64) bool {
	return math.Abs(float64(a.X-b.X)) <= eps && math.Abs(float64(a.Y-b.Y)) <= eps
}
