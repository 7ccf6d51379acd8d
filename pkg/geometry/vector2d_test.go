package geometry

import (
	"math"
	"testing"
)

func TestNewVectorPolar(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		theta  float64
		want   Vector2D
	}{
		{"Zero radius", 0, 0, Vector2D{0, 0}},
		{"Zero angle (X-axis)", 10, 0, Vector2D{10, 0}},
		{"90 degrees (Y-axis)", 10, math.Pi / 2, Vector2D{0, 10}},
		{"180 degrees (Negative X)", 10, math.Pi, Vector2D{-10, 0}},
		{"45 degrees", math.Sqrt(2), math.Pi / 4, Vector2D{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewVectorPolar(tt.radius, tt.theta)
			if !got.Eq(tt.want) {
				t.Errorf("NewVectorPolar(%v, %v) = %v; want %v", tt.radius, tt.theta, got, tt.want)
			}
		})
	}
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		want := Vector2D{4, 6}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector2D{-2, -2}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector2D{2, 4}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("Dot", func(t *testing.T) {
		want := 11.0
		if got := v1.Dot(v2); math.Abs(got-want) > Epsilon {
			t.Errorf("%v.Dot(%v) = %v; want %v", v1, v2, got, want)
		}
	})
}

func TestVector_Length(t *testing.T) {
	v := Vector2D{3, 4}

	if got := v.Len(); math.Abs(got-5) > Epsilon {
		t.Errorf("Len() = %v; want 5", got)
	}
	if got := v.LenSqr(); math.Abs(got-25) > Epsilon {
		t.Errorf("LenSqr() = %v; want 25", got)
	}
	if got := v.DistanceTo(Vector2D{0, 0}); math.Abs(got-5) > Epsilon {
		t.Errorf("DistanceTo(origin) = %v; want 5", got)
	}
	if got := v.DistanceSquaredTo(Vector2D{3, 0}); math.Abs(got-16) > Epsilon {
		t.Errorf("DistanceSquaredTo((3,0)) = %v; want 16", got)
	}
}

func TestVector_Normalize(t *testing.T) {
	t.Run("NonZero", func(t *testing.T) {
		v := Vector2D{3, 4}.Normalize()
		if math.Abs(v.Len()-1) > Epsilon {
			t.Errorf("Normalize() length = %v; want 1", v.Len())
		}
		if !v.Eq(Vector2D{0.6, 0.8}) {
			t.Errorf("Normalize() = %v; want (0.6, 0.8)", v)
		}
	})

	t.Run("ZeroVector", func(t *testing.T) {
		// The zero guard: normalizing a zero vector must yield zero,
		// not NaN.
		v := Vector2D{}.Normalize()
		if !v.Eq(Vector2D{}) {
			t.Errorf("Normalize() of zero vector = %v; want zero", v)
		}
		if math.IsNaN(v.X) || math.IsNaN(v.Y) {
			t.Errorf("Normalize() of zero vector produced NaN: %v", v)
		}
	})

	t.Run("TinyVector", func(t *testing.T) {
		v := Vector2D{1e-12, 1e-12}.Normalize()
		if !v.Eq(Vector2D{}) {
			t.Errorf("Normalize() of sub-epsilon vector = %v; want zero", v)
		}
	})
}

func TestVector_Limit(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		max  float64
		want float64 // expected length after Limit
	}{
		{"Over limit", Vector2D{3, 4}, 2, 2},
		{"Under limit", Vector2D{1, 0}, 2, 1},
		{"At limit", Vector2D{0, 5}, 5, 5},
		{"Zero vector", Vector2D{}, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Limit(tt.max)
			if math.Abs(got.Len()-tt.want) > Epsilon {
				t.Errorf("%v.Limit(%v) length = %v; want %v", tt.v, tt.max, got.Len(), tt.want)
			}
			// Direction must be preserved for non-zero input.
			if tt.v.LenSqr() > 0 {
				if got.Normalize().Dot(tt.v.Normalize()) < 1-Epsilon {
					t.Errorf("%v.Limit(%v) changed direction: %v", tt.v, tt.max, got)
				}
			}
		})
	}
}

func TestVector_Angle(t *testing.T) {
	tests := []struct {
		v    Vector2D
		want float64
	}{
		{Vector2D{1, 0}, 0},
		{Vector2D{0, 1}, math.Pi / 2},
		{Vector2D{-1, 0}, math.Pi},
		{Vector2D{1, 1}, math.Pi / 4},
	}

	for _, tt := range tests {
		if got := tt.v.Angle(); math.Abs(got-tt.want) > Epsilon {
			t.Errorf("%v.Angle() = %v; want %v", tt.v, got, tt.want)
		}
	}
}
