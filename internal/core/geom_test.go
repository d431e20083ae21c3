package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "far apart",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 20, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0.5, 0.5, 1, 1),
			b:        NewRect(1.25, 1.25, 1, 1),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

// Separated rectangles never report an overlap, whatever side they sit on.
func TestRectIntersectsSeparatedProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		a := NewRect(rng.Float64()*200-100, rng.Float64()*200-100, 1+rng.Float64()*50, 1+rng.Float64()*50)
		gap := 0.5 + rng.Float64()*30
		w, h := 1+rng.Float64()*50, 1+rng.Float64()*50

		var b Rect
		switch rng.Intn(4) {
		case 0: // right of a
			b = NewRect(a.Right()+gap, a.Y+rng.Float64()*100-50, w, h)
		case 1: // left of a
			b = NewRect(a.X-gap-w, a.Y+rng.Float64()*100-50, w, h)
		case 2: // below a
			b = NewRect(a.X+rng.Float64()*100-50, a.Bottom()+gap, w, h)
		default: // above a
			b = NewRect(a.X+rng.Float64()*100-50, a.Y-gap-h, w, h)
		}

		if a.Intersects(b) || b.Intersects(a) {
			t.Fatalf("separated rects reported overlap: a=%+v b=%+v", a, b)
		}
	}
}

// Rectangles sharing at least a one-unit square always overlap.
func TestRectIntersectsOverlappingProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 5000; i++ {
		// Pick a shared 1x1 cell, then grow both rects around it.
		px, py := float64(rng.Intn(200)-100), float64(rng.Intn(200)-100)
		a := NewRect(px-float64(rng.Intn(20)), py-float64(rng.Intn(20)), 0, 0)
		a.W = px + 1 - a.X + float64(rng.Intn(20))
		a.H = py + 1 - a.Y + float64(rng.Intn(20))
		b := NewRect(px-float64(rng.Intn(20)), py-float64(rng.Intn(20)), 0, 0)
		b.W = px + 1 - b.X + float64(rng.Intn(20))
		b.H = py + 1 - b.Y + float64(rng.Intn(20))

		if !a.Intersects(b) || !b.Intersects(a) {
			t.Fatalf("overlapping rects reported no overlap: a=%+v b=%+v", a, b)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestCircleOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{"same center", Circle{0, 0, 1}, Circle{0, 0, 1}, true},
		{"overlapping", Circle{0, 0, 5}, Circle{6, 0, 2}, true},
		{"touching", Circle{0, 0, 5}, Circle{7, 0, 2}, false},
		{"apart diagonal", Circle{0, 0, 1}, Circle{2, 2, 1}, false},
		{"inside", Circle{0, 0, 10}, Circle{1, 1, 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleBounds(t *testing.T) {
	b := Circle{X: 10, Y: 5, R: 2}.Bounds()
	if b != NewRect(8, 3, 4, 4) {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestFinite(t *testing.T) {
	if !Finite(1.5) {
		t.Error("1.5 should be finite")
	}
	if Finite(math.NaN()) {
		t.Error("NaN should not be finite")
	}
	if Finite(math.Inf(-1)) {
		t.Error("-Inf should not be finite")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
