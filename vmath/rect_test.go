package vmath

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 5, H: 2}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"overlap right", Rect{X: 14, Y: 10, W: 5, H: 2}, true},
		{"touching right edge", Rect{X: 15, Y: 10, W: 5, H: 2}, false},
		{"touching bottom edge", Rect{X: 10, Y: 12, W: 5, H: 2}, false},
		{"far left", Rect{X: 0, Y: 10, W: 3, H: 2}, false},
		{"contained", Rect{X: 11, Y: 10.5, W: 1, H: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, expected %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects is not symmetric: got %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRectInflate(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 2}.Inflate(2, 1)
	want := Rect{X: 8, Y: 9, W: 9, H: 4}
	if r != want {
		t.Errorf("Expected %+v, got %+v", want, r)
	}

	// Touching boxes collide once inflated
	a := Rect{X: 0, Y: 0, W: 3, H: 1}
	b := Rect{X: 3, Y: 0, W: 3, H: 1}
	if a.Intersects(b) {
		t.Fatal("Touching boxes should not intersect before inflation")
	}
	if !a.Inflate(1, 0).Intersects(b.Inflate(1, 0)) {
		t.Error("Inflated boxes should intersect")
	}
}

func TestVec2Arithmetic(t *testing.T) {
	v := V(1, 2).Add(V(3, 4)).Scale(0.5)
	if v != V(2, 3) {
		t.Errorf("Expected (2,3), got %+v", v)
	}
	if d := V(5, 1).Sub(V(2, 3)); d != V(3, -2) {
		t.Errorf("Expected (3,-2), got %+v", d)
	}
	x, y := V(1.6, -0.4).Cell()
	if x != 1 || y != -1 {
		t.Errorf("Expected cell (1,-1), got (%d,%d)", x, y)
	}
}
