package geom

import "testing"

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero", Rect{}, true},
		{"zero width", Rect{W: 0, H: 10}, true},
		{"negative height", Rect{W: 10, H: -1}, true},
		{"drawable", Rect{W: 1, H: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectClamp(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		in, want Point
	}{
		{Point{0, 0}, Point{10, 20}},
		{Point{50, 40}, Point{50, 40}},
		{Point{500, 500}, Point{110, 70}},
		{Point{-5, 60}, Point{10, 60}},
	}

	for _, tt := range tests {
		got := r.Clamp(tt.in)
		if got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if !r.Contains(got) {
			t.Errorf("Clamp(%v) = %v lies outside %v", tt.in, got, r)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0.5, 2, 0); got != 0.5 {
		t.Errorf("Lerp(0.5, 2, 0) = %v, want 0.5", got)
	}
	if got := Lerp(0.5, 2, 1); got != 2 {
		t.Errorf("Lerp(0.5, 2, 1) = %v, want 2", got)
	}
	if got := Lerp(0, 20, 0.5); got != 10 {
		t.Errorf("Lerp(0, 20, 0.5) = %v, want 10", got)
	}
}

func TestTranslate(t *testing.T) {
	poly := Polygon{{0, 0}, {1, 0}, {1, 1}}
	moved := Translate(poly, 5, -2)

	if len(moved) != len(poly) {
		t.Fatalf("Translate changed vertex count: %d", len(moved))
	}
	if moved[2] != (Point{6, -1}) {
		t.Errorf("moved[2] = %v, want {6 -1}", moved[2])
	}
	if poly[0] != (Point{0, 0}) {
		t.Error("Translate mutated its input")
	}
}
