package render

import (
	"image/color"
	"testing"

	"chosenoffset.com/crushhouse/internal/core/geom"
)

func TestRecorderCountsCalls(t *testing.T) {
	r := NewRecorder(640, 480)

	r.Clear(color.Black)
	r.FillRect(0, 0, 10, 10, color.White)
	r.FillPolygon(geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, color.White)
	r.StrokeLine(0, 0, 5, 5, 1, color.Black)
	r.StrokeLine(5, 5, 9, 9, 2, color.Black)
	r.FillEllipse(3, 3, 2, 1, color.White)
	r.DrawText("hello", 1, 2)

	tests := []struct {
		kind OpKind
		want int
	}{
		{OpClear, 1},
		{OpRect, 1},
		{OpPolygon, 1},
		{OpLine, 2},
		{OpEllipse, 1},
		{OpText, 1},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := r.Count(tt.kind); got != tt.want {
				t.Errorf("Count(%s) = %d, want %d", tt.kind, got, tt.want)
			}
		})
	}

	w, h := r.Size()
	if w != 640 || h != 480 {
		t.Errorf("Size() = %dx%d, want 640x480", w, h)
	}
}

func TestRecorderCopiesPolygons(t *testing.T) {
	r := NewRecorder(10, 10)
	poly := geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	r.FillPolygon(poly, color.White)

	poly[0] = geom.Point{X: 99, Y: 99}
	if r.Ops()[0].Points[0] == poly[0] {
		t.Error("recorder kept a reference to the caller's polygon")
	}
}

func TestRecorderEllipseBounds(t *testing.T) {
	r := NewRecorder(10, 10)
	r.FillEllipse(10, 20, 3, 4, color.White)

	got := r.Ops()[0].Rect
	want := geom.Rect{X: 7, Y: 16, W: 6, H: 8}
	if got != want {
		t.Errorf("ellipse bounds = %+v, want %+v", got, want)
	}
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder(10, 10)
	r.Clear(color.Black)
	r.Reset()
	if len(r.Ops()) != 0 {
		t.Errorf("Reset left %d ops", len(r.Ops()))
	}
}

func TestEllipsePolygon(t *testing.T) {
	poly := EllipsePolygon(50, 50, 10, 5)
	if len(poly) < 8 {
		t.Fatalf("ellipse approximated with only %d vertices", len(poly))
	}
	for i, p := range poly {
		dx := (p.X - 50) / 10
		dy := (p.Y - 50) / 5
		if d := dx*dx + dy*dy; d < 0.999 || d > 1.001 {
			t.Errorf("vertex %d = %v is off the ellipse (%.4f)", i, p, d)
		}
	}
}
