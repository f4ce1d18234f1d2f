package render

import (
	"image/color"

	"chosenoffset.com/crushhouse/internal/core/geom"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpPolygon
	OpEllipse
	OpLine
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpRect:
		return "rect"
	case OpPolygon:
		return "polygon"
	case OpEllipse:
		return "ellipse"
	case OpLine:
		return "line"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Points geom.Polygon // Polygon vertices, or the two line end points
	Rect   geom.Rect    // Rect bounds, or ellipse bounding box
	Width  float64      // Line stroke weight
	Color  color.Color
	Text   string
}

// Recorder is a Surface that stores draw calls instead of drawing them.
// It backs headless tests and frame statistics.
type Recorder struct {
	width, height int
	ops           []Op
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Size returns the configured dimensions.
func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

// Resize changes the reported dimensions.
func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
}

func (r *Recorder) Clear(clr color.Color) {
	r.ops = append(r.ops, Op{Kind: OpClear, Color: clr})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.ops = append(r.ops, Op{Kind: OpRect, Rect: geom.Rect{X: x, Y: y, W: w, H: h}, Color: clr})
}

func (r *Recorder) FillPolygon(points geom.Polygon, clr color.Color) {
	cp := make(geom.Polygon, len(points))
	copy(cp, points)
	r.ops = append(r.ops, Op{Kind: OpPolygon, Points: cp, Color: clr})
}

func (r *Recorder) FillEllipse(cx, cy, rx, ry float64, clr color.Color) {
	r.ops = append(r.ops, Op{Kind: OpEllipse, Rect: geom.Rect{X: cx - rx, Y: cy - ry, W: 2 * rx, H: 2 * ry}, Color: clr})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	r.ops = append(r.ops, Op{Kind: OpLine, Points: geom.Polygon{{X: x0, Y: y0}, {X: x1, Y: y1}}, Width: width, Color: clr})
}

func (r *Recorder) DrawText(text string, x, y int) {
	r.ops = append(r.ops, Op{Kind: OpText, Rect: geom.Rect{X: float64(x), Y: float64(y)}, Text: text})
}

// Ops returns the recorded calls in order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls matching keep.
func (r *Recorder) Filter(keep func(Op) bool) []Op {
	var out []Op
	for _, op := range r.ops {
		if keep(op) {
			out = append(out, op)
		}
	}
	return out
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
