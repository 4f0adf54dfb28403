package scene

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type op struct {
	kind  string // clear, rect, circle, line, text
	x, y  float64
	r     float64
	rect  Rect
	body  string
	style Style
	text  TextStyle
}

// recorder is a Surface that keeps every call for inspection.
type recorder struct {
	w, h float64
	ops  []op
}

func newRecorder(w, h float64) *recorder { return &recorder{w: w, h: h} }

func (r *recorder) Size() (float64, float64) { return r.w, r.h }

func (r *recorder) Clear(box Rect, fill drawing.Color) {
	r.ops = append(r.ops, op{kind: "clear", rect: box, style: Style{Fill: fill}})
}

func (r *recorder) Rect(box Rect, st Style) {
	r.ops = append(r.ops, op{kind: "rect", rect: box, style: st})
}

func (r *recorder) Circle(cx, cy, radius float64, st Style) {
	r.ops = append(r.ops, op{kind: "circle", x: cx, y: cy, r: radius, style: st})
}

func (r *recorder) Line(x1, y1, x2, y2 float64, st Style) {
	r.ops = append(r.ops, op{kind: "line", x: x1, y: y1, rect: Rect{X: x2, Y: y2}, style: st})
}

func (r *recorder) Text(x, y float64, body string, ts TextStyle) {
	r.ops = append(r.ops, op{kind: "text", x: x, y: y, body: body, text: ts})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) of(kind string) []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func (r *recorder) hasText(body string) bool {
	for _, o := range r.ops {
		if o.kind == "text" && o.body == body {
			return true
		}
	}
	return false
}

// reset drops everything recorded so far.
func (r *recorder) reset() { r.ops = r.ops[:0] }
