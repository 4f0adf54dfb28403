package main

import (
	"image/color"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/bebeshannu/datavis-a2/cmd/carviewer/uihelpers"
)

// markOverlay sits on top of the plot image. It turns taps into selections and shows the
// hovered record's tooltip next to the cursor.
type markOverlay struct {
	widget.BaseWidget
	v        *viewer
	mouse    fyne.Position
	hovering bool
	hovered  int
}

func newMarkOverlay(v *viewer) *markOverlay {
	o := &markOverlay{v: v, hovered: -1}
	o.ExtendBaseWidget(o)
	return o
}

// markAt returns the record under a point in overlay coordinates.
func (o *markOverlay) markAt(pos fyne.Position) (int, bool) {
	v := o.v
	if v == nil || v.chart == nil || v.plot == nil || v.plot.Image == nil {
		return -1, false
	}
	b := v.plot.Image.Bounds()
	cw, ch := v.chart.Size()
	size := o.Size()
	x, y, ok := uihelpers.ViewToCanvas(pos.X, pos.Y, float32(b.Dx()), float32(b.Dy()),
		size.Width, size.Height, float32(cw), float32(ch))
	if !ok {
		return -1, false
	}
	return v.chart.HitTest(x, y)
}

func (o *markOverlay) Tapped(ev *fyne.PointEvent) {
	if i, ok := o.markAt(ev.Position); ok {
		o.v.selectRecord(i)
	}
}

func (o *markOverlay) MouseMoved(ev *desktop.MouseEvent) {
	o.hovering = true
	o.mouse = ev.Position
	o.hovered, _ = o.markAt(ev.Position)
	o.Refresh()
}

func (o *markOverlay) MouseIn(ev *desktop.MouseEvent) { o.hovering = true; o.Refresh() }
func (o *markOverlay) MouseOut()                      { o.hovering = false; o.hovered = -1; o.Refresh() }

func (o *markOverlay) CreateRenderer() fyne.WidgetRenderer {
	// transparent background so the whole area receives pointer events
	bg := canvas.NewRectangle(color.RGBA{})
	labelBG := canvas.NewRectangle(color.RGBA{R: 0, G: 0, B: 0, A: 190})
	label := canvas.NewText("", color.White)
	label.TextSize = 12
	label2 := canvas.NewText("", color.White)
	label2.TextSize = 12
	label3 := canvas.NewText("", color.White)
	label3.TextSize = 12
	lines := []*canvas.Text{label, label2, label3}
	objs := []fyne.CanvasObject{bg, labelBG, label, label2, label3}
	return &overlayRenderer{o: o, bg: bg, labelBG: labelBG, lines: lines, objs: objs}
}

type overlayRenderer struct {
	o       *markOverlay
	bg      *canvas.Rectangle
	labelBG *canvas.Rectangle
	lines   []*canvas.Text
	objs    []fyne.CanvasObject
}

func (r *overlayRenderer) Destroy()                     {}
func (r *overlayRenderer) MinSize() fyne.Size           { return fyne.NewSize(1, 1) }
func (r *overlayRenderer) Objects() []fyne.CanvasObject { return r.objs }
func (r *overlayRenderer) Refresh()                     { r.Layout(r.o.Size()) }

func (r *overlayRenderer) hide() {
	r.labelBG.Resize(fyne.NewSize(0, 0))
	r.labelBG.Move(fyne.NewPos(-1000, -1000))
	for _, l := range r.lines {
		l.Text = ""
		l.Move(fyne.NewPos(-1000, -1000))
	}
}

func (r *overlayRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	o := r.o
	if !o.hovering || o.hovered < 0 || o.v == nil || o.v.chart == nil {
		r.hide()
		return
	}
	parts := splitLines(o.v.chart.Tooltip(o.hovered), len(r.lines))
	var w, h float32
	for i, l := range r.lines {
		l.Text = parts[i]
		ms := l.MinSize()
		if ms.Width > w {
			w = ms.Width
		}
		h += ms.Height
	}
	const pad = 4
	x := o.mouse.X + 12
	y := o.mouse.Y + 12
	// keep the tooltip inside the overlay
	if x+w+2*pad > size.Width {
		x = o.mouse.X - w - 2*pad - 12
	}
	if y+h+2*pad > size.Height {
		y = o.mouse.Y - h - 2*pad - 12
	}
	r.labelBG.Move(fyne.NewPos(x, y))
	r.labelBG.Resize(fyne.NewSize(w+2*pad, h+2*pad))
	cy := y + pad
	for _, l := range r.lines {
		l.Move(fyne.NewPos(x+pad, cy))
		cy += l.MinSize().Height
		l.Refresh()
	}
	r.labelBG.Refresh()
}

// splitLines splits s on newlines into exactly n parts, padding with empty strings.
func splitLines(s string, n int) []string {
	out := make([]string, n)
	if s == "" {
		return out
	}
	copy(out, strings.SplitN(s, "\n", n))
	return out
}

var (
	_ desktop.Hoverable = (*markOverlay)(nil)
	_ fyne.Tappable     = (*markOverlay)(nil)
)
