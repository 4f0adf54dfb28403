package scene

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Blank returns a plain white w×h image.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// StampMessage draws text centered on a copy of img inside a dark box. Multi-line text
// is split on newlines.
func StampMessage(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	lines := strings.Split(strings.TrimSpace(text), "\n")
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.White), Face: face}
	tw := 0
	for _, l := range lines {
		if w := dr.MeasureString(l).Ceil(); w > tw {
			tw = w
		}
	}
	lh := face.Metrics().Height.Ceil()
	th := lh * len(lines)
	pad := 8
	cx, cy := (b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2
	box := image.Rect(cx-tw/2-pad, cy-th/2-pad, cx+tw/2+pad, cy+th/2+pad)
	draw.Draw(rgba, box, image.NewUniform(color.RGBA{R: 40, G: 40, B: 40, A: 220}), image.Point{}, draw.Over)

	ascent := face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		x := cx - dr.MeasureString(l).Ceil()/2
		y := cy - th/2 + i*lh + ascent
		dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
		dr.DrawString(l)
	}
	return rgba
}
