package scene

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format selects the output encoding of a ChartSurface.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// FormatFromPath derives the format from a file extension.
func FormatFromPath(p string) (Format, error) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported output %q (want .png or .svg)", p)
	}
}

// ChartSurface is a Surface backed by a go-chart renderer.
type ChartSurface struct {
	r      chart.Renderer
	format Format
	w, h   int
}

// NewChartSurface creates a w×h surface encoding to format.
func NewChartSurface(w, h int, format Format) (*ChartSurface, error) {
	var provider chart.RendererProvider
	switch format {
	case FormatPNG:
		provider = chart.PNG
	case FormatSVG:
		provider = chart.SVG
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	r, err := provider(w, h)
	if err != nil {
		return nil, fmt.Errorf("create %s renderer: %w", format, err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load default font: %w", err)
	}
	r.SetFont(font)
	s := &ChartSurface{r: r, format: format, w: w, h: h}
	s.Clear(Rect{W: float64(w), H: float64(h)}, drawing.ColorWhite)
	return s, nil
}

func (s *ChartSurface) Size() (float64, float64) { return float64(s.w), float64(s.h) }

func (s *ChartSurface) Clear(r Rect, fill drawing.Color) {
	s.Rect(r, Style{Fill: fill})
}

func (s *ChartSurface) Rect(r Rect, st Style) {
	x0, y0 := px(r.X), px(r.Y)
	x1, y1 := px(r.X+r.W), px(r.Y+r.H)
	s.r.MoveTo(x0, y0)
	s.r.LineTo(x1, y0)
	s.r.LineTo(x1, y1)
	s.r.LineTo(x0, y1)
	s.r.LineTo(x0, y0)
	s.r.Close()
	s.paint(st)
}

func (s *ChartSurface) Circle(cx, cy, radius float64, st Style) {
	s.r.Circle(radius, px(cx), px(cy))
	s.paint(st)
}

func (s *ChartSurface) Line(x1, y1, x2, y2 float64, st Style) {
	s.r.SetStrokeColor(st.Stroke)
	s.r.SetStrokeWidth(st.StrokeWidth)
	s.r.MoveTo(px(x1), px(y1))
	s.r.LineTo(px(x2), px(y2))
	s.r.Stroke()
}

func (s *ChartSurface) Text(x, y float64, body string, ts TextStyle) {
	if body == "" {
		return
	}
	size := ts.Size
	if size <= 0 {
		size = 10
	}
	s.r.SetFontSize(size)
	s.r.SetFontColor(ts.Color)
	if ts.Rotation != 0 {
		s.r.SetTextRotation(ts.Rotation)
		defer s.r.ClearTextRotation()
	}
	// Anchors shift the start point back along the text direction.
	shift := 0.0
	switch ts.Anchor {
	case AnchorMiddle:
		shift = float64(s.r.MeasureText(body).Width()) / 2
	case AnchorEnd:
		shift = float64(s.r.MeasureText(body).Width())
	}
	x -= shift * math.Cos(ts.Rotation)
	y -= shift * math.Sin(ts.Rotation)
	s.r.Text(body, px(x), px(y))
}

// paint fills, strokes or both depending on the style.
func (s *ChartSurface) paint(st Style) {
	s.r.SetFillColor(st.Fill)
	if st.StrokeWidth > 0 {
		s.r.SetStrokeColor(st.Stroke)
		s.r.SetStrokeWidth(st.StrokeWidth)
		s.r.FillStroke()
		return
	}
	s.r.SetStrokeColor(drawing.ColorTransparent)
	s.r.SetStrokeWidth(0)
	s.r.Fill()
}

// Save encodes the surface.
func (s *ChartSurface) Save(w io.Writer) error {
	return s.r.Save(w)
}

// Image decodes a PNG surface into an image for on-screen display.
func (s *ChartSurface) Image() (image.Image, error) {
	if s.format != FormatPNG {
		return nil, fmt.Errorf("image of a %s surface", s.format)
	}
	var buf bytes.Buffer
	if err := s.Save(&buf); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

func px(v float64) int { return int(math.Round(v)) }
