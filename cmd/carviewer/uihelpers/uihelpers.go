package uihelpers

import "path/filepath"

// ComputeChartDimensions returns the on-screen minimum size for the plot image given the
// window width, keeping the canvas aspect ratio. Width is clamped to [480,1400].
func ComputeChartDimensions(winW, canvasW, canvasH float32) (float32, float32) {
	w := winW - 300 // detail panel column
	if w < 480 {
		w = 480
	}
	if w > 1400 {
		w = 1400
	}
	if canvasW <= 0 || canvasH <= 0 {
		return w, w * 0.33
	}
	return w, w * canvasH / canvasW
}

// ContainRect computes where an imgW×imgH image lands inside a viewW×viewH box when drawn
// with contain fitting: the drawn origin, drawn size and the uniform scale factor.
func ContainRect(imgW, imgH, viewW, viewH float32) (x, y, w, h, scale float32) {
	if imgW <= 0 || imgH <= 0 {
		return 0, 0, viewW, viewH, 1
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	w = imgW * scale
	h = imgH * scale
	x = (viewW - w) / 2
	y = (viewH - h) / 2
	return x, y, w, h, scale
}

// ViewToCanvas converts a point in view coordinates to logical canvas units. The image is
// imgW×imgH pixels and shows a canvasW×canvasH logical canvas. ok is false when the point
// falls in the letterbox outside the drawn image.
func ViewToCanvas(px, py, imgW, imgH, viewW, viewH, canvasW, canvasH float32) (cx, cy float64, ok bool) {
	x, y, w, h, scale := ContainRect(imgW, imgH, viewW, viewH)
	if px < x || px > x+w || py < y || py > y+h || scale <= 0 {
		return 0, 0, false
	}
	ix := (px - x) / scale
	iy := (py - y) / scale
	if imgW > 0 && imgH > 0 {
		ix *= canvasW / imgW
		iy *= canvasH / imgH
	}
	return float64(ix), float64(iy), true
}

// TruncatePath shortens p to about n characters, always keeping the base name.
func TruncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
