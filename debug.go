package tapmap

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugGridColor = Color{R: 1, G: 1, B: 1, A: 0.15}

// maxGridLines caps the number of lines per axis so a tiny spacing at a low
// zoom cannot stall the frame.
const maxGridLines = 512

// gridLines returns the world coordinates of grid lines spaced by spacing
// that fall within [lo, hi].
func gridLines(lo, hi, spacing float64, buf []float64) []float64 {
	buf = buf[:0]
	if !(spacing > 0) {
		return buf
	}
	for v := math.Ceil(lo/spacing) * spacing; v <= hi && len(buf) < maxGridLines; v += spacing {
		buf = append(buf, v)
	}
	return buf
}

// DrawDebugGrid draws world-space grid lines every spacing units over the
// area visible through cam.
func DrawDebugGrid(dst *ebiten.Image, cam *Camera, spacing float64) {
	if dst == nil || cam == nil {
		return
	}
	b := cam.WorldBounds()
	w, h := cam.Viewport()
	clr := debugGridColor.toRGBA()

	buf := gridLines(b.MinX, b.MaxX, spacing, nil)
	for _, x := range buf {
		sx, _ := cam.WorldToScreen(x, 0)
		vector.StrokeLine(dst, float32(sx), 0, float32(sx), float32(h), 1, clr, false)
	}
	for _, y := range gridLines(b.MinY, b.MaxY, spacing, buf) {
		_, sy := cam.WorldToScreen(0, y)
		vector.StrokeLine(dst, 0, float32(sy), float32(w), float32(sy), 1, clr, false)
	}
}

// DrawDebugHUD prints frame rates, the camera state and the controller
// snapshot in the top-left corner of dst.
func DrawDebugHUD(dst *ebiten.Image, c *ModeController) {
	if dst == nil || c == nil {
		return
	}
	x, y, zoom := c.Camera().Position()
	ebitenutil.DebugPrint(dst, fmt.Sprintf("FPS: %.1f TPS: %.1f\ncam: (%.1f, %.1f) x%.3f\n%s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), x, y, zoom, c.Snapshot()))
}
