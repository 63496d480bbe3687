package tapmap

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug overlay colors.
var (
	debugRectColor   = Color{R: 0.2, G: 0.9, B: 0.4, A: 0.9}
	debugCircleColor = Color{R: 0.3, G: 0.6, B: 1.0, A: 0.9}
)

// HitTester resolves screen points against a snapshot of regions.
//
// Regions are scanned linearly in insertion order and the first match wins.
// Region counts are expected to be small and queries only happen on discrete
// pointer events, so there is no spatial index.
type HitTester struct {
	cam     *Camera
	regions []Region
	group   Group

	drawBuf []int // reusable index buffer for zOrder-sorted debug drawing
}

// NewHitTester creates a hit tester that converts through cam.
func NewHitTester(cam *Camera) *HitTester {
	return &HitTester{cam: cam}
}

// Camera returns the camera used for screen-to-world conversion.
func (h *HitTester) Camera() *Camera {
	return h.cam
}

// UpdateRegions replaces the region set and the active waypoint group. The
// regions are copied into the tester's own storage; later changes to the
// caller's slice are not observed.
func (h *HitTester) UpdateRegions(regions []Region, activeGroup Group) {
	h.regions = append(h.regions[:0], regions...)
	h.group = activeGroup
}

// Regions returns the current snapshot. The returned slice MUST NOT be mutated
// and is overwritten by the next UpdateRegions.
func (h *HitTester) Regions() []Region {
	return h.regions
}

// ActiveGroup returns the waypoint group of the current snapshot.
func (h *HitTester) ActiveGroup() Group {
	return h.group
}

// Len returns the number of regions in the snapshot.
func (h *HitTester) Len() int {
	return len(h.regions)
}

// Resolve converts a surface-local screen point to world space and returns
// the first eligible region containing it. Without a camera nothing resolves.
func (h *HitTester) Resolve(sx, sy float64) (Region, bool) {
	i := h.resolveIndex(sx, sy)
	if i < 0 {
		return Region{}, false
	}
	return h.regions[i], true
}

// resolveIndex is Resolve returning the snapshot index of the hit, or -1.
func (h *HitTester) resolveIndex(sx, sy float64) int {
	if h.cam == nil {
		return -1
	}
	wx, wy := h.cam.ScreenToWorld(sx, sy)
	return h.resolveWorldIndex(wx, wy)
}

// ResolveWorld returns the first eligible region containing the world point.
func (h *HitTester) ResolveWorld(wx, wy float64) (Region, bool) {
	i := h.resolveWorldIndex(wx, wy)
	if i < 0 {
		return Region{}, false
	}
	return h.regions[i], true
}

func (h *HitTester) resolveWorldIndex(wx, wy float64) int {
	for i := range h.regions {
		r := &h.regions[i]
		if !r.Eligible(h.group) {
			continue
		}
		if r.Contains(wx, wy) {
			return i
		}
	}
	return -1
}

// Lookup returns the region with the given ID from the snapshot.
func (h *HitTester) Lookup(id string) (Region, bool) {
	for i := range h.regions {
		if h.regions[i].ID == id {
			return h.regions[i], true
		}
	}
	return Region{}, false
}

// debugOrder returns snapshot indices of eligible regions sorted by ZOrder.
// Equal ZOrder keeps insertion order.
func (h *HitTester) debugOrder() []int {
	h.drawBuf = h.drawBuf[:0]
	for i := range h.regions {
		if h.regions[i].Eligible(h.group) {
			h.drawBuf = append(h.drawBuf, i)
		}
	}
	slices.SortStableFunc(h.drawBuf, func(a, b int) int {
		return cmp.Compare(h.regions[a].ZOrder, h.regions[b].ZOrder)
	})
	return h.drawBuf
}

// DrawDebugOverlay strokes the outline of every eligible region and prints
// its ID. It has no effect on Resolve.
func (h *HitTester) DrawDebugOverlay(dst *ebiten.Image) {
	if h.cam == nil || dst == nil {
		return
	}
	zoom := h.cam.Zoom()
	for _, i := range h.debugOrder() {
		r := h.regions[i]
		sx, sy := h.cam.WorldToScreen(r.WorldX, r.WorldY)
		hw := r.WorldWidth / 2 * zoom
		hh := r.WorldHeight / 2 * zoom

		switch r.Shape {
		case ShapeCircle:
			radius := hw
			if hh > radius {
				radius = hh
			}
			vector.StrokeCircle(dst, float32(sx), float32(sy), float32(radius), 1,
				debugCircleColor.toRGBA(), true)
		default:
			vector.StrokeRect(dst, float32(sx-hw), float32(sy-hh), float32(2*hw), float32(2*hh), 1,
				debugRectColor.toRGBA(), true)
		}
		ebitenutil.DebugPrintAt(dst, r.ID, int(sx-hw)+2, int(sy-hh)+2)
	}
}
