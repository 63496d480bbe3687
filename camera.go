package tapmap

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps world coordinates onto the render surface: a focus point, a
// zoom factor and a viewport size. The forward matrix and its inverse are
// cached and recomputed lazily, only after a setter actually changed state.
//
// Camera is not safe for concurrent use.
type Camera struct {
	x, y      float64
	zoom      float64
	rotation  float64 // reserved, always 0
	viewportW float64
	viewportH float64

	boundsEnabled bool
	bounds        Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
	zoomTween   *gween.Tween
}

// NewCamera creates a camera focused on the world origin at zoom 1.
func NewCamera(viewportW, viewportH float64) *Camera {
	return &Camera{
		zoom:      1.0,
		viewportW: viewportW,
		viewportH: viewportH,
		dirty:     true,
	}
}

// SetViewport updates the viewport size. Unchanged values are a no-op.
func (c *Camera) SetViewport(w, h float64) {
	if w == c.viewportW && h == c.viewportH {
		return
	}
	c.viewportW = w
	c.viewportH = h
	c.dirty = true
	if c.boundsEnabled {
		c.clampToBounds()
	}
}

// Viewport returns the viewport size.
func (c *Camera) Viewport() (w, h float64) {
	return c.viewportW, c.viewportH
}

// SetPosition sets the world-space focus point and zoom. Unchanged values are
// a no-op. A zoom that is not finite and positive is rejected with
// ErrInvalidZoom and leaves the camera untouched.
func (c *Camera) SetPosition(x, y, zoom float64) error {
	if !(zoom > 0) || math.IsInf(zoom, 1) {
		Logger().Warn("tapmap: rejected camera zoom", "zoom", zoom)
		return fmt.Errorf("tapmap: set position: %w", ErrInvalidZoom)
	}
	c.setPosition(x, y, zoom)
	if c.boundsEnabled {
		c.clampToBounds()
	}
	return nil
}

// setPosition assigns without validation or clamping.
func (c *Camera) setPosition(x, y, zoom float64) {
	if x == c.x && y == c.y && zoom == c.zoom {
		return
	}
	c.x, c.y, c.zoom = x, y, zoom
	c.dirty = true
}

// Position returns the focus point and zoom.
func (c *Camera) Position() (x, y, zoom float64) {
	return c.x, c.y, c.zoom
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// Dirty reports whether the cached matrices are stale.
func (c *Camera) Dirty() bool {
	return c.dirty
}

// computeViewMatrix recomputes the cached matrices in place if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = viewport center. Rotation is reserved and not applied.
func (c *Camera) computeViewMatrix() {
	if !c.dirty {
		return
	}
	c.dirty = false

	cx := c.viewportW / 2
	cy := c.viewportH / 2
	z := c.zoom

	c.viewMatrix[0] = z
	c.viewMatrix[1] = 0
	c.viewMatrix[2] = 0
	c.viewMatrix[3] = z
	c.viewMatrix[4] = cx - c.x*z
	c.viewMatrix[5] = cy - c.y*z
	invertAffineInto(&c.invViewMatrix, &c.viewMatrix)
}

// ViewMatrix returns the world-to-screen affine matrix [a, b, c, d, tx, ty].
func (c *Camera) ViewMatrix() [6]float64 {
	c.computeViewMatrix()
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to surface-local screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(&c.viewMatrix, wx, wy)
}

// ScreenToWorld converts surface-local screen coordinates to world coordinates
// using the inverse of the cached forward matrix.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(&c.invViewMatrix, sx, sy)
}

// WorldBounds returns the world-space rectangle currently visible.
func (c *Camera) WorldBounds() Bounds {
	c.computeViewMatrix()
	inv := &c.invViewMatrix

	// Transform the four viewport corners to world space.
	x0, y0 := transformPoint(inv, 0, 0)
	x1, y1 := transformPoint(inv, c.viewportW, 0)
	x2, y2 := transformPoint(inv, c.viewportW, c.viewportH)
	x3, y3 := transformPoint(inv, 0, c.viewportH)

	return Bounds{
		MinX: math.Min(math.Min(x0, x1), math.Min(x2, x3)),
		MaxX: math.Max(math.Max(x0, x1), math.Max(x2, x3)),
		MinY: math.Min(math.Min(y0, y1), math.Min(y2, y3)),
		MaxY: math.Max(math.Max(y0, y1), math.Max(y2, y3)),
	}
}

// FitContentToViewport frames content of the given world size, anchored at
// the world origin, so it fits the viewport under mode. It returns the fit
// rectangle in screen space. Content and viewport sizes must be positive.
func (c *Camera) FitContentToViewport(contentW, contentH float64, mode FitMode) (FitRect, error) {
	r := ComputeFitRect(c.viewportW, c.viewportH, contentW, contentH, mode)
	if err := c.SetPosition(contentW/2, contentH/2, r.Scale); err != nil {
		return r, fmt.Errorf("tapmap: fit content %vx%v: %w", contentW, contentH, err)
	}
	return r, nil
}

// ScrollTo animates the focus point to (x, y) over duration seconds.
// Advance the animation with Update.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.x), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.y), float32(y), duration, easeFn),
	}
}

// ZoomTo animates the zoom factor over duration seconds.
func (c *Camera) ZoomTo(zoom float64, duration float32, easeFn ease.TweenFunc) error {
	if !(zoom > 0) || math.IsInf(zoom, 1) {
		return fmt.Errorf("tapmap: zoom to: %w", ErrInvalidZoom)
	}
	c.zoomTween = gween.New(float32(c.zoom), float32(zoom), duration, easeFn)
	return nil
}

// Animating reports whether a scroll or zoom tween is in progress.
func (c *Camera) Animating() bool {
	return c.scrollTween != nil || c.zoomTween != nil
}

// Update advances scroll and zoom tweens by dt seconds and re-applies bounds.
func (c *Camera) Update(dt float32) {
	x, y, zoom := c.x, c.y, c.zoom

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			x = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.zoomTween != nil {
		val, done := c.zoomTween.Update(dt)
		if val > 0 {
			zoom = float64(val)
		}
		if done {
			c.zoomTween = nil
		}
	}

	c.setPosition(x, y, zoom)
	if c.boundsEnabled {
		c.clampToBounds()
	}
}

// SetBounds enables clamping so the visible area stays within bounds.
func (c *Camera) SetBounds(bounds Rect) {
	c.boundsEnabled = true
	c.bounds = bounds
	c.clampToBounds()
}

// ClearBounds disables bounds clamping.
func (c *Camera) ClearBounds() {
	c.boundsEnabled = false
}

// clampToBounds restricts the focus point so the visible area stays within
// bounds. When the bounds are smaller than the visible area the camera is
// centered on them.
func (c *Camera) clampToBounds() {
	halfW := c.viewportW / (2 * c.zoom)
	halfH := c.viewportH / (2 * c.zoom)

	minX := c.bounds.X + halfW
	maxX := c.bounds.X + c.bounds.Width - halfW
	minY := c.bounds.Y + halfH
	maxY := c.bounds.Y + c.bounds.Height - halfH

	x, y := c.x, c.y
	if minX > maxX {
		x = c.bounds.X + c.bounds.Width/2
	} else {
		x = math.Max(minX, math.Min(x, maxX))
	}
	if minY > maxY {
		y = c.bounds.Y + c.bounds.Height/2
	} else {
		y = math.Max(minY, math.Min(y, maxY))
	}
	c.setPosition(x, y, c.zoom)
}
