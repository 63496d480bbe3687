package tapmap

// OverlaySpec places one visual element of the overlay layer.
type OverlaySpec struct {
	Key    string
	WorldX float64
	WorldY float64
	// LockWidthPx keeps the element at a fixed screen width regardless of
	// zoom when positive.
	LockWidthPx float64
	Meta        any
}

// OverlayLayer is the retained visual layer drawn over the canvas. The
// controller only writes to it.
type OverlayLayer interface {
	SetVisible(visible bool)
	// SetPointerInput toggles whether the overlay's root receives pointer
	// input. Disabled means visible but inert.
	SetPointerInput(enabled bool)
	BeginFrame()
	EndFrame(cam *Camera, viewportW, viewportH float64, activeGroup Group)
	Upsert(spec OverlaySpec)
}

// PopupOpener presents the detail UI for a resolved region.
type PopupOpener interface {
	OpenFromHotspot(r Region)
}

// LegacyPopupOpener is the older popup interface.
type LegacyPopupOpener interface {
	OpenPopup(r Region)
}

// PopupFunc adapts a function to PopupOpener.
type PopupFunc func(r Region)

// OpenFromHotspot calls f(r).
func (f PopupFunc) OpenFromHotspot(r Region) { f(r) }

type legacyPopup struct {
	l LegacyPopupOpener
}

func (p legacyPopup) OpenFromHotspot(r Region) { p.l.OpenPopup(r) }

// AdaptLegacyPopup maps a LegacyPopupOpener onto PopupOpener. A nil l yields
// a nil PopupOpener.
func AdaptLegacyPopup(l LegacyPopupOpener) PopupOpener {
	if l == nil {
		return nil
	}
	return legacyPopup{l: l}
}

// TapEvent is emitted once per dispatched tap.
type TapEvent struct {
	Hotspot Region
	Mode    Mode
}

// HoverEvent is emitted when the region under the pointer changes. Ok is
// false when the pointer left every region.
type HoverEvent struct {
	Hotspot Region
	Ok      bool
	Mode    Mode
}

// TapSink receives tap notifications, for example to forward them into an
// ECS world or an analytics pipeline.
type TapSink interface {
	EmitTap(event TapEvent)
}

// Surface reports the render surface's rectangle in window coordinates.
// ok is false while no surface is available.
type Surface interface {
	Bounds() (r Rect, ok bool)
}

// StaticSurface is a Surface with a fixed rectangle.
type StaticSurface Rect

// Bounds returns the rectangle. It is unavailable when it has no area.
func (s StaticSurface) Bounds() (Rect, bool) {
	r := Rect(s)
	return r, r.Width > 0 && r.Height > 0
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func() (Rect, bool)

// Bounds calls f.
func (f SurfaceFunc) Bounds() (Rect, bool) { return f() }
