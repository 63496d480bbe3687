package tapmap

import (
	"fmt"
	"math"
)

// FitMode selects how content is scaled into a container.
type FitMode uint8

const (
	FitContain FitMode = iota // whole content visible; may letterbox
	FitCover                  // container fully covered; may crop
)

// String returns "contain" or "cover".
func (m FitMode) String() string {
	switch m {
	case FitContain:
		return "contain"
	case FitCover:
		return "cover"
	default:
		return fmt.Sprintf("FitMode(%d)", uint8(m))
	}
}

// ParseFitMode converts "contain" or "cover" into a FitMode.
func ParseFitMode(s string) (FitMode, error) {
	switch s {
	case "contain":
		return FitContain, nil
	case "cover":
		return FitCover, nil
	}
	return 0, fmt.Errorf("tapmap: unknown fit mode %q", s)
}

// FitRect is the centered placement of scaled content inside a container.
// Offsets and sizes are in container units.
type FitRect struct {
	OffsetX, OffsetY float64
	Width, Height    float64
	Scale            float64
}

// ComputeFitRect scales content of size (contentW, contentH) into a container
// of size (containerW, containerH) and centers it.
//
// All sizes must be positive and finite. A zero content size divides by zero;
// callers guard against it.
func ComputeFitRect(containerW, containerH, contentW, contentH float64, mode FitMode) FitRect {
	sx := containerW / contentW
	sy := containerH / contentH

	scale := math.Min(sx, sy)
	if mode == FitCover {
		scale = math.Max(sx, sy)
	}

	w := contentW * scale
	h := contentH * scale
	return FitRect{
		OffsetX: (containerW - w) / 2,
		OffsetY: (containerH - h) / 2,
		Width:   w,
		Height:  h,
		Scale:   scale,
	}
}

// ContentToContainer maps a content-space point into container space.
func (r FitRect) ContentToContainer(x, y float64) (cx, cy float64) {
	return x*r.Scale + r.OffsetX, y*r.Scale + r.OffsetY
}

// ContainerToContent maps a container-space point into content space.
// It is the exact inverse of ContentToContainer.
func (r FitRect) ContainerToContent(cx, cy float64) (x, y float64) {
	return (cx - r.OffsetX) / r.Scale, (cy - r.OffsetY) / r.Scale
}
