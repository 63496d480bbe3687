package tapmap

import (
	"fmt"
	"image/color"
)

// Vec2 is a 2D vector used for positions and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Bounds is a world-space extent expressed as min/max pairs.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Intersects reports whether b overlaps the world-space rectangle r.
// Touching edges count as overlapping.
func (b Bounds) Intersects(r Rect) bool {
	return b.MinX <= r.X+r.Width && b.MaxX >= r.X &&
		b.MinY <= r.Y+r.Height && b.MaxY >= r.Y
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to a premultiplied color.RGBA for ebiten drawing calls.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// Mode selects which rendering path owns pointer input.
type Mode uint8

const (
	ModeDOM    Mode = iota // overlay layer draws and receives input directly
	ModeCanvas             // canvas draws; overlay hidden; controller owns input
	ModeHybrid             // overlay draws but is inert; controller owns input
	modeCount
)

// DefaultMode is the mode used when no valid initial mode is configured.
const DefaultMode = ModeHybrid

// String returns the configuration name of the mode ("dom", "canvas", "hybrid").
func (m Mode) String() string {
	switch m {
	case ModeDOM:
		return "dom"
	case ModeCanvas:
		return "canvas"
	case ModeHybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m < modeCount
}

// ownsInput reports whether the controller's pointer listener is active in m.
func (m Mode) ownsInput() bool {
	return m == ModeCanvas || m == ModeHybrid
}

// ParseMode converts a configuration name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "dom":
		return ModeDOM, nil
	case "canvas":
		return ModeCanvas, nil
	case "hybrid":
		return ModeHybrid, nil
	}
	return 0, fmt.Errorf("tapmap: %q: %w", s, ErrInvalidMode)
}

// Shape selects the hit geometry of a Region.
type Shape uint8

const (
	ShapeRect   Shape = iota // axis-aligned box of WorldWidth x WorldHeight
	ShapeCircle              // circle of radius max(WorldWidth, WorldHeight)/2
)

// String returns the region-file name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// ParseShape converts a region-file shape name. An empty name is a rect.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "", "rect":
		return ShapeRect, nil
	case "circle":
		return ShapeCircle, nil
	}
	return 0, fmt.Errorf("tapmap: unknown shape %q", s)
}

// Group is a waypoint group key. NoGroup on a region means it is always
// eligible; NoGroup as the active group disables filtering.
type Group uint16

// NoGroup is the zero Group.
const NoGroup Group = 0

// PointerKind identifies a low-level pointer event.
type PointerKind uint8

const (
	PointerDown PointerKind = iota // button or touch pressed
	PointerUp                      // button or touch released
	PointerMove                    // pointer moved (pressed or hovering)
)

// String returns a short name for the kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerMove:
		return "move"
	default:
		return fmt.Sprintf("PointerKind(%d)", uint8(k))
	}
}
