package tapmap

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Region is a tappable area in world space. WorldX and WorldY are the center
// of the region; WorldWidth and WorldHeight are the full extents of its
// bounding box and must be positive.
//
// Regions are plain values. ID is used for lookup and debug labels only; it
// has no effect on hit priority.
type Region struct {
	ID          string
	WorldX      float64
	WorldY      float64
	WorldWidth  float64
	WorldHeight float64
	Shape       Shape
	Group       Group
	Payload     any

	// ZOrder orders debug drawing only. Hit testing always uses insertion
	// order, so a region drawn on top can still lose a tap to an earlier
	// overlapping region.
	ZOrder int
}

// Contains reports whether the world point (wx, wy) lies inside the region.
// Points on the edge are inside.
//
// Circles have no radius of their own: the radius is the larger half-extent
// of the bounding box, so a non-square circle region covers its longer side.
func (r Region) Contains(wx, wy float64) bool {
	dx := wx - r.WorldX
	dy := wy - r.WorldY
	hw := r.WorldWidth / 2
	hh := r.WorldHeight / 2

	switch r.Shape {
	case ShapeRect:
		return math.Abs(dx) <= hw && math.Abs(dy) <= hh
	case ShapeCircle:
		radius := math.Max(hw, hh)
		return dx*dx+dy*dy <= radius*radius
	default:
		return false
	}
}

// Bounds returns the region's world-space bounding box.
func (r Region) Bounds() Rect {
	return Rect{
		X:      r.WorldX - r.WorldWidth/2,
		Y:      r.WorldY - r.WorldHeight/2,
		Width:  r.WorldWidth,
		Height: r.WorldHeight,
	}
}

// Eligible reports whether r passes the waypoint filter for the active group.
func (r Region) Eligible(active Group) bool {
	return active == NoGroup || r.Group == NoGroup || r.Group == active
}

// rawRegion is the on-disk form of a Region.
type rawRegion struct {
	ID      string         `yaml:"id"`
	X       float64        `yaml:"x"`
	Y       float64        `yaml:"y"`
	Width   float64        `yaml:"width"`
	Height  float64        `yaml:"height"`
	Shape   string         `yaml:"shape"`
	Group   uint16         `yaml:"group"`
	ZOrder  int            `yaml:"z"`
	Payload map[string]any `yaml:"payload"`
}

// rawRegionSet is the top-level YAML structure for a region file.
type rawRegionSet struct {
	Regions []rawRegion `yaml:"regions"`
}

// ParseRegions decodes a YAML region set:
//
//	regions:
//	  - id: harbor
//	    x: 120
//	    y: 340
//	    width: 64
//	    height: 48
//	    shape: rect      # or circle
//	    group: 2         # optional waypoint group
//	    z: 1             # optional debug draw order
//	    payload: {title: Harbor}
//
// Regions keep file order, which is also their hit priority.
func ParseRegions(data []byte) ([]Region, error) {
	var raw rawRegionSet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("tapmap: failed to parse regions: %w", err)
	}

	regions := make([]Region, 0, len(raw.Regions))
	for i, rr := range raw.Regions {
		shape, err := ParseShape(rr.Shape)
		if err != nil {
			return nil, fmt.Errorf("tapmap: region %d (%q): %w", i, rr.ID, err)
		}
		if !(rr.Width > 0) || !(rr.Height > 0) {
			return nil, fmt.Errorf("tapmap: region %d (%q): width and height must be positive", i, rr.ID)
		}
		r := Region{
			ID:          rr.ID,
			WorldX:      rr.X,
			WorldY:      rr.Y,
			WorldWidth:  rr.Width,
			WorldHeight: rr.Height,
			Shape:       shape,
			Group:       Group(rr.Group),
			ZOrder:      rr.ZOrder,
		}
		if rr.Payload != nil {
			r.Payload = rr.Payload
		}
		regions = append(regions, r)
	}
	return regions, nil
}
