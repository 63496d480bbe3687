package tapmap

import (
	"strings"
	"testing"
)

func TestRegionContainsRect(t *testing.T) {
	r := Region{ID: "r", WorldX: 100, WorldY: 100, WorldWidth: 40, WorldHeight: 40, Shape: ShapeRect}
	tests := []struct {
		x, y float64
		want bool
	}{
		{115, 90, true},
		{125, 90, false},
		{120, 120, true}, // corner is inside
		{80, 80, true},
		{100, 79.99, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRegionContainsCircle(t *testing.T) {
	r := Region{ID: "c", WorldWidth: 40, WorldHeight: 40, Shape: ShapeCircle}
	if !r.Contains(10, 10) {
		t.Error("(10,10) should be inside radius 20")
	}
	if r.Contains(15, 15) {
		t.Error("(15,15) should be outside radius 20")
	}
	if !r.Contains(20, 0) {
		t.Error("point on the circle should be inside")
	}
}

func TestRegionCircleUsesLargerExtent(t *testing.T) {
	// 80x20 bounding box: radius is 40, not 10.
	r := Region{ID: "c", WorldWidth: 80, WorldHeight: 20, Shape: ShapeCircle}
	if !r.Contains(0, 35) {
		t.Error("(0,35) should be inside radius 40")
	}
	if r.Contains(0, 41) {
		t.Error("(0,41) should be outside radius 40")
	}
}

func TestRegionUnknownShapeNeverMatches(t *testing.T) {
	r := Region{ID: "x", WorldWidth: 100, WorldHeight: 100, Shape: Shape(9)}
	if r.Contains(0, 0) {
		t.Error("unknown shape matched its own center")
	}
}

func TestRegionBounds(t *testing.T) {
	r := Region{WorldX: 10, WorldY: 20, WorldWidth: 8, WorldHeight: 4}
	want := Rect{X: 6, Y: 18, Width: 8, Height: 4}
	if got := r.Bounds(); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

func TestRegionEligible(t *testing.T) {
	tests := []struct {
		region, active Group
		want           bool
	}{
		{NoGroup, NoGroup, true},
		{NoGroup, 3, true},
		{2, NoGroup, true},
		{2, 2, true},
		{2, 1, false},
	}
	for _, tt := range tests {
		r := Region{Group: tt.region}
		if got := r.Eligible(tt.active); got != tt.want {
			t.Errorf("group %d Eligible(%d) = %v, want %v", tt.region, tt.active, got, tt.want)
		}
	}
}

func TestParseRegions(t *testing.T) {
	data := []byte(`
regions:
  - id: harbor
    x: 120
    y: 340
    width: 64
    height: 48
    payload: {title: Harbor}
  - id: lighthouse
    x: 10
    y: 20
    width: 30
    height: 30
    shape: circle
    group: 2
    z: 5
`)
	regions, err := ParseRegions(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}

	h := regions[0]
	if h.ID != "harbor" || h.WorldX != 120 || h.WorldY != 340 || h.WorldWidth != 64 || h.WorldHeight != 48 {
		t.Errorf("harbor = %+v", h)
	}
	if h.Shape != ShapeRect || h.Group != NoGroup {
		t.Errorf("harbor shape/group = %v/%d, want rect/0", h.Shape, h.Group)
	}
	payload, ok := h.Payload.(map[string]any)
	if !ok || payload["title"] != "Harbor" {
		t.Errorf("harbor payload = %#v", h.Payload)
	}

	l := regions[1]
	if l.Shape != ShapeCircle || l.Group != 2 || l.ZOrder != 5 {
		t.Errorf("lighthouse = %+v", l)
	}
	if l.Payload != nil {
		t.Errorf("lighthouse payload = %#v, want nil", l.Payload)
	}
}

func TestParseRegionsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "regions: [", "parse regions"},
		{"bad shape", "regions:\n  - {id: a, width: 1, height: 1, shape: hexagon}", "unknown shape"},
		{"zero size", "regions:\n  - {id: a, width: 0, height: 1}", "must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRegions([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestParseShape(t *testing.T) {
	for in, want := range map[string]Shape{"": ShapeRect, "rect": ShapeRect, "circle": ShapeCircle} {
		got, err := ParseShape(in)
		if err != nil || got != want {
			t.Errorf("ParseShape(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}
