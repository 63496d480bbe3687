package tapmap

import "testing"

func TestComputeFitRect(t *testing.T) {
	tests := []struct {
		name         string
		cw, ch, w, h float64
		mode         FitMode
		want         FitRect
	}{
		{"contain letterbox", 800, 600, 400, 400, FitContain, FitRect{OffsetX: 100, OffsetY: 0, Width: 600, Height: 600, Scale: 1.5}},
		{"cover crop", 800, 600, 400, 400, FitCover, FitRect{OffsetX: 0, OffsetY: -100, Width: 800, Height: 800, Scale: 2}},
		{"contain same aspect", 800, 600, 400, 300, FitContain, FitRect{Width: 800, Height: 600, Scale: 2}},
		{"cover same aspect", 800, 600, 400, 300, FitCover, FitRect{Width: 800, Height: 600, Scale: 2}},
		{"contain shrink", 100, 100, 400, 200, FitContain, FitRect{OffsetX: 0, OffsetY: 25, Width: 100, Height: 50, Scale: 0.25}},
		{"cover shrink", 100, 100, 400, 200, FitCover, FitRect{OffsetX: -50, OffsetY: 0, Width: 200, Height: 100, Scale: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFitRect(tt.cw, tt.ch, tt.w, tt.h, tt.mode)
			assertNear(t, "Scale", got.Scale, tt.want.Scale)
			assertNear(t, "Width", got.Width, tt.want.Width)
			assertNear(t, "Height", got.Height, tt.want.Height)
			assertNear(t, "OffsetX", got.OffsetX, tt.want.OffsetX)
			assertNear(t, "OffsetY", got.OffsetY, tt.want.OffsetY)
		})
	}
}

func TestFitRectConversionsAreInverse(t *testing.T) {
	for _, mode := range []FitMode{FitContain, FitCover} {
		r := ComputeFitRect(1280, 720, 1024, 1024, mode)
		for _, p := range []Vec2{{0, 0}, {1024, 1024}, {512.5, 3.25}, {-10, 2000}} {
			cx, cy := r.ContentToContainer(p.X, p.Y)
			x, y := r.ContainerToContent(cx, cy)
			assertNear(t, mode.String()+" x", x, p.X)
			assertNear(t, mode.String()+" y", y, p.Y)
		}
	}
}

func TestFitRectContentCornersMapToRect(t *testing.T) {
	r := ComputeFitRect(800, 600, 400, 400, FitContain)
	x0, y0 := r.ContentToContainer(0, 0)
	x1, y1 := r.ContentToContainer(400, 400)
	assertNear(t, "x0", x0, r.OffsetX)
	assertNear(t, "y0", y0, r.OffsetY)
	assertNear(t, "x1", x1, r.OffsetX+r.Width)
	assertNear(t, "y1", y1, r.OffsetY+r.Height)
}

func TestParseFitMode(t *testing.T) {
	for _, m := range []FitMode{FitContain, FitCover} {
		got, err := ParseFitMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseFitMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseFitMode("stretch"); err == nil {
		t.Error("expected error for unknown fit mode")
	}
}
