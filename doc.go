// Package tapmap keeps hotspots on a pannable, zoomable [Ebitengine] map
// tappable regardless of which rendering path draws them.
//
// Visuals come either from a retained overlay layer positioned over the
// canvas or from direct canvas drawing. tapmap owns the single world⇄screen
// transform ([Camera]), the world-space hit test ([HitTester]) and the
// arbitration of pointer input between the two paths ([ModeController]).
//
// # Quick start
//
//	cam := tapmap.NewCamera(800, 600)
//	cam.FitContentToViewport(2048, 1536, tapmap.FitContain)
//
//	src := tapmap.NewEbitenPointerSource()
//	ctrl, err := tapmap.NewModeController(tapmap.ControllerOptions{
//		Camera:  cam,
//		Source:  src,
//		Surface: tapmap.StaticSurface{Width: 800, Height: 600},
//		Popup:   tapmap.PopupFunc(showDetails),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctrl.SetRegions(regions)
//
// Then, in the game loop:
//
//	func (g *Game) Update() error {
//		g.src.Poll()
//		g.cam.Update(1.0 / float32(ebiten.TPS()))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.ctrl.BeginFrame()
//		// ... draw the map ...
//		g.ctrl.EndFrame()
//	}
//
// # Modes
//
// [ModeDOM] hands input to the overlay layer and removes the controller's
// listener. [ModeCanvas] hides the overlay and resolves taps through the
// hit tester. [ModeHybrid] (the default) keeps the overlay visible but inert
// while the hit tester owns input. Switching modes at runtime never leaves
// more than one controller listener installed.
//
// # Taps
//
// A tap is a pointer release inside the render surface. Releases within
// [DefaultTapCooldown] of the previous accepted tap are swallowed. Accepted
// taps always stop propagation, resolve to the first matching region in
// insertion order, open the popup and notify [ModeController.OnTap]
// listeners and the optional [TapSink] (see tapmap/ecs for a Donburi sink).
//
// [Ebitengine]: https://ebitengine.org
package tapmap
