package tapmap

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultTapCooldown is the minimum time between two accepted taps.
const DefaultTapCooldown = 500 * time.Millisecond

// ControllerOptions configures a ModeController. Camera, Source and Surface
// are required.
type ControllerOptions struct {
	Camera *Camera
	// HitTester defaults to NewHitTester(Camera).
	HitTester *HitTester
	Source    PointerSource
	Surface   Surface

	Overlay OverlayLayer
	Popup   PopupOpener
	Sink    TapSink

	// InitialMode is a mode name ("dom", "canvas", "hybrid"). Empty or
	// invalid names select DefaultMode; invalid names are logged.
	InitialMode string
	// TapCooldown defaults to DefaultTapCooldown.
	TapCooldown time.Duration
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Cursor, if set, is called with true when the pointer enters a region
	// and false when it leaves every region.
	Cursor func(hovering bool)
}

// ControllerState is a diagnostic snapshot of a ModeController.
type ControllerState struct {
	Mode        Mode
	Listening   bool
	Regions     int
	ActiveGroup Group
	Hovered     string
	LastTap     time.Time
	Taps        int
	Suppressed  int
	Misses      int
}

// String formats the state on one line for debug HUDs.
func (s ControllerState) String() string {
	return fmt.Sprintf("mode=%s listening=%t regions=%d group=%d hover=%q taps=%d suppressed=%d misses=%d",
		s.Mode, s.Listening, s.Regions, s.ActiveGroup, s.Hovered, s.Taps, s.Suppressed, s.Misses)
}

// ModeController arbitrates pointer input between the overlay layer and the
// canvas hit tester. In ModeDOM the overlay handles its own input; in
// ModeCanvas and ModeHybrid the controller owns a single listener on the
// pointer source, debounces taps and resolves them through the HitTester.
//
// ModeController is not safe for concurrent use; drive it from the game loop.
type ModeController struct {
	cam     *Camera
	hit     *HitTester
	source  PointerSource
	surface Surface
	overlay OverlayLayer
	popup   PopupOpener
	sink    TapSink
	cursor  func(bool)

	mode      Mode
	listener  ListenerHandle
	listening bool

	cooldown time.Duration
	now      func() time.Time
	lastTap  time.Time
	tapped   bool

	regions []Region
	group   Group

	hover    Region
	hoverIdx int
	hovering bool

	handlers handlerRegistry

	taps       int
	suppressed int
	misses     int
}

// NewModeController validates opts and enters the initial mode.
func NewModeController(opts ControllerOptions) (*ModeController, error) {
	if opts.Camera == nil {
		return nil, configError(ErrNoCamera)
	}
	if opts.Source == nil {
		return nil, configError(ErrNoPointerSource)
	}
	if opts.Surface == nil {
		return nil, configError(ErrNoSurface)
	}

	hit := opts.HitTester
	if hit == nil {
		hit = NewHitTester(opts.Camera)
	}
	cooldown := opts.TapCooldown
	if cooldown <= 0 {
		cooldown = DefaultTapCooldown
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	mode := DefaultMode
	if opts.InitialMode != "" {
		m, err := ParseMode(opts.InitialMode)
		if err != nil {
			Logger().Warn("tapmap: ignoring initial mode", "mode", opts.InitialMode, "default", DefaultMode.String())
		} else {
			mode = m
		}
	}

	c := &ModeController{
		cam:      opts.Camera,
		hit:      hit,
		source:   opts.Source,
		surface:  opts.Surface,
		overlay:  opts.Overlay,
		popup:    opts.Popup,
		sink:     opts.Sink,
		cursor:   opts.Cursor,
		cooldown: cooldown,
		now:      clock,
		mode:     mode,
	}
	c.enter(mode)
	return c, nil
}

func configError(err error) error {
	Logger().Warn("tapmap: controller not created", "err", err)
	return fmt.Errorf("tapmap: new mode controller: %w", err)
}

// Mode returns the active mode.
func (c *ModeController) Mode() Mode {
	return c.mode
}

// Camera returns the controller's camera.
func (c *ModeController) Camera() *Camera {
	return c.cam
}

// HitTester returns the controller's hit tester.
func (c *ModeController) HitTester() *HitTester {
	return c.hit
}

// SetMode switches the active mode and runs its entry actions. An invalid
// mode is logged and rejected with ErrInvalidMode; the current mode stays.
// Re-entering the current mode re-applies overlay state but never installs a
// second listener.
func (c *ModeController) SetMode(m Mode) error {
	if !m.Valid() {
		Logger().Warn("tapmap: rejected mode", "mode", m.String(), "current", c.mode.String())
		return fmt.Errorf("tapmap: set mode %s: %w", m, ErrInvalidMode)
	}
	prev := c.mode
	c.mode = m
	c.enter(m)
	Logger().Debug("tapmap: mode changed", "from", prev.String(), "to", m.String())
	return nil
}

// SetModeString parses name and calls SetMode.
func (c *ModeController) SetModeString(name string) error {
	m, err := ParseMode(name)
	if err != nil {
		Logger().Warn("tapmap: rejected mode", "mode", name, "current", c.mode.String())
		return err
	}
	return c.SetMode(m)
}

// enter runs the entry actions for m.
func (c *ModeController) enter(m Mode) {
	switch m {
	case ModeDOM:
		c.removeListener()
		c.clearHover()
		if c.overlay != nil {
			c.overlay.SetVisible(true)
			c.overlay.SetPointerInput(true)
		}
	case ModeCanvas:
		c.installListener()
		if c.overlay != nil {
			c.overlay.SetPointerInput(false)
			c.overlay.SetVisible(false)
		}
	case ModeHybrid:
		c.installListener()
		if c.overlay != nil {
			c.overlay.SetVisible(true)
			c.overlay.SetPointerInput(false)
		}
	}
}

// installListener registers handlePointer, ahead of the source's other
// listeners when the source is a CapturingSource.
func (c *ModeController) installListener() {
	if c.listening {
		return
	}
	if cs, ok := c.source.(CapturingSource); ok {
		c.listener = cs.AddCaptureListener(c.handlePointer)
	} else {
		c.listener = c.source.AddListener(c.handlePointer)
	}
	c.listening = true
	Logger().Debug("tapmap: pointer listener installed")
}

func (c *ModeController) removeListener() {
	if !c.listening {
		return
	}
	c.listener.Remove()
	c.listener = ListenerHandle{}
	c.listening = false
	Logger().Debug("tapmap: pointer listener removed")
}

// Close removes the controller's pointer listener. The controller can be
// revived with SetMode.
func (c *ModeController) Close() {
	c.removeListener()
	c.clearHover()
}

// handlePointer is the single listener installed on the pointer source.
func (c *ModeController) handlePointer(ev *PointerEvent) {
	if !c.mode.ownsInput() {
		return
	}
	switch ev.Kind {
	case PointerUp:
		c.handleUp(ev)
	case PointerMove:
		c.handleMove(ev)
	case PointerDown:
		// Reserved for long-press; a press alone never taps.
	}
}

// surfaceLocal converts window coordinates to surface-local coordinates.
// ok is false when there is no surface or the point lies outside it.
func (c *ModeController) surfaceLocal(x, y float64) (sx, sy float64, ok bool) {
	r, ok := c.surface.Bounds()
	if !ok || !r.Contains(x, y) {
		return 0, 0, false
	}
	return x - r.X, y - r.Y, true
}

// handleUp runs the tap pipeline: cooldown check, timestamp, claim, resolve,
// dispatch.
func (c *ModeController) handleUp(ev *PointerEvent) {
	sx, sy, ok := c.surfaceLocal(ev.X, ev.Y)
	if !ok {
		return
	}

	now := c.now()
	if c.tapped && now.Sub(c.lastTap) < c.cooldown {
		ev.PreventDefault()
		ev.StopPropagation()
		c.suppressed++
		Logger().Debug("tapmap: tap suppressed", "since_last", now.Sub(c.lastTap))
		return
	}
	c.lastTap = now
	c.tapped = true

	ev.PreventDefault()
	ev.StopPropagation()

	r, hit := c.hit.Resolve(sx, sy)
	if !hit {
		c.misses++
		return
	}
	c.dispatch(r)
}

// dispatch hands r to the popup, then notifies tap listeners and the sink.
func (c *ModeController) dispatch(r Region) {
	c.taps++
	if c.popup != nil {
		c.popup.OpenFromHotspot(r)
	}
	event := TapEvent{Hotspot: r, Mode: c.mode}
	for _, h := range slices.Clone(c.handlers.tap) {
		h.fn(event)
	}
	if c.sink != nil {
		c.sink.EmitTap(event)
	}
}

// handleMove updates the hover affordance only.
func (c *ModeController) handleMove(ev *PointerEvent) {
	sx, sy, ok := c.surfaceLocal(ev.X, ev.Y)
	if !ok {
		c.clearHover()
		return
	}
	i := c.hit.resolveIndex(sx, sy)
	if i < 0 {
		c.clearHover()
		return
	}
	c.setHover(c.hit.regions[i], i)
}

func (c *ModeController) clearHover() {
	c.setHover(Region{}, -1)
}

// setHover records the hovered region and fires hover callbacks on change.
// idx is the region's hit tester snapshot index, or -1 for no region.
// Regions are told apart by index so empty or repeated IDs still change.
func (c *ModeController) setHover(r Region, idx int) {
	ok := idx >= 0
	if ok == c.hovering && (!ok || (idx == c.hoverIdx && r.ID == c.hover.ID)) {
		return
	}
	c.hover = r
	c.hoverIdx = idx
	c.hovering = ok
	if c.cursor != nil {
		c.cursor(ok)
	}
	event := HoverEvent{Hotspot: r, Ok: ok, Mode: c.mode}
	for _, h := range slices.Clone(c.handlers.hover) {
		h.fn(event)
	}
}

// Hovered returns the region currently under the pointer.
func (c *ModeController) Hovered() (Region, bool) {
	return c.hover, c.hovering
}

// SetRegions replaces the live region set. The hit tester picks it up on the
// next BeginFrame.
func (c *ModeController) SetRegions(regions []Region) {
	c.regions = append(c.regions[:0], regions...)
}

// Regions returns the live region set. The returned slice MUST NOT be mutated.
func (c *ModeController) Regions() []Region {
	return c.regions
}

// SetActiveGroup sets the waypoint group used from the next BeginFrame.
func (c *ModeController) SetActiveGroup(g Group) {
	c.group = g
}

// ActiveGroup returns the live waypoint group.
func (c *ModeController) ActiveGroup() Group {
	return c.group
}

// BeginFrame must be called once per frame before drawing. Outside ModeDOM
// it copies the live regions and group into the hit tester; outside
// ModeCanvas it starts an overlay frame.
func (c *ModeController) BeginFrame() {
	if c.mode != ModeDOM {
		c.hit.UpdateRegions(c.regions, c.group)
	}
	if c.mode != ModeCanvas && c.overlay != nil {
		c.overlay.BeginFrame()
	}
}

// EndFrame must be called once per frame after drawing. Outside ModeCanvas
// it finishes the overlay frame with the current camera and group.
func (c *ModeController) EndFrame() {
	if c.mode == ModeCanvas || c.overlay == nil {
		return
	}
	w, h := c.cam.Viewport()
	c.overlay.EndFrame(c.cam, w, h, c.group)
}

// UpsertSpec registers or replaces a single element by key.
type UpsertSpec struct {
	OverlaySpec

	// HitTestable folds the element into the region set using the geometry
	// below. Key becomes the region ID and Meta its payload.
	HitTestable bool
	Width       float64
	Height      float64
	Shape       Shape
	Group       Group
	ZOrder      int
}

func (s UpsertSpec) region() Region {
	return Region{
		ID:          s.Key,
		WorldX:      s.WorldX,
		WorldY:      s.WorldY,
		WorldWidth:  s.Width,
		WorldHeight: s.Height,
		Shape:       s.Shape,
		Group:       s.Group,
		Payload:     s.Meta,
		ZOrder:      s.ZOrder,
	}
}

// Upsert registers one element and returns its key. An empty key is replaced
// with a random one. Hit-testable specs replace the region with the same key
// (or are appended) and the hit tester snapshot is rebuilt immediately. The
// spec is forwarded to the overlay except in ModeCanvas.
func (c *ModeController) Upsert(spec UpsertSpec) string {
	if spec.Key == "" {
		spec.Key = uuid.NewString()
	}
	if spec.HitTestable {
		r := spec.region()
		replaced := false
		for i := range c.regions {
			if c.regions[i].ID == spec.Key {
				c.regions[i] = r
				replaced = true
				break
			}
		}
		if !replaced {
			c.regions = append(c.regions, r)
		}
		c.hit.UpdateRegions(c.regions, c.group)
	}
	if c.mode != ModeCanvas && c.overlay != nil {
		c.overlay.Upsert(spec.OverlaySpec)
	}
	return spec.Key
}

// RemoveRegion deletes the region with key from the live set and rebuilds the
// hit tester snapshot. It reports whether a region was removed.
func (c *ModeController) RemoveRegion(key string) bool {
	for i := range c.regions {
		if c.regions[i].ID == key {
			c.regions = append(c.regions[:i], c.regions[i+1:]...)
			c.hit.UpdateRegions(c.regions, c.group)
			if c.hovering && c.hover.ID == key {
				c.clearHover()
			} else if c.hovering && c.hoverIdx > i {
				c.hoverIdx--
			}
			return true
		}
	}
	return false
}

// Snapshot returns diagnostic state. Intended for debug HUDs and inspectors
// owned by the application.
func (c *ModeController) Snapshot() ControllerState {
	s := ControllerState{
		Mode:        c.mode,
		Listening:   c.listening,
		Regions:     len(c.regions),
		ActiveGroup: c.group,
		Taps:        c.taps,
		Suppressed:  c.suppressed,
		Misses:      c.misses,
	}
	if c.hovering {
		s.Hovered = c.hover.ID
	}
	if c.tapped {
		s.LastTap = c.lastTap
	}
	return s
}
