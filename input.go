package tapmap

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// EbitenPointerSource is a PointerSource fed by Ebitengine mouse and touch
// state. Call Poll once per tick from Game.Update.
type EbitenPointerSource struct {
	ListenerRegistry

	mouseSeen bool
	mouseX    float64
	mouseY    float64

	touchBuf  []ebiten.TouchID
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchLast [maxPointers]Vec2

	injectQueue []PointerEvent
}

// NewEbitenPointerSource creates a source with no listeners.
func NewEbitenPointerSource() *EbitenPointerSource {
	return &EbitenPointerSource{}
}

// Poll dispatches this tick's pointer events. A pending injected event takes
// the place of real input for the tick.
func (s *EbitenPointerSource) Poll() {
	if s.processInjectedInput() {
		return
	}
	s.pollMouse()
	s.pollTouches()
}

func (s *EbitenPointerSource) emit(kind PointerKind, pointerID int, x, y float64) {
	ev := PointerEvent{Kind: kind, X: x, Y: y, PointerID: pointerID}
	s.Dispatch(&ev)
}

// pollMouse handles the left mouse button (pointer 0).
func (s *EbitenPointerSource) pollMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.emit(PointerDown, 0, x, y)
	}
	if !s.mouseSeen || x != s.mouseX || y != s.mouseY {
		s.emit(PointerMove, 0, x, y)
		s.mouseSeen = true
		s.mouseX, s.mouseY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.emit(PointerUp, 0, x, y)
	}
}

// pollTouches handles touches (pointers 1-9).
func (s *EbitenPointerSource) pollTouches() {
	s.touchBuf = inpututil.AppendJustPressedTouchIDs(s.touchBuf[:0])
	for _, tid := range s.touchBuf {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		tx, ty := ebiten.TouchPosition(tid)
		x, y := float64(tx), float64(ty)
		s.touchLast[slot] = Vec2{X: x, Y: y}
		s.emit(PointerDown, slot, x, y)
	}

	s.touchBuf = ebiten.AppendTouchIDs(s.touchBuf[:0])
	for _, tid := range s.touchBuf {
		slot := s.findTouchSlot(tid)
		if slot < 0 {
			continue
		}
		tx, ty := ebiten.TouchPosition(tid)
		x, y := float64(tx), float64(ty)
		if last := s.touchLast[slot]; x != last.X || y != last.Y {
			s.touchLast[slot] = Vec2{X: x, Y: y}
			s.emit(PointerMove, slot, x, y)
		}
	}

	s.touchBuf = inpututil.AppendJustReleasedTouchIDs(s.touchBuf[:0])
	for _, tid := range s.touchBuf {
		slot := s.findTouchSlot(tid)
		if slot < 0 {
			continue
		}
		tx, ty := inpututil.TouchPositionInPreviousTick(tid)
		s.emit(PointerUp, slot, float64(tx), float64(ty))
		s.touchUsed[slot] = false
		s.touchMap[slot] = 0
	}
}

// findTouchSlot returns the slot mapped to tid, or -1.
func (s *EbitenPointerSource) findTouchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	return -1
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *EbitenPointerSource) touchSlot(tid ebiten.TouchID) int {
	if slot := s.findTouchSlot(tid); slot >= 0 {
		return slot
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// EbitenCursor switches the system cursor between the default arrow and the
// pointing hand. Suitable as ControllerOptions.Cursor.
func EbitenCursor(hovering bool) {
	if hovering {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
		return
	}
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}
