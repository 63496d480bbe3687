package tapmap

// InjectPress queues a pointer press at the given window coordinates. The
// event is dispatched by the next Poll in place of real input.
func (s *EbitenPointerSource) InjectPress(x, y float64) {
	s.inject(PointerDown, x, y)
}

// InjectMove queues a pointer move at the given window coordinates.
func (s *EbitenPointerSource) InjectMove(x, y float64) {
	s.inject(PointerMove, x, y)
}

// InjectRelease queues a pointer release at the given window coordinates.
func (s *EbitenPointerSource) InjectRelease(x, y float64) {
	s.inject(PointerUp, x, y)
}

// InjectTap queues a press followed by a release at the same coordinates.
// Consumes two polls.
func (s *EbitenPointerSource) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). Minimum frames is 2.
func (s *EbitenPointerSource) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected events.
func (s *EbitenPointerSource) Pending() int {
	return len(s.injectQueue)
}

func (s *EbitenPointerSource) inject(kind PointerKind, x, y float64) {
	s.injectQueue = append(s.injectQueue, PointerEvent{
		Kind: kind, X: x, Y: y, Synthetic: true,
	})
}

// processInjectedInput pops one queued event and dispatches it. Returns true
// if an event was consumed (real input is skipped for the tick).
func (s *EbitenPointerSource) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	ev := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.Dispatch(&ev)
	return true
}
