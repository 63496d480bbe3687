package tapmap

type tapHandler struct {
	id uint32
	fn func(TapEvent)
}

type hoverHandler struct {
	id uint32
	fn func(HoverEvent)
}

type callbackKind uint8

const (
	callbackTap callbackKind = iota
	callbackHover
)

type handlerRegistry struct {
	tap    []tapHandler
	hover  []hoverHandler
	nextID uint32
}

// CallbackHandle allows removing a registered controller callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event callbackKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case callbackTap:
		h.reg.tap = removeTapHandler(h.reg.tap, h.id)
	case callbackHover:
		h.reg.hover = removeHoverHandler(h.reg.hover, h.id)
	}
}

func removeTapHandler(s []tapHandler, id uint32) []tapHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = tapHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeHoverHandler(s []hoverHandler, id uint32) []hoverHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = hoverHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnTap registers a callback fired once per dispatched tap, after the popup
// hand-off.
func (c *ModeController) OnTap(fn func(TapEvent)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.tap = append(c.handlers.tap, tapHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: callbackTap}
}

// OnHover registers a callback fired when the hovered region changes.
func (c *ModeController) OnHover(fn func(HoverEvent)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.hover = append(c.handlers.hover, hoverHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: callbackHover}
}
