package invoicekit

import (
	"github.com/invoicekit/invoicekit/internal/debug"
)

// PointerAction is the phase of a pointer event.
type PointerAction int

const (
	// PointerPress starts a gesture over an element or resize handle.
	PointerPress PointerAction = iota
	// PointerMove feeds an active gesture.
	PointerMove
	// PointerRelease ends the active gesture.
	PointerRelease
)

// PointerEvent is one pointer sample in viewport coordinates.
type PointerEvent struct {
	Action PointerAction
	X, Y   float64
}

// Handle names a corner resize handle.
type Handle int

const (
	HandleNW Handle = iota
	HandleNE
	HandleSW
	HandleSE
)

func (h Handle) String() string {
	switch h {
	case HandleNW:
		return "nw"
	case HandleNE:
		return "ne"
	case HandleSW:
		return "sw"
	case HandleSE:
		return "se"
	default:
		return "unknown"
	}
}

const (
	// MinElementSize is the floor for element width and height during a
	// resize gesture, in page pixels.
	MinElementSize = 20.0

	// handleHitRadius is how far from a corner a press still grabs the
	// resize handle, in page pixels.
	handleHitRadius = 8.0

	// Fallback extents for elements with unset width/height when a resize
	// gesture snapshots them.
	defaultSnapshotWidth  = 100.0
	defaultSnapshotHeight = 30.0
)

type gestureKind int

const (
	gestureDrag gestureKind = iota
	gestureResize
)

// gesture is the owned state of one in-flight drag or resize: which element
// it is bound to, the pointer and geometry snapshots taken at start, and
// for a resize, which corner is being dragged. It exists only between
// pointer press and release.
type gesture struct {
	kind      gestureKind
	elementID string
	handle    Handle

	// Pointer position at gesture start (resize only).
	startX, startY float64

	// Element geometry at gesture start.
	start Position
}

// Canvas is the direct-manipulation controller for one document canvas. It
// translates pointer gestures into element moves and resizes through the
// session, one gesture at a time: Idle -> Dragging -> Idle or
// Idle -> Resizing(handle) -> Idle.
//
// Bounds is the canvas's bounding rectangle in viewport coordinates; the
// chrome refreshes it via SetBounds on viewport resize, and the engine
// reads the latest cached bounds on every move so clamps never go stale.
type Canvas struct {
	session *Session
	bounds  Rect
	gesture *gesture

	unsubscribe Unsubscribe
}

// NewCanvas creates a canvas controller over the session with the given
// viewport bounds. The controller tears down its gesture if the bound
// element is deleted mid-gesture.
func NewCanvas(session *Session, bounds Rect) *Canvas {
	c := &Canvas{session: session, bounds: bounds}
	c.unsubscribe = session.ElementRemoved.Subscribe(func(id string) {
		if c.gesture != nil && c.gesture.elementID == id {
			debug.Log("canvas: element %s deleted mid-gesture, tearing down", id)
			c.gesture = nil
		}
	})
	return c
}

// Close detaches the controller from the session's event streams.
func (c *Canvas) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.gesture = nil
}

// SetBounds refreshes the cached canvas bounding rectangle. An in-flight
// gesture is not cancelled; it picks up the new bounds on its next move.
func (c *Canvas) SetBounds(r Rect) {
	c.bounds = r
}

// Bounds returns the cached canvas bounding rectangle.
func (c *Canvas) Bounds() Rect {
	return c.bounds
}

// GestureActive reports whether a drag or resize is in flight.
func (c *Canvas) GestureActive() bool {
	return c.gesture != nil
}

// Dispatch feeds one pointer event to the controller and reports whether it
// was consumed. A press over a resize handle of the selected element starts
// a resize; a press over an element body selects it and starts a drag; a
// press over empty canvas clears the selection. While a gesture is active
// no other gesture may start.
func (c *Canvas) Dispatch(ev PointerEvent) bool {
	switch ev.Action {
	case PointerPress:
		return c.press(ev.X, ev.Y)
	case PointerMove:
		return c.move(ev.X, ev.Y)
	case PointerRelease:
		return c.release()
	}
	return false
}

func (c *Canvas) press(x, y float64) bool {
	if c.gesture != nil {
		// Single-pointer assumption: ignore presses mid-gesture.
		return false
	}

	px, py := x-c.bounds.X, y-c.bounds.Y

	if sel, ok := c.session.Selected(); ok {
		if h, ok := handleAt(sel.Position, px, py); ok {
			return c.StartResize(sel.ID, h, x, y)
		}
	}

	if el, ok := c.elementAt(px, py); ok {
		c.session.Select(el.ID)
		return c.StartDrag(el.ID)
	}

	c.session.Select("")
	return false
}

// StartDrag begins a drag gesture on the element. If the element no longer
// exists the gesture is not entered.
func (c *Canvas) StartDrag(id string) bool {
	el, ok := c.session.Document().FindElement(id)
	if !ok {
		return false
	}
	c.gesture = &gesture{
		kind:      gestureDrag,
		elementID: id,
		start:     el.Position,
	}
	debug.Log("canvas: drag start element=%s x=%.1f y=%.1f", id, el.Position.X, el.Position.Y)
	return true
}

// StartResize begins a resize gesture on the element with the given corner
// handle, snapshotting the element size and the pointer start position. If
// the element no longer exists the gesture is not entered.
func (c *Canvas) StartResize(id string, h Handle, pointerX, pointerY float64) bool {
	el, ok := c.session.Document().FindElement(id)
	if !ok {
		return false
	}
	start := el.Position
	if start.Width == 0 {
		start.Width = defaultSnapshotWidth
	}
	if start.Height == 0 {
		start.Height = defaultSnapshotHeight
	}
	c.gesture = &gesture{
		kind:      gestureResize,
		elementID: id,
		handle:    h,
		startX:    pointerX,
		startY:    pointerY,
		start:     start,
	}
	debug.Log("canvas: resize start element=%s handle=%s w=%.1f h=%.1f", id, h, start.Width, start.Height)
	return true
}

func (c *Canvas) move(x, y float64) bool {
	g := c.gesture
	if g == nil {
		return false
	}
	if _, ok := c.session.Document().FindElement(g.elementID); !ok {
		// Forced teardown: the element went away under the pointer.
		c.gesture = nil
		return false
	}

	switch g.kind {
	case gestureDrag:
		newX := clamp(x-c.bounds.X, 0, c.bounds.Width-g.start.Width)
		newY := clamp(y-c.bounds.Y, 0, c.bounds.Height-g.start.Height)
		c.session.MoveElement(g.elementID, newX, newY)
	case gestureResize:
		dx, dy := x-g.startX, y-g.startY
		w, h := g.start.Width, g.start.Height
		switch g.handle {
		case HandleNW:
			w -= dx
			h -= dy
		case HandleNE:
			w += dx
			h -= dy
		case HandleSW:
			w -= dx
			h += dy
		case HandleSE:
			w += dx
			h += dy
		}
		c.session.ResizeElement(g.elementID, max(w, MinElementSize), max(h, MinElementSize))
	}
	return true
}

func (c *Canvas) release() bool {
	if c.gesture == nil {
		return false
	}
	debug.Log("canvas: gesture end element=%s", c.gesture.elementID)
	c.gesture = nil
	return true
}

// elementAt returns the topmost element whose rectangle contains the
// page-relative point.
func (c *Canvas) elementAt(px, py float64) (Element, bool) {
	els := c.session.Document().Elements
	for i := len(els) - 1; i >= 0; i-- {
		p := els[i].Position
		r := NewRect(p.X, p.Y, p.Width, p.Height)
		if r.Contains(px, py) {
			return els[i], true
		}
	}
	return Element{}, false
}

// handleAt returns the corner handle of the element geometry at the
// page-relative point, if the point falls within the handle's hit radius.
func handleAt(p Position, px, py float64) (Handle, bool) {
	corners := []struct {
		h    Handle
		x, y float64
	}{
		{HandleNW, p.X, p.Y},
		{HandleNE, p.X + p.Width, p.Y},
		{HandleSW, p.X, p.Y + p.Height},
		{HandleSE, p.X + p.Width, p.Y + p.Height},
	}
	for _, corner := range corners {
		if abs(px-corner.x) <= handleHitRadius && abs(py-corner.y) <= handleHitRadius {
			return corner.h, true
		}
	}
	return 0, false
}

// clamp applies the lower bound last so an element larger than the canvas
// pins to the origin rather than a negative position.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
