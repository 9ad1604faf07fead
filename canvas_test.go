package invoicekit

import "testing"

// canvasFixture returns a session holding one 100x100 element at (100, 100)
// and a canvas controller over it.
func canvasFixture(t *testing.T, bounds Rect) (*Session, *Canvas, Element) {
	t.Helper()
	el := NewElement(ElementText, WithPosition(100, 100), WithSize(100, 100))
	sess := NewSession(NewDocument("t").AddElement(el))
	c := NewCanvas(sess, bounds)
	t.Cleanup(c.Close)
	return sess, c, el
}

func elementPosition(t *testing.T, sess *Session, id string) Position {
	t.Helper()
	el, ok := sess.Document().FindElement(id)
	if !ok {
		t.Fatalf("element %s not found", id)
	}
	return el.Position
}

func TestCanvas_DragMovesElement(t *testing.T) {
	sess, c, el := canvasFixture(t, NewRect(10, 20, 794, 1123))

	if !c.Dispatch(PointerEvent{Action: PointerPress, X: 150 + 10, Y: 150 + 20}) {
		t.Fatalf("press over element did not start a gesture")
	}
	if sess.SelectedID() != el.ID {
		t.Errorf("press did not select the element")
	}

	c.Dispatch(PointerEvent{Action: PointerMove, X: 310, Y: 420})
	pos := elementPosition(t, sess, el.ID)
	// Candidate position is pointer minus canvas origin.
	if pos.X != 300 || pos.Y != 400 {
		t.Errorf("position = (%v, %v), want (300, 400)", pos.X, pos.Y)
	}

	if !c.Dispatch(PointerEvent{Action: PointerRelease}) {
		t.Errorf("release did not end the gesture")
	}
	if c.GestureActive() {
		t.Errorf("gesture still active after release")
	}
}

func TestCanvas_DragClampsToCanvas(t *testing.T) {
	type tc struct {
		pointerX, pointerY float64
		wantX, wantY       float64
	}

	// Canvas 794x1123 at origin, element 100x100.
	tests := map[string]tc{
		"far beyond bottom-right": {
			pointerX: 10000, pointerY: 10000,
			wantX: 694, wantY: 1023,
		},
		"beyond top-left": {
			pointerX: -500, pointerY: -500,
			wantX: 0, wantY: 0,
		},
		"only x out of range": {
			pointerX: 5000, pointerY: 300,
			wantX: 694, wantY: 300,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sess, c, el := canvasFixture(t, NewRect(0, 0, 794, 1123))
			c.Dispatch(PointerEvent{Action: PointerPress, X: 150, Y: 150})
			c.Dispatch(PointerEvent{Action: PointerMove, X: tt.pointerX, Y: tt.pointerY})

			pos := elementPosition(t, sess, el.ID)
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCanvas_DragReadsLatestBounds(t *testing.T) {
	sess, c, el := canvasFixture(t, NewRect(0, 0, 794, 1123))
	c.Dispatch(PointerEvent{Action: PointerPress, X: 150, Y: 150})

	// Viewport resize mid-gesture: the next move must clamp against the
	// fresh bounds, not the ones cached at gesture start.
	c.SetBounds(NewRect(0, 0, 400, 400))
	c.Dispatch(PointerEvent{Action: PointerMove, X: 10000, Y: 10000})

	pos := elementPosition(t, sess, el.ID)
	if pos.X != 300 || pos.Y != 300 {
		t.Errorf("position = (%v, %v), want (300, 300)", pos.X, pos.Y)
	}
}

func TestCanvas_ResizeHandles(t *testing.T) {
	type tc struct {
		handle Handle
		dx, dy float64
		wantW  float64
		wantH  float64
	}

	// Element is 100x100; start pointer at (500, 500).
	tests := map[string]tc{
		"se grows with positive delta": {
			handle: HandleSE, dx: 30, dy: 40, wantW: 130, wantH: 140,
		},
		"se shrinks with negative delta": {
			handle: HandleSE, dx: -30, dy: -40, wantW: 70, wantH: 60,
		},
		"nw shrinks with positive delta": {
			handle: HandleNW, dx: 30, dy: 40, wantW: 70, wantH: 60,
		},
		"ne grows width shrinks height": {
			handle: HandleNE, dx: 30, dy: 40, wantW: 130, wantH: 60,
		},
		"sw shrinks width grows height": {
			handle: HandleSW, dx: 30, dy: 40, wantW: 70, wantH: 140,
		},
		"floor at 20 in both dimensions": {
			handle: HandleSE, dx: -1000, dy: -1000, wantW: 20, wantH: 20,
		},
		"floor applies per dimension": {
			handle: HandleSE, dx: -1000, dy: 10, wantW: 20, wantH: 110,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sess, c, el := canvasFixture(t, NewRect(0, 0, 794, 1123))
			if !c.StartResize(el.ID, tt.handle, 500, 500) {
				t.Fatalf("StartResize did not start a gesture")
			}
			c.Dispatch(PointerEvent{Action: PointerMove, X: 500 + tt.dx, Y: 500 + tt.dy})

			pos := elementPosition(t, sess, el.ID)
			if pos.Width != tt.wantW || pos.Height != tt.wantH {
				t.Errorf("size = %vx%v, want %vx%v", pos.Width, pos.Height, tt.wantW, tt.wantH)
			}
			// Resize never repositions the element.
			if pos.X != 100 || pos.Y != 100 {
				t.Errorf("position = (%v, %v), want (100, 100)", pos.X, pos.Y)
			}
		})
	}
}

func TestCanvas_ResizeDeltasAreCumulativeFromSnapshot(t *testing.T) {
	sess, c, el := canvasFixture(t, NewRect(0, 0, 794, 1123))
	c.StartResize(el.ID, HandleSE, 500, 500)

	// Each move computes against the gesture-start snapshot, so moving back
	// to the start pointer restores the original size.
	c.Dispatch(PointerEvent{Action: PointerMove, X: 560, Y: 560})
	c.Dispatch(PointerEvent{Action: PointerMove, X: 500, Y: 500})

	pos := elementPosition(t, sess, el.ID)
	if pos.Width != 100 || pos.Height != 100 {
		t.Errorf("size = %vx%v, want 100x100", pos.Width, pos.Height)
	}
}

func TestCanvas_PressOnHandleStartsResize(t *testing.T) {
	sess, c, el := canvasFixture(t, NewRect(0, 0, 794, 1123))
	sess.Select(el.ID)

	// SE corner of the element sits at (200, 200).
	c.Dispatch(PointerEvent{Action: PointerPress, X: 201, Y: 199})
	c.Dispatch(PointerEvent{Action: PointerMove, X: 231, Y: 229})

	pos := elementPosition(t, sess, el.ID)
	if pos.Width != 130 || pos.Height != 130 {
		t.Errorf("size = %vx%v, want 130x130 (resize, not drag)", pos.Width, pos.Height)
	}
}

func TestCanvas_SinglePointer(t *testing.T) {
	sess, c, el := canvasFixture(t, NewRect(0, 0, 794, 1123))
	c.Dispatch(PointerEvent{Action: PointerPress, X: 150, Y: 150})

	// A second press mid-gesture must not start another gesture or change
	// the selection.
	sess2 := sess.SelectedID()
	if c.Dispatch(PointerEvent{Action: PointerPress, X: 400, Y: 400}) {
		t.Errorf("second press consumed mid-gesture")
	}
	if sess.SelectedID() != sess2 {
		t.Errorf("selection changed mid-gesture")
	}

	c.Dispatch(PointerEvent{Action: PointerMove, X: 300, Y: 300})
	if pos := elementPosition(t, sess, el.ID); pos.X != 300 {
		t.Errorf("drag did not survive the second press")
	}
}

func TestCanvas_PressOnEmptyCanvasClearsSelection(t *testing.T) {
	sess, c, el := canvasFixture(t, NewRect(0, 0, 794, 1123))
	sess.Select(el.ID)

	c.Dispatch(PointerEvent{Action: PointerPress, X: 700, Y: 900})
	if sess.SelectedID() != "" {
		t.Errorf("selection = %q, want cleared", sess.SelectedID())
	}
	if c.GestureActive() {
		t.Errorf("gesture started on empty canvas")
	}
}

func TestCanvas_MissingElementNeverStartsGesture(t *testing.T) {
	_, c, _ := canvasFixture(t, NewRect(0, 0, 794, 1123))

	if c.StartDrag("ghost") {
		t.Errorf("StartDrag entered a gesture for a missing element")
	}
	if c.StartResize("ghost", HandleSE, 0, 0) {
		t.Errorf("StartResize entered a gesture for a missing element")
	}
	if c.GestureActive() {
		t.Errorf("gesture active after refused starts")
	}
}

func TestCanvas_DeleteMidGestureTearsDown(t *testing.T) {
	sess, c, el := canvasFixture(t, NewRect(0, 0, 794, 1123))
	c.Dispatch(PointerEvent{Action: PointerPress, X: 150, Y: 150})

	sess.DeleteElement(el.ID)
	if c.GestureActive() {
		t.Errorf("gesture survived element deletion")
	}
	if c.Dispatch(PointerEvent{Action: PointerMove, X: 300, Y: 300}) {
		t.Errorf("move consumed after teardown")
	}
}

func TestCanvas_MoveAfterSilentRemovalTearsDown(t *testing.T) {
	sess, c, el := canvasFixture(t, NewRect(0, 0, 794, 1123))
	c.Dispatch(PointerEvent{Action: PointerPress, X: 150, Y: 150})

	// Remove the element without going through DeleteElement, so no
	// removal event fires. The next move must notice and tear down.
	sess.Replace(sess.Document().RemoveElement(el.ID))
	if c.Dispatch(PointerEvent{Action: PointerMove, X: 300, Y: 300}) {
		t.Errorf("move consumed for a vanished element")
	}
	if c.GestureActive() {
		t.Errorf("gesture survived element removal")
	}
}

func TestCanvas_TopmostElementWins(t *testing.T) {
	under := NewElement(ElementText, WithPosition(100, 100), WithSize(100, 100))
	over := NewElement(ElementText, WithPosition(150, 150), WithSize(100, 100))
	sess := NewSession(NewDocument("t").AddElement(under).AddElement(over))
	c := NewCanvas(sess, NewRect(0, 0, 794, 1123))
	defer c.Close()

	// (175, 175) is inside both; the later element renders on top.
	c.Dispatch(PointerEvent{Action: PointerPress, X: 175, Y: 175})
	if sess.SelectedID() != over.ID {
		t.Errorf("selected %q, want the topmost element", sess.SelectedID())
	}
}
