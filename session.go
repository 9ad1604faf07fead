package invoicekit

import (
	"context"

	"github.com/invoicekit/invoicekit/internal/debug"
)

// NoticeLevel classifies a user-visible notification.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeError
)

// Notice is a transient user-visible notification, e.g. the outcome of a
// save. Notices never carry fatal conditions.
type Notice struct {
	Level   NoticeLevel
	Message string
	Err     error
}

// Saver is the slice of the persistence contract a session needs for Save.
// store.Store satisfies it.
type Saver interface {
	Create(ctx context.Context, doc Document) (Document, error)
	Update(ctx context.Context, doc Document) (Document, error)
}

// Session owns the document being edited, the element selection, and the
// notification streams the chrome subscribes to. The document is replaced
// wholesale on every mutation.
//
// A session is single-writer: all mutation entry points must run from one
// goroutine (the UI event loop). Save captures a snapshot and may be run
// concurrently, so an in-flight save can race with later edits; the session
// does not serialize saves against edits.
type Session struct {
	doc      Document
	selected string

	// DocumentReplaced fires with the new document after every mutation.
	DocumentReplaced *Events[Document]
	// SelectionChanged fires with the selected element id, "" for none.
	SelectionChanged *Events[string]
	// ElementRemoved fires with the id of every element deleted through
	// the session, before the selection is updated. The canvas controller
	// uses it to tear down a gesture bound to a deleted element.
	ElementRemoved *Events[string]
	// Notices carries user-visible notifications such as save outcomes.
	Notices *Events[Notice]
}

// NewSession creates an editing session over the given document.
func NewSession(doc Document) *Session {
	return &Session{
		doc:              doc,
		DocumentReplaced: NewEvents[Document](),
		SelectionChanged: NewEvents[string](),
		ElementRemoved:   NewEvents[string](),
		Notices:          NewEvents[Notice](),
	}
}

// Document returns the current document snapshot.
func (s *Session) Document() Document {
	return s.doc
}

// Replace installs doc as the current document and notifies subscribers.
func (s *Session) Replace(doc Document) {
	s.doc = doc
	s.DocumentReplaced.Emit(doc)
}

// Apply runs a mutation function against the current document and installs
// the result.
func (s *Session) Apply(fn func(Document) Document) {
	s.Replace(fn(s.doc))
}

// SelectedID returns the id of the selected element, "" for none.
func (s *Session) SelectedID() string {
	return s.selected
}

// Selected returns the selected element. ok is false when nothing is
// selected or the selected element no longer exists; callers simply skip
// rendering the editor panel in that case.
func (s *Session) Selected() (Element, bool) {
	if s.selected == "" {
		return Element{}, false
	}
	return s.doc.FindElement(s.selected)
}

// Select changes the selection. Pass "" to clear it.
func (s *Session) Select(id string) {
	if s.selected == id {
		return
	}
	s.selected = id
	s.SelectionChanged.Emit(id)
}

// --- Dataset mutations ---

func (s *Session) SetScalar(f ScalarField, value string) {
	s.Replace(s.doc.SetScalar(f, value))
}

func (s *Session) SetContactField(section Section, f ContactField, value string) {
	s.Replace(s.doc.SetContactField(section, f, value))
}

func (s *Session) SetItemField(index int, f ItemField, value string) {
	s.Replace(s.doc.SetItemField(index, f, value))
}

func (s *Session) AddItem() {
	s.Replace(s.doc.AddItem())
}

func (s *Session) RemoveItem(index int) {
	s.Replace(s.doc.RemoveItem(index))
}

// --- Element mutations ---

// AddElement appends the element and selects it.
func (s *Session) AddElement(el Element) {
	s.Replace(s.doc.AddElement(el))
	s.Select(el.ID)
}

// DeleteElement removes the element and clears the selection if the
// deleted element was selected.
func (s *Session) DeleteElement(id string) {
	if _, ok := s.doc.FindElement(id); !ok {
		return
	}
	s.Replace(s.doc.RemoveElement(id))
	s.ElementRemoved.Emit(id)
	if s.selected == id {
		s.Select("")
	}
}

func (s *Session) ReplaceElement(el Element) {
	s.Replace(s.doc.ReplaceElement(el))
}

func (s *Session) MoveElement(id string, x, y float64) {
	s.Replace(s.doc.MoveElement(id, x, y))
}

func (s *Session) ResizeElement(id string, width, height float64) {
	s.Replace(s.doc.ResizeElement(id, width, height))
}

func (s *Session) RotateElement(id string, deg float64) {
	s.Replace(s.doc.RotateElement(id, deg))
}

func (s *Session) SetElementContent(id string, c Content) {
	s.Replace(s.doc.SetElementContent(id, c))
}

func (s *Session) SetElementStyle(id string, st Style) {
	s.Replace(s.doc.SetElementStyle(id, st))
}

func (s *Session) SetElementBinding(id, path string) {
	s.Replace(s.doc.SetElementBinding(id, path))
}

func (s *Session) Rename(name string) {
	s.Replace(s.doc.Rename(name))
}

func (s *Session) SetPaperSize(p PaperSize) {
	s.Replace(s.doc.SetPaperSize(p))
}

// Save persists the document snapshot taken at call time: Create when the
// document has never been stored, Update otherwise. On a successful create
// the session adopts the stored document (id and timestamps); on a
// successful update the in-memory document is left as-is, since edits may
// have landed while the save was in flight. Failures surface as an error
// notice and leave the document unchanged.
func (s *Session) Save(ctx context.Context, st Saver) error {
	snapshot := s.doc

	if snapshot.ID == "" {
		created, err := st.Create(ctx, snapshot)
		if err != nil {
			debug.Log("session: create failed: %v", err)
			s.Notices.Emit(Notice{Level: NoticeError, Message: "Failed to save invoice", Err: err})
			return err
		}
		s.Replace(created)
		s.Notices.Emit(Notice{Level: NoticeInfo, Message: "Invoice created successfully"})
		return nil
	}

	if _, err := st.Update(ctx, snapshot); err != nil {
		debug.Log("session: update failed: %v", err)
		s.Notices.Emit(Notice{Level: NoticeError, Message: "Failed to save invoice", Err: err})
		return err
	}
	s.Notices.Emit(Notice{Level: NoticeInfo, Message: "Invoice updated successfully"})
	return nil
}
