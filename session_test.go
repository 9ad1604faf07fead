package invoicekit

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeSaver struct {
	created   []Document
	updated   []Document
	createErr error
	updateErr error
}

func (f *fakeSaver) Create(ctx context.Context, doc Document) (Document, error) {
	if f.createErr != nil {
		return Document{}, f.createErr
	}
	doc.ID = "inv-test"
	doc.CreatedAt = time.Unix(1000, 0)
	doc.UpdatedAt = doc.CreatedAt
	f.created = append(f.created, doc)
	return doc, nil
}

func (f *fakeSaver) Update(ctx context.Context, doc Document) (Document, error) {
	if f.updateErr != nil {
		return Document{}, f.updateErr
	}
	f.updated = append(f.updated, doc)
	return doc, nil
}

func TestSession_MutationsReplaceDocument(t *testing.T) {
	sess := NewSession(itemsDocument())

	var replaced []Document
	sess.DocumentReplaced.Subscribe(func(d Document) {
		replaced = append(replaced, d)
	})

	sess.SetItemField(0, ItemQuantity, "5")
	if len(replaced) != 1 {
		t.Fatalf("replacements = %d, want 1", len(replaced))
	}
	if replaced[0].Data.Items[0].Quantity != 5 {
		t.Errorf("emitted document is stale: %+v", replaced[0].Data.Items[0])
	}
	if sess.Document().Data.Items[0].Quantity != 5 {
		t.Errorf("session document is stale")
	}
}

func TestSession_AddElementSelectsIt(t *testing.T) {
	sess := NewSession(NewDocument("t"))
	el := NewElement(ElementText)
	sess.AddElement(el)

	if sess.SelectedID() != el.ID {
		t.Errorf("selected = %q, want %q", sess.SelectedID(), el.ID)
	}
	if _, ok := sess.Selected(); !ok {
		t.Errorf("Selected() not found after add")
	}
}

func TestSession_DeleteElementClearsSelection(t *testing.T) {
	el := NewElement(ElementText)
	sess := NewSession(NewDocument("t").AddElement(el))
	sess.Select(el.ID)

	var removed []string
	sess.ElementRemoved.Subscribe(func(id string) { removed = append(removed, id) })

	sess.DeleteElement(el.ID)
	if sess.SelectedID() != "" {
		t.Errorf("selection = %q, want cleared", sess.SelectedID())
	}
	if len(removed) != 1 || removed[0] != el.ID {
		t.Errorf("removal events = %v", removed)
	}

	// Deleting an unknown element is silent and emits nothing.
	sess.DeleteElement("ghost")
	if len(removed) != 1 {
		t.Errorf("ghost delete emitted an event")
	}
}

func TestSession_SelectedForMissingElement(t *testing.T) {
	sess := NewSession(NewDocument("t"))
	sess.Select("ghost")
	if _, ok := sess.Selected(); ok {
		t.Errorf("Selected() = ok for missing element; the panel should not render")
	}
}

func TestSession_SaveCreate(t *testing.T) {
	sess := NewSession(NewDocument("t"))
	saver := &fakeSaver{}

	var notices []Notice
	sess.Notices.Subscribe(func(n Notice) { notices = append(notices, n) })

	if err := sess.Save(context.Background(), saver); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if len(saver.created) != 1 {
		t.Fatalf("creates = %d, want 1", len(saver.created))
	}
	// The session adopts the stored form.
	if sess.Document().ID != "inv-test" {
		t.Errorf("document id = %q, want inv-test", sess.Document().ID)
	}
	if len(notices) != 1 || notices[0].Level != NoticeInfo {
		t.Errorf("notices = %+v", notices)
	}
}

func TestSession_SaveUpdate(t *testing.T) {
	doc := NewDocument("t")
	doc.ID = "inv-7"
	sess := NewSession(doc)
	saver := &fakeSaver{}

	if err := sess.Save(context.Background(), saver); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if len(saver.updated) != 1 || saver.updated[0].ID != "inv-7" {
		t.Errorf("updates = %+v", saver.updated)
	}
	if len(saver.created) != 0 {
		t.Errorf("update saved as create")
	}
}

func TestSession_SaveFailureLeavesDocument(t *testing.T) {
	sess := NewSession(NewDocument("t"))
	boom := errors.New("boom")
	saver := &fakeSaver{createErr: boom}

	var notices []Notice
	sess.Notices.Subscribe(func(n Notice) { notices = append(notices, n) })

	err := sess.Save(context.Background(), saver)
	if !errors.Is(err, boom) {
		t.Fatalf("Save() error = %v, want boom", err)
	}
	if sess.Document().ID != "" {
		t.Errorf("document changed on failed save")
	}
	if len(notices) != 1 || notices[0].Level != NoticeError {
		t.Errorf("notices = %+v", notices)
	}
	if !errors.Is(notices[0].Err, boom) {
		t.Errorf("notice error = %v, want boom", notices[0].Err)
	}
}

func TestEvents_Unsubscribe(t *testing.T) {
	bus := NewEvents[int]()
	var got []int

	unsub := bus.Subscribe(func(v int) { got = append(got, v) })
	bus.Subscribe(func(v int) { got = append(got, v*10) })

	bus.Emit(1)
	unsub()
	unsub() // double unsubscribe is harmless
	bus.Emit(2)

	want := []int{1, 10, 20}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("events = %v, want %v", got, want)
			break
		}
	}
}
