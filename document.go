package invoicekit

import "time"

// Document is the full editable unit: named element layout plus the dataset
// it is bound to. ID is empty until the document is first persisted;
// timestamps are assigned by the store. Documents are values — every
// mutation method returns a new Document and leaves the receiver untouched.
type Document struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	PaperSize PaperSize `json:"paperSize"`
	Elements  []Element `json:"elements"`
	Data      Dataset   `json:"data"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// NewDocument creates an empty A4 document with a draft dataset and no
// elements.
func NewDocument(name string) Document {
	return Document{
		Name:      name,
		PaperSize: PaperA4,
		Data: Dataset{
			Title:  "Invoice",
			Status: StatusDraft,
		},
	}
}

// FindElement returns the element with the given id, or false if no such
// element exists.
func (d Document) FindElement(id string) (Element, bool) {
	for _, el := range d.Elements {
		if el.ID == id {
			return el, true
		}
	}
	return Element{}, false
}

// CanvasSize returns the document's canvas extent in page pixels.
func (d Document) CanvasSize() Size {
	return d.PaperSize.Dimensions()
}

// cloneElements returns a fresh copy of the elements slice so element
// mutations never alias the previous document's backing array.
func (d Document) cloneElements() []Element {
	els := make([]Element, len(d.Elements))
	copy(els, d.Elements)
	return els
}
