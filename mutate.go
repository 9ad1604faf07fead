package invoicekit

import (
	"math"
	"strconv"
	"strings"
)

// This file is the document mutation protocol: the only sanctioned way a
// Document becomes a different Document. Every method copies what it
// changes and shares the rest, and any method that touches the item
// sequence rederives subtotal/tax/total in the same step.

// coerceNumber converts quantity/price form input to a number. Invalid,
// NaN, or infinite input is rejected so a bad keystroke can never poison
// the derived totals.
func coerceNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// SetScalar returns a document with one top-level dataset scalar replaced.
// An unrecognized status value leaves the document unchanged.
func (d Document) SetScalar(f ScalarField, value string) Document {
	data := d.Data
	switch f {
	case FieldTitle:
		data.Title = value
	case FieldInvoiceNumber:
		data.InvoiceNumber = value
	case FieldDate:
		data.Date = value
	case FieldDueDate:
		data.DueDate = value
	case FieldNotes:
		data.Notes = value
	case FieldTerms:
		data.Terms = value
	case FieldStatus:
		st, ok := ParseStatus(value)
		if !ok {
			return d
		}
		data.Status = st
	default:
		return d
	}
	d.Data = data
	return d
}

// SetContactField returns a document with one key of the named contact
// record replaced.
func (d Document) SetContactField(section Section, f ContactField, value string) Document {
	data := d.Data
	contact := data.Company
	if section == SectionCustomer {
		contact = data.Customer
	}
	switch f {
	case ContactName:
		contact.Name = value
	case ContactEmail:
		contact.Email = value
	case ContactAddress:
		contact.Address = value
	case ContactPhone:
		contact.Phone = value
	case ContactLogo:
		contact.Logo = value
	default:
		return d
	}
	if section == SectionCustomer {
		data.Customer = contact
	} else {
		data.Company = contact
	}
	d.Data = data
	return d
}

// SetItemField returns a document with one field of the item at index
// replaced. An out-of-range index is a no-op. Description is stored as
// given; quantity and price are coerced to numbers (rejected input is a
// no-op) and the item's amount plus the dataset totals are rederived in the
// same step.
func (d Document) SetItemField(index int, f ItemField, value string) Document {
	if index < 0 || index >= len(d.Data.Items) {
		return d
	}
	items := d.Data.cloneItems()
	item := items[index]
	switch f {
	case ItemDescription:
		item.Description = value
	case ItemQuantity, ItemPrice:
		n, ok := coerceNumber(value)
		if !ok {
			return d
		}
		if f == ItemQuantity {
			item.Quantity = n
		} else {
			item.Price = n
		}
		item.Amount = item.Quantity * item.Price
	default:
		return d
	}
	items[index] = item
	d.Data = d.Data.withItems(items)
	return d
}

// AddItem returns a document with a default line item appended and totals
// rederived.
func (d Document) AddItem() Document {
	items := append(d.Data.cloneItems(), LineItem{
		Description: "New Item",
		Quantity:    1,
		Price:       0,
		Amount:      0,
	})
	d.Data = d.Data.withItems(items)
	return d
}

// RemoveItem returns a document with the item at index deleted and totals
// rederived. An out-of-range index is a no-op.
func (d Document) RemoveItem(index int) Document {
	if index < 0 || index >= len(d.Data.Items) {
		return d
	}
	items := d.Data.cloneItems()
	items = append(items[:index], items[index+1:]...)
	d.Data = d.Data.withItems(items)
	return d
}

// --- Element mutations (never touch the dataset or totals) ---

// AddElement returns a document with the element appended.
func (d Document) AddElement(el Element) Document {
	d.Elements = append(d.cloneElements(), el)
	return d
}

// RemoveElement returns a document without the element of the given id.
// An unknown id is a no-op.
func (d Document) RemoveElement(id string) Document {
	els := make([]Element, 0, len(d.Elements))
	for _, el := range d.Elements {
		if el.ID != id {
			els = append(els, el)
		}
	}
	d.Elements = els
	return d
}

// ReplaceElement returns a document with the element of the same id
// replaced wholesale. An unknown id is a no-op.
func (d Document) ReplaceElement(el Element) Document {
	return d.updateElement(el.ID, func(Element) Element { return el })
}

// MoveElement returns a document with the element's position set.
func (d Document) MoveElement(id string, x, y float64) Document {
	return d.updateElement(id, func(el Element) Element {
		el.Position.X = x
		el.Position.Y = y
		return el
	})
}

// ResizeElement returns a document with the element's size set.
func (d Document) ResizeElement(id string, width, height float64) Document {
	return d.updateElement(id, func(el Element) Element {
		el.Position.Width = width
		el.Position.Height = height
		return el
	})
}

// RotateElement returns a document with the element's rotation set, in
// degrees. Rotation is not clamped by canvas bounds.
func (d Document) RotateElement(id string, deg float64) Document {
	return d.updateElement(id, func(el Element) Element {
		el.Position.Rotation = deg
		return el
	})
}

// SetElementContent returns a document with the element's content replaced.
// The stored content is the template; binding resolution never writes here.
func (d Document) SetElementContent(id string, c Content) Document {
	return d.updateElement(id, func(el Element) Element {
		el.Content = c
		return el
	})
}

// SetElementStyle returns a document with the element's style replaced.
func (d Document) SetElementStyle(id string, s Style) Document {
	return d.updateElement(id, func(el Element) Element {
		el.Style = s
		return el
	})
}

// SetElementBinding returns a document with the element's field-binding
// path replaced. An empty path clears the binding.
func (d Document) SetElementBinding(id, path string) Document {
	return d.updateElement(id, func(el Element) Element {
		el.FieldVariable = path
		return el
	})
}

// updateElement copies the elements slice and replaces the one matching
// element through fn. Unknown ids leave the document unchanged.
func (d Document) updateElement(id string, fn func(Element) Element) Document {
	for i, el := range d.Elements {
		if el.ID == id {
			els := d.cloneElements()
			els[i] = fn(el)
			d.Elements = els
			return d
		}
	}
	return d
}

// Rename returns a document with a new display name.
func (d Document) Rename(name string) Document {
	d.Name = name
	return d
}

// SetPaperSize returns a document with a new paper size. Unknown sizes are
// a no-op.
func (d Document) SetPaperSize(p PaperSize) Document {
	if !p.Valid() {
		return d
	}
	d.PaperSize = p
	return d
}
