package invoicekit

// Status is the lifecycle state of an invoice dataset.
type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// ParseStatus returns the Status for s, or false if s is not one of the
// four lifecycle states.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return Status(s), true
	}
	return "", false
}

// Contact is one party on the invoice. Company and Customer share the shape;
// Logo is only meaningful on the company record.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Logo    string `json:"logo,omitempty"`
}

// LineItem is one billable row. Amount is derived: it always equals
// Quantity * Price after any mutation through the protocol.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Amount      float64 `json:"amount"`
}

// Dataset is the structured business data a document is bound to. Subtotal,
// Tax, and Total are derived from Items and recomputed in the same step as
// any item mutation.
type Dataset struct {
	Title         string     `json:"title"`
	InvoiceNumber string     `json:"invoiceNumber"`
	Date          string     `json:"date"`
	DueDate       string     `json:"dueDate"`
	Notes         string     `json:"notes,omitempty"`
	Terms         string     `json:"terms,omitempty"`
	Status        Status     `json:"status"`
	Company       Contact    `json:"company"`
	Customer      Contact    `json:"customer"`
	Items         []LineItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
}

// withItems returns a copy of the dataset with the given items and freshly
// derived totals. This is the single point where items and totals change
// together; callers never write one without the other.
func (d Dataset) withItems(items []LineItem) Dataset {
	t := ComputeTotals(items)
	d.Items = items
	d.Subtotal = t.Subtotal
	d.Tax = t.Tax
	d.Total = t.Total
	return d
}

// cloneItems returns a fresh copy of the items slice so a mutated dataset
// never shares its backing array with the previous document.
func (d Dataset) cloneItems() []LineItem {
	items := make([]LineItem, len(d.Items))
	copy(items, d.Items)
	return items
}
