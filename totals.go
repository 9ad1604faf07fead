package invoicekit

// TaxRate is the fixed tax rate applied to the subtotal.
const TaxRate = 0.10

// Totals holds the three derived scalars of a dataset.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// ComputeTotals derives subtotal, tax, and total from the line items. Pure
// and O(n); an empty or nil sequence yields all-zero totals. Each item
// contributes Quantity * Price regardless of its stored Amount.
func ComputeTotals(items []LineItem) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Quantity * item.Price
	}
	tax := subtotal * TaxRate
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
