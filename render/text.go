// Package render produces display artifacts from a document: a plain-text
// preview for terminals and a PDF for print/export. Binding tokens are
// resolved against the document's dataset on the way out; the document
// itself is never modified.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/invoicekit/invoicekit"
)

// Text renders a terminal preview of the document: elements in reading
// order with bindings resolved, followed by the line items and derived
// totals as a bordered table.
func Text(doc invoicekit.Document) string {
	var b strings.Builder

	size := doc.CanvasSize()
	fmt.Fprintf(&b, "%s  [%s %gx%g]\n\n", doc.Name, doc.PaperSize, size.Width, size.Height)

	for _, el := range readingOrder(doc.Elements) {
		switch el.Type {
		case invoicekit.ElementText:
			resolved := invoicekit.Resolve(el.Content, doc.Data)
			if t, ok := resolved.(invoicekit.TextContent); ok && t != "" {
				b.WriteString(string(t))
				b.WriteString("\n")
			}
		case invoicekit.ElementImage:
			fmt.Fprintf(&b, "[image: %s]\n", el.Text())
		case invoicekit.ElementLine:
			b.WriteString(strings.Repeat("-", 40))
			b.WriteString("\n")
		case invoicekit.ElementTable:
			if grid, ok := el.Content.(invoicekit.TableContent); ok {
				b.WriteString(renderGrid(grid))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(ItemsTable(doc.Data))
	b.WriteString("\n")
	return b.String()
}

// ItemsTable renders the dataset's line items with the derived totals as
// footer rows.
func ItemsTable(data invoicekit.Dataset) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Description", "Qty", "Price", "Amount"})
	for _, item := range data.Items {
		t.AppendRow(table.Row{item.Description, item.Quantity, money(item.Price), money(item.Amount)})
	}
	t.AppendFooter(table.Row{"", "", "Subtotal", money(data.Subtotal)})
	t.AppendFooter(table.Row{"", "", "Tax (10%)", money(data.Tax)})
	t.AppendFooter(table.Row{"", "", "Total", money(data.Total)})
	return t.Render()
}

// renderGrid renders a table element's cell grid.
func renderGrid(grid invoicekit.TableContent) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	for _, row := range grid {
		cells := make(table.Row, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		t.AppendRow(cells)
	}
	return t.Render()
}

// readingOrder sorts elements top-to-bottom, then left-to-right. The
// document's element order is z-order, which is the wrong order for a
// linear preview.
func readingOrder(els []invoicekit.Element) []invoicekit.Element {
	sorted := make([]invoicekit.Element, len(els))
	copy(sorted, els)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Position, sorted[j].Position
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return sorted
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
