package invoicekit

// BasicTemplate returns the stock invoice template: a header, the bound
// invoice metadata, and the From/To blocks, over a sample dataset. The
// memory store seeds itself with it and the CLI can emit it as a starting
// point.
func BasicTemplate() Document {
	return Document{
		ID:        "inv-001",
		Name:      "Basic Invoice Template",
		PaperSize: PaperA4,
		Elements: []Element{
			{
				ID:       "elem-001",
				Type:     ElementText,
				Content:  TextContent("INVOICE"),
				Position: Position{X: 50, Y: 50, Width: 300, Height: 60},
				Style:    Style{FontFamily: "Inter", FontSize: 32, FontWeight: "700", Color: "#1A1F2C"},
			},
			{
				ID:            "elem-002",
				Type:          ElementText,
				Content:       TextContent("Invoice #: {{invoiceNumber}}"),
				Position:      Position{X: 50, Y: 120, Width: 300, Height: 30},
				Style:         Style{FontSize: 16, Color: "#8E9196"},
				FieldVariable: "invoiceNumber",
			},
			{
				ID:            "elem-003",
				Type:          ElementText,
				Content:       TextContent("Date: {{date}}"),
				Position:      Position{X: 50, Y: 150, Width: 300, Height: 30},
				Style:         Style{FontSize: 16, Color: "#8E9196"},
				FieldVariable: "date",
			},
			{
				ID:            "elem-004",
				Type:          ElementText,
				Content:       TextContent("Due Date: {{dueDate}}"),
				Position:      Position{X: 50, Y: 180, Width: 300, Height: 30},
				Style:         Style{FontSize: 16, Color: "#8E9196"},
				FieldVariable: "dueDate",
			},
			{
				ID:       "elem-005",
				Type:     ElementText,
				Content:  TextContent("From:"),
				Position: Position{X: 50, Y: 240, Width: 300, Height: 30},
				Style:    Style{FontSize: 18, FontWeight: "600", Color: "#1A1F2C"},
			},
			{
				ID:            "elem-006",
				Type:          ElementText,
				Content:       TextContent("{{company.name}}\n{{company.address}}\n{{company.email}}\n{{company.phone}}"),
				Position:      Position{X: 50, Y: 270, Width: 300, Height: 100},
				Style:         Style{FontSize: 16, Color: "#8E9196"},
				FieldVariable: "company",
			},
			{
				ID:       "elem-007",
				Type:     ElementText,
				Content:  TextContent("To:"),
				Position: Position{X: 400, Y: 240, Width: 300, Height: 30},
				Style:    Style{FontSize: 18, FontWeight: "600", Color: "#1A1F2C"},
			},
			{
				ID:            "elem-008",
				Type:          ElementText,
				Content:       TextContent("{{customer.name}}\n{{customer.address}}\n{{customer.email}}\n{{customer.phone}}"),
				Position:      Position{X: 400, Y: 270, Width: 300, Height: 100},
				Style:         Style{FontSize: 16, Color: "#8E9196"},
				FieldVariable: "customer",
			},
		},
		Data: Dataset{
			Title: "Invoice",
			Customer: Contact{
				Name:    "John Doe",
				Email:   "john@example.com",
				Address: "123 Main St, Anytown, CA 12345",
				Phone:   "+1 (555) 123-4567",
			},
			Company: Contact{
				Name:    "Design Agency Inc.",
				Email:   "contact@designagency.com",
				Address: "456 Business Ave, Suite 200, San Francisco, CA 94107",
				Phone:   "+1 (555) 987-6543",
			},
			Items: []LineItem{
				{Description: "Website Design", Quantity: 1, Price: 1200, Amount: 1200},
				{Description: "UI/UX Consulting", Quantity: 10, Price: 150, Amount: 1500},
				{Description: "Content Creation", Quantity: 5, Price: 100, Amount: 500},
			},
			Subtotal:      3200,
			Tax:           320,
			Total:         3520,
			Date:          "2025-05-01",
			DueDate:       "2025-05-15",
			Notes:         "Thank you for your business!",
			Terms:         "Payment due within 14 days of receipt.",
			Status:        StatusSent,
			InvoiceNumber: "INV-2025-001",
		},
	}
}
