package invoicekit

import (
	"regexp"
	"strconv"
	"strings"
)

var bindingToken = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Resolve substitutes {{dot.path}} tokens in text content with values from
// the dataset, for display only. Non-text content and text without tokens
// pass through unchanged. Each token resolves independently: if every path
// segment reaches a defined, non-empty value the token is replaced with its
// string form, otherwise the token stays verbatim. Resolution is a single
// pass; substituted values are not rescanned. Resolve never fails and never
// mutates the element's stored content.
func Resolve(content Content, data Dataset) Content {
	text, ok := content.(TextContent)
	if !ok || !strings.Contains(string(text), "{{") {
		return content
	}
	resolved := bindingToken.ReplaceAllStringFunc(string(text), func(token string) string {
		path := strings.TrimSpace(token[2 : len(token)-2])
		value, ok := data.lookup(strings.Split(path, "."))
		if !ok || value == "" {
			return token
		}
		return value
	})
	return TextContent(resolved)
}

// ResolveText is Resolve for plain strings.
func ResolveText(text string, data Dataset) string {
	c := Resolve(TextContent(text), data)
	return string(c.(TextContent))
}

// lookup walks the dataset by path segments. It returns false when a
// segment names no field or when segments remain after reaching a leaf
// (a leaf value is not traversable).
func (d Dataset) lookup(parts []string) (string, bool) {
	if len(parts) == 0 {
		return "", false
	}
	head, rest := parts[0], parts[1:]
	switch head {
	case "company":
		return d.Company.lookup(rest)
	case "customer":
		return d.Customer.lookup(rest)
	}
	if len(rest) > 0 {
		return "", false
	}
	switch head {
	case "title":
		return d.Title, true
	case "invoiceNumber":
		return d.InvoiceNumber, true
	case "date":
		return d.Date, true
	case "dueDate":
		return d.DueDate, true
	case "notes":
		return d.Notes, true
	case "terms":
		return d.Terms, true
	case "status":
		return string(d.Status), true
	case "subtotal":
		return formatAmount(d.Subtotal), true
	case "tax":
		return formatAmount(d.Tax), true
	case "total":
		return formatAmount(d.Total), true
	}
	return "", false
}

func (c Contact) lookup(parts []string) (string, bool) {
	if len(parts) != 1 {
		return "", false
	}
	switch parts[0] {
	case "name":
		return c.Name, true
	case "email":
		return c.Email, true
	case "address":
		return c.Address, true
	case "phone":
		return c.Phone, true
	case "logo":
		return c.Logo, true
	}
	return "", false
}

// formatAmount renders a derived scalar in minimal decimal form, so 3200
// prints as "3200" and 10.5 as "10.5".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
