package invoicekit

// Field addresses are tagged variants rather than runtime key strings:
// a ScalarField names a top-level dataset scalar, a Section plus
// ContactField names one key of a nested contact record, and an index plus
// ItemField names one key of a line item. Mutations resolve them by
// exhaustive switch, so a wrong-shape address cannot compile.

// ScalarField addresses a top-level Dataset scalar.
type ScalarField int

const (
	FieldTitle ScalarField = iota
	FieldInvoiceNumber
	FieldDate
	FieldDueDate
	FieldNotes
	FieldTerms
	FieldStatus
)

func (f ScalarField) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldInvoiceNumber:
		return "invoiceNumber"
	case FieldDate:
		return "date"
	case FieldDueDate:
		return "dueDate"
	case FieldNotes:
		return "notes"
	case FieldTerms:
		return "terms"
	case FieldStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Section names one of the two nested contact records.
type Section int

const (
	SectionCompany Section = iota
	SectionCustomer
)

func (s Section) String() string {
	if s == SectionCustomer {
		return "customer"
	}
	return "company"
}

// ContactField addresses one key inside a contact record.
type ContactField int

const (
	ContactName ContactField = iota
	ContactEmail
	ContactAddress
	ContactPhone
	ContactLogo
)

func (f ContactField) String() string {
	switch f {
	case ContactName:
		return "name"
	case ContactEmail:
		return "email"
	case ContactAddress:
		return "address"
	case ContactPhone:
		return "phone"
	case ContactLogo:
		return "logo"
	default:
		return "unknown"
	}
}

// ItemField addresses one key inside a line item. Amount is not
// addressable: it is derived from quantity and price.
type ItemField int

const (
	ItemDescription ItemField = iota
	ItemQuantity
	ItemPrice
)

func (f ItemField) String() string {
	switch f {
	case ItemDescription:
		return "description"
	case ItemQuantity:
		return "quantity"
	case ItemPrice:
		return "price"
	default:
		return "unknown"
	}
}
