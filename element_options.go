package invoicekit

// ElementOption configures a new Element.
type ElementOption func(*Element)

// WithPosition sets the element's top-left corner in page pixels.
func WithPosition(x, y float64) ElementOption {
	return func(e *Element) {
		e.Position.X = x
		e.Position.Y = y
	}
}

// WithSize sets the element's width and height in page pixels.
func WithSize(width, height float64) ElementOption {
	return func(e *Element) {
		e.Position.Width = width
		e.Position.Height = height
	}
}

// WithRotation sets the element's rotation in degrees.
func WithRotation(deg float64) ElementOption {
	return func(e *Element) {
		e.Position.Rotation = deg
	}
}

// WithContent sets the element's content payload.
func WithContent(c Content) ElementOption {
	return func(e *Element) {
		e.Content = c
	}
}

// WithStyle replaces the element's style wholesale.
func WithStyle(s Style) ElementOption {
	return func(e *Element) {
		e.Style = s
	}
}

// WithBinding sets the element's field-binding path.
func WithBinding(path string) ElementOption {
	return func(e *Element) {
		e.FieldVariable = path
	}
}

// NewElement creates an element of the given type with a generated id,
// applying any options over the type's toolbar defaults.
func NewElement(t ElementType, opts ...ElementOption) Element {
	e := Element{ID: GenerateID(), Type: t}
	switch t {
	case ElementText:
		e.Content = TextContent("New Text")
		e.Position = Position{X: 100, Y: 100, Width: 200, Height: 40}
		e.Style = Style{FontFamily: "Inter", FontSize: 16, Color: "#1A1F2C"}
	case ElementImage:
		e.Content = TextContent("/placeholder.svg")
		e.Position = Position{X: 100, Y: 100, Width: 150, Height: 150}
	case ElementLine:
		e.Position = Position{X: 100, Y: 100, Width: 300, Height: 2}
		e.Style = Style{BackgroundColor: "#1A1F2C"}
	case ElementTable:
		e.Content = TableContent{{"", ""}, {"", ""}}
		e.Position = Position{X: 100, Y: 100, Width: 400, Height: 120}
		e.Style = Style{FontSize: 14, Color: "#1A1F2C", BorderWidth: 1, BorderColor: "#8E9196"}
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewHeading creates a large bold text element.
func NewHeading(text string, opts ...ElementOption) Element {
	base := []ElementOption{
		WithContent(TextContent(text)),
		WithSize(300, 60),
		WithStyle(Style{FontFamily: "Inter", FontSize: 28, FontWeight: "700", Color: "#1A1F2C"}),
	}
	return NewElement(ElementText, append(base, opts...)...)
}

// NewBoundText creates a text element whose content carries a binding token
// for the given dataset path, e.g. NewBoundText("Date: ", "date") renders as
// "Date: {{date}}" until resolved against a dataset.
func NewBoundText(label, path string, opts ...ElementOption) Element {
	base := []ElementOption{
		WithContent(TextContent(label + "{{" + path + "}}")),
		WithSize(300, 40),
		WithStyle(Style{FontSize: 16, Color: "#8E9196"}),
		WithBinding(path),
	}
	return NewElement(ElementText, append(base, opts...)...)
}
