package invoicekit

import (
	"encoding/json"
	"fmt"
)

// ElementType identifies the kind of visual element placed on the canvas.
type ElementType string

const (
	ElementText  ElementType = "text"
	ElementImage ElementType = "image"
	ElementLine  ElementType = "line"
	ElementTable ElementType = "table"
)

// Content is the renderable payload of an element: plain text, a 2D grid of
// strings, or nothing (nil). The concrete types are TextContent and
// TableContent.
type Content interface {
	isContent()
}

// TextContent is a plain string payload. It may contain {{path}} binding
// tokens; the stored value is always the template, never resolved text.
type TextContent string

func (TextContent) isContent() {}

// TableContent is a row-major grid of cell strings.
type TableContent [][]string

func (TableContent) isContent() {}

// Position is an element's geometry in page-relative pixels. Width, Height,
// and Rotation are optional; zero means unset.
type Position struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`
}

// Style holds presentational attributes. None of these fields carry
// invariants; they pass through the mutation protocol untouched.
type Style struct {
	FontFamily      string  `json:"fontFamily,omitempty"`
	FontSize        float64 `json:"fontSize,omitempty"`
	FontWeight      string  `json:"fontWeight,omitempty"`
	Color           string  `json:"color,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	TextAlign       string  `json:"textAlign,omitempty"`
	Padding         float64 `json:"padding,omitempty"`
	BorderWidth     float64 `json:"borderWidth,omitempty"`
	BorderColor     string  `json:"borderColor,omitempty"`
	BorderStyle     string  `json:"borderStyle,omitempty"`
	BorderRadius    float64 `json:"borderRadius,omitempty"`
}

// Element is one positioned visual item on the canvas. The ID is generated
// at creation and stable for the element's lifetime. FieldVariable is an
// optional dot-path into the Dataset driving display substitution.
type Element struct {
	ID            string      `json:"id"`
	Type          ElementType `json:"type"`
	Content       Content     `json:"content"`
	Position      Position    `json:"position"`
	Style         Style       `json:"style"`
	FieldVariable string      `json:"fieldVariable,omitempty"`
}

// elementJSON mirrors Element with an untyped content field for the wire
// shape: string, [][]string, or null.
type elementJSON struct {
	ID            string          `json:"id"`
	Type          ElementType     `json:"type"`
	Content       json.RawMessage `json:"content"`
	Position      Position        `json:"position"`
	Style         Style           `json:"style"`
	FieldVariable string          `json:"fieldVariable,omitempty"`
}

// MarshalJSON encodes Content as a bare string, a nested string array, or
// null, matching the stored document format.
func (e Element) MarshalJSON() ([]byte, error) {
	raw := json.RawMessage("null")
	switch c := e.Content.(type) {
	case nil:
	case TextContent:
		b, err := json.Marshal(string(c))
		if err != nil {
			return nil, err
		}
		raw = b
	case TableContent:
		b, err := json.Marshal([][]string(c))
		if err != nil {
			return nil, err
		}
		raw = b
	default:
		return nil, fmt.Errorf("element %s: unsupported content type %T", e.ID, e.Content)
	}
	return json.Marshal(elementJSON{
		ID:            e.ID,
		Type:          e.Type,
		Content:       raw,
		Position:      e.Position,
		Style:         e.Style,
		FieldVariable: e.FieldVariable,
	})
}

// UnmarshalJSON decodes the wire content shape back into the Content sum.
func (e *Element) UnmarshalJSON(data []byte) error {
	var ej elementJSON
	if err := json.Unmarshal(data, &ej); err != nil {
		return err
	}
	e.ID = ej.ID
	e.Type = ej.Type
	e.Position = ej.Position
	e.Style = ej.Style
	e.FieldVariable = ej.FieldVariable
	e.Content = nil

	if len(ej.Content) == 0 || string(ej.Content) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(ej.Content, &s); err == nil {
		e.Content = TextContent(s)
		return nil
	}
	var grid [][]string
	if err := json.Unmarshal(ej.Content, &grid); err == nil {
		e.Content = TableContent(grid)
		return nil
	}
	return fmt.Errorf("element %s: content is neither string nor string grid", ej.ID)
}

// Text returns the element's content as a string, or "" if the content is
// empty or tabular.
func (e Element) Text() string {
	if t, ok := e.Content.(TextContent); ok {
		return string(t)
	}
	return ""
}
