package invoicekit

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestElement_JSONContentShapes(t *testing.T) {
	type tc struct {
		el       Element
		wantJSON string // fragment that must appear in the encoding
	}

	tests := map[string]tc{
		"text content encodes as string": {
			el:       Element{ID: "e1", Type: ElementText, Content: TextContent("INVOICE")},
			wantJSON: `"content":"INVOICE"`,
		},
		"table content encodes as grid": {
			el:       Element{ID: "e2", Type: ElementTable, Content: TableContent{{"a", "b"}}},
			wantJSON: `"content":[["a","b"]]`,
		},
		"empty content encodes as null": {
			el:       Element{ID: "e3", Type: ElementLine},
			wantJSON: `"content":null`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			raw, err := json.Marshal(tt.el)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if !strings.Contains(string(raw), tt.wantJSON) {
				t.Errorf("encoding %s missing %s", raw, tt.wantJSON)
			}

			var back Element
			if err := json.Unmarshal(raw, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			switch want := tt.el.Content.(type) {
			case nil:
				if back.Content != nil {
					t.Errorf("content = %v, want nil", back.Content)
				}
			case TextContent:
				if got, ok := back.Content.(TextContent); !ok || got != want {
					t.Errorf("content = %v, want %q", back.Content, want)
				}
			case TableContent:
				got, ok := back.Content.(TableContent)
				if !ok || len(got) != len(want) || got[0][0] != want[0][0] {
					t.Errorf("content = %v, want %v", back.Content, want)
				}
			}
		})
	}
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	doc := BasicTemplate()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back Document
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Name != doc.Name || back.PaperSize != doc.PaperSize {
		t.Errorf("header = %q/%q, want %q/%q", back.Name, back.PaperSize, doc.Name, doc.PaperSize)
	}
	if len(back.Elements) != len(doc.Elements) {
		t.Fatalf("elements = %d, want %d", len(back.Elements), len(doc.Elements))
	}
	if back.Elements[1].FieldVariable != "invoiceNumber" {
		t.Errorf("fieldVariable = %q", back.Elements[1].FieldVariable)
	}
	if back.Data.Total != 3520 {
		t.Errorf("total = %v, want 3520", back.Data.Total)
	}
}

func TestNewElement_Defaults(t *testing.T) {
	type tc struct {
		typ   ElementType
		check func(Element) bool
	}

	tests := map[string]tc{
		"text gets default copy and geometry": {
			typ: ElementText,
			check: func(e Element) bool {
				return e.Text() == "New Text" && e.Position.Width == 200
			},
		},
		"image gets placeholder": {
			typ: ElementImage,
			check: func(e Element) bool {
				return e.Text() == "/placeholder.svg" && e.Position.Width == 150
			},
		},
		"table gets an empty grid": {
			typ: ElementTable,
			check: func(e Element) bool {
				_, ok := e.Content.(TableContent)
				return ok
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewElement(tt.typ)
			if e.ID == "" {
				t.Errorf("element has no id")
			}
			if !tt.check(e) {
				t.Errorf("defaults = %+v", e)
			}
		})
	}
}

func TestNewElement_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewElement(ElementText).ID
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestNewBoundText(t *testing.T) {
	e := NewBoundText("Date: ", "date")
	if e.Text() != "Date: {{date}}" {
		t.Errorf("content = %q", e.Text())
	}
	if e.FieldVariable != "date" {
		t.Errorf("fieldVariable = %q", e.FieldVariable)
	}
}

func TestPaperSizeDimensions(t *testing.T) {
	type tc struct {
		size  PaperSize
		wantW float64
		wantH float64
	}

	tests := map[string]tc{
		"A4":                       {PaperA4, 794, 1123},
		"A5":                       {PaperA5, 559, 794},
		"SLIP":                     {PaperSlip, 800, 600},
		"unknown falls back to A4": {PaperSize("LEGAL"), 794, 1123},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.size.Dimensions()
			if got.Width != tt.wantW || got.Height != tt.wantH {
				t.Errorf("Dimensions() = %vx%v, want %vx%v", got.Width, got.Height, tt.wantW, tt.wantH)
			}
		})
	}
}
