package invoicekit

// PaperSize selects the fixed pixel dimensions of the document canvas.
// Dimensions are pixels at 96 dpi.
type PaperSize string

const (
	// PaperA4 is 794x1123 px (210x297 mm at 96 dpi).
	PaperA4 PaperSize = "A4"
	// PaperA5 is 559x794 px (148x210 mm at 96 dpi).
	PaperA5 PaperSize = "A5"
	// PaperSlip is an 800x600 px receipt slip.
	PaperSlip PaperSize = "SLIP"
)

// paperDimensions maps each paper size to its canvas extent in pixels.
var paperDimensions = map[PaperSize]Size{
	PaperA4:   {Width: 794, Height: 1123},
	PaperA5:   {Width: 559, Height: 794},
	PaperSlip: {Width: 800, Height: 600},
}

// Size is a width/height pair in page pixels.
type Size struct {
	Width  float64
	Height float64
}

// Dimensions returns the canvas extent for the paper size.
// Unknown sizes fall back to A4.
func (p PaperSize) Dimensions() Size {
	if s, ok := paperDimensions[p]; ok {
		return s
	}
	return paperDimensions[PaperA4]
}

// Valid reports whether p is one of the supported paper sizes.
func (p PaperSize) Valid() bool {
	_, ok := paperDimensions[p]
	return ok
}

// PaperSizes returns the supported paper sizes in display order.
func PaperSizes() []PaperSize {
	return []PaperSize{PaperA4, PaperA5, PaperSlip}
}
