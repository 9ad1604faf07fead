package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/invoicekit/invoicekit"
)

// mmPerPixel converts 96 dpi page pixels to millimeters.
const mmPerPixel = 25.4 / 96

// PDF renders the document to a PDF page matching its paper size, with
// every element placed at its canvas position and bindings resolved.
func PDF(doc invoicekit.Document, w io.Writer) error {
	size := doc.CanvasSize()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size: gofpdf.SizeType{
			Wd: size.Width * mmPerPixel,
			Ht: size.Height * mmPerPixel,
		},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	for _, el := range readingOrder(doc.Elements) {
		drawElement(pdf, el, doc.Data)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func drawElement(pdf *gofpdf.Fpdf, el invoicekit.Element, data invoicekit.Dataset) {
	p := el.Position
	x, y := p.X*mmPerPixel, p.Y*mmPerPixel
	width, height := p.Width*mmPerPixel, p.Height*mmPerPixel

	if p.Rotation != 0 {
		pdf.TransformBegin()
		pdf.TransformRotate(-p.Rotation, x+width/2, y+height/2)
		defer pdf.TransformEnd()
	}

	switch el.Type {
	case invoicekit.ElementText:
		drawText(pdf, el, data, x, y, width)
	case invoicekit.ElementLine:
		r, g, b := parseHexColor(el.Style.BackgroundColor)
		pdf.SetFillColor(r, g, b)
		thickness := height
		if thickness <= 0 {
			thickness = 2 * mmPerPixel
		}
		pdf.Rect(x, y, width, thickness, "F")
	case invoicekit.ElementImage:
		// Image payloads are references, not pixels; draw a placeholder
		// frame where the image would sit.
		pdf.SetDrawColor(0x8e, 0x91, 0x96)
		pdf.Rect(x, y, width, height, "D")
	case invoicekit.ElementTable:
		if grid, ok := el.Content.(invoicekit.TableContent); ok {
			drawGrid(pdf, el, grid, x, y, width)
		}
	}
}

func drawText(pdf *gofpdf.Fpdf, el invoicekit.Element, data invoicekit.Dataset, x, y, width float64) {
	resolved := invoicekit.ResolveText(el.Text(), data)
	if resolved == "" {
		return
	}

	st := el.Style
	pdf.SetFont(pdfFont(st.FontFamily), pdfFontStyle(st.FontWeight), pdfFontSize(st.FontSize))
	r, g, b := parseHexColor(st.Color)
	pdf.SetTextColor(r, g, b)

	if width <= 0 {
		width = 100 * mmPerPixel
	}
	lineHeight := pdfFontSize(st.FontSize) * 0.42 // pt to mm with a little leading
	pdf.SetXY(x, y)
	pdf.MultiCell(width, lineHeight, resolved, "", pdfAlign(st.TextAlign), false)
}

func drawGrid(pdf *gofpdf.Fpdf, el invoicekit.Element, grid invoicekit.TableContent, x, y, width float64) {
	if len(grid) == 0 {
		return
	}
	cols := 0
	for _, row := range grid {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}

	st := el.Style
	pdf.SetFont(pdfFont(st.FontFamily), "", pdfFontSize(st.FontSize))
	r, g, b := parseHexColor(st.Color)
	pdf.SetTextColor(r, g, b)
	pdf.SetDrawColor(parseHexColor(st.BorderColor))

	if width <= 0 {
		width = 400 * mmPerPixel
	}
	cellWidth := width / float64(cols)
	rowHeight := pdfFontSize(st.FontSize) * 0.6

	for i, row := range grid {
		pdf.SetXY(x, y+float64(i)*rowHeight)
		for c := 0; c < cols; c++ {
			text := ""
			if c < len(row) {
				text = row[c]
			}
			pdf.CellFormat(cellWidth, rowHeight, text, "1", 0, "L", false, 0, "")
		}
	}
}

// pdfFont maps a CSS font family to one of the PDF core fonts.
func pdfFont(family string) string {
	switch strings.ToLower(family) {
	case "courier", "mono", "monospace":
		return "Courier"
	case "times", "serif", "georgia":
		return "Times"
	default:
		return "Helvetica"
	}
}

// pdfFontStyle maps a CSS font weight to gofpdf's style string.
func pdfFontStyle(weight string) string {
	if weight == "bold" {
		return "B"
	}
	if n, err := strconv.Atoi(weight); err == nil && n >= 600 {
		return "B"
	}
	return ""
}

// pdfFontSize converts a CSS pixel size to points, defaulting to 16px.
func pdfFontSize(px float64) float64 {
	if px <= 0 {
		px = 16
	}
	return px * 72 / 96
}

func pdfAlign(align string) string {
	switch align {
	case "center":
		return "C"
	case "right":
		return "R"
	default:
		return "L"
	}
}

// parseHexColor parses "#rrggbb" (or "#rgb"), defaulting to near-black.
func parseHexColor(s string) (r, g, b int) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0x1a, 0x1f, 0x2c
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0x1a, 0x1f, 0x2c
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
