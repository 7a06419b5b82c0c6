// Package render produces the court document PDFs. Each renderer walks a
// Canvas down the page, checking remaining space at the start of every
// logical block and paginating when it runs out.
package render

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// US Letter in points.
const (
	pageWidth  = 612.0
	pageHeight = 792.0

	marginLeft   = 72.0
	marginRight  = 72.0
	marginTop    = 72.0
	minMargin    = 50.0 // minimum space before a page break
	lineHeight   = 16.0
	headerHeight = 22.0
)

// Placeholder stands in for any absent field.
const Placeholder = "___________"

// Canvas tracks the vertical cursor on a fixed-size page. Every drawing call
// advances the cursor; EnsureSpace allocates a new page when a block would
// start below the minimum margin.
type Canvas struct {
	pdf *gofpdf.Fpdf
	y   float64
}

func NewCanvas(generatedAt time.Time) *Canvas {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	// compression off and pinned dates keep identical input byte-identical
	pdf.SetCompression(false)
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)

	return &Canvas{
		pdf: pdf,
		y:   marginTop,
	}
}

// EnsureSpace starts a new page when fewer than height points remain. Called
// at the start of each logical block, never mid-block: a block taller than a
// page is allowed to run past the bottom rather than split.
func (c *Canvas) EnsureSpace(height float64) {
	if height > c.Remaining() {
		c.pdf.AddPage()
		c.y = marginTop
	}
}

// Line writes a single line of body text and advances the cursor.
func (c *Canvas) Line(text string) {
	c.pdf.SetFont("Helvetica", "", 11)
	c.pdf.Text(marginLeft, c.y, text)
	c.y += lineHeight
}

// IndentedLine writes body text at an extra indent.
func (c *Canvas) IndentedLine(indent float64, text string) {
	c.pdf.SetFont("Helvetica", "", 11)
	c.pdf.Text(marginLeft+indent, c.y, text)
	c.y += lineHeight
}

// BoldLine writes a single bold line.
func (c *Canvas) BoldLine(text string) {
	c.pdf.SetFont("Helvetica", "B", 11)
	c.pdf.Text(marginLeft, c.y, text)
	c.y += lineHeight
}

// CenteredTitle writes a bold, centered document title.
func (c *Canvas) CenteredTitle(text string) {
	c.pdf.SetFont("Times", "B", 14)
	width := c.pdf.GetStringWidth(text)
	c.pdf.Text((pageWidth-width)/2, c.y, text)
	c.y += headerHeight
}

// SectionHeader writes a bold heading with a rule underneath.
func (c *Canvas) SectionHeader(text string) {
	c.pdf.SetFont("Helvetica", "B", 12)
	c.pdf.Text(marginLeft, c.y, text)
	c.y += 4
	c.pdf.SetLineWidth(0.5)
	c.pdf.Line(marginLeft, c.y, pageWidth-marginRight, c.y)
	c.y += lineHeight
}

// KeyValue writes a label and a right-aligned value on one line.
func (c *Canvas) KeyValue(label, value string) {
	c.pdf.SetFont("Helvetica", "", 11)
	c.pdf.Text(marginLeft, c.y, label)
	width := c.pdf.GetStringWidth(value)
	c.pdf.Text(pageWidth-marginRight-width, c.y, value)
	c.y += lineHeight
}

// Spacer advances the cursor without drawing.
func (c *Canvas) Spacer(height float64) {
	c.y += height
}

// Rule draws a horizontal line across the text column.
func (c *Canvas) Rule() {
	c.pdf.SetLineWidth(0.5)
	c.pdf.Line(marginLeft, c.y, pageWidth-marginRight, c.y)
	c.y += lineHeight / 2
}

// SignatureLine draws a signature rule with a caption under it.
func (c *Canvas) SignatureLine(caption string) {
	c.pdf.SetLineWidth(0.5)
	c.pdf.Line(marginLeft, c.y, marginLeft+220, c.y)
	c.y += lineHeight - 2
	c.pdf.SetFont("Helvetica", "", 9)
	c.pdf.Text(marginLeft, c.y, caption)
	c.y += lineHeight
}

// TextAt draws text at an absolute position without moving the cursor. Used
// by the official form filler, which lays fields out by fixed coordinates.
func (c *Canvas) TextAt(x, y float64, text string) {
	c.pdf.SetFont("Helvetica", "", 10)
	c.pdf.Text(x, y, text)
}

// BoxAt draws an empty rectangle at an absolute position.
func (c *Canvas) BoxAt(x, y, w, h float64) {
	c.pdf.SetLineWidth(0.5)
	c.pdf.Rect(x, y, w, h, "D")
}

// WrapText splits text into lines that fit the text column at the body font.
func (c *Canvas) WrapText(text string, maxWidth float64) []string {
	c.pdf.SetFont("Helvetica", "", 11)

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := []string{}
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if c.pdf.GetStringWidth(candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	lines = append(lines, current)
	return lines
}

// Paragraph writes wrapped body text as one logical block.
func (c *Canvas) Paragraph(text string) {
	lines := c.WrapText(text, pageWidth-marginLeft-marginRight)
	c.EnsureSpace(float64(len(lines)) * lineHeight)
	for _, line := range lines {
		c.Line(line)
	}
}

// Output finalizes the document and returns the PDF bytes.
func (c *Canvas) Output() ([]byte, error) {
	if c.pdf.Err() {
		return nil, c.pdf.Error()
	}

	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AddPage forces a new page and resets the cursor.
func (c *Canvas) AddPage() {
	c.pdf.AddPage()
	c.y = marginTop
}

// Remaining reports the vertical space left above the minimum margin.
func (c *Canvas) Remaining() float64 {
	return pageHeight - minMargin - c.y
}

// FormatMoney renders a dollar amount with comma grouping: 5000 -> $5,000.00.
func FormatMoney(amount float64) string {
	negative := amount < 0
	amount = math.Abs(amount)

	whole := int64(amount)
	cents := int64(math.Round((amount - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped.String(), cents)
}

// OrPlaceholder substitutes the underscore placeholder for blank values.
func OrPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder
	}
	return value
}
