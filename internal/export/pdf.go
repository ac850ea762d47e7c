package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/summary"
)

const (
	pdfFont       = "Arial"
	pdfLineHeight = 6
	pdfLabelWidth = 50
	pdfBarWidth   = 1.5
	pdfCardIndent = 4
)

type pdfWriter struct {
	pdf *gofpdf.Fpdf
	// tr converts UTF-8 to the code page of the core fonts.
	tr func(string) string
}

// PDF writes view as an A4 document. Highlighted narrative text and record cards use the category colours.
func PDF(w io.Writer, view summary.View, now time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Police Report Summary", true)
	pdf.SetCreationDate(now)
	pdf.SetMargins(15, 20, 15)     //nolint:mnd // millimetres
	pdf.SetAutoPageBreak(true, 20) //nolint:mnd // millimetres
	p := pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15) //nolint:mnd // millimetres from the bottom
		pdf.SetFont(pdfFont, "I", 8)
		pdf.SetTextColor(128, 128, 128) //nolint:mnd // grey
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 18)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, p.tr("Police Report Summary"), "", 1, "L", false, 0, "")

	var active []string
	for _, b := range view.Filters {
		if b.Active {
			active = append(active, b.Style.Label)
		}
	}
	pdf.SetFont(pdfFont, "I", 9)
	pdf.SetTextColor(100, 100, 100) //nolint:mnd // grey
	pdf.MultiCell(0, 5, p.tr(fmt.Sprintf("Generated %s. Highlights shown: %s.", //nolint:mnd // line height
		now.Format("January 2, 2006 15:04"), strings.Join(active, ", "))), "", "L", false)
	pdf.Ln(4) //nolint:mnd // spacing

	for _, s := range view.Sections {
		p.section(s)
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "output pdf")
	}
	return nil
}

func (p pdfWriter) section(s summary.Section) {
	pdf := p.pdf
	pdf.SetFont(pdfFont, "B", 13)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, p.tr(s.Title), "B", 1, "L", false, 0, "")
	pdf.Ln(2) //nolint:mnd // spacing

	if len(s.Narrative) > 0 {
		for _, span := range s.Narrative {
			if span.Highlighted() {
				pdf.SetFont(pdfFont, "B", 11)
				r, g, b := hexRGB(span.Background)
				pdf.SetTextColor(r, g, b)
			} else {
				pdf.SetFont(pdfFont, "", 11)
				pdf.SetTextColor(0, 0, 0)
			}
			pdf.Write(pdfLineHeight, p.tr(span.Text))
		}
		pdf.Ln(pdfLineHeight + 2) //nolint:mnd // spacing
	}

	p.lines(s.Lines, 0)

	for _, g := range s.Groups {
		if g.Title != "" {
			pdf.SetFont(pdfFont, "B", 11)
			pdf.SetTextColor(0, 0, 0)
			pdf.CellFormat(0, 7, p.tr(g.Title), "", 1, "L", false, 0, "")
		}
		if len(g.Cards) == 0 {
			pdf.SetFont(pdfFont, "I", 10)
			pdf.SetTextColor(100, 100, 100) //nolint:mnd // grey
			pdf.CellFormat(0, pdfLineHeight, p.tr("Nothing to show with the current filters."), "", 1, "L", false, 0, "")
		}
		for _, card := range g.Cards {
			p.card(card)
		}
	}
	pdf.Ln(4) //nolint:mnd // spacing
}

func (p pdfWriter) card(card summary.Card) {
	pdf := p.pdf
	left, _, _, _ := pdf.GetMargins()
	startPage := pdf.PageNo()
	startY := pdf.GetY()
	p.lines(card.Lines, pdfCardIndent)
	if card.Border != "" && pdf.PageNo() == startPage {
		r, g, b := hexRGB(card.Border)
		pdf.SetFillColor(r, g, b)
		pdf.Rect(left, startY, pdfBarWidth, pdf.GetY()-startY, "F")
	}
	pdf.Ln(2) //nolint:mnd // spacing
}

func (p pdfWriter) lines(lines []summary.Line, indent float64) {
	pdf := p.pdf
	left, _, _, _ := pdf.GetMargins()
	for _, l := range lines {
		pdf.SetX(left + indent)
		pdf.SetFont(pdfFont, "B", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(pdfLabelWidth, pdfLineHeight, p.tr(l.Label+":"), "", 0, "L", false, 0, "")
		pdf.SetFont(pdfFont, "", 10)
		pdf.MultiCell(0, pdfLineHeight, p.tr(l.Value), "", "L", false)
	}
}

// hexRGB parses a #RRGGBB colour. Malformed colours yield black.
func hexRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 { //nolint:mnd // RRGGBB
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff) //nolint:mnd // byte shifts
}
