package writer

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/models"
)

// Cell type tags written in the t attribute
const (
	cellTypeSharedString = "s"
	cellTypeNumber       = "n"
	cellTypeBool         = "b"
)

const (
	widthPadding       = 2.0
	minAutoWidth       = 8.0
	headerRowIdx       = 1
	noStyle            = -1
	dateFallbackLayout = time.RFC3339
)

// HyperlinkRef is a hyperlink registered while encoding a sheet.
type HyperlinkRef struct {
	// Cell is the A1 address of the linked cell.
	Cell string
	// URL is the link target as given by the caller.
	URL string
}

// encodedSheet is the result of the single encoding pass over a sheet.
type encodedSheet struct {
	Rows       []xlsxRow
	Hyperlinks []HyperlinkRef
	// Widths is nil unless auto-fit applies.
	Widths []float64
}

// encoder converts cells of one sheet, interning text into the workbook
// table and collecting hyperlinks.
type encoder struct {
	sst   *SharedStrings
	log   logrus.FieldLogger
	links []HyperlinkRef
}

// encodeSheet encodes every row of sheet in one pass, measuring column
// widths along the way.
func encodeSheet(sheet *models.SheetData, sst *SharedStrings, log logrus.FieldLogger) encodedSheet {
	e := &encoder{sst: sst, log: log.WithField("sheet", sheet.Name)}
	widths := newWidthTracker(sheet.AutoFit, sheet.ColumnCount)

	rows := make([]xlsxRow, len(sheet.Rows))
	for i, row := range sheet.Rows {
		rowIdx := i + 1
		header := rowIdx == headerRowIdx
		out := xlsxRow{R: rowIdx, C: make([]xlsxC, len(row.Cells))}
		for col, cell := range row.Cells {
			widths.observe(col, cell)
			out.C[col] = e.cell(CellRef(rowIdx, col), cell, header)
		}
		rows[i] = out
	}

	return encodedSheet{
		Rows:       rows,
		Hyperlinks: e.links,
		Widths:     widths.finish(),
	}
}

// cell encodes one cell. It never fails: values that cannot be written
// as their kind fall back to shared-string text.
func (e *encoder) cell(ref string, c models.Cell, header bool) xlsxC {
	out := xlsxC{R: ref}
	style := noStyle

	switch c.Kind() {
	case models.KindEmpty:
		// no value, no type

	case models.KindText:
		e.text(&out, models.DisplayText(c))

	case models.KindNumber:
		v := c.Value()
		if !models.IsFinite(v) {
			e.log.WithField("cell", ref).Warnf("non-finite number %v written as text", v)
			e.text(&out, models.FormatNumber(v))
			break
		}
		out.T = cellTypeNumber
		out.V = models.FormatNumber(v)

	case models.KindBoolean:
		out.T = cellTypeBool
		out.V = "0"
		if b, _ := c.Value().(bool); b {
			out.V = "1"
		}

	case models.KindDateTime:
		t, _ := c.Time()
		serial, ok := OADate(t)
		if !ok {
			e.log.WithField("cell", ref).Warnf("date %s outside the OLE Automation range, written as text", t.Format(dateFallbackLayout))
			e.text(&out, t.Format(dateFallbackLayout))
			break
		}
		out.T = cellTypeNumber
		out.V = strconv.FormatFloat(serial, 'f', -1, 64)
		style = StyleDate

	case models.KindHyperlink:
		h, _ := c.Hyperlink()
		e.text(&out, h.Text)
		e.links = append(e.links, HyperlinkRef{Cell: ref, URL: h.URL})
	}

	// Header styling applies after the kind-specific choice.
	if header {
		style = StyleHeader
	}
	if style != noStyle {
		out.S = style
	}
	return out
}

func (e *encoder) text(out *xlsxC, s string) {
	out.T = cellTypeSharedString
	out.V = strconv.Itoa(e.sst.Intern(s))
}

// widthTracker estimates column widths from display text length.
// A nil tracker records nothing.
type widthTracker struct {
	widths []float64
}

func newWidthTracker(enabled bool, columns int) *widthTracker {
	if !enabled || columns <= 0 {
		return nil
	}
	return &widthTracker{widths: make([]float64, columns)}
}

func (w *widthTracker) observe(col int, c models.Cell) {
	if w == nil || col >= len(w.widths) {
		return
	}
	n := utf8.RuneCountInString(models.DisplayText(c))
	if n == 0 {
		return
	}
	if width := float64(n) + widthPadding; width > w.widths[col] {
		w.widths[col] = width
	}
}

// finish applies the minimum width to columns without measured content.
func (w *widthTracker) finish() []float64 {
	if w == nil {
		return nil
	}
	for i, width := range w.widths {
		if width <= 0 {
			w.widths[i] = minAutoWidth
		}
	}
	return w.widths
}
