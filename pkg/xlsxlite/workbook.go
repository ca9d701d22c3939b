package xlsxlite

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/models"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/writer"
)

// Workbook is an ordered collection of sheets. Sheets are written in the
// order they were added.
type Workbook struct {
	opts   Options
	sheets []*Sheet
	report *models.WorkbookReport
}

// New creates an empty workbook. Only the first Options value is used.
func New(opts ...Options) *Workbook {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	return &Workbook{opts: o}
}

// AddSheet appends a new sheet.
func (wb *Workbook) AddSheet(name string) (*Sheet, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankSheetName
	}
	s := newSheet(name, wb.opts.ShouldAutoFit())
	wb.sheets = append(wb.sheets, s)
	return s, nil
}

// Sheets returns the sheets in workbook order.
func (wb *Workbook) Sheets() []*Sheet {
	out := make([]*Sheet, len(wb.sheets))
	copy(out, wb.sheets)
	return out
}

// Sheet returns the first sheet with the given name.
func (wb *Workbook) Sheet(name string) (*Sheet, bool) {
	for _, s := range wb.sheets {
		if s.data.Name == name {
			return s, true
		}
	}
	return nil, false
}

// WriteTo saves the workbook as an xlsx package to w. Nothing is written
// when saving fails.
func (wb *Workbook) WriteTo(w io.Writer) (int64, error) {
	report, err := wb.save(w)
	if err != nil {
		return 0, err
	}
	return report.Size, nil
}

// Bytes saves the workbook and returns the package bytes.
func (wb *Workbook) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := wb.save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveAs saves the workbook to path. The file is only created once the
// package has been built.
func (wb *Workbook) SaveAs(path string) error {
	data, err := wb.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Report returns the summary of the last successful save, or nil.
func (wb *Workbook) Report() *models.WorkbookReport {
	return wb.report
}

func (wb *Workbook) save(w io.Writer) (*models.WorkbookReport, error) {
	sheets := make([]*models.SheetData, len(wb.sheets))
	for i, s := range wb.sheets {
		sheets[i] = &s.data
	}
	report, err := writer.Write(w, sheets, wb.opts.writerOptions())
	if err != nil {
		return nil, err
	}
	wb.report = report
	return report, nil
}
