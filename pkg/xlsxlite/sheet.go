package xlsxlite

import (
	"fmt"

	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/models"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/writer"
)

// Sheet is one worksheet of a workbook. The first row added is styled as
// the header row, and the first non-empty row fixes the column count.
type Sheet struct {
	data models.SheetData
}

func newSheet(name string, autoFit bool) *Sheet {
	return &Sheet{data: models.SheetData{Name: name, AutoFit: autoFit}}
}

// Name returns the sheet tab name.
func (s *Sheet) Name() string { return s.data.Name }

// RowCount returns the number of rows added so far, empty rows included.
func (s *Sheet) RowCount() int { return len(s.data.Rows) }

// ColumnCount returns the column count, or 0 before the first non-empty row.
func (s *Sheet) ColumnCount() int { return s.data.ColumnCount }

// AddRow appends a row, classifying each value into a cell.
func (s *Sheet) AddRow(values ...interface{}) error {
	cells := make([]models.Cell, len(values))
	for i, v := range values {
		cells[i] = models.Classify(v)
	}
	return s.AddCells(cells...)
}

// AddCells appends a row of already typed cells.
func (s *Sheet) AddCells(cells ...models.Cell) error {
	row := len(s.data.Rows) + 1
	if len(cells) == 0 {
		return NewRowError(s.data.Name, row, ErrEmptyRow)
	}
	if s.data.ColumnCount > 0 && len(cells) != s.data.ColumnCount {
		err := NewRowError(s.data.Name, row, ErrSchemaMismatch)
		err.Expected = s.data.ColumnCount
		err.Actual = len(cells)
		return err
	}
	for i, c := range cells {
		h, ok := c.Hyperlink()
		if !ok {
			continue
		}
		if err := h.Validate(); err != nil {
			return NewRowError(s.data.Name, row, fmt.Errorf("column %s: %w", writer.ColumnName(i), err))
		}
	}

	if s.data.ColumnCount == 0 {
		s.data.ColumnCount = len(cells)
	}
	s.data.Rows = append(s.data.Rows, models.Row{Cells: append([]models.Cell(nil), cells...)})
	return nil
}

// AddRows appends rows in order. It stops at the first rejected row; rows
// before it stay added.
func (s *Sheet) AddRows(rows [][]interface{}) error {
	for _, values := range rows {
		if values == nil {
			return NewRowError(s.data.Name, len(s.data.Rows)+1, ErrNilRow)
		}
		if err := s.AddRow(values...); err != nil {
			return err
		}
	}
	return nil
}

// AddEmptyRows appends count rows without values. Before the column count
// is known the rows have no cells; afterwards they span every column.
func (s *Sheet) AddEmptyRows(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	for i := 0; i < count; i++ {
		s.data.Rows = append(s.data.Rows, models.Row{Cells: make([]models.Cell, s.data.ColumnCount)})
	}
	return nil
}

// AutoFitColumns enables or disables the column width estimate.
func (s *Sheet) AutoFitColumns(enabled bool) {
	s.data.AutoFit = enabled
}

// FreezePanes freezes the top rows and left columns. Zero is a valid split:
// FreezePanes(1, 0) freezes only the header row.
func (s *Sheet) FreezePanes(rows, cols uint32) {
	s.data.FreezeRows = &rows
	s.data.FreezeColumns = &cols
}
