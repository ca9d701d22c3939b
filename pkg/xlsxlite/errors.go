package xlsxlite

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/models"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/writer"
)

// ErrBlankSheetName indicates a sheet name that is empty or whitespace.
var ErrBlankSheetName = errors.New("sheet name must not be blank")

// ErrEmptyRow indicates a row added without any values.
var ErrEmptyRow = errors.New("row must contain at least one value")

// ErrSchemaMismatch indicates a row whose width differs from the sheet's
// column count.
var ErrSchemaMismatch = errors.New("row does not match sheet column count")

// ErrNilRow indicates a nil row in a batch.
var ErrNilRow = errors.New("row must not be nil")

// ErrNegativeCount indicates a negative number of empty rows.
var ErrNegativeCount = errors.New("count must not be negative")

// ErrInvalidHyperlink indicates a hyperlink value without a target URL.
var ErrInvalidHyperlink = models.ErrInvalidHyperlink

// ErrInvalidURL indicates a hyperlink target that is not an absolute URI.
// It surfaces wrapped in a *WriteError when the workbook is saved.
var ErrInvalidURL = writer.ErrInvalidURL

// WriteError represents a fatal error while saving a workbook.
type WriteError = writer.WriteError

// RowError represents a rejected row.
type RowError struct {
	SheetName string
	Row       int // 1-based position the row would have taken
	Expected  int // column count, set for schema mismatches
	Actual    int
	Err       error
}

func (e *RowError) Error() string {
	if errors.Is(e.Err, ErrSchemaMismatch) {
		return fmt.Sprintf("row %d in sheet %q: %v: expected %d values, got %d",
			e.Row, e.SheetName, e.Err, e.Expected, e.Actual)
	}
	return fmt.Sprintf("row %d in sheet %q: %v", e.Row, e.SheetName, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// NewRowError creates a new RowError.
func NewRowError(sheetName string, row int, err error) *RowError {
	return &RowError{
		SheetName: sheetName,
		Row:       row,
		Err:       err,
	}
}
