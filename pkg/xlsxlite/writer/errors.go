package writer

import (
	"errors"
	"fmt"
)

// ErrInvalidURL indicates a hyperlink target that is not an absolute URI.
var ErrInvalidURL = errors.New("hyperlink url is not an absolute uri")

// WriteError represents a fatal error while writing a package.
type WriteError struct {
	SheetName string
	Component string // "styles", "worksheet", "hyperlinks", "shared strings", "workbook", "package"
	Err       error
}

func (e *WriteError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("write error (%s): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("write error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError.
func NewWriteError(sheetName, component string, err error) *WriteError {
	return &WriteError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
