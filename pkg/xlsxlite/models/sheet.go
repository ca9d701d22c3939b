package models

// Row is an ordered sequence of cells. Its index is its 1-based position in
// the owning sheet.
type Row struct {
	Cells []Cell
}

// SheetData is the content of one worksheet as handed to the writer.
type SheetData struct {
	// Name is the sheet tab name.
	Name string
	// Rows holds rows in insertion order.
	Rows []Row
	// ColumnCount is fixed by the first non-empty row (0 until then).
	ColumnCount int
	// AutoFit enables the column width estimate.
	AutoFit bool
	// FreezeRows is the number of frozen rows (nil if unset).
	FreezeRows *uint32
	// FreezeColumns is the number of frozen columns (nil if unset).
	FreezeColumns *uint32
}

// HasFreeze reports whether either freeze split was set, including zero.
func (s *SheetData) HasFreeze() bool {
	return s.FreezeRows != nil || s.FreezeColumns != nil
}
