package models

// SheetReport summarises one written worksheet.
type SheetReport struct {
	// Name is the sheet tab name.
	Name string `json:"name"`
	// SheetID is the 1-based sheet identifier in the workbook part.
	SheetID int `json:"sheet_id"`
	// Part is the worksheet part name inside the package.
	Part string `json:"part"`
	// Rows is the number of rows written.
	Rows int `json:"rows"`
	// Columns is the sheet's column count.
	Columns int `json:"columns"`
	// Hyperlinks is the number of hyperlink relationships.
	Hyperlinks int `json:"hyperlinks,omitempty"`
	// ColumnWidths holds the estimated widths when auto-fit is enabled.
	ColumnWidths []float64 `json:"column_widths,omitempty"`
	// Frozen is the top-left cell of the scrolling pane, if frozen.
	Frozen string `json:"frozen,omitempty"`
}

// WorkbookReport summarises a written package.
type WorkbookReport struct {
	// Sheets lists sheets in output order.
	Sheets []SheetReport `json:"sheets"`
	// SharedStrings is the number of distinct strings (0 means no part).
	SharedStrings int `json:"shared_strings"`
	// Parts lists package part names in archive order.
	Parts []string `json:"parts"`
	// Size is the archive size in bytes.
	Size int64 `json:"size"`
}
