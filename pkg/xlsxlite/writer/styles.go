package writer

// Style indexes into the fixed cellXfs palette. The order is part of the
// format: every encoded cell refers to these positions.
const (
	StyleDefault = 0
	StyleHeader  = 1
	StyleDate    = 2
)

const (
	headerFillRGB = "FFD9D9D9"
	// numFmtShortDate is the built-in short date format (m/d/yyyy).
	numFmtShortDate = 14
)

// stylesheet builds the palette: default, header (bold font on a light grey
// fill) and date (built-in short date format).
func stylesheet() *xlsxStyleSheet {
	xfID := 0
	systemBackground := 64

	return &xlsxStyleSheet{
		Xmlns: nsMain,
		Fonts: xlsxFonts{
			Count: 2,
			Font: []xlsxFont{
				{Sz: xlsxVal{Val: "11"}, Name: xlsxVal{Val: "Calibri"}},
				{B: &xlsxEmpty{}, Sz: xlsxVal{Val: "11"}, Name: xlsxVal{Val: "Calibri"}},
			},
		},
		Fills: xlsxFills{
			Count: 3,
			Fill: []xlsxFill{
				{PatternFill: xlsxPatternFill{PatternType: "none"}},
				// gray125 must sit at index 1
				{PatternFill: xlsxPatternFill{PatternType: "gray125"}},
				{PatternFill: xlsxPatternFill{
					PatternType: "solid",
					FgColor:     &xlsxColor{RGB: headerFillRGB},
					BgColor:     &xlsxColor{Indexed: &systemBackground},
				}},
			},
		},
		Borders: xlsxBorders{
			Count:  1,
			Border: []xlsxBorder{{}},
		},
		CellStyleXfs: xlsxXfs{
			Count: 1,
			Xf:    []xlsxXf{{}},
		},
		CellXfs: xlsxXfs{
			Count: 3,
			Xf: []xlsxXf{
				StyleDefault: {XfID: &xfID},
				StyleHeader:  {FontID: 1, FillID: 2, XfID: &xfID, ApplyFont: true, ApplyFill: true},
				StyleDate:    {NumFmtID: numFmtShortDate, XfID: &xfID, ApplyNumberFormat: true},
			},
		},
		CellStyles: xlsxCellStyles{
			Count:     1,
			CellStyle: []xlsxCellStyle{{Name: "Normal"}},
		},
	}
}
