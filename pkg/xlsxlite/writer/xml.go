package writer

import "encoding/xml"

// XML namespaces and relationship types used in SpreadsheetML packages
const (
	nsMain         = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsR            = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes = "http://schemas.openxmlformats.org/package/2006/content-types"

	relTypeOfficeDocument = nsR + "/officeDocument"
	relTypeWorksheet      = nsR + "/worksheet"
	relTypeStyles         = nsR + "/styles"
	relTypeSharedStrings  = nsR + "/sharedStrings"
	relTypeHyperlink      = nsR + "/hyperlink"
)

// Content types of the parts this package writes
const (
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctWorkbook      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ctWorksheet     = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	ctSharedStrings = "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"
)

// xlsxTypes maps the [Content_Types].xml part.
type xlsxTypes struct {
	XMLName   xml.Name       `xml:"Types"`
	Xmlns     string         `xml:"xmlns,attr"`
	Defaults  []xlsxDefault  `xml:"Default"`
	Overrides []xlsxOverride `xml:"Override"`
}

type xlsxDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xlsxOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// xlsxRelationships maps a *.rels part.
type xlsxRelationships struct {
	XMLName       xml.Name           `xml:"Relationships"`
	Xmlns         string             `xml:"xmlns,attr"`
	Relationships []xlsxRelationship `xml:"Relationship"`
}

type xlsxRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// xlsxWorkbook maps xl/workbook.xml.
type xlsxWorkbook struct {
	XMLName xml.Name   `xml:"workbook"`
	Xmlns   string     `xml:"xmlns,attr"`
	XmlnsR  string     `xml:"xmlns:r,attr"`
	Sheets  xlsxSheets `xml:"sheets"`
}

type xlsxSheets struct {
	Sheet []xlsxSheet `xml:"sheet"`
}

type xlsxSheet struct {
	Name    string `xml:"name,attr"`
	SheetID int    `xml:"sheetId,attr"`
	RID     string `xml:"r:id,attr"`
}

// xlsxSST maps xl/sharedStrings.xml.
type xlsxSST struct {
	XMLName     xml.Name `xml:"sst"`
	Xmlns       string   `xml:"xmlns,attr"`
	Count       int      `xml:"count,attr"`
	UniqueCount int      `xml:"uniqueCount,attr"`
	SI          []xlsxSI `xml:"si"`
}

type xlsxSI struct {
	T xlsxT `xml:"t"`
}

type xlsxT struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

// xlsxWorksheet maps xl/worksheets/sheetN.xml. Field order follows the
// CT_Worksheet sequence.
type xlsxWorksheet struct {
	XMLName    xml.Name        `xml:"worksheet"`
	Xmlns      string          `xml:"xmlns,attr"`
	XmlnsR     string          `xml:"xmlns:r,attr"`
	SheetViews *xlsxSheetViews `xml:"sheetViews,omitempty"`
	Cols       *xlsxCols       `xml:"cols,omitempty"`
	SheetData  xlsxSheetData   `xml:"sheetData"`
	Hyperlinks *xlsxHyperlinks `xml:"hyperlinks,omitempty"`
}

type xlsxSheetViews struct {
	SheetView []xlsxSheetView `xml:"sheetView"`
}

type xlsxSheetView struct {
	WorkbookViewID int       `xml:"workbookViewId,attr"`
	Pane           *xlsxPane `xml:"pane,omitempty"`
}

type xlsxPane struct {
	XSplit      uint32 `xml:"xSplit,attr,omitempty"`
	YSplit      uint32 `xml:"ySplit,attr,omitempty"`
	TopLeftCell string `xml:"topLeftCell,attr,omitempty"`
	ActivePane  string `xml:"activePane,attr,omitempty"`
	State       string `xml:"state,attr,omitempty"`
}

type xlsxCols struct {
	Col []xlsxCol `xml:"col"`
}

type xlsxCol struct {
	Min         int     `xml:"min,attr"`
	Max         int     `xml:"max,attr"`
	Width       float64 `xml:"width,attr"`
	CustomWidth bool    `xml:"customWidth,attr"`
}

type xlsxSheetData struct {
	Row []xlsxRow `xml:"row"`
}

type xlsxRow struct {
	R int     `xml:"r,attr"`
	C []xlsxC `xml:"c"`
}

// xlsxC is a single cell. An empty V with no T is a value-less cell.
type xlsxC struct {
	R string `xml:"r,attr"`
	S int    `xml:"s,attr,omitempty"`
	T string `xml:"t,attr,omitempty"`
	V string `xml:"v,omitempty"`
}

type xlsxHyperlinks struct {
	Hyperlink []xlsxHyperlink `xml:"hyperlink"`
}

type xlsxHyperlink struct {
	Ref string `xml:"ref,attr"`
	RID string `xml:"r:id,attr"`
}

// xlsxStyleSheet maps xl/styles.xml.
type xlsxStyleSheet struct {
	XMLName      xml.Name       `xml:"styleSheet"`
	Xmlns        string         `xml:"xmlns,attr"`
	Fonts        xlsxFonts      `xml:"fonts"`
	Fills        xlsxFills      `xml:"fills"`
	Borders      xlsxBorders    `xml:"borders"`
	CellStyleXfs xlsxXfs        `xml:"cellStyleXfs"`
	CellXfs      xlsxXfs        `xml:"cellXfs"`
	CellStyles   xlsxCellStyles `xml:"cellStyles"`
}

type xlsxEmpty struct{}

type xlsxVal struct {
	Val string `xml:"val,attr"`
}

type xlsxFonts struct {
	Count int        `xml:"count,attr"`
	Font  []xlsxFont `xml:"font"`
}

type xlsxFont struct {
	B    *xlsxEmpty `xml:"b,omitempty"`
	Sz   xlsxVal    `xml:"sz"`
	Name xlsxVal    `xml:"name"`
}

type xlsxFills struct {
	Count int        `xml:"count,attr"`
	Fill  []xlsxFill `xml:"fill"`
}

type xlsxFill struct {
	PatternFill xlsxPatternFill `xml:"patternFill"`
}

type xlsxPatternFill struct {
	PatternType string     `xml:"patternType,attr"`
	FgColor     *xlsxColor `xml:"fgColor,omitempty"`
	BgColor     *xlsxColor `xml:"bgColor,omitempty"`
}

type xlsxColor struct {
	RGB     string `xml:"rgb,attr,omitempty"`
	Indexed *int   `xml:"indexed,attr,omitempty"`
}

type xlsxBorders struct {
	Count  int          `xml:"count,attr"`
	Border []xlsxBorder `xml:"border"`
}

type xlsxBorder struct {
	Left     xlsxEmpty `xml:"left"`
	Right    xlsxEmpty `xml:"right"`
	Top      xlsxEmpty `xml:"top"`
	Bottom   xlsxEmpty `xml:"bottom"`
	Diagonal xlsxEmpty `xml:"diagonal"`
}

type xlsxXfs struct {
	Count int      `xml:"count,attr"`
	Xf    []xlsxXf `xml:"xf"`
}

type xlsxXf struct {
	NumFmtID          int  `xml:"numFmtId,attr"`
	FontID            int  `xml:"fontId,attr"`
	FillID            int  `xml:"fillId,attr"`
	BorderID          int  `xml:"borderId,attr"`
	XfID              *int `xml:"xfId,attr,omitempty"`
	ApplyNumberFormat bool `xml:"applyNumberFormat,attr,omitempty"`
	ApplyFont         bool `xml:"applyFont,attr,omitempty"`
	ApplyFill         bool `xml:"applyFill,attr,omitempty"`
}

type xlsxCellStyles struct {
	Count     int             `xml:"count,attr"`
	CellStyle []xlsxCellStyle `xml:"cellStyle"`
}

type xlsxCellStyle struct {
	Name      string `xml:"name,attr"`
	XfID      int    `xml:"xfId,attr"`
	BuiltinID int    `xml:"builtinId,attr"`
}
