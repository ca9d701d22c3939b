package writer

import (
	"fmt"
	"net/url"

	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/models"
)

const (
	paneStateFrozen      = "frozen"
	paneActiveBottomLeft = "bottomLeft"
)

// assembleWorksheet combines encoded rows, column widths, the frozen pane
// of sheet and hyperlinks into one worksheet. Hyperlink targets become
// external relationships in rels; a target that is not an absolute URI fails.
func assembleWorksheet(enc encodedSheet, sheet *models.SheetData, rels *relationships) (*xlsxWorksheet, error) {
	ws := &xlsxWorksheet{
		Xmlns:     nsMain,
		XmlnsR:    nsR,
		SheetData: xlsxSheetData{Row: enc.Rows},
	}

	if sheet.HasFreeze() {
		ws.SheetViews = &xlsxSheetViews{
			SheetView: []xlsxSheetView{{Pane: frozenPane(sheet.FreezeRows, sheet.FreezeColumns)}},
		}
	}

	if len(enc.Widths) > 0 {
		cols := &xlsxCols{Col: make([]xlsxCol, len(enc.Widths))}
		for i, w := range enc.Widths {
			cols.Col[i] = xlsxCol{Min: i + 1, Max: i + 1, Width: w, CustomWidth: true}
		}
		ws.Cols = cols
	}

	if len(enc.Hyperlinks) > 0 {
		links := &xlsxHyperlinks{Hyperlink: make([]xlsxHyperlink, len(enc.Hyperlinks))}
		for i, link := range enc.Hyperlinks {
			target, err := absoluteURL(link.URL)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", link.Cell, err)
			}
			rid := rels.add(relTypeHyperlink, target, true)
			links.Hyperlink[i] = xlsxHyperlink{Ref: link.Cell, RID: rid}
		}
		ws.Hyperlinks = links
	}

	return ws, nil
}

// frozenPane builds the pane for a freeze split. An unset value counts as
// zero; a zero split is omitted but still moves the top-left cell.
func frozenPane(freezeRows, freezeCols *uint32) *xlsxPane {
	var rows, cols uint32
	if freezeRows != nil {
		rows = *freezeRows
	}
	if freezeCols != nil {
		cols = *freezeCols
	}

	pane := &xlsxPane{
		TopLeftCell: CellRef(int(rows)+1, int(cols)),
		ActivePane:  paneActiveBottomLeft,
		State:       paneStateFrozen,
	}
	if cols > 0 {
		pane.XSplit = cols
	}
	if rows > 0 {
		pane.YSplit = rows
	}
	return pane
}

func absoluteURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidURL, raw, err)
	}
	if !u.IsAbs() || (u.Host == "" && u.Opaque == "" && u.Path == "") {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return u.String(), nil
}
