package writer

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/models"
	"github.com/xuri/excelize/v2"
)

// sheetData builds a sheet the way the public API would: the first
// non-empty row fixes the column count.
func sheetData(name string, rows ...[]models.Cell) *models.SheetData {
	s := &models.SheetData{Name: name, AutoFit: true}
	for _, cells := range rows {
		if s.ColumnCount == 0 && len(cells) > 0 {
			s.ColumnCount = len(cells)
		}
		s.Rows = append(s.Rows, models.Row{Cells: cells})
	}
	return s
}

func texts(values ...string) []models.Cell {
	cells := make([]models.Cell, len(values))
	for i, v := range values {
		cells[i] = models.Text(v)
	}
	return cells
}

func quietLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func writePackage(t *testing.T, sheets ...*models.SheetData) ([]byte, *models.WorkbookReport) {
	t.Helper()
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = quietLogger()
	report, err := Write(&buf, sheets, opts)
	require.NoError(t, err)
	return buf.Bytes(), report
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

// readPart returns the content of a package part, or nil when absent.
func readPart(t *testing.T, data []byte, name string) []byte {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			body, err := io.ReadAll(rc)
			require.NoError(t, err)
			return body
		}
	}
	return nil
}
