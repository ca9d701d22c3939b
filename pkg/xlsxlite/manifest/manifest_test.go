package manifest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite"
	"github.com/xuri/excelize/v2"
)

const employees = `
sheets:
  - name: Employees
    freeze: {rows: 1}
    rows:
      - [Id, Name, JoinDate, Salary, Active, Profile]
      - [1, Alex, {date: 2024-01-15}, {decimal: "5000.50"}, true, {text: GitHub, url: "https://github.com/alex"}]
      - {empty: 1}
      - [2, Brian, {date: "2024-01-12T12:00:00"}, 6500.75, false, {url: "https://example.com"}]
  - name: Notes
    autofit: false
    rows:
      - {empty: 2}
      - [Note]
      - [~]
`

func testOptions() xlsxlite.Options {
	logger, _ := test.NewNullLogger()
	return xlsxlite.Options{Logger: logger}
}

func TestBuild(t *testing.T) {
	m, err := Parse([]byte(employees))
	require.NoError(t, err)
	require.Len(t, m.Sheets, 2)

	wb, err := m.Build(testOptions())
	require.NoError(t, err)

	sheets := wb.Sheets()
	require.Len(t, sheets, 2)
	assert.Equal(t, 4, sheets[0].RowCount())
	assert.Equal(t, 6, sheets[0].ColumnCount())
	assert.Equal(t, 4, sheets[1].RowCount())
	assert.Equal(t, 1, sheets[1].ColumnCount())

	data, err := wb.Bytes()
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	defer f.Close()

	tests := []struct {
		cell     string
		value    string
		cellType excelize.CellType
	}{
		{"A2", "1", excelize.CellTypeNumber},
		{"B2", "Alex", excelize.CellTypeSharedString},
		{"C2", "45306", excelize.CellTypeNumber},
		{"D2", "5000.5", excelize.CellTypeNumber},
		{"E2", "1", excelize.CellTypeBool},
		{"F2", "GitHub", excelize.CellTypeSharedString},
		{"C4", "45303.5", excelize.CellTypeNumber},
		{"F4", "https://example.com", excelize.CellTypeSharedString},
	}
	for _, tt := range tests {
		value, err := f.GetCellValue("Employees", tt.cell)
		require.NoError(t, err)
		assert.Equal(t, tt.value, value, tt.cell)
		cellType, err := f.GetCellType("Employees", tt.cell)
		require.NoError(t, err)
		assert.Equal(t, tt.cellType, cellType, tt.cell)
	}

	ok, target, err := f.GetCellHyperLink("Employees", "F2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://github.com/alex", target)

	report := wb.Report()
	assert.Equal(t, "A2", report.Sheets[0].Frozen)
	assert.Nil(t, report.Sheets[1].ColumnWidths)
}

func TestParseStrict(t *testing.T) {
	_, err := Parse([]byte("sheets:\n  - name: A\n    colour: red\n"))
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected error
	}{
		{"blank sheet name", "sheets:\n  - name: ''\n", xlsxlite.ErrBlankSheetName},
		{"schema mismatch", "sheets:\n  - name: A\n    rows:\n      - [a, b]\n      - [c]\n", xlsxlite.ErrSchemaMismatch},
		{"empty row", "sheets:\n  - name: A\n    rows:\n      - []\n", xlsxlite.ErrEmptyRow},
		{"nil row", "sheets:\n  - name: A\n    rows:\n      - ~\n", xlsxlite.ErrNilRow},
		{"negative empty rows", "sheets:\n  - name: A\n    rows:\n      - {empty: -1}\n", xlsxlite.ErrNegativeCount},
		{"scalar row", "sheets:\n  - name: A\n    rows:\n      - hello\n", ErrInvalidValue},
		{"unknown map", "sheets:\n  - name: A\n    rows:\n      - [{colour: red}]\n", ErrInvalidValue},
		{"bad date", "sheets:\n  - name: A\n    rows:\n      - [{date: yesterday}]\n", ErrInvalidValue},
		{"bad decimal", "sheets:\n  - name: A\n    rows:\n      - [{decimal: abc}]\n", ErrInvalidValue},
		{"link without url", "sheets:\n  - name: A\n    rows:\n      - [{text: x}]\n", ErrInvalidValue},
		{"blank url", "sheets:\n  - name: A\n    rows:\n      - [{text: x, url: ' '}]\n", xlsxlite.ErrInvalidHyperlink},
		{"null url", "sheets:\n  - name: A\n    rows:\n      - [a]\n      - [{url: ~}]\n", xlsxlite.ErrInvalidHyperlink},
		{"null text", "sheets:\n  - name: A\n    rows:\n      - [a]\n      - [{text: ~, url: 'https://example.com'}]\n", xlsxlite.ErrInvalidHyperlink},
		{"null text and url", "sheets:\n  - name: S\n    rows:\n      - [a]\n      - [{text: ~, url: ~}]\n", xlsxlite.ErrInvalidHyperlink},
		{"numeric url", "sheets:\n  - name: A\n    rows:\n      - [{url: 42}]\n", xlsxlite.ErrInvalidHyperlink},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.doc))
			require.NoError(t, err)
			_, err = m.Build(testOptions())
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.yaml")
	require.NoError(t, os.WriteFile(path, []byte(employees), 0644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Employees", m.Sheets[0].Name)
	require.NotNil(t, m.Sheets[0].Freeze)
	assert.Equal(t, uint32(1), m.Sheets[0].Freeze.Rows)
	require.NotNil(t, m.Sheets[1].AutoFit)
	assert.False(t, *m.Sheets[1].AutoFit)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
