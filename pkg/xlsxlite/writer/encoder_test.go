package writer

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/models"
)

func TestEncodeCell(t *testing.T) {
	date := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		cell   models.Cell
		header bool
		want   xlsxC
	}{
		{"empty", models.Empty(), false, xlsxC{R: "B2"}},
		{"text", models.Text("Alex"), false, xlsxC{R: "B2", T: "s", V: "0"}},
		{"int", models.Number(42), false, xlsxC{R: "B2", T: "n", V: "42"}},
		{"float", models.Number(5000.5), false, xlsxC{R: "B2", T: "n", V: "5000.5"}},
		{"decimal", models.Number(decimal.RequireFromString("6500.75")), false, xlsxC{R: "B2", T: "n", V: "6500.75"}},
		{"true", models.Bool(true), false, xlsxC{R: "B2", T: "b", V: "1"}},
		{"false", models.Bool(false), false, xlsxC{R: "B2", T: "b", V: "0"}},
		{"date", models.Date(date), false, xlsxC{R: "B2", T: "n", V: "45306.5", S: StyleDate}},
		{"header date", models.Date(date), true, xlsxC{R: "B2", T: "n", V: "45306.5", S: StyleHeader}},
		{"header text", models.Text("Alex"), true, xlsxC{R: "B2", T: "s", V: "0", S: StyleHeader}},
		{"header empty", models.Empty(), true, xlsxC{R: "B2", S: StyleHeader}},
		{"link", models.Link("GitHub", "https://example.com"), false, xlsxC{R: "B2", T: "s", V: "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &encoder{sst: NewSharedStrings(), log: quietLogger()}
			assert.Equal(t, tt.want, e.cell("B2", tt.cell, tt.header))
		})
	}
}

func TestEncodeCellDegrades(t *testing.T) {
	logger, hook := test.NewNullLogger()
	e := &encoder{sst: NewSharedStrings(), log: logger}

	nan := e.cell("A2", models.Number(math.NaN()), false)
	assert.Equal(t, xlsxC{R: "A2", T: "s", V: "0"}, nan)

	farFuture := time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)
	date := e.cell("B2", models.Date(farFuture), false)
	assert.Equal(t, xlsxC{R: "B2", T: "s", V: "1"}, date)

	assert.Equal(t, []string{"NaN", farFuture.Format(time.RFC3339)}, e.sst.Items())

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, logrus.WarnLevel, entry.Level)
	}
	assert.Equal(t, "B2", entries[1].Data["cell"])
}

func TestEncodeSheet(t *testing.T) {
	sst := NewSharedStrings()
	sst.Intern("Website")

	sheet := sheetData("Links",
		nil,
		texts("Name", "Website"),
		[]models.Cell{models.Text("Repo"), models.Link("GitHub", "https://github.com/livedcode/OpenExcelLite")},
		[]models.Cell{models.Empty(), models.Empty()},
	)
	enc := encodeSheet(sheet, sst, quietLogger())

	require.Len(t, enc.Rows, 4)
	assert.Equal(t, 1, enc.Rows[0].R)
	assert.Empty(t, enc.Rows[0].C)

	// Row 1 is the header even when it has no cells; row 2 is plain data.
	assert.Equal(t, xlsxC{R: "A2", T: "s", V: "1"}, enc.Rows[1].C[0])
	assert.Equal(t, xlsxC{R: "B2", T: "s", V: "0"}, enc.Rows[1].C[1])

	assert.Equal(t, []HyperlinkRef{{Cell: "B3", URL: "https://github.com/livedcode/OpenExcelLite"}}, enc.Hyperlinks)
	assert.Equal(t, []string{"Website", "Name", "Repo", "GitHub"}, sst.Items())

	assert.Equal(t, []float64{6, 9}, enc.Widths)
}

func TestEncodeSheetHeaderStyle(t *testing.T) {
	date := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	sheet := sheetData("Dates",
		[]models.Cell{models.Date(date)},
		[]models.Cell{models.Date(date)},
	)
	enc := encodeSheet(sheet, NewSharedStrings(), quietLogger())

	assert.Equal(t, StyleHeader, enc.Rows[0].C[0].S)
	assert.Equal(t, StyleDate, enc.Rows[1].C[0].S)
	assert.Equal(t, "44256", enc.Rows[1].C[0].V)
}

func TestColumnWidths(t *testing.T) {
	tests := []struct {
		name     string
		sheet    *models.SheetData
		expected []float64
	}{
		{
			name:     "padding and minimum",
			sheet:    sheetData("S", texts("Id", "Name", ""), []models.Cell{models.Number(1), models.Text("Alexander"), models.Empty()}),
			expected: []float64{4, 11, 8},
		},
		{
			name:     "runes not bytes",
			sheet:    sheetData("S", texts("Größe")),
			expected: []float64{7},
		},
		{
			name: "display text of typed cells",
			sheet: sheetData("S", []models.Cell{
				models.Bool(false),
				models.Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
				models.Link("Go", "https://go.dev"),
			}),
			expected: []float64{7, 12, 4},
		},
		{
			name:     "short placeholder rows",
			sheet:    sheetData("S", nil, nil, texts("Id", "Name", "JoinDate")),
			expected: []float64{4, 6, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := encodeSheet(tt.sheet, NewSharedStrings(), quietLogger())
			assert.Equal(t, tt.expected, enc.Widths)
		})
	}
}

func TestColumnWidthsDisabled(t *testing.T) {
	sheet := sheetData("S", texts("Id", "Name"))
	sheet.AutoFit = false
	assert.Nil(t, encodeSheet(sheet, NewSharedStrings(), quietLogger()).Widths)

	empty := sheetData("S", nil, nil)
	assert.Nil(t, encodeSheet(empty, NewSharedStrings(), quietLogger()).Widths)
}
