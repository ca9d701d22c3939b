// Package manifest loads workbook content from YAML documents.
//
// A manifest lists sheets and their rows. Scalars map to text, numbers and
// booleans; maps describe the values YAML has no literal for:
//
//	sheets:
//	  - name: Employees
//	    freeze: {rows: 1}
//	    rows:
//	      - [Name, Age, Joined, Salary, Profile]
//	      - [Alice, 30, {date: 2021-03-01}, {decimal: "5200.50"}, {text: GitHub, url: "https://github.com/alice"}]
//	      - {empty: 2}
package manifest

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/models"
	"gopkg.in/yaml.v2"
)

// ErrInvalidValue indicates a cell or row entry the manifest cannot map.
var ErrInvalidValue = errors.New("invalid manifest value")

// Accepted layouts for {date: ...} values, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Manifest is the root of a workbook manifest.
type Manifest struct {
	Sheets []SheetDef `yaml:"sheets"`
}

// SheetDef describes one sheet.
type SheetDef struct {
	Name string `yaml:"name"`
	// AutoFit overrides the workbook default when set.
	AutoFit *bool      `yaml:"autofit,omitempty"`
	Freeze  *FreezeDef `yaml:"freeze,omitempty"`
	// Rows holds value lists or {empty: N} entries.
	Rows []interface{} `yaml:"rows"`
}

// FreezeDef is a frozen pane split.
type FreezeDef struct {
	Rows    uint32 `yaml:"rows"`
	Columns uint32 `yaml:"columns"`
}

// Parse decodes a manifest. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile reads and decodes the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest '%s': %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest '%s': %w", path, err)
	}
	return m, nil
}

// Build creates a workbook holding the manifest's sheets.
func (m *Manifest) Build(opts xlsxlite.Options) (*xlsxlite.Workbook, error) {
	wb := xlsxlite.New(opts)
	for _, def := range m.Sheets {
		sheet, err := wb.AddSheet(def.Name)
		if err != nil {
			return nil, err
		}
		if def.AutoFit != nil {
			sheet.AutoFitColumns(*def.AutoFit)
		}
		if def.Freeze != nil {
			sheet.FreezePanes(def.Freeze.Rows, def.Freeze.Columns)
		}
		for i, entry := range def.Rows {
			if err := addEntry(sheet, entry); err != nil {
				return nil, fmt.Errorf("sheet %q entry %d: %w", def.Name, i+1, err)
			}
		}
	}
	return wb, nil
}

func addEntry(sheet *xlsxlite.Sheet, entry interface{}) error {
	switch e := entry.(type) {
	case []interface{}:
		cells := make([]models.Cell, len(e))
		for i, v := range e {
			c, err := cellValue(v)
			if err != nil {
				return fmt.Errorf("value %d: %w", i+1, err)
			}
			cells[i] = c
		}
		return sheet.AddCells(cells...)
	case map[interface{}]interface{}:
		n, ok := e["empty"].(int)
		if !ok || len(e) != 1 {
			return fmt.Errorf("%w: row must be a list or {empty: N}", ErrInvalidValue)
		}
		return sheet.AddEmptyRows(n)
	case nil:
		return xlsxlite.ErrNilRow
	default:
		return fmt.Errorf("%w: row must be a list or {empty: N}, got %T", ErrInvalidValue, entry)
	}
}

func cellValue(v interface{}) (models.Cell, error) {
	m, ok := v.(map[interface{}]interface{})
	if !ok {
		return models.Classify(v), nil
	}

	switch {
	case has(m, "date"):
		if len(m) != 1 {
			break
		}
		t, err := parseDate(m["date"])
		if err != nil {
			return models.Cell{}, err
		}
		return models.Date(t), nil
	case has(m, "url"):
		if len(m) > 2 || (len(m) == 2 && !has(m, "text")) {
			break
		}
		return linkValue(m)
	case has(m, "decimal"):
		if len(m) != 1 {
			break
		}
		d, err := decimal.NewFromString(fmt.Sprint(m["decimal"]))
		if err != nil {
			return models.Cell{}, fmt.Errorf("%w: decimal: %v", ErrInvalidValue, err)
		}
		return models.Number(d), nil
	}
	return models.Cell{}, fmt.Errorf("%w: unsupported map %v", ErrInvalidValue, m)
}

// linkValue maps {url: ...} or {text: ..., url: ...}. Both fields must be
// strings; the text defaults to the url.
func linkValue(m map[interface{}]interface{}) (models.Cell, error) {
	url, ok := m["url"].(string)
	if !ok {
		return models.Cell{}, fmt.Errorf("%w: url must be a string, got %v", models.ErrInvalidHyperlink, m["url"])
	}
	text := url
	if t, present := m["text"]; present {
		if text, ok = t.(string); !ok {
			return models.Cell{}, fmt.Errorf("%w: text must be a string, got %v", models.ErrInvalidHyperlink, t)
		}
	}
	h, err := models.NewHyperlink(text, url)
	if err != nil {
		return models.Cell{}, err
	}
	return models.Classify(h), nil
}

func has(m map[interface{}]interface{}, key string) bool {
	_, ok := m[key]
	return ok
}

func parseDate(v interface{}) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %v", ErrInvalidValue, v)
}
