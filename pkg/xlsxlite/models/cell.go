// Package models defines the in-memory data structures written to xlsx packages.
package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidHyperlink indicates a hyperlink value without a target URL.
var ErrInvalidHyperlink = errors.New("hyperlink requires a non-blank url")

// ShortDateLayout is the invariant short date form used for display text.
const ShortDateLayout = "01/02/2006"

// Kind is the closed set of cell value kinds.
type Kind int

const (
	// KindEmpty is a cell without a value.
	KindEmpty Kind = iota
	// KindText is a plain string.
	KindText
	// KindNumber is any integral, floating or decimal number.
	KindNumber
	// KindBoolean is a boolean.
	KindBoolean
	// KindDateTime is a calendar date/time instant.
	KindDateTime
	// KindHyperlink is display text plus an absolute URL.
	KindHyperlink
)

var kindNames = [...]string{"empty", "text", "number", "boolean", "datetime", "hyperlink"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Hyperlink is a cell value rendered as Text that links to URL.
type Hyperlink struct {
	Text string
	URL  string
}

// NewHyperlink validates and returns a hyperlink value.
func NewHyperlink(text, url string) (Hyperlink, error) {
	h := Hyperlink{Text: text, URL: url}
	if err := h.Validate(); err != nil {
		return Hyperlink{}, err
	}
	return h, nil
}

// Validate reports whether the hyperlink carries a target.
// Whether the target is a well-formed absolute URI is checked when the
// package relationship is written.
func (h Hyperlink) Validate() error {
	if strings.TrimSpace(h.URL) == "" {
		return fmt.Errorf("%w: text %q", ErrInvalidHyperlink, h.Text)
	}
	return nil
}

// Cell is a tagged cell value. The zero Cell is empty.
type Cell struct {
	kind  Kind
	value interface{}
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{kind: KindText, value: s} }

// Bool returns a boolean cell.
func Bool(b bool) Cell { return Cell{kind: KindBoolean, value: b} }

// Date returns a date/time cell.
func Date(t time.Time) Cell { return Cell{kind: KindDateTime, value: t} }

// Link returns a hyperlink cell. The link is validated when the row is added.
func Link(text, url string) Cell {
	return Cell{kind: KindHyperlink, value: Hyperlink{Text: text, URL: url}}
}

// Number returns a numeric cell. Values that are not numbers degrade to text.
func Number(v interface{}) Cell {
	if isNumeric(v) {
		return Cell{kind: KindNumber, value: v}
	}
	return Text(fmt.Sprint(v))
}

// Kind returns the cell kind.
func (c Cell) Kind() Kind { return c.kind }

// Value returns the canonical value retained for the kind, nil when empty.
func (c Cell) Value() interface{} { return c.value }

// Hyperlink returns the hyperlink value and whether the cell holds one.
func (c Cell) Hyperlink() (Hyperlink, bool) {
	h, ok := c.value.(Hyperlink)
	return h, ok && c.kind == KindHyperlink
}

// Time returns the date/time value and whether the cell holds one.
func (c Cell) Time() (time.Time, bool) {
	t, ok := c.value.(time.Time)
	return t, ok && c.kind == KindDateTime
}

// String returns the cell's display text.
func (c Cell) String() string { return DisplayText(c) }

// Classify maps an arbitrary value onto a cell. Checks run in a fixed order
// and the first match wins: booleans and dates are recognised before the
// numeric test.
func Classify(v interface{}) Cell {
	switch x := v.(type) {
	case nil:
		return Empty()
	case Cell:
		return x
	case *Cell:
		if x == nil {
			return Empty()
		}
		return *x
	case Hyperlink:
		return Cell{kind: KindHyperlink, value: x}
	case *Hyperlink:
		if x == nil {
			return Empty()
		}
		return Cell{kind: KindHyperlink, value: *x}
	case string:
		return Text(x)
	case bool:
		return Bool(x)
	case time.Time:
		return Date(x)
	}

	if isNumeric(v) {
		return Cell{kind: KindNumber, value: v}
	}

	// database/sql values: an invalid Null* reads as empty.
	if valuer, ok := v.(driver.Valuer); ok {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return Empty()
		}
		inner, err := valuer.Value()
		if err != nil {
			return Text(fmt.Sprint(v))
		}
		if b, ok := inner.([]byte); ok {
			return Text(string(b))
		}
		if _, again := inner.(driver.Valuer); again {
			return Text(fmt.Sprint(inner))
		}
		return Classify(inner)
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return Empty()
		}
		return Classify(rv.Elem().Interface())
	}

	return Text(fmt.Sprint(v))
}

// DisplayText renders the human-readable form used for width measurement.
func DisplayText(c Cell) string {
	switch c.kind {
	case KindEmpty:
		return ""
	case KindText:
		s, _ := c.value.(string)
		return s
	case KindNumber:
		return FormatNumber(c.value)
	case KindBoolean:
		if b, _ := c.value.(bool); b {
			return "TRUE"
		}
		return "FALSE"
	case KindDateTime:
		t, _ := c.value.(time.Time)
		return t.Format(ShortDateLayout)
	case KindHyperlink:
		h, _ := c.value.(Hyperlink)
		return h.Text
	default:
		return fmt.Sprint(c.value)
	}
}

// FormatNumber renders a numeric value in invariant form: no thousands
// separators and '.' as the decimal point.
func FormatNumber(v interface{}) string {
	switch n := v.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float32:
		return formatFloat(float64(n), 32)
	case float64:
		return formatFloat(n, 64)
	case decimal.Decimal:
		return n.String()
	case *decimal.Decimal:
		if n == nil {
			return "0"
		}
		return n.String()
	default:
		return fmt.Sprint(v)
	}
}

// IsFinite reports whether a numeric value can be written as an xsd:double.
func IsFinite(v interface{}) bool {
	switch n := v.(type) {
	case float32:
		return !math.IsNaN(float64(n)) && !math.IsInf(float64(n), 0)
	case float64:
		return !math.IsNaN(n) && !math.IsInf(n, 0)
	}
	return true
}

func formatFloat(f float64, bitSize int) string {
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-7) {
		return strconv.FormatFloat(f, 'E', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, decimal.Decimal:
		return true
	case *decimal.Decimal:
		return v.(*decimal.Decimal) != nil
	}
	return false
}
