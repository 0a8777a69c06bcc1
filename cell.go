package tabular

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Typecode classifies a cell value.
type Typecode int

const (
	None Typecode = iota
	Bool
	Integer
	RealNumber
	Infinity
	NaN
	DateTime
	String
)

var typecodeNames = map[Typecode]string{
	None:       "none",
	Bool:       "bool",
	Integer:    "integer",
	RealNumber: "realnumber",
	Infinity:   "infinity",
	NaN:        "nan",
	DateTime:   "datetime",
	String:     "string",
}

// String returns the typecode name.
func (c Typecode) String() string {
	if name, ok := typecodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("typecode(%d)", int(c))
}

func (c Typecode) numeric() bool {
	switch c {
	case Integer, RealNumber, Infinity, NaN:
		return true
	default:
		return false
	}
}

// Cell is a single table value: the raw source text plus its detected
// typecode and parsed native value.
type Cell struct {
	Raw      string
	Code     Typecode
	Int      int64
	Float    float64
	Bool     bool
	Time     time.Time
	Decimals int
}

// Timestamp layouts tried during detection, most specific first.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05-0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

const dateTimeRenderLayout = "2006-01-02 15:04:05-0700"

// detectCell classifies a source string. Detection order matters: the empty
// string is None, then bool, integer, float (which also captures inf and
// nan spellings), timestamp layouts, and finally String.
func detectCell(s string) Cell {
	if s == "" {
		return Cell{Code: None}
	}
	switch strings.ToLower(s) {
	case "true":
		return Cell{Raw: s, Code: Bool, Bool: true}
	case "false":
		return Cell{Raw: s, Code: Bool, Bool: false}
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Cell{Raw: s, Code: Integer, Int: i}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		switch {
		case math.IsInf(f, 0):
			return Cell{Raw: s, Code: Infinity, Float: f}
		case math.IsNaN(f):
			return Cell{Raw: s, Code: NaN, Float: f}
		default:
			return Cell{Raw: s, Code: RealNumber, Float: f, Decimals: countDecimals(s)}
		}
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Cell{Raw: s, Code: DateTime, Time: t}
		}
	}
	return Cell{Raw: s, Code: String}
}

// cellFromValue converts a native Go value without re-parsing where the
// type already tells us the typecode. Strings still go through detection.
func cellFromValue(v any) Cell {
	switch val := v.(type) {
	case nil:
		return Cell{Code: None}
	case Cell:
		return val
	case bool:
		return Cell{Raw: strconv.FormatBool(val), Code: Bool, Bool: val}
	case int:
		return intCell(int64(val))
	case int8:
		return intCell(int64(val))
	case int16:
		return intCell(int64(val))
	case int32:
		return intCell(int64(val))
	case int64:
		return intCell(val)
	case uint:
		return intCell(int64(val))
	case uint8:
		return intCell(int64(val))
	case uint16:
		return intCell(int64(val))
	case uint32:
		return intCell(int64(val))
	case uint64:
		return intCell(int64(val))
	case float32:
		return floatCell(float64(val))
	case float64:
		return floatCell(val)
	case time.Time:
		return Cell{Raw: val.Format(dateTimeRenderLayout), Code: DateTime, Time: val}
	case string:
		return detectCell(val)
	case fmt.Stringer:
		return detectCell(val.String())
	default:
		return detectCell(fmt.Sprintf("%v", v))
	}
}

func intCell(i int64) Cell {
	return Cell{Raw: strconv.FormatInt(i, 10), Code: Integer, Int: i}
}

func floatCell(f float64) Cell {
	switch {
	case math.IsInf(f, 0):
		raw := "inf"
		if f < 0 {
			raw = "-inf"
		}
		return Cell{Raw: raw, Code: Infinity, Float: f}
	case math.IsNaN(f):
		return Cell{Raw: "nan", Code: NaN, Float: f}
	default:
		raw := strconv.FormatFloat(f, 'f', -1, 64)
		return Cell{Raw: raw, Code: RealNumber, Float: f, Decimals: countDecimals(raw)}
	}
}

// countDecimals returns the number of digits after the decimal point in a
// plain decimal literal. Exponent forms report zero; their cells render as
// written.
func countDecimals(s string) int {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	n := 0
	for _, r := range s[dot+1:] {
		if r < '0' || r > '9' {
			return 0
		}
		n++
	}
	return n
}

// render formats the cell as text in the context of a column. Real-number
// columns pass their harmonized decimal count so decimal points line up;
// integer cells in such columns render as floats.
func (c Cell) render(colCode Typecode, decimals int) string {
	switch c.Code {
	case None:
		return ""
	case Bool:
		return strconv.FormatBool(c.Bool)
	case Integer:
		if colCode == RealNumber {
			return strconv.FormatFloat(float64(c.Int), 'f', decimals, 64)
		}
		return strconv.FormatInt(c.Int, 10)
	case RealNumber:
		if strings.ContainsAny(c.Raw, "eE") {
			return c.Raw
		}
		return strconv.FormatFloat(c.Float, 'f', decimals, 64)
	case Infinity:
		if math.IsInf(c.Float, -1) {
			return "-inf"
		}
		return "inf"
	case NaN:
		return "nan"
	default:
		return c.Raw
	}
}

// renderSolo formats the cell without column context, using its own
// decimal count. Used by streaming writers, where column-wide properties
// are not known up front.
func (c Cell) renderSolo() string {
	return c.render(c.Code, c.Decimals)
}

// Value returns the typed native value for structured formats. None maps
// to nil, Infinity and NaN to the strings "Infinity"/"-Infinity" and "NaN"
// (JSON and YAML have no literals for them), and DateTime to its source
// text.
func (c Cell) Value() any {
	switch c.Code {
	case None:
		return nil
	case Bool:
		return c.Bool
	case Integer:
		return c.Int
	case RealNumber:
		return c.Float
	case Infinity:
		if math.IsInf(c.Float, -1) {
			return "-Infinity"
		}
		return "Infinity"
	case NaN:
		return "NaN"
	default:
		return c.Raw
	}
}
