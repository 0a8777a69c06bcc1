package tabular

import (
	"github.com/mattn/go-runewidth"
)

// Column carries the per-column properties derived from a table's cells:
// the promoted typecode, the resolved alignment, and the harmonized decimal
// count for real-number columns.
type Column struct {
	Header   string
	Code     Typecode
	Align    Alignment
	Decimals int
}

// mergeCodes promotes two cell typecodes to a common column typecode. None
// never demotes a column. Within the numeric family, any real number
// promotes the column to RealNumber, while inf and nan ride along with
// whatever numeric code the rest of the column has.
func mergeCodes(a, b Typecode) Typecode {
	if b == None {
		return a
	}
	if a == None {
		return b
	}
	if a == b {
		return a
	}
	if a.numeric() && b.numeric() {
		if a == RealNumber || b == RealNumber {
			return RealNumber
		}
		if a == Integer || b == Integer {
			return Integer
		}
		return RealNumber
	}
	return String
}

func autoAlign(code Typecode) Alignment {
	if code.numeric() {
		return AlignRight
	}
	return AlignLeft
}

// buildColumns promotes a typecode, alignment, and decimal count for each
// of n columns. Type hints win over detection; explicit alignments win
// over the auto rule.
func buildColumns(n int, headers []string, rows [][]Cell, hints []Typecode, aligns []Alignment, precision int) []Column {
	cols := make([]Column, n)
	for i := range cols {
		if i < len(headers) {
			cols[i].Header = headers[i]
		}
		code := None
		decimals := 0
		for _, row := range rows {
			if i >= len(row) {
				continue
			}
			code = mergeCodes(code, row[i].Code)
			if row[i].Code == RealNumber && row[i].Decimals > decimals {
				decimals = row[i].Decimals
			}
		}
		if i < len(hints) && hints[i] != None {
			code = hints[i]
		}
		if precision >= 0 {
			decimals = precision
		}
		cols[i].Code = code
		cols[i].Decimals = decimals
		cols[i].Align = autoAlign(code)
		if i < len(aligns) && aligns[i] != AlignAuto {
			cols[i].Align = aligns[i]
		}
	}
	return cols
}

// layout is the render-ready view of a table: per-column properties plus
// every cell formatted as text.
type layout struct {
	cols   []Column
	header []string
	rows   [][]string
}

func (t *TableData) layout(cfg config) *layout {
	headers, cells := t.normalized()
	cols := buildColumns(len(headers), headers, cells, t.hints, t.aligns, cfg.precision)

	rows := make([][]string, len(cells))
	for r, row := range cells {
		rows[r] = make([]string, len(cols))
		for c := range cols {
			rows[r][c] = row[c].render(cols[c].Code, cols[c].Decimals)
		}
	}
	lay := &layout{cols: cols, rows: rows}
	if !cfg.noHeader {
		lay.header = headers
	}
	return lay
}

// sanitized returns a copy of the layout with line breaks and tabs in
// every header and cell collapsed to spaces, for single-line formats.
// Applied before width computation so padding matches what gets written.
func (lay *layout) sanitized() *layout {
	out := &layout{cols: lay.cols}
	out.header = make([]string, len(lay.header))
	for i, h := range lay.header {
		out.header[i] = sanitizeLine(h)
	}
	out.rows = make([][]string, len(lay.rows))
	for r, row := range lay.rows {
		out.rows[r] = make([]string, len(row))
		for c, cell := range row {
			out.rows[r][c] = sanitizeLine(cell)
		}
	}
	return out
}

func (lay *layout) aligns() []Alignment {
	out := make([]Alignment, len(lay.cols))
	for i, col := range lay.cols {
		out[i] = col.Align
	}
	return out
}

// widths computes the display width of every column over header, rows, and
// footer using terminal cell widths, with a minimum of min per column.
func (lay *layout) widths(footer []string, min int) []int {
	widths := make([]int, len(lay.cols))
	for i, h := range lay.header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range lay.rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, cell := range footer {
		if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
			widths[i] = w
		}
	}
	for i := range widths {
		if widths[i] < min {
			widths[i] = min
		}
	}
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

func extendStyles(styles []func(string) string, numCols int) []func(string) string {
	if len(styles) >= numCols {
		return styles[:numCols]
	}
	extended := make([]func(string) string, numCols)
	copy(extended, styles)
	return extended
}
