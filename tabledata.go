package tabular

// TableData holds a named table: a header list plus a matrix of typed
// cells. Rows may be ragged; rendering normalizes every row to the header
// width, padding with empty cells and dropping extras.
//
// The zero value is unusable; construct with NewTableData or one of the
// loaders (FromCSV, FromCSVFile, FromExcelFile).
type TableData struct {
	// Name renders as a heading (Markdown), title row (Table), caption
	// (HTML, MediaWiki), or sheet name (Excel). May be empty.
	Name string

	headers []string
	rows    [][]Cell
	hints   []Typecode
	aligns  []Alignment
}

// NewTableData builds a table from native Go values. Supported cell value
// types are nil, bool, integers, floats, string, time.Time, and Cell;
// strings go through type detection, everything else converts directly.
// A nil header list gets default alphabetic headers (A, B, ..., Z, AA, ...)
// sized to the widest row.
func NewTableData(name string, headers []string, rows [][]any) *TableData {
	td := &TableData{Name: name}
	if len(headers) > 0 {
		td.headers = make([]string, len(headers))
		copy(td.headers, headers)
	}
	for _, row := range rows {
		td.AppendRow(row...)
	}
	return td
}

func fromRecords(name string, headers []string, records [][]string) *TableData {
	td := &TableData{Name: name}
	if len(headers) > 0 {
		td.headers = make([]string, len(headers))
		copy(td.headers, headers)
	}
	for _, record := range records {
		row := make([]Cell, len(record))
		for i, field := range record {
			row[i] = detectCell(field)
		}
		td.rows = append(td.rows, row)
	}
	return td
}

// AppendRow converts vals to cells and appends them as a new row.
func (t *TableData) AppendRow(vals ...any) {
	row := make([]Cell, len(vals))
	for i, v := range vals {
		row[i] = cellFromValue(v)
	}
	t.rows = append(t.rows, row)
}

// SetTypeHints overrides the detected column typecodes. A None hint keeps
// detection for that column; hints beyond the column count are ignored.
// Hinting a column changes how its cells render (an Integer-hinted column
// renders real numbers as written but aligns right, a RealNumber-hinted
// column renders integers with the column's decimal count, and so on).
func (t *TableData) SetTypeHints(hints ...Typecode) {
	t.hints = make([]Typecode, len(hints))
	copy(t.hints, hints)
}

// SetAlignments overrides the automatic per-column alignment. AlignAuto
// keeps the default rule (numeric right, otherwise left) for that column.
func (t *TableData) SetAlignments(aligns ...Alignment) {
	t.aligns = make([]Alignment, len(aligns))
	copy(t.aligns, aligns)
}

// Headers returns a copy of the header list, including generated default
// headers when none were supplied.
func (t *TableData) Headers() []string {
	headers, _ := t.normalized()
	out := make([]string, len(headers))
	copy(out, headers)
	return out
}

// NumRows returns the number of data rows.
func (t *TableData) NumRows() int { return len(t.rows) }

// NumColumns returns the table width: the header count, or the widest row
// when no headers were supplied.
func (t *TableData) NumColumns() int {
	headers, _ := t.normalized()
	return len(headers)
}

// Columns returns the per-column properties promoted from the current
// cells, hints, and alignments.
func (t *TableData) Columns() []Column {
	headers, cells := t.normalized()
	return buildColumns(len(headers), headers, cells, t.hints, t.aligns, -1)
}

// Records returns every row rendered as strings, using the same column
// context as the text writers.
func (t *TableData) Records() [][]string {
	lay := t.layout(newConfig(nil))
	return lay.rows
}

func (t *TableData) empty() bool {
	return len(t.headers) == 0 && len(t.rows) == 0
}

// normalized returns the effective headers and a matrix where every row
// has exactly one cell per header.
func (t *TableData) normalized() ([]string, [][]Cell) {
	headers := t.headers
	if len(headers) == 0 {
		width := 0
		for _, row := range t.rows {
			if len(row) > width {
				width = len(row)
			}
		}
		headers = defaultHeaders(width)
	}
	cells := make([][]Cell, len(t.rows))
	for i, row := range t.rows {
		if len(row) == len(headers) {
			cells[i] = row
			continue
		}
		normalized := make([]Cell, len(headers))
		copy(normalized, row)
		cells[i] = normalized
	}
	return headers, cells
}

// defaultHeaders generates spreadsheet-style column names: A..Z, AA..AZ, ...
func defaultHeaders(n int) []string {
	headers := make([]string, n)
	for i := range headers {
		headers[i] = columnName(i)
	}
	return headers
}

func columnName(idx int) string {
	name := ""
	for idx >= 0 {
		name = string(rune('A'+idx%26)) + name
		idx = idx/26 - 1
	}
	return name
}

// typedRows returns the column properties plus every row's typed values,
// for the structured writers (JSON, YAML, Excel, GoTemplate).
func (t *TableData) typedRows(cfg config) ([]Column, [][]any) {
	headers, cells := t.normalized()
	cols := buildColumns(len(headers), headers, cells, t.hints, t.aligns, cfg.precision)
	rows := make([][]any, len(cells))
	for r, row := range cells {
		rows[r] = make([]any, len(cols))
		for c := range cols {
			rows[r][c] = row[c].Value()
		}
	}
	return cols, rows
}
