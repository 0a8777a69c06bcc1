package tabular

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"text/template"
)

// Stream writes a table row by row. Formats whose rows are independent
// (CSV, TSV, JSONL, LTSV, GoTemplate) are written as rows arrive, so
// arbitrarily large tables never sit in memory; formats that need the
// whole table for layout (Table, Markdown, HTML, JSON, YAML, MediaWiki,
// Excel) are buffered and rendered on Close.
//
// Immediate formats render each cell on its own, without column-wide
// context, so real-number cells keep their source decimal count instead of
// the column-harmonized one.
type Stream struct {
	w       io.Writer
	f       Format
	cfg     config
	td      *TableData
	tmpl    *template.Template
	labels  []string
	headers []string

	immediate   bool
	wroteHeader bool
	rowCount    int
	closed      bool
}

// NewStream prepares a row-by-row writer for format f. The header list is
// fixed up front; go-template formats are parsed here so template errors
// surface before any row is written.
func NewStream(w io.Writer, f Format, name string, headers []string, opts ...Option) (*Stream, error) {
	s := &Stream{
		w:       w,
		f:       f,
		cfg:     newConfig(opts),
		td:      NewTableData(name, headers, nil),
		headers: headers,
	}

	switch f {
	case CSV, TSV, JSONL, LTSV:
		s.immediate = true
	case Table, Markdown, HTML, JSON, YAML, MediaWiki, Excel:
	default:
		tmplStr, ok := strings.CutPrefix(string(f), goTemplatePrefix)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
		}
		tmpl, err := template.New("").Parse(tmplStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
		}
		s.tmpl = tmpl
		s.immediate = true
	}

	if f == LTSV {
		if len(headers) == 0 {
			return nil, fmt.Errorf("format %q: %w", LTSV, ErrEmptyHeader)
		}
		s.labels = make([]string, len(headers))
		for i, h := range headers {
			s.labels[i] = ltsvLabel(h)
		}
	}
	return s, nil
}

// WriteRow appends one row. For immediate formats it is rendered and
// written before WriteRow returns.
func (s *Stream) WriteRow(vals ...any) error {
	if s.closed {
		return ErrClosed
	}
	if !s.immediate {
		s.td.AppendRow(vals...)
		s.rowCount++
		return nil
	}

	cells := s.normalizeRow(vals)
	if err := s.writeImmediate(cells); err != nil {
		return err
	}
	s.rowCount++
	return nil
}

// Close finishes the stream. Buffered formats render here; immediate
// header-bearing formats that saw no rows still emit their header row, so
// a zero-row stream matches a zero-row Write.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if !s.immediate {
		return writeFormat(s.w, s.f, s.td, s.cfg)
	}
	if !s.wroteHeader {
		return s.writeHeader()
	}
	return nil
}

// NumRows returns the number of rows written so far.
func (s *Stream) NumRows() int { return s.rowCount }

func (s *Stream) normalizeRow(vals []any) []Cell {
	cells := make([]Cell, len(vals))
	for i, v := range vals {
		cells[i] = cellFromValue(v)
	}
	if len(s.headers) == 0 {
		return cells
	}
	if len(cells) == len(s.headers) {
		return cells
	}
	normalized := make([]Cell, len(s.headers))
	copy(normalized, cells)
	return normalized
}

func (s *Stream) writeImmediate(cells []Cell) error {
	if !s.wroteHeader {
		if err := s.writeHeader(); err != nil {
			return err
		}
	}
	switch s.f {
	case CSV:
		return writeCSVRow(s.w, renderCells(cells, false), s.cfg.delimiter)
	case TSV:
		return writeTSVRow(s.w, renderCells(cells, true))
	case JSONL:
		cols := streamColumns(s.headers, cells)
		obj, err := encodeRowObject(cols, cellValues(cells), "")
		if err != nil {
			return err
		}
		_, err = s.w.Write(append(obj, '\n'))
		return err
	case LTSV:
		return writeLTSVRow(s.w, s.labels, renderCells(cells, true))
	default: // go-template, validated in NewStream
		cols := streamColumns(s.headers, cells)
		if err := s.tmpl.Execute(s.w, templateRow(cols, cellValues(cells), s.rowCount)); err != nil {
			return err
		}
		_, err := fmt.Fprintln(s.w)
		return err
	}
}

func (s *Stream) writeHeader() error {
	s.wroteHeader = true
	if s.cfg.noHeader || len(s.headers) == 0 {
		return nil
	}
	switch s.f {
	case CSV:
		return writeCSVRow(s.w, s.headers, s.cfg.delimiter)
	case TSV:
		header := make([]string, len(s.headers))
		for i, h := range s.headers {
			header[i] = sanitizeLine(h)
		}
		return writeTSVRow(s.w, header)
	default:
		return nil
	}
}

func renderCells(cells []Cell, sanitize bool) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.renderSolo()
		if sanitize {
			out[i] = sanitizeLine(out[i])
		}
	}
	return out
}

func cellValues(cells []Cell) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c.Value()
	}
	return out
}

// streamColumns builds per-row column context from the fixed headers and
// the row's own cell typecodes.
func streamColumns(headers []string, cells []Cell) []Column {
	n := len(headers)
	if len(cells) > n {
		n = len(cells)
	}
	cols := make([]Column, n)
	for i := range cols {
		if i < len(headers) {
			cols[i].Header = headers[i]
		} else {
			cols[i].Header = columnName(i)
		}
		if i < len(cells) {
			cols[i].Code = cells[i].Code
			cols[i].Decimals = cells[i].Decimals
		}
		cols[i].Align = autoAlign(cols[i].Code)
	}
	return cols
}

// WriteIter renders rows from an iterator. It is equivalent to NewStream
// followed by one WriteRow per element and a Close.
func WriteIter(w io.Writer, f Format, name string, headers []string, seq iter.Seq[[]any], opts ...Option) error {
	s, err := NewStream(w, f, name, headers, opts...)
	if err != nil {
		return err
	}
	var rowErr error
	seq(func(row []any) bool {
		if err := s.WriteRow(row...); err != nil {
			rowErr = err
			return false
		}
		return true
	})
	if rowErr != nil {
		return rowErr
	}
	return s.Close()
}

// WriteChan renders rows from a channel. It is a thin wrapper around
// [WriteIter].
func WriteChan(w io.Writer, f Format, name string, headers []string, ch <-chan []any, opts ...Option) error {
	return WriteIter(w, f, name, headers, chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
