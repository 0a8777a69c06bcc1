package tabular

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrEmptyTableData    = errors.New("empty table data")
	ErrEmptyHeader       = errors.New("empty header")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrClosed            = errors.New("stream closed")
)

// Format represents an output format.
type Format string

const (
	Table     Format = "table"
	Markdown  Format = "markdown"
	CSV       Format = "csv"
	TSV       Format = "tsv"
	HTML      Format = "html"
	JSON      Format = "json"
	JSONL     Format = "jsonl"
	YAML      Format = "yaml"
	LTSV      Format = "ltsv"
	MediaWiki Format = "mediawiki"
	Excel     Format = "excel"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Table, Markdown, CSV, TSV, HTML, JSON, JSONL, YAML, LTSV, MediaWiki, Excel}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders rows using a Go text/template.
// Each row is executed against the template with a map of column header to
// typed value (plus "_index", the zero-based row number) and written on its
// own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// --- Value Types ---

// BorderStyle controls table border characters for the Table format.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Alignment controls column text alignment. AlignAuto resolves from the
// column typecode: numeric columns align right, everything else left.
type Alignment int

const (
	AlignAuto Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// --- Options ---

// Option configures rendering. Options that a format does not use are
// ignored by that format.
type Option func(*config)

type config struct {
	border      BorderStyle
	footer      []string
	numbered    bool
	numberHdr   string
	caption     string
	maxWidths   []int
	wrapWidths  []int
	pageSize    int
	groupColumn int
	delimiter   rune
	indent      string
	precision   int
	styles      []func(string) string
	noHeader    bool
}

func newConfig(opts []Option) config {
	cfg := config{
		border:      BorderRounded,
		groupColumn: -1,
		delimiter:   ',',
		precision:   -1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBorder sets the Table border style. Default is BorderRounded.
func WithBorder(style BorderStyle) Option {
	return func(cfg *config) { cfg.border = style }
}

// WithFooter renders a footer row below Table and HTML output.
func WithFooter(cells ...string) Option {
	return func(cfg *config) { cfg.footer = cells }
}

// WithRowNumbers prepends a row number column to Table output, using header
// as the column heading.
func WithRowNumbers(header string) Option {
	return func(cfg *config) {
		cfg.numbered = true
		cfg.numberHdr = header
	}
}

// WithCaption renders a line below Table output.
func WithCaption(caption string) Option {
	return func(cfg *config) { cfg.caption = caption }
}

// WithMaxWidths sets per-column maximum widths for Table output. Cells
// exceeding the max are truncated with "...". A zero value means no limit
// for that column.
func WithMaxWidths(widths ...int) Option {
	return func(cfg *config) { cfg.maxWidths = widths }
}

// WithWrapWidths sets per-column maximum widths for text wrapping in Table
// output. Cells exceeding the width wrap to multiple visual lines within
// the same row. A zero value means no wrapping for that column.
func WithWrapWidths(widths ...int) Option {
	return func(cfg *config) { cfg.wrapWidths = widths }
}

// WithPageSize re-prints the Table header row every n data rows.
func WithPageSize(n int) Option {
	return func(cfg *config) { cfg.pageSize = n }
}

// WithGroupColumn inserts a separator line in Table output whenever the
// rendered value of column col changes between consecutive rows.
func WithGroupColumn(col int) Option {
	return func(cfg *config) { cfg.groupColumn = col }
}

// WithDelimiter sets the CSV field delimiter. Default is comma.
func WithDelimiter(d rune) Option {
	return func(cfg *config) { cfg.delimiter = d }
}

// WithIndent sets the indent string for JSON and YAML output. Without it,
// JSON rows are compact and YAML uses its default indent.
func WithIndent(indent string) Option {
	return func(cfg *config) { cfg.indent = indent }
}

// WithFloatPrecision forces the number of decimal places for real-number
// columns. By default each column uses the maximum number of decimal places
// observed among its values, so decimal points line up.
func WithFloatPrecision(p int) Option {
	return func(cfg *config) { cfg.precision = p }
}

// WithStyles provides per-column style functions for Table output. Each
// function wraps the fully formatted cell string (after truncation and
// alignment). Nil entries mean no styling for that column. Style functions
// are applied as the last step before writing, so ANSI codes never affect
// width calculations.
func WithStyles(styles ...func(string) string) Option {
	return func(cfg *config) { cfg.styles = styles }
}

// WithoutHeader suppresses the header row for CSV, TSV, Table, and Excel
// output.
func WithoutHeader() Option {
	return func(cfg *config) { cfg.noHeader = true }
}

// --- Entry points ---

// Write renders td in format f and writes the result to w.
func Write(w io.Writer, f Format, td *TableData, opts ...Option) error {
	return writeFormat(w, f, td, newConfig(opts))
}

func writeFormat(w io.Writer, f Format, td *TableData, cfg config) error {
	if td == nil || td.empty() {
		return ErrEmptyTableData
	}
	switch f {
	case Table:
		return writeGrid(w, td, cfg)
	case Markdown:
		return writeMarkdown(w, td, cfg)
	case CSV:
		return writeCSV(w, td, cfg)
	case TSV:
		return writeTSV(w, td, cfg)
	case HTML:
		return writeHTML(w, td, cfg)
	case JSON:
		return writeJSON(w, td, cfg)
	case JSONL:
		return writeJSONL(w, td, cfg)
	case YAML:
		return writeYAML(w, td, cfg)
	case LTSV:
		return writeLTSV(w, td, cfg)
	case MediaWiki:
		return writeMediaWiki(w, td, cfg)
	case Excel:
		return writeExcel(w, td, cfg)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, td, cfg)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders td in format f and returns the bytes.
func Marshal(f Format, td *TableData, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, td, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Line breaks and tabs inside a cell would break single-line text formats.
var lineBreakRE = regexp.MustCompile("[\x00\t\r\n]+")

func sanitizeLine(s string) string {
	if !strings.ContainsAny(s, "\x00\t\r\n") {
		return s
	}
	return lineBreakRE.ReplaceAllString(s, " ")
}
