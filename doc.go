// Package tabular loads tabular data, detects a type for every value, and
// renders the table in multiple output formats.
//
// The central type is [TableData]: a named table of typed cells. Cells are
// classified with a [Typecode] (None, Bool, Integer, RealNumber, Infinity,
// NaN, DateTime, String), and each column promotes a typecode from its
// cells. Column typecodes drive rendering: numeric columns align right,
// real-number columns render every value with the column's maximum decimal
// count so decimal points line up, empty cells render as nothing, and
// inf/nan render as written.
//
// # Loading
//
// Tables come from CSV data, Excel workbooks, or native Go values:
//
//	td, err := tabular.FromCSVFile("scores.csv")
//	td, err := tabular.FromCSV("scores", reader)
//	td, err := tabular.FromExcelFile("scores.xlsx", "")
//	td := tabular.NewTableData("scores", []string{"name", "pts"}, rows)
//
// A nil header list gets spreadsheet-style default headers (A, B, ..., Z,
// AA, ...). Detected column types can be overridden per column with
// [TableData.SetTypeHints], and alignment with [TableData.SetAlignments].
//
// # Rendering
//
// [Write] and [Marshal] accept a [Format] constant:
//
//	tabular.Write(os.Stdout, tabular.Markdown, td)
//
// Markdown output follows the GitHub table syntax, with a separator row
// encoding per-column alignment:
//
//	# scores
//	| name | pts |
//	| ---- | --: |
//	| anna |  31 |
//	| ben  |   7 |
//
// The Table format renders a plain-text grid; [Option] values control its
// border style, footer, row numbering, caption, truncation, wrapping, and
// header paging. CSV, TSV, HTML, JSON, JSONL, YAML, LTSV, MediaWiki, and
// Excel round out the static formats, and [GoTemplate] renders each row
// through a Go text/template keyed by header.
//
// JSON, JSONL, YAML, and Excel output is typed: integer cells become
// numbers, booleans stay booleans, None becomes null, and inf/nan become
// the strings "Infinity" and "NaN".
//
// # Streaming
//
// [Stream], [WriteIter], and [WriteChan] write a table row by row. Formats
// whose rows are independent are flushed as rows arrive; formats that need
// the whole table for layout are buffered until Close.
//
// # Format selection
//
// [ParseFormat] converts a CLI flag string into a [Format]. It recognizes
// all static formats and "go-template=<tmpl>" strings.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrEmptyTableData] — table has neither headers nor rows
//   - [ErrEmptyHeader] — format requires headers and none exist
//   - [ErrInvalidTemplate] — invalid go-template syntax
//   - [ErrClosed] — write to a closed stream
package tabular
