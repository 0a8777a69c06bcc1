package tabular_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bpowell/tabular"
)

// --- Fixtures ---

const numsCSV = `a,b,c
1,1.1,foo
-10,2.25,bar
3,,baz
`

func numsTable(t *testing.T) *tabular.TableData {
	t.Helper()
	td, err := tabular.FromCSVString("nums", numsCSV)
	require.NoError(t, err)
	return td
}

// --- Helpers ---

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = errors.New("write failed")

// ============================================================
// Format selection
// ============================================================

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tabular.Format
		wantErr require.ErrorAssertionFunc
	}{
		"table":     {input: "table", want: tabular.Table, wantErr: require.NoError},
		"markdown":  {input: "markdown", want: tabular.Markdown, wantErr: require.NoError},
		"csv":       {input: "csv", want: tabular.CSV, wantErr: require.NoError},
		"tsv":       {input: "tsv", want: tabular.TSV, wantErr: require.NoError},
		"html":      {input: "html", want: tabular.HTML, wantErr: require.NoError},
		"json":      {input: "json", want: tabular.JSON, wantErr: require.NoError},
		"jsonl":     {input: "jsonl", want: tabular.JSONL, wantErr: require.NoError},
		"yaml":      {input: "yaml", want: tabular.YAML, wantErr: require.NoError},
		"ltsv":      {input: "ltsv", want: tabular.LTSV, wantErr: require.NoError},
		"mediawiki": {input: "mediawiki", want: tabular.MediaWiki, wantErr: require.NoError},
		"excel":     {input: "excel", want: tabular.Excel, wantErr: require.NoError},
		"template":  {input: "go-template={{.a}}", want: tabular.GoTemplate("{{.a}}"), wantErr: require.NoError},
		"unknown":   {input: "nope", wantErr: require.Error},
		"empty":     {input: "", wantErr: require.Error},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabular.ParseFormat(tc.input)
			tc.wantErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, tabular.ErrUnsupportedFormat)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()
	fs := tabular.Formats()
	assert.Len(t, fs, 11)
	assert.Contains(t, fs, tabular.Markdown)
	assert.Contains(t, fs, tabular.Excel)

	// Mutating the returned slice must not affect the package.
	fs[0] = tabular.Format("mutated")
	assert.NotContains(t, tabular.Formats(), tabular.Format("mutated"))
}

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := tabular.Write(&buf, tabular.Format("nope"), numsTable(t))
	require.ErrorIs(t, err, tabular.ErrUnsupportedFormat)
}

func TestWriteEmptyTableData(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := tabular.Write(&buf, tabular.Markdown, nil)
	require.ErrorIs(t, err, tabular.ErrEmptyTableData)

	err = tabular.Write(&buf, tabular.Markdown, tabular.NewTableData("", nil, nil))
	require.ErrorIs(t, err, tabular.ErrEmptyTableData)
}

// ============================================================
// Loading
// ============================================================

func TestFromCSVTypeDetection(t *testing.T) {
	t.Parallel()
	td := numsTable(t)
	assert.Equal(t, "nums", td.Name)
	assert.Equal(t, []string{"a", "b", "c"}, td.Headers())
	assert.Equal(t, 3, td.NumRows())

	cols := td.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, tabular.Integer, cols[0].Code)
	assert.Equal(t, tabular.RealNumber, cols[1].Code)
	assert.Equal(t, tabular.String, cols[2].Code)
	assert.Equal(t, 2, cols[1].Decimals)
	assert.Equal(t, tabular.AlignRight, cols[0].Align)
	assert.Equal(t, tabular.AlignLeft, cols[2].Align)
}

func TestFromCSVRaggedRows(t *testing.T) {
	t.Parallel()
	td, err := tabular.FromCSVString("ragged", "a,b\n1\n2,3,4\n")
	require.NoError(t, err)
	records := td.Records()
	require.Len(t, records, 2)
	assert.Equal(t, []string{"1", ""}, records[0])
	assert.Equal(t, []string{"2", "3"}, records[1])
}

func TestFromCSVEmpty(t *testing.T) {
	t.Parallel()
	_, err := tabular.FromCSVString("empty", "")
	require.ErrorIs(t, err, tabular.ErrEmptyTableData)
}

func TestFromCSVMalformed(t *testing.T) {
	t.Parallel()
	_, err := tabular.FromCSVString("bad", "a,b\n\"unterminated\n")
	require.Error(t, err)
}

func TestFromCSVFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "scores.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,pts\nanna,31\n"), 0o644))

	td, err := tabular.FromCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, "scores", td.Name)
	assert.Equal(t, 1, td.NumRows())
}

func TestFromCSVFileMissing(t *testing.T) {
	t.Parallel()
	_, err := tabular.FromCSVFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestNewTableDataDefaultHeaders(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", nil, [][]any{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, []string{"A", "B", "C"}, td.Headers())
	assert.Equal(t, 3, td.NumColumns())
}

func TestAppendRowNativeValues(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("t", []string{"n", "f", "b", "s", "nil"}, nil)
	td.AppendRow(42, 2.5, true, "hi", nil)
	records := td.Records()
	require.Len(t, records, 1)
	assert.Equal(t, []string{"42", "2.5", "true", "hi", ""}, records[0])
}

func TestSetTypeHints(t *testing.T) {
	t.Parallel()
	td := numsTable(t)
	td.SetTypeHints(tabular.String)
	cols := td.Columns()
	assert.Equal(t, tabular.String, cols[0].Code)
	assert.Equal(t, tabular.AlignLeft, cols[0].Align)
	// Unhinted columns keep detection.
	assert.Equal(t, tabular.RealNumber, cols[1].Code)
}

func TestSetAlignments(t *testing.T) {
	t.Parallel()
	td := numsTable(t)
	td.SetAlignments(tabular.AlignCenter, tabular.AlignAuto, tabular.AlignRight)
	cols := td.Columns()
	assert.Equal(t, tabular.AlignCenter, cols[0].Align)
	assert.Equal(t, tabular.AlignRight, cols[1].Align) // auto keeps numeric right
	assert.Equal(t, tabular.AlignRight, cols[2].Align)
}

// ============================================================
// Markdown
// ============================================================

func TestMarkdown(t *testing.T) {
	t.Parallel()
	got, err := tabular.Marshal(tabular.Markdown, numsTable(t))
	require.NoError(t, err)
	want := `# nums
|   a |    b | c   |
| --: | ---: | --- |
|   1 | 1.10 | foo |
| -10 | 2.25 | bar |
|   3 |      | baz |
`
	assert.Equal(t, want, string(got))
}

func TestMarkdownNoName(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"x"}, [][]any{{1}})
	got, err := tabular.Marshal(tabular.Markdown, td)
	require.NoError(t, err)
	want := `|   x |
| --: |
|   1 |
`
	assert.Equal(t, want, string(got))
}

func TestMarkdownCenterAlignment(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"col"}, [][]any{{"v"}})
	td.SetAlignments(tabular.AlignCenter)
	got, err := tabular.Marshal(tabular.Markdown, td)
	require.NoError(t, err)
	want := `| col |
| :-: |
|  v  |
`
	assert.Equal(t, want, string(got))
}

func TestMarkdownHeaderOnly(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"a", "b"}, nil)
	got, err := tabular.Marshal(tabular.Markdown, td)
	require.NoError(t, err)
	want := `| a   | b   |
| --- | --- |
`
	assert.Equal(t, want, string(got))
}

func TestMarkdownLineBreaksCollapsed(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"note"}, [][]any{{"two\nlines"}})
	got, err := tabular.Marshal(tabular.Markdown, td)
	require.NoError(t, err)
	assert.Contains(t, string(got), "| two lines |")
}

func TestMarkdownWideRunes(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"word", "n"}, [][]any{
		{"你好", 1},
		{"hi", 22},
	})
	got, err := tabular.Marshal(tabular.Markdown, td)
	require.NoError(t, err)
	want := `| word |   n |
| ---- | --: |
| 你好 |   1 |
| hi   |  22 |
`
	assert.Equal(t, want, string(got))
}

// ============================================================
// Table (text grid)
// ============================================================

func TestGridASCII(t *testing.T) {
	t.Parallel()
	td := numsTable(t)
	td.Name = "" // no title row
	got, err := tabular.Marshal(tabular.Table, td, tabular.WithBorder(tabular.BorderASCII))
	require.NoError(t, err)
	want := `+-----+------+-----+
|   a |    b | c   |
+-----+------+-----+
|   1 | 1.10 | foo |
| -10 | 2.25 | bar |
|   3 |      | baz |
+-----+------+-----+
`
	assert.Equal(t, want, string(got))
}

func TestGridRounded(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"x"}, [][]any{{"y"}})
	got, err := tabular.Marshal(tabular.Table, td)
	require.NoError(t, err)
	want := `╭───╮
│ x │
├───┤
│ y │
╰───╯
`
	assert.Equal(t, want, string(got))
}

func TestGridBorderStyles(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"x"}, [][]any{{"y"}})
	tests := map[string]struct {
		border tabular.BorderStyle
		corner string
	}{
		"heavy":  {border: tabular.BorderHeavy, corner: "┏"},
		"double": {border: tabular.BorderDouble, corner: "╔"},
		"ascii":  {border: tabular.BorderASCII, corner: "+"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabular.Marshal(tabular.Table, td, tabular.WithBorder(tc.border))
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(got), tc.corner), "got %q", got)
		})
	}
}

func TestGridNone(t *testing.T) {
	t.Parallel()
	td := numsTable(t)
	got, err := tabular.Marshal(tabular.Table, td, tabular.WithBorder(tabular.BorderNone))
	require.NoError(t, err)
	want := `  a     b  c
---  ----  ---
  1  1.10  foo
-10  2.25  bar
  3        baz
`
	assert.Equal(t, want, string(got))
}

func TestGridTitle(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("Top", []string{"name", "pts"}, [][]any{{"anna", 31}})
	got, err := tabular.Marshal(tabular.Table, td, tabular.WithBorder(tabular.BorderASCII))
	require.NoError(t, err)
	want := `+------------+
|    Top     |
+------+-----+
| name | pts |
+------+-----+
| anna |  31 |
+------+-----+
`
	assert.Equal(t, want, string(got))
}

func TestGridFooterAndCaption(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"name", "pts"}, [][]any{
		{"anna", 31},
		{"ben", 7},
	})
	got, err := tabular.Marshal(tabular.Table, td,
		tabular.WithBorder(tabular.BorderASCII),
		tabular.WithFooter("Total", "38"),
		tabular.WithCaption("2 results"),
	)
	require.NoError(t, err)
	want := `+-------+-----+
| name  | pts |
+-------+-----+
| anna  |  31 |
| ben   |   7 |
+-------+-----+
| Total |  38 |
+-------+-----+
2 results
`
	assert.Equal(t, want, string(got))
}

func TestGridRowNumbers(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"name"}, [][]any{{"anna"}, {"ben"}})
	got, err := tabular.Marshal(tabular.Table, td,
		tabular.WithBorder(tabular.BorderASCII),
		tabular.WithRowNumbers("#"),
	)
	require.NoError(t, err)
	want := `+---+------+
| # | name |
+---+------+
| 1 | anna |
| 2 | ben  |
+---+------+
`
	assert.Equal(t, want, string(got))
}

func TestGridTruncation(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"word"}, [][]any{{"abcdefghij"}})
	got, err := tabular.Marshal(tabular.Table, td,
		tabular.WithBorder(tabular.BorderASCII),
		tabular.WithMaxWidths(7),
	)
	require.NoError(t, err)
	want := `+---------+
| word    |
+---------+
| abcd... |
+---------+
`
	assert.Equal(t, want, string(got))
}

func TestGridWrapping(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"w"}, [][]any{{"abcdef"}})
	got, err := tabular.Marshal(tabular.Table, td,
		tabular.WithBorder(tabular.BorderASCII),
		tabular.WithMaxWidths(4),
		tabular.WithWrapWidths(3),
	)
	require.NoError(t, err)
	want := `+------+
| w    |
+------+
| abc  |
| def  |
+------+
`
	assert.Equal(t, want, string(got))
}

func TestGridGroupColumn(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"team", "name"}, [][]any{
		{"red", "anna"},
		{"red", "ben"},
		{"blue", "caro"},
	})
	got, err := tabular.Marshal(tabular.Table, td,
		tabular.WithBorder(tabular.BorderASCII),
		tabular.WithGroupColumn(0),
	)
	require.NoError(t, err)
	want := `+------+------+
| team | name |
+------+------+
| red  | anna |
| red  | ben  |
+------+------+
| blue | caro |
+------+------+
`
	assert.Equal(t, want, string(got))
}

func TestGridPageSize(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"n"}, [][]any{{"a"}, {"b"}, {"c"}})
	got, err := tabular.Marshal(tabular.Table, td,
		tabular.WithBorder(tabular.BorderASCII),
		tabular.WithPageSize(2),
	)
	require.NoError(t, err)
	want := `+---+
| n |
+---+
| a |
| b |
+---+
| n |
+---+
| c |
+---+
`
	assert.Equal(t, want, string(got))
}

func TestGridStyles(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"x"}, [][]any{{"y"}})
	upper := func(s string) string { return strings.ToUpper(s) }
	got, err := tabular.Marshal(tabular.Table, td,
		tabular.WithBorder(tabular.BorderASCII),
		tabular.WithStyles(upper),
	)
	require.NoError(t, err)
	assert.Contains(t, string(got), "| Y |")
	assert.Contains(t, string(got), "| X |")
}

func TestGridWithoutHeader(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"x"}, [][]any{{"y"}})
	got, err := tabular.Marshal(tabular.Table, td,
		tabular.WithBorder(tabular.BorderASCII),
		tabular.WithoutHeader(),
	)
	require.NoError(t, err)
	want := `+---+
| y |
+---+
`
	assert.Equal(t, want, string(got))
}

func TestGridWriteError(t *testing.T) {
	t.Parallel()
	err := tabular.Write(&errWriter{}, tabular.Table, numsTable(t))
	require.ErrorIs(t, err, errWriteFailed)
}

// ============================================================
// CSV / TSV
// ============================================================

func TestCSV(t *testing.T) {
	t.Parallel()
	got, err := tabular.Marshal(tabular.CSV, numsTable(t))
	require.NoError(t, err)
	want := "a,b,c\n1,1.10,foo\n-10,2.25,bar\n3,,baz\n"
	assert.Equal(t, want, string(got))
}

func TestCSVDelimiter(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"a", "b"}, [][]any{{1, 2}})
	got, err := tabular.Marshal(tabular.CSV, td, tabular.WithDelimiter(';'))
	require.NoError(t, err)
	assert.Equal(t, "a;b\n1;2\n", string(got))
}

func TestCSVWithoutHeader(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"a"}, [][]any{{1}})
	got, err := tabular.Marshal(tabular.CSV, td, tabular.WithoutHeader())
	require.NoError(t, err)
	assert.Equal(t, "1\n", string(got))
}

func TestCSVQuoting(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"a"}, [][]any{{"x,y"}})
	got, err := tabular.Marshal(tabular.CSV, td)
	require.NoError(t, err)
	assert.Equal(t, "a\n\"x,y\"\n", string(got))
}

func TestTSV(t *testing.T) {
	t.Parallel()
	got, err := tabular.Marshal(tabular.TSV, numsTable(t))
	require.NoError(t, err)
	want := "a\tb\tc\n1\t1.10\tfoo\n-10\t2.25\tbar\n3\t\tbaz\n"
	assert.Equal(t, want, string(got))
}

// ============================================================
// HTML
// ============================================================

func TestHTML(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("T & Co", []string{"name", "pts"}, [][]any{{"<anna>", 31}})
	got, err := tabular.Marshal(tabular.HTML, td, tabular.WithFooter("Total", "31"))
	require.NoError(t, err)
	want := `<table>
  <caption>T &amp; Co</caption>
  <thead>
    <tr>
      <th>name</th>
      <th style="text-align: right">pts</th>
    </tr>
  </thead>
  <tbody>
    <tr>
      <td>&lt;anna&gt;</td>
      <td style="text-align: right">31</td>
    </tr>
  </tbody>
  <tfoot>
    <tr>
      <td>Total</td>
      <td style="text-align: right">31</td>
    </tr>
  </tfoot>
</table>
`
	assert.Equal(t, want, string(got))
}

// ============================================================
// JSON / JSONL / YAML
// ============================================================

func TestJSON(t *testing.T) {
	t.Parallel()
	got, err := tabular.Marshal(tabular.JSON, numsTable(t))
	require.NoError(t, err)
	want := `[
  {"a": 1, "b": 1.1, "c": "foo"},
  {"a": -10, "b": 2.25, "c": "bar"},
  {"a": 3, "b": null, "c": "baz"}
]
`
	assert.Equal(t, want, string(got))
}

func TestJSONTypedSpecials(t *testing.T) {
	t.Parallel()
	td, err := tabular.FromCSVString("specials", "v\ninf\nnan\ntrue\n")
	require.NoError(t, err)
	got, err := tabular.Marshal(tabular.JSONL, td)
	require.NoError(t, err)
	want := `{"v": "Infinity"}
{"v": "NaN"}
{"v": true}
`
	assert.Equal(t, want, string(got))
}

func TestYAML(t *testing.T) {
	t.Parallel()
	got, err := tabular.Marshal(tabular.YAML, numsTable(t))
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, yaml.Unmarshal(got, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, 1, rows[0]["a"])
	assert.Equal(t, 1.1, rows[0]["b"])
	assert.Equal(t, "foo", rows[0]["c"])
	assert.Nil(t, rows[2]["b"])
}

// ============================================================
// LTSV / MediaWiki / GoTemplate
// ============================================================

func TestLTSV(t *testing.T) {
	t.Parallel()
	got, err := tabular.Marshal(tabular.LTSV, numsTable(t))
	require.NoError(t, err)
	want := "a:1\tb:1.10\tc:foo\na:-10\tb:2.25\tc:bar\na:3\tb:\tc:baz\n"
	assert.Equal(t, want, string(got))
}

func TestLTSVLabelSanitization(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("", []string{"user name", "n/a"}, [][]any{{"anna", 1}})
	got, err := tabular.Marshal(tabular.LTSV, td)
	require.NoError(t, err)
	assert.Equal(t, "user_name:anna\tn_a:1\n", string(got))
}

func TestMediaWiki(t *testing.T) {
	t.Parallel()
	td := tabular.NewTableData("Scores", []string{"name", "pts"}, [][]any{{"anna", 31}})
	got, err := tabular.Marshal(tabular.MediaWiki, td)
	require.NoError(t, err)
	want := `{| class="wikitable"
|+ Scores
|-
! name
! pts
|-
| anna
| style="text-align:right"| 31
|}
`
	assert.Equal(t, want, string(got))
}

func TestGoTemplate(t *testing.T) {
	t.Parallel()
	got, err := tabular.Marshal(tabular.GoTemplate("{{._index}}: {{.c}}={{.a}}"), numsTable(t))
	require.NoError(t, err)
	want := "0: foo=1\n1: bar=-10\n2: baz=3\n"
	assert.Equal(t, want, string(got))
}

func TestGoTemplateInvalid(t *testing.T) {
	t.Parallel()
	_, err := tabular.Marshal(tabular.GoTemplate("{{.a"), numsTable(t))
	require.ErrorIs(t, err, tabular.ErrInvalidTemplate)
}

// ============================================================
// Float precision
// ============================================================

func TestFloatPrecisionOverride(t *testing.T) {
	t.Parallel()
	td, err := tabular.FromCSVString("", "v\n1.5\n2.25\n")
	require.NoError(t, err)
	got, err := tabular.Marshal(tabular.CSV, td, tabular.WithFloatPrecision(3))
	require.NoError(t, err)
	assert.Equal(t, "v\n1.500\n2.250\n", string(got))
}

func TestRealNumberColumnPromotesIntegers(t *testing.T) {
	t.Parallel()
	td, err := tabular.FromCSVString("", "v\n1\n2.5\n")
	require.NoError(t, err)
	got, err := tabular.Marshal(tabular.CSV, td)
	require.NoError(t, err)
	assert.Equal(t, "v\n1.0\n2.5\n", string(got))
}
