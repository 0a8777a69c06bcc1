package tabular

import (
	"fmt"
	"io"
	"text/template"
)

// writeGoTemplate executes tmplStr once per row against a map of column
// header to typed value, plus "_index" holding the zero-based row number.
// Each row's output is written on its own line.
func writeGoTemplate(w io.Writer, tmplStr string, td *TableData, cfg config) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	cols, rows := td.typedRows(cfg)
	for i, row := range rows {
		if err := tmpl.Execute(w, templateRow(cols, row, i)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func templateRow(cols []Column, row []any, index int) map[string]any {
	data := make(map[string]any, len(cols)+1)
	for i, col := range cols {
		var v any
		if i < len(row) {
			v = row[i]
		}
		data[col.Header] = v
	}
	data["_index"] = index
	return data
}
