package tabular

import (
	"bytes"
	"encoding/json"
	"io"
)

// writeJSON renders the table as a JSON array of objects keyed by header,
// one object per line. Values are typed: integer and real-number cells
// become JSON numbers, booleans become booleans, None becomes null, and
// inf/nan become the strings "Infinity" and "NaN". Key order follows
// column order.
func writeJSON(w io.Writer, td *TableData, cfg config) error {
	cols, rows := td.typedRows(cfg)
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	for i, row := range rows {
		obj, err := encodeRowObject(cols, row, cfg.indent)
		if err != nil {
			return err
		}
		sep := ",\n"
		if i == len(rows)-1 {
			sep = "\n"
		}
		if _, err := io.WriteString(w, "  "+string(obj)+sep); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

func writeJSONL(w io.Writer, td *TableData, cfg config) error {
	cols, rows := td.typedRows(cfg)
	for _, row := range rows {
		obj, err := encodeRowObject(cols, row, "")
		if err != nil {
			return err
		}
		if _, err := w.Write(append(obj, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// encodeRowObject marshals one row as a JSON object with keys in column
// order. encoding/json map marshaling sorts keys alphabetically, so the
// object is assembled by hand.
func encodeRowObject(cols []Column, row []any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range cols {
		if i > 0 {
			buf.WriteString(", ")
		}
		key, err := json.Marshal(col.Header)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(": ")
		var val any
		if i < len(row) {
			val = row[i]
		}
		data, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	if indent == "" {
		return buf.Bytes(), nil
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf.Bytes(), "  ", indent); err != nil {
		return nil, err
	}
	return pretty.Bytes(), nil
}
