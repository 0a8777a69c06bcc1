package tabular

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// LTSV labels may only contain [0-9A-Za-z_.-]; anything else becomes "_".
var ltsvLabelRE = regexp.MustCompile(`[^0-9A-Za-z_.-]`)

func ltsvLabel(header string) string {
	return ltsvLabelRE.ReplaceAllString(header, "_")
}

// writeLTSV renders one label:value record per row, tab-separated. Labels
// come from the headers, sanitized to the LTSV label charset.
func writeLTSV(w io.Writer, td *TableData, cfg config) error {
	lay := td.layout(cfg).sanitized()
	headers, _ := td.normalized()
	if len(headers) == 0 {
		return fmt.Errorf("format %q: %w", LTSV, ErrEmptyHeader)
	}
	labels := make([]string, len(headers))
	for i, h := range headers {
		labels[i] = ltsvLabel(h)
	}
	for _, row := range lay.rows {
		if err := writeLTSVRow(w, labels, row); err != nil {
			return err
		}
	}
	return nil
}

func writeLTSVRow(w io.Writer, labels []string, row []string) error {
	fields := make([]string, len(labels))
	for i, label := range labels {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		fields[i] = label + ":" + value
	}
	_, err := fmt.Fprintln(w, strings.Join(fields, "\t"))
	return err
}
