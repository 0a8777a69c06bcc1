package tabular

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, td *TableData, cfg config) error {
	lay := td.layout(cfg).sanitized()
	if len(lay.header) > 0 {
		if err := writeTSVRow(w, lay.header); err != nil {
			return err
		}
	}
	for _, row := range lay.rows {
		if err := writeTSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, row []string) error {
	_, err := fmt.Fprintln(w, strings.Join(row, "\t"))
	return err
}
