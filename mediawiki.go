package tabular

import (
	"fmt"
	"io"
)

// writeMediaWiki renders wikitable markup. The table name becomes the
// |+ caption, headers a ! row, and right/center columns carry an inline
// text-align style. Cells are written one per line so per-cell attributes
// stay unambiguous.
func writeMediaWiki(w io.Writer, td *TableData, cfg config) error {
	lay := td.layout(cfg).sanitized()
	aligns := lay.aligns()

	if _, err := fmt.Fprintln(w, `{| class="wikitable"`); err != nil {
		return err
	}
	if td.Name != "" {
		if _, err := fmt.Fprintf(w, "|+ %s\n", sanitizeLine(td.Name)); err != nil {
			return err
		}
	}

	if len(lay.header) > 0 {
		if _, err := fmt.Fprintln(w, "|-"); err != nil {
			return err
		}
		for _, col := range lay.header {
			if _, err := fmt.Fprintf(w, "! %s\n", col); err != nil {
				return err
			}
		}
	}

	for _, row := range lay.rows {
		if _, err := fmt.Fprintln(w, "|-"); err != nil {
			return err
		}
		for i, cell := range row {
			attr := ""
			switch aligns[i] {
			case AlignRight:
				attr = `style="text-align:right"| `
			case AlignCenter:
				attr = `style="text-align:center"| `
			}
			if _, err := fmt.Fprintf(w, "| %s%s\n", attr, cell); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "|}")
	return err
}
