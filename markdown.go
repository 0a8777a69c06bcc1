package tabular

import (
	"fmt"
	"io"
	"strings"
)

// writeMarkdown renders a GitHub-flavored Markdown table. A non-empty table
// name becomes a heading line above the table. The separator row encodes
// column alignment ("---:" right, ":--:" center, "---" left), so columns
// are padded to a 3-character minimum to leave room for the markers.
func writeMarkdown(w io.Writer, td *TableData, cfg config) error {
	lay := td.layout(cfg).sanitized()
	if len(lay.header) == 0 {
		return fmt.Errorf("format %q: %w", Markdown, ErrEmptyHeader)
	}

	if td.Name != "" {
		if _, err := fmt.Fprintf(w, "# %s\n", sanitizeLine(td.Name)); err != nil {
			return err
		}
	}

	aligns := lay.aligns()
	widths := lay.widths(nil, 3)

	if err := writeMarkdownRow(w, lay.header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range lay.rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
