package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FromCSV loads a table from CSV data. The first record is the header row;
// later records may have a different field count and are normalized to the
// header width at render time.
func FromCSV(name string, r io.Reader) (*TableData, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: %w", ErrEmptyTableData)
	}
	return fromRecords(name, records[0], records[1:]), nil
}

// FromCSVString loads a table from in-memory CSV text.
func FromCSVString(name, text string) (*TableData, error) {
	return FromCSV(name, strings.NewReader(text))
}

// FromCSVFile loads a table from a CSV file. The table name is the file
// basename without its extension.
func FromCSVFile(path string) (*TableData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return FromCSV(name, f)
}

func writeCSV(w io.Writer, td *TableData, cfg config) error {
	lay := td.layout(cfg)
	cw := csv.NewWriter(w)
	cw.Comma = cfg.delimiter
	if len(lay.header) > 0 {
		if err := cw.Write(lay.header); err != nil {
			return err
		}
	}
	for _, row := range lay.rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeCSVRow writes a single record, for streaming use.
func writeCSVRow(w io.Writer, row []string, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
