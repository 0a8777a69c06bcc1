package tabular

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// FromExcelFile loads a table from an xlsx workbook. The first row of the
// sheet is the header row. An empty sheet name selects the workbook's
// first sheet. The table name is the sheet name.
func FromExcelFile(path, sheet string) (*TableData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q: %w", sheet, ErrEmptyTableData)
	}
	return fromRecords(sheet, rows[0], rows[1:]), nil
}

// writeExcel streams an xlsx workbook to w with one sheet holding the
// table. Cells carry typed values, so numbers stay numbers in the
// workbook.
func writeExcel(w io.Writer, td *TableData, cfg config) error {
	cols, rows := td.typedRows(cfg)

	f := excelize.NewFile()
	defer f.Close()

	sheet := td.Name
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	rowNum := 1
	if !cfg.noHeader {
		header := make([]any, len(cols))
		for i, col := range cols {
			header[i] = col.Header
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		rowNum++
	}

	for _, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", rowNum, err)
		}
		rowNum++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveExcelFile writes the table to an xlsx file at path.
func SaveExcelFile(path string, td *TableData, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create workbook: %w", err)
	}
	werr := Write(f, Excel, td, opts...)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}
