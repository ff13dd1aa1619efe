package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXReader streams rows from one worksheet of a workbook.
type XLSXReader struct {
	f     *excelize.File
	rows  *excelize.Rows
	sheet string
	read  int
	width int // header width, set by the first row
}

// OpenXLSX opens the workbook at path and positions on sheet, or on the
// first sheet when sheet is empty.
func OpenXLSX(path, sheet string) (*XLSXReader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			_ = f.Close()
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open sheet %q: %w", sheet, err)
	}
	return &XLSXReader{f: f, rows: rows, sheet: sheet}, nil
}

// Sheet returns the worksheet being read.
func (x *XLSXReader) Sheet() string {
	return x.sheet
}

// ReadRow returns the next row's cell values, or io.EOF after the last row.
// The sheet stores no trailing empty cells, so data rows shorter than the
// header are padded with empty strings up to the header width. Longer rows
// are returned as they are.
func (x *XLSXReader) ReadRow() ([]string, error) {
	if !x.rows.Next() {
		if err := x.rows.Error(); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", x.sheet, err)
		}
		return nil, io.EOF
	}
	row, err := x.rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("sheet %q row %d: %w", x.sheet, x.read+1, err)
	}
	if x.read == 0 {
		for i, h := range row {
			row[i] = trimSpace(h)
		}
		x.width = len(row)
	} else if len(row) < x.width {
		row = append(row, make([]string, x.width-len(row))...)
	}
	x.read++
	return row, nil
}

// Close releases the row iterator and the workbook.
func (x *XLSXReader) Close() error {
	return errors.Join(x.rows.Close(), x.f.Close())
}
