package sink

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// XLSXWriter streams rows into a single worksheet. The first row written is
// treated as the header and rendered bold. Nothing reaches disk until Flush.
type XLSXWriter struct {
	f           *excelize.File
	sw          *excelize.StreamWriter
	path        string
	headerStyle int
	rows        int
	flushed     bool
}

// CreateXLSX prepares a workbook that will be saved to path on Flush.
func CreateXLSX(path, sheet string) (*XLSXWriter, error) {
	if sheet == "" {
		sheet = defaultSheet
	}
	f := excelize.NewFile()

	if sheet != defaultSheet {
		index, err := f.NewSheet(sheet)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to create sheet: %w", err)
		}
		f.SetActiveSheet(index)
		if err := f.DeleteSheet(defaultSheet); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to open stream writer: %w", err)
	}
	return &XLSXWriter{f: f, sw: sw, path: path, headerStyle: headerStyle}, nil
}

// WriteRow appends one row below the previous one.
func (x *XLSXWriter) WriteRow(row []string) error {
	if x.flushed {
		return errors.New("write after flush")
	}
	cells := make([]interface{}, len(row))
	for i, v := range row {
		if x.rows == 0 {
			cells[i] = excelize.Cell{StyleID: x.headerStyle, Value: v}
		} else {
			cells[i] = v
		}
	}

	axis, err := excelize.CoordinatesToCellName(1, x.rows+1)
	if err != nil {
		return err
	}
	if err := x.sw.SetRow(axis, cells); err != nil {
		return fmt.Errorf("write row %d: %w", x.rows+1, err)
	}
	x.rows++
	return nil
}

// Flush finalizes the sheet and saves the workbook. Later calls are no-ops.
func (x *XLSXWriter) Flush() error {
	if x.flushed {
		return nil
	}
	x.flushed = true
	if err := x.sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}
	if err := x.f.SaveAs(x.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Close flushes and releases the workbook.
func (x *XLSXWriter) Close() error {
	return errors.Join(x.Flush(), x.f.Close())
}
