// Package workbook reads a worksheet of an Excel workbook (.xlsx/.xlsm) as
// positional rows.
package workbook

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/roach88/kanjiparse/internal/story"
)

// ErrSheetNotFound is returned when the workbook has no sheet of the
// requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ReadSheet streams every row of sheet into memory as positional cells.
// Empty rows come back as empty Rows so that row numbers stay aligned with
// the spreadsheet.
func ReadSheet(path, sheet string) ([]story.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrSheetNotFound, sheet, f.GetSheetList())
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	defer rows.Close()

	var out []story.Row
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("read sheet %q row %d: %w", sheet, len(out)+1, err)
		}
		out = append(out, story.Row(cols))
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return out, nil
}

// WriteSheet creates a workbook at path holding rows on sheet. It exists to
// build fixtures and sample inputs; the pipeline never writes workbooks.
func WriteSheet(path, sheet string, rows []story.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}
	for i, row := range rows {
		for j, value := range row {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set %s: %w", cell, err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
