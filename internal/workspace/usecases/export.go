package usecases

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Sheet1"

// ExportXLSX writes the rendered page as a spreadsheet, one row per record and
// one column per header. Filler rows are skipped.
func ExportXLSX(view View, table TableView, w io.Writer) error {
	file := excelize.NewFile()
	defer file.Close()

	if view.Title != "" {
		if err := file.SetSheetName(exportSheet, view.Title); err != nil {
			return fmt.Errorf("naming sheet: %w", err)
		}
	}
	sheet := file.GetSheetName(0)

	header := make([]any, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h.Label
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	line := 2
	for _, row := range table.Rows {
		if row.Filler {
			continue
		}

		values := make([]any, len(table.Headers))
		for i, h := range table.Headers {
			values[i] = view.FormatCell(row.Record, h.ID)
		}

		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", line, err)
		}
		if err := file.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", line, err)
		}
		line++
	}

	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
