// Package exporter persists the report tables to a multi-sheet Excel
// workbook. A run's sheets are assembled in memory and written with a
// single save, so a failed export leaves no partial output behind.
package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/xuri/excelize/v2"

	"compasscli/internal/errors"
	"compasscli/internal/files"
)

// Sheet is one logical report table: a name, a header row, and data rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// Workbook collects sheets and writes them as one Excel file.
type Workbook struct {
	sheets []Sheet
	logger *slog.Logger
}

// NewWorkbook creates an empty workbook.
func NewWorkbook(logger *slog.Logger) *Workbook {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workbook{logger: logger}
}

// Add appends a sheet. Sheets are written in the order they were added.
func (w *Workbook) Add(sheet Sheet) {
	w.sheets = append(w.sheets, sheet)
}

// Sheets returns the sheets added so far.
func (w *Workbook) Sheets() []Sheet {
	return w.sheets
}

// Write builds the Excel file and saves it to path in one call.
func (w *Workbook) Write(ctx context.Context, path string) error {
	if len(w.sheets) == 0 {
		return errors.NewValidationError("workbook has no sheets to write")
	}

	if err := files.EnsureParentDir(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	for _, sheet := range w.sheets {
		if _, err := f.NewSheet(sheet.Name); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to create sheet %q", sheet.Name), err)
		}
		if err := writeSheet(f, sheet); err != nil {
			return err
		}
	}

	// Drop the default sheet excelize creates with the file.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.NewStorageError("failed to remove default sheet", err)
	}

	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to save workbook %s", path), err)
	}

	w.logger.InfoContext(ctx, "workbook written",
		slog.String("path", path),
		slog.Int("sheets", len(w.sheets)))

	return nil
}

// writeSheet writes one sheet's header and rows.
func writeSheet(f *excelize.File, sheet Sheet) error {
	header := make([]interface{}, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to write header of sheet %q", sheet.Name), err)
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to address row %d of sheet %q", i+2, sheet.Name), err)
		}
		cleaned := sanitizeRow(row)
		if err := f.SetSheetRow(sheet.Name, cell, &cleaned); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write row %d of sheet %q", i+2, sheet.Name), err)
		}
	}
	return nil
}

// sanitizeRow replaces NaN float cells with the explicit "NA" marker so an
// undefined ratio never surfaces as a broken numeric cell.
func sanitizeRow(row []interface{}) []interface{} {
	cleaned := make([]interface{}, len(row))
	for i, v := range row {
		if f, ok := v.(float64); ok && math.IsNaN(f) {
			cleaned[i] = "NA"
			continue
		}
		cleaned[i] = v
	}
	return cleaned
}
