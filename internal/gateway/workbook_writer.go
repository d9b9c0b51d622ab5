package gateway

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cheque-splitter/internal/domain"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize creates in a new workbook.
const defaultSheet = "Sheet1"

// thinBorder outlines a cell on all four sides with a thin black line.
var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// WriteWorkbook writes tables as sheets, in order, each with its header row,
// then borders every populated cell. The workbook is built next to path and
// renamed into place only once complete.
func (r *SpreadsheetRepository) WriteWorkbook(ctx context.Context, path string, tables []domain.Table) error {
	if len(tables) == 0 {
		return &domain.WriteError{Path: path, Err: domain.ErrNoSheets}
	}
	if err := ctx.Err(); err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}

	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.xlsx", filepath.Base(path), uuid.NewString()))
	if err := writeTables(tmp, tables); err != nil {
		os.Remove(tmp)
		return &domain.WriteError{Path: path, Err: err}
	}
	if err := applyBorders(tmp, tables); err != nil {
		os.Remove(tmp)
		return &domain.WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &domain.WriteError{Path: path, Err: fmt.Errorf("failed to move workbook into place: %w", err)}
	}
	return nil
}

func writeTables(path string, tables []domain.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, t.Name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", t.Name, err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", t.Name, err)
		}

		header := make([]interface{}, len(t.Header))
		for j, h := range t.Header {
			header[j] = h
		}
		if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header of %s: %w", t.Name, err)
		}
		for j, row := range t.Rows {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(t.Name, cell, &row); err != nil {
				return fmt.Errorf("failed to write row %d of %s: %w", j+2, t.Name, err)
			}
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// applyBorders reopens a saved workbook and borders the populated rectangle of every table.
func applyBorders(path string, tables []domain.Table) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to reopen workbook: %w", err)
	}
	defer f.Close()

	style, err := f.NewStyle(&excelize.Style{Border: thinBorder})
	if err != nil {
		return fmt.Errorf("failed to create border style: %w", err)
	}

	for _, t := range tables {
		if t.Width() == 0 {
			continue
		}
		end, err := excelize.CoordinatesToCellName(t.Width(), t.Height())
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(t.Name, "A1", end, style); err != nil {
			return fmt.Errorf("failed to border sheet %s: %w", t.Name, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
