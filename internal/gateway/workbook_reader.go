package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cheque-splitter/internal/domain"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook loads every sheet of the workbook at path, headerless and untyped.
// The format is chosen by file extension.
func (r *SpreadsheetRepository) ReadWorkbook(ctx context.Context, path string) (domain.RawWorkbook, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.RawWorkbook{}, &domain.ReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return domain.RawWorkbook{}, &domain.ReadError{Path: path, Err: errors.New("is a directory")}
	}
	if info.Size() == 0 {
		return domain.RawWorkbook{}, &domain.ReadError{Path: path, Err: errors.New("file is empty")}
	}

	var sheets []domain.RawSheet
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		sheets, err = readXLSX(path)
	case ".xls":
		sheets, err = readXLS(path, r.xlsCharset)
	case ".csv":
		sheets, err = readCSV(path)
	default:
		err = fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return domain.RawWorkbook{}, &domain.ReadError{Path: path, Err: err}
	}
	if len(sheets) == 0 {
		return domain.RawWorkbook{}, &domain.ReadError{Path: path, Err: domain.ErrNoSheets}
	}
	return domain.RawWorkbook{Path: path, Sheets: sheets}, nil
}

func readXLSX(path string) ([]domain.RawSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx workbook: %w", err)
	}
	defer f.Close()

	var sheets []domain.RawSheet
	for _, name := range f.GetSheetList() {
		// Raw values keep dates as Excel serials instead of display strings.
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}
		sheets = append(sheets, domain.RawSheet{Name: name, Rows: toCells(rows)})
	}
	return sheets, nil
}

func readXLS(path, charset string) ([]domain.RawSheet, error) {
	wb, err := xls.Open(path, charset)
	if err != nil {
		return nil, fmt.Errorf("failed to open xls workbook: %w", err)
	}

	var sheets []domain.RawSheet
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		var rows [][]string
		for j := 0; j <= int(sheet.MaxRow); j++ {
			row := sheet.Row(j)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			record := make([]string, 0, row.LastCol())
			for c := 0; c < row.LastCol(); c++ {
				record = append(record, row.Col(c))
			}
			rows = append(rows, record)
		}
		sheets = append(sheets, domain.RawSheet{Name: sheet.Name, Rows: toCells(trimTrailingEmptyRows(rows))})
	}
	return sheets, nil
}

// readCSV treats a csv file as a workbook with a single sheet named after the file.
func readCSV(path string) ([]domain.RawSheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}
		rows = append(rows, record)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return []domain.RawSheet{{Name: name, Rows: toCells(rows)}}, nil
}

func trimTrailingEmptyRows(rows [][]string) [][]string {
	for len(rows) > 0 && isBlankRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func toCells(rows [][]string) [][]domain.Cell {
	out := make([][]domain.Cell, len(rows))
	for i, row := range rows {
		out[i] = make([]domain.Cell, len(row))
		for j, v := range row {
			out[i][j] = classify(v)
		}
	}
	return out
}

func classify(v string) domain.Cell {
	trimmed := strings.TrimSpace(v)
	switch {
	case trimmed == "":
		return domain.Cell{Kind: domain.CellEmpty, Raw: v}
	case isNumber(trimmed):
		return domain.Cell{Kind: domain.CellNumber, Raw: v}
	default:
		return domain.Cell{Kind: domain.CellText, Raw: v}
	}
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
