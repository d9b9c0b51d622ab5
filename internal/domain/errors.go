package domain

import (
	"errors"
	"fmt"
)

// ErrNoSheets is returned when there is nothing to read or write.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrUnsupportedFormat is returned for files that are not a known spreadsheet type.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// ReadError reports an input workbook that could not be opened or parsed.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// SchemaError reports a sheet too short to hold the three header rows.
type SchemaError struct {
	Sheet string
	Rows  int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("sheet %q has %d rows, at least %d required", e.Sheet, e.Rows, HeaderRows)
}

// WriteError reports an output workbook that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// HeaderRows is the number of title/blank/header rows at the top of every input sheet.
const HeaderRows = 3
