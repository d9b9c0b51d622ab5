package domain

// CellKind classifies a raw spreadsheet value before any column meaning is known.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
)

// Cell is an untyped value as it was stored in the source workbook.
// Dates written by Excel arrive as serial numbers (CellNumber).
type Cell struct {
	Kind CellKind
	Raw  string
}

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// RawSheet is a headerless rows × cells table.
type RawSheet struct {
	Name string
	Rows [][]Cell
}

// RawWorkbook holds the sheets of one input file in workbook order.
type RawWorkbook struct {
	Path   string
	Sheets []RawSheet
}
