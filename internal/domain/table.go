package domain

// Table is a named sheet ready to be written: a header row followed by data rows.
// Cell values are string, int, float64 or nil for a blank cell.
type Table struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// Width is the number of populated columns.
func (t Table) Width() int {
	w := len(t.Header)
	for _, r := range t.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Height is the number of populated rows, header included.
func (t Table) Height() int {
	return len(t.Rows) + 1
}
