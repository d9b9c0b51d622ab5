package gateway

// DefaultXLSCharset is the text encoding assumed for legacy .xls workbooks.
const DefaultXLSCharset = "utf-8"

// SpreadsheetRepository implements the WorkbookRepository interface for
// xlsx, xls and csv files on the local filesystem.
type SpreadsheetRepository struct {
	xlsCharset string
}

// Option configures a SpreadsheetRepository.
type Option func(*SpreadsheetRepository)

// WithXLSCharset sets the charset passed to the .xls decoder.
func WithXLSCharset(charset string) Option {
	return func(r *SpreadsheetRepository) {
		if charset != "" {
			r.xlsCharset = charset
		}
	}
}

// NewSpreadsheetRepository creates a new repository instance.
func NewSpreadsheetRepository(opts ...Option) *SpreadsheetRepository {
	r := &SpreadsheetRepository{xlsCharset: DefaultXLSCharset}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
