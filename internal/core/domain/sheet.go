package domain

// RowWarning records a recoverable problem found while normalizing one
// spreadsheet row. Warnings never stop an import.
type RowWarning struct {
	Row     int    `json:"row"` // 1-based row number in the sheet
	Message string `json:"message"`
}

// ImportSummary is the structured report returned by a spreadsheet import.
type ImportSummary struct {
	RowsRead        int          `json:"rowsRead"`
	RowsSkipped     int          `json:"rowsSkipped"`
	WorkersCreated  int          `json:"workersCreated"`
	WorkLogsCreated int          `json:"workLogsCreated"`
	PaymentsCreated int          `json:"paymentsCreated"`
	Warnings        []RowWarning `json:"warnings,omitempty"`
}

// ExportFile is a rendered spreadsheet ready to be sent to the client.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
