package services

import (
	"context"
	"io"
	"time"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// SheetSvcFacade is the spreadsheet bridge: it parses uploaded workbooks into
// normalized records and renders monthly reports back out as xlsx files.
type SheetSvcFacade interface {
	// ImportMonthlyLogs reads an xlsx workbook, normalizes its rows and
	// applies them to the firm in a single database transaction. The returned
	// summary reports what was created and which rows carried problems.
	ImportMonthlyLogs(ctx context.Context, firmID string, r io.Reader, actorUserID string) (*domain.ImportSummary, error)

	// ExportMonthlyLogs renders the monthly worker rows of a firm as an xlsx
	// workbook.
	ExportMonthlyLogs(ctx context.Context, firmID string, month time.Time) (*domain.ExportFile, error)
}
