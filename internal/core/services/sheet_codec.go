package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// The sheet layout is a compatibility contract with previously exported
// files: four header rows are skipped unconditionally and columns are
// positional. Changing either breaks round-tripping.
const sheetHeaderRows = 4

// sheetDateLayouts are tried in order when a date cell holds text.
var sheetDateLayouts = []string{
	"02/01/06",
	"02/01/2006",
	"2006-01-02",
	time.RFC3339,
	"1/2/06",
	"01/02/2006",
}

// serialEpoch is the spreadsheet serial-date epoch (day 0 = 1899-12-30).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// sheetRow is one normalized import record. The pending payable column of the
// source file is informational only and never read.
type sheetRow struct {
	RowNum       int // 1-based position in the sheet
	Date         time.Time
	WorkerName   string
	KgsProcessed float64
	AdvanceGiven decimal.Decimal
	AmountEarned decimal.Decimal
	PayoutMade   decimal.Decimal
}

// parsedSheet is the output of the pure parse stage.
type parsedSheet struct {
	Rows        []sheetRow
	RowsRead    int
	RowsSkipped int
	Warnings    []domain.RowWarning
}

// parseWorkbookRows normalizes raw cell rows into typed records. It never
// fails on malformed cells; every recovered problem is reported as a warning.
func parseWorkbookRows(rows [][]string, now time.Time) parsedSheet {
	out := parsedSheet{}
	for i := sheetHeaderRows; i < len(rows); i++ {
		rowNum := i + 1
		row := rows[i]
		out.RowsRead++

		date := cellAt(row, 0)
		name := strings.TrimSpace(cellAt(row, 1))
		if name == "" || date == "" {
			out.RowsSkipped++
			continue
		}

		parsedDate, ok := parseSheetDate(date)
		if !ok {
			out.Warnings = append(out.Warnings, domain.RowWarning{
				Row:     rowNum,
				Message: fmt.Sprintf("unparseable date %q, using current date", date),
			})
			parsedDate = now
		}

		rec := sheetRow{
			RowNum:     rowNum,
			Date:       parsedDate,
			WorkerName: name,
		}
		rec.KgsProcessed = parseSheetFloat(cellAt(row, 2), rowNum, "kgsProcessed", &out.Warnings)
		rec.AdvanceGiven = parseSheetDecimal(cellAt(row, 3), rowNum, "advancesGiven", &out.Warnings)
		rec.AmountEarned = parseSheetDecimal(cellAt(row, 4), rowNum, "totalAmountEarned", &out.Warnings)
		rec.PayoutMade = parseSheetDecimal(cellAt(row, 5), rowNum, "payoutsMade", &out.Warnings)

		out.Rows = append(out.Rows, rec)
	}
	return out
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseSheetDate accepts the textual layouts above or a spreadsheet serial
// number.
func parseSheetDate(raw string) (time.Time, bool) {
	for _, layout := range sheetDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 {
		days := int(serial)
		frac := serial - float64(days)
		t := serialEpoch.AddDate(0, 0, days).Add(time.Duration(frac * float64(24*time.Hour)))
		return t, true
	}
	return time.Time{}, false
}

// parseSheetFloat coerces empty or malformed cells to zero, noting malformed
// ones.
func parseSheetFloat(raw string, rowNum int, field string, warnings *[]domain.RowWarning) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*warnings = append(*warnings, domain.RowWarning{
			Row:     rowNum,
			Message: fmt.Sprintf("invalid %s %q, treated as zero", field, raw),
		})
		return 0
	}
	return v
}

func parseSheetDecimal(raw string, rowNum int, field string, warnings *[]domain.RowWarning) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		*warnings = append(*warnings, domain.RowWarning{
			Row:     rowNum,
			Message: fmt.Sprintf("invalid %s %q, treated as zero", field, raw),
		})
		return decimal.Zero
	}
	return v
}

const exportSheetName = "Monthly Logs"

// renderMonthlyWorkbook serializes monthly rows into an xlsx workbook: two
// metadata rows, a blank separator, a header row, the data rows, another
// blank separator and a totals row. The totals row fills only the kg and
// pending payable columns.
func renderMonthlyWorkbook(rows []domain.MonthlyWorkerRow, firmName string, month time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), exportSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	setRow := func(rowNum int, values []any) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		return f.SetSheetRow(exportSheetName, cell, &values)
	}

	if err := setRow(1, []any{"Firm Name", firmName}); err != nil {
		return nil, err
	}
	if err := setRow(2, []any{"Month", month.Format("January 2006")}); err != nil {
		return nil, err
	}
	if err := setRow(4, []any{
		"Date", "Worker Name", "Kgs Processed", "Advances Given", "Advances Cleared",
		"Net Advances", "Total Amount Earned", "Payouts Made", "Pending Payable",
	}); err != nil {
		return nil, err
	}

	totalKgs := 0.0
	totalPayable := decimal.Zero
	for i, row := range rows {
		if err := setRow(5+i, []any{
			row.Date,
			row.WorkerName,
			row.KgsProcessed,
			decimalCell(row.AdvancesGiven),
			decimalCell(row.AdvancesCleared),
			decimalCell(row.NetAdvances),
			decimalCell(row.TotalAmountEarned),
			decimalCell(row.PayoutsMade),
			decimalCell(row.PendingPayable),
		}); err != nil {
			return nil, err
		}
		totalKgs += row.KgsProcessed
		totalPayable = totalPayable.Add(row.PendingPayable)
	}

	totalsRow := 5 + len(rows) + 1
	if err := setRow(totalsRow, []any{
		"Totals", "", totalKgs, "", "", "", "", "", decimalCell(totalPayable),
	}); err != nil {
		return nil, err
	}

	return f, nil
}

// decimalCell writes decimals as floats so spreadsheet tools treat the cells
// as numeric.
func decimalCell(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}
