package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/kajuworks/cashew_track_app/internal/apperrors"
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	portsrepo "github.com/kajuworks/cashew_track_app/internal/core/ports/repositories"
	portssvc "github.com/kajuworks/cashew_track_app/internal/core/ports/services"
	"github.com/kajuworks/cashew_track_app/internal/utils/ledger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// sheetService implements the SheetSvcFacade interface. Import runs in two
// stages: a pure parse over the raw cells, then a single transaction applying
// the normalized batch. A failure in the apply stage rolls back the whole
// import.
type sheetService struct {
	BaseService
	firmRepo    portsrepo.FirmRepositoryFacade
	workerRepo  portsrepo.WorkerRepositoryWithTx
	workLogRepo portsrepo.WorkLogRepositoryWithTx
	paymentRepo portsrepo.PaymentRepositoryWithTx
	txManager   portsrepo.TransactionManager
}

// NewSheetService creates a new sheet service.
func NewSheetService(
	firmRepo portsrepo.FirmRepositoryFacade,
	workerRepo portsrepo.WorkerRepositoryWithTx,
	workLogRepo portsrepo.WorkLogRepositoryWithTx,
	paymentRepo portsrepo.PaymentRepositoryWithTx,
	txManager portsrepo.TransactionManager,
) portssvc.SheetSvcFacade {
	return &sheetService{
		firmRepo:    firmRepo,
		workerRepo:  workerRepo,
		workLogRepo: workLogRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
	}
}

var _ portssvc.SheetSvcFacade = (*sheetService)(nil)

// ImportMonthlyLogs parses an uploaded xlsx workbook and applies its rows to
// the firm in one transaction.
func (s *sheetService) ImportMonthlyLogs(ctx context.Context, firmID string, r io.Reader, actorUserID string) (*domain.ImportSummary, error) {
	if _, err := s.firmRepo.FindFirmByID(ctx, firmID); err != nil {
		return nil, err
	}

	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable workbook: %v", apperrors.ErrValidation, err)
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", apperrors.ErrValidation)
	}
	rawRows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet rows: %v", apperrors.ErrValidation, err)
	}

	parsed := parseWorkbookRows(rawRows, time.Now())

	summary, err := s.applyParsedRows(ctx, firmID, parsed, actorUserID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Sheet import applied",
		slog.String("firm_id", firmID),
		slog.Int("rows_read", summary.RowsRead),
		slog.Int("work_logs_created", summary.WorkLogsCreated),
		slog.Int("payments_created", summary.PaymentsCreated),
		slog.Int("workers_created", summary.WorkersCreated))
	return summary, nil
}

// applyParsedRows is the transactional apply stage. All rows commit together
// or not at all.
func (s *sheetService) applyParsedRows(ctx context.Context, firmID string, parsed parsedSheet, actorUserID string) (*domain.ImportSummary, error) {
	summary := &domain.ImportSummary{
		RowsRead:    parsed.RowsRead,
		RowsSkipped: parsed.RowsSkipped,
		Warnings:    parsed.Warnings,
	}

	existing, err := s.workerRepo.ListWorkersByFirm(ctx, firmID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load workers for import", slog.String("firm_id", firmID))
		return nil, err
	}
	byName := make(map[string]string, len(existing))
	for _, w := range existing {
		byName[w.Name] = w.WorkerID
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin import transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.txManager.Rollback(ctx, tx) }()

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorUserID,
	}

	for _, row := range parsed.Rows {
		workerID, ok := byName[row.WorkerName]
		if !ok {
			worker := domain.Worker{
				WorkerID:      uuid.NewString(),
				FirmID:        firmID,
				Name:          row.WorkerName,
				TotalAmount:   decimal.Zero,
				AdvanceAmount: decimal.Zero,
				PayoutsMade:   decimal.Zero,
				AuditFields:   audit,
			}
			if err := s.workerRepo.SaveWorkerInTx(ctx, tx, worker); err != nil {
				s.LogError(ctx, err, "Failed to create worker during import", slog.String("name", row.WorkerName))
				return nil, err
			}
			workerID = worker.WorkerID
			byName[row.WorkerName] = workerID
			summary.WorkersCreated++
		}

		deltas := domain.WorkerCounterDeltas{
			Amount:  decimal.Zero,
			Advance: decimal.Zero,
			Payouts: decimal.Zero,
		}

		if row.KgsProcessed > 0 {
			workLog := domain.WorkLog{
				WorkLogID:    uuid.NewString(),
				WorkerID:     workerID,
				FirmID:       firmID,
				Date:         row.Date,
				KgsProcessed: row.KgsProcessed,
				AmountEarned: row.AmountEarned,
				AuditFields:  audit,
			}
			if err := s.workLogRepo.SaveWorkLogInTx(ctx, tx, workLog); err != nil {
				s.LogError(ctx, err, "Failed to save imported work log", slog.Int("row", row.RowNum))
				return nil, err
			}
			deltas.KgsProcessed = row.KgsProcessed
			deltas.Amount = row.AmountEarned
			summary.WorkLogsCreated++
		}

		if row.AdvanceGiven.IsPositive() {
			if err := s.savePaymentRow(ctx, tx, firmID, workerID, row.Date, row.AdvanceGiven, domain.PaymentAdvance, audit); err != nil {
				s.LogError(ctx, err, "Failed to save imported advance", slog.Int("row", row.RowNum))
				return nil, err
			}
			deltas.Advance = row.AdvanceGiven
			summary.PaymentsCreated++
		}

		if row.PayoutMade.IsPositive() {
			if err := s.savePaymentRow(ctx, tx, firmID, workerID, row.Date, row.PayoutMade, domain.PaymentPayout, audit); err != nil {
				s.LogError(ctx, err, "Failed to save imported payout", slog.Int("row", row.RowNum))
				return nil, err
			}
			deltas.Payouts = row.PayoutMade
			summary.PaymentsCreated++
		}

		if deltas.KgsProcessed != 0 || deltas.Advance.IsPositive() || deltas.Payouts.IsPositive() {
			if err := s.workerRepo.ApplyCounterDeltasInTx(ctx, tx, workerID, deltas, actorUserID, now); err != nil {
				s.LogError(ctx, err, "Failed to update counters during import", slog.Int("row", row.RowNum))
				return nil, err
			}
		}
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit import transaction")
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return summary, nil
}

func (s *sheetService) savePaymentRow(ctx context.Context, tx pgx.Tx, firmID, workerID string, date time.Time, amount decimal.Decimal, paymentType domain.PaymentType, audit domain.AuditFields) error {
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		WorkerID:    workerID,
		FirmID:      firmID,
		Date:        date,
		Amount:      amount,
		Type:        paymentType,
		AuditFields: audit,
	}
	return s.paymentRepo.SavePaymentInTx(ctx, tx, payment)
}

// ExportMonthlyLogs renders the monthly worker report of a firm as an xlsx
// attachment.
func (s *sheetService) ExportMonthlyLogs(ctx context.Context, firmID string, month time.Time) (*domain.ExportFile, error) {
	firm, err := s.firmRepo.FindFirmByID(ctx, firmID)
	if err != nil {
		return nil, err
	}

	workers, err := s.workerRepo.ListWorkersByFirm(ctx, firmID)
	if err != nil {
		return nil, err
	}
	workLogs, err := s.workLogRepo.ListWorkLogsByFirm(ctx, firmID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByFirm(ctx, firmID)
	if err != nil {
		return nil, err
	}

	monthStart, monthEnd := ledger.MonthBounds(month)
	rows := ledger.MonthlyWorkerRows(workers, workLogs, payments, firmID, monthStart, monthEnd)

	wb, err := renderMonthlyWorkbook(rows, firm.Name, monthStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to render workbook", slog.String("firm_id", firmID))
		return nil, err
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return &domain.ExportFile{
		FileName:    fmt.Sprintf("monthly_logs_%s.xlsx", monthStart.Format("2006-01")),
		ContentType: xlsxContentType,
		Content:     buf.Bytes(),
	}, nil
}
