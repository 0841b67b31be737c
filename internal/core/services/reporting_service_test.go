package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	portssvc "github.com/kajuworks/cashew_track_app/internal/core/ports/services"
	"github.com/kajuworks/cashew_track_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockWorkerRepo  *MockWorkerRepository
	mockWorkLogRepo *MockWorkLogRepository
	mockPaymentRepo *MockPaymentRepository
	service         portssvc.ReportingSvcFacade

	firmID   string
	workerID string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.mockWorkLogRepo = new(MockWorkLogRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.service = services.NewReportingService(suite.mockWorkerRepo, suite.mockWorkLogRepo, suite.mockPaymentRepo)

	suite.firmID = uuid.NewString()
	suite.workerID = uuid.NewString()
}

func (suite *ReportingServiceTestSuite) TestFirmTotals() {
	ctx := context.Background()

	workers := []domain.Worker{
		{
			WorkerID:          suite.workerID,
			FirmID:            suite.firmID,
			Name:              "Ravi",
			TotalKgsProcessed: 40,
			TotalAmount:       decimal.NewFromInt(4000),
		},
	}
	payments := []domain.Payment{
		{WorkerID: suite.workerID, FirmID: suite.firmID, Amount: decimal.NewFromInt(500), Type: domain.PaymentAdvance},
		{WorkerID: suite.workerID, FirmID: suite.firmID, Amount: decimal.NewFromInt(200), Type: domain.PaymentClearAdvance},
		{WorkerID: suite.workerID, FirmID: suite.firmID, Amount: decimal.NewFromInt(1000), Type: domain.PaymentPayout},
	}

	suite.mockWorkerRepo.On("ListWorkersByFirm", ctx, suite.firmID).Return(workers, nil).Once()
	suite.mockWorkLogRepo.On("ListWorkLogsByFirm", ctx, suite.firmID).Return([]domain.WorkLog{}, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByFirm", ctx, suite.firmID).Return(payments, nil).Once()

	totals, err := suite.service.FirmTotals(ctx, suite.firmID)

	suite.Require().NoError(err)
	suite.Equal(1, totals.TotalWorkers)
	suite.Equal(40.0, totals.TotalProcessedKg)
	// 4000 - (500 - 200) - 1000
	suite.True(totals.TotalPayable.Equal(decimal.NewFromInt(2700)))
	suite.True(totals.TotalAdvancesGiven.Equal(decimal.NewFromInt(500)))
}

func (suite *ReportingServiceTestSuite) TestPendingPayable() {
	ctx := context.Background()

	worker := &domain.Worker{
		WorkerID:    suite.workerID,
		FirmID:      suite.firmID,
		TotalAmount: decimal.NewFromInt(1000),
	}
	payments := []domain.Payment{
		{WorkerID: suite.workerID, Amount: decimal.NewFromInt(300), Type: domain.PaymentAdvance},
		{WorkerID: suite.workerID, Amount: decimal.NewFromInt(100), Type: domain.PaymentClearAdvance},
		{WorkerID: suite.workerID, Amount: decimal.NewFromInt(200), Type: domain.PaymentPayout},
	}

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, suite.workerID).Return(worker, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByWorker", ctx, suite.workerID).Return(payments, nil).Once()

	payable, err := suite.service.PendingPayable(ctx, suite.workerID)

	suite.Require().NoError(err)
	// 1000 - (300 - 100) - 200
	suite.True(payable.Equal(decimal.NewFromInt(600)))
}

func (suite *ReportingServiceTestSuite) TestMonthlyWorkerRows_WindowsKgsByMonth() {
	ctx := context.Background()
	march := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	workers := []domain.Worker{
		{WorkerID: suite.workerID, FirmID: suite.firmID, Name: "Ravi", TotalAmount: decimal.NewFromInt(900)},
	}
	workLogs := []domain.WorkLog{
		{WorkerID: suite.workerID, FirmID: suite.firmID, Date: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), KgsProcessed: 7},
		{WorkerID: suite.workerID, FirmID: suite.firmID, Date: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), KgsProcessed: 11},
	}

	suite.mockWorkerRepo.On("ListWorkersByFirm", ctx, suite.firmID).Return(workers, nil).Once()
	suite.mockWorkLogRepo.On("ListWorkLogsByFirm", ctx, suite.firmID).Return(workLogs, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByFirm", ctx, suite.firmID).Return([]domain.Payment{}, nil).Once()

	rows, err := suite.service.MonthlyWorkerRows(ctx, suite.firmID, march)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("01/03/25", rows[0].Date)
	suite.Equal(7.0, rows[0].KgsProcessed)
	// The money figure is lifetime-to-date, not month scoped.
	suite.True(rows[0].TotalAmountEarned.Equal(decimal.NewFromInt(900)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
