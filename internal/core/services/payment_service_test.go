package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kajuworks/cashew_track_app/internal/apperrors"
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	portssvc "github.com/kajuworks/cashew_track_app/internal/core/ports/services"
	"github.com/kajuworks/cashew_track_app/internal/core/services"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockWorkerRepo  *MockWorkerRepository
	mockTxManager   *MockTxManager
	service         portssvc.PaymentSvcFacade

	firmID   string
	workerID string
	userID   string
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.mockTxManager = new(MockTxManager)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockWorkerRepo, suite.mockTxManager)

	suite.firmID = uuid.NewString()
	suite.workerID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *PaymentServiceTestSuite) worker(advance decimal.Decimal) *domain.Worker {
	return &domain.Worker{
		WorkerID:      suite.workerID,
		FirmID:        suite.firmID,
		Name:          "Ravi",
		AdvanceAmount: advance,
		TotalAmount:   decimal.NewFromInt(1000),
		PayoutsMade:   decimal.Zero,
	}
}

func (suite *PaymentServiceTestSuite) expectTx() {
	suite.mockTxManager.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockTxManager.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockTxManager.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Advance() {
	ctx := context.Background()
	amount := decimal.NewFromInt(300)

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, suite.workerID).Return(suite.worker(decimal.Zero), nil).Once()
	suite.expectTx()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Type == domain.PaymentAdvance && p.Amount.Equal(amount) && p.FirmID == suite.firmID
	})).Return(nil).Once()
	suite.mockWorkerRepo.On("ApplyCounterDeltasInTx", ctx, mock.Anything, suite.workerID, mock.MatchedBy(func(d domain.WorkerCounterDeltas) bool {
		return d.Advance.Equal(amount) && d.Payouts.IsZero() && d.Amount.IsZero() && d.KgsProcessed == 0
	}), suite.userID, mock.Anything).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.firmID, portssvc.RecordPaymentParams{
		WorkerID: suite.workerID,
		Amount:   amount,
		Type:     domain.PaymentAdvance,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentAdvance, payment.Type)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_PayoutBumpsPayouts() {
	ctx := context.Background()
	amount := decimal.NewFromInt(150)

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, suite.workerID).Return(suite.worker(decimal.Zero), nil).Once()
	suite.expectTx()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockWorkerRepo.On("ApplyCounterDeltasInTx", ctx, mock.Anything, suite.workerID, mock.MatchedBy(func(d domain.WorkerCounterDeltas) bool {
		return d.Payouts.Equal(amount) && d.Advance.IsZero()
	}), suite.userID, mock.Anything).Return(nil).Once()

	_, err := suite.service.RecordPayment(ctx, suite.firmID, portssvc.RecordPaymentParams{
		WorkerID: suite.workerID,
		Amount:   amount,
		Type:     domain.PaymentPayout,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ClearAdvanceReducesAdvance() {
	ctx := context.Background()
	amount := decimal.NewFromInt(200)

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, suite.workerID).Return(suite.worker(decimal.NewFromInt(500)), nil).Once()
	suite.expectTx()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockWorkerRepo.On("ApplyCounterDeltasInTx", ctx, mock.Anything, suite.workerID, mock.MatchedBy(func(d domain.WorkerCounterDeltas) bool {
		return d.Advance.Equal(amount.Neg())
	}), suite.userID, mock.Anything).Return(nil).Once()

	_, err := suite.service.RecordPayment(ctx, suite.firmID, portssvc.RecordPaymentParams{
		WorkerID: suite.workerID,
		Amount:   amount,
		Type:     domain.PaymentClearAdvance,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_InvalidType() {
	ctx := context.Background()

	_, err := suite.service.RecordPayment(ctx, suite.firmID, portssvc.RecordPaymentParams{
		WorkerID: suite.workerID,
		Amount:   decimal.NewFromInt(10),
		Type:     domain.PaymentType("refund"),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.RecordPayment(ctx, suite.firmID, portssvc.RecordPaymentParams{
		WorkerID: suite.workerID,
		Amount:   decimal.Zero,
		Type:     domain.PaymentAdvance,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_WorkerInOtherFirm() {
	ctx := context.Background()
	other := suite.worker(decimal.Zero)
	other.FirmID = uuid.NewString()

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, suite.workerID).Return(other, nil).Once()

	_, err := suite.service.RecordPayment(ctx, suite.firmID, portssvc.RecordPaymentParams{
		WorkerID: suite.workerID,
		Amount:   decimal.NewFromInt(10),
		Type:     domain.PaymentAdvance,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestClearAdvance_FullOutstandingAmount() {
	ctx := context.Background()
	outstanding := decimal.NewFromInt(450)

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, suite.workerID).Return(suite.worker(outstanding), nil).Once()
	suite.expectTx()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Type == domain.PaymentClearAdvance && p.Amount.Equal(outstanding)
	})).Return(nil).Once()
	suite.mockWorkerRepo.On("ApplyCounterDeltasInTx", ctx, mock.Anything, suite.workerID, mock.MatchedBy(func(d domain.WorkerCounterDeltas) bool {
		return d.Advance.Equal(outstanding.Neg())
	}), suite.userID, mock.Anything).Return(nil).Once()

	payment, err := suite.service.ClearAdvance(ctx, suite.firmID, suite.workerID, suite.userID)

	suite.Require().NoError(err)
	suite.True(payment.Amount.Equal(outstanding))
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockWorkerRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestClearAdvance_NothingOutstanding() {
	ctx := context.Background()

	suite.mockWorkerRepo.On("FindWorkerByID", ctx, suite.workerID).Return(suite.worker(decimal.Zero), nil).Once()

	_, err := suite.service.ClearAdvance(ctx, suite.firmID, suite.workerID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
