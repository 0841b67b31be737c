package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kajuworks/cashew_track_app/internal/apperrors"
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	portssvc "github.com/kajuworks/cashew_track_app/internal/core/ports/services"
	"github.com/kajuworks/cashew_track_app/internal/core/services"
)

type WorkLogServiceTestSuite struct {
	suite.Suite
	mockWorkLogRepo  *MockWorkLogRepository
	mockWorkerRepo   *MockWorkerRepository
	mockSettingsRepo *MockSettingsRepository
	mockTxManager    *MockTxManager
	service          portssvc.WorkLogSvcFacade

	firmID   string
	workerID string
	userID   string
}

func (suite *WorkLogServiceTestSuite) SetupTest() {
	suite.mockWorkLogRepo = new(MockWorkLogRepository)
	suite.mockWorkerRepo = new(MockWorkerRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.mockTxManager = new(MockTxManager)
	suite.service = services.NewWorkLogService(suite.mockWorkLogRepo, suite.mockWorkerRepo, suite.mockSettingsRepo, suite.mockTxManager)

	suite.firmID = uuid.NewString()
	suite.workerID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockWorkerRepo.On("FindWorkerByID", mock.Anything, suite.workerID).Return(&domain.Worker{
		WorkerID: suite.workerID,
		FirmID:   suite.firmID,
		Name:     "Lakshmi",
	}, nil).Maybe()
}

func (suite *WorkLogServiceTestSuite) expectTx() {
	suite.mockTxManager.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockTxManager.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockTxManager.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (suite *WorkLogServiceTestSuite) TestCreateWorkLog_ExplicitAmount() {
	ctx := context.Background()
	amount := decimal.NewFromInt(750)

	suite.expectTx()
	suite.mockWorkLogRepo.On("SaveWorkLogInTx", ctx, mock.Anything, mock.MatchedBy(func(l domain.WorkLog) bool {
		return l.WorkerID == suite.workerID && l.KgsProcessed == 12.5 && l.AmountEarned.Equal(amount)
	})).Return(nil).Once()
	suite.mockWorkerRepo.On("ApplyCounterDeltasInTx", ctx, mock.Anything, suite.workerID, mock.MatchedBy(func(d domain.WorkerCounterDeltas) bool {
		return d.KgsProcessed == 12.5 && d.Amount.Equal(amount)
	}), suite.userID, mock.Anything).Return(nil).Once()

	workLog, err := suite.service.CreateWorkLog(ctx, suite.firmID, portssvc.CreateWorkLogParams{
		WorkerID:     suite.workerID,
		Date:         time.Now(),
		KgsProcessed: 12.5,
		AmountEarned: &amount,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(workLog.AmountEarned.Equal(amount))
	suite.mockWorkLogRepo.AssertExpectations(suite.T())
	suite.mockWorkerRepo.AssertExpectations(suite.T())
	// Settings must not be consulted when the amount is explicit.
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "GetSettings", mock.Anything)
}

func (suite *WorkLogServiceTestSuite) TestCreateWorkLog_DerivesAmountFromPrice() {
	ctx := context.Background()

	suite.mockSettingsRepo.On("GetSettings", ctx).Return(&domain.AppSettings{
		PricePerKg: decimal.NewFromInt(100),
		Currency:   "Rs",
	}, nil).Once()
	suite.expectTx()
	suite.mockWorkLogRepo.On("SaveWorkLogInTx", ctx, mock.Anything, mock.MatchedBy(func(l domain.WorkLog) bool {
		return l.AmountEarned.Equal(decimal.NewFromInt(1000))
	})).Return(nil).Once()
	suite.mockWorkerRepo.On("ApplyCounterDeltasInTx", ctx, mock.Anything, suite.workerID, mock.Anything, suite.userID, mock.Anything).Return(nil).Once()

	workLog, err := suite.service.CreateWorkLog(ctx, suite.firmID, portssvc.CreateWorkLogParams{
		WorkerID:     suite.workerID,
		Date:         time.Now(),
		KgsProcessed: 10,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(workLog.AmountEarned.Equal(decimal.NewFromInt(1000)))
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *WorkLogServiceTestSuite) TestCreateWorkLog_RejectsNonPositiveKgs() {
	ctx := context.Background()

	_, err := suite.service.CreateWorkLog(ctx, suite.firmID, portssvc.CreateWorkLogParams{
		WorkerID:     suite.workerID,
		Date:         time.Now(),
		KgsProcessed: 0,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *WorkLogServiceTestSuite) TestCreateWorkLog_WorkerInOtherFirm() {
	ctx := context.Background()

	_, err := suite.service.CreateWorkLog(ctx, uuid.NewString(), portssvc.CreateWorkLogParams{
		WorkerID:     suite.workerID,
		Date:         time.Now(),
		KgsProcessed: 5,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *WorkLogServiceTestSuite) TestCreateWorkLog_SaveFailureRollsBack() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	suite.mockTxManager.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockTxManager.On("Rollback", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockWorkLogRepo.On("SaveWorkLogInTx", ctx, mock.Anything, mock.AnythingOfType("domain.WorkLog")).Return(assert.AnError).Once()

	_, err := suite.service.CreateWorkLog(ctx, suite.firmID, portssvc.CreateWorkLogParams{
		WorkerID:     suite.workerID,
		Date:         time.Now(),
		KgsProcessed: 1,
		AmountEarned: &amount,
	}, suite.userID)

	suite.Require().Error(err)
	suite.mockTxManager.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockTxManager.AssertExpectations(suite.T())
}

func TestWorkLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkLogServiceTestSuite))
}
