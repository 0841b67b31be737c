package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// --- Mock FirmRepository ---
type MockFirmRepository struct {
	mock.Mock
}

func (m *MockFirmRepository) FindFirmByID(ctx context.Context, firmID string) (*domain.Firm, error) {
	args := m.Called(ctx, firmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Firm), args.Error(1)
}

func (m *MockFirmRepository) ListFirms(ctx context.Context) ([]domain.Firm, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Firm), args.Error(1)
}

func (m *MockFirmRepository) SaveFirm(ctx context.Context, firm domain.Firm) error {
	args := m.Called(ctx, firm)
	return args.Error(0)
}

// --- Mock WorkerRepository ---
type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) FindWorkerByName(ctx context.Context, firmID, name string) (*domain.Worker, error) {
	args := m.Called(ctx, firmID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) ListWorkersByFirm(ctx context.Context, firmID string) ([]domain.Worker, error) {
	args := m.Called(ctx, firmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *MockWorkerRepository) SaveWorkerInTx(ctx context.Context, tx pgx.Tx, worker domain.Worker) error {
	args := m.Called(ctx, tx, worker)
	return args.Error(0)
}

func (m *MockWorkerRepository) UpdateWorkerProfile(ctx context.Context, worker domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *MockWorkerRepository) ApplyCounterDeltasInTx(ctx context.Context, tx pgx.Tx, workerID string, deltas domain.WorkerCounterDeltas, updatedBy string, now time.Time) error {
	args := m.Called(ctx, tx, workerID, deltas, updatedBy, now)
	return args.Error(0)
}

func (m *MockWorkerRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockWorkerRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockWorkerRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock WorkLogRepository ---
type MockWorkLogRepository struct {
	mock.Mock
}

func (m *MockWorkLogRepository) ListWorkLogsByFirm(ctx context.Context, firmID string) ([]domain.WorkLog, error) {
	args := m.Called(ctx, firmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkLog), args.Error(1)
}

func (m *MockWorkLogRepository) ListWorkLogsByWorker(ctx context.Context, workerID string) ([]domain.WorkLog, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkLog), args.Error(1)
}

func (m *MockWorkLogRepository) SaveWorkLogInTx(ctx context.Context, tx pgx.Tx, log domain.WorkLog) error {
	args := m.Called(ctx, tx, log)
	return args.Error(0)
}

func (m *MockWorkLogRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockWorkLogRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockWorkLogRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListPaymentsByFirm(ctx context.Context, firmID string) ([]domain.Payment, error) {
	args := m.Called(ctx, firmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByWorker(ctx context.Context, workerID string) ([]domain.Payment, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	args := m.Called(ctx, tx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPaymentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPaymentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock TransactionManager ---
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
