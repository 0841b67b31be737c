package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/kajuworks/cashew_track_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		FirmRepo:     newPgxFirmRepository(dbPool),
		WorkerRepo:   newPgxWorkerRepository(dbPool),
		WorkLogRepo:  newPgxWorkLogRepository(dbPool),
		PaymentRepo:  newPgxPaymentRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
	}
}
