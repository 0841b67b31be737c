package services

import (
	portsrepo "github.com/kajuworks/cashew_track_app/internal/core/ports/repositories"
	portssvc "github.com/kajuworks/cashew_track_app/internal/core/ports/services"
)

// NewServiceContainer wires all application services from the repository
// provider. The worker repository doubles as the transaction manager for the
// services that write events and counters together.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	txManager := portsrepo.TransactionManager(repos.WorkerRepo)

	return &portssvc.ServiceContainer{
		User:      NewUserService(repos.UserRepo),
		Firm:      NewFirmService(repos.FirmRepo),
		Worker:    NewWorkerService(repos.WorkerRepo, repos.FirmRepo),
		WorkLog:   NewWorkLogService(repos.WorkLogRepo, repos.WorkerRepo, repos.SettingsRepo, txManager),
		Payment:   NewPaymentService(repos.PaymentRepo, repos.WorkerRepo, txManager),
		Reporting: NewReportingService(repos.WorkerRepo, repos.WorkLogRepo, repos.PaymentRepo),
		Sheet:     NewSheetService(repos.FirmRepo, repos.WorkerRepo, repos.WorkLogRepo, repos.PaymentRepo, txManager),
		Settings:  NewSettingsService(repos.SettingsRepo),
	}
}
