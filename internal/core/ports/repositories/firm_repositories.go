package repositories

import (
	"context"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// FirmReader defines read operations for firm data.
type FirmReader interface {
	// FindFirmByID retrieves a specific firm by its ID.
	FindFirmByID(ctx context.Context, firmID string) (*domain.Firm, error)

	// ListFirms retrieves all firms in creation order.
	ListFirms(ctx context.Context) ([]domain.Firm, error)
}

// FirmWriter defines write operations for firm data.
type FirmWriter interface {
	// SaveFirm persists a new firm. Firms are never deleted.
	SaveFirm(ctx context.Context, firm domain.Firm) error
}

// FirmRepositoryFacade combines all firm-related repository interfaces.
type FirmRepositoryFacade interface {
	FirmReader
	FirmWriter
}
