package services

import (
	"context"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// FirmSvcFacade defines the operations on firms.
type FirmSvcFacade interface {
	// CreateFirm persists a new firm.
	CreateFirm(ctx context.Context, name string, location *string, creatorUserID string) (*domain.Firm, error)

	// ListFirms retrieves all firms in creation order.
	ListFirms(ctx context.Context) ([]domain.Firm, error)

	// FindFirmByID retrieves a specific firm.
	FindFirmByID(ctx context.Context, firmID string) (*domain.Firm, error)
}
