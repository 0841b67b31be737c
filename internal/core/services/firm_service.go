package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kajuworks/cashew_track_app/internal/apperrors"
	"github.com/kajuworks/cashew_track_app/internal/core/domain"
	portsrepo "github.com/kajuworks/cashew_track_app/internal/core/ports/repositories"
	portssvc "github.com/kajuworks/cashew_track_app/internal/core/ports/services"
)

// firmService implements the FirmSvcFacade interface.
type firmService struct {
	BaseService
	firmRepo portsrepo.FirmRepositoryFacade
}

// NewFirmService creates a new firm service.
func NewFirmService(repo portsrepo.FirmRepositoryFacade) portssvc.FirmSvcFacade {
	return &firmService{firmRepo: repo}
}

var _ portssvc.FirmSvcFacade = (*firmService)(nil)

// CreateFirm creates a new processing firm.
func (s *firmService) CreateFirm(ctx context.Context, name string, location *string, creatorUserID string) (*domain.Firm, error) {
	now := time.Now()
	firm := domain.Firm{
		FirmID:   uuid.NewString(),
		Name:     name,
		Location: location,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.firmRepo.SaveFirm(ctx, firm); err != nil {
		s.LogError(ctx, err, "Failed to save firm", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Firm created", slog.String("firm_id", firm.FirmID))
	return &firm, nil
}

// ListFirms returns all firms ordered by creation time.
func (s *firmService) ListFirms(ctx context.Context) ([]domain.Firm, error) {
	firms, err := s.firmRepo.ListFirms(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list firms")
		return nil, err
	}
	return firms, nil
}

// FindFirmByID retrieves a firm by ID.
func (s *firmService) FindFirmByID(ctx context.Context, firmID string) (*domain.Firm, error) {
	firm, err := s.firmRepo.FindFirmByID(ctx, firmID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find firm", slog.String("firm_id", firmID))
		}
		return nil, err
	}
	return firm, nil
}
