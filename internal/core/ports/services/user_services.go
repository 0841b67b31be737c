package services

import (
	"context"

	"github.com/kajuworks/cashew_track_app/internal/core/domain"
)

// UserSvcFacade defines the operations on operator accounts.
type UserSvcFacade interface {
	// CreateUser registers a new user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, name, username, password string) (*domain.User, error)

	// GetUserByUsername retrieves a user for login.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}
