package services

import (
	"context"

	"github.com/primeblocks/investment-backend/internal/core/domain"
	"github.com/primeblocks/investment-backend/internal/dto"
)

// AuthSvcFacade handles registration and credential verification.
type AuthSvcFacade interface {
	// Register creates a new investor account with zeroed totals.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login verifies credentials and returns a signed access token with the user.
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error)
}

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// UpdateProfile updates the mutable profile fields of the given user.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
