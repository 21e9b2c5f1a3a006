package services

import (
	"context"

	"github.com/newstepsproject/backend/internal/core/domain"
	"github.com/newstepsproject/backend/internal/dto"
)

// UserSvcFacade defines the business operations for admin accounts.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, createdBy string) (*domain.User, error)

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error)

	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updatedBy string) (*domain.User, error)

	DeleteUser(ctx context.Context, userID string, deletedBy string) error
}

// AuthSvcFacade defines login flows for the admin dashboard.
type AuthSvcFacade interface {
	// LoginWithPassword verifies email/password credentials and issues a JWT.
	LoginWithPassword(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// LoginWithGoogle exchanges a Google authorization code, provisioning an
	// account on first login, and issues a JWT.
	LoginWithGoogle(ctx context.Context, code string) (*dto.LoginResponse, error)
}
