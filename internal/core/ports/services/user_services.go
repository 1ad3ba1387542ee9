package services

import (
	"context"

	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	"github.com/praveentp099/uforce-accounting/internal/dto"
)

// UserSvcFacade defines operations on back-office users.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
	// Authenticate verifies credentials and returns the active user.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// AuthSvcFacade issues access tokens for authenticated users.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
