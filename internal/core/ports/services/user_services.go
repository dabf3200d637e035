package services

import (
	"context"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
	// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
	EnsureAdmin(ctx context.Context, username, password string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
