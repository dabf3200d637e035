package repositories

import (
	"context"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	// MarkUserDeleted soft-deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
