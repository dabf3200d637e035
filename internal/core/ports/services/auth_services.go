package services

import (
	"context"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
)

// AuthSvc authenticates users and issues access tokens.
type AuthSvc interface {
	// Login checks credentials and returns a signed token with the user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
