package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/platform/config"
	"github.com/fuelsquad/manquants_app/internal/utils"
)

// authService implements the AuthSvc interface
type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserReader
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserReader) portssvc.AuthSvc {
	return &authService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.AuthSvc = (*authService)(nil)

// Login verifies the credentials and signs an access token carrying the role
// and, for carrier accounts, the carrier id.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Login attempt for unknown user", slog.String("username", username))
			return "", nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return "", nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Login attempt with wrong password", slog.String("user_id", user.UserID))
		return "", nil, apperrors.ErrUnauthorized
	}

	carrierID := ""
	if user.CarrierID != nil {
		carrierID = *user.CarrierID
	}
	token, err := utils.GenerateJWT(user.UserID, string(user.Role), carrierID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return "", nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return token, user, nil
}
