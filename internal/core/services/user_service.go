package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/dto"
	"github.com/fuelsquad/manquants_app/internal/utils"
	"github.com/google/uuid"
)

const systemUserID = "system"

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown role %q", req.Role))
	}
	var carrierID *string
	if role == domain.RoleCarrier {
		if req.CarrierID == nil || *req.CarrierID == "" {
			return nil, apperrors.NewValidationError("a transporteur account requires a carrier")
		}
		carrierID = req.CarrierID
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, apperrors.NewDuplicateError("username " + req.Username + " is already taken")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check username", slog.String("username", req.Username))
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		CarrierID:    carrierID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID),
		slog.String("role", string(role)))
	return &user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	if userID == deleterUserID {
		return apperrors.NewValidationError("users cannot delete their own account")
	}
	if err := s.userRepo.MarkUserDeleted(ctx, userID, deleterUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		}
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID), slog.String("deleted_by", deleterUserID))
	return nil
}

func (s *userService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	_, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	_, err = s.CreateUser(ctx, dto.CreateUserRequest{
		Username: username,
		Password: password,
		Role:     string(domain.RoleAdmin),
	}, systemUserID)
	return err
}
