package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, username, password_hash, role, carrier_id, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

// PgxUserRepository implements portsrepo.UserRepositoryFacade using pgxpool.
type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.UserID, &u.Username, &u.PasswordHash, &u.Role, &u.CarrierID,
		&u.CreatedAt, &u.CreatedBy, &u.LastUpdatedAt, &u.LastUpdatedBy, &u.DeletedAt)
	return u, err
}

func (r *PgxUserRepository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	u, err := scanUser(r.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE deleted_at IS NULL AND `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to get user", err)
	}
	return &u, nil
}

// FindUserByID retrieves an active user.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id = $1", userID)
}

// FindUserByUsername retrieves an active user by login name.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username = $1", username)
}

// ListUsers lists active users by username.
func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE deleted_at IS NULL ORDER BY username`)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list users", err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan users", err)
	}
	return users, nil
}

// SaveUser inserts a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, u domain.User) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO users (user_id, username, password_hash, role, carrier_id,
		                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.UserID, u.Username, u.PasswordHash, string(u.Role), u.CarrierID,
		u.CreatedAt, u.CreatedBy, u.LastUpdatedAt, u.LastUpdatedBy)
	if err != nil {
		return mapWriteError(err, "failed to save user")
	}
	return nil
}

// MarkUserDeleted soft-deletes a user.
func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE users SET deleted_at = NOW(), last_updated_at = NOW(), last_updated_by = $2
		WHERE user_id = $1 AND deleted_at IS NULL`, userID, deletedBy)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + userID + " not found")
	}
	return nil
}
