package pgsql

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const priceColumns = `price_id, product_id, price, valid_from, valid_to, recorded_at, recorded_by`

// PgxPriceRepository implements portsrepo.PriceRepositoryFacade using pgxpool.
type PgxPriceRepository struct {
	BaseRepository
}

func newPgxPriceRepository(pool *pgxpool.Pool) *PgxPriceRepository {
	return &PgxPriceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PriceRepositoryFacade = (*PgxPriceRepository)(nil)

func scanPrice(row pgx.Row) (domain.PriceRecord, error) {
	var p domain.PriceRecord
	err := row.Scan(&p.PriceID, &p.ProductID, &p.Price, &p.ValidFrom, &p.ValidTo, &p.RecordedAt, &p.RecordedBy)
	return p, err
}

func collectPrices(rows pgx.Rows) ([]domain.PriceRecord, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PriceRecord, error) {
		return scanPrice(row)
	})
}

// ListPrices returns the whole history, most recently recorded first.
func (r *PgxPriceRepository) ListPrices(ctx context.Context) ([]domain.PriceRecord, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+priceColumns+` FROM prices ORDER BY recorded_at DESC, price_id`)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list prices", err)
	}
	prices, err := collectPrices(rows)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan prices", err)
	}
	return prices, nil
}

// ListPricesForProducts returns every record of the given products.
func (r *PgxPriceRepository) ListPricesForProducts(ctx context.Context, productIDs []string) ([]domain.PriceRecord, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+priceColumns+` FROM prices WHERE product_id = ANY($1) ORDER BY product_id, valid_from DESC`,
		productIDs)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list prices for products", err)
	}
	prices, err := collectPrices(rows)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan prices", err)
	}
	return prices, nil
}

// FindPriceByID retrieves a single record.
func (r *PgxPriceRepository) FindPriceByID(ctx context.Context, priceID string) (*domain.PriceRecord, error) {
	p, err := scanPrice(r.Pool.QueryRow(ctx, `SELECT `+priceColumns+` FROM prices WHERE price_id = $1`, priceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("price " + priceID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to get price", err)
	}
	return &p, nil
}

// FindOverlappingPrices returns records of productID whose window intersects [from, to].
func (r *PgxPriceRepository) FindOverlappingPrices(ctx context.Context, productID string, from, to time.Time) ([]domain.PriceRecord, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+priceColumns+`
		FROM prices
		WHERE product_id = $1 AND valid_from <= $3 AND valid_to >= $2
		ORDER BY valid_from`,
		productID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find overlapping prices", err)
	}
	prices, err := collectPrices(rows)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan prices", err)
	}
	return prices, nil
}

const insertPrice = `
	INSERT INTO prices (price_id, product_id, price, valid_from, valid_to, recorded_at, recorded_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

// SavePrice inserts a new record.
func (r *PgxPriceRepository) SavePrice(ctx context.Context, p domain.PriceRecord) error {
	_, err := r.Pool.Exec(ctx, insertPrice, p.PriceID, p.ProductID, p.Price, p.ValidFrom, p.ValidTo, p.RecordedAt, p.RecordedBy)
	if err != nil {
		return mapWriteError(err, "failed to save price")
	}
	return nil
}

// ReplacePrices deletes replacedIDs and inserts p in one transaction.
func (r *PgxPriceRepository) ReplacePrices(ctx context.Context, replacedIDs []string, p domain.PriceRecord) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM prices WHERE price_id = ANY($1)`, replacedIDs); err != nil {
			return mapWriteError(err, "failed to delete replaced prices")
		}
		if _, err := tx.Exec(ctx, insertPrice, p.PriceID, p.ProductID, p.Price, p.ValidFrom, p.ValidTo, p.RecordedAt, p.RecordedBy); err != nil {
			return mapWriteError(err, "failed to save price")
		}
		return nil
	})
}

// DeletePrice removes a record.
func (r *PgxPriceRepository) DeletePrice(ctx context.Context, priceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM prices WHERE price_id = $1`, priceID)
	if err != nil {
		return mapWriteError(err, "failed to delete price")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("price " + priceID + " not found")
	}
	return nil
}
