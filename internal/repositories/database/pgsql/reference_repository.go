package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReferenceRepository implements portsrepo.ReferenceRepositoryFacade using pgxpool.
type PgxReferenceRepository struct {
	BaseRepository
}

func newPgxReferenceRepository(pool *pgxpool.Pool) *PgxReferenceRepository {
	return &PgxReferenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReferenceRepositoryFacade = (*PgxReferenceRepository)(nil)

// queryAll runs query and collects its rows with scan.
func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, what string, scan func(pgx.Row) (T, error), query string, args ...any) ([]T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list "+what, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan "+what, err)
	}
	return items, nil
}

func (r *PgxReferenceRepository) ListCommercials(ctx context.Context) ([]domain.Commercial, error) {
	return queryAll(ctx, r.Pool, "commercials", func(row pgx.Row) (domain.Commercial, error) {
		var c domain.Commercial
		return c, row.Scan(&c.CommercialID, &c.Name)
	}, `SELECT commercial_id, name FROM commercials ORDER BY name`)
}

func scanSite(row pgx.Row) (domain.Site, error) {
	var s domain.Site
	var commercialID *string
	err := row.Scan(&s.SiteID, &s.Name, &s.AccountNumber, &commercialID)
	if commercialID != nil {
		s.CommercialID = *commercialID
	}
	return s, err
}

// ListSites lists sites, restricted to those of commercialID when set.
func (r *PgxReferenceRepository) ListSites(ctx context.Context, commercialID string) ([]domain.Site, error) {
	return queryAll(ctx, r.Pool, "sites", scanSite, `
		SELECT site_id, name, account_number, commercial_id
		FROM sites
		WHERE $1 = '' OR commercial_id = $1
		ORDER BY name`, commercialID)
}

func (r *PgxReferenceRepository) FindSiteByID(ctx context.Context, siteID string) (*domain.Site, error) {
	s, err := scanSite(r.Pool.QueryRow(ctx,
		`SELECT site_id, name, account_number, commercial_id FROM sites WHERE site_id = $1`, siteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("site " + siteID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to get site", err)
	}
	return &s, nil
}

func (r *PgxReferenceRepository) ListCarriers(ctx context.Context) ([]domain.Carrier, error) {
	return queryAll(ctx, r.Pool, "carriers", func(row pgx.Row) (domain.Carrier, error) {
		var c domain.Carrier
		return c, row.Scan(&c.CarrierID, &c.Name)
	}, `SELECT carrier_id, name FROM carriers ORDER BY name`)
}

func (r *PgxReferenceRepository) FindCarrierByID(ctx context.Context, carrierID string) (*domain.Carrier, error) {
	var c domain.Carrier
	err := r.Pool.QueryRow(ctx, `SELECT carrier_id, name FROM carriers WHERE carrier_id = $1`, carrierID).
		Scan(&c.CarrierID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("carrier " + carrierID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to get carrier", err)
	}
	return &c, nil
}

func (r *PgxReferenceRepository) ListDrivers(ctx context.Context, carrierID string) ([]domain.Driver, error) {
	return queryAll(ctx, r.Pool, "drivers", func(row pgx.Row) (domain.Driver, error) {
		var d domain.Driver
		return d, row.Scan(&d.DriverID, &d.Name, &d.CarrierID)
	}, `SELECT driver_id, name, carrier_id FROM drivers WHERE $1 = '' OR carrier_id = $1 ORDER BY name`, carrierID)
}

func (r *PgxReferenceRepository) ListTractors(ctx context.Context, carrierID string) ([]domain.Tractor, error) {
	return queryAll(ctx, r.Pool, "tractors", func(row pgx.Row) (domain.Tractor, error) {
		var t domain.Tractor
		return t, row.Scan(&t.TractorID, &t.Registration, &t.CarrierID)
	}, `SELECT tractor_id, registration, carrier_id FROM tractors WHERE $1 = '' OR carrier_id = $1 ORDER BY registration`, carrierID)
}

func (r *PgxReferenceRepository) ListTanks(ctx context.Context, carrierID string) ([]domain.Tank, error) {
	return queryAll(ctx, r.Pool, "tanks", func(row pgx.Row) (domain.Tank, error) {
		var t domain.Tank
		return t, row.Scan(&t.TankID, &t.Registration, &t.CarrierID)
	}, `SELECT tank_id, registration, carrier_id FROM tanks WHERE $1 = '' OR carrier_id = $1 ORDER BY registration`, carrierID)
}

func (r *PgxReferenceRepository) ListDepots(ctx context.Context) ([]domain.Depot, error) {
	return queryAll(ctx, r.Pool, "depots", func(row pgx.Row) (domain.Depot, error) {
		var d domain.Depot
		return d, row.Scan(&d.DepotID, &d.Name)
	}, `SELECT depot_id, name FROM depots ORDER BY name`)
}

// NextReferenceID returns prefix + (highest numeric suffix in use + 1).
func (r *PgxReferenceRepository) NextReferenceID(ctx context.Context, kind domain.ReferenceKind) (string, error) {
	var table, column string
	switch kind {
	case domain.ReferenceDriver:
		table, column = "drivers", "driver_id"
	case domain.ReferenceTractor:
		table, column = "tractors", "tractor_id"
	case domain.ReferenceTank:
		table, column = "tanks", "tank_id"
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown reference kind %q", kind))
	}
	prefix := kind.IDPrefix()

	var next int64
	query := fmt.Sprintf(
		`SELECT COALESCE(MAX(CAST(SUBSTRING(%s FROM '^%s([0-9]+)$') AS BIGINT)), 0) + 1 FROM %s`,
		column, prefix, table)
	if err := r.Pool.QueryRow(ctx, query).Scan(&next); err != nil {
		return "", apperrors.NewAppError(http.StatusInternalServerError, "failed to compute next "+string(kind)+" id", err)
	}
	return fmt.Sprintf("%s%d", prefix, next), nil
}

func (r *PgxReferenceRepository) SaveDriver(ctx context.Context, d domain.Driver) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO drivers (driver_id, name, carrier_id) VALUES ($1, $2, $3)`,
		d.DriverID, d.Name, d.CarrierID)
	if err != nil {
		return mapWriteError(err, "failed to save driver")
	}
	return nil
}

func (r *PgxReferenceRepository) SaveTractor(ctx context.Context, t domain.Tractor) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO tractors (tractor_id, registration, carrier_id) VALUES ($1, $2, $3)`,
		t.TractorID, t.Registration, t.CarrierID)
	if err != nil {
		return mapWriteError(err, "failed to save tractor")
	}
	return nil
}

func (r *PgxReferenceRepository) SaveTank(ctx context.Context, t domain.Tank) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO tanks (tank_id, registration, carrier_id) VALUES ($1, $2, $3)`,
		t.TankID, t.Registration, t.CarrierID)
	if err != nil {
		return mapWriteError(err, "failed to save tank")
	}
	return nil
}

const (
	upsertCommercial = `INSERT INTO commercials (commercial_id, name) VALUES ($1, $2)
		ON CONFLICT (commercial_id) DO UPDATE SET name = EXCLUDED.name`
	upsertCarrier = `INSERT INTO carriers (carrier_id, name) VALUES ($1, $2)
		ON CONFLICT (carrier_id) DO UPDATE SET name = EXCLUDED.name`
	upsertDepot = `INSERT INTO depots (depot_id, name) VALUES ($1, $2)
		ON CONFLICT (depot_id) DO UPDATE SET name = EXCLUDED.name`
	upsertProduct = `INSERT INTO products (product_id, name) VALUES ($1, $2)
		ON CONFLICT (product_id) DO UPDATE SET name = EXCLUDED.name`
	upsertSite = `INSERT INTO sites (site_id, name, account_number, commercial_id) VALUES ($1, $2, $3, NULLIF($4, ''))
		ON CONFLICT (site_id) DO UPDATE SET name = EXCLUDED.name, account_number = EXCLUDED.account_number,
		commercial_id = EXCLUDED.commercial_id`
	upsertDriver = `INSERT INTO drivers (driver_id, name, carrier_id) VALUES ($1, $2, $3)
		ON CONFLICT (driver_id) DO UPDATE SET name = EXCLUDED.name, carrier_id = EXCLUDED.carrier_id`
	upsertTractor = `INSERT INTO tractors (tractor_id, registration, carrier_id) VALUES ($1, $2, $3)
		ON CONFLICT (tractor_id) DO UPDATE SET registration = EXCLUDED.registration, carrier_id = EXCLUDED.carrier_id`
	upsertTank = `INSERT INTO tanks (tank_id, registration, carrier_id) VALUES ($1, $2, $3)
		ON CONFLICT (tank_id) DO UPDATE SET registration = EXCLUDED.registration, carrier_id = EXCLUDED.carrier_id`
)

// UpsertReferenceData writes every row of data in one transaction, parents first.
func (r *PgxReferenceRepository) UpsertReferenceData(ctx context.Context, data domain.ReferenceData) error {
	batch := &pgx.Batch{}
	for _, c := range data.Commercials {
		batch.Queue(upsertCommercial, c.CommercialID, c.Name)
	}
	for _, c := range data.Carriers {
		batch.Queue(upsertCarrier, c.CarrierID, c.Name)
	}
	for _, d := range data.Depots {
		batch.Queue(upsertDepot, d.DepotID, d.Name)
	}
	for _, p := range data.Products {
		batch.Queue(upsertProduct, p.ProductID, p.Name)
	}
	for _, s := range data.Sites {
		batch.Queue(upsertSite, s.SiteID, s.Name, s.AccountNumber, s.CommercialID)
	}
	for _, d := range data.Drivers {
		batch.Queue(upsertDriver, d.DriverID, d.Name, d.CarrierID)
	}
	for _, t := range data.Tractors {
		batch.Queue(upsertTractor, t.TractorID, t.Registration, t.CarrierID)
	}
	for _, t := range data.Tanks {
		batch.Queue(upsertTank, t.TankID, t.Registration, t.CarrierID)
	}
	if batch.Len() == 0 {
		return nil
	}

	return r.withTx(ctx, func(tx pgx.Tx) error {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return mapWriteError(err, "failed to import reference data")
		}
		return nil
	})
}

// SyncProducts upserts the configured catalog.
func (r *PgxReferenceRepository) SyncProducts(ctx context.Context, products []domain.Product) error {
	return r.UpsertReferenceData(ctx, domain.ReferenceData{Products: products})
}
