package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectDeliveries = `
	SELECT d.delivery_id, d.delivery_date, d.order_reference, d.bl_number, d.depot_id,
	       d.carrier_id, COALESCE(c.name, ''), COALESCE(d.commercial_id, ''),
	       d.site_id, COALESCE(s.name, ''), COALESCE(s.account_number, ''),
	       d.driver, d.tractor, d.tank, d.bl_document, d.ocst_document,
	       d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
	FROM deliveries d
	LEFT JOIN carriers c ON c.carrier_id = d.carrier_id
	LEFT JOIN sites s ON s.site_id = d.site_id`

// PgxDeliveryRepository implements portsrepo.DeliveryRepositoryFacade using pgxpool.
type PgxDeliveryRepository struct {
	BaseRepository
}

func newPgxDeliveryRepository(pool *pgxpool.Pool) *PgxDeliveryRepository {
	return &PgxDeliveryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DeliveryRepositoryFacade = (*PgxDeliveryRepository)(nil)

func scanDelivery(row pgx.Row) (domain.Delivery, error) {
	var d domain.Delivery
	err := row.Scan(
		&d.DeliveryID, &d.Date, &d.OrderReference, &d.BLNumber, &d.DepotID,
		&d.CarrierID, &d.CarrierName, &d.CommercialID,
		&d.SiteID, &d.SiteName, &d.AccountNumber,
		&d.Driver, &d.Tractor, &d.Tank, &d.BLDocument, &d.OCSTDocument,
		&d.CreatedAt, &d.CreatedBy, &d.LastUpdatedAt, &d.LastUpdatedBy,
	)
	return d, err
}

func (r *PgxDeliveryRepository) findOne(ctx context.Context, where string, arg any, label string) (*domain.Delivery, error) {
	d, err := scanDelivery(r.Pool.QueryRow(ctx, selectDeliveries+" WHERE "+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("delivery " + label + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to get delivery", err)
	}
	deliveries := []domain.Delivery{d}
	if err := r.loadCompartments(ctx, deliveries); err != nil {
		return nil, err
	}
	return &deliveries[0], nil
}

// FindDeliveryByID retrieves a delivery with its compartments.
func (r *PgxDeliveryRepository) FindDeliveryByID(ctx context.Context, deliveryID int64) (*domain.Delivery, error) {
	return r.findOne(ctx, "d.delivery_id = $1", deliveryID, fmt.Sprintf("%d", deliveryID))
}

// FindDeliveryByBL retrieves a delivery by its BL number.
func (r *PgxDeliveryRepository) FindDeliveryByBL(ctx context.Context, blNumber string) (*domain.Delivery, error) {
	return r.findOne(ctx, "d.bl_number = $1", blNumber, "with BL "+blNumber)
}

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// deliveryWhere renders filter as a WHERE clause and its arguments.
// Identifiers match exactly, free-text fields match case-insensitively on substrings.
func deliveryWhere(filter domain.DeliveryFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	contains := func(column, value string) {
		if value != "" {
			add(column+" ILIKE '%%' || $%d || '%%'", likeEscaper.Replace(value))
		}
	}

	if filter.Period != nil {
		add("d.delivery_date >= $%d", domain.CivilDate(filter.Period.Start))
		add("d.delivery_date <= $%d", domain.CivilDate(filter.Period.End))
	}
	if filter.Date != nil {
		add("d.delivery_date = $%d", domain.CivilDate(*filter.Date))
	}
	if filter.DeliveryID != nil {
		add("d.delivery_id = $%d", *filter.DeliveryID)
	}
	if filter.SiteID != "" {
		add("d.site_id = $%d", filter.SiteID)
	}
	if filter.DepotID != "" {
		add("d.depot_id = $%d", filter.DepotID)
	}
	if filter.CarrierID != "" {
		add("d.carrier_id = $%d", filter.CarrierID)
	}
	contains("d.order_reference", filter.OrderReference)
	contains("d.bl_number", filter.BLNumber)
	contains("d.tractor", filter.Tractor)
	contains("d.tank", filter.Tank)
	contains("d.driver", filter.Driver)

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListDeliveries returns the deliveries matching filter, oldest first.
func (r *PgxDeliveryRepository) ListDeliveries(ctx context.Context, filter domain.DeliveryFilter) ([]domain.Delivery, error) {
	where, args := deliveryWhere(filter)
	rows, err := r.Pool.Query(ctx, selectDeliveries+where+" ORDER BY d.delivery_date, d.delivery_id", args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list deliveries", err)
	}
	deliveries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Delivery, error) {
		return scanDelivery(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan deliveries", err)
	}
	if err := r.loadCompartments(ctx, deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (r *PgxDeliveryRepository) loadCompartments(ctx context.Context, deliveries []domain.Delivery) error {
	if len(deliveries) == 0 {
		return nil
	}
	ids := make([]int64, len(deliveries))
	index := make(map[int64]int, len(deliveries))
	for i := range deliveries {
		ids[i] = deliveries[i].DeliveryID
		index[deliveries[i].DeliveryID] = i
		deliveries[i].Compartments = []domain.Compartment{}
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT delivery_id, compartment_no, product_id, volume_delivered, volume_shortage, remark
		FROM compartments
		WHERE delivery_id = ANY($1)
		ORDER BY delivery_id, compartment_no`, ids)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to load compartments", err)
	}
	compartments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Compartment, error) {
		var c domain.Compartment
		err := row.Scan(&c.DeliveryID, &c.Number, &c.ProductID, &c.VolumeDelivered, &c.VolumeShortage, &c.Remark)
		return c, err
	})
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to scan compartments", err)
	}
	for _, c := range compartments {
		i := index[c.DeliveryID]
		deliveries[i].Compartments = append(deliveries[i].Compartments, c)
	}
	return nil
}

// SaveDelivery inserts the delivery then copies its compartments, in one transaction.
func (r *PgxDeliveryRepository) SaveDelivery(ctx context.Context, d domain.Delivery) (int64, error) {
	var id int64
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var commercialID *string
		if d.CommercialID != "" {
			commercialID = &d.CommercialID
		}
		err := tx.QueryRow(ctx, `
			INSERT INTO deliveries (delivery_date, order_reference, bl_number, depot_id, carrier_id,
			                        commercial_id, site_id, driver, tractor, tank, bl_document, ocst_document,
			                        created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			RETURNING delivery_id`,
			domain.CivilDate(d.Date), d.OrderReference, d.BLNumber, d.DepotID, d.CarrierID,
			commercialID, d.SiteID, d.Driver, d.Tractor, d.Tank, d.BLDocument, d.OCSTDocument,
			d.CreatedAt, d.CreatedBy, d.LastUpdatedAt, d.LastUpdatedBy,
		).Scan(&id)
		if err != nil {
			return mapWriteError(err, "failed to save delivery")
		}

		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"compartments"},
			[]string{"delivery_id", "compartment_no", "product_id", "volume_delivered", "volume_shortage", "remark"},
			pgx.CopyFromSlice(len(d.Compartments), func(i int) ([]any, error) {
				c := d.Compartments[i]
				return []any{id, c.Number, c.ProductID, c.VolumeDelivered, c.VolumeShortage, string(c.Remark)}, nil
			}),
		)
		if err != nil {
			return mapWriteError(err, "failed to save compartments")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
