package repositories

import (
	"context"
	"time"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
)

// PriceReader defines read operations for the selling price history
type PriceReader interface {
	// ListPrices returns the whole history, most recently recorded first.
	ListPrices(ctx context.Context) ([]domain.PriceRecord, error)

	// ListPricesForProducts returns every record of the given products.
	ListPricesForProducts(ctx context.Context, productIDs []string) ([]domain.PriceRecord, error)

	// FindPriceByID retrieves a single record.
	FindPriceByID(ctx context.Context, priceID string) (*domain.PriceRecord, error)

	// FindOverlappingPrices returns the records of productID whose validity intersects [from, to].
	FindOverlappingPrices(ctx context.Context, productID string, from, to time.Time) ([]domain.PriceRecord, error)
}

// PriceWriter defines write operations for the selling price history
type PriceWriter interface {
	// SavePrice inserts a new record.
	SavePrice(ctx context.Context, record domain.PriceRecord) error

	// ReplacePrices deletes replacedIDs and inserts record atomically.
	ReplacePrices(ctx context.Context, replacedIDs []string, record domain.PriceRecord) error

	// DeletePrice removes a record.
	DeletePrice(ctx context.Context, priceID string) error
}

// PriceRepositoryFacade combines all price-related repository interfaces
type PriceRepositoryFacade interface {
	PriceReader
	PriceWriter
}
