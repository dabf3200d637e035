package services

import (
	"context"
	"time"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/dto"
)

// PriceReaderSvc defines read operations for selling prices
type PriceReaderSvc interface {
	// ListPrices returns the price history, most recently recorded first.
	ListPrices(ctx context.Context) ([]domain.PriceRecord, error)

	// CurrentPrices returns the price in effect on date for every catalog product.
	CurrentPrices(ctx context.Context, date time.Time) ([]dto.CurrentPrice, error)
}

// PriceWriterSvc defines write operations for selling prices
type PriceWriterSvc interface {
	// CreatePrice registers a price. Overlapping records cause a
	// *domain.PriceConflictError unless req.Replace is set.
	CreatePrice(ctx context.Context, req dto.CreatePriceRequest, creatorUserID string) (*domain.PriceRecord, error)

	DeletePrice(ctx context.Context, priceID string, userID string) error
}

// PriceSvcFacade combines all price-related service interfaces
type PriceSvcFacade interface {
	PriceReaderSvc
	PriceWriterSvc
}
