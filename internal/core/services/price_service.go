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
	"github.com/fuelsquad/manquants_app/internal/core/valuation"
	"github.com/fuelsquad/manquants_app/internal/dto"
	"github.com/google/uuid"
)

// priceService implements the PriceSvcFacade interface
type priceService struct {
	BaseService
	priceRepo portsrepo.PriceRepositoryFacade
	products  []domain.Product
	now       func() time.Time
}

// PriceServiceOption is a functional option for configuring the price service
type PriceServiceOption func(*priceService)

// WithPriceClock overrides the clock used to stamp new records.
func WithPriceClock(now func() time.Time) PriceServiceOption {
	return func(s *priceService) {
		s.now = now
	}
}

// NewPriceService creates a new price service for the given product catalog
func NewPriceService(repo portsrepo.PriceRepositoryFacade, products []domain.Product, options ...PriceServiceOption) portssvc.PriceSvcFacade {
	svc := &priceService{
		priceRepo: repo,
		products:  products,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PriceSvcFacade = (*priceService)(nil)

func (s *priceService) ListPrices(ctx context.Context) ([]domain.PriceRecord, error) {
	prices, err := s.priceRepo.ListPrices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list prices")
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	if prices == nil {
		return []domain.PriceRecord{}, nil
	}
	return prices, nil
}

// CurrentPrices resolves, for every catalog product, the record in effect on date.
func (s *priceService) CurrentPrices(ctx context.Context, date time.Time) ([]dto.CurrentPrice, error) {
	records, err := s.priceRepo.ListPricesForProducts(ctx, productIDs(s.products))
	if err != nil {
		s.LogError(ctx, err, "Failed to load prices", slog.String("date", date.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}

	resolver := valuation.NewPriceResolver(records)
	current := make([]dto.CurrentPrice, len(s.products))
	for i, p := range s.products {
		current[i].Product = p
		record, err := resolver.ResolveRecord(p.ProductID, date)
		if err != nil {
			if errors.Is(err, apperrors.ErrPriceNotFound) {
				continue
			}
			return nil, err
		}
		current[i].Record = record
	}
	return current, nil
}

func (s *priceService) CreatePrice(ctx context.Context, req dto.CreatePriceRequest, creatorUserID string) (*domain.PriceRecord, error) {
	if !inCatalog(s.products, req.ProductID) {
		return nil, apperrors.NewValidationError("unknown product " + req.ProductID)
	}
	from, err := domain.ParseDate(req.ValidFrom)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid validFrom date " + req.ValidFrom)
	}
	to, err := domain.ParseDate(req.ValidTo)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid validTo date " + req.ValidTo)
	}

	record := domain.PriceRecord{
		PriceID:    uuid.NewString(),
		ProductID:  req.ProductID,
		Price:      req.Price,
		ValidFrom:  from,
		ValidTo:    to,
		RecordedAt: s.now(),
		RecordedBy: creatorUserID,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	overlapping, err := s.priceRepo.FindOverlappingPrices(ctx, record.ProductID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to check overlapping prices", slog.String("product_id", record.ProductID))
		return nil, fmt.Errorf("failed to check overlapping prices: %w", err)
	}

	switch {
	case len(overlapping) > 0 && !req.Replace:
		s.LogDebug(ctx, "Price rejected: validity overlaps existing records",
			slog.String("product_id", record.ProductID),
			slog.Int("conflicts", len(overlapping)))
		return nil, &domain.PriceConflictError{Conflicts: overlapping}
	case len(overlapping) > 0:
		ids := make([]string, len(overlapping))
		for i, o := range overlapping {
			ids[i] = o.PriceID
		}
		if err := s.priceRepo.ReplacePrices(ctx, ids, record); err != nil {
			s.LogError(ctx, err, "Failed to replace prices", slog.String("product_id", record.ProductID))
			return nil, err
		}
		s.LogInfo(ctx, "Price registered, overlapping records replaced",
			slog.String("price_id", record.PriceID),
			slog.String("product_id", record.ProductID),
			slog.Int("replaced", len(ids)))
	default:
		if err := s.priceRepo.SavePrice(ctx, record); err != nil {
			s.LogError(ctx, err, "Failed to save price", slog.String("product_id", record.ProductID))
			return nil, err
		}
		s.LogInfo(ctx, "Price registered",
			slog.String("price_id", record.PriceID),
			slog.String("product_id", record.ProductID))
	}
	return &record, nil
}

func (s *priceService) DeletePrice(ctx context.Context, priceID string, userID string) error {
	if err := s.priceRepo.DeletePrice(ctx, priceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete price", slog.String("price_id", priceID))
		}
		return err
	}
	s.LogInfo(ctx, "Price deleted", slog.String("price_id", priceID), slog.String("user_id", userID))
	return nil
}
