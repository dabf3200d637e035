package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/core/valuation"
	"github.com/fuelsquad/manquants_app/internal/dto"
	"github.com/fuelsquad/manquants_app/internal/observability/metrics"
)

const (
	reportRecap = "recap"
	reportMemo  = "memo"
)

// reportingService implements the ReportingSvc interface. Each call loads the
// price history and builds its own resolver; nothing is cached between requests.
type reportingService struct {
	BaseService
	deliveryRepo portsrepo.DeliveryReader
	priceRepo    portsrepo.PriceReader
	products     []domain.Product
}

// NewReportingService creates a new reporting service over the given catalog
func NewReportingService(deliveryRepo portsrepo.DeliveryReader, priceRepo portsrepo.PriceReader, products []domain.Product) portssvc.ReportingSvc {
	return &reportingService{
		deliveryRepo: deliveryRepo,
		priceRepo:    priceRepo,
		products:     products,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) aggregator(ctx context.Context) (*valuation.Aggregator, error) {
	records, err := s.priceRepo.ListPricesForProducts(ctx, productIDs(s.products))
	if err != nil {
		s.LogError(ctx, err, "Failed to load price history")
		return nil, fmt.Errorf("failed to load price history: %w", err)
	}
	return valuation.NewAggregator(s.products, valuation.NewPriceResolver(records)), nil
}

func (s *reportingService) warnSkipped(ctx context.Context, report string, skipped []domain.SkippedDelivery) {
	for _, sk := range skipped {
		s.LogWarn(ctx, "Delivery left out of report: no price",
			slog.String("report", report),
			slog.Int64("delivery_id", sk.DeliveryID),
			slog.String("order_reference", sk.OrderReference),
			slog.String("bl_number", sk.BLNumber),
			slog.String("date", sk.Date.Format(domain.DateLayout)),
			slog.String("product_id", sk.ProductID))
	}
}

func (s *reportingService) DeliveryRecap(ctx context.Context, params dto.DeliveryRecapParams, viewer domain.Viewer) (recap *dto.DeliveryRecap, err error) {
	start := time.Now()
	defer func() {
		result, valued, skipped := metrics.ResultError, 0, 0
		if err == nil {
			result, valued, skipped = metrics.ResultSuccess, len(recap.Rows), len(recap.Skipped)
		}
		metrics.ObserveReport(reportRecap, result, valued, skipped, time.Since(start))
	}()

	filter, err := params.ToFilter()
	if err != nil {
		return nil, err
	}
	if err := scopeFilter(viewer, &filter); err != nil {
		return nil, err
	}

	deliveries, err := s.deliveryRepo.ListDeliveries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deliveries for recap")
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	agg, err := s.aggregator(ctx)
	if err != nil {
		return nil, err
	}
	rows, skipped, err := agg.DeliveryRows(deliveries)
	if err != nil {
		s.LogError(ctx, err, "Failed to valuate deliveries")
		return nil, err
	}
	s.warnSkipped(ctx, reportRecap, skipped)

	s.LogInfo(ctx, "Delivery recap generated",
		slog.String("from", params.From),
		slog.String("to", params.To),
		slog.Int("rows", len(rows)),
		slog.Int("skipped", len(skipped)))
	return &dto.DeliveryRecap{Products: s.products, Rows: rows, Skipped: skipped}, nil
}

func (s *reportingService) MonthlyMemo(ctx context.Context, params dto.MemoParams, viewer domain.Viewer) (memo *dto.MonthlyMemo, err error) {
	start := time.Now()
	defer func() {
		result, valued, skipped := metrics.ResultError, 0, 0
		if err == nil {
			result, valued, skipped = metrics.ResultSuccess, len(memo.Report.Rows), len(memo.Report.Skipped)
		}
		metrics.ObserveReport(reportMemo, result, valued, skipped, time.Since(start))
	}()

	year, month, err := params.ParseMonth()
	if err != nil {
		return nil, err
	}
	period := domain.MonthPeriod(year, month)
	filter := domain.DeliveryFilter{Period: &period}
	if err := scopeFilter(viewer, &filter); err != nil {
		return nil, err
	}

	deliveries, err := s.deliveryRepo.ListDeliveries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deliveries for memo", slog.String("month", params.Month))
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	agg, err := s.aggregator(ctx)
	if err != nil {
		return nil, err
	}
	report, err := agg.Aggregate(deliveries, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate memo", slog.String("month", params.Month))
		return nil, err
	}
	s.warnSkipped(ctx, reportMemo, report.Skipped)

	s.LogInfo(ctx, "Monthly memo generated",
		slog.String("month", params.Month),
		slog.Int("carriers", len(report.Carriers)),
		slog.Int("sites", len(report.Sites)),
		slog.String("shortage_value", report.ShortageValue.String()))
	return &dto.MonthlyMemo{
		Year:   year,
		Month:  month,
		Label:  domain.FrenchMonthLabel(year, month),
		Report: report,
	}, nil
}

func (s *reportingService) DeliveryValuation(ctx context.Context, delivery domain.Delivery) (*domain.DeliveryValuation, error) {
	agg, err := s.aggregator(ctx)
	if err != nil {
		return nil, err
	}
	v, err := agg.ValuateDelivery(delivery)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
