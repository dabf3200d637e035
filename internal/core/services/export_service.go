package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/dto"
	"github.com/fuelsquad/manquants_app/internal/export"
	"github.com/fuelsquad/manquants_app/internal/observability/metrics"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// exportService implements the ExportSvc interface on top of the reporting
// and delivery services.
type exportService struct {
	BaseService
	reporting  portssvc.ReportingSvc
	deliveries portssvc.DeliveryReaderSvc
	products   []domain.Product
}

// NewExportService creates a new export service
func NewExportService(reporting portssvc.ReportingSvc, deliveries portssvc.DeliveryReaderSvc, products []domain.Product) portssvc.ExportSvc {
	return &exportService{
		reporting:  reporting,
		deliveries: deliveries,
		products:   products,
	}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

func observeExport(format string, start time.Time, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	metrics.ObserveExport(format, result, time.Since(start))
}

func (s *exportService) RecapWorkbook(ctx context.Context, params dto.DeliveryRecapParams, viewer domain.Viewer) (file *portssvc.ExportedFile, err error) {
	start := time.Now()
	defer func() { observeExport("xlsx", start, err) }()

	recap, err := s.reporting.DeliveryRecap(ctx, params, viewer)
	if err != nil {
		return nil, err
	}
	content, err := export.BuildRecapXLSX(recap.Products, recap.Rows)
	if err != nil {
		s.LogError(ctx, err, "Failed to render recap workbook")
		return nil, err
	}
	return &portssvc.ExportedFile{FileName: export.RecapFileName, ContentType: contentTypeXLSX, Content: content}, nil
}

// DeliverySummaryPDF renders one delivery. A missing price only blanks the value column.
func (s *exportService) DeliverySummaryPDF(ctx context.Context, deliveryID int64, viewer domain.Viewer) (file *portssvc.ExportedFile, err error) {
	start := time.Now()
	defer func() { observeExport("delivery_pdf", start, err) }()

	d, err := s.deliveries.GetDelivery(ctx, deliveryID, viewer)
	if err != nil {
		return nil, err
	}
	valuation, err := s.reporting.DeliveryValuation(ctx, *d)
	if err != nil {
		if !errors.Is(err, apperrors.ErrPriceNotFound) {
			return nil, err
		}
		s.LogWarn(ctx, "Delivery summary rendered without values",
			slog.Int64("delivery_id", deliveryID),
			slog.String("reason", err.Error()))
		valuation = nil
	}

	content, err := export.BuildDeliverySummaryPDF(*d, s.products, valuation)
	if err != nil {
		s.LogError(ctx, err, "Failed to render delivery summary", slog.Int64("delivery_id", deliveryID))
		return nil, err
	}
	return &portssvc.ExportedFile{FileName: export.DeliverySummaryFileName(*d), ContentType: contentTypePDF, Content: content}, nil
}

func (s *exportService) MemoPDF(ctx context.Context, params dto.MemoParams, viewer domain.Viewer) (file *portssvc.ExportedFile, err error) {
	start := time.Now()
	defer func() { observeExport("memo_pdf", start, err) }()

	memo, err := s.reporting.MonthlyMemo(ctx, params, viewer)
	if err != nil {
		return nil, err
	}
	content, err := export.BuildMemoPDF(memo.Label, memo.Report)
	if err != nil {
		s.LogError(ctx, err, "Failed to render memo", slog.String("month", params.Month))
		return nil, err
	}
	return &portssvc.ExportedFile{FileName: export.MemoFileName(memo.Label), ContentType: contentTypePDF, Content: content}, nil
}
