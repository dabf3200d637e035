package services

import (
	"context"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/dto"
)

// ReportingSvc values shortages over deliveries.
type ReportingSvc interface {
	// DeliveryRecap valuates the deliveries matching params, one row per delivery.
	DeliveryRecap(ctx context.Context, params dto.DeliveryRecapParams, viewer domain.Viewer) (*dto.DeliveryRecap, error)

	// MonthlyMemo totals reimbursable shortages of a month by carrier and by site.
	MonthlyMemo(ctx context.Context, params dto.MemoParams, viewer domain.Viewer) (*dto.MonthlyMemo, error)

	// DeliveryValuation valuates a single delivery.
	DeliveryValuation(ctx context.Context, delivery domain.Delivery) (*domain.DeliveryValuation, error)
}
