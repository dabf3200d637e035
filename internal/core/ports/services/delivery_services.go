package services

import (
	"context"
	"io"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/dto"
)

// DeliveryReaderSvc defines read operations for deliveries
type DeliveryReaderSvc interface {
	GetDelivery(ctx context.Context, deliveryID int64, viewer domain.Viewer) (*domain.Delivery, error)
	GetDeliveryByBL(ctx context.Context, blNumber string, viewer domain.Viewer) (*domain.Delivery, error)
	ListDeliveries(ctx context.Context, params dto.ListDeliveriesParams, viewer domain.Viewer) ([]domain.Delivery, error)

	// OpenDocument streams an attachment of a delivery. The caller closes the reader.
	OpenDocument(ctx context.Context, deliveryID int64, kind domain.DocumentKind, viewer domain.Viewer) (io.ReadCloser, string, error)
}

// DeliveryWriterSvc defines write operations for deliveries
type DeliveryWriterSvc interface {
	CreateDelivery(ctx context.Context, req dto.CreateDeliveryRequest, documents []dto.DocumentUpload, creatorUserID string) (*domain.Delivery, error)
}

// DeliverySvcFacade combines all delivery-related service interfaces
type DeliverySvcFacade interface {
	DeliveryReaderSvc
	DeliveryWriterSvc
}
