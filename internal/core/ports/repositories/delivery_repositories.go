package repositories

import (
	"context"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
)

// DeliveryReader defines read operations for deliveries. Returned deliveries
// carry their compartments.
type DeliveryReader interface {
	FindDeliveryByID(ctx context.Context, deliveryID int64) (*domain.Delivery, error)
	FindDeliveryByBL(ctx context.Context, blNumber string) (*domain.Delivery, error)
	ListDeliveries(ctx context.Context, filter domain.DeliveryFilter) ([]domain.Delivery, error)
}

// DeliveryWriter defines write operations for deliveries
type DeliveryWriter interface {
	// SaveDelivery inserts the delivery and its compartments and returns the new id.
	SaveDelivery(ctx context.Context, delivery domain.Delivery) (int64, error)
}

// DeliveryRepositoryFacade combines all delivery-related repository interfaces
type DeliveryRepositoryFacade interface {
	DeliveryReader
	DeliveryWriter
}
