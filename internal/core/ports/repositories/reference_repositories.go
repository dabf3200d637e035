package repositories

import (
	"context"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
)

// ReferenceReader defines read operations for reference tables.
// An empty filter argument lists everything.
type ReferenceReader interface {
	ListCommercials(ctx context.Context) ([]domain.Commercial, error)
	ListSites(ctx context.Context, commercialID string) ([]domain.Site, error)
	FindSiteByID(ctx context.Context, siteID string) (*domain.Site, error)
	ListCarriers(ctx context.Context) ([]domain.Carrier, error)
	FindCarrierByID(ctx context.Context, carrierID string) (*domain.Carrier, error)
	ListDrivers(ctx context.Context, carrierID string) ([]domain.Driver, error)
	ListTractors(ctx context.Context, carrierID string) ([]domain.Tractor, error)
	ListTanks(ctx context.Context, carrierID string) ([]domain.Tank, error)
	ListDepots(ctx context.Context) ([]domain.Depot, error)
}

// ReferenceWriter defines write operations for reference tables
type ReferenceWriter interface {
	// NextReferenceID returns the next sequential identifier for kind, e.g. "CH4".
	NextReferenceID(ctx context.Context, kind domain.ReferenceKind) (string, error)
	SaveDriver(ctx context.Context, driver domain.Driver) error
	SaveTractor(ctx context.Context, tractor domain.Tractor) error
	SaveTank(ctx context.Context, tank domain.Tank) error
	// UpsertReferenceData inserts or updates every row of data in one transaction.
	UpsertReferenceData(ctx context.Context, data domain.ReferenceData) error
	// SyncProducts makes the products table match the configured catalog.
	SyncProducts(ctx context.Context, products []domain.Product) error
}

// ReferenceRepositoryFacade combines all reference-related repository interfaces
type ReferenceRepositoryFacade interface {
	ReferenceReader
	ReferenceWriter
}
