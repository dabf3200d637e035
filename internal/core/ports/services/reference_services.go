package services

import (
	"context"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/dto"
)

// ReferenceReaderSvc lists reference data used by the delivery form.
type ReferenceReaderSvc interface {
	ListCommercials(ctx context.Context) ([]domain.Commercial, error)
	ListSites(ctx context.Context, commercialID string) ([]domain.Site, error)
	ListCarriers(ctx context.Context) ([]domain.Carrier, error)
	ListDrivers(ctx context.Context, carrierID string) ([]domain.Driver, error)
	ListTractors(ctx context.Context, carrierID string) ([]domain.Tractor, error)
	ListTanks(ctx context.Context, carrierID string) ([]domain.Tank, error)
	ListDepots(ctx context.Context) ([]domain.Depot, error)
	ListProducts(ctx context.Context) []domain.Product
}

// ReferenceWriterSvc registers reference data.
type ReferenceWriterSvc interface {
	CreateDriver(ctx context.Context, req dto.CreateDriverRequest) (*domain.Driver, error)
	CreateTractor(ctx context.Context, req dto.CreateVehicleRequest) (*domain.Tractor, error)
	CreateTank(ctx context.Context, req dto.CreateVehicleRequest) (*domain.Tank, error)
	ImportReferenceData(ctx context.Context, data domain.ReferenceData) (*dto.ImportSummary, error)
}

// ReferenceSvcFacade combines all reference-related service interfaces
type ReferenceSvcFacade interface {
	ReferenceReaderSvc
	ReferenceWriterSvc
}
