package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/dto"
)

// referenceService implements the ReferenceSvcFacade interface
type referenceService struct {
	BaseService
	referenceRepo portsrepo.ReferenceRepositoryFacade
	products      []domain.Product
}

// NewReferenceService creates a new reference data service
func NewReferenceService(repo portsrepo.ReferenceRepositoryFacade, products []domain.Product) portssvc.ReferenceSvcFacade {
	return &referenceService{referenceRepo: repo, products: products}
}

var _ portssvc.ReferenceSvcFacade = (*referenceService)(nil)

func (s *referenceService) ListCommercials(ctx context.Context) ([]domain.Commercial, error) {
	return s.referenceRepo.ListCommercials(ctx)
}

func (s *referenceService) ListSites(ctx context.Context, commercialID string) ([]domain.Site, error) {
	return s.referenceRepo.ListSites(ctx, commercialID)
}

func (s *referenceService) ListCarriers(ctx context.Context) ([]domain.Carrier, error) {
	return s.referenceRepo.ListCarriers(ctx)
}

func (s *referenceService) ListDrivers(ctx context.Context, carrierID string) ([]domain.Driver, error) {
	return s.referenceRepo.ListDrivers(ctx, carrierID)
}

func (s *referenceService) ListTractors(ctx context.Context, carrierID string) ([]domain.Tractor, error) {
	return s.referenceRepo.ListTractors(ctx, carrierID)
}

func (s *referenceService) ListTanks(ctx context.Context, carrierID string) ([]domain.Tank, error) {
	return s.referenceRepo.ListTanks(ctx, carrierID)
}

func (s *referenceService) ListDepots(ctx context.Context) ([]domain.Depot, error) {
	return s.referenceRepo.ListDepots(ctx)
}

func (s *referenceService) ListProducts(_ context.Context) []domain.Product {
	return s.products
}

// requireCarrier maps an unknown carrier to a validation error.
func (s *referenceService) requireCarrier(ctx context.Context, carrierID string) error {
	if _, err := s.referenceRepo.FindCarrierByID(ctx, carrierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("unknown carrier " + carrierID)
		}
		return err
	}
	return nil
}

// maxIDAttempts bounds the retries when a concurrent insert takes the id just allocated.
const maxIDAttempts = 5

// saveWithNextID allocates the next id of kind and hands it to save. An id
// taken by a concurrent insert (ErrDuplicate) is re-allocated and retried.
func (s *referenceService) saveWithNextID(ctx context.Context, kind domain.ReferenceKind, save func(id string) error) (string, error) {
	var err error
	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		var id string
		id, err = s.referenceRepo.NextReferenceID(ctx, kind)
		if err != nil {
			s.LogError(ctx, err, "Failed to allocate reference id", slog.String("kind", string(kind)))
			return "", fmt.Errorf("failed to allocate %s id: %w", kind, err)
		}
		err = save(id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save reference", slog.String("kind", string(kind)), slog.String("id", id))
			return "", err
		}
		s.LogWarn(ctx, "Reference id taken concurrently, retrying",
			slog.String("kind", string(kind)),
			slog.String("id", id),
			slog.Int("attempt", attempt))
	}
	s.LogError(ctx, err, "Gave up allocating reference id", slog.String("kind", string(kind)))
	return "", err
}

func (s *referenceService) CreateDriver(ctx context.Context, req dto.CreateDriverRequest) (*domain.Driver, error) {
	if err := s.requireCarrier(ctx, req.CarrierID); err != nil {
		return nil, err
	}
	driver := domain.Driver{Name: req.Name, CarrierID: req.CarrierID}
	id, err := s.saveWithNextID(ctx, domain.ReferenceDriver, func(id string) error {
		driver.DriverID = id
		return s.referenceRepo.SaveDriver(ctx, driver)
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Driver registered", slog.String("driver_id", id), slog.String("carrier_id", req.CarrierID))
	return &driver, nil
}

func (s *referenceService) CreateTractor(ctx context.Context, req dto.CreateVehicleRequest) (*domain.Tractor, error) {
	if err := s.requireCarrier(ctx, req.CarrierID); err != nil {
		return nil, err
	}
	tractor := domain.Tractor{Registration: req.Registration, CarrierID: req.CarrierID}
	id, err := s.saveWithNextID(ctx, domain.ReferenceTractor, func(id string) error {
		tractor.TractorID = id
		return s.referenceRepo.SaveTractor(ctx, tractor)
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Tractor registered", slog.String("tractor_id", id), slog.String("carrier_id", req.CarrierID))
	return &tractor, nil
}

func (s *referenceService) CreateTank(ctx context.Context, req dto.CreateVehicleRequest) (*domain.Tank, error) {
	if err := s.requireCarrier(ctx, req.CarrierID); err != nil {
		return nil, err
	}
	tank := domain.Tank{Registration: req.Registration, CarrierID: req.CarrierID}
	id, err := s.saveWithNextID(ctx, domain.ReferenceTank, func(id string) error {
		tank.TankID = id
		return s.referenceRepo.SaveTank(ctx, tank)
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Tank registered", slog.String("tank_id", id), slog.String("carrier_id", req.CarrierID))
	return &tank, nil
}

// ImportReferenceData upserts a workbook snapshot. Products outside the
// configured catalog are rejected so reports never meet an unknown column.
func (s *referenceService) ImportReferenceData(ctx context.Context, data domain.ReferenceData) (*dto.ImportSummary, error) {
	for _, p := range data.Products {
		if !inCatalog(s.products, p.ProductID) {
			return nil, apperrors.NewValidationError("product " + p.ProductID + " is not in the configured catalog")
		}
	}
	if err := s.referenceRepo.UpsertReferenceData(ctx, data); err != nil {
		s.LogError(ctx, err, "Failed to import reference data")
		return nil, err
	}

	summary := &dto.ImportSummary{
		Commercials: len(data.Commercials),
		Carriers:    len(data.Carriers),
		Depots:      len(data.Depots),
		Sites:       len(data.Sites),
		Drivers:     len(data.Drivers),
		Products:    len(data.Products),
		Tractors:    len(data.Tractors),
		Tanks:       len(data.Tanks),
	}
	s.LogInfo(ctx, "Reference data imported",
		slog.Int("sites", summary.Sites),
		slog.Int("carriers", summary.Carriers),
		slog.Int("drivers", summary.Drivers))
	return summary, nil
}
