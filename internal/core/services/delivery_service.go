package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/dto"
	"github.com/fuelsquad/manquants_app/internal/observability/metrics"
)

// deliveryService implements the DeliverySvcFacade interface
type deliveryService struct {
	BaseService
	deliveryRepo  portsrepo.DeliveryRepositoryFacade
	referenceRepo portsrepo.ReferenceReader
	documents     portsrepo.DocumentStore
	products      []domain.Product
	now           func() time.Time
}

// DeliveryServiceOption is a functional option for configuring the delivery service
type DeliveryServiceOption func(*deliveryService)

// WithDeliveryReferences checks sites and carriers of new deliveries against repo.
func WithDeliveryReferences(repo portsrepo.ReferenceReader) DeliveryServiceOption {
	return func(s *deliveryService) {
		s.referenceRepo = repo
	}
}

// WithDocumentStore stores the BL and OCST attachments in store.
func WithDocumentStore(store portsrepo.DocumentStore) DeliveryServiceOption {
	return func(s *deliveryService) {
		s.documents = store
	}
}

// WithDeliveryClock overrides the clock used for audit fields.
func WithDeliveryClock(now func() time.Time) DeliveryServiceOption {
	return func(s *deliveryService) {
		s.now = now
	}
}

// NewDeliveryService creates a new delivery service with the provided options
func NewDeliveryService(repo portsrepo.DeliveryRepositoryFacade, products []domain.Product, options ...DeliveryServiceOption) portssvc.DeliverySvcFacade {
	svc := &deliveryService{
		deliveryRepo: repo,
		products:     products,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DeliverySvcFacade = (*deliveryService)(nil)

func (s *deliveryService) GetDelivery(ctx context.Context, deliveryID int64, viewer domain.Viewer) (*domain.Delivery, error) {
	d, err := s.deliveryRepo.FindDeliveryByID(ctx, deliveryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find delivery", slog.Int64("delivery_id", deliveryID))
		}
		return nil, err
	}
	if !canView(viewer, d) {
		s.LogDebug(ctx, "Delivery belongs to another carrier",
			slog.Int64("delivery_id", deliveryID),
			slog.String("viewer_carrier", viewer.CarrierID))
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("delivery %d not found", deliveryID))
	}
	return d, nil
}

func (s *deliveryService) GetDeliveryByBL(ctx context.Context, blNumber string, viewer domain.Viewer) (*domain.Delivery, error) {
	d, err := s.deliveryRepo.FindDeliveryByBL(ctx, blNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find delivery by BL", slog.String("bl_number", blNumber))
		}
		return nil, err
	}
	if !canView(viewer, d) {
		return nil, apperrors.NewNotFoundError("delivery with BL " + blNumber + " not found")
	}
	return d, nil
}

func (s *deliveryService) ListDeliveries(ctx context.Context, params dto.ListDeliveriesParams, viewer domain.Viewer) ([]domain.Delivery, error) {
	filter, err := params.ToFilter()
	if err != nil {
		return nil, err
	}
	if err := scopeFilter(viewer, &filter); err != nil {
		return nil, err
	}

	deliveries, err := s.deliveryRepo.ListDeliveries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deliveries", slog.String("site_id", params.SiteID))
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	if deliveries == nil {
		return []domain.Delivery{}, nil
	}
	return deliveries, nil
}

func (s *deliveryService) OpenDocument(ctx context.Context, deliveryID int64, kind domain.DocumentKind, viewer domain.Viewer) (io.ReadCloser, string, error) {
	if !kind.IsValid() {
		return nil, "", apperrors.NewValidationError(fmt.Sprintf("unknown document kind %q", kind))
	}
	d, err := s.GetDelivery(ctx, deliveryID, viewer)
	if err != nil {
		return nil, "", err
	}

	ref := d.BLDocument
	if kind == domain.DocumentOCST {
		ref = d.OCSTDocument
	}
	if ref == nil || *ref == "" || s.documents == nil {
		return nil, "", apperrors.NewNotFoundError(fmt.Sprintf("delivery %d has no %s document", deliveryID, kind))
	}

	content, err := s.documents.Open(ctx, *ref)
	if err != nil {
		s.LogError(ctx, err, "Failed to open delivery document",
			slog.Int64("delivery_id", deliveryID),
			slog.String("kind", string(kind)))
		return nil, "", err
	}
	return content, path.Base(*ref), nil
}

// checkReferences fills carrier and site names and defaults the commercial to the site's.
func (s *deliveryService) checkReferences(ctx context.Context, d *domain.Delivery) error {
	if s.referenceRepo == nil {
		return nil
	}
	site, err := s.referenceRepo.FindSiteByID(ctx, d.SiteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("unknown site " + d.SiteID)
		}
		return err
	}
	carrier, err := s.referenceRepo.FindCarrierByID(ctx, d.CarrierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("unknown carrier " + d.CarrierID)
		}
		return err
	}
	d.SiteName = site.Name
	d.AccountNumber = site.AccountNumber
	d.CarrierName = carrier.Name
	if d.CommercialID == "" {
		d.CommercialID = site.CommercialID
	}
	return s.resolveCrew(ctx, d)
}

// resolveCrew replaces the driver, tractor and tank given by id or label with
// the label registered for the delivery's carrier. Empty fields stay empty.
func (s *deliveryService) resolveCrew(ctx context.Context, d *domain.Delivery) error {
	if d.Driver != "" {
		drivers, err := s.referenceRepo.ListDrivers(ctx, d.CarrierID)
		if err != nil {
			return err
		}
		label, ok := "", false
		for _, dr := range drivers {
			if matchesReference(d.Driver, dr.DriverID, dr.Name) {
				label, ok = dr.Name, true
				break
			}
		}
		if !ok {
			return apperrors.NewValidationError(fmt.Sprintf("driver %q is not registered for carrier %s", d.Driver, d.CarrierID))
		}
		d.Driver = label
	}
	if d.Tractor != "" {
		tractors, err := s.referenceRepo.ListTractors(ctx, d.CarrierID)
		if err != nil {
			return err
		}
		label, ok := "", false
		for _, t := range tractors {
			if matchesReference(d.Tractor, t.TractorID, t.Registration) {
				label, ok = t.Registration, true
				break
			}
		}
		if !ok {
			return apperrors.NewValidationError(fmt.Sprintf("tractor %q is not registered for carrier %s", d.Tractor, d.CarrierID))
		}
		d.Tractor = label
	}
	if d.Tank != "" {
		tanks, err := s.referenceRepo.ListTanks(ctx, d.CarrierID)
		if err != nil {
			return err
		}
		label, ok := "", false
		for _, t := range tanks {
			if matchesReference(d.Tank, t.TankID, t.Registration) {
				label, ok = t.Registration, true
				break
			}
		}
		if !ok {
			return apperrors.NewValidationError(fmt.Sprintf("tank %q is not registered for carrier %s", d.Tank, d.CarrierID))
		}
		d.Tank = label
	}
	return nil
}

func matchesReference(value, id, label string) bool {
	value = strings.TrimSpace(value)
	return value == id || strings.EqualFold(value, strings.TrimSpace(label))
}

// storeDocuments saves the uploads and links them to d. On failure the
// documents already saved are removed again.
func (s *deliveryService) storeDocuments(ctx context.Context, d *domain.Delivery, uploads []dto.DocumentUpload) error {
	var stored []string
	for _, upload := range uploads {
		if !upload.Kind.IsValid() {
			s.discardDocuments(ctx, stored)
			return apperrors.NewValidationError(fmt.Sprintf("unknown document kind %q", upload.Kind))
		}
		if s.documents == nil {
			return apperrors.NewValidationError("document storage is not configured")
		}
		name := fmt.Sprintf("%s_%s_%s", upload.Kind, d.BLNumber, upload.FileName)
		doc, err := s.documents.Save(ctx, name, upload.ContentType, upload.Content)
		if err != nil {
			metrics.IncDocumentStored(string(upload.Kind), metrics.ResultError)
			s.LogError(ctx, err, "Failed to store delivery document",
				slog.String("bl_number", d.BLNumber),
				slog.String("kind", string(upload.Kind)))
			s.discardDocuments(ctx, stored)
			return fmt.Errorf("failed to store %s document: %w", upload.Kind, err)
		}
		metrics.IncDocumentStored(string(upload.Kind), metrics.ResultSuccess)

		ref := doc.Ref
		stored = append(stored, ref)
		switch upload.Kind {
		case domain.DocumentBL:
			d.BLDocument = &ref
		case domain.DocumentOCST:
			d.OCSTDocument = &ref
		}
	}
	return nil
}

// discardDocuments removes documents that no delivery points to. Failures are
// logged with the reference so the file can be removed by hand.
func (s *deliveryService) discardDocuments(ctx context.Context, refs []string) {
	if s.documents == nil {
		return
	}
	for _, ref := range refs {
		if err := s.documents.Delete(ctx, ref); err != nil {
			s.LogError(ctx, err, "Failed to remove orphaned delivery document", slog.String("ref", ref))
			continue
		}
		s.LogWarn(ctx, "Removed orphaned delivery document", slog.String("ref", ref))
	}
}

func (s *deliveryService) CreateDelivery(ctx context.Context, req dto.CreateDeliveryRequest, documents []dto.DocumentUpload, creatorUserID string) (*domain.Delivery, error) {
	if err := req.DecodeCompartments(); err != nil {
		return nil, err
	}
	d, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	for _, c := range d.Compartments {
		if !inCatalog(s.products, c.ProductID) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("compartment %d: unknown product %s", c.Number, c.ProductID))
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	existing, err := s.deliveryRepo.FindDeliveryByBL(ctx, d.BLNumber)
	switch {
	case err == nil && existing != nil:
		return nil, apperrors.NewDuplicateError("a delivery with BL " + d.BLNumber + " already exists")
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check BL uniqueness", slog.String("bl_number", d.BLNumber))
		return nil, err
	}

	if err := s.checkReferences(ctx, &d); err != nil {
		return nil, err
	}
	if err := s.storeDocuments(ctx, &d, documents); err != nil {
		return nil, err
	}

	now := s.now()
	d.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	id, err := s.deliveryRepo.SaveDelivery(ctx, d)
	if err != nil {
		s.LogError(ctx, err, "Failed to save delivery",
			slog.String("order_reference", d.OrderReference),
			slog.String("bl_number", d.BLNumber))
		s.discardDocuments(ctx, d.DocumentRefs())
		return nil, err
	}
	d.DeliveryID = id
	for i := range d.Compartments {
		d.Compartments[i].DeliveryID = id
	}

	s.LogInfo(ctx, "Delivery recorded",
		slog.Int64("delivery_id", id),
		slog.String("order_reference", d.OrderReference),
		slog.String("bl_number", d.BLNumber),
		slog.Int("compartments", len(d.Compartments)))
	return &d, nil
}
