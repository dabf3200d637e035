package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- MockAuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- MockPriceService ---
type MockPriceService struct {
	mock.Mock
}

func (m *MockPriceService) ListPrices(ctx context.Context) ([]domain.PriceRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceRecord), args.Error(1)
}

func (m *MockPriceService) CurrentPrices(ctx context.Context, date time.Time) ([]dto.CurrentPrice, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CurrentPrice), args.Error(1)
}

func (m *MockPriceService) CreatePrice(ctx context.Context, req dto.CreatePriceRequest, creatorUserID string) (*domain.PriceRecord, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceRecord), args.Error(1)
}

func (m *MockPriceService) DeletePrice(ctx context.Context, priceID string, userID string) error {
	return m.Called(ctx, priceID, userID).Error(0)
}

var _ portssvc.PriceSvcFacade = (*MockPriceService)(nil)

// --- MockDeliveryService ---
type MockDeliveryService struct {
	mock.Mock
}

func (m *MockDeliveryService) GetDelivery(ctx context.Context, deliveryID int64, viewer domain.Viewer) (*domain.Delivery, error) {
	args := m.Called(ctx, deliveryID, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Delivery), args.Error(1)
}

func (m *MockDeliveryService) GetDeliveryByBL(ctx context.Context, blNumber string, viewer domain.Viewer) (*domain.Delivery, error) {
	args := m.Called(ctx, blNumber, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Delivery), args.Error(1)
}

func (m *MockDeliveryService) ListDeliveries(ctx context.Context, params dto.ListDeliveriesParams, viewer domain.Viewer) ([]domain.Delivery, error) {
	args := m.Called(ctx, params, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Delivery), args.Error(1)
}

func (m *MockDeliveryService) OpenDocument(ctx context.Context, deliveryID int64, kind domain.DocumentKind, viewer domain.Viewer) (io.ReadCloser, string, error) {
	args := m.Called(ctx, deliveryID, kind, viewer)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

func (m *MockDeliveryService) CreateDelivery(ctx context.Context, req dto.CreateDeliveryRequest, documents []dto.DocumentUpload, creatorUserID string) (*domain.Delivery, error) {
	args := m.Called(ctx, req, documents, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Delivery), args.Error(1)
}

var _ portssvc.DeliverySvcFacade = (*MockDeliveryService)(nil)

// --- MockReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) DeliveryRecap(ctx context.Context, params dto.DeliveryRecapParams, viewer domain.Viewer) (*dto.DeliveryRecap, error) {
	args := m.Called(ctx, params, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DeliveryRecap), args.Error(1)
}

func (m *MockReportingService) MonthlyMemo(ctx context.Context, params dto.MemoParams, viewer domain.Viewer) (*dto.MonthlyMemo, error) {
	args := m.Called(ctx, params, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MonthlyMemo), args.Error(1)
}

func (m *MockReportingService) DeliveryValuation(ctx context.Context, delivery domain.Delivery) (*domain.DeliveryValuation, error) {
	args := m.Called(ctx, delivery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryValuation), args.Error(1)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

// --- MockExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) RecapWorkbook(ctx context.Context, params dto.DeliveryRecapParams, viewer domain.Viewer) (*portssvc.ExportedFile, error) {
	args := m.Called(ctx, params, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ExportedFile), args.Error(1)
}

func (m *MockExportService) DeliverySummaryPDF(ctx context.Context, deliveryID int64, viewer domain.Viewer) (*portssvc.ExportedFile, error) {
	args := m.Called(ctx, deliveryID, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ExportedFile), args.Error(1)
}

func (m *MockExportService) MemoPDF(ctx context.Context, params dto.MemoParams, viewer domain.Viewer) (*portssvc.ExportedFile, error) {
	args := m.Called(ctx, params, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ExportedFile), args.Error(1)
}

var _ portssvc.ExportSvc = (*MockExportService)(nil)

// --- MockReferenceService ---
type MockReferenceService struct {
	mock.Mock
}

func (m *MockReferenceService) ListCommercials(ctx context.Context) ([]domain.Commercial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Commercial), args.Error(1)
}

func (m *MockReferenceService) ListSites(ctx context.Context, commercialID string) ([]domain.Site, error) {
	args := m.Called(ctx, commercialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Site), args.Error(1)
}

func (m *MockReferenceService) ListCarriers(ctx context.Context) ([]domain.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Carrier), args.Error(1)
}

func (m *MockReferenceService) ListDrivers(ctx context.Context, carrierID string) ([]domain.Driver, error) {
	args := m.Called(ctx, carrierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Driver), args.Error(1)
}

func (m *MockReferenceService) ListTractors(ctx context.Context, carrierID string) ([]domain.Tractor, error) {
	args := m.Called(ctx, carrierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tractor), args.Error(1)
}

func (m *MockReferenceService) ListTanks(ctx context.Context, carrierID string) ([]domain.Tank, error) {
	args := m.Called(ctx, carrierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tank), args.Error(1)
}

func (m *MockReferenceService) ListDepots(ctx context.Context) ([]domain.Depot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Depot), args.Error(1)
}

func (m *MockReferenceService) ListProducts(ctx context.Context) []domain.Product {
	return m.Called(ctx).Get(0).([]domain.Product)
}

func (m *MockReferenceService) CreateDriver(ctx context.Context, req dto.CreateDriverRequest) (*domain.Driver, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *MockReferenceService) CreateTractor(ctx context.Context, req dto.CreateVehicleRequest) (*domain.Tractor, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tractor), args.Error(1)
}

func (m *MockReferenceService) CreateTank(ctx context.Context, req dto.CreateVehicleRequest) (*domain.Tank, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tank), args.Error(1)
}

func (m *MockReferenceService) ImportReferenceData(ctx context.Context, data domain.ReferenceData) (*dto.ImportSummary, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImportSummary), args.Error(1)
}

var _ portssvc.ReferenceSvcFacade = (*MockReferenceService)(nil)

// --- MockUserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	return m.Called(ctx, userID, deleterUserID).Error(0)
}

func (m *MockUserService) EnsureAdmin(ctx context.Context, username, password string) error {
	return m.Called(ctx, username, password).Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)
