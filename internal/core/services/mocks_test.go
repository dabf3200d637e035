package services_test

import (
	"context"
	"io"
	"time"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- MockPriceRepository ---
type MockPriceRepository struct {
	mock.Mock
}

func (m *MockPriceRepository) ListPrices(ctx context.Context) ([]domain.PriceRecord, error) {
	args := m.Called(ctx)
	var prices []domain.PriceRecord
	if args.Get(0) != nil {
		prices = args.Get(0).([]domain.PriceRecord)
	}
	return prices, args.Error(1)
}

func (m *MockPriceRepository) ListPricesForProducts(ctx context.Context, productIDs []string) ([]domain.PriceRecord, error) {
	args := m.Called(ctx, productIDs)
	var prices []domain.PriceRecord
	if args.Get(0) != nil {
		prices = args.Get(0).([]domain.PriceRecord)
	}
	return prices, args.Error(1)
}

func (m *MockPriceRepository) FindPriceByID(ctx context.Context, priceID string) (*domain.PriceRecord, error) {
	args := m.Called(ctx, priceID)
	var price *domain.PriceRecord
	if args.Get(0) != nil {
		price = args.Get(0).(*domain.PriceRecord)
	}
	return price, args.Error(1)
}

func (m *MockPriceRepository) FindOverlappingPrices(ctx context.Context, productID string, from, to time.Time) ([]domain.PriceRecord, error) {
	args := m.Called(ctx, productID, from, to)
	var prices []domain.PriceRecord
	if args.Get(0) != nil {
		prices = args.Get(0).([]domain.PriceRecord)
	}
	return prices, args.Error(1)
}

func (m *MockPriceRepository) SavePrice(ctx context.Context, record domain.PriceRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockPriceRepository) ReplacePrices(ctx context.Context, replacedIDs []string, record domain.PriceRecord) error {
	return m.Called(ctx, replacedIDs, record).Error(0)
}

func (m *MockPriceRepository) DeletePrice(ctx context.Context, priceID string) error {
	return m.Called(ctx, priceID).Error(0)
}

// --- MockDeliveryRepository ---
type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) FindDeliveryByID(ctx context.Context, deliveryID int64) (*domain.Delivery, error) {
	args := m.Called(ctx, deliveryID)
	var d *domain.Delivery
	if args.Get(0) != nil {
		d = args.Get(0).(*domain.Delivery)
	}
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) FindDeliveryByBL(ctx context.Context, blNumber string) (*domain.Delivery, error) {
	args := m.Called(ctx, blNumber)
	var d *domain.Delivery
	if args.Get(0) != nil {
		d = args.Get(0).(*domain.Delivery)
	}
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) ListDeliveries(ctx context.Context, filter domain.DeliveryFilter) ([]domain.Delivery, error) {
	args := m.Called(ctx, filter)
	var deliveries []domain.Delivery
	if args.Get(0) != nil {
		deliveries = args.Get(0).([]domain.Delivery)
	}
	return deliveries, args.Error(1)
}

func (m *MockDeliveryRepository) SaveDelivery(ctx context.Context, delivery domain.Delivery) (int64, error) {
	args := m.Called(ctx, delivery)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockReferenceRepository ---
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) ListCommercials(ctx context.Context) ([]domain.Commercial, error) {
	args := m.Called(ctx)
	var items []domain.Commercial
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Commercial)
	}
	return items, args.Error(1)
}

func (m *MockReferenceRepository) ListSites(ctx context.Context, commercialID string) ([]domain.Site, error) {
	args := m.Called(ctx, commercialID)
	var items []domain.Site
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Site)
	}
	return items, args.Error(1)
}

func (m *MockReferenceRepository) FindSiteByID(ctx context.Context, siteID string) (*domain.Site, error) {
	args := m.Called(ctx, siteID)
	var site *domain.Site
	if args.Get(0) != nil {
		site = args.Get(0).(*domain.Site)
	}
	return site, args.Error(1)
}

func (m *MockReferenceRepository) ListCarriers(ctx context.Context) ([]domain.Carrier, error) {
	args := m.Called(ctx)
	var items []domain.Carrier
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Carrier)
	}
	return items, args.Error(1)
}

func (m *MockReferenceRepository) FindCarrierByID(ctx context.Context, carrierID string) (*domain.Carrier, error) {
	args := m.Called(ctx, carrierID)
	var carrier *domain.Carrier
	if args.Get(0) != nil {
		carrier = args.Get(0).(*domain.Carrier)
	}
	return carrier, args.Error(1)
}

func (m *MockReferenceRepository) ListDrivers(ctx context.Context, carrierID string) ([]domain.Driver, error) {
	args := m.Called(ctx, carrierID)
	var items []domain.Driver
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Driver)
	}
	return items, args.Error(1)
}

func (m *MockReferenceRepository) ListTractors(ctx context.Context, carrierID string) ([]domain.Tractor, error) {
	args := m.Called(ctx, carrierID)
	var items []domain.Tractor
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Tractor)
	}
	return items, args.Error(1)
}

func (m *MockReferenceRepository) ListTanks(ctx context.Context, carrierID string) ([]domain.Tank, error) {
	args := m.Called(ctx, carrierID)
	var items []domain.Tank
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Tank)
	}
	return items, args.Error(1)
}

func (m *MockReferenceRepository) ListDepots(ctx context.Context) ([]domain.Depot, error) {
	args := m.Called(ctx)
	var items []domain.Depot
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Depot)
	}
	return items, args.Error(1)
}

func (m *MockReferenceRepository) NextReferenceID(ctx context.Context, kind domain.ReferenceKind) (string, error) {
	args := m.Called(ctx, kind)
	return args.String(0), args.Error(1)
}

func (m *MockReferenceRepository) SaveDriver(ctx context.Context, driver domain.Driver) error {
	return m.Called(ctx, driver).Error(0)
}

func (m *MockReferenceRepository) SaveTractor(ctx context.Context, tractor domain.Tractor) error {
	return m.Called(ctx, tractor).Error(0)
}

func (m *MockReferenceRepository) SaveTank(ctx context.Context, tank domain.Tank) error {
	return m.Called(ctx, tank).Error(0)
}

func (m *MockReferenceRepository) UpsertReferenceData(ctx context.Context, data domain.ReferenceData) error {
	return m.Called(ctx, data).Error(0)
}

func (m *MockReferenceRepository) SyncProducts(ctx context.Context, products []domain.Product) error {
	return m.Called(ctx, products).Error(0)
}

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string) error {
	return m.Called(ctx, userID, deletedBy).Error(0)
}

// --- MockDocumentStore ---
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Save(ctx context.Context, name string, contentType string, content io.Reader) (*domain.StoredDocument, error) {
	args := m.Called(ctx, name, contentType, content)
	var doc *domain.StoredDocument
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.StoredDocument)
	}
	return doc, args.Error(1)
}

func (m *MockDocumentStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	args := m.Called(ctx, ref)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	return rc, args.Error(1)
}

func (m *MockDocumentStore) Delete(ctx context.Context, ref string) error {
	return m.Called(ctx, ref).Error(0)
}
