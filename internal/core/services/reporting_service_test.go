package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/core/services"
	"github.com/fuelsquad/manquants_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockDeliveries *MockDeliveryRepository
	mockPrices     *MockPriceRepository
	service        portssvc.ReportingSvc
	admin          domain.Viewer
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockDeliveries = new(MockDeliveryRepository)
	suite.mockPrices = new(MockPriceRepository)
	suite.service = services.NewReportingService(suite.mockDeliveries, suite.mockPrices, catalog)
	suite.admin = domain.Viewer{UserID: "u-admin", Role: domain.RoleAdmin}
}

// januaryDeliveries charges T1 40000 then 15000 and T2 nothing reimbursable.
func januaryDeliveries() []domain.Delivery {
	return []domain.Delivery{
		delivery(1, day(2025, time.January, 15), "T1",
			compartment(1, "PDT1", 10000, 50, domain.RemarkReimbursable)),
		delivery(2, day(2025, time.January, 20), "T1",
			compartment(1, "PDT2", 8000, 30, domain.RemarkReimbursable),
			compartment(2, "PDT3", 4000, 10, domain.RemarkNonReimbursable)),
		delivery(3, day(2025, time.January, 31), "T2",
			compartment(1, "PDT1", 10000, 50, domain.RemarkNonReimbursable)),
	}
}

func (suite *ReportingServiceTestSuite) TestMonthlyMemo_TotalsByCarrierAndSite() {
	ctx := context.Background()
	suite.mockDeliveries.On("ListDeliveries", ctx, mock.MatchedBy(func(f domain.DeliveryFilter) bool {
		return f.Period != nil && f.Period.Start.Equal(day(2025, time.January, 1)) &&
			f.Period.End.Equal(day(2025, time.January, 31)) && f.CarrierID == ""
	})).Return(januaryDeliveries(), nil).Once()
	suite.mockPrices.On("ListPricesForProducts", ctx, catalogIDs).Return(januaryPrices(), nil).Once()

	memo, err := suite.service.MonthlyMemo(ctx, dto.MemoParams{Month: "2025-01"}, suite.admin)

	suite.Require().NoError(err)
	suite.Equal("Janvier 2025", memo.Label)
	report := memo.Report
	suite.Require().Len(report.Carriers, 2)
	suite.Equal("T1", report.Carriers[0].CarrierID)
	suite.Equal(2, report.Carriers[0].DeliveryCount)
	suite.Equal(int64(80), report.Carriers[0].VolumeShortage)
	suite.True(decimal.NewFromInt(55000).Equal(report.Carriers[0].ShortageValue), report.Carriers[0].ShortageValue.String())
	suite.True(report.Carriers[1].ShortageValue.IsZero())

	suite.Require().Len(report.Sites, 1)
	suite.Equal("411001", report.Sites[0].AccountNumber)
	suite.Equal(3, report.Sites[0].DeliveryCount)
	suite.True(decimal.NewFromInt(55000).Equal(report.ShortageValue))
	suite.Empty(report.Skipped)
	suite.mockDeliveries.AssertExpectations(suite.T())
	suite.mockPrices.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlyMemo_Idempotent() {
	ctx := context.Background()
	suite.mockDeliveries.On("ListDeliveries", ctx, mock.Anything).Return(januaryDeliveries(), nil).Twice()
	suite.mockPrices.On("ListPricesForProducts", ctx, catalogIDs).Return(januaryPrices(), nil).Twice()

	first, err := suite.service.MonthlyMemo(ctx, dto.MemoParams{Month: "2025-01"}, suite.admin)
	suite.Require().NoError(err)
	second, err := suite.service.MonthlyMemo(ctx, dto.MemoParams{Month: "2025-01"}, suite.admin)
	suite.Require().NoError(err)

	suite.Equal(dto.ToMemoResponse(first), dto.ToMemoResponse(second))
}

func (suite *ReportingServiceTestSuite) TestMonthlyMemo_InvalidMonth() {
	for _, month := range []string{"", "2025-13", "janvier", "2025/01"} {
		_, err := suite.service.MonthlyMemo(context.Background(), dto.MemoParams{Month: month}, suite.admin)
		suite.ErrorIs(err, apperrors.ErrValidation, month)
	}
	suite.mockDeliveries.AssertNotCalled(suite.T(), "ListDeliveries", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestMonthlyMemo_CarrierSeesOwnTotals() {
	ctx := context.Background()
	viewer := domain.Viewer{UserID: "u-t2", Role: domain.RoleCarrier, CarrierID: "T2"}
	suite.mockDeliveries.On("ListDeliveries", ctx, mock.MatchedBy(func(f domain.DeliveryFilter) bool {
		return f.CarrierID == "T2"
	})).Return(januaryDeliveries()[2:], nil).Once()
	suite.mockPrices.On("ListPricesForProducts", ctx, catalogIDs).Return(januaryPrices(), nil).Once()

	memo, err := suite.service.MonthlyMemo(ctx, dto.MemoParams{Month: "2025-01"}, viewer)

	suite.Require().NoError(err)
	suite.Require().Len(memo.Report.Carriers, 1)
	suite.Equal("T2", memo.Report.Carriers[0].CarrierID)
	suite.mockDeliveries.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDeliveryRecap_SkipsDeliveryWithoutPrice() {
	ctx := context.Background()
	deliveries := append(januaryDeliveries(),
		delivery(4, day(2025, time.February, 1), "T1",
			compartment(1, "PDT1", 10000, 50, domain.RemarkReimbursable)))
	suite.mockDeliveries.On("ListDeliveries", ctx, mock.Anything).Return(deliveries, nil).Once()
	suite.mockPrices.On("ListPricesForProducts", ctx, catalogIDs).Return(januaryPrices(), nil).Once()

	recap, err := suite.service.DeliveryRecap(ctx, dto.DeliveryRecapParams{From: "2025-01-01", To: "2025-02-28"}, suite.admin)

	suite.Require().NoError(err)
	suite.Len(recap.Rows, 3)
	suite.Require().Len(recap.Skipped, 1)
	suite.Equal(int64(4), recap.Skipped[0].DeliveryID)
	suite.Equal("PDT1", recap.Skipped[0].ProductID)

	first := recap.Rows[0]
	suite.Equal(int64(10000), first.TotalDelivered())
	suite.Equal(int64(50), first.TotalShortage())
	suite.True(decimal.NewFromInt(40000).Equal(first.TotalValue()))

	third := recap.Rows[2]
	suite.Equal(int64(10000), third.TotalDelivered())
	suite.Equal(int64(0), third.TotalShortage())
}

func (suite *ReportingServiceTestSuite) TestDeliveryRecap_InvalidPeriod() {
	_, err := suite.service.DeliveryRecap(context.Background(), dto.DeliveryRecapParams{From: "2025-02-01", To: "2025-01-01"}, suite.admin)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestDeliveryRecap_PriceHistoryUnavailable() {
	ctx := context.Background()
	suite.mockDeliveries.On("ListDeliveries", ctx, mock.Anything).Return(januaryDeliveries(), nil).Once()
	suite.mockPrices.On("ListPricesForProducts", ctx, catalogIDs).Return(nil, errors.New("connection refused")).Once()

	recap, err := suite.service.DeliveryRecap(ctx, dto.DeliveryRecapParams{From: "2025-01-01", To: "2025-01-31"}, suite.admin)

	suite.Nil(recap)
	suite.ErrorContains(err, "connection refused")
}

func (suite *ReportingServiceTestSuite) TestDeliveryValuation_MissingPrice() {
	ctx := context.Background()
	suite.mockPrices.On("ListPricesForProducts", ctx, catalogIDs).Return(januaryPrices(), nil).Once()

	v, err := suite.service.DeliveryValuation(ctx, delivery(9, day(2025, time.February, 1), "T1"))

	suite.Nil(v)
	suite.ErrorIs(err, apperrors.ErrPriceNotFound)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
