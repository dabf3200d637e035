package valuation_test

import (
	"testing"
	"time"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/core/valuation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func price(id, product string, amount int64, from, to time.Time, recorded time.Time) domain.PriceRecord {
	return domain.PriceRecord{
		PriceID:    id,
		ProductID:  product,
		Price:      decimal.NewFromInt(amount),
		ValidFrom:  from,
		ValidTo:    to,
		RecordedAt: recorded,
	}
}

func januaryPrices() []domain.PriceRecord {
	rec := date(2024, 12, 20)
	return []domain.PriceRecord{
		price("p1", "PDT1", 800, date(2025, 1, 1), date(2025, 1, 31), rec),
		price("p2", "PDT2", 700, date(2025, 1, 1), date(2025, 1, 31), rec),
		price("p3", "PDT3", 600, date(2025, 1, 1), date(2025, 1, 31), rec),
	}
}

func TestPriceResolver_Resolve(t *testing.T) {
	records := []domain.PriceRecord{
		price("a", "PDT1", 800, date(2025, 1, 1), date(2025, 1, 31), date(2024, 12, 1)),
		price("b", "PDT1", 820, date(2025, 1, 15), date(2025, 2, 15), date(2024, 12, 2)),
		price("c", "PDT2", 700, date(2025, 1, 1), date(2025, 1, 31), date(2024, 12, 1)),
		price("d", "PDT2", 710, date(2025, 1, 1), date(2025, 1, 31), date(2024, 12, 5)),
	}
	resolver := valuation.NewPriceResolver(records)

	tests := []struct {
		name    string
		product string
		on      time.Time
		want    int64
		missing bool
	}{
		{"inside single window", "PDT1", date(2025, 1, 10), 800, false},
		{"window start inclusive", "PDT1", date(2025, 1, 1), 800, false},
		{"overlap picks latest start", "PDT1", date(2025, 1, 20), 820, false},
		{"overlap start day", "PDT1", date(2025, 1, 15), 820, false},
		{"window end inclusive", "PDT1", date(2025, 2, 15), 820, false},
		{"after every window", "PDT1", date(2025, 2, 16), 0, true},
		{"same start picks latest recorded", "PDT2", date(2025, 1, 5), 710, false},
		{"unknown product", "PDT9", date(2025, 1, 5), 0, true},
		{"empty product", "", date(2025, 1, 5), 0, true},
		{"time of day ignored", "PDT1", time.Date(2025, 1, 31, 18, 30, 0, 0, time.UTC), 820, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.Resolve(tt.product, tt.on)
			if tt.missing {
				require.ErrorIs(t, err, apperrors.ErrPriceNotFound)
				var pnf *apperrors.PriceNotFoundError
				require.ErrorAs(t, err, &pnf)
				assert.Equal(t, tt.product, pnf.ProductID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, decimal.NewFromInt(tt.want).String(), got.String())
		})
	}
}

func TestPriceResolver_EmptyHistory(t *testing.T) {
	_, err := valuation.NewPriceResolver(nil).Resolve("PDT1", date(2025, 1, 1))
	assert.ErrorIs(t, err, apperrors.ErrPriceNotFound)
}

func TestValuate(t *testing.T) {
	tests := []struct {
		name          string
		compartments  []domain.Compartment
		price         int64
		wantDelivered int64
		wantShortage  int64
		wantValue     string
	}{
		{
			name: "reimbursable shortage is valued",
			compartments: []domain.Compartment{
				{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkReimbursable},
			},
			price:         800,
			wantDelivered: 10000,
			wantShortage:  50,
			wantValue:     "40000",
		},
		{
			name: "non reimbursable shortage is ignored",
			compartments: []domain.Compartment{
				{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkNonReimbursable},
			},
			price:         800,
			wantDelivered: 10000,
			wantShortage:  0,
			wantValue:     "0",
		},
		{
			name: "several compartments of mixed remarks and products",
			compartments: []domain.Compartment{
				{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkReimbursable},
				{Number: 2, ProductID: "PDT1", VolumeDelivered: 5000, VolumeShortage: 20, Remark: domain.RemarkReimbursable},
				{Number: 3, ProductID: "PDT1", VolumeDelivered: 3000, VolumeShortage: 99, Remark: "free text"},
				{Number: 4, ProductID: "PDT2", VolumeDelivered: 7000, VolumeShortage: 40, Remark: domain.RemarkReimbursable},
			},
			price:         800,
			wantDelivered: 18000,
			wantShortage:  70,
			wantValue:     "56000",
		},
		{
			name:          "no compartments",
			compartments:  nil,
			price:         800,
			wantDelivered: 0,
			wantShortage:  0,
			wantValue:     "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := valuation.Valuate(tt.compartments, "PDT1", decimal.NewFromInt(tt.price))
			require.NoError(t, err)
			assert.Equal(t, tt.wantDelivered, got.VolumeDelivered)
			assert.Equal(t, tt.wantShortage, got.VolumeShortage)
			assert.Equal(t, tt.wantValue, got.ShortageValue.String())
		})
	}
}

func TestValuate_KeepsFullPrecision(t *testing.T) {
	compartments := []domain.Compartment{
		{Number: 1, ProductID: "PDT1", VolumeDelivered: 1000, VolumeShortage: 3, Remark: domain.RemarkReimbursable},
	}
	got, err := valuation.Valuate(compartments, "PDT1", decimal.RequireFromString("812.345"))
	require.NoError(t, err)
	assert.Equal(t, "2437.035", got.ShortageValue.String())
}

func TestValuate_InvalidInput(t *testing.T) {
	_, err := valuation.Valuate(nil, "PDT1", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	negative := []domain.Compartment{{Number: 1, ProductID: "PDT1", VolumeDelivered: 100, VolumeShortage: -5, Remark: domain.RemarkReimbursable}}
	_, err = valuation.Valuate(negative, "PDT1", decimal.NewFromInt(800))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func delivery(id int64, on time.Time, carrier, site string, compartments ...domain.Compartment) domain.Delivery {
	return domain.Delivery{
		DeliveryID:     id,
		Date:           on,
		OrderReference: "CMD" + string(rune('0'+id)),
		BLNumber:       "BL" + string(rune('0'+id)),
		CarrierID:      carrier,
		CarrierName:    "Carrier " + carrier,
		SiteID:         site,
		SiteName:       "Station " + site,
		AccountNumber:  "ACC-" + site,
		Compartments:   compartments,
	}
}

func TestAggregator_ValuateDelivery(t *testing.T) {
	agg := valuation.NewAggregator(domain.DefaultProducts, valuation.NewPriceResolver(januaryPrices()))
	d := delivery(1, date(2025, 1, 10), "T1", "S1",
		domain.Compartment{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkReimbursable},
		domain.Compartment{Number: 2, ProductID: "PDT2", VolumeDelivered: 8000, VolumeShortage: 10, Remark: domain.RemarkReimbursable},
	)

	row, err := agg.ValuateDelivery(d)
	require.NoError(t, err)
	require.Len(t, row.Products, 3)
	assert.Equal(t, "PDT1", row.Products[0].ProductID)
	assert.Equal(t, "Super", row.Products[0].ProductName)
	assert.Equal(t, "40000", row.Products[0].ShortageValue.String())
	assert.Equal(t, "7000", row.Products[1].ShortageValue.String())
	assert.Equal(t, "0", row.Products[2].ShortageValue.String())
	assert.Equal(t, int64(18000), row.TotalDelivered())
	assert.Equal(t, int64(60), row.TotalShortage())
	assert.Equal(t, "47000", row.TotalValue().String())
}

func TestAggregator_DeliveryRows_SkipsMissingPrice(t *testing.T) {
	agg := valuation.NewAggregator(domain.DefaultProducts, valuation.NewPriceResolver(januaryPrices()))
	deliveries := []domain.Delivery{
		delivery(1, date(2025, 1, 10), "T1", "S1",
			domain.Compartment{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkReimbursable}),
		delivery(2, date(2025, 2, 1), "T1", "S1",
			domain.Compartment{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkReimbursable}),
	}

	rows, skipped, err := agg.DeliveryRows(deliveries)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].Delivery.DeliveryID)
	require.Len(t, skipped, 1)
	assert.Equal(t, int64(2), skipped[0].DeliveryID)
	assert.Equal(t, "CMD2", skipped[0].OrderReference)
	assert.Equal(t, "BL2", skipped[0].BLNumber)
	assert.Equal(t, date(2025, 2, 1), skipped[0].Date)
	assert.Equal(t, "PDT1", skipped[0].ProductID)
	assert.Contains(t, skipped[0].Reason, "no price registered")
}

func TestAggregator_DeliveryRows_InvalidInputFails(t *testing.T) {
	agg := valuation.NewAggregator(domain.DefaultProducts, valuation.NewPriceResolver(januaryPrices()))
	bad := delivery(1, date(2025, 1, 10), "T1", "S1",
		domain.Compartment{Number: 1, ProductID: "PDT1", VolumeDelivered: -10, Remark: domain.RemarkReimbursable})

	_, _, err := agg.DeliveryRows([]domain.Delivery{bad})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAggregator_InvalidInputBeatsMissingPrice(t *testing.T) {
	agg := valuation.NewAggregator(domain.DefaultProducts, valuation.NewPriceResolver(nil))
	bad := delivery(1, date(2025, 1, 10), "T1", "S1",
		domain.Compartment{Number: 1, ProductID: "PDT1", VolumeDelivered: -10, Remark: domain.RemarkReimbursable})

	rows, skipped, err := agg.DeliveryRows([]domain.Delivery{bad})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.NotErrorIs(t, err, apperrors.ErrPriceNotFound)
	assert.Nil(t, rows)
	assert.Nil(t, skipped)
}

func TestAggregator_ValuateDelivery_ChecksOffCatalogCompartments(t *testing.T) {
	agg := valuation.NewAggregator(domain.DefaultProducts, valuation.NewPriceResolver(januaryPrices()))
	d := delivery(1, date(2025, 1, 10), "T1", "S1",
		domain.Compartment{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkReimbursable},
		domain.Compartment{Number: 2, ProductID: "PDT9", VolumeDelivered: -10, VolumeShortage: -5, Remark: domain.RemarkReimbursable},
	)

	_, err := agg.ValuateDelivery(d)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAggregator_Aggregate(t *testing.T) {
	agg := valuation.NewAggregator(domain.DefaultProducts, valuation.NewPriceResolver(januaryPrices()))
	deliveries := []domain.Delivery{
		delivery(1, date(2025, 1, 5), "T1", "S1",
			domain.Compartment{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkReimbursable}),
		delivery(2, date(2025, 1, 31), "T1", "S2",
			domain.Compartment{Number: 1, ProductID: "PDT3", VolumeDelivered: 5000, VolumeShortage: 25, Remark: domain.RemarkReimbursable}),
		delivery(3, date(2025, 1, 20), "T2", "S1",
			domain.Compartment{Number: 1, ProductID: "PDT2", VolumeDelivered: 9000, VolumeShortage: 40, Remark: domain.RemarkNonReimbursable}),
		delivery(4, date(2025, 2, 1), "T1", "S1",
			domain.Compartment{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkReimbursable}),
		delivery(5, date(2024, 12, 31), "T1", "S1",
			domain.Compartment{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkReimbursable}),
	}
	period := domain.Period{Start: date(2025, 1, 1), End: date(2025, 1, 31)}

	report, err := agg.Aggregate(deliveries, period)
	require.NoError(t, err)

	require.Len(t, report.Rows, 3)
	assert.Empty(t, report.Skipped)

	require.Len(t, report.Carriers, 2)
	assert.Equal(t, "T1", report.Carriers[0].CarrierID)
	assert.Equal(t, "Carrier T1", report.Carriers[0].CarrierName)
	assert.Equal(t, 2, report.Carriers[0].DeliveryCount)
	assert.Equal(t, int64(75), report.Carriers[0].VolumeShortage)
	assert.Equal(t, "55000", report.Carriers[0].ShortageValue.String())
	assert.Equal(t, "T2", report.Carriers[1].CarrierID)
	assert.Equal(t, "0", report.Carriers[1].ShortageValue.String())

	require.Len(t, report.Sites, 2)
	assert.Equal(t, "S1", report.Sites[0].SiteID)
	assert.Equal(t, "ACC-S1", report.Sites[0].AccountNumber)
	assert.Equal(t, "40000", report.Sites[0].ShortageValue.String())
	assert.Equal(t, "S2", report.Sites[1].SiteID)
	assert.Equal(t, "15000", report.Sites[1].ShortageValue.String())

	assert.Equal(t, int64(75), report.VolumeShortage)
	assert.Equal(t, "55000", report.ShortageValue.String())
}

func TestAggregator_Aggregate_ReportsSkipped(t *testing.T) {
	agg := valuation.NewAggregator(domain.DefaultProducts, valuation.NewPriceResolver(januaryPrices()))
	deliveries := []domain.Delivery{
		delivery(7, date(2025, 2, 1), "T1", "S1",
			domain.Compartment{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkReimbursable}),
	}

	report, err := agg.Aggregate(deliveries, domain.Period{Start: date(2025, 2, 1), End: date(2025, 2, 28)})
	require.NoError(t, err)
	assert.Empty(t, report.Rows)
	assert.Empty(t, report.Carriers)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, int64(7), report.Skipped[0].DeliveryID)
	assert.True(t, report.ShortageValue.IsZero())
}

func TestAggregator_Aggregate_Idempotent(t *testing.T) {
	agg := valuation.NewAggregator(domain.DefaultProducts, valuation.NewPriceResolver(januaryPrices()))
	deliveries := []domain.Delivery{
		delivery(1, date(2025, 1, 5), "T2", "S2",
			domain.Compartment{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkReimbursable}),
		delivery(2, date(2025, 1, 6), "T1", "S1",
			domain.Compartment{Number: 1, ProductID: "PDT2", VolumeDelivered: 10000, VolumeShortage: 10, Remark: domain.RemarkReimbursable}),
	}
	period := domain.MonthPeriod(2025, time.January)

	first, err := agg.Aggregate(deliveries, period)
	require.NoError(t, err)
	second, err := agg.Aggregate(deliveries, period)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
