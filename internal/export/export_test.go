package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRow() domain.DeliveryValuation {
	d := domain.Delivery{
		DeliveryID:     7,
		Date:           time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		OrderReference: "CMD-001",
		BLNumber:       "BL-42",
		DepotID:        "DEP1",
		CarrierName:    "Trans Ouest",
		SiteName:       "Station Plateau",
		Tractor:        "AB-123",
		Tank:           "CI-9",
		Driver:         "Kouassi",
		Compartments: []domain.Compartment{
			{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkReimbursable},
		},
	}
	return domain.DeliveryValuation{
		Delivery: d,
		Products: []domain.ProductValuation{
			{ProductID: "PDT1", ProductName: "Super", Price: decimal.NewFromInt(800), VolumeDelivered: 10000, VolumeShortage: 50, ShortageValue: decimal.NewFromInt(40000)},
			{ProductID: "PDT2", ProductName: "Diesel", Price: decimal.NewFromInt(700), ShortageValue: decimal.Zero},
			{ProductID: "PDT3", ProductName: "Pétrole", Price: decimal.NewFromInt(600), ShortageValue: decimal.Zero},
		},
	}
}

func TestBuildRecapXLSX(t *testing.T) {
	content, err := export.BuildRecapXLSX(domain.DefaultProducts, []domain.DeliveryValuation{sampleRow()})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{export.RecapSheet}, f.GetSheetList())

	raw := excelize.Options{RawCellValue: true}
	get := func(cell string) string {
		v, err := f.GetCellValue(export.RecapSheet, cell, raw)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "INFORMATION GÉNÉRALE", get("A1"))
	assert.Equal(t, "VOLUME LIVRÉ", get("J1"))
	assert.Equal(t, "MANQUANT EN LITRE", get("N1"))
	assert.Equal(t, "MANQUANT EN XOF", get("R1"))
	assert.Equal(t, "Super (L)", get("J2"))
	assert.Equal(t, "Total (XOF)", get("U2"))

	assert.Equal(t, "7", get("A3"))
	assert.Equal(t, "2025-01-15", get("B3"))
	assert.Equal(t, "BL-42", get("D3"))
	assert.Equal(t, "10000", get("J3"))
	assert.Equal(t, "50", get("N3"))
	assert.Equal(t, "40000", get("R3"))
	assert.Equal(t, "40000", get("U3"))

	merged, err := f.GetMergeCells(export.RecapSheet)
	require.NoError(t, err)
	require.Len(t, merged, 4)
	spans := map[string]string{}
	for _, m := range merged {
		spans[m.GetStartAxis()] = m.GetEndAxis()
	}
	assert.Equal(t, map[string]string{"A1": "I1", "J1": "M1", "N1": "Q1", "R1": "U1"}, spans)
}

func TestBuildRecapXLSX_NoRows(t *testing.T) {
	content, err := export.BuildRecapXLSX(domain.DefaultProducts, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.RecapSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestBuildDeliverySummaryPDF(t *testing.T) {
	row := sampleRow()

	withValues, err := export.BuildDeliverySummaryPDF(row.Delivery, domain.DefaultProducts, &row)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(withValues, []byte("%PDF-")))

	withoutValues, err := export.BuildDeliverySummaryPDF(row.Delivery, domain.DefaultProducts, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(withoutValues, []byte("%PDF-")))

	assert.Equal(t, "Livraison_Station Plateau_BL BL-42 du 2025-01-15.pdf", export.DeliverySummaryFileName(row.Delivery))
}

func TestBuildMemoPDF(t *testing.T) {
	row := sampleRow()
	report := &domain.AggregateReport{
		Period: domain.MonthPeriod(2025, time.January),
		Rows:   []domain.DeliveryValuation{row},
		Carriers: []domain.CarrierTotal{
			{CarrierID: "T1", CarrierName: "Trans Ouest", DeliveryCount: 1, VolumeShortage: 50, ShortageValue: decimal.NewFromInt(40000)},
		},
		Sites: []domain.SiteTotal{
			{SiteID: "S1", SiteName: "Station Plateau", AccountNumber: "411001", DeliveryCount: 1, VolumeShortage: 50, ShortageValue: decimal.NewFromInt(40000)},
		},
		Skipped: []domain.SkippedDelivery{
			{DeliveryID: 9, OrderReference: "CMD-9", BLNumber: "BL-9", Date: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), ProductID: "PDT2", Reason: "no price"},
		},
		VolumeShortage: 50,
		ShortageValue:  decimal.NewFromInt(40000),
	}

	content, err := export.BuildMemoPDF("Janvier 2025", report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
	assert.Equal(t, "manquants hors freinte RETAIL-B2B Janvier 2025.pdf", export.MemoFileName("Janvier 2025"))
}
