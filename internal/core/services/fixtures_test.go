package services_test

import (
	"time"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var catalog = []domain.Product{
	{ProductID: "PDT1", Name: "Super"},
	{ProductID: "PDT2", Name: "Diesel"},
	{ProductID: "PDT3", Name: "Pétrole"},
}

var catalogIDs = []string{"PDT1", "PDT2", "PDT3"}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func price(id, product string, amount int64, from, to time.Time) domain.PriceRecord {
	return domain.PriceRecord{
		PriceID:    id,
		ProductID:  product,
		Price:      decimal.NewFromInt(amount),
		ValidFrom:  from,
		ValidTo:    to,
		RecordedAt: from,
		RecordedBy: "admin",
	}
}

// januaryPrices covers every catalog product for January 2025 only.
func januaryPrices() []domain.PriceRecord {
	from, to := day(2025, time.January, 1), day(2025, time.January, 31)
	return []domain.PriceRecord{
		price("p1", "PDT1", 800, from, to),
		price("p2", "PDT2", 500, from, to),
		price("p3", "PDT3", 600, from, to),
	}
}

func delivery(id int64, on time.Time, carrierID string, compartments ...domain.Compartment) domain.Delivery {
	return domain.Delivery{
		DeliveryID:     id,
		Date:           on,
		OrderReference: "CMD-" + decimal.NewFromInt(id).String(),
		BLNumber:       "BL-" + decimal.NewFromInt(id).String(),
		DepotID:        "DEP1",
		CarrierID:      carrierID,
		CarrierName:    "Carrier " + carrierID,
		SiteID:         "S1",
		SiteName:       "Station Plateau",
		AccountNumber:  "411001",
		Compartments:   compartments,
	}
}

func compartment(n int, product string, delivered, shortage int64, remark domain.Remark) domain.Compartment {
	return domain.Compartment{Number: n, ProductID: product, VolumeDelivered: delivered, VolumeShortage: shortage, Remark: remark}
}
