package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductValuation is the delivered volume, reimbursable shortage and its value
// for one product of one delivery.
type ProductValuation struct {
	ProductID       string          `json:"productID"`
	ProductName     string          `json:"productName"`
	Price           decimal.Decimal `json:"price"`
	VolumeDelivered int64           `json:"volumeDelivered"`
	VolumeShortage  int64           `json:"volumeShortage"`
	ShortageValue   decimal.Decimal `json:"shortageValue"`
}

// DeliveryValuation is one recap row: a delivery with its per-product valuations
// in catalog order.
type DeliveryValuation struct {
	Delivery Delivery           `json:"delivery"`
	Products []ProductValuation `json:"products"`
}

// TotalDelivered sums delivered volume across products.
func (v DeliveryValuation) TotalDelivered() int64 {
	var total int64
	for _, p := range v.Products {
		total += p.VolumeDelivered
	}
	return total
}

// TotalShortage sums reimbursable shortage volume across products.
func (v DeliveryValuation) TotalShortage() int64 {
	var total int64
	for _, p := range v.Products {
		total += p.VolumeShortage
	}
	return total
}

// TotalValue sums shortage value across products.
func (v DeliveryValuation) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range v.Products {
		total = total.Add(p.ShortageValue)
	}
	return total
}

// Product returns the valuation of productID, if present.
func (v DeliveryValuation) Product(productID string) (ProductValuation, bool) {
	for _, p := range v.Products {
		if p.ProductID == productID {
			return p, true
		}
	}
	return ProductValuation{}, false
}

// SkippedDelivery is a warning for a delivery excluded from a report.
type SkippedDelivery struct {
	DeliveryID     int64     `json:"deliveryID"`
	OrderReference string    `json:"orderReference"`
	BLNumber       string    `json:"blNumber"`
	Date           time.Time `json:"date"`
	ProductID      string    `json:"productID"`
	Reason         string    `json:"reason"`
}

// CarrierTotal accumulates shortages charged to one carrier.
type CarrierTotal struct {
	CarrierID      string          `json:"carrierID"`
	CarrierName    string          `json:"carrierName"`
	DeliveryCount  int             `json:"deliveryCount"`
	VolumeShortage int64           `json:"volumeShortage"`
	ShortageValue  decimal.Decimal `json:"shortageValue"`
}

// SiteTotal accumulates shortages for one site, keyed by site and account number.
type SiteTotal struct {
	SiteID         string          `json:"siteID"`
	SiteName       string          `json:"siteName"`
	AccountNumber  string          `json:"accountNumber"`
	DeliveryCount  int             `json:"deliveryCount"`
	VolumeShortage int64           `json:"volumeShortage"`
	ShortageValue  decimal.Decimal `json:"shortageValue"`
}

// AggregateReport is the result of valuating all deliveries of a period.
type AggregateReport struct {
	Period         Period              `json:"period"`
	Rows           []DeliveryValuation `json:"rows"`
	Carriers       []CarrierTotal      `json:"carriers"`
	Sites          []SiteTotal         `json:"sites"`
	Skipped        []SkippedDelivery   `json:"skipped"`
	VolumeShortage int64               `json:"volumeShortage"`
	ShortageValue  decimal.Decimal     `json:"shortageValue"`
}
