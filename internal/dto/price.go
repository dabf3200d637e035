package dto

import (
	"time"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreatePriceRequest defines the structure for registering a selling price.
type CreatePriceRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	ValidFrom string          `json:"validFrom" binding:"required,datetime=2006-01-02"`
	ValidTo   string          `json:"validTo" binding:"required,datetime=2006-01-02"`
	// Replace deletes overlapping records instead of rejecting the request.
	Replace bool `json:"replace"`
}

// CurrentPricesParams selects the date of the "price in effect" view.
type CurrentPricesParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// PriceResponse defines the structure for API responses containing price details.
type PriceResponse struct {
	PriceID      string          `json:"priceID"`
	ProductID    string          `json:"productID"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"priceDisplay"`
	ValidFrom    string          `json:"validFrom"`
	ValidTo      string          `json:"validTo"`
	RecordedAt   time.Time       `json:"recordedAt"`
	RecordedBy   string          `json:"recordedBy"`
}

// ToPriceResponse converts a domain.PriceRecord to PriceResponse DTO
func ToPriceResponse(p *domain.PriceRecord) PriceResponse {
	return PriceResponse{
		PriceID:      p.PriceID,
		ProductID:    p.ProductID,
		Price:        p.Price,
		PriceDisplay: utils.FormatXOF(p.Price),
		ValidFrom:    p.ValidFrom.Format(domain.DateLayout),
		ValidTo:      p.ValidTo.Format(domain.DateLayout),
		RecordedAt:   p.RecordedAt,
		RecordedBy:   p.RecordedBy,
	}
}

// ToListPriceResponse converts a slice of price records.
func ToListPriceResponse(prices []domain.PriceRecord) []PriceResponse {
	responses := make([]PriceResponse, len(prices))
	for i := range prices {
		responses[i] = ToPriceResponse(&prices[i])
	}
	return responses
}

// CurrentPrice is the price in effect for one catalog product, if any.
type CurrentPrice struct {
	Product domain.Product
	Record  *domain.PriceRecord
}

// CurrentPriceResponse is one line of the "price in effect" view.
type CurrentPriceResponse struct {
	ProductID   string         `json:"productID"`
	ProductName string         `json:"productName"`
	Available   bool           `json:"available"`
	Price       *PriceResponse `json:"price,omitempty"`
}

// ToCurrentPriceResponses converts the price in effect per product.
func ToCurrentPriceResponses(current []CurrentPrice) []CurrentPriceResponse {
	responses := make([]CurrentPriceResponse, len(current))
	for i, c := range current {
		responses[i] = CurrentPriceResponse{
			ProductID:   c.Product.ProductID,
			ProductName: c.Product.Name,
			Available:   c.Record != nil,
		}
		if c.Record != nil {
			p := ToPriceResponse(c.Record)
			responses[i].Price = &p
		}
	}
	return responses
}

// PriceConflictResponse is returned when a new price overlaps existing records.
type PriceConflictResponse struct {
	Error     string          `json:"error"`
	Conflicts []PriceResponse `json:"conflicts"`
}
