package dto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/utils"
	"github.com/shopspring/decimal"
)

// DeliveryRecapParams holds the recap table filters. From and To are required;
// the other fields narrow the listing further.
type DeliveryRecapParams struct {
	From           string `form:"from" binding:"required,datetime=2006-01-02"`
	To             string `form:"to" binding:"required,datetime=2006-01-02"`
	Date           string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	DeliveryID     string `form:"id"`
	OrderReference string `form:"order"`
	BLNumber       string `form:"bl"`
	DepotID        string `form:"depot"`
	CarrierID      string `form:"carrier"`
	Tractor        string `form:"tractor"`
	Tank           string `form:"tank"`
	Driver         string `form:"driver"`
}

// ToFilter converts the query parameters to a domain filter.
func (p DeliveryRecapParams) ToFilter() (domain.DeliveryFilter, error) {
	period, err := parsePeriod(p.From, p.To)
	if err != nil {
		return domain.DeliveryFilter{}, err
	}
	filter := domain.DeliveryFilter{
		Period:         period,
		OrderReference: p.OrderReference,
		BLNumber:       p.BLNumber,
		DepotID:        p.DepotID,
		CarrierID:      p.CarrierID,
		Tractor:        p.Tractor,
		Tank:           p.Tank,
		Driver:         p.Driver,
	}
	if p.Date != "" {
		on, err := domain.ParseDate(p.Date)
		if err != nil {
			return domain.DeliveryFilter{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, p.Date)
		}
		filter.Date = &on
	}
	if p.DeliveryID != "" {
		id, err := strconv.ParseInt(p.DeliveryID, 10, 64)
		if err != nil {
			return domain.DeliveryFilter{}, fmt.Errorf("%w: invalid delivery id %q", apperrors.ErrValidation, p.DeliveryID)
		}
		filter.DeliveryID = &id
	}
	return filter, nil
}

// MemoParams selects the month of a regularization memo, as YYYY-MM.
type MemoParams struct {
	Month string `form:"month" binding:"required"`
}

// ParseMonth returns the year and month of p.
func (p MemoParams) ParseMonth() (int, time.Month, error) {
	t, err := time.Parse("2006-01", p.Month)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month must be formatted YYYY-MM, got %q", apperrors.ErrValidation, p.Month)
	}
	return t.Year(), t.Month(), nil
}

// DeliveryRecap is the recap table of a filter: valuated rows and skipped deliveries.
type DeliveryRecap struct {
	Products []domain.Product
	Rows     []domain.DeliveryValuation
	Skipped  []domain.SkippedDelivery
}

// MonthlyMemo is the regularization memo of a month.
type MonthlyMemo struct {
	Year   int
	Month  time.Month
	Label  string
	Report *domain.AggregateReport
}

// ProductValuationResponse is one product column group of a recap row.
type ProductValuationResponse struct {
	ProductID       string          `json:"productID"`
	ProductName     string          `json:"productName"`
	Price           decimal.Decimal `json:"price"`
	VolumeDelivered int64           `json:"volumeDelivered"`
	VolumeShortage  int64           `json:"volumeShortage"`
	ShortageValue   decimal.Decimal `json:"shortageValue"`
}

// RecapRowResponse is one delivery line of the recap table.
type RecapRowResponse struct {
	DeliveryID     int64                      `json:"deliveryID"`
	Date           string                     `json:"date"`
	OrderReference string                     `json:"orderReference"`
	BLNumber       string                     `json:"blNumber"`
	DepotID        string                     `json:"depotID"`
	CarrierName    string                     `json:"carrierName"`
	SiteName       string                     `json:"siteName"`
	Tractor        string                     `json:"tractor"`
	Tank           string                     `json:"tank"`
	Driver         string                     `json:"driver"`
	Products       []ProductValuationResponse `json:"products"`
	TotalDelivered int64                      `json:"totalDelivered"`
	TotalShortage  int64                      `json:"totalShortage"`
	TotalValue     decimal.Decimal            `json:"totalValue"`
	TotalDisplay   string                     `json:"totalDisplay"`
}

// SkippedDeliveryResponse is a warning about a delivery left out of a report.
type SkippedDeliveryResponse struct {
	DeliveryID     int64  `json:"deliveryID"`
	OrderReference string `json:"orderReference"`
	BLNumber       string `json:"blNumber"`
	Date           string `json:"date"`
	ProductID      string `json:"productID"`
	Reason         string `json:"reason"`
}

// RecapResponse is the recap table returned by the API.
type RecapResponse struct {
	Rows           []RecapRowResponse        `json:"rows"`
	Skipped        []SkippedDeliveryResponse `json:"skipped"`
	TotalDelivered int64                     `json:"totalDelivered"`
	TotalShortage  int64                     `json:"totalShortage"`
	TotalValue     decimal.Decimal           `json:"totalValue"`
	TotalDisplay   string                    `json:"totalDisplay"`
}

// ToRecapResponse converts a recap to its API form.
func ToRecapResponse(recap *DeliveryRecap) RecapResponse {
	resp := RecapResponse{
		Rows:       make([]RecapRowResponse, len(recap.Rows)),
		Skipped:    ToSkippedResponses(recap.Skipped),
		TotalValue: decimal.Zero,
	}
	for i, row := range recap.Rows {
		d := row.Delivery
		r := RecapRowResponse{
			DeliveryID:     d.DeliveryID,
			Date:           d.Date.Format(domain.DateLayout),
			OrderReference: d.OrderReference,
			BLNumber:       d.BLNumber,
			DepotID:        d.DepotID,
			CarrierName:    d.CarrierName,
			SiteName:       d.SiteName,
			Tractor:        d.Tractor,
			Tank:           d.Tank,
			Driver:         d.Driver,
			Products:       make([]ProductValuationResponse, len(row.Products)),
			TotalDelivered: row.TotalDelivered(),
			TotalShortage:  row.TotalShortage(),
			TotalValue:     row.TotalValue(),
			TotalDisplay:   utils.FormatXOF(row.TotalValue()),
		}
		for j, p := range row.Products {
			r.Products[j] = ProductValuationResponse(p)
		}
		resp.Rows[i] = r
		resp.TotalDelivered += r.TotalDelivered
		resp.TotalShortage += r.TotalShortage
		resp.TotalValue = resp.TotalValue.Add(r.TotalValue)
	}
	resp.TotalDisplay = utils.FormatXOF(resp.TotalValue)
	return resp
}

// ToSkippedResponses converts skipped-delivery warnings.
func ToSkippedResponses(skipped []domain.SkippedDelivery) []SkippedDeliveryResponse {
	responses := make([]SkippedDeliveryResponse, len(skipped))
	for i, s := range skipped {
		responses[i] = SkippedDeliveryResponse{
			DeliveryID:     s.DeliveryID,
			OrderReference: s.OrderReference,
			BLNumber:       s.BLNumber,
			Date:           s.Date.Format(domain.DateLayout),
			ProductID:      s.ProductID,
			Reason:         s.Reason,
		}
	}
	return responses
}

// CarrierTotalResponse is one carrier line of a memo.
type CarrierTotalResponse struct {
	CarrierID      string          `json:"carrierID"`
	CarrierName    string          `json:"carrierName"`
	DeliveryCount  int             `json:"deliveryCount"`
	VolumeShortage int64           `json:"volumeShortage"`
	ShortageValue  decimal.Decimal `json:"shortageValue"`
	ValueDisplay   string          `json:"valueDisplay"`
}

// SiteTotalResponse is one site line of a memo.
type SiteTotalResponse struct {
	SiteID         string          `json:"siteID"`
	SiteName       string          `json:"siteName"`
	AccountNumber  string          `json:"accountNumber"`
	DeliveryCount  int             `json:"deliveryCount"`
	VolumeShortage int64           `json:"volumeShortage"`
	ShortageValue  decimal.Decimal `json:"shortageValue"`
	ValueDisplay   string          `json:"valueDisplay"`
}

// MemoResponse is the monthly regularization memo returned by the API.
type MemoResponse struct {
	Month          string                    `json:"month"`
	Label          string                    `json:"label"`
	Start          string                    `json:"start"`
	End            string                    `json:"end"`
	Carriers       []CarrierTotalResponse    `json:"carriers"`
	Sites          []SiteTotalResponse       `json:"sites"`
	Skipped        []SkippedDeliveryResponse `json:"skipped"`
	VolumeShortage int64                     `json:"volumeShortage"`
	ShortageValue  decimal.Decimal           `json:"shortageValue"`
	ValueDisplay   string                    `json:"valueDisplay"`
}

// ToMemoResponse converts a monthly memo to its API form.
func ToMemoResponse(memo *MonthlyMemo) MemoResponse {
	report := memo.Report
	resp := MemoResponse{
		Month:          fmt.Sprintf("%04d-%02d", memo.Year, int(memo.Month)),
		Label:          memo.Label,
		Start:          report.Period.Start.Format(domain.DateLayout),
		End:            report.Period.End.Format(domain.DateLayout),
		Carriers:       make([]CarrierTotalResponse, len(report.Carriers)),
		Sites:          make([]SiteTotalResponse, len(report.Sites)),
		Skipped:        ToSkippedResponses(report.Skipped),
		VolumeShortage: report.VolumeShortage,
		ShortageValue:  report.ShortageValue,
		ValueDisplay:   utils.FormatXOF(report.ShortageValue),
	}
	for i, c := range report.Carriers {
		resp.Carriers[i] = CarrierTotalResponse{
			CarrierID:      c.CarrierID,
			CarrierName:    c.CarrierName,
			DeliveryCount:  c.DeliveryCount,
			VolumeShortage: c.VolumeShortage,
			ShortageValue:  c.ShortageValue,
			ValueDisplay:   utils.FormatXOF(c.ShortageValue),
		}
	}
	for i, s := range report.Sites {
		resp.Sites[i] = SiteTotalResponse{
			SiteID:         s.SiteID,
			SiteName:       s.SiteName,
			AccountNumber:  s.AccountNumber,
			DeliveryCount:  s.DeliveryCount,
			VolumeShortage: s.VolumeShortage,
			ShortageValue:  s.ShortageValue,
			ValueDisplay:   utils.FormatXOF(s.ShortageValue),
		}
	}
	return resp
}
