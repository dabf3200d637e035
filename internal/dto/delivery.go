package dto

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
)

// CompartmentRequest is one compartment line of a delivery form.
type CompartmentRequest struct {
	Number          int    `json:"number" validate:"required,min=1"`
	ProductID       string `json:"productID" validate:"required"`
	VolumeDelivered int64  `json:"volumeDelivered" validate:"min=0"`
	VolumeShortage  int64  `json:"volumeShortage" validate:"min=0"`
	Remark          string `json:"remark" validate:"required,remark"`
}

// CreateDeliveryRequest is the multipart form submitted to record a delivery.
// Compartments travel as a JSON array in a single form field.
type CreateDeliveryRequest struct {
	Date             string `form:"date" binding:"required,datetime=2006-01-02"`
	OrderReference   string `form:"orderReference" binding:"required"`
	BLNumber         string `form:"blNumber" binding:"required"`
	DepotID          string `form:"depotID" binding:"required"`
	CarrierID        string `form:"carrierID" binding:"required"`
	CommercialID     string `form:"commercialID"`
	SiteID           string `form:"siteID" binding:"required"`
	Driver           string `form:"driver"`
	Tractor          string `form:"tractor"`
	Tank             string `form:"tank"`
	CompartmentsJSON string `form:"compartments" binding:"required"`

	Compartments []CompartmentRequest `form:"-" validate:"required,min=1,dive"`
}

// DecodeCompartments parses and validates the compartments field.
func (r *CreateDeliveryRequest) DecodeCompartments() error {
	var compartments []CompartmentRequest
	if err := json.Unmarshal([]byte(r.CompartmentsJSON), &compartments); err != nil {
		return fmt.Errorf("%w: compartments must be a JSON array: %v", apperrors.ErrValidation, err)
	}
	r.Compartments = compartments
	if err := Validate(r); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	seen := make(map[int]bool, len(compartments))
	for _, c := range compartments {
		if seen[c.Number] {
			return fmt.Errorf("%w: compartment %d is listed twice", apperrors.ErrValidation, c.Number)
		}
		seen[c.Number] = true
	}
	return nil
}

// ToDomain builds the delivery to persist.
func (r *CreateDeliveryRequest) ToDomain() (domain.Delivery, error) {
	on, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.Delivery{}, fmt.Errorf("%w: invalid delivery date %q", apperrors.ErrValidation, r.Date)
	}
	d := domain.Delivery{
		Date:           on,
		OrderReference: r.OrderReference,
		BLNumber:       r.BLNumber,
		DepotID:        r.DepotID,
		CarrierID:      r.CarrierID,
		CommercialID:   r.CommercialID,
		SiteID:         r.SiteID,
		Driver:         r.Driver,
		Tractor:        r.Tractor,
		Tank:           r.Tank,
		Compartments:   make([]domain.Compartment, len(r.Compartments)),
	}
	for i, c := range r.Compartments {
		d.Compartments[i] = domain.Compartment{
			Number:          c.Number,
			ProductID:       c.ProductID,
			VolumeDelivered: c.VolumeDelivered,
			VolumeShortage:  c.VolumeShortage,
			Remark:          domain.Remark(c.Remark),
		}
	}
	return d, nil
}

// DocumentUpload is an attachment received with a delivery form.
type DocumentUpload struct {
	Kind        domain.DocumentKind
	FileName    string
	ContentType string
	Content     io.Reader
}

// ListDeliveriesParams filters the delivery listing.
type ListDeliveriesParams struct {
	SiteID string `form:"site_id"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// ToFilter converts the query parameters to a domain filter.
func (p ListDeliveriesParams) ToFilter() (domain.DeliveryFilter, error) {
	filter := domain.DeliveryFilter{SiteID: p.SiteID}
	if p.From == "" && p.To == "" {
		return filter, nil
	}
	period, err := parsePeriod(p.From, p.To)
	if err != nil {
		return filter, err
	}
	filter.Period = period
	return filter, nil
}

func parsePeriod(from, to string) (*domain.Period, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: both from and to are required", apperrors.ErrValidation)
	}
	start, err := domain.ParseDate(from)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid from date %q", apperrors.ErrValidation, from)
	}
	end, err := domain.ParseDate(to)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid to date %q", apperrors.ErrValidation, to)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: to date is before from date", apperrors.ErrValidation)
	}
	return &domain.Period{Start: start, End: end}, nil
}

// CompartmentResponse is a compartment in API responses.
type CompartmentResponse struct {
	Number          int    `json:"number"`
	ProductID       string `json:"productID"`
	VolumeDelivered int64  `json:"volumeDelivered"`
	VolumeShortage  int64  `json:"volumeShortage"`
	Remark          string `json:"remark"`
}

// DeliveryResponse defines the structure for API responses containing delivery details.
type DeliveryResponse struct {
	DeliveryID      int64                 `json:"deliveryID"`
	Date            string                `json:"date"`
	OrderReference  string                `json:"orderReference"`
	BLNumber        string                `json:"blNumber"`
	DepotID         string                `json:"depotID"`
	CarrierID       string                `json:"carrierID"`
	CarrierName     string                `json:"carrierName"`
	CommercialID    string                `json:"commercialID"`
	SiteID          string                `json:"siteID"`
	SiteName        string                `json:"siteName"`
	AccountNumber   string                `json:"accountNumber"`
	Driver          string                `json:"driver"`
	Tractor         string                `json:"tractor"`
	Tank            string                `json:"tank"`
	HasBLDocument   bool                  `json:"hasBLDocument"`
	HasOCSTDocument bool                  `json:"hasOCSTDocument"`
	TotalDelivered  int64                 `json:"totalDelivered"`
	TotalShortage   int64                 `json:"reimbursableShortage"`
	Compartments    []CompartmentResponse `json:"compartments"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
}

// ToDeliveryResponse converts a domain.Delivery to DeliveryResponse DTO
func ToDeliveryResponse(d *domain.Delivery) DeliveryResponse {
	resp := DeliveryResponse{
		DeliveryID:      d.DeliveryID,
		Date:            d.Date.Format(domain.DateLayout),
		OrderReference:  d.OrderReference,
		BLNumber:        d.BLNumber,
		DepotID:         d.DepotID,
		CarrierID:       d.CarrierID,
		CarrierName:     d.CarrierName,
		CommercialID:    d.CommercialID,
		SiteID:          d.SiteID,
		SiteName:        d.SiteName,
		AccountNumber:   d.AccountNumber,
		Driver:          d.Driver,
		Tractor:         d.Tractor,
		Tank:            d.Tank,
		HasBLDocument:   d.BLDocument != nil,
		HasOCSTDocument: d.OCSTDocument != nil,
		TotalDelivered:  d.TotalDelivered(),
		TotalShortage:   d.TotalReimbursableShortage(),
		Compartments:    make([]CompartmentResponse, len(d.Compartments)),
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
	for i, c := range d.Compartments {
		resp.Compartments[i] = CompartmentResponse{
			Number:          c.Number,
			ProductID:       c.ProductID,
			VolumeDelivered: c.VolumeDelivered,
			VolumeShortage:  c.VolumeShortage,
			Remark:          string(c.Remark),
		}
	}
	return resp
}

// ToListDeliveryResponse converts a slice of deliveries.
func ToListDeliveryResponse(deliveries []domain.Delivery) []DeliveryResponse {
	responses := make([]DeliveryResponse, len(deliveries))
	for i := range deliveries {
		responses[i] = ToDeliveryResponse(&deliveries[i])
	}
	return responses
}
