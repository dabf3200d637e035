package domain

import (
	"fmt"
	"time"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
)

// Remark classifies a compartment shortage.
type Remark string

const (
	RemarkReimbursable    Remark = "Remboursable"
	RemarkNonReimbursable Remark = "Non remboursable"
	RemarkNothingToReport Remark = "RAS"
)

// Remarks lists the remarks accepted on input.
var Remarks = []Remark{RemarkReimbursable, RemarkNonReimbursable, RemarkNothingToReport}

// IsValid reports whether r is one of the accepted remarks.
func (r Remark) IsValid() bool {
	for _, known := range Remarks {
		if r == known {
			return true
		}
	}
	return false
}

// Compartment is one tank section of a delivery.
type Compartment struct {
	DeliveryID      int64  `json:"deliveryID"`
	Number          int    `json:"number"`
	ProductID       string `json:"productID"`
	VolumeDelivered int64  `json:"volumeDelivered"`
	VolumeShortage  int64  `json:"volumeShortage"`
	Remark          Remark `json:"remark"`
}

// IsReimbursable reports whether the shortage is charged back to the carrier.
func (c Compartment) IsReimbursable() bool {
	return c.Remark == RemarkReimbursable
}

// Validate rejects negative volumes.
func (c Compartment) Validate() error {
	if c.VolumeDelivered < 0 {
		return fmt.Errorf("%w: compartment %d: delivered volume must not be negative", apperrors.ErrValidation, c.Number)
	}
	if c.VolumeShortage < 0 {
		return fmt.Errorf("%w: compartment %d: shortage volume must not be negative", apperrors.ErrValidation, c.Number)
	}
	return nil
}

// Delivery is a truck delivery to a station, identified by order reference and BL number.
type Delivery struct {
	DeliveryID     int64     `json:"deliveryID"`
	Date           time.Time `json:"date"`
	OrderReference string    `json:"orderReference"`
	BLNumber       string    `json:"blNumber"`
	DepotID        string    `json:"depotID"`
	CarrierID      string    `json:"carrierID"`
	CarrierName    string    `json:"carrierName"`
	CommercialID   string    `json:"commercialID"`
	SiteID         string    `json:"siteID"`
	SiteName       string    `json:"siteName"`
	AccountNumber  string    `json:"accountNumber"`
	Driver         string    `json:"driver"`
	Tractor        string    `json:"tractor"`
	Tank           string    `json:"tank"`
	BLDocument     *string   `json:"blDocument,omitempty"`
	OCSTDocument   *string   `json:"ocstDocument,omitempty"`

	Compartments []Compartment `json:"compartments"`
	AuditFields
}

// TotalDelivered sums delivered volume across all compartments.
func (d Delivery) TotalDelivered() int64 {
	var total int64
	for _, c := range d.Compartments {
		total += c.VolumeDelivered
	}
	return total
}

// DocumentRefs lists the stored document references of d.
func (d Delivery) DocumentRefs() []string {
	var refs []string
	for _, ref := range []*string{d.BLDocument, d.OCSTDocument} {
		if ref != nil {
			refs = append(refs, *ref)
		}
	}
	return refs
}

// TotalReimbursableShortage sums the shortage of reimbursable compartments.
func (d Delivery) TotalReimbursableShortage() int64 {
	var total int64
	for _, c := range d.Compartments {
		if c.IsReimbursable() {
			total += c.VolumeShortage
		}
	}
	return total
}

// DeliveryFilter narrows a delivery listing. Zero values mean "no constraint".
type DeliveryFilter struct {
	Period         *Period
	Date           *time.Time
	DeliveryID     *int64
	SiteID         string
	OrderReference string
	BLNumber       string
	DepotID        string
	CarrierID      string
	Tractor        string
	Tank           string
	Driver         string
}

// DocumentKind names an attachment of a delivery.
type DocumentKind string

const (
	DocumentBL   DocumentKind = "bl"
	DocumentOCST DocumentKind = "ocst"
)

// IsValid reports whether k is a known document kind.
func (k DocumentKind) IsValid() bool {
	return k == DocumentBL || k == DocumentOCST
}
