package domain

// Commercial is the sales representative in charge of a set of sites.
type Commercial struct {
	CommercialID string `json:"commercialID"`
	Name         string `json:"name"`
}

// Site is a delivery point, billed under an account number.
type Site struct {
	SiteID        string `json:"siteID"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
	CommercialID  string `json:"commercialID"`
}

// Carrier is a transport company ("transporteur").
type Carrier struct {
	CarrierID string `json:"carrierID"`
	Name      string `json:"name"`
}

// Driver belongs to a carrier.
type Driver struct {
	DriverID  string `json:"driverID"`
	Name      string `json:"name"`
	CarrierID string `json:"carrierID"`
}

// Tractor is a truck head registered to a carrier.
type Tractor struct {
	TractorID    string `json:"tractorID"`
	Registration string `json:"registration"`
	CarrierID    string `json:"carrierID"`
}

// Tank is a trailer tank registered to a carrier.
type Tank struct {
	TankID       string `json:"tankID"`
	Registration string `json:"registration"`
	CarrierID    string `json:"carrierID"`
}

// Depot is a loading depot.
type Depot struct {
	DepotID string `json:"depotID"`
	Name    string `json:"name"`
}

// ReferenceKind names the reference tables that get sequential identifiers.
type ReferenceKind string

const (
	ReferenceDriver  ReferenceKind = "driver"
	ReferenceTractor ReferenceKind = "tractor"
	ReferenceTank    ReferenceKind = "tank"
)

// IDPrefix returns the identifier prefix of generated ids ("CH1", "TRAC2", "CIT3").
func (k ReferenceKind) IDPrefix() string {
	switch k {
	case ReferenceDriver:
		return "CH"
	case ReferenceTractor:
		return "TRAC"
	case ReferenceTank:
		return "CIT"
	}
	return ""
}

// ReferenceData is a full snapshot of the reference tables, as imported from a workbook.
type ReferenceData struct {
	Commercials []Commercial
	Carriers    []Carrier
	Depots      []Depot
	Sites       []Site
	Drivers     []Driver
	Products    []Product
	Tractors    []Tractor
	Tanks       []Tank
}
