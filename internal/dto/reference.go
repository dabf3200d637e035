package dto

// CreateDriverRequest registers a driver for a carrier.
type CreateDriverRequest struct {
	Name      string `json:"name" binding:"required"`
	CarrierID string `json:"carrierID" binding:"required"`
}

// CreateVehicleRequest registers a tractor or a tank for a carrier.
type CreateVehicleRequest struct {
	Registration string `json:"registration" binding:"required"`
	CarrierID    string `json:"carrierID" binding:"required"`
}

// ImportSummary counts the rows upserted by a reference import.
type ImportSummary struct {
	Commercials int `json:"commercials"`
	Carriers    int `json:"carriers"`
	Depots      int `json:"depots"`
	Sites       int `json:"sites"`
	Drivers     int `json:"drivers"`
	Products    int `json:"products"`
	Tractors    int `json:"tractors"`
	Tanks       int `json:"tanks"`
}
