package domain

// Product is a fuel product priced and delivered by compartment.
type Product struct {
	ProductID string `json:"productID" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
}

// DefaultProducts is the catalog used when no product file is configured.
var DefaultProducts = []Product{
	{ProductID: "PDT1", Name: "Super"},
	{ProductID: "PDT2", Name: "Diesel"},
	{ProductID: "PDT3", Name: "Pétrole"},
}
