package domain

// Store represents a physical store location in the comparison catalog.
type Store struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Chain string `json:"chain,omitempty"`
}

// Product is a catalog entry used for cross-store price comparison. The
// catalog is caller-owned; this package only defines the shape.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	StoreID  string  `json:"storeId"`
	Size     string  `json:"size,omitempty"` // free-text size/packaging, e.g. "2L", "500g", "12 pack"
	Barcode  string  `json:"barcode,omitempty"`
	Category string  `json:"category,omitempty"`
}

// MatchType describes how a product match was established.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchFuzzy   MatchType = "fuzzy"
	MatchBarcode MatchType = "barcode"
	MatchManual  MatchType = "manual"
)

// ProductMatch is one candidate match for a product, with a confidence in [0,1].
type ProductMatch struct {
	Product    Product   `json:"product"`
	Confidence float64   `json:"confidence"`
	MatchType  MatchType `json:"matchType"`
}

// UnitType classifies a size measurement.
type UnitType string

const (
	UnitWeight UnitType = "weight"
	UnitVolume UnitType = "volume"
	UnitCount  UnitType = "count"
)

// UnitPriceInfo is a product's price normalized to its extracted size unit.
// PerUnit is price divided by the amount in the extracted unit; no cross-unit
// conversion is applied.
type UnitPriceInfo struct {
	Price    float64  `json:"price"`
	Unit     string   `json:"unit"`
	PerUnit  float64  `json:"perUnit"`
	UnitType UnitType `json:"unitType"`
}

// ProductAlternative is a cheaper-per-unit substitute for a product.
// Savings is non-negative by construction: candidates with a worse unit price
// are filtered out before an alternative is built.
type ProductAlternative struct {
	Product Product `json:"product"`
	Savings float64 `json:"savings"`
	Reason  string  `json:"reason"`
}
