package domain

// UnknownStore is the store name used on the generic fallback record when a
// receipt passes the gate but no parser claims it.
const UnknownStore = "Unknown Store"

// ParsedItem is one line item extracted from a receipt.
type ParsedItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category,omitempty"`
}

// ParsedReceipt is the structured result of parsing one receipt's OCR text.
// It is built once per parse call and never mutated afterwards. A parse that
// cannot resolve a field leaves the zero value ("" for date and receipt
// number, 0 for total, empty items) rather than failing.
type ParsedReceipt struct {
	StoreName     string       `json:"storeName"`
	Date          string       `json:"date,omitempty"` // ISO-8601 date when resolvable
	ReceiptNumber string       `json:"receiptNumber,omitempty"`
	Total         float64      `json:"total"`
	Subtotal      float64      `json:"subtotal,omitempty"`
	Items         []ParsedItem `json:"items"`
}

// Validation summarizes how trustworthy a parsed receipt looks. Mirrors the
// shape the mobile client already consumes.
type Validation struct {
	IsValid         bool     `json:"is_valid"`
	ConfidenceScore float64  `json:"confidence_score"`
	Issues          []string `json:"issues"`
}

// Validate inspects a parsed receipt and reports missing signals. It never
// rejects a receipt outright; partial data is the normal case with OCR input.
func (r *ParsedReceipt) Validate() Validation {
	v := Validation{IsValid: true, ConfidenceScore: 1.0, Issues: []string{}}

	if r.Total == 0 {
		v.Issues = append(v.Issues, "no total amount found")
		v.ConfidenceScore -= 0.3
	}
	if len(r.Items) == 0 {
		v.Issues = append(v.Issues, "no items found")
		v.ConfidenceScore -= 0.4
	}
	if r.Date == "" {
		v.Issues = append(v.Issues, "no date found")
		v.ConfidenceScore -= 0.1
	}
	if r.StoreName == UnknownStore {
		v.Issues = append(v.Issues, "store not recognized")
		v.ConfidenceScore -= 0.2
	}

	if v.ConfidenceScore < 0 {
		v.ConfidenceScore = 0
	}
	if v.ConfidenceScore < 0.3 {
		v.IsValid = false
	}
	return v
}
