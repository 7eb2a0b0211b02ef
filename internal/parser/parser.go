package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kiwicart/backend/internal/domain"
)

// ReceiptParser is one entry in the parser strategy table. CanParse is the
// parser's own self-test (typically a broader keyword list than the store
// registry), Parse converts raw OCR text into a structured receipt. Parse
// never fails on malformed input; it returns best-effort partial data, or nil
// for stores that are not yet supported.
type ReceiptParser struct {
	Store    string
	CanParse func(text string) bool
	Parse    func(text string) *domain.ParsedReceipt
}

// Registry returns the parser table in fixed dispatch order.
func Registry() []ReceiptParser {
	return []ReceiptParser{
		countdownParser(),
		newWorldParser(),
		paknSaveParser(),
		fourSquareParser(),
		mooreWilsonsParser(),
		warehouseParser(),
		freshChoiceParser(),
	}
}

// Shared line-level patterns. Individual parsers keep their own variants where
// a store's layout differs.
var (
	trailingPriceRe = regexp.MustCompile(`\$(\d+\.\d{2})$`)
	embeddedPriceRe = regexp.MustCompile(`\$(\d+\.\d{2})`)
	qtyUnitPriceRe  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:pk|pack|kg|g|ml|l|ea|each)\s*@\s*\$(\d+\.\d{2})`)
)

// splitLines breaks receipt text into trimmed, non-empty lines.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// parsePrice converts a captured $D+.DD group to a float. The regexes only
// capture well-formed decimals, so a failure means a zero value, not an error.
func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// containsAnyKeyword reports whether the line, lowercased, contains any of the
// given keywords as a substring.
func containsAnyKeyword(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// totalLikeKeywords flags names that slipped past item extraction but are
// really summary lines.
var totalLikeKeywords = []string{"total", "subtotal", "tax", "gst", "amount", "due", "balance"}

// quantityFromAmount clamps a parsed quantity to the item invariant (>= 1).
// Weight-based lines like "0.5 kg @ $3.99" yield fractional amounts; the line
// still represents a single purchased item.
func quantityFromAmount(amount float64) int {
	q := int(amount)
	if q < 1 {
		return 1
	}
	return q
}

// todayISO is the date-only fallback stamped on receipts with no parseable
// date line.
func todayISO() string {
	return time.Now().Format("2006-01-02")
}

// sumItems totals line-item prices, used when no total line was found.
func sumItems(items []domain.ParsedItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price
	}
	return sum
}
