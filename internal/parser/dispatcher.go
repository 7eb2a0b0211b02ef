package parser

import (
	"log"
	"regexp"
	"strings"

	"github.com/kiwicart/backend/internal/domain"
)

// Receipt gate patterns. All three signals must be present before any parser
// is consulted.
var (
	moneyRe    = regexp.MustCompile(`\$\d{1,3}(,?\d{3})*(\.\d{2})?`)
	gateDateRe = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/(\d{2}|\d{4})\b`)
)

// Dispatcher routes raw OCR text to the right store parser, or produces a
// safe default. Parsers are tried in registration order; after that a loose
// store-name match is attempted, and finally the generic fallback record.
type Dispatcher struct {
	parsers []ReceiptParser
	debug   bool
}

// NewDispatcher builds a dispatcher over the full parser registry.
func NewDispatcher(debug bool) *Dispatcher {
	return &Dispatcher{parsers: Registry(), debug: debug}
}

// IsReceipt reports whether the text carries all three receipt signals: a
// currency amount, a date, and a known store identifier.
func (d *Dispatcher) IsReceipt(text string) bool {
	return moneyRe.MatchString(text) &&
		gateDateRe.MatchString(text) &&
		Identify(text) != ""
}

// Parse converts OCR text into a structured receipt.
//
// Text that fails the receipt gate returns ErrNotAReceipt; callers must treat
// that differently from a recognized-but-unparsable receipt, which yields the
// generic fallback record instead.
func (d *Dispatcher) Parse(text string) (*domain.ParsedReceipt, error) {
	if !d.IsReceipt(text) {
		if d.debug {
			log.Printf("[PARSE] text does not look like a receipt")
		}
		return nil, domain.ErrNotAReceipt
	}

	// First tier: each parser's own self-test.
	for _, p := range d.parsers {
		if p.CanParse(text) {
			if r := p.Parse(text); r != nil {
				if d.debug {
					log.Printf("[PARSE] %s claimed the receipt (%d items)", p.Store, len(r.Items))
				}
				return r, nil
			}
		}
	}

	// Second tier: registry identification plus a loose name match against
	// the parser table.
	if storeName := Identify(text); storeName != "" {
		lowerStore := strings.ToLower(storeName)
		for _, p := range d.parsers {
			lowerParser := strings.ToLower(p.Store)
			if strings.Contains(lowerParser, lowerStore) || strings.Contains(lowerStore, lowerParser) {
				if r := p.Parse(text); r != nil {
					if d.debug {
						log.Printf("[PARSE] %s matched by store name %q", p.Store, storeName)
					}
					return r, nil
				}
			}
		}
		if d.debug {
			log.Printf("[PARSE] no parser for identified store %q", storeName)
		}
	}

	// Enough signal to believe it is a receipt, just not one we can read.
	return &domain.ParsedReceipt{
		StoreName: domain.UnknownStore,
		Date:      todayISO(),
		Total:     0,
		Items:     []domain.ParsedItem{},
	}, nil
}
