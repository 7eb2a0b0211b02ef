package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kiwicart/backend/internal/domain"
)

// Countdown receipts print items as "ITEM NAME     $12.34" in upper case, with
// sizes embedded in the name ("MILK 2L"). Some registers omit the dollar sign.
var (
	countdownItemRe    = regexp.MustCompile(`^([A-Z0-9\s]{3,})\s+\$(\d+\.\d{2})$`)
	countdownItemAltRe = regexp.MustCompile(`^([A-Z0-9\s]{3,})\s+(\d+\.\d{2})$`)
	countdownQtyRe     = regexp.MustCompile(`^(\d+)\s+x\s+(.+)$`)
	countdownTotalRe   = regexp.MustCompile(`(?i)TOTAL\s+\$(\d+\.\d{2})`)
	countdownSubRe     = regexp.MustCompile(`(?i)SUBTOTAL\s+\$(\d+\.\d{2})`)
	countdownDateRe    = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`)
	countdownReceiptRe = regexp.MustCompile(`R(\d{9,})`)
)

var countdownIndicators = []string{
	"countdown",
	"cd ",
	"countdown.co.nz",
	"countdown supermarket",
}

var countdownSkipKeywords = []string{
	"total", "subtotal", "tax", "gst", "receipt", "thank", "change",
	"cash", "card", "debit", "credit", "eftpos", "balance", "amount",
	"due", "countdown", "ltd", "limited", "company",
}

func countdownParser() ReceiptParser {
	return ReceiptParser{
		Store:    StoreCountdown,
		CanParse: countdownCanParse,
		Parse:    countdownParse,
	}
}

func countdownCanParse(text string) bool {
	if containsAnyKeyword(text, countdownIndicators) {
		return true
	}
	for _, line := range splitLines(text) {
		if countdownItemRe.MatchString(line) || countdownItemAltRe.MatchString(line) {
			return true
		}
	}
	return false
}

func countdownParse(text string) *domain.ParsedReceipt {
	var (
		items         []domain.ParsedItem
		total         float64
		subtotal      float64
		date          string
		receiptNumber string
	)

	for _, line := range splitLines(text) {
		if item := countdownExtractItem(line); item != nil {
			items = append(items, *item)
			continue
		}

		if m := countdownSubRe.FindStringSubmatch(line); m != nil {
			subtotal = parsePrice(m[1])
			continue
		}
		if m := countdownTotalRe.FindStringSubmatch(line); m != nil {
			total = parsePrice(m[1])
			continue
		}
		if m := countdownDateRe.FindStringSubmatch(line); m != nil && date == "" {
			// DD/MM/YYYY reassembled as ISO; the register always zero-pads.
			date = fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
			continue
		}
		if m := countdownReceiptRe.FindStringSubmatch(line); m != nil && receiptNumber == "" {
			receiptNumber = m[1]
			continue
		}
	}

	if total == 0 && len(items) > 0 {
		total = sumItems(items)
	}
	if date == "" {
		date = todayISO()
	}
	if subtotal == 0 {
		subtotal = total
	}
	if items == nil {
		items = []domain.ParsedItem{}
	}

	return &domain.ParsedReceipt{
		StoreName:     StoreCountdown,
		Date:          date,
		ReceiptNumber: receiptNumber,
		Total:         total,
		Subtotal:      subtotal,
		Items:         items,
	}
}

func countdownExtractItem(line string) *domain.ParsedItem {
	if containsAnyKeyword(line, countdownSkipKeywords) {
		return nil
	}

	// "2 x ITEM NAME $12.34" lines carry the line total; store the per-unit
	// price alongside the quantity.
	if m := countdownQtyRe.FindStringSubmatch(line); m != nil {
		qty, err := strconv.Atoi(m[1])
		if err != nil || qty < 1 {
			qty = 1
		}
		rest := m[2]
		if pm := embeddedPriceRe.FindStringSubmatch(rest); pm != nil {
			price := parsePrice(pm[1])
			name := strings.TrimSpace(embeddedPriceRe.ReplaceAllString(rest, ""))
			return &domain.ParsedItem{
				Name:     name,
				Price:    price / float64(qty),
				Quantity: qty,
				Category: categorize(defaultCategoryRules, name),
			}
		}
	}

	for _, re := range []*regexp.Regexp{countdownItemRe, countdownItemAltRe} {
		if m := re.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			if len(name) < 2 || containsAnyKeyword(name, totalLikeKeywords) {
				return nil
			}
			return &domain.ParsedItem{
				Name:     name,
				Price:    parsePrice(m[2]),
				Quantity: 1,
				Category: categorize(defaultCategoryRules, name),
			}
		}
	}
	return nil
}
