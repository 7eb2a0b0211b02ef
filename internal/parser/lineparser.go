package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kiwicart/backend/internal/domain"
)

// lineParserConfig drives the keyword-based line classifier shared by the
// stores whose receipts print "Item Name $Price" with optional
// "<qty> <unit> @ $<unitPrice>" annotations. Stores differ only in their
// keyword tables and category rules.
type lineParserConfig struct {
	store           string
	indicators      []string // CanParse substrings, lowercased
	receiptKeywords []string // uppercased, checked verbatim against the line
	totalKeywords   []string // uppercased
	skipKeywords    []string // lowercased, lines containing any are never items
	categorize      func(name string) string
}

var (
	lineReceiptNumberRe = regexp.MustCompile(`(?i)(?:RECEIPT|TXN|TRANS)\s*#?\s*(\w+)`)
	lineDateRe          = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`)
	lineAmountRe        = regexp.MustCompile(`\$?(\d+\.\d{2})`)
)

func (c lineParserConfig) canParse(text string) bool {
	return containsAnyKeyword(text, c.indicators)
}

func (c lineParserConfig) parse(text string) *domain.ParsedReceipt {
	var (
		items         []domain.ParsedItem
		total         float64
		date          string
		receiptNumber string
	)

	for _, line := range splitLines(text) {
		if receiptNumber == "" && containsAnyUpper(line, c.receiptKeywords) {
			if m := lineReceiptNumberRe.FindStringSubmatch(line); m != nil {
				receiptNumber = m[1]
			}
		}

		// OCR text has no locale info; receipts in the field are DD/MM/YYYY
		// and the year guard keeps phone numbers out.
		if strings.Contains(line, "/") &&
			(strings.Contains(line, "2024") || strings.Contains(line, "2023")) {
			if m := lineDateRe.FindStringSubmatch(line); m != nil {
				if iso := isoFromDMY(m[1]); iso != "" {
					date = iso
				}
			}
		}

		if containsAnyUpper(line, c.totalKeywords) {
			if m := lineAmountRe.FindStringSubmatch(line); m != nil {
				total = parsePrice(m[1])
			}
		}

		if item := c.extractItem(line); item != nil {
			items = append(items, *item)
		}
	}

	if date == "" {
		date = todayISO()
	}
	if items == nil {
		items = []domain.ParsedItem{}
	}

	return &domain.ParsedReceipt{
		StoreName:     c.store,
		Date:          date,
		ReceiptNumber: receiptNumber,
		Total:         total,
		Subtotal:      total,
		Items:         items,
	}
}

func (c lineParserConfig) extractItem(line string) *domain.ParsedItem {
	if containsAnyKeyword(line, c.skipKeywords) {
		return nil
	}

	pm := trailingPriceRe.FindStringSubmatch(line)
	if pm == nil {
		return nil
	}
	price := parsePrice(pm[1])
	name := strings.TrimSpace(trailingPriceRe.ReplaceAllString(line, ""))

	if len(name) < 2 || containsAnyKeyword(name, totalLikeKeywords) {
		return nil
	}

	quantity := 1
	if qm := qtyUnitPriceRe.FindStringSubmatch(name); qm != nil {
		if amount, err := strconv.ParseFloat(qm[1], 64); err == nil {
			quantity = quantityFromAmount(amount)
		}
		name = strings.TrimSpace(qtyUnitPriceRe.ReplaceAllString(name, ""))
	}

	return &domain.ParsedItem{
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Category: c.categorize(name),
	}
}

// containsAnyUpper checks raw (not lowercased) keyword containment; receipt
// summary keywords are printed upper case by these registers.
func containsAnyUpper(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

// isoFromDMY converts "D/M/YYYY" to an ISO date, or "" when the calendar
// rejects it.
func isoFromDMY(s string) string {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return ""
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
