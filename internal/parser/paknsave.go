package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kiwicart/backend/internal/domain"
)

// Pak'nSave receipts follow the same column layout as New World but label the
// total "AMOUNT" and use TRANS as a transaction-number keyword.
var (
	paknSaveItemRe     = regexp.MustCompile(`^([A-Za-z\s&'-]{3,})\s+\$(\d+\.\d{2})$`)
	paknSaveItemAltRe  = regexp.MustCompile(`^([A-Za-z\s&'-]{3,})\s+(\d+\.\d{2})$`)
	paknSaveQtyRe      = regexp.MustCompile(`^(\d+)\s+x\s+(.+)$`)
	paknSaveTotalRe    = regexp.MustCompile(`(?i)TOTAL\s+\$(\d+\.\d{2})`)
	paknSaveTotalAltRe = regexp.MustCompile(`(?i)AMOUNT\s+\$(\d+\.\d{2})`)
	paknSaveSubRe      = regexp.MustCompile(`(?i)SUBTOTAL\s+\$(\d+\.\d{2})`)
	paknSaveDateRe     = regexp.MustCompile(`(\d{2})[/\-](\d{2})[/\-](\d{4})`)
	paknSaveReceiptRe  = regexp.MustCompile(`(?i)(?:RECEIPT|TXN|TRANS)\s*#?\s*(\d{6,})`)
)

var paknSaveIndicators = []string{
	"pak'n save",
	"paknsave",
	"pns ",
	"pak n save",
	"paknsave.co.nz",
}

// Budget-focused category table; no organic aliases, bulk staples dominate.
var paknSaveCategoryRules = []categoryRule{
	{"Fresh Produce", []string{
		"apple", "banana", "tomato", "lettuce", "carrot", "onion", "potato",
		"avocado", "cucumber", "pepper", "broccoli", "cauliflower",
	}},
	{"Dairy", []string{
		"milk", "cheese", "yogurt", "butter", "cream", "yoghurt",
		"cheddar", "mozzarella", "feta", "parmesan",
	}},
	{"Meat", []string{
		"beef", "chicken", "pork", "lamb", "steak", "mince",
		"sausage", "bacon", "ham", "turkey",
	}},
	{"Pantry", []string{
		"bread", "pasta", "rice", "flour", "sugar", "oil",
		"sauce", "soup", "cereal", "baking",
	}},
	{"Beverages", []string{
		"water", "juice", "soda", "beer", "wine", "coffee",
		"tea", "coke", "pepsi", "sparkling",
	}},
	{"Snacks", []string{
		"chips", "crackers", "nuts", "chocolate", "candy",
		"biscuits", "cookies", "popcorn",
	}},
	{"Frozen", []string{
		"ice cream", "frozen", "pizza", "fries", "peas", "corn", "icecream",
	}},
	{"Household", []string{
		"toilet paper", "paper towel", "soap", "detergent",
		"cleaning", "tissue", "laundry",
	}},
}

func paknSaveCategorize(name string) string {
	c := categorize(paknSaveCategoryRules, name)
	if c == "general" {
		return "Other"
	}
	return c
}

func paknSaveParser() ReceiptParser {
	return ReceiptParser{
		Store:    StorePaknSave,
		CanParse: paknSaveCanParse,
		Parse:    paknSaveParse,
	}
}

func paknSaveCanParse(text string) bool {
	if containsAnyKeyword(text, paknSaveIndicators) {
		return true
	}
	for _, line := range splitLines(text) {
		if paknSaveItemRe.MatchString(line) || paknSaveItemAltRe.MatchString(line) {
			return true
		}
	}
	return false
}

func paknSaveParse(text string) *domain.ParsedReceipt {
	var (
		items         []domain.ParsedItem
		total         float64
		subtotal      float64
		date          string
		receiptNumber string
	)

	for _, line := range splitLines(text) {
		if item := paknSaveExtractItem(line); item != nil {
			items = append(items, *item)
			continue
		}

		if m := paknSaveSubRe.FindStringSubmatch(line); m != nil {
			subtotal = parsePrice(m[1])
			continue
		}
		if m := paknSaveTotalRe.FindStringSubmatch(line); m != nil {
			total = parsePrice(m[1])
			continue
		}
		if m := paknSaveTotalAltRe.FindStringSubmatch(line); m != nil {
			total = parsePrice(m[1])
			continue
		}
		if m := paknSaveDateRe.FindStringSubmatch(line); m != nil && date == "" {
			date = fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
			continue
		}
		if m := paknSaveReceiptRe.FindStringSubmatch(line); m != nil && receiptNumber == "" {
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
		StoreName:     StorePaknSave,
		Date:          date,
		ReceiptNumber: receiptNumber,
		Total:         total,
		Subtotal:      subtotal,
		Items:         items,
	}
}

func paknSaveExtractItem(line string) *domain.ParsedItem {
	if m := paknSaveQtyRe.FindStringSubmatch(line); m != nil {
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
				Category: paknSaveCategorize(name),
			}
		}
	}

	for _, re := range []*regexp.Regexp{paknSaveItemRe, paknSaveItemAltRe} {
		if m := re.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			if len(name) < 2 || containsAnyKeyword(name, totalLikeKeywords) {
				return nil
			}
			return &domain.ParsedItem{
				Name:     name,
				Price:    parsePrice(m[2]),
				Quantity: 1,
				Category: paknSaveCategorize(name),
			}
		}
	}
	return nil
}
