package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kiwicart/backend/internal/domain"
)

// New World uses mixed-case item names and sometimes labels the total
// "AMOUNT DUE". Dates appear with either slash or dash separators.
var (
	newWorldItemRe     = regexp.MustCompile(`^([A-Za-z\s&'-]{3,})\s+\$(\d+\.\d{2})$`)
	newWorldItemAltRe  = regexp.MustCompile(`^([A-Za-z\s&'-]{3,})\s+(\d+\.\d{2})$`)
	newWorldQtyRe      = regexp.MustCompile(`^(\d+)\s+x\s+(.+)$`)
	newWorldTotalRe    = regexp.MustCompile(`(?i)TOTAL\s+\$(\d+\.\d{2})`)
	newWorldTotalAltRe = regexp.MustCompile(`(?i)AMOUNT\s+DUE\s+\$(\d+\.\d{2})`)
	newWorldSubRe      = regexp.MustCompile(`(?i)SUBTOTAL\s+\$(\d+\.\d{2})`)
	newWorldDateRe     = regexp.MustCompile(`(\d{2})[/\-](\d{2})[/\-](\d{4})`)
	newWorldReceiptRe  = regexp.MustCompile(`(?i)(?:RECEIPT|TXN)\s*#?\s*(\d{6,})`)
)

var newWorldIndicators = []string{
	"new world",
	"nw ",
	"new world supermarket",
	"new world fresh choice",
}

// New World's own category table; the chain stocks more premium and organic
// lines than the shared classifier covers.
var newWorldCategoryRules = []categoryRule{
	{"Fresh Produce", []string{
		"apple", "banana", "tomato", "lettuce", "carrot", "onion", "potato",
		"avocado", "cucumber", "pepper", "broccoli", "cauliflower", "organic", "fresh",
	}},
	{"Dairy", []string{
		"milk", "cheese", "yogurt", "butter", "cream", "yoghurt",
		"cheddar", "mozzarella", "feta", "parmesan", "organic milk",
	}},
	{"Meat", []string{
		"beef", "chicken", "pork", "lamb", "steak", "mince",
		"sausage", "bacon", "ham", "turkey", "organic meat",
	}},
	{"Pantry", []string{
		"bread", "pasta", "rice", "flour", "sugar", "oil",
		"sauce", "soup", "cereal", "baking", "organic",
	}},
	{"Beverages", []string{
		"water", "juice", "soda", "beer", "wine", "coffee",
		"tea", "coke", "pepsi", "sparkling", "organic juice",
	}},
	{"Snacks", []string{
		"chips", "crackers", "nuts", "chocolate", "candy",
		"biscuits", "cookies", "popcorn", "organic snacks",
	}},
	{"Frozen", []string{
		"ice cream", "frozen", "pizza", "fries", "peas", "corn", "icecream",
	}},
	{"Household", []string{
		"toilet paper", "paper towel", "soap", "detergent",
		"cleaning", "tissue", "laundry",
	}},
}

func newWorldCategorize(name string) string {
	c := categorize(newWorldCategoryRules, name)
	if c == "general" {
		return "Other"
	}
	return c
}

func newWorldParser() ReceiptParser {
	return ReceiptParser{
		Store:    StoreNewWorld,
		CanParse: newWorldCanParse,
		Parse:    newWorldParse,
	}
}

func newWorldCanParse(text string) bool {
	if containsAnyKeyword(text, newWorldIndicators) {
		return true
	}
	for _, line := range splitLines(text) {
		if newWorldItemRe.MatchString(line) || newWorldItemAltRe.MatchString(line) {
			return true
		}
	}
	return false
}

func newWorldParse(text string) *domain.ParsedReceipt {
	var (
		items         []domain.ParsedItem
		total         float64
		subtotal      float64
		date          string
		receiptNumber string
	)

	for _, line := range splitLines(text) {
		if item := newWorldExtractItem(line); item != nil {
			items = append(items, *item)
			continue
		}

		if m := newWorldSubRe.FindStringSubmatch(line); m != nil {
			subtotal = parsePrice(m[1])
			continue
		}
		if m := newWorldTotalRe.FindStringSubmatch(line); m != nil {
			total = parsePrice(m[1])
			continue
		}
		if m := newWorldTotalAltRe.FindStringSubmatch(line); m != nil {
			total = parsePrice(m[1])
			continue
		}
		if m := newWorldDateRe.FindStringSubmatch(line); m != nil && date == "" {
			date = fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
			continue
		}
		if m := newWorldReceiptRe.FindStringSubmatch(line); m != nil && receiptNumber == "" {
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
		StoreName:     StoreNewWorld,
		Date:          date,
		ReceiptNumber: receiptNumber,
		Total:         total,
		Subtotal:      subtotal,
		Items:         items,
	}
}

func newWorldExtractItem(line string) *domain.ParsedItem {
	if m := newWorldQtyRe.FindStringSubmatch(line); m != nil {
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
				Category: newWorldCategorize(name),
			}
		}
	}

	for _, re := range []*regexp.Regexp{newWorldItemRe, newWorldItemAltRe} {
		if m := re.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			if len(name) < 2 || containsAnyKeyword(name, totalLikeKeywords) {
				return nil
			}
			return &domain.ParsedItem{
				Name:     name,
				Price:    parsePrice(m[2]),
				Quantity: 1,
				Category: newWorldCategorize(name),
			}
		}
	}
	return nil
}
