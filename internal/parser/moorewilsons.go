package parser

// Moore Wilson's Fresh (Wellington) prints "Organic Bananas $4.50" style lines
// with occasional "12pk @ $8.99" annotations for multi-packs.
func mooreWilsonsParser() ReceiptParser {
	cfg := lineParserConfig{
		store: StoreMooreWilsons,
		indicators: []string{
			"moore wilson",
			"moore wilson's",
			"moore wilson fresh",
			"wilson fresh",
		},
		receiptKeywords: []string{"RECEIPT", "TXN"},
		totalKeywords:   []string{"TOTAL", "AMOUNT DUE"},
		skipKeywords: []string{
			"total", "subtotal", "tax", "gst", "receipt", "thank", "change",
			"cash", "card", "debit", "credit", "eftpos", "balance", "amount",
			"due", "moore", "wilson", "fresh", "ltd", "limited", "company",
		},
		categorize: func(name string) string {
			return categorize(defaultCategoryRules, name)
		},
	}
	return ReceiptParser{
		Store:    cfg.store,
		CanParse: cfg.canParse,
		Parse:    cfg.parse,
	}
}
