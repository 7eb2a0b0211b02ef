package parser

// Fresh Choice regional groceries; the chain's house brand gets its own
// category tag ahead of the general fallback.
var freshChoiceCategoryRules = append(
	append([]categoryRule{}, defaultCategoryRules...),
	categoryRule{"fresh-choice-brand", []string{"fresh choice"}},
)

func freshChoiceParser() ReceiptParser {
	cfg := lineParserConfig{
		store: StoreFreshChoice,
		indicators: []string{
			"fresh choice",
			"freshchoice",
		},
		receiptKeywords: []string{"RECEIPT", "TXN", "TRANS"},
		totalKeywords:   []string{"TOTAL", "AMOUNT DUE", "BALANCE"},
		skipKeywords: []string{
			"total", "subtotal", "tax", "gst", "receipt", "thank", "change",
			"cash", "card", "debit", "credit", "eftpos", "balance", "amount",
			"due", "fresh choice", "ltd", "limited", "company", "store", "branch",
		},
		categorize: func(name string) string {
			return categorize(freshChoiceCategoryRules, name)
		},
	}
	return ReceiptParser{
		Store:    cfg.store,
		CanParse: cfg.canParse,
		Parse:    cfg.parse,
	}
}
