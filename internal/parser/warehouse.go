package parser

// The Warehouse sells groceries alongside general merchandise; receipts use
// the standard "Item Name $Price" layout and sometimes label the total
// BALANCE.
func warehouseParser() ReceiptParser {
	cfg := lineParserConfig{
		store: StoreWarehouse,
		indicators: []string{
			"warehouse",
			"the warehouse",
			"warehouse brand",
			"pams",
		},
		receiptKeywords: []string{"RECEIPT", "TXN", "TRANS"},
		totalKeywords:   []string{"TOTAL", "AMOUNT DUE", "BALANCE"},
		skipKeywords: []string{
			"total", "subtotal", "tax", "gst", "receipt", "thank", "change",
			"cash", "card", "debit", "credit", "eftpos", "balance", "amount",
			"due", "warehouse", "ltd", "limited", "company", "store", "branch",
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
