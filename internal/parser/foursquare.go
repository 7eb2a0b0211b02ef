package parser

import "github.com/kiwicart/backend/internal/domain"

// Four Square receipts have not been sampled yet, so there is no layout to
// parse against. The entry stays in the table so the dispatcher knows the
// store exists; Parse returning nil sends these receipts to the generic
// fallback rather than inventing a format.
func fourSquareParser() ReceiptParser {
	return ReceiptParser{
		Store: StoreFourSquare,
		CanParse: func(text string) bool {
			return containsAnyKeyword(text, []string{"four square"})
		},
		Parse: func(string) *domain.ParsedReceipt {
			return nil
		},
	}
}
