package domain

import "errors"

var (
	// ErrNotAReceipt is returned when text fails the receipt gate entirely
	// (no money amount, no date, or no store identifier). Distinct from a
	// receipt that parses to the generic fallback record.
	ErrNotAReceipt = errors.New("text does not appear to be a receipt")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrProductNotFound is returned when no catalog entry matches
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrPriceFeedFailure is returned when a price feed request fails
	ErrPriceFeedFailure = errors.New("price feed request failed")
)
