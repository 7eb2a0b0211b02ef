package pricefeed

import "github.com/kiwicart/backend/internal/domain"

// mapFeedProducts converts wire entries to catalog products, dropping rows the
// catalog cannot use (missing name or non-positive price).
func mapFeedProducts(feed []feedProduct) []domain.Product {
	out := make([]domain.Product, 0, len(feed))
	for _, fp := range feed {
		if fp.Name == "" || fp.Price <= 0 {
			continue
		}
		out = append(out, domain.Product{
			ID:       fp.SKU,
			Name:     fp.Name,
			Price:    fp.Price,
			StoreID:  fp.StoreID,
			Size:     fp.Size,
			Barcode:  fp.Barcode,
			Category: fp.Category,
		})
	}
	return out
}
