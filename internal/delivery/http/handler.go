package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiwicart/backend/internal/domain"
	"github.com/kiwicart/backend/internal/infrastructure/cache"
	"github.com/kiwicart/backend/internal/parser"
	"github.com/kiwicart/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	dispatcher *parser.Dispatcher
	matcher    *usecase.MatchingService
	matchCache *cache.Memory
}

// NewHandler creates a new HTTP handler. matchCache may be nil to disable
// caching of match lookups.
func NewHandler(dispatcher *parser.Dispatcher, matcher *usecase.MatchingService, matchCache *cache.Memory) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		matcher:    matcher,
		matchCache: matchCache,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "kiwicart-backend",
		"version": "1.0.0",
	})
}

type parseReceiptRequest struct {
	Text string `json:"text" binding:"required"`
}

// ParseReceipt parses OCR'd receipt text into a structured receipt.
// Text that does not look like a receipt at all gets a 422 so the client can
// tell "bad photo" apart from "receipt we couldn't fully read".
func (h *Handler) ParseReceipt(c *gin.Context) {
	var req parseReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	receipt, err := h.dispatcher.Parse(req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrNotAReceipt) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "text does not appear to be a receipt",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse receipt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"receipt":    receipt,
		"validation": receipt.Validate(),
	})
}

// ListStores returns the store chains the parser recognizes
func (h *Handler) ListStores(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stores": parser.StoreNames()})
}

// ListCategories returns the item categories the parsers assign
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": parser.Categories()})
}

// AddProduct adds a product to the comparison catalog
func (h *Handler) AddProduct(c *gin.Context) {
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload"})
		return
	}
	if p.ID == "" || p.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id and name are required"})
		return
	}

	h.matcher.AddProduct(p)
	// Catalog changed; cached match results may now be stale.
	if h.matchCache != nil {
		h.matchCache.Delete(matchCacheKey(p))
	}

	c.JSON(http.StatusCreated, gin.H{"catalogSize": h.matcher.Len()})
}

type matchRequest struct {
	Product domain.Product `json:"product" binding:"required"`
	Stores  []domain.Store `json:"stores"`
}

// MatchProducts finds catalog products equivalent to the submitted one
func (h *Handler) MatchProducts(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match request"})
		return
	}

	// Store-filtered lookups bypass the cache; the key only covers the product.
	if h.matchCache != nil && len(req.Stores) == 0 {
		if cached, err := h.matchCache.Get(matchCacheKey(req.Product)); err == nil {
			if matches, ok := cached.([]domain.ProductMatch); ok {
				c.JSON(http.StatusOK, gin.H{"matches": matches, "cached": true})
				return
			}
		}
	}

	matches := h.matcher.FindEquivalentProducts(req.Product, req.Stores)

	if h.matchCache != nil && len(req.Stores) == 0 {
		h.matchCache.Set(matchCacheKey(req.Product), matches)
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches, "cached": false})
}

// SuggestAlternatives suggests cheaper-per-unit substitutes for a product
func (h *Handler) SuggestAlternatives(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alternatives request"})
		return
	}

	alternatives := h.matcher.SuggestAlternatives(req.Product, req.Stores)
	c.JSON(http.StatusOK, gin.H{"alternatives": alternatives})
}

type compareRequest struct {
	Products []domain.Product `json:"products" binding:"required"`
}

// CompareProducts ranks the submitted products by unit price, cheapest first.
// Products whose size cannot be read are dropped from the ranking.
func (h *Handler) CompareProducts(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid compare request"})
		return
	}

	ranked := usecase.CompareByUnitPrice(req.Products)

	type rankedProduct struct {
		Product   domain.Product        `json:"product"`
		UnitPrice *domain.UnitPriceInfo `json:"unitPrice"`
	}
	results := make([]rankedProduct, 0, len(ranked))
	for _, p := range ranked {
		results = append(results, rankedProduct{
			Product:   p,
			UnitPrice: usecase.CalculateUnitPrice(p),
		})
	}

	c.JSON(http.StatusOK, gin.H{"ranked": results})
}

type bestValueRequest struct {
	Category string         `json:"category" binding:"required"`
	Stores   []domain.Store `json:"stores"`
}

// BestValueProducts returns the catalog's best unit-price products in a category
func (h *Handler) BestValueProducts(c *gin.Context) {
	var req bestValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	products := h.matcher.FindBestValueProducts(req.Category, req.Stores)
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// matchCacheKey keys cached match results by the normalized product name so
// differently-spelled submissions of the same product share an entry.
func matchCacheKey(p domain.Product) string {
	return fmt.Sprintf("match:%s", usecase.NormalizeProductName(p.Name))
}
