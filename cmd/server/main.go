package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kiwicart/backend/config"
	httpDelivery "github.com/kiwicart/backend/internal/delivery/http"
	"github.com/kiwicart/backend/internal/infrastructure/cache"
	"github.com/kiwicart/backend/internal/infrastructure/pricefeed"
	"github.com/kiwicart/backend/internal/parser"
	"github.com/kiwicart/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting KiwiCart Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	debug := cfg.Server.Environment == "development"

	// Initialize infrastructure dependencies
	matchCache := cache.NewMemory(cfg.Cache.TTL)
	defer matchCache.Stop()
	log.Printf("Match cache TTL: %s", cfg.Cache.TTL)

	// Initialize usecase layer
	matcher := usecase.NewMatchingService(usecase.MatchConfig{
		MinSimilarity:      cfg.Matching.MinSimilarity,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging || debug,
	})
	log.Printf("Matching: minSimilarity=%.2f, debug=%v",
		cfg.Matching.MinSimilarity, cfg.Matching.EnableDebugLogging || debug)

	dispatcher := parser.NewDispatcher(debug)

	// Seed the comparison catalog from the price feed when configured. Feed
	// failures are logged and skipped; the catalog can still be filled over
	// the API.
	if cfg.PriceFeed.BaseURL != "" {
		seedCatalog(cfg, matcher)
	} else {
		log.Printf("Price feed not configured; catalog starts empty")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(dispatcher, matcher, matchCache)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedCatalog pulls per-store price lists from the feed into the matching
// catalog at startup.
func seedCatalog(cfg *config.Config, matcher *usecase.MatchingService) {
	client := pricefeed.NewClient(cfg.PriceFeed.APIKey, cfg.PriceFeed.BaseURL)
	if cfg.Server.Environment == "development" {
		client.SetDebug(true)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, storeID := range cfg.PriceFeed.Stores {
		products, err := client.FetchStorePrices(ctx, storeID)
		if err != nil {
			log.Printf("WARNING: price feed fetch failed for store %s: %v", storeID, err)
			continue
		}
		for _, p := range products {
			matcher.AddProduct(p)
		}
		log.Printf("Seeded %d products from store %s", len(products), storeID)
	}
	log.Printf("Catalog size after seeding: %d", matcher.Len())
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
