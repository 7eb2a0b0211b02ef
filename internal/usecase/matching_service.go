package usecase

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/kiwicart/backend/internal/domain"
)

// defaultMinSimilarity is the fuzzy-match floor: normalized-name similarity
// below this never produces a match.
const defaultMinSimilarity = 0.7

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	MinSimilarity      float64
	EnableDebugLogging bool
}

// MatchingService owns the in-memory product catalog and answers
// cross-store equivalence, unit-price and alternatives queries against it.
// Construct one per process (or per test) and share it explicitly; there is
// no package-level instance. Safe for concurrent use.
type MatchingService struct {
	mu            sync.RWMutex
	products      map[string][]domain.Product // keyed by normalized name
	barcodes      map[string]domain.Product
	minSimilarity float64
	debug         bool
}

// NewMatchingService creates an empty catalog with the given configuration.
func NewMatchingService(config MatchConfig) *MatchingService {
	minSim := config.MinSimilarity
	if minSim <= 0 || minSim > 1 {
		minSim = defaultMinSimilarity
	}
	return &MatchingService{
		products:      make(map[string][]domain.Product),
		barcodes:      make(map[string]domain.Product),
		minSimilarity: minSim,
		debug:         config.EnableDebugLogging,
	}
}

// AddProduct registers a catalog entry under its normalized name. The catalog
// is the only mutable state in the matching core; persistence, if any, is the
// caller's concern.
func (s *MatchingService) AddProduct(p domain.Product) {
	normalized := NormalizeProductName(p.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[normalized] = append(s.products[normalized], p)
	if p.Barcode != "" {
		s.barcodes[p.Barcode] = p
	}
}

// Len returns the number of catalog entries.
func (s *MatchingService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, bucket := range s.products {
		n += len(bucket)
	}
	return n
}

// FindEquivalentProducts finds catalog entries equivalent to the given
// product, most confident first. An exact barcode hit ranks at confidence 1.0
// ahead of any fuzzy name match. An empty store list means all stores.
func (s *MatchingService) FindEquivalentProducts(p domain.Product, stores []domain.Store) []domain.ProductMatch {
	normalized := NormalizeProductName(p.Name)
	matches := []domain.ProductMatch{}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if p.Barcode != "" {
		if hit, ok := s.barcodes[p.Barcode]; ok {
			matches = append(matches, domain.ProductMatch{
				Product:    hit,
				Confidence: 1.0,
				MatchType:  domain.MatchBarcode,
			})
		}
	}

	for name, bucket := range s.products {
		sim := similarity(normalized, name)
		if sim < s.minSimilarity {
			continue
		}
		for _, candidate := range bucket {
			if !storeAllowed(candidate.StoreID, stores) {
				continue
			}
			matches = append(matches, domain.ProductMatch{
				Product:    candidate,
				Confidence: sim,
				MatchType:  domain.MatchFuzzy,
			})
		}
	}

	if s.debug {
		log.Printf("[MATCH] %q -> %d candidates", p.Name, len(matches))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// SuggestAlternatives finds cheaper-per-unit substitutes for a product,
// largest savings first. Products without a resolvable unit price are never
// suggested, and a product with no unit price of its own has no alternatives.
func (s *MatchingService) SuggestAlternatives(p domain.Product, stores []domain.Store) []domain.ProductAlternative {
	alternatives := []domain.ProductAlternative{}

	unitPrice := CalculateUnitPrice(p)
	if unitPrice == nil {
		return alternatives
	}

	for _, candidate := range s.findSimilarProducts(p, stores) {
		candUnit := CalculateUnitPrice(candidate)
		if candUnit == nil || candUnit.PerUnit >= unitPrice.PerUnit {
			continue
		}
		// Savings scale with the source's own per-unit price; see the unit
		// price notes in DESIGN.md before changing this formula.
		savings := (unitPrice.PerUnit - candUnit.PerUnit) * unitPrice.PerUnit
		alternatives = append(alternatives, domain.ProductAlternative{
			Product: candidate,
			Savings: savings,
			Reason: fmt.Sprintf("Better value: %.2f/%s vs %.2f/%s",
				candUnit.PerUnit, candUnit.Unit, unitPrice.PerUnit, unitPrice.Unit),
		})
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Savings > alternatives[j].Savings
	})
	return alternatives
}

// FindBestValueProducts ranks a category's products by unit price, cheapest
// per unit first. Products without a resolvable unit price are excluded.
func (s *MatchingService) FindBestValueProducts(category string, stores []domain.Store) []domain.Product {
	s.mu.RLock()
	var pool []domain.Product
	for _, bucket := range s.products {
		for _, p := range bucket {
			if p.Category == category && storeAllowed(p.StoreID, stores) {
				pool = append(pool, p)
			}
		}
	}
	s.mu.RUnlock()

	return CompareByUnitPrice(pool)
}

// CompareByUnitPrice sorts products ascending by per-unit price, dropping any
// whose unit price cannot be resolved.
func CompareByUnitPrice(products []domain.Product) []domain.Product {
	type priced struct {
		product domain.Product
		perUnit float64
	}

	ranked := make([]priced, 0, len(products))
	for _, p := range products {
		if info := CalculateUnitPrice(p); info != nil {
			ranked = append(ranked, priced{p, info.PerUnit})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].perUnit < ranked[j].perUnit
	})

	out := make([]domain.Product, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.product)
	}
	return out
}

// findSimilarProducts returns catalog entries sharing enough normalized-name
// words with the source product to count as the same kind of item.
func (s *MatchingService) findSimilarProducts(p domain.Product, stores []domain.Store) []domain.Product {
	words := strings.Fields(NormalizeProductName(p.Name))
	required := len(words) - 1
	if required > 2 {
		required = 2
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var similar []domain.Product
	for name, bucket := range s.products {
		if countSharedWords(words, strings.Fields(name)) < required {
			continue
		}
		for _, candidate := range bucket {
			if candidate.ID == p.ID || !storeAllowed(candidate.StoreID, stores) {
				continue
			}
			similar = append(similar, candidate)
		}
	}
	return similar
}

func countSharedWords(a, b []string) int {
	set := make(map[string]bool, len(b))
	for _, w := range b {
		set[w] = true
	}
	n := 0
	for _, w := range a {
		if set[w] {
			n++
		}
	}
	return n
}

func storeAllowed(storeID string, stores []domain.Store) bool {
	if len(stores) == 0 {
		return true
	}
	for _, s := range stores {
		if s.ID == storeID {
			return true
		}
	}
	return false
}

// similarity is normalized Levenshtein similarity in [0,1]; symmetric in its
// arguments.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(levenshteinDistance(a, b))/float64(maxLen)
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	n := len(r2)

	// Two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
