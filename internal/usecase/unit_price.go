package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kiwicart/backend/internal/domain"
)

// Size extraction patterns, tried in order: explicit weight, explicit volume,
// explicit count, then a generic number+word fallback classified as count.
var sizePatterns = []struct {
	re       *regexp.Regexp
	unitType domain.UnitType
}{
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(kg|g|lb|oz)`), domain.UnitWeight},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(l|ml|gal|fl oz)`), domain.UnitVolume},
	{regexp.MustCompile(`(?i)(\d+)\s*(pack|count|piece|item)`), domain.UnitCount},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(\w+)`), domain.UnitCount},
}

// unitToBase converts weight units to grams and volume units to millilitres.
// Available for callers that opt into cross-unit comparison; CalculateUnitPrice
// itself stays in the extracted unit.
var unitToBase = map[string]float64{
	"kg": 1000,
	"g":  1,
	"lb": 453.592,
	"oz": 28.3495,

	"l":     1000,
	"ml":    1,
	"gal":   3785.41,
	"fl oz": 29.5735,
}

// CalculateUnitPrice derives a per-unit price from a product's free-text size
// string. Returns nil when the price or size is absent, or when no
// amount+unit token can be extracted; callers must treat nil as
// "incomparable", not as zero cost.
func CalculateUnitPrice(p domain.Product) *domain.UnitPriceInfo {
	if p.Price == 0 || p.Size == "" {
		return nil
	}

	for _, sp := range sizePatterns {
		m := sp.re.FindStringSubmatch(p.Size)
		if m == nil {
			continue
		}
		amount, err := strconv.ParseFloat(m[1], 64)
		if err != nil || amount == 0 {
			return nil
		}
		return &domain.UnitPriceInfo{
			Price:    p.Price,
			Unit:     strings.ToLower(m[2]),
			PerUnit:  p.Price / amount,
			UnitType: sp.unitType,
		}
	}
	return nil
}

// PerBaseUnit rescales a unit price to the base unit of its measurement system
// (grams for weight, millilitres for volume). Count-typed prices and unknown
// units are returned unchanged with ok=false, since there is no base to
// convert to.
func PerBaseUnit(info domain.UnitPriceInfo) (float64, bool) {
	factor, found := unitToBase[info.Unit]
	if !found || info.UnitType == domain.UnitCount {
		return info.PerUnit, false
	}
	return info.PerUnit / factor, true
}
