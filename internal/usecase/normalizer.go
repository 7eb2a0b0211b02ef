package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	packagingWordsRe = regexp.MustCompile(`\b(pack|packet|bottle|can|jar|box|bag)\b`)
	multiSpaceRe     = regexp.MustCompile(`\s+`)
)

// brandAlias maps every known spelling of a brand to one canonical token so
// the same product normalizes identically across stores. Many-to-one by
// design: competitor house brands and legacy names collapse together. The
// table is data; keep aliases lowercased and canonical tokens free of their
// own aliases or normalization stops being idempotent.
type brandAlias struct {
	Canonical string
	Aliases   []string
}

var brandAliases = []brandAlias{
	{"coca-cola", []string{"coke", "coca cola", "cocacola"}},
	{"pepsi", []string{"pepsi-cola", "pepsi cola"}},
	{"cadbury", []string{"cadburys"}},
	{"kraft", []string{"kraft heinz"}},
	{"unilever", []string{"unilever nz"}},
	{"sanitarium", []string{"sanitarium nz"}},
	{"fonterra", []string{"anchor", "mainland"}},
	{"countdown", []string{"woolworths", "woolworths nz"}},
	{"new world", []string{"newworld", "new world nz"}},
	{"pak n save", []string{"paknsave", "pak n save nz"}},
}

var brandAliasRes = compileBrandAliases()

func compileBrandAliases() map[string][]*regexp.Regexp {
	out := make(map[string][]*regexp.Regexp, len(brandAliases))
	for _, ba := range brandAliases {
		res := make([]*regexp.Regexp, 0, len(ba.Aliases))
		for _, alias := range ba.Aliases {
			res = append(res, regexp.MustCompile(`\b`+regexp.QuoteMeta(alias)+`\b`))
		}
		out[ba.Canonical] = res
	}
	return out
}

// unitCompactions glue a number to its unit token ("500 ml" -> "500ml") so
// size spellings compare equal. Order matters: ml before l, g before kg.
var unitCompactions = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(\d+)\s*ml`), "${1}ml"},
	{regexp.MustCompile(`(\d+)\s*l`), "${1}l"},
	{regexp.MustCompile(`(\d+)\s*g`), "${1}g"},
	{regexp.MustCompile(`(\d+)\s*kg`), "${1}kg"},
	{regexp.MustCompile(`(\d+)\s*pack`), "${1}pack"},
	{regexp.MustCompile(`(\d+)\s*count`), "${1}count"},
}

// NormalizeProductName canonicalizes a raw item name for cross-store
// comparison: lowercase, packaging nouns stripped, brand aliases collapsed,
// unit tokens compacted, whitespace squeezed. Idempotent.
func NormalizeProductName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))

	normalized = packagingWordsRe.ReplaceAllString(normalized, "")

	for _, ba := range brandAliases {
		for _, re := range brandAliasRes[ba.Canonical] {
			normalized = re.ReplaceAllString(normalized, ba.Canonical)
		}
	}

	for _, uc := range unitCompactions {
		normalized = uc.re.ReplaceAllString(normalized, uc.repl)
	}

	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(normalized, " "))
}
