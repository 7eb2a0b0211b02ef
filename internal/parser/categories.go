package parser

import "strings"

// categoryRule maps an ordered keyword list to a category tag. The tables
// below are data, not logic: rules are evaluated top to bottom and the first
// rule with a matching keyword wins, so reordering entries changes
// classification outcomes. Edit with care.
type categoryRule struct {
	Category string
	Keywords []string
}

// defaultCategoryRules is the shared item classifier used by parsers that do
// not carry their own store-specific table.
var defaultCategoryRules = []categoryRule{
	{"fresh-produce", []string{
		"banana", "apple", "orange", "tomato", "lettuce", "carrot",
		"onion", "potato", "fresh", "local",
	}},
	{"dairy", []string{
		"milk", "cheese", "yoghurt", "butter", "cream", "egg",
	}},
	{"meat", []string{
		"beef", "chicken", "pork", "lamb", "fish", "salmon",
	}},
	{"bread", []string{
		"bread", "roll", "bun", "toast",
	}},
	{"grocery", []string{
		"pasta", "rice", "cereal", "coffee", "tea", "sugar", "flour",
	}},
}

// categorize runs an item name through an ordered rule table. Matching is
// case-insensitive substring containment; returns "general" when nothing hits.
func categorize(rules []categoryRule, name string) string {
	lower := strings.ToLower(name)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}
	return "general"
}

// Categories returns the category tags of the shared classifier in rule order,
// ending with the fallback tag.
func Categories() []string {
	out := make([]string, 0, len(defaultCategoryRules)+1)
	for _, rule := range defaultCategoryRules {
		out = append(out, rule.Category)
	}
	return append(out, "general")
}
