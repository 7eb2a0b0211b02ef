package parser

import "regexp"

// Canonical store names. Parsers stamp these onto parsed receipts so the rest
// of the app can group receipts by chain without re-normalizing.
const (
	StoreCountdown    = "Countdown"
	StoreNewWorld     = "New World"
	StorePaknSave     = "Pak'nSave"
	StoreFourSquare   = "Four Square"
	StoreMooreWilsons = "Moore Wilson's Fresh"
	StoreWarehouse    = "The Warehouse"
	StoreFreshChoice  = "Fresh Choice"
)

// storeIdentifier pairs a canonical store name with the pattern that claims
// receipt text for it. Order matters: the first matching pattern wins.
type storeIdentifier struct {
	Name    string
	Pattern *regexp.Regexp
}

var storeIdentifiers = []storeIdentifier{
	{StoreCountdown, regexp.MustCompile(`(?i)countdown`)},
	{StoreNewWorld, regexp.MustCompile(`(?i)new world`)},
	{StorePaknSave, regexp.MustCompile(`(?i)pak'n'save|paknsave|pak n save`)},
	{StoreFourSquare, regexp.MustCompile(`(?i)four square`)},
	{StoreMooreWilsons, regexp.MustCompile(`(?i)moore wilson|wilson fresh`)},
	{StoreWarehouse, regexp.MustCompile(`(?i)warehouse|the warehouse`)},
	{StoreFreshChoice, regexp.MustCompile(`(?i)fresh choice|freshchoice`)},
}

// Identify returns the canonical name of the first store whose identifier
// pattern matches the text, or "" when none do. This is a boolean gate per
// store, not a ranking; parsers keep their own broader CanParse keyword lists.
func Identify(text string) string {
	for _, s := range storeIdentifiers {
		if s.Pattern.MatchString(text) {
			return s.Name
		}
	}
	return ""
}

// StoreNames returns the canonical names of all known stores in registry order.
func StoreNames() []string {
	names := make([]string, 0, len(storeIdentifiers))
	for _, s := range storeIdentifiers {
		names = append(names, s.Name)
	}
	return names
}
