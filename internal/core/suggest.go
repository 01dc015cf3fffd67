package core

import "strings"

// suggestionCategory couples a keyword set with the follow-up actions shown
// when a chat message mentions one of the keywords.
type suggestionCategory struct {
	keywords    []string
	suggestions []string
}

// suggestionCategories are tested in order; the first category with a
// keyword hit supplies the suggestions. The order is part of the contract:
// a message mentioning both pests and prices gets the disease suggestions.
var suggestionCategories = []suggestionCategory{
	{
		keywords: []string{"disease", "spot", "yellow", "brown", "pest", "bug", "insect"},
		suggestions: []string{
			"Upload an image of the affected plant",
			"Check market prices for your crop",
			"Look for organic treatment options",
		},
	},
	{
		keywords: []string{"price", "sell", "market", "mandi"},
		suggestions: []string{
			"Check current market prices",
			"Find nearby mandis",
			"Look for government schemes",
		},
	},
	{
		keywords: []string{"subsidy", "scheme", "government", "loan"},
		suggestions: []string{
			"Search government schemes",
			"Check eligibility criteria",
			"Find application procedures",
		},
	},
	{
		keywords: []string{"weather", "rain", "drought", "irrigation"},
		suggestions: []string{
			"Check weather forecasts",
			"Look for drought-resistant varieties",
			"Explore irrigation subsidies",
		},
	},
}

// defaultSuggestions are returned when no category matches.
var defaultSuggestions = []string{
	"Upload crop images for analysis",
	"Check market prices",
	"Explore government schemes",
}

// SuggestActions returns up to three follow-up suggestions for a chat
// message. Deterministic and total: every input maps to exactly one fixed
// list.
func SuggestActions(message string) []string {
	lower := strings.ToLower(message)
	for _, category := range suggestionCategories {
		if containsAny(lower, category.keywords) {
			return append([]string(nil), category.suggestions...)
		}
	}
	return append([]string(nil), defaultSuggestions...)
}
