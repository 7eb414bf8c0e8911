package reasoning

import "strings"

// maxSimpleSuggestions caps canned suggestions per material.
const maxSimpleSuggestions = 3

var simpleSuggestions = map[string][]Suggestion{
	"plastic": {
		{UseCase: "Storage container", Explanation: "Can hold non-food items", Category: "storage"},
		{UseCase: "Plant pot", Explanation: "Water-resistant material suitable for plants", Category: "outdoor"},
		{UseCase: "Organizer", Explanation: "Can organize small items or craft supplies", Category: "home_utility"},
	},
	"glass": {
		{UseCase: "Flower vase", Explanation: "Glass is suitable for holding water and flowers", Category: "home_utility"},
		{UseCase: "Storage jar", Explanation: "Can store dry goods or craft materials", Category: "storage"},
		{UseCase: "Candle holder", Explanation: "Heat-resistant and decorative", Category: "diy"},
	},
	"metal": {
		{UseCase: "Pen holder", Explanation: "Sturdy material for desk organization", Category: "home_utility"},
		{UseCase: "Planter", Explanation: "Can be repurposed for small plants", Category: "outdoor"},
		{UseCase: "Tool storage", Explanation: "Durable for workshop or garage use", Category: "storage"},
	},
	"cardboard": {
		{UseCase: "Storage box", Explanation: "Lightweight and stackable for organizing", Category: "storage"},
		{UseCase: "DIY project base", Explanation: "Can be cut and modified for crafts", Category: "diy"},
		{UseCase: "Drawer organizer", Explanation: "Can divide and organize drawer spaces", Category: "home_utility"},
	},
}

// simpleSuggestionOrder keeps material lookup deterministic.
var simpleSuggestionOrder = []string{"plastic", "glass", "metal", "cardboard"}

// SimpleSuggestions returns canned reuse suggestions keyed by material,
// for callers that want to bypass the model entirely. The main pipeline
// does not invoke it.
func SimpleSuggestions(objectType, condition string) []Suggestion {
	lower := strings.ToLower(objectType)

	for _, material := range simpleSuggestionOrder {
		if strings.Contains(lower, material) {
			suggestions := simpleSuggestions[material]
			if len(suggestions) > maxSimpleSuggestions {
				suggestions = suggestions[:maxSimpleSuggestions]
			}
			return suggestions
		}
	}

	return []Suggestion{
		{UseCase: "Repurpose for storage", Explanation: "Most objects can hold or organize items", Category: "storage"},
		{UseCase: "Upcycle project", Explanation: "Can be modified for creative reuse", Category: "diy"},
	}
}
