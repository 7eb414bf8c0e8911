package vision

import "strings"

// materialClass pairs a category with the keywords that identify it.
// Order matters: specific categories ("plastic bottle") are listed
// before generic ones ("plastic") so the first match wins.
type materialClass struct {
	category string
	keywords []string
}

var materialClasses = []materialClass{
	{"plastic bottle", []string{"plastic bottle", "pet bottle", "water bottle"}},
	{"plastic container", []string{"plastic container", "plastic box", "tupperware"}},
	{"plastic", []string{"plastic", "polymer"}},
	{"glass bottle", []string{"glass bottle", "wine bottle", "beer bottle"}},
	{"glass jar", []string{"glass jar", "mason jar"}},
	{"glass", []string{"glass"}},
	{"metal can", []string{"metal can", "aluminum can", "tin can", "soda can"}},
	{"metal container", []string{"metal container", "metal box"}},
	{"metal", []string{"metal", "aluminum", "steel", "iron"}},
	{"cardboard box", []string{"cardboard box", "carton box"}},
	{"cardboard", []string{"cardboard", "corrugated"}},
	{"paper", []string{"paper", "newspaper"}},
	{"fabric", []string{"fabric", "cloth", "textile", "clothing"}},
	{"wood", []string{"wood", "wooden"}},
	{"rubber", []string{"rubber", "tire"}},
	{"electronics", []string{"electronic", "device", "circuit"}},
}

// UnidentifiedObject is returned when no material keyword matches.
const UnidentifiedObject = "unidentified object"

// ExtractObjectType derives a material category from the vision
// description by keyword matching. No model call: same description,
// same category.
func ExtractObjectType(description string) string {
	lower := strings.ToLower(description)

	for _, class := range materialClasses {
		for _, keyword := range class.keywords {
			if strings.Contains(lower, keyword) {
				return class.category
			}
		}
	}

	return UnidentifiedObject
}
