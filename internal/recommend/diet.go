package recommend

import (
	"strings"

	"github.com/StuivertjeP/tolhuis-app/internal/catalog"
)

// Gluten heuristics. Both lists are best-effort vocabulary in NL and EN,
// maintained by hand alongside the menu; explicit sheet tags always win.
var (
	glutenIngredients = []string{
		"boter", "kruidenboter", "citroenboter", "pasta", "brood",
		"meel", "bloem", "paneermeel", "sojasaus", "miso",
	}
	naturallyGlutenFree = []string{
		"salade", "vis", "vlees", "groente", "fruit", "rijst",
		"quinoa", "aardappel",
	}
)

// MatchesDiet reports whether a dish satisfies the requested diet filter.
// Both the diet list and the legacy type field carry markers, so both are
// checked.
func MatchesDiet(d catalog.Dish, dietKey string) bool {
	if dietKey == "" || dietKey == DietAll {
		return true
	}

	switch dietKey {
	case DietVeg:
		// Lunch items are temporary and excluded from vegetarian matching.
		if strings.EqualFold(d.Category, "lunch") {
			return false
		}
		return d.Type == "vega" || d.Type == "vegetarisch" ||
			hasAny(d.Diet, "veg", "v", "vega", "vegetarisch")

	case DietVegan:
		return hasAny(d.Diet, "vegan", "vega") || hasAny(d.Tags, "vegan", "vega")

	case DietGlutFree:
		if hasAny(d.Diet, "glutfree", "glutenvrij") ||
			hasAny(d.Tags, "glutfree", "gf", "glutenvrij") {
			return true
		}
		return glutenFreeHeuristic(d)

	case DietMeat:
		return hasAny(d.Diet, "meat", "vlees") || d.Type == "vlees" || d.Type == "meat"

	case DietFish:
		return hasAny(d.Diet, "fish", "vis") || d.Type == "vis" || d.Type == "fish"

	case DietMeatFish:
		return hasAny(d.Diet, "meat", "fish") || d.Type == "vlees" || d.Type == "vis"
	}
	return true
}

func glutenFreeHeuristic(d catalog.Dish) bool {
	text := strings.ToLower(d.Title) + " " + strings.ToLower(d.Description)

	for _, k := range glutenIngredients {
		if strings.Contains(text, k) {
			return false
		}
	}
	for _, k := range naturallyGlutenFree {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func hasAny(list []string, wants ...string) bool {
	for _, v := range list {
		for _, w := range wants {
			if v == w {
				return true
			}
		}
	}
	return false
}
