package translate

import "strings"

// Curated NL->EN dictionary covering the menu vocabulary. Multi-word
// phrases are checked before single words so "rode wijn" never comes out
// as "red wine wine".
var phrases = map[string]string{
	"van het huis":       "of the house",
	"gerecht van de dag": "dish of the day",
	"soep van de dag":    "soup of the day",
	"vis van de dag":     "catch of the day",
	"rode wijn":          "red wine",
	"witte wijn":         "white wine",
	"van de kaart":       "from the menu",
	"met friet":          "with fries",
	"uit de oven":        "oven-baked",
}

var words = map[string]string{
	// categories and dayparts
	"voorgerecht":  "starter",
	"hoofdgerecht": "main course",
	"nagerecht":    "dessert",
	"bijgerecht":   "side dish",
	"weekmenu":     "weekly menu",
	"lunch":        "lunch",
	"ontbijt":      "breakfast",
	"diner":        "dinner",
	"borrel":       "aperitif",
	"borrelhapjes": "bar snacks",
	"dagschotel":   "dish of the day",

	// diet labels
	"vegetarisch":  "vegetarian",
	"veganistisch": "vegan",
	"glutenvrij":   "gluten-free",
	"vega":         "vegetarian",

	// taste profile vocabulary
	"licht":      "light",
	"fris":       "fresh",
	"rijk":       "rich",
	"hartig":     "savoury",
	"verrassend": "surprising",
	"vol":        "full",

	// common dishes
	"biefstuk":     "steak",
	"stoofpot":     "stew",
	"tomatensoep":  "tomato soup",
	"pannenkoeken": "pancakes",
	"tosti":        "toastie",
	"kroket":       "croquette",
	"bitterballen": "bitterballen",
	"kaasplankje":  "cheese board",
	"appeltaart":   "apple pie",
	"salade":       "salad",
	"zeebaars":     "sea bass",
	"gehaktbal":    "meatball",
	"erwtensoep":   "pea soup",

	// ingredients and preparation
	"kip":          "chicken",
	"rund":         "beef",
	"varken":       "pork",
	"vis":          "fish",
	"garnalen":     "prawns",
	"kaas":         "cheese",
	"geitenkaas":   "goat cheese",
	"champignons":  "mushrooms",
	"uien":         "onions",
	"knoflook":     "garlic",
	"room":         "cream",
	"boter":        "butter",
	"kruidenboter": "herb butter",
	"brood":        "bread",
	"friet":        "fries",
	"groenten":     "vegetables",
	"aardappelen":  "potatoes",
	"gegrild":      "grilled",
	"gebakken":     "fried",
	"gerookt":      "smoked",
	"huisgemaakt":  "homemade",
	"seizoens":     "seasonal",
	"vers":         "fresh",
	"warm":         "warm",
	"koud":         "cold",
	"met":          "with",
	"en":           "and",
	"van":          "of",
	"de":           "the",
	"het":          "the",
}

// ToEnglish gives a best-effort English rendering of Dutch menu text.
// Phrases are replaced first, then remaining words one by one; anything
// unknown passes through untouched.
func ToEnglish(text string) string {
	if text == "" {
		return ""
	}

	lowered := strings.ToLower(text)
	for nl, en := range phrases {
		lowered = strings.ReplaceAll(lowered, nl, en)
	}

	fields := strings.Fields(lowered)
	for i, f := range fields {
		bare := strings.Trim(f, ",.!?()")
		if en, ok := words[bare]; ok {
			fields[i] = strings.Replace(f, bare, en, 1)
		}
	}

	return capitalizeFirst(strings.Join(fields, " "))
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
