package recommend

import (
	"strings"

	"github.com/StuivertjeP/tolhuis-app/internal/catalog"
	"github.com/StuivertjeP/tolhuis-app/internal/daypart"
)

// MaxSlots is the number of personal-recommendation positions on the menu.
const MaxSlots = 2

// Beverage vocabulary, NL + EN + common brand and varietal names. A drink
// must never occupy a food slot, so the net is cast wide on purpose.
var (
	drinkSections = []string{
		"drank", "wijn", "bier", "cocktail", "bubbel", "dranken",
		"drink", "beverage", "alcohol", "spirit", "wine", "beer",
		"coffee", "tea", "drinken",
	}
	drinkNames = []string{
		"hennessy", "cognac", "whisky", "whiskey", "wijn", "bier",
		"cocktail", "koffie", "espresso", "thee", "jus d'orange",
		"bobby's", "bombay", "gin", "rum", "vodka", "tequila",
		"champagne", "prosecco", "cava", "amstel", "radler", "cola",
		"fanta", "sprite", "water", "limonade", "sap", "juice",
		"drank", "drink", "bubbel", "sparkling", "mineraal", "frisdrank",
		"casa silva", "pucari", "domaine", "château", "bordeaux",
		"burgundy", "pinot", "chardonnay", "sauvignon", "merlot",
		"cabernet", "syrah", "riesling", "gewürztraminer", "malbec",
		"tempranillo", "sangiovese", "barbera",
		"bailey's", "amaretto", "disaronno", "likeur", "liqueur",
		"brandy", "sherry", "port", "vermouth", "aperitif", "digestif",
	}
)

// IsBeverage classifies a dish as a drink by section, category or name.
func IsBeverage(d catalog.Dish) bool {
	section := strings.ToLower(d.Section)
	category := strings.ToLower(d.Category)
	name := strings.ToLower(d.Title)

	for _, k := range drinkSections {
		if strings.Contains(section, k) || strings.Contains(category, k) {
			return true
		}
	}
	for _, k := range drinkNames {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}

// FillDaypartSlots selects up to two personal recommendations appropriate
// to the daypart from an already-ranked catalog (week dishes excluded by
// the caller, they get their own section). Beverages are excluded
// absolutely, on every path. No randomness: identical input gives
// identical output.
func FillDaypartSlots(ranked []catalog.Dish, dp daypart.Daypart) []catalog.Dish {
	eligible := make([]catalog.Dish, 0, len(ranked))
	for _, d := range ranked {
		if !IsBeverage(d) {
			eligible = append(eligible, d)
		}
	}

	var recs []catalog.Dish
	switch dp {
	case daypart.Dinner:
		recs = dinnerSlots(eligible)
	case daypart.Borrel:
		recs = take(eligible, isBorrelSnack, MaxSlots)
	case daypart.Breakfast:
		recs = take(eligible, isBreakfastItem, MaxSlots)
	case daypart.Lunch:
		recs = take(eligible, isLunchItem, MaxSlots)
	default:
		recs = []catalog.Dish{}
	}

	return fill(recs, eligible)
}

// dinnerSlots prefers one starter-like and one main-like dish.
func dinnerSlots(eligible []catalog.Dish) []catalog.Dish {
	recs := take(eligible, isDinnerStarter, 1)
	for _, d := range eligible {
		if len(recs) >= MaxSlots {
			break
		}
		if isDinnerMain(d) && !containsDish(recs, d) {
			recs = append(recs, d)
		}
	}
	return recs
}

func isDinnerStarter(d catalog.Dish) bool {
	if isDaytimeItem(d) {
		return false
	}
	category := strings.ToLower(d.Category)
	name := strings.ToLower(d.Title)
	return category == "starter" || category == "voorgerecht" || category == "appetizer" ||
		strings.Contains(name, "soep") || strings.Contains(name, "salade") ||
		strings.Contains(name, "voorgerecht")
}

func isDinnerMain(d catalog.Dish) bool {
	if isDaytimeItem(d) {
		return false
	}
	category := strings.ToLower(d.Category)
	if category == "main" || category == "diner" || category == "hoofdgerecht" || category == "entree" {
		return true
	}
	name := strings.ToLower(d.Title)
	return !strings.Contains(name, "soep") && !strings.Contains(name, "salade") &&
		!strings.Contains(name, "voorgerecht") && !strings.Contains(name, "dessert")
}

func isBorrelSnack(d catalog.Dish) bool {
	category := strings.ToLower(d.Category)
	name := strings.ToLower(d.Title)
	if category == "diner" || category == "main" || category == "hoofdgerecht" ||
		isDaytimeItem(d) || hasAny(d.Tags, "diner") {
		return false
	}
	return category == "borrel" || category == "starter" || category == "side" ||
		hasAny(d.Tags, "borrel", "snack") ||
		containsAny(name, "borrel", "hapje", "bitterbal", "kaas", "worst", "olijf")
}

func isBreakfastItem(d catalog.Dish) bool {
	category := strings.ToLower(d.Category)
	name := strings.ToLower(d.Title)
	if category == "diner" || category == "main" || category == "hoofdgerecht" ||
		category == "lunch" || category == "borrel" ||
		containsAny(name, "tosti", "broodje", "sandwich", "borrel", "hapje") ||
		hasAny(d.Tags, "diner", "lunch", "borrel") {
		return false
	}
	return category == "breakfast" || category == "ontbijt" ||
		hasAny(d.Tags, "ontbijt", "breakfast") ||
		containsAny(name, "ontbijt", "breakfast", "brood", "ei", "pancake", "wafel")
}

func isLunchItem(d catalog.Dish) bool {
	category := strings.ToLower(d.Category)
	name := strings.ToLower(d.Title)
	if category == "diner" || category == "main" || category == "hoofdgerecht" ||
		category == "breakfast" || category == "ontbijt" || category == "borrel" ||
		containsAny(name, "ontbijt", "breakfast", "borrel", "hapje") ||
		hasAny(d.Tags, "diner", "ontbijt", "breakfast", "borrel") {
		return false
	}
	return category == "lunch" ||
		hasAny(d.Tags, "lunch", "middag") ||
		containsAny(name, "lunch", "middag", "sandwich", "salade", "soep",
			"pasta", "tosti", "broodje")
}

// isDaytimeItem flags lunch and breakfast fare, which never belongs in a
// dinner or borrel slot.
func isDaytimeItem(d catalog.Dish) bool {
	category := strings.ToLower(d.Category)
	name := strings.ToLower(d.Title)
	return category == "lunch" || category == "breakfast" || category == "ontbijt" ||
		containsAny(name, "tosti", "broodje", "sandwich", "ontbijt", "breakfast") ||
		hasAny(d.Tags, "lunch", "ontbijt", "breakfast")
}

func take(dishes []catalog.Dish, keep func(catalog.Dish) bool, n int) []catalog.Dish {
	out := []catalog.Dish{}
	for _, d := range dishes {
		if len(out) >= n {
			break
		}
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// fill tops recommendations up to MaxSlots with the next best eligible
// dishes. Never pads beyond what the catalog offers.
func fill(recs []catalog.Dish, eligible []catalog.Dish) []catalog.Dish {
	for _, d := range eligible {
		if len(recs) >= MaxSlots {
			break
		}
		if !containsDish(recs, d) {
			recs = append(recs, d)
		}
	}
	if len(recs) > MaxSlots {
		recs = recs[:MaxSlots]
	}
	return recs
}

func containsDish(list []catalog.Dish, d catalog.Dish) bool {
	for _, x := range list {
		if x.ID == d.ID {
			return true
		}
	}
	return false
}
