package menuapi

import "github.com/StuivertjeP/tolhuis-app/internal/recommend"

// defaultRules back up the pairings sheet: when a dish has no curated
// pairings, the guest still gets a taste-matched upsell.
var defaultRules = []recommend.Rule{
	{
		Key:      "taste:licht & fris",
		Pairings: []string{"wine:Glas Sauvignon Blanc", "drink:Verse muntthee"},
	},
	{
		Key:      "taste:rijk & hartig",
		Pairings: []string{"wine:Glas Malbec", "beer:Dubbel van de tap"},
	},
	{
		Key:      "taste:verrassend & vol",
		Pairings: []string{"wine:Glas Gewürztraminer", "cocktail:Huisgemaakte gin-tonic"},
	},
}
