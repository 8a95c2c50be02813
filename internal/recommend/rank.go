package recommend

import (
	"sort"
	"strings"

	"github.com/StuivertjeP/tolhuis-app/internal/catalog"
)

// Rank orders a dish collection for a guest profile, best match first.
// Scores only move dishes up or down; no dish is ever dropped, so a guest
// can always browse outside their stated preference. Ties keep catalog
// order (stable sort).
func Rank(dishes []catalog.Dish, p Profile) []catalog.Dish {
	if len(dishes) == 0 {
		return []catalog.Dish{}
	}

	tasteCode := TasteToCode(p.Taste)

	scores := make([]int, len(dishes))
	for i, d := range dishes {
		scores[i] = score(d, p, tasteCode)
	}

	ranked := make([]catalog.Dish, len(dishes))
	order := make([]int, len(dishes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	for i, idx := range order {
		ranked[i] = dishes[idx]
	}
	return ranked
}

func score(d catalog.Dish, p Profile, tasteCode TasteCode) int {
	s := 1 // base score for every dish

	// The vegetarian house special always surfaces first for veg guests.
	if p.Diet == DietVeg {
		name := strings.ToLower(d.Title)
		if strings.Contains(name, "vegetarische hap") || strings.Contains(name, "vegetarian dish") {
			s += 100
		}
	}

	if MatchesDiet(d, p.Diet) {
		s += 3
	} else {
		s -= 1
	}

	switch tasteCode {
	case LightFresh:
		if hasAny(d.Tags, "licht", "fris") {
			s += 2
		}
		if hasAny(d.Tags, "rijk", "hartig") {
			s -= 1
		}
	case RichHearty:
		if hasAny(d.Tags, "rijk", "hartig") {
			s += 2
		}
		if hasAny(d.Tags, "licht", "fris") {
			s -= 1
		}
	case SurprisingFull:
		if hasAny(d.Tags, "verrassend", "vol") {
			s += 2
		}
		if hasAny(d.Tags, "rijk", "hartig") {
			s += 2
		}
	}
	return s
}

// SpecialDish picks the dish featured at the top of the menu: the best
// ranked week dish, or the overall best match when no weekmenu is loaded.
func SpecialDish(ranked []catalog.Dish, weekmenu []catalog.Dish) *catalog.Dish {
	if len(weekmenu) > 0 {
		weekIDs := make(map[string]bool, len(weekmenu))
		for _, w := range weekmenu {
			weekIDs[w.ID] = true
		}
		for i := range ranked {
			if weekIDs[ranked[i].ID] {
				return &ranked[i]
			}
		}
		return nil
	}
	if len(ranked) > 0 {
		return &ranked[0]
	}
	return nil
}
