package recommend

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/StuivertjeP/tolhuis-app/internal/catalog"
)

// MaxPairings bounds the upsell suggestions shown per dish.
const MaxPairings = 3

// Rule synthesizes pairings for dishes that have no sheet entry. The key
// is matched by substring against "taste" plus the guest's taste label,
// exactly as the rules sheet has always been keyed. A structured
// {tasteCode} key would be sturdier but changes which rules fire, so it
// needs product sign-off first.
type Rule struct {
	Key      string   `json:"key"`
	Pairings []string `json:"pairings"` // "kind:name" tokens
}

// Suggestion is one upsell pairing, price split out of the sheet text.
type Suggestion struct {
	DishID        string   `json:"dish_id"`
	Kind          string   `json:"kind"`
	Name          string   `json:"name"`
	NameEN        string   `json:"name_en,omitempty"`
	Suggestion    string   `json:"suggestion"`
	SuggestionEN  string   `json:"suggestion_en,omitempty"`
	Price         float64  `json:"price,omitempty"`
	Description   string   `json:"description"`
	DescriptionEN string   `json:"description_en,omitempty"`
	MatchTags     []string `json:"match_tags"`
	UpsellID      string   `json:"upsell_id"`
	Priority      int      `json:"priority"`
}

var tasteFamilies = map[TasteCode][]string{
	LightFresh:     {"fris", "licht", "light", "fresh"},
	RichHearty:     {"rijk", "hartig", "rich", "hearty"},
	SurprisingFull: {"verrassend", "vol", "surprising", "full"},
}

// SelectPairings returns up to three pairing suggestions for one dish:
// sheet pairings scored against the guest's taste, merged with rule-derived
// ones, de-duplicated on (kind, name). May return zero suggestions; the
// caller renders nothing in that case.
func SelectPairings(dish catalog.Dish, pairings []catalog.Pairing, p Profile, rules []Rule) []Suggestion {
	tasteCode := TasteToCode(p.Taste)

	type scored struct {
		s     Suggestion
		score int
	}
	var table []scored
	for _, pr := range pairings {
		if pr.DishID != dish.ID || !pr.Active {
			continue
		}
		table = append(table, scored{
			s:     toSuggestion(dish.ID, pr),
			score: pairingScore(pr, tasteCode),
		})
	}
	sort.SliceStable(table, func(a, b int) bool { return table[a].score > table[b].score })

	merged := make([]Suggestion, 0, len(table))
	for _, t := range table {
		merged = append(merged, t.s)
	}
	merged = append(merged, rulePairings(dish.ID, rules, p.Taste)...)

	seen := make(map[string]bool)
	out := []Suggestion{}
	for _, s := range merged {
		key := s.Kind + "|" + s.Name
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
		if len(out) == MaxPairings {
			break
		}
	}
	return out
}

func pairingScore(p catalog.Pairing, tasteCode TasteCode) int {
	score := 0

	if len(p.MatchTags) == 0 {
		// untagged means suitable for everyone
		score++
	} else {
		tags := make([]string, len(p.MatchTags))
		for i, t := range p.MatchTags {
			tags[i] = strings.ToLower(strings.TrimSpace(t))
		}
		switch {
		case hasAny(tags, string(tasteCode)):
			score += 10
		case hasAny(tags, tasteFamilies[tasteCode]...):
			score += 10
		case hasAny(tags, "all", "*"):
			score++
		}
	}

	return score + p.Priority
}

func rulePairings(dishID string, rules []Rule, taste string) []Suggestion {
	tastePref := strings.ToLower(taste)

	out := []Suggestion{}
	for _, r := range rules {
		key := strings.ToLower(r.Key)
		if !strings.Contains(key, "taste") || !strings.Contains(key, tastePref) {
			continue
		}
		for _, tok := range r.Pairings {
			kind, name, _ := strings.Cut(tok, ":")
			kind = strings.TrimSpace(kind)
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			out = append(out, Suggestion{
				DishID:    dishID,
				Kind:      kind,
				Name:      name,
				MatchTags: []string{},
				UpsellID:  "rule_" + kind + "_" + name,
			})
		}
	}
	return out
}

var priceSuffixRe = regexp.MustCompile(`\s*\+\s*€?\s*([\d]+(?:[.,]\d+)?)\s*$`)

// SplitPriceSuffix separates "Glas Merlot + €5,95" into name and price.
// Text without a price suffix comes back unchanged with price 0.
func SplitPriceSuffix(suggestion string) (string, float64) {
	m := priceSuffixRe.FindStringSubmatch(suggestion)
	if m == nil {
		return strings.TrimSpace(suggestion), 0
	}
	price, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return strings.TrimSpace(suggestion), 0
	}
	return strings.TrimSpace(strings.TrimSuffix(suggestion, m[0])), price
}

func toSuggestion(dishID string, p catalog.Pairing) Suggestion {
	name, price := SplitPriceSuffix(p.Suggestion)
	nameEN, _ := SplitPriceSuffix(p.SuggestionEN)

	return Suggestion{
		DishID:        dishID,
		Kind:          p.Kind,
		Name:          name,
		NameEN:        nameEN,
		Suggestion:    p.Suggestion,
		SuggestionEN:  p.SuggestionEN,
		Price:         price,
		Description:   p.Description,
		DescriptionEN: p.DescriptionEN,
		MatchTags:     p.MatchTags,
		UpsellID:      "pairing_" + p.Kind + "_" + dishID,
		Priority:      p.Priority,
	}
}
