package recommend

import (
	"strings"
	"unicode"
)

// TasteCode is a canonical taste-profile token.
type TasteCode string

const (
	LightFresh     TasteCode = "light_fresh"
	RichHearty     TasteCode = "rich_hearty"
	SurprisingFull TasteCode = "surprising_full"
)

// TasteToCode normalizes a localized, possibly emoji-decorated taste label
// ("✨ Licht & Fris", "Rich & hearty") into a canonical code. Labels that
// match none of the known NL/EN keyword pairs fall back to a slug of the
// raw text, which downstream scoring treats as neutral.
func TasteToCode(label string) TasteCode {
	x := strings.ToLower(stripDecoration(label))

	switch {
	case containsAny(x, "licht", "light") && containsAny(x, "fris", "fresh"):
		return LightFresh
	case containsAny(x, "rijk", "rich") && containsAny(x, "hartig", "hearty"):
		return RichHearty
	case containsAny(x, "verrassend", "surprising") && containsAny(x, "vol", "full"):
		return SurprisingFull
	}
	return TasteCode(strings.Join(strings.Fields(x), "_"))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func stripDecoration(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '&' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
