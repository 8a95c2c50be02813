package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

var chefTitles = []string{"Onze chef", "De keuken", "Onze sommelier", "Het team"}

// ChefTitle rotates the sender of generated copy by hour so repeat visits
// within a day do not always read the same voice.
func ChefTitle(now time.Time) string {
	return chefTitles[now.Hour()%len(chefTitles)]
}

// PairingPrompt asks for a short upsell line for one dish and pairing.
func PairingPrompt(dishTitle, pairingName, lang string) string {
	if lang == "en" {
		return fmt.Sprintf(
			"Write a short, appetizing recommendation for pairing %q with the dish %q. Two sentences at most.",
			pairingName, dishTitle,
		)
	}
	return fmt.Sprintf(
		"Schrijf een korte, smakelijke aanbeveling voor de combinatie van %q bij het gerecht %q. Maximaal twee zinnen.",
		pairingName, dishTitle,
	)
}

// PairingCopy generates pairing copy via the client, falling back to a
// deterministic template when the client is nil or fails. The guest never
// sees an error from this path.
func PairingCopy(ctx context.Context, c Client, dishTitle, pairingName, lang string) string {
	if c != nil {
		if text, err := c.Generate(ctx, PairingPrompt(dishTitle, pairingName, lang), lang); err == nil {
			if trimmed := strings.TrimSpace(text); trimmed != "" {
				return trimmed
			}
		}
	}
	return FallbackPairingCopy(dishTitle, pairingName, lang)
}

func FallbackPairingCopy(dishTitle, pairingName, lang string) string {
	if lang == "en" {
		return fmt.Sprintf(
			"A perfect match for %s. %s complements the flavours without overpowering them.",
			dishTitle, pairingName,
		)
	}
	return fmt.Sprintf(
		"Perfecte combinatie met %s. %s versterkt de smaken zonder te overheersen.",
		dishTitle, pairingName,
	)
}

// IntroPrompt asks for a personal welcome line given the moment of day.
func IntroPrompt(userName, daypartName, lang string) string {
	name := strings.TrimSpace(userName)
	if lang == "en" {
		if name == "" {
			return fmt.Sprintf("Write a short, warm welcome for a restaurant guest during the %s. One sentence.", daypartName)
		}
		return fmt.Sprintf("Write a short, warm welcome for %s, a restaurant guest, during the %s. One sentence.", name, daypartName)
	}
	if name == "" {
		return fmt.Sprintf("Schrijf een korte, warme welkomstboodschap voor een restaurantgast tijdens de %s. Eén zin.", daypartName)
	}
	return fmt.Sprintf("Schrijf een korte, warme welkomstboodschap voor %s, een restaurantgast, tijdens de %s. Eén zin.", name, daypartName)
}
