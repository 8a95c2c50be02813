package weather

import "strings"

// Category buckets current conditions for recommendation copy.
type Category string

const (
	HotSunny   Category = "hot_sunny"
	Hot        Category = "hot"
	Cold       Category = "cold"
	Rain       Category = "rain"
	Snow       Category = "snow"
	CloudsWarm Category = "clouds_warm"
	CloudsCool Category = "clouds_cool"
	NeutralCat Category = "neutral"
)

// Categorize maps temperature and condition onto a bucket. Precipitation
// beats temperature except at the extremes.
func Categorize(cur Current) Category {
	cond := strings.ToLower(cur.Condition)

	switch {
	case cond == "snow":
		return Snow
	case cur.Temp >= 25 && cond == "clear":
		return HotSunny
	case cur.Temp >= 22:
		return Hot
	case cond == "rain" || cond == "drizzle" || cond == "thunderstorm":
		return Rain
	case cur.Temp < 8:
		return Cold
	case cond == "clouds" && cur.Temp >= 15:
		return CloudsWarm
	case cond == "clouds" && cur.Temp < 12:
		return CloudsCool
	default:
		return NeutralCat
	}
}

type welcomeCopy struct {
	nl string
	en string
}

var welcomeByCategory = map[Category]welcomeCopy{
	HotSunny:   {"Wat een heerlijke zonnige dag! Ons terras staat voor je klaar.", "What a gorgeous sunny day! Our terrace is waiting for you."},
	Hot:        {"Lekker warm vandaag. Iets fris erbij?", "Nice and warm today. Something refreshing on the side?"},
	Cold:       {"Brr, koud buiten! Kom lekker opwarmen.", "Brr, cold out there! Come warm up with us."},
	Rain:       {"Regenachtig buiten, des te gezelliger binnen.", "Rainy outside, all the cosier inside."},
	Snow:       {"Sneeuw! Tijd voor iets warms en hartigs.", "Snow! Time for something warm and hearty."},
	CloudsWarm: {"Zacht weer vandaag, perfect voor een lange lunch.", "Mild weather today, perfect for a long lunch."},
	CloudsCool: {"Een frisse dag, ideaal voor comfortfood.", "A crisp day, ideal for comfort food."},
	NeutralCat: {"Welkom bij 't Tolhuis!", "Welcome to 't Tolhuis!"},
}

// WelcomeMessage returns a short weather-aware welcome line.
func WelcomeMessage(cat Category, lang string) string {
	copy, ok := welcomeByCategory[cat]
	if !ok {
		copy = welcomeByCategory[NeutralCat]
	}
	if lang == "en" {
		return copy.en
	}
	return copy.nl
}
