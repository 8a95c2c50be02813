package daypart

import "time"

// TimeContext is the guest-facing wording for the current moment.
type TimeContext struct {
	Period     string `json:"period"`
	PeriodEN   string `json:"period_en"`
	Greeting   string `json:"greeting"`
	GreetingEN string `json:"greeting_en"`
	Context    string `json:"context"`
	ContextEN  string `json:"context_en"`
	Emoji      string `json:"emoji"`
}

func TimeContextAt(now time.Time) TimeContext {
	hour := now.Hour()
	switch {
	case hour >= 6 && hour < 12:
		return TimeContext{
			Period: "ochtend", PeriodEN: "morning",
			Greeting: "Goedemorgen", GreetingEN: "Good morning",
			Context:   "Perfect moment voor een ontbijt of vroege lunch",
			ContextEN: "Perfect time for breakfast or early lunch",
			Emoji:     "🌅",
		}
	case hour >= 12 && hour < 17:
		return TimeContext{
			Period: "middag", PeriodEN: "afternoon",
			Greeting: "Goedemiddag", GreetingEN: "Good afternoon",
			Context:   "Ideale tijd voor een uitgebreide lunch op het terras",
			ContextEN: "Perfect time for an extended lunch on the terrace",
			Emoji:     "☀️",
		}
	case hour >= 17 && hour < 21:
		return TimeContext{
			Period: "avond", PeriodEN: "evening",
			Greeting: "Goedenavond", GreetingEN: "Good evening",
			Context:   "Tijd voor een heerlijk diner en gezelligheid",
			ContextEN: "Time for a delicious dinner and coziness",
			Emoji:     "🌆",
		}
	default:
		return TimeContext{
			Period: "nacht", PeriodEN: "night",
			Greeting: "Goedenavond", GreetingEN: "Good evening",
			Context:   "Laat diner of late night snacks",
			ContextEN: "Late dinner or late night snacks",
			Emoji:     "🌙",
		}
	}
}

// SeasonContext marks holiday windows and the season of the year.
type SeasonContext struct {
	Season    string `json:"season"`
	SeasonEN  string `json:"season_en"`
	Message   string `json:"message"`
	MessageEN string `json:"message_en"`
	Special   bool   `json:"special"`
}

func SeasonContextAt(now time.Time) SeasonContext {
	month := int(now.Month())
	day := now.Day()

	if month == 12 && day >= 20 && day <= 26 {
		return SeasonContext{
			Season: "kerst", SeasonEN: "christmas",
			Message:   "🎄 Vrolijk Kerstfeest! Geniet van onze speciale kerstmenu's",
			MessageEN: "🎄 Merry Christmas! Enjoy our special Christmas menus",
			Special:   true,
		}
	}
	if month == 1 && day <= 7 {
		return SeasonContext{
			Season: "nieuwjaar", SeasonEN: "new year",
			Message:   "🥂 Gelukkig Nieuwjaar! Ontdek onze nieuwe gerechten",
			MessageEN: "🥂 Happy New Year! Discover our new dishes",
			Special:   true,
		}
	}
	if month == 2 && day >= 10 && day <= 16 {
		return SeasonContext{
			Season: "valentijn", SeasonEN: "valentine",
			Message:   "💕 Romantisch dineren? Onze chef heeft speciale gerechten bereid",
			MessageEN: "💕 Romantic dinner? Our chef has prepared special dishes",
			Special:   true,
		}
	}
	if month == 3 || month == 4 {
		easter := EasterDate(now.Year())
		if !now.Before(easter.AddDate(0, 0, -7)) && !now.After(easter.AddDate(0, 0, 7)) {
			return SeasonContext{
				Season: "pasen", SeasonEN: "easter",
				Message:   "🐰 Vrolijk Pasen! Proef onze lente specialiteiten",
				MessageEN: "🐰 Happy Easter! Taste our spring specialties",
				Special:   true,
			}
		}
	}

	switch {
	case month >= 6 && month <= 8:
		return SeasonContext{
			Season: "zomer", SeasonEN: "summer",
			Message:   "☀️ Zomerse sfeer! Perfect weer voor een terras moment",
			MessageEN: "☀️ Summer vibes! Perfect weather for a terrace moment",
		}
	case month >= 9 && month <= 11:
		return SeasonContext{
			Season: "herfst", SeasonEN: "autumn",
			Message:   "🍂 Herfstgevoel! Warme gerechten voor koude dagen",
			MessageEN: "🍂 Autumn feeling! Warm dishes for cold days",
		}
	case month == 12 || month <= 2:
		return SeasonContext{
			Season: "winter", SeasonEN: "winter",
			Message:   "❄️ Wintergevoel! Verwarmende gerechten en warme dranken",
			MessageEN: "❄️ Winter feeling! Warming dishes and hot drinks",
		}
	default:
		return SeasonContext{
			Season: "lente", SeasonEN: "spring",
			Message:   "🌸 Lente in de lucht! Verse ingrediënten en lichte gerechten",
			MessageEN: "🌸 Spring in the air! Fresh ingredients and light dishes",
		}
	}
}

// EasterDate computes Easter Sunday (anonymous Gregorian computus).
func EasterDate(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// TemplateIntro is the deterministic fallback when no AI intro is available.
func TemplateIntro(now time.Time, lang, userName string) (greeting, message, emoji string) {
	tc := TimeContextAt(now)
	sc := SeasonContextAt(now)

	greeting = tc.Greeting
	if lang == "en" {
		greeting = tc.GreetingEN
	}
	if userName != "" {
		greeting += ", " + userName
	}

	emoji = tc.Emoji
	if sc.Special {
		message = sc.Message
		if lang == "en" {
			message = sc.MessageEN
		}
		switch sc.Season {
		case "kerst":
			emoji = "🎄"
		case "nieuwjaar":
			emoji = "🥂"
		case "valentijn":
			emoji = "💕"
		default:
			emoji = "🐰"
		}
		return greeting, message, emoji
	}

	if lang == "en" {
		message = tc.ContextEN
	} else {
		message = tc.Context
	}
	return greeting, message, emoji
}
