package daypart

import (
	"os"
	"strconv"
	"time"
)

// Daypart names the segment of the day driving recommendations.
type Daypart string

const (
	Breakfast Daypart = "breakfast"
	Lunch     Daypart = "lunch"
	Borrel    Daypart = "borrel"
	Dinner    Daypart = "dinner"
)

// Config holds the daypart boundaries (hours, half-open [Start, End)).
// Boundary values are a business rule, so they are configurable rather
// than hard-coded.
type Config struct {
	BreakfastStart int
	LunchStart     int
	BorrelStart    int
	DinnerStart    int
	DinnerEnd      int
	// On Fridays the borrel starts earlier.
	FridayBorrelStart int
}

func DefaultConfig() Config {
	return Config{
		BreakfastStart:    6,
		LunchStart:        11,
		BorrelStart:       16,
		DinnerStart:       19,
		DinnerEnd:         23,
		FridayBorrelStart: 15,
	}
}

// ConfigFromEnv overrides the defaults from DAYPART_* variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	envHour("DAYPART_BREAKFAST_START", &cfg.BreakfastStart)
	envHour("DAYPART_LUNCH_START", &cfg.LunchStart)
	envHour("DAYPART_BORREL_START", &cfg.BorrelStart)
	envHour("DAYPART_DINNER_START", &cfg.DinnerStart)
	envHour("DAYPART_DINNER_END", &cfg.DinnerEnd)
	envHour("DAYPART_FRIDAY_BORREL_START", &cfg.FridayBorrelStart)
	return cfg
}

func envHour(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 24 {
			*dst = h
		}
	}
}

// Signals is the derived time context for one request.
type Signals struct {
	Time      time.Time `json:"time"`
	Hour      int       `json:"hour"`
	DayOfWeek int       `json:"day_of_week"`
	IsFriday  bool      `json:"is_friday"`
	Daypart   Daypart   `json:"daypart"`
	Name      string    `json:"name"`
	NameEN    string    `json:"name_en"`
}

// At derives the daypart signals for the given wall-clock time.
func (c Config) At(now time.Time) Signals {
	hour := now.Hour()
	friday := now.Weekday() == time.Friday

	borrelStart := c.BorrelStart
	if friday {
		borrelStart = c.FridayBorrelStart
	}

	dp := Borrel // late-night fallback
	switch {
	case hour >= c.BreakfastStart && hour < c.LunchStart:
		dp = Breakfast
	case hour >= c.LunchStart && hour < borrelStart:
		dp = Lunch
	case hour >= borrelStart && hour < c.DinnerStart:
		dp = Borrel
	case hour >= c.DinnerStart && hour < c.DinnerEnd:
		dp = Dinner
	}

	name, nameEN := localNames(dp)
	return Signals{
		Time:      now,
		Hour:      hour,
		DayOfWeek: int(now.Weekday()),
		IsFriday:  friday,
		Daypart:   dp,
		Name:      name,
		NameEN:    nameEN,
	}
}

func localNames(dp Daypart) (string, string) {
	switch dp {
	case Breakfast:
		return "ontbijt", "breakfast"
	case Lunch:
		return "lunch", "lunch"
	case Borrel:
		return "borrel", "aperitif"
	default:
		return "diner", "dinner"
	}
}
