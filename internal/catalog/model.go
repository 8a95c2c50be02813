package catalog

// Dish is one sellable menu line, normalized from a sheet row.
// Never mutated after creation; a re-fetch replaces the whole collection.
type Dish struct {
	ID            string   `json:"id"`
	Venue         string   `json:"venue"`
	Section       string   `json:"section"`
	Title         string   `json:"title"`
	TitleEN       string   `json:"title_en,omitempty"`
	Description   string   `json:"description"`
	DescriptionEN string   `json:"description_en,omitempty"`
	Price         float64  `json:"price"`
	Type          string   `json:"type"`
	Category      string   `json:"category"`
	Diet          []string `json:"diet"`
	Tags          []string `json:"tags"`
	Active        bool     `json:"active"`
	IsWeek        bool     `json:"is_week"`
	Supplier      string   `json:"supplier,omitempty"`
	Date          string   `json:"date,omitempty"`
}

// Pairing is a suggested add-on for a specific dish. The suggestion text
// may carry a price suffix ("Glas Merlot + €5,95"); splitting that out is
// the recommendation layer's job.
type Pairing struct {
	DishID          string   `json:"dish_id"`
	Venue           string   `json:"venue"`
	Suggestion      string   `json:"suggestion"`
	SuggestionEN    string   `json:"suggestion_en"`
	Description     string   `json:"description"`
	DescriptionEN   string   `json:"description_en"`
	AIDescriptionNL string   `json:"ai_description_nl,omitempty"`
	AIDescriptionEN string   `json:"ai_description_en,omitempty"`
	Kind            string   `json:"kind"`
	MatchTags       []string `json:"match_tags"`
	Priority        int      `json:"priority"`
	Active          bool     `json:"active"`
	RowIndex        int      `json:"-"`
}
