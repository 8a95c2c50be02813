package catalog

import (
	"strconv"
	"strings"
)

// Skip reasons reported by the row mappers. A skipped row is logged and
// dropped; one bad row never aborts the batch.
const (
	SkipHeader         = "header row"
	SkipShortRow       = "too few columns"
	SkipMissingTitle   = "missing title"
	SkipMissingSection = "missing section"
	SkipBadPrice       = "missing or unparseable price"
	SkipMissingDish    = "missing dish_id or suggestion"
)

// Menu sheet columns:
// A=id, B=section, C=title, D=description, E=price, F=type, G=category,
// H=diet, I=tags, J=active, K=is_week, L=supplier, M=date,
// N=title_en, O=description_en
const (
	colID = iota
	colSection
	colTitle
	colDescription
	colPrice
	colType
	colCategory
	colDiet
	colTags
	colActive
	colIsWeek
	colSupplier
	colDate
	colTitleEN
	colDescriptionEN
)

// MapMenuRow normalizes one sheet row into a Dish. A nil Dish with a
// non-empty reason means the row was skipped, not that parsing failed.
func MapMenuRow(row []string, index int) (*Dish, string) {
	if index == 0 {
		return nil, SkipHeader
	}
	if len(row) < 9 {
		return nil, SkipShortRow
	}

	title := strings.TrimSpace(cell(row, colTitle))
	if title == "" {
		return nil, SkipMissingTitle
	}
	section := strings.TrimSpace(cell(row, colSection))
	if section == "" {
		return nil, SkipMissingSection
	}
	price, ok := ParsePrice(cell(row, colPrice))
	if !ok {
		return nil, SkipBadPrice
	}

	id := strings.TrimSpace(cell(row, colID))
	if id == "" {
		id = "item_" + strconv.Itoa(index)
	}

	return &Dish{
		ID:            id,
		Venue:         "tolhuis",
		Section:       strings.ToLower(section),
		Title:         title,
		TitleEN:       strings.TrimSpace(cell(row, colTitleEN)),
		Description:   strings.TrimSpace(cell(row, colDescription)),
		DescriptionEN: strings.TrimSpace(cell(row, colDescriptionEN)),
		Price:         price,
		Type:          strings.TrimSpace(cell(row, colType)),
		Category:      strings.TrimSpace(cell(row, colCategory)),
		Diet:          SplitList(cell(row, colDiet)),
		Tags:          SplitList(cell(row, colTags)),
		Active:        ParseBool(cell(row, colActive)),
		IsWeek:        ParseBool(cell(row, colIsWeek)),
		Supplier:      strings.TrimSpace(cell(row, colSupplier)),
		Date:          strings.TrimSpace(cell(row, colDate)),
	}, ""
}

// Pairing sheet columns:
// A=dish_id, B=venue, C=suggestion, D=description, E=kind, F=match_tags,
// G=priority, H=active, I=suggestion_en, J=description_en,
// K=ai_description_nl, L=ai_description_en
func MapPairingRow(row []string, index int) (*Pairing, string) {
	if index == 0 {
		return nil, SkipHeader
	}
	if len(row) < 7 {
		return nil, SkipShortRow
	}

	dishID := strings.TrimSpace(cell(row, 0))
	suggestion := strings.TrimSpace(cell(row, 2))
	if dishID == "" || suggestion == "" {
		return nil, SkipMissingDish
	}

	venue := strings.TrimSpace(cell(row, 1))
	if venue == "" {
		venue = "tolhuis"
	}
	kind := strings.TrimSpace(cell(row, 4))
	if kind == "" {
		kind = "food"
	}
	suggestionEN := strings.TrimSpace(cell(row, 8))
	if suggestionEN == "" {
		suggestionEN = suggestion
	}
	priority, err := strconv.Atoi(strings.TrimSpace(cell(row, 6)))
	if err != nil {
		priority = 5
	}

	return &Pairing{
		DishID:          dishID,
		Venue:           venue,
		Suggestion:      suggestion,
		SuggestionEN:    suggestionEN,
		Description:     strings.TrimSpace(cell(row, 3)),
		DescriptionEN:   strings.TrimSpace(cell(row, 9)),
		AIDescriptionNL: strings.TrimSpace(cell(row, 10)),
		AIDescriptionEN: strings.TrimSpace(cell(row, 11)),
		Kind:            kind,
		MatchTags:       SplitList(cell(row, 5)),
		Priority:        priority,
		Active:          ParseBool(cell(row, 7)),
		RowIndex:        index,
	}, ""
}

// ParsePrice accepts both "19,95" and "7.50".
func ParsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// ParseBool accepts the multi-locale truthy set used in the sheet.
func ParseBool(s string) bool {
	switch strings.TrimSpace(s) {
	case "TRUE", "true", "1", "WAAR":
		return true
	}
	return false
}

// SplitList splits a tag/diet cell on comma or pipe, trims, drops empties.
func SplitList(s string) []string {
	out := []string{}
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|'
	}) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
