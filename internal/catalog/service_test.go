package catalog

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeFetcher struct {
	rows  map[string][][]string
	err   error
	calls int
}

func (f *fakeFetcher) FetchRows(_ context.Context, sheet string) ([][]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[sheet], nil
}

func dataRow(id, section, title string, active, isWeek string) []string {
	return []string{id, section, title, "beschrijving", "9,50", "vlees", "main", "meat", "rijk", active, isWeek, "", ""}
}

func header() []string {
	return []string{"id", "section", "title", "description", "price", "type", "category", "diet", "tags", "active", "is_week", "supplier", "date"}
}

func TestMenuFiltersInactive(t *testing.T) {
	f := &fakeFetcher{rows: map[string][][]string{
		SheetMenu: {
			header(),
			dataRow("d1", "diner", "Biefstuk", "TRUE", "FALSE"),
			dataRow("d2", "diner", "Oud gerecht", "FALSE", "FALSE"),
		},
	}}
	s := NewService(f)

	menu, err := s.Menu(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(menu) != 1 || menu[0].ID != "d1" {
		t.Fatalf("expected only the active dish, got %+v", menu)
	}
}

func TestMenuUsesCache(t *testing.T) {
	f := &fakeFetcher{rows: map[string][][]string{
		SheetMenu: {header(), dataRow("d1", "diner", "Biefstuk", "TRUE", "FALSE")},
	}}
	s := NewService(f)

	ctx := context.Background()
	if _, err := s.Menu(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Menu(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.calls != 1 {
		t.Fatalf("expected 1 fetch within TTL, got %d", f.calls)
	}

	s.Invalidate()
	if _, err := s.Menu(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.calls != 2 {
		t.Fatalf("expected refetch after invalidate, got %d calls", f.calls)
	}
}

func TestMenuServesStaleOnFetchError(t *testing.T) {
	f := &fakeFetcher{rows: map[string][][]string{
		SheetMenu: {header(), dataRow("d1", "diner", "Biefstuk", "TRUE", "FALSE")},
	}}
	s := NewServiceWithTTL(f, time.Nanosecond)

	ctx := context.Background()
	if _, err := s.Menu(ctx); err != nil {
		t.Fatalf("seed fetch failed: %v", err)
	}

	f.err = errors.New("sheets down")
	menu, err := s.Menu(ctx)
	if err != nil {
		t.Fatalf("expected stale fallback, got error: %v", err)
	}
	if len(menu) != 1 {
		t.Fatalf("expected stale menu of 1 dish, got %d", len(menu))
	}
}

func TestMenuErrorWithoutCache(t *testing.T) {
	f := &fakeFetcher{err: errors.New("sheets down")}
	s := NewService(f)

	menu, err := s.Menu(context.Background())
	if err == nil {
		t.Fatal("expected error when no cached data exists")
	}
	if len(menu) != 0 {
		t.Fatalf("expected empty menu, got %+v", menu)
	}
}

func TestWeekmenuRequiresWeekFlag(t *testing.T) {
	f := &fakeFetcher{rows: map[string][][]string{
		SheetWeekmenu: {
			header(),
			dataRow("w1", "weekmenu", "Zeebaarsfilet", "TRUE", "TRUE"),
			dataRow("d1", "diner", "Biefstuk", "TRUE", "FALSE"),
		},
	}}
	s := NewService(f)

	week, err := s.Weekmenu(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(week) != 1 || week[0].ID != "w1" {
		t.Fatalf("expected only the week dish, got %+v", week)
	}
}

func TestPairingsFiltersInactive(t *testing.T) {
	f := &fakeFetcher{rows: map[string][][]string{
		SheetPairings: {
			{"dish_id", "venue", "suggestion", "description", "kind", "match_tags", "priority", "active"},
			{"d1", "tolhuis", "Glas Merlot + €5,95", "", "wine", "rich_hearty", "8", "TRUE"},
			{"d1", "tolhuis", "Oude suggestie", "", "wine", "", "5", "FALSE"},
		},
	}}
	s := NewService(f)

	pairings, err := s.Pairings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairings) != 1 || pairings[0].Suggestion != "Glas Merlot + €5,95" {
		t.Fatalf("expected one active pairing, got %+v", pairings)
	}
}

func TestCurrentPeriod(t *testing.T) {
	row := dataRow("w1", "weekmenu", "Zeebaarsfilet", "TRUE", "TRUE")
	row[12] = "'t Tolhuis Journaal No.12 (13 jan t/m 19 jan 2025)"
	f := &fakeFetcher{rows: map[string][][]string{
		SheetWeekmenu: {header(), row},
	}}
	s := NewService(f)

	got := s.CurrentPeriod(context.Background())
	if got != "13 jan t/m 19 jan 2025" {
		t.Fatalf("unexpected period: %q", got)
	}
}

func TestCurrentPeriodFallbacks(t *testing.T) {
	if got := parsePeriod("'t Tolhuis Journaal No.3 Lentekaart"); got != "Lentekaart" {
		t.Errorf("expected prefix-stripped fallback, got %q", got)
	}

	f := &fakeFetcher{rows: map[string][][]string{SheetWeekmenu: {header()}}}
	s := NewService(f)
	if got := s.CurrentPeriod(context.Background()); got != FallbackPeriod {
		t.Errorf("expected %q without weekmenu, got %q", FallbackPeriod, got)
	}
}
