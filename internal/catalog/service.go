package catalog

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/StuivertjeP/tolhuis-app/internal/cache"
)

const DefaultTTL = 30 * time.Second

// FallbackPeriod is shown when no weekmenu date can be resolved.
const FallbackPeriod = "Huidige week"

// Service loads and normalizes the menu, weekmenu and pairing sheets,
// caching each behind a TTL. Stale data is served when a refresh fails.
type Service struct {
	fetcher  RowFetcher
	dishes   *cache.TTL[[]Dish]
	pairings *cache.TTL[[]Pairing]
	period   *cache.TTL[string]
}

func NewService(fetcher RowFetcher) *Service {
	return NewServiceWithTTL(fetcher, DefaultTTL)
}

func NewServiceWithTTL(fetcher RowFetcher, ttl time.Duration) *Service {
	return &Service{
		fetcher:  fetcher,
		dishes:   cache.New[[]Dish](ttl),
		pairings: cache.New[[]Pairing](ttl),
		period:   cache.New[string](ttl),
	}
}

// Menu returns the active dishes from the menu sheet.
func (s *Service) Menu(ctx context.Context) ([]Dish, error) {
	return s.loadDishes(ctx, SheetMenu, func(d Dish) bool { return d.Active })
}

// Weekmenu returns the active dish-of-the-week items.
func (s *Service) Weekmenu(ctx context.Context) ([]Dish, error) {
	return s.loadDishes(ctx, SheetWeekmenu, func(d Dish) bool { return d.Active && d.IsWeek })
}

// Pairings returns the active pairing suggestions.
func (s *Service) Pairings(ctx context.Context) ([]Pairing, error) {
	if cached, fresh := s.pairings.Get(SheetPairings); fresh {
		return cached, nil
	}

	rows, err := s.fetcher.FetchRows(ctx, SheetPairings)
	if err != nil {
		if stale, _ := s.pairings.Get(SheetPairings); stale != nil {
			log.Printf("pairings refresh failed, serving stale data: %v", err)
			return stale, nil
		}
		return []Pairing{}, err
	}

	items := []Pairing{}
	for i, row := range rows {
		p, reason := MapPairingRow(row, i)
		if p == nil {
			if reason != SkipHeader {
				log.Printf("pairings row %d skipped: %s", i, reason)
			}
			continue
		}
		if p.Active {
			items = append(items, *p)
		}
	}

	s.pairings.Set(SheetPairings, items)
	return items, nil
}

// journaal header, e.g. "'t Tolhuis Journaal No.12 (13 jan t/m 19 jan 2025)"
var (
	periodRe   = regexp.MustCompile(`(?i)\((\d{1,2})\s+(jan|feb|mrt|apr|mei|jun|jul|aug|sep|okt|nov|dec)\s+t/m\s+(\d{1,2})\s+(jan|feb|mrt|apr|mei|jun|jul|aug|sep|okt|nov|dec)\s+(\d{4})\)`)
	journaalRe = regexp.MustCompile(`^'t Tolhuis Journaal No\.\d+\s*`)
)

// CurrentPeriod derives the week period shown above the weekmenu from the
// first weekmenu row's date string.
func (s *Service) CurrentPeriod(ctx context.Context) string {
	if cached, fresh := s.period.Get("period"); fresh {
		return cached
	}

	period := FallbackPeriod
	week, err := s.Weekmenu(ctx)
	if err == nil && len(week) > 0 && week[0].Date != "" {
		period = parsePeriod(week[0].Date)
	}

	s.period.Set("period", period)
	return period
}

// Invalidate drops every cached sheet so the next read refetches.
func (s *Service) Invalidate() {
	s.dishes.InvalidateAll()
	s.pairings.InvalidateAll()
	s.period.InvalidateAll()
	log.Println("catalog caches cleared")
}

func (s *Service) loadDishes(ctx context.Context, sheet string, keep func(Dish) bool) ([]Dish, error) {
	if cached, fresh := s.dishes.Get(sheet); fresh {
		return cached, nil
	}

	rows, err := s.fetcher.FetchRows(ctx, sheet)
	if err != nil {
		if stale, _ := s.dishes.Get(sheet); stale != nil {
			log.Printf("%s refresh failed, serving stale data: %v", sheet, err)
			return stale, nil
		}
		return []Dish{}, err
	}

	items := []Dish{}
	for i, row := range rows {
		d, reason := MapMenuRow(row, i)
		if d == nil {
			if reason != SkipHeader {
				log.Printf("%s row %d skipped: %s", sheet, i, reason)
			}
			continue
		}
		if keep(*d) {
			items = append(items, *d)
		}
	}

	s.dishes.Set(sheet, items)
	return items, nil
}

func parsePeriod(date string) string {
	if m := periodRe.FindStringSubmatch(date); m != nil {
		return fmt.Sprintf("%s %s t/m %s %s %s", m[1], m[2], m[3], m[4], m[5])
	}
	if stripped := journaalRe.ReplaceAllString(date, ""); stripped != "" {
		return stripped
	}
	return FallbackPeriod
}
