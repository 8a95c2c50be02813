package recommend

import (
	"testing"

	"github.com/StuivertjeP/tolhuis-app/internal/catalog"
)

func TestRankEmptyCatalog(t *testing.T) {
	got := Rank(nil, Profile{Diet: DietMeat, Taste: "Licht & Fris"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestRankNeverDropsDishes(t *testing.T) {
	// worst case: diet mismatch plus opposite taste tags
	d := dish(func(d *catalog.Dish) {
		d.Tags = []string{"rijk", "hartig"}
	})
	got := Rank([]catalog.Dish{d}, Profile{Diet: DietVeg, Taste: "Licht & Fris"})
	if len(got) != 1 || got[0].ID != d.ID {
		t.Fatal("diet/taste mismatch must only lower rank, never remove the dish")
	}
}

func TestRankPrefersDietMatch(t *testing.T) {
	meat := dish(func(d *catalog.Dish) { d.ID = "meat" })
	veg := dish(func(d *catalog.Dish) {
		d.ID = "veg"
		d.Title = "Groenteschotel"
		d.Type = "vega"
		d.Diet = []string{"veg"}
		d.Category = "main"
	})

	got := Rank([]catalog.Dish{meat, veg}, Profile{Diet: DietVeg})
	if got[0].ID != "veg" {
		t.Fatalf("expected veg dish first, got %s", got[0].ID)
	}
}

func TestRankVegetarianSpecialBoost(t *testing.T) {
	dishes := []catalog.Dish{
		dish(func(d *catalog.Dish) { d.ID = "a"; d.Title = "Gegrilde groenten"; d.Type = "vega"; d.Diet = []string{"veg"} }),
		dish(func(d *catalog.Dish) { d.ID = "b"; d.Title = "Vegetarische hap"; d.Type = "vega"; d.Diet = []string{"veg"} }),
		dish(func(d *catalog.Dish) { d.ID = "c" }),
	}

	got := Rank(dishes, Profile{Diet: DietVeg})
	if got[0].ID != "b" {
		t.Fatalf("expected the vegetarian special first, got %s", got[0].ID)
	}

	// no boost for other diets
	got = Rank(dishes, Profile{Diet: DietMeat})
	if got[0].ID == "b" {
		t.Fatal("special boost must only apply to vegetarian guests")
	}
}

func TestRankTasteAlignment(t *testing.T) {
	light := dish(func(d *catalog.Dish) { d.ID = "light"; d.Tags = []string{"licht", "fris"} })
	rich := dish(func(d *catalog.Dish) { d.ID = "rich"; d.Tags = []string{"rijk", "hartig"} })

	got := Rank([]catalog.Dish{rich, light}, Profile{Diet: DietMeat, Taste: "Licht & Fris"})
	if got[0].ID != "light" {
		t.Fatalf("expected light dish first for light_fresh, got %s", got[0].ID)
	}

	got = Rank([]catalog.Dish{light, rich}, Profile{Diet: DietMeat, Taste: "Rijk & Hartig"})
	if got[0].ID != "rich" {
		t.Fatalf("expected rich dish first for rich_hearty, got %s", got[0].ID)
	}

	// surprising_full rewards rich tags as well
	got = Rank([]catalog.Dish{light, rich}, Profile{Diet: DietMeat, Taste: "Verrassend & Vol"})
	if got[0].ID != "rich" {
		t.Fatalf("expected rich dish first for surprising_full, got %s", got[0].ID)
	}
}

func TestRankUnknownTasteIsNeutral(t *testing.T) {
	light := dish(func(d *catalog.Dish) { d.ID = "light"; d.Tags = []string{"licht"} })
	rich := dish(func(d *catalog.Dish) { d.ID = "rich"; d.Tags = []string{"rijk"} })

	got := Rank([]catalog.Dish{light, rich}, Profile{Diet: DietMeat, Taste: "Pittig & Gedurfd"})
	// equal scores: catalog order must hold
	if got[0].ID != "light" || got[1].ID != "rich" {
		t.Fatalf("unknown taste should score neutral and keep input order, got %s,%s", got[0].ID, got[1].ID)
	}
}

func TestRankStableTies(t *testing.T) {
	a := dish(func(d *catalog.Dish) { d.ID = "a" })
	b := dish(func(d *catalog.Dish) { d.ID = "b" })
	c := dish(func(d *catalog.Dish) { d.ID = "c" })

	got := Rank([]catalog.Dish{a, b, c}, Profile{Diet: DietMeat})
	for i, want := range []string{"a", "b", "c"} {
		if got[i].ID != want {
			t.Fatalf("tie-break must keep catalog order, got %v", []string{got[0].ID, got[1].ID, got[2].ID})
		}
	}
}

func TestSpecialDish(t *testing.T) {
	a := dish(func(d *catalog.Dish) { d.ID = "a" })
	w := dish(func(d *catalog.Dish) { d.ID = "w"; d.IsWeek = true })
	ranked := []catalog.Dish{a, w}

	got := SpecialDish(ranked, []catalog.Dish{w})
	if got == nil || got.ID != "w" {
		t.Fatalf("expected best-ranked week dish, got %+v", got)
	}

	got = SpecialDish(ranked, nil)
	if got == nil || got.ID != "a" {
		t.Fatalf("expected top-ranked fallback, got %+v", got)
	}

	if got := SpecialDish(nil, nil); got != nil {
		t.Fatalf("expected nil for empty catalog, got %+v", got)
	}
}
