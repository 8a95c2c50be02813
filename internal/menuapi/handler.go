package menuapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/StuivertjeP/tolhuis-app/internal/catalog"
	"github.com/StuivertjeP/tolhuis-app/internal/daypart"
	"github.com/StuivertjeP/tolhuis-app/internal/llm"
	"github.com/StuivertjeP/tolhuis-app/internal/recommend"
	"github.com/StuivertjeP/tolhuis-app/internal/translate"
	"github.com/StuivertjeP/tolhuis-app/internal/weather"
)

const sheetUnavailable = "menukaart tijdelijk niet beschikbaar"

type Handler struct {
	catalog *catalog.Service
	weather *weather.Client
	copy    llm.Client // nil means template copy only
	cfg     daypart.Config
	now     func() time.Time
}

func NewHandler(cat *catalog.Service, w *weather.Client, copyClient llm.Client, cfg daypart.Config) *Handler {
	return &Handler{
		catalog: cat,
		weather: w,
		copy:    copyClient,
		cfg:     cfg,
		now:     time.Now,
	}
}

//
// --------------------------------------------------
// GET /api/menu
// --------------------------------------------------
//

func (h *Handler) Menu() gin.HandlerFunc {
	return func(c *gin.Context) {

		dishes, err := h.catalog.Menu(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": sheetUnavailable})
			return
		}

		c.JSON(http.StatusOK, withEnglish(dishes))
	}
}

//
// --------------------------------------------------
// GET /api/weekmenu
// --------------------------------------------------
//

func (h *Handler) Weekmenu() gin.HandlerFunc {
	return func(c *gin.Context) {

		dishes, err := h.catalog.Weekmenu(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": sheetUnavailable})
			return
		}

		c.JSON(http.StatusOK, withEnglish(dishes))
	}
}

//
// --------------------------------------------------
// GET /api/period
// --------------------------------------------------
//

func (h *Handler) Period() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"period": h.catalog.CurrentPeriod(c.Request.Context())})
	}
}

//
// --------------------------------------------------
// GET /api/recommendations?diet&taste&name
// --------------------------------------------------
//

func (h *Handler) Recommendations() gin.HandlerFunc {
	return func(c *gin.Context) {

		profile := recommend.Profile{
			Name:  c.Query("name"),
			Diet:  c.DefaultQuery("diet", recommend.DietAll),
			Taste: c.Query("taste"),
		}

		menu, err := h.catalog.Menu(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": sheetUnavailable})
			return
		}

		// weekmenu failure only costs the special dish, never the page
		week, _ := h.catalog.Weekmenu(c.Request.Context())

		combined := make([]catalog.Dish, 0, len(menu)+len(week))
		combined = append(combined, menu...)
		combined = append(combined, week...)

		ranked := recommend.Rank(combined, profile)
		special := recommend.SpecialDish(ranked, week)

		// week dishes get their own section, keep them out of the slots
		slots := recommend.FillDaypartSlots(withoutWeek(ranked), h.daypart().Daypart)

		resp := gin.H{
			"daypart": h.daypart(),
			"menu":    withEnglish(recommend.Rank(menu, profile)),
			"slots":   withEnglish(slots),
		}
		if special != nil {
			s := withEnglish([]catalog.Dish{*special})[0]
			resp["special"] = s
		}

		c.JSON(http.StatusOK, resp)
	}
}

//
// --------------------------------------------------
// GET /api/dishes/:id/pairings?taste&lang
// --------------------------------------------------
//

func (h *Handler) Pairings() gin.HandlerFunc {
	return func(c *gin.Context) {

		lang := c.DefaultQuery("lang", "nl")
		profile := recommend.Profile{Taste: c.Query("taste")}

		dish, ok := h.findDish(c, c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "gerecht niet gevonden"})
			return
		}

		pairings, err := h.catalog.Pairings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": sheetUnavailable})
			return
		}

		suggestions := recommend.SelectPairings(dish, pairings, profile, defaultRules)
		for i := range suggestions {
			if suggestions[i].Description == "" {
				suggestions[i].Description = llm.PairingCopy(
					c.Request.Context(), h.copy, dish.Title, suggestions[i].Name, "nl")
			}
			if suggestions[i].DescriptionEN == "" && lang == "en" {
				suggestions[i].DescriptionEN = llm.PairingCopy(
					c.Request.Context(), h.copy, dish.Title, suggestions[i].Name, "en")
			}
		}

		c.JSON(http.StatusOK, suggestions)
	}
}

//
// --------------------------------------------------
// GET /api/context?lang&name
// --------------------------------------------------
//

func (h *Handler) Context() gin.HandlerFunc {
	return func(c *gin.Context) {

		lang := c.DefaultQuery("lang", "nl")
		now := h.now()
		sig := h.cfg.At(now)

		greeting, message, emoji := daypart.TemplateIntro(now, lang, c.Query("name"))

		// personal intro when an AI client is wired; the template stays the
		// fallback on any failure
		if h.copy != nil {
			name := sig.Name
			if lang == "en" {
				name = sig.NameEN
			}
			prompt := llm.IntroPrompt(c.Query("name"), name, lang)
			if text, err := h.copy.Generate(c.Request.Context(), prompt, lang); err == nil {
				if trimmed := strings.TrimSpace(text); trimmed != "" {
					message = trimmed
				}
			}
		}

		cur := h.weather.Fetch(c.Request.Context())
		cat := weather.Categorize(cur)

		c.JSON(http.StatusOK, gin.H{
			"daypart":  sig,
			"chef":     llm.ChefTitle(now),
			"time":     daypart.TimeContextAt(now),
			"season":   daypart.SeasonContextAt(now),
			"greeting": greeting,
			"message":  message,
			"emoji":    emoji,
			"weather": gin.H{
				"temp":      cur.Temp,
				"condition": cur.Condition,
				"category":  cat,
				"welcome":   weather.WelcomeMessage(cat, lang),
			},
		})
	}
}

//
// --------------------------------------------------
// POST /admin/cache/invalidate
// --------------------------------------------------
//

func (h *Handler) InvalidateCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.catalog.Invalidate()
		c.JSON(http.StatusOK, gin.H{"message": "caches cleared"})
	}
}

func (h *Handler) daypart() daypart.Signals {
	return h.cfg.At(h.now())
}

func (h *Handler) findDish(c *gin.Context, id string) (catalog.Dish, bool) {
	menu, err := h.catalog.Menu(c.Request.Context())
	if err == nil {
		for _, d := range menu {
			if d.ID == id {
				return d, true
			}
		}
	}
	week, err := h.catalog.Weekmenu(c.Request.Context())
	if err == nil {
		for _, d := range week {
			if d.ID == id {
				return d, true
			}
		}
	}
	return catalog.Dish{}, false
}

// withEnglish fills missing English fields from the curated dictionary so
// the frontend can always render both languages.
func withEnglish(dishes []catalog.Dish) []catalog.Dish {
	out := make([]catalog.Dish, len(dishes))
	copy(out, dishes)
	for i := range out {
		if out[i].TitleEN == "" {
			out[i].TitleEN = translate.ToEnglish(out[i].Title)
		}
		if out[i].DescriptionEN == "" && out[i].Description != "" {
			out[i].DescriptionEN = translate.ToEnglish(out[i].Description)
		}
	}
	return out
}

func withoutWeek(dishes []catalog.Dish) []catalog.Dish {
	out := make([]catalog.Dish, 0, len(dishes))
	for _, d := range dishes {
		if !d.IsWeek {
			out = append(out, d)
		}
	}
	return out
}
