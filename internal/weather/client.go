package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/StuivertjeP/tolhuis-app/internal/cache"
)

// Default coordinates point at the terrace in Hilversum.
const (
	DefaultLat = 52.2242
	DefaultLon = 5.1758

	cacheTTL = 5 * time.Minute
)

// Current is the slice of the OpenWeather response the app cares about.
type Current struct {
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"` // lowercased main, e.g. "clear", "rain"
	Desc      string  `json:"desc"`
}

// Neutral is served when the API is unreachable or no key is configured.
// A mild clouded day recommends nothing extreme either way.
func Neutral() Current {
	return Current{Temp: 15, Condition: "clouds", Desc: "bewolkt"}
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	cache   *cache.TTL[Current]
}

func NewClient() *Client {
	return NewClientWithBaseURL(os.Getenv("OPENWEATHER_API_KEY"), "https://api.openweathermap.org")
}

func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   cache.New[Current](cacheTTL),
	}
}

// Fetch returns the current weather for the default coordinates. Failures
// degrade to the last cached value, then to Neutral; the guest never sees
// a weather error.
func (c *Client) Fetch(ctx context.Context) Current {
	if cur, fresh := c.cache.Get("current"); fresh {
		return cur
	}

	cur, err := c.fetch(ctx)
	if err != nil {
		log.Printf("weather fetch failed: %v", err)
		if stale, _ := c.cache.Get("current"); stale.Condition != "" {
			return stale
		}
		return Neutral()
	}

	c.cache.Set("current", cur)
	return cur
}

func (c *Client) fetch(ctx context.Context) (Current, error) {
	if c.apiKey == "" {
		return Current{}, errors.New("missing OPENWEATHER_API_KEY")
	}

	url := fmt.Sprintf(
		"%s/data/2.5/weather?lat=%v&lon=%v&units=metric&lang=nl&appid=%s",
		c.baseURL, DefaultLat, DefaultLon, c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Current{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Current{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Current{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return Current{}, fmt.Errorf("openweather api error: %s", string(raw))
	}

	var result struct {
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return Current{}, err
	}

	cur := Current{Temp: result.Main.Temp}
	if len(result.Weather) > 0 {
		cur.Condition = strings.ToLower(result.Weather[0].Main)
		cur.Desc = result.Weather[0].Description
	}
	return cur, nil
}
