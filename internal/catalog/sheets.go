package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Sheet names within the spreadsheet.
const (
	SheetMenu     = "menu"
	SheetWeekmenu = "weekmenu"
	SheetPairings = "pairings"
)

// RowFetcher yields raw string rows for one sheet.
type RowFetcher interface {
	FetchRows(ctx context.Context, sheet string) ([][]string, error)
}

// SheetsClient reads a public Google Sheet through its CSV export.
type SheetsClient struct {
	spreadsheetID string
	baseURL       string
	httpClient    *http.Client
}

func NewSheetsClient() *SheetsClient {
	return &SheetsClient{
		spreadsheetID: os.Getenv("SHEETS_SPREADSHEET_ID"),
		baseURL:       "https://docs.google.com",
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewSheetsClientWithBaseURL points the client at a different host, for tests.
func NewSheetsClientWithBaseURL(spreadsheetID, baseURL string) *SheetsClient {
	return &SheetsClient{
		spreadsheetID: spreadsheetID,
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *SheetsClient) FetchRows(ctx context.Context, sheet string) ([][]string, error) {
	url := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		c.baseURL, c.spreadsheetID, sheet)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets export for %q: status %d", sheet, resp.StatusCode)
	}

	// Cells may contain quoted newlines; encoding/csv handles those where
	// the browser original needed a hand-rolled parser.
	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv for %q: %w", sheet, err)
	}

	for _, row := range rows {
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
	}
	return rows, nil
}
