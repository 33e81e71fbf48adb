package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xdanysx/FlightChecker/internal/roundtrip/entity"
)

const defaultUserAgent = "RoundtripFinder/1.3"

// LoadBaseURL reads the pricing API base URL from a local text file. The
// file is user-supplied and not distributed; a missing or empty file is a
// startup error.
func LoadBaseURL(path string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("read api url file: %w", err)
	}
	base := strings.TrimSpace(string(data))
	if base == "" {
		return "", fmt.Errorf("api url file %s is empty", path)
	}
	return strings.TrimRight(base, "/"), nil
}

// RyanairProvider queries the farfnd cheapestPerDay endpoint, one GET per
// route direction per month.
type RyanairProvider struct {
	baseURL   string
	client    *http.Client
	userAgent string
}

func NewRyanairProvider(baseURL string, client *http.Client) *RyanairProvider {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &RyanairProvider{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    client,
		userAgent: defaultUserAgent,
	}
}

func (p *RyanairProvider) Name() string {
	return "Ryanair"
}

func (p *RyanairProvider) CheapestPerDay(ctx context.Context, req MonthRequest) ([]entity.FareQuote, error) {
	endpoint := fmt.Sprintf("%s/%s/%s/cheapestPerDay", p.baseURL, url.PathEscape(req.Origin), url.PathEscape(req.Destination))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ryanair build request: %w", err)
	}
	query := httpReq.URL.Query()
	query.Set("outboundMonthOfDate", fmt.Sprintf("%04d-%02d-01", req.Year, req.Month))
	query.Set("currency", req.Currency)
	httpReq.URL.RawQuery = query.Encode()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ryanair fetch %s %s %04d-%02d: %w", req.Origin, req.Destination, req.Year, req.Month, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ryanair fetch %s %s %04d-%02d: unexpected status %d", req.Origin, req.Destination, req.Year, req.Month, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ryanair read body: %w", err)
	}

	return decodeCheapestPerDay(body, req)
}

type cheapestPerDayResponse struct {
	Outbound struct {
		Fares []struct {
			Day           string `json:"day"`
			DepartureDate string `json:"departureDate"`
			ArrivalDate   string `json:"arrivalDate"`
			Price         *struct {
				Value        float64 `json:"value"`
				CurrencyCode string  `json:"currencyCode"`
			} `json:"price"`
			Unavailable bool `json:"unavailable"`
		} `json:"fares"`
	} `json:"outbound"`
}

// decodeCheapestPerDay maps the wire format onto fare quotes. Unavailable
// days and days without a positive price are omitted.
func decodeCheapestPerDay(data []byte, req MonthRequest) ([]entity.FareQuote, error) {
	var resp cheapestPerDayResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("cheapestPerDay decode: %w", err)
	}

	route := entity.NewRoute(req.Origin, req.Destination)
	quotes := make([]entity.FareQuote, 0, len(resp.Outbound.Fares))
	for _, fare := range resp.Outbound.Fares {
		if fare.Unavailable || fare.Price == nil || fare.Price.Value <= 0 {
			continue
		}
		day, err := parseFareDay(fare.Day)
		if err != nil {
			continue
		}
		currency := fare.Price.CurrencyCode
		if currency == "" {
			currency = req.Currency
		}
		quotes = append(quotes, entity.FareQuote{
			Route:       route,
			Day:         day,
			Price:       entity.Price{Amount: fare.Price.Value, Currency: currency},
			DepartureAt: parseFareTimestamp(fare.DepartureDate),
			ArrivalAt:   parseFareTimestamp(fare.ArrivalDate),
		})
	}

	return quotes, nil
}
