package roundtrip

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xdanysx/FlightChecker/internal/pkg/pkgconfig"
	"github.com/xdanysx/FlightChecker/internal/pkg/pkgrouter"
	"github.com/xdanysx/FlightChecker/internal/roundtrip/inbound"
	"github.com/xdanysx/FlightChecker/internal/roundtrip/provider"
	"github.com/xdanysx/FlightChecker/internal/roundtrip/usecase"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

func New(dep Dependency) error {
	fareProvider, err := buildProvider(dep.Config)
	if err != nil {
		return err
	}

	rateLimit := 250 * time.Millisecond
	if rateLimitMs := dep.Config.GetInt("modules.roundtrip.provider.rate_limit_ms"); rateLimitMs > 0 {
		rateLimit = time.Duration(rateLimitMs) * time.Millisecond
	}
	if rateLimit > 0 {
		fareProvider = provider.NewRateLimitedProvider(fareProvider, rateLimit)
	}

	uc := usecase.New(usecase.Dependency{
		Provider:        fareProvider,
		DefaultMinDays:  intOrDefault(dep.Config, "modules.roundtrip.search.min_days", 3),
		DefaultMaxDays:  intOrDefault(dep.Config, "modules.roundtrip.search.max_days", 14),
		DefaultTopN:     intOrDefault(dep.Config, "modules.roundtrip.search.top_n", 5),
		DefaultCurrency: stringOrDefault(dep.Config, "modules.roundtrip.search.currency", "EUR"),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}

func buildProvider(cfg pkgconfig.Config) (provider.Provider, error) {
	mode := cfg.GetString("modules.roundtrip.provider.mode")
	switch mode {
	case "", "live":
		apiURLFile := stringOrDefault(cfg, "modules.roundtrip.provider.api_url_file", "data/ryanair_api.txt")
		baseURL, err := provider.LoadBaseURL(apiURLFile)
		if err != nil {
			return nil, fmt.Errorf("roundtrip provider: %w", err)
		}

		timeout := 20 * time.Second
		if timeoutMs := cfg.GetInt("modules.roundtrip.provider.timeout_ms"); timeoutMs > 0 {
			timeout = time.Duration(timeoutMs) * time.Millisecond
		}
		return provider.NewRyanairProvider(baseURL, &http.Client{Timeout: timeout}), nil
	case "fixture":
		dir := stringOrDefault(cfg, "modules.roundtrip.provider.fixture_dir", "mocks")
		return provider.NewFixtureProvider(dir), nil
	default:
		return nil, fmt.Errorf("unknown roundtrip provider mode %q", mode)
	}
}

func intOrDefault(cfg pkgconfig.Config, key string, fallback int) int {
	if value := cfg.GetInt(key); value > 0 {
		return value
	}
	return fallback
}

func stringOrDefault(cfg pkgconfig.Config, key, fallback string) string {
	if value := cfg.GetString(key); value != "" {
		return value
	}
	return fallback
}
