package provider

import (
	"context"
	"time"

	"github.com/xdanysx/FlightChecker/internal/roundtrip/entity"
)

// MonthRequest asks for the cheapest fare of every day of one month on one
// route direction.
type MonthRequest struct {
	Origin      string
	Destination string
	Year        int
	Month       time.Month
	Currency    string
}

// Provider fetches per-day minimum fares from an airline pricing source.
// Days without an available fare are simply absent from the result.
type Provider interface {
	Name() string
	CheapestPerDay(ctx context.Context, req MonthRequest) ([]entity.FareQuote, error)
}
