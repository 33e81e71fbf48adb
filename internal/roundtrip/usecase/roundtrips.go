package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/xdanysx/FlightChecker/internal/roundtrip/entity"
	"github.com/xdanysx/FlightChecker/internal/roundtrip/farecache"
	"github.com/xdanysx/FlightChecker/internal/roundtrip/provider"
)

type SearchInput struct {
	Routes    []entity.Route
	StartDate time.Time
	EndDate   time.Time
	MinDays   int // 0 means default
	MaxDays   int // 0 means default
	TopN      int // 0 means default
	Currency  string
}

type SearchOutput struct {
	Criteria SearchCriteria
	Metadata SearchMetadata
	Routes   []RouteResult
	Combined []entity.RoundTripOption
	Series   []RouteSeries
}

type SearchCriteria struct {
	StartDate string
	EndDate   string
	MinDays   int
	MaxDays   int
	TopN      int
	Currency  string
}

type SearchMetadata struct {
	MonthsQueried int
	MonthsFailed  int
	FailedMonths  []string
	SearchTimeMs  int64
}

type RouteResult struct {
	Route   entity.Route
	Best    *entity.RoundTripOption
	Options []entity.RoundTripOption
}

type RouteSeries struct {
	Route  entity.Route
	Points []entity.SeriesPoint
}

var errNoRoutes = errors.New("at least one route is required")

// Roundtrips fetches per-day fares for every route in the window and pairs
// them into ranked round-trip candidates. Fetching is sequential; a failed
// month is skipped and counted, never fatal.
func (u *Usecase) Roundtrips(ctx context.Context, in SearchInput) (*SearchOutput, error) {
	start := time.Now()

	if len(in.Routes) == 0 {
		return nil, errNoRoutes
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("end date %s before start date %s",
			in.EndDate.Format(dayLayout), in.StartDate.Format(dayLayout))
	}

	minDays := valueOrDefault(in.MinDays, u.defaultMinDays)
	if minDays < 1 {
		minDays = 1
	}
	maxDays := valueOrDefault(in.MaxDays, u.defaultMaxDays)
	if maxDays < minDays {
		maxDays = minDays
	}
	topN := valueOrDefault(in.TopN, u.defaultTopN)
	currency := in.Currency
	if currency == "" {
		currency = u.defaultCurrency
	}

	memo := farecache.New(cloneQuotes)
	months := monthsBetween(in.StartDate, in.EndDate)
	metadata := SearchMetadata{FailedMonths: []string{}}

	routeResults := make([]RouteResult, 0, len(in.Routes))
	series := make([]RouteSeries, 0, len(in.Routes))
	allOptions := []entity.RoundTripOption{}

	for _, route := range in.Routes {
		outbound, err := u.collectFares(ctx, memo, &metadata, route, months, currency)
		if err != nil {
			return nil, err
		}
		returns, err := u.collectFares(ctx, memo, &metadata, route.Reverse(), months, currency)
		if err != nil {
			return nil, err
		}

		options := buildCandidates(outbound, returns, in.StartDate, in.EndDate, minDays, maxDays)
		allOptions = append(allOptions, options...)

		result := RouteResult{Route: route, Options: limitOptions(options, topN)}
		if len(options) > 0 {
			best := options[0]
			result.Best = &best
		}
		routeResults = append(routeResults, result)
		series = append(series, RouteSeries{Route: route, Points: bestPerOutboundDay(options)})
	}

	combined := []entity.RoundTripOption{}
	if len(in.Routes) >= 2 && len(allOptions) > 0 {
		sortOptions(allOptions)
		combined = limitOptions(allOptions, topN)
	}

	metadata.SearchTimeMs = time.Since(start).Milliseconds()

	return &SearchOutput{
		Criteria: SearchCriteria{
			StartDate: in.StartDate.Format(dayLayout),
			EndDate:   in.EndDate.Format(dayLayout),
			MinDays:   minDays,
			MaxDays:   maxDays,
			TopN:      topN,
			Currency:  currency,
		},
		Metadata: metadata,
		Routes:   routeResults,
		Combined: combined,
		Series:   series,
	}, nil
}

// collectFares returns a day-keyed map of fares for one route direction
// over all months covering the window, fetching each month at most once
// per search.
func (u *Usecase) collectFares(
	ctx context.Context,
	memo *farecache.Memo[[]entity.FareQuote],
	metadata *SearchMetadata,
	route entity.Route,
	months []yearMonth,
	currency string,
) (map[string]entity.FareQuote, error) {
	fares := make(map[string]entity.FareQuote)
	for _, ym := range months {
		quotes, err := u.monthQuotes(ctx, memo, metadata, route, ym, currency)
		if err != nil {
			return nil, err
		}
		for _, quote := range quotes {
			fares[quote.Day.Format(dayLayout)] = quote
		}
	}
	return fares, nil
}

func (u *Usecase) monthQuotes(
	ctx context.Context,
	memo *farecache.Memo[[]entity.FareQuote],
	metadata *SearchMetadata,
	route entity.Route,
	ym yearMonth,
	currency string,
) ([]entity.FareQuote, error) {
	key := farecache.Key{
		Origin:      route.Origin,
		Destination: route.Destination,
		Year:        ym.year,
		Month:       ym.month,
		Currency:    currency,
	}
	if quotes, ok := memo.Get(key); ok {
		return quotes, nil
	}

	metadata.MonthsQueried++
	quotes, err := u.provider.CheapestPerDay(ctx, provider.MonthRequest{
		Origin:      route.Origin,
		Destination: route.Destination,
		Year:        ym.year,
		Month:       ym.month,
		Currency:    currency,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		monthLabel := fmt.Sprintf("%s-%s %04d-%02d", route.Origin, route.Destination, ym.year, ym.month)
		slog.WarnContext(ctx, "month fetch failed", "month", monthLabel, "error", err)
		metadata.MonthsFailed++
		metadata.FailedMonths = append(metadata.FailedMonths, monthLabel)
		quotes = nil
	}

	memo.Set(key, quotes)
	return quotes, nil
}

// buildCandidates pairs every in-window outbound fare with the return fare
// minDays..maxDays later. The span floor of 1 keeps the return strictly
// after the outbound day.
func buildCandidates(
	outbound, returns map[string]entity.FareQuote,
	start, end time.Time,
	minDays, maxDays int,
) []entity.RoundTripOption {
	options := []entity.RoundTripOption{}
	for _, out := range outbound {
		if out.Day.Before(start) || out.Day.After(end) {
			continue
		}
		for span := minDays; span <= maxDays; span++ {
			returnDay := out.Day.AddDate(0, 0, span)
			if returnDay.After(end) {
				break
			}
			ret, ok := returns[returnDay.Format(dayLayout)]
			if !ok {
				continue
			}
			options = append(options, entity.RoundTripOption{
				Outbound: out,
				Return:   ret,
				Total:    out.Price.Amount + ret.Price.Amount,
			})
		}
	}
	sortOptions(options)
	return options
}
