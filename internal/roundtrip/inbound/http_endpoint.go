package inbound

import (
	"context"
	"errors"
	"net/http"

	"github.com/xdanysx/FlightChecker/internal/pkg/pkgerror"
	"github.com/xdanysx/FlightChecker/internal/pkg/pkgrouter"
	"github.com/xdanysx/FlightChecker/internal/roundtrip/entity"
	"github.com/xdanysx/FlightChecker/internal/roundtrip/pricechart"
	"github.com/xdanysx/FlightChecker/internal/roundtrip/usecase"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Roundtrips(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseSearchInput(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.Roundtrips(ctx, input)
	if err != nil {
		return nil, err
	}

	return mapSearchOutput(output), nil
}

func (h *HTTPEndpoint) RoundtripsChart(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseSearchInput(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.Roundtrips(ctx, input)
	if err != nil {
		return nil, err
	}

	series := make([]pricechart.Series, 0, len(output.Series))
	for _, s := range output.Series {
		series = append(series, pricechart.Series{Label: s.Route.Label(), Points: s.Points})
	}

	png, err := pricechart.RenderPNG(series, output.Criteria.Currency)
	if errors.Is(err, pricechart.ErrNoData) {
		return nil, pkgerror.NewBusiness("no fares found for the requested window", pkgerror.CodeNotFound)
	}
	if err != nil {
		return nil, err
	}

	return pkgrouter.Binary{ContentType: "image/png", Body: png}, nil
}

func mapSearchOutput(output *usecase.SearchOutput) RoundtripsResponse {
	currency := output.Criteria.Currency

	routeLabels := make([]string, 0, len(output.Routes))
	routes := make([]RouteResultResponse, 0, len(output.Routes))
	for _, result := range output.Routes {
		routeLabels = append(routeLabels, result.Route.Label())
		routes = append(routes, RouteResultResponse{
			Route:   result.Route.Label(),
			Best:    mapOptionalOption(result.Best, currency),
			Options: mapOptions(result.Options, currency),
		})
	}

	series := make([]SeriesResponse, 0, len(output.Series))
	for _, s := range output.Series {
		points := make([]PointResponse, 0, len(s.Points))
		for _, point := range s.Points {
			points = append(points, PointResponse{Date: point.Day.Format(dayLayout), Total: point.Total})
		}
		series = append(series, SeriesResponse{Route: s.Route.Label(), Points: points})
	}

	return RoundtripsResponse{
		SearchCriteria: SearchCriteriaResponse{
			Routes:    routeLabels,
			StartDate: output.Criteria.StartDate,
			EndDate:   output.Criteria.EndDate,
			MinDays:   output.Criteria.MinDays,
			MaxDays:   output.Criteria.MaxDays,
			TopN:      output.Criteria.TopN,
			Currency:  currency,
		},
		Metadata: MetadataResponse{
			MonthsQueried: output.Metadata.MonthsQueried,
			MonthsFailed:  output.Metadata.MonthsFailed,
			FailedMonths:  output.Metadata.FailedMonths,
			SearchTimeMs:  output.Metadata.SearchTimeMs,
		},
		Routes:   routes,
		Combined: mapOptions(output.Combined, currency),
		Series:   series,
	}
}

func mapOptions(options []entity.RoundTripOption, currency string) []OptionResponse {
	resp := make([]OptionResponse, 0, len(options))
	for i := range options {
		resp = append(resp, mapOption(options[i], currency))
	}
	return resp
}

func mapOptionalOption(option *entity.RoundTripOption, currency string) *OptionResponse {
	if option == nil {
		return nil
	}
	mapped := mapOption(*option, currency)
	return &mapped
}

func mapOption(option entity.RoundTripOption, currency string) OptionResponse {
	return OptionResponse{
		Route:          option.Outbound.Route.Label(),
		Total:          option.Total,
		TotalFormatted: formatAmount(option.Total, currency),
		Outbound:       mapLeg(option.Outbound, currency),
		Return:         mapLeg(option.Return, currency),
	}
}

func mapLeg(quote entity.FareQuote, currency string) LegResponse {
	return LegResponse{
		Date:           quote.Day.Format(dayLayout),
		Price:          quote.Price.Amount,
		PriceFormatted: formatAmount(quote.Price.Amount, currency),
		DepartureTime:  hhmm(quote.DepartureAt),
		ArrivalTime:    hhmm(quote.ArrivalAt),
	}
}
