package inbound

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/xdanysx/FlightChecker/internal/pkg/pkgerror"
	"github.com/xdanysx/FlightChecker/internal/roundtrip/entity"
	"github.com/xdanysx/FlightChecker/internal/roundtrip/usecase"
)

const dayLayout = "2006-01-02"

const defaultWindowDays = 30

func parseSearchInput(r *http.Request) (usecase.SearchInput, error) {
	q := r.URL.Query()

	routes, err := parseRoutes(q)
	if err != nil {
		return usecase.SearchInput{}, err
	}

	startDate, endDate, err := parseWindow(q)
	if err != nil {
		return usecase.SearchInput{}, err
	}

	minDays, err := parsePositiveInt(q, "min_days", "minDays")
	if err != nil {
		return usecase.SearchInput{}, err
	}
	maxDays, err := parsePositiveInt(q, "max_days", "maxDays")
	if err != nil {
		return usecase.SearchInput{}, err
	}
	if minDays > 0 && maxDays > 0 && maxDays < minDays {
		return usecase.SearchInput{}, pkgerror.NewBusiness("max_days must be >= min_days", pkgerror.CodeInvalidInput)
	}

	topN, err := parsePositiveInt(q, "top_n", "topN")
	if err != nil {
		return usecase.SearchInput{}, err
	}

	currency := strings.ToUpper(strings.TrimSpace(q.Get("currency")))
	if currency != "" && len(currency) != 3 {
		return usecase.SearchInput{}, pkgerror.NewBusiness("invalid currency", pkgerror.CodeInvalidInput)
	}

	return usecase.SearchInput{
		Routes:    routes,
		StartDate: startDate,
		EndDate:   endDate,
		MinDays:   minDays,
		MaxDays:   maxDays,
		TopN:      topN,
		Currency:  currency,
	}, nil
}

func parseRoutes(q url.Values) ([]entity.Route, error) {
	origin := strings.TrimSpace(q.Get("origin"))
	destination := strings.TrimSpace(q.Get("destination"))
	if origin == "" || destination == "" {
		return nil, pkgerror.NewBusiness("origin and destination are required", pkgerror.CodeInvalidInput)
	}
	if err := validateIATA(origin); err != nil {
		return nil, err
	}
	if err := validateIATA(destination); err != nil {
		return nil, err
	}
	routes := []entity.Route{entity.NewRoute(origin, destination)}

	origin2 := strings.TrimSpace(q.Get("origin2"))
	destination2 := strings.TrimSpace(q.Get("destination2"))
	if origin2 == "" && destination2 == "" {
		return routes, nil
	}
	if origin2 == "" || destination2 == "" {
		return nil, pkgerror.NewBusiness("origin2 and destination2 must be given together", pkgerror.CodeInvalidInput)
	}
	if err := validateIATA(origin2); err != nil {
		return nil, err
	}
	if err := validateIATA(destination2); err != nil {
		return nil, err
	}
	return append(routes, entity.NewRoute(origin2, destination2)), nil
}

func validateIATA(code string) error {
	if len(code) != 3 {
		return pkgerror.NewBusiness(fmt.Sprintf("invalid airport code %q", code), pkgerror.CodeInvalidInput)
	}
	for _, r := range code {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return pkgerror.NewBusiness(fmt.Sprintf("invalid airport code %q", code), pkgerror.CodeInvalidInput)
		}
	}
	return nil
}

func parseWindow(q url.Values) (time.Time, time.Time, error) {
	today := time.Now().Truncate(24 * time.Hour)

	startDate := today
	if value := strings.TrimSpace(firstNotEmpty(q.Get("start_date"), q.Get("startDate"))); value != "" {
		parsed, err := time.Parse(dayLayout, value)
		if err != nil {
			return time.Time{}, time.Time{}, pkgerror.NewBusiness("invalid start_date", pkgerror.CodeInvalidInput)
		}
		startDate = parsed
	}

	endDate := startDate.AddDate(0, 0, defaultWindowDays)
	if value := strings.TrimSpace(firstNotEmpty(q.Get("end_date"), q.Get("endDate"))); value != "" {
		parsed, err := time.Parse(dayLayout, value)
		if err != nil {
			return time.Time{}, time.Time{}, pkgerror.NewBusiness("invalid end_date", pkgerror.CodeInvalidInput)
		}
		endDate = parsed
	}

	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, pkgerror.NewBusiness("end_date must be >= start_date", pkgerror.CodeInvalidInput)
	}

	return startDate, endDate, nil
}

func parsePositiveInt(q url.Values, key, altKey string) (int, error) {
	value := strings.TrimSpace(firstNotEmpty(q.Get(key), q.Get(altKey)))
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, pkgerror.NewBusiness(fmt.Sprintf("invalid %s", key), pkgerror.CodeInvalidInput)
	}
	return parsed, nil
}

func firstNotEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func formatAmount(amount float64, currency string) string {
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// hhmm renders an optional leg timestamp as clock time, "-" when the
// pricing API did not report one.
func hhmm(value *time.Time) string {
	if value == nil {
		return "-"
	}
	return value.Format("15:04")
}
