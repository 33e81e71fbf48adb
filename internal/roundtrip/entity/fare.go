package entity

import (
	"fmt"
	"strings"
	"time"
)

// Route is a one-way leg between two airports.
type Route struct {
	Origin      string
	Destination string
}

func NewRoute(origin, destination string) Route {
	return Route{
		Origin:      strings.ToUpper(strings.TrimSpace(origin)),
		Destination: strings.ToUpper(strings.TrimSpace(destination)),
	}
}

// Label renders the route the way it is shown to users, direction-agnostic.
func (r Route) Label() string {
	return fmt.Sprintf("%s ↔ %s", r.Origin, r.Destination)
}

func (r Route) Reverse() Route {
	return Route{Origin: r.Destination, Destination: r.Origin}
}

type Price struct {
	Amount   float64
	Currency string
}

// FareQuote is the lowest fare for one route on one day. Immutable once
// fetched. DepartureAt and ArrivalAt are local airport times when the
// pricing API reports them.
type FareQuote struct {
	Route       Route
	Day         time.Time
	Price       Price
	DepartureAt *time.Time
	ArrivalAt   *time.Time
}

// RoundTripOption pairs an outbound and a return fare. Derived, never
// persisted. Total is always the sum of the two leg prices.
type RoundTripOption struct {
	Outbound FareQuote
	Return   FareQuote
	Total    float64
}

// SeriesPoint is one chart point: the best round-trip total whose outbound
// leg departs on Day.
type SeriesPoint struct {
	Day   time.Time
	Total float64
}
