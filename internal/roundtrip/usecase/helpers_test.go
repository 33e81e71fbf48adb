package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdanysx/FlightChecker/internal/roundtrip/entity"
)

func TestMonthsBetweenSingleMonth(t *testing.T) {
	months := monthsBetween(mustDay("2026-09-05"), mustDay("2026-09-20"))
	require.Len(t, months, 1)
	assert.Equal(t, yearMonth{year: 2026, month: time.September}, months[0])
}

func TestMonthsBetweenCrossesYearBoundary(t *testing.T) {
	months := monthsBetween(mustDay("2026-11-20"), mustDay("2027-02-03"))
	assert.Equal(t, []yearMonth{
		{year: 2026, month: time.November},
		{year: 2026, month: time.December},
		{year: 2027, month: time.January},
		{year: 2027, month: time.February},
	}, months)
}

func TestLimitOptions(t *testing.T) {
	options := []entity.RoundTripOption{{Total: 1}, {Total: 2}, {Total: 3}}

	assert.Len(t, limitOptions(options, 2), 2)
	assert.Len(t, limitOptions(options, 0), 3)
	assert.Len(t, limitOptions(options, 10), 3)
}

func TestSortOptionsTiesBreakOnOutboundDay(t *testing.T) {
	later := entity.RoundTripOption{
		Outbound: entity.FareQuote{Day: mustDay("2026-01-05")},
		Total:    100,
	}
	earlier := entity.RoundTripOption{
		Outbound: entity.FareQuote{Day: mustDay("2026-01-02")},
		Total:    100,
	}
	options := []entity.RoundTripOption{later, earlier}

	sortOptions(options)

	assert.Equal(t, mustDay("2026-01-02"), options[0].Outbound.Day)
}

func TestBestPerOutboundDayKeepsMinimum(t *testing.T) {
	day := mustDay("2026-01-02")
	options := []entity.RoundTripOption{
		{Outbound: entity.FareQuote{Day: day}, Total: 120},
		{Outbound: entity.FareQuote{Day: day}, Total: 95},
		{Outbound: entity.FareQuote{Day: mustDay("2026-01-01")}, Total: 110},
	}

	points := bestPerOutboundDay(options)

	require.Len(t, points, 2)
	assert.Equal(t, 110.0, points[0].Total)
	assert.Equal(t, 95.0, points[1].Total)
}

func TestCloneQuotesIsIndependent(t *testing.T) {
	original := []entity.FareQuote{{Price: entity.Price{Amount: 10}}}
	clone := cloneQuotes(original)
	clone[0].Price.Amount = 99

	assert.Equal(t, 10.0, original[0].Price.Amount)
	assert.Nil(t, cloneQuotes(nil))
}
