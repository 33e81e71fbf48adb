package inbound

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdanysx/FlightChecker/internal/pkg/pkgerror"
)

func newRequest(t *testing.T, query string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, "/roundtrips?"+query, nil)
}

func TestParseSearchInputFull(t *testing.T) {
	r := newRequest(t, "origin=cgn&destination=pmo&origin2=NRN&destination2=TPS"+
		"&start_date=2026-09-01&end_date=2026-09-30&min_days=3&max_days=14&top_n=7&currency=gbp")

	input, err := parseSearchInput(r)
	require.NoError(t, err)

	require.Len(t, input.Routes, 2)
	assert.Equal(t, "CGN", input.Routes[0].Origin)
	assert.Equal(t, "PMO", input.Routes[0].Destination)
	assert.Equal(t, "NRN", input.Routes[1].Origin)
	assert.Equal(t, "2026-09-01", input.StartDate.Format(dayLayout))
	assert.Equal(t, "2026-09-30", input.EndDate.Format(dayLayout))
	assert.Equal(t, 3, input.MinDays)
	assert.Equal(t, 14, input.MaxDays)
	assert.Equal(t, 7, input.TopN)
	assert.Equal(t, "GBP", input.Currency)
}

func TestParseSearchInputDefaultsWindow(t *testing.T) {
	input, err := parseSearchInput(newRequest(t, "origin=CGN&destination=PMO"))
	require.NoError(t, err)

	assert.False(t, input.StartDate.IsZero())
	assert.Equal(t, input.StartDate.AddDate(0, 0, defaultWindowDays), input.EndDate)
	assert.Zero(t, input.MinDays)
	assert.Zero(t, input.MaxDays)
	assert.Empty(t, input.Currency)
}

func TestParseSearchInputRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"missing origin":           "destination=PMO",
		"missing destination":      "origin=CGN",
		"bad airport code":         "origin=COLOGNE&destination=PMO",
		"numeric airport code":     "origin=C1N&destination=PMO",
		"half second route":        "origin=CGN&destination=PMO&origin2=NRN",
		"bad start date":           "origin=CGN&destination=PMO&start_date=today",
		"bad end date":             "origin=CGN&destination=PMO&end_date=2026-13-40",
		"end before start":         "origin=CGN&destination=PMO&start_date=2026-09-10&end_date=2026-09-01",
		"max below min":            "origin=CGN&destination=PMO&min_days=7&max_days=3",
		"negative min days":        "origin=CGN&destination=PMO&min_days=-1",
		"non-numeric top n":        "origin=CGN&destination=PMO&top_n=many",
		"currency wrong length":    "origin=CGN&destination=PMO&currency=EURO",
		"zero top n":               "origin=CGN&destination=PMO&top_n=0",
		"bad camelCase alt values": "origin=CGN&destination=PMO&startDate=nope",
	}

	for name, query := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseSearchInput(newRequest(t, query))
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, pkgerror.HTTPStatus(err))
		})
	}
}

func TestParseSearchInputAltKeys(t *testing.T) {
	r := newRequest(t, "origin=CGN&destination=PMO&startDate=2026-09-01&endDate=2026-09-10&minDays=2&maxDays=5&topN=3")

	input, err := parseSearchInput(r)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", input.StartDate.Format(dayLayout))
	assert.Equal(t, 2, input.MinDays)
	assert.Equal(t, 5, input.MaxDays)
	assert.Equal(t, 3, input.TopN)
}

func TestHHMM(t *testing.T) {
	assert.Equal(t, "-", hhmm(nil))

	value := time.Date(2026, 9, 1, 6, 25, 0, 0, time.UTC)
	assert.Equal(t, "06:25", hhmm(&value))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "95.00 EUR", formatAmount(95, "EUR"))
	assert.Equal(t, "29.99 GBP", formatAmount(29.99, "GBP"))
}
