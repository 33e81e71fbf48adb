package pricechart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdanysx/FlightChecker/internal/roundtrip/entity"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestRenderPNG(t *testing.T) {
	series := []Series{
		{
			Label: "CGN ↔ PMO",
			Points: []entity.SeriesPoint{
				{Day: day("2026-09-01"), Total: 105},
				{Day: day("2026-09-02"), Total: 95},
				{Day: day("2026-09-03"), Total: 120},
			},
		},
		{
			Label: "NRN ↔ TPS",
			Points: []entity.SeriesPoint{
				{Day: day("2026-09-01"), Total: 80},
				{Day: day("2026-09-03"), Total: 70},
			},
		},
	}

	png, err := RenderPNG(series, "EUR")
	require.NoError(t, err)
	require.Greater(t, len(png), len(pngSignature))
	assert.Equal(t, pngSignature, png[:len(pngSignature)])
}

func TestRenderPNGSingleDay(t *testing.T) {
	series := []Series{
		{
			Label:  "CGN ↔ PMO",
			Points: []entity.SeriesPoint{{Day: day("2026-09-01"), Total: 95}},
		},
	}

	png, err := RenderPNG(series, "EUR")
	require.NoError(t, err)
	assert.Equal(t, pngSignature, png[:len(pngSignature)])
}

func TestRenderPNGNoData(t *testing.T) {
	_, err := RenderPNG([]Series{{Label: "CGN ↔ PMO"}}, "EUR")
	assert.ErrorIs(t, err, ErrNoData)

	_, err = RenderPNG(nil, "EUR")
	assert.ErrorIs(t, err, ErrNoData)
}
