package provider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdanysx/FlightChecker/internal/roundtrip/entity"
)

type countingProvider struct {
	calls int
}

func (c *countingProvider) Name() string {
	return "counting"
}

func (c *countingProvider) CheapestPerDay(context.Context, MonthRequest) ([]entity.FareQuote, error) {
	c.calls++
	return nil, nil
}

func TestRateLimitedProviderSpacesCalls(t *testing.T) {
	interval := 30 * time.Millisecond
	inner := &countingProvider{}
	limited := NewRateLimitedProvider(inner, interval)

	start := time.Now()
	_, err := limited.CheapestPerDay(context.Background(), testMonthRequest())
	require.NoError(t, err)
	_, err = limited.CheapestPerDay(context.Background(), testMonthRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
	assert.GreaterOrEqual(t, time.Since(start), interval)
	assert.Equal(t, "counting", limited.Name())
}

func TestRateLimitedProviderHonorsCancellation(t *testing.T) {
	limited := NewRateLimitedProvider(&countingProvider{}, time.Minute)

	_, err := limited.CheapestPerDay(context.Background(), testMonthRequest())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = limited.CheapestPerDay(ctx, testMonthRequest())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
