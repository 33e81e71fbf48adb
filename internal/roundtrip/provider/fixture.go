package provider

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xdanysx/FlightChecker/internal/roundtrip/entity"
)

// FixtureProvider serves fares from local JSON files in the same wire
// format as the live API. Used for offline runs and tests. A month without
// a fixture file behaves like a month without available fares.
type FixtureProvider struct {
	dir string
}

func NewFixtureProvider(dir string) *FixtureProvider {
	return &FixtureProvider{dir: dir}
}

func (f *FixtureProvider) Name() string {
	return "Fixture"
}

func (f *FixtureProvider) CheapestPerDay(_ context.Context, req MonthRequest) ([]entity.FareQuote, error) {
	name := fmt.Sprintf("%s_%s_%04d-%02d.json", req.Origin, req.Destination, req.Year, req.Month)
	data, err := os.ReadFile(filepath.Join(filepath.Clean(f.dir), name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fixture read %s: %w", name, err)
	}
	return decodeCheapestPerDay(data, req)
}
