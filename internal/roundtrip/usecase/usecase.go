package usecase

import (
	"github.com/xdanysx/FlightChecker/internal/roundtrip/provider"
)

type Dependency struct {
	Provider        provider.Provider
	DefaultMinDays  int
	DefaultMaxDays  int
	DefaultTopN     int
	DefaultCurrency string
}

type Usecase struct {
	provider        provider.Provider
	defaultMinDays  int
	defaultMaxDays  int
	defaultTopN     int
	defaultCurrency string
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		provider:        dep.Provider,
		defaultMinDays:  dep.DefaultMinDays,
		defaultMaxDays:  dep.DefaultMaxDays,
		defaultTopN:     dep.DefaultTopN,
		defaultCurrency: dep.DefaultCurrency,
	}
}
