package inbound

import (
	"context"

	"github.com/xdanysx/FlightChecker/internal/pkg/pkgrouter"
	"github.com/xdanysx/FlightChecker/internal/roundtrip/usecase"
)

type uc interface {
	Roundtrips(ctx context.Context, in usecase.SearchInput) (*usecase.SearchOutput, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/roundtrips", end.Roundtrips)
	r.GET("/roundtrips/chart", end.RoundtripsChart)
}
