package app

import (
	"log/slog"
	"os"

	rt "github.com/xdanysx/FlightChecker/internal/roundtrip"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.roundtrip.enabled") {
		if err := rt.New(rt.Dependency{
			Config: a.config,
			Router: a.router,
		}); err != nil {
			slog.Error("failed to init module roundtrip", "error", err)
			os.Exit(1)
		}
	}
}
