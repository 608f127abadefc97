package bootstrap

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra/catalog"
	"room-booking/internal/infra/session"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		NewCatalog,
		NewSessionRegistry,
	),
)

func NewCatalog(cfg config.Config, logger *slog.Logger) (*room.Catalog, error) {
	c, err := catalog.Load(cfg.Catalog.SeedPath)
	if err != nil {
		return nil, err
	}
	logger.Info("room catalog loaded", "rooms", c.Len(), "seed", seedName(cfg.Catalog.SeedPath))
	return c, nil
}

// NewSessionRegistry starts the idle-session sweeper with the app and stops
// it, waiting for the goroutine to exit, on shutdown.
func NewSessionRegistry(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) *session.Registry {
	registry := session.NewRegistry(clk, cfg.Session.IdleTimeout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				registry.RunSweeper(ctx, cfg.Session.SweepInterval)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})

	return registry
}

func seedName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
