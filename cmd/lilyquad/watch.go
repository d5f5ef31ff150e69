package main

import (
	"context"
	"errors"
	"time"

	"github.com/gekko3d/lilylib"
	"github.com/rs/zerolog/log"
)

func newWatchApp(path string, tickRate int) *lilylib.App {
	return lilylib.NewAppBuilder().
		UseModule(
			zerologModule{log: log.Logger.With().Str("file", path).Logger()},
			lilylib.TimeModule{TickRate: tickRate},
			lilylib.ParticleLibraryModule{Path: path, HotReload: true},
		).
		Build()
}

func watchCommand(ctx context.Context, path string, tickRate int) error {
	if tickRate <= 0 {
		tickRate = lilylib.DefaultTickRate
	}
	app := newWatchApp(path, tickRate)
	lib := lilylib.Resource[lilylib.ParticleLibrary](app)
	defer lib.Close()

	log.Info().Strs("particles", lib.Library.Names()).Msg("watching, ctrl-c to stop")

	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			app.Step()
		}
	}
}
