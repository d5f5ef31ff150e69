package main

import (
	"fmt"

	"github.com/gekko3d/lilylib"
	"github.com/rs/zerolog"
)

// zerologLogger routes the runtime's log calls into zerolog.
type zerologLogger struct {
	log zerolog.Logger
}

func newZerologLogger(l zerolog.Logger) *zerologLogger {
	return &zerologLogger{log: l}
}

// Named tags every line with the module that wrote it.
func (z *zerologLogger) Named(name string) lilylib.Logger {
	return &zerologLogger{log: z.log.With().Str("module", name).Logger()}
}

func (z *zerologLogger) DebugEnabled() bool {
	return z.log.GetLevel() <= zerolog.DebugLevel && zerolog.GlobalLevel() <= zerolog.DebugLevel
}

func (z *zerologLogger) SetDebug(enabled bool) {
	if enabled {
		z.log = z.log.Level(zerolog.DebugLevel)
		return
	}
	z.log = z.log.Level(zerolog.InfoLevel)
}

func (z *zerologLogger) Debugf(format string, args ...any) {
	z.log.Debug().Msg(fmt.Sprintf(format, args...))
}

func (z *zerologLogger) Infof(format string, args ...any) {
	z.log.Info().Msg(fmt.Sprintf(format, args...))
}

func (z *zerologLogger) Warnf(format string, args ...any) {
	z.log.Warn().Msg(fmt.Sprintf(format, args...))
}

func (z *zerologLogger) Errorf(format string, args ...any) {
	z.log.Error().Msg(fmt.Sprintf(format, args...))
}

// zerologModule installs a zerologLogger as the app's Logger resource.
type zerologModule struct {
	log zerolog.Logger
}

func (m zerologModule) Install(app *lilylib.App, cmd *lilylib.Commands) {
	cmd.AddResources(newZerologLogger(m.log))
}
