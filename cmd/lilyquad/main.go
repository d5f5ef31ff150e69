package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Quad struct {
		Pos       []float64 `help:"Particle position x,y,z." default:"0,0,0"`
		Prev      []float64 `help:"Previous-tick position x,y,z. Defaults to --pos."`
		Camera    []float64 `help:"Camera position x,y,z." default:"0,0,0"`
		Angles    []float64 `help:"Rotation around x,y,z." default:"0,0,0"`
		Degrees   bool      `help:"Read --angles as degrees instead of radians."`
		Size      float32   `help:"Half width of the quad." default:"1"`
		TickDelta float32   `help:"Interpolation factor between --prev and --pos." default:"1"`
	} `cmd:"" help:"Build one billboard quad and print its corners as JSON."`

	Defs struct {
		File string `arg:"" name:"file" help:"Particle definition file." type:"existingfile"`
	} `cmd:"" help:"Validate a particle definition file and print it as JSON."`

	Watch struct {
		File     string `arg:"" name:"file" help:"Particle definition file to watch." type:"existingfile"`
		TickRate int    `help:"Simulation ticks per second." default:"20"`
	} `cmd:"" help:"Log particle definition reloads until interrupted."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("lilyquad"),
		kong.Description("flat particle tooling"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	}

	var err error
	switch ctx.Command() {
	case "quad":
		var out string
		out, err = quadCommand()
		if err == nil {
			fmt.Println(out)
		}
	case "defs <file>":
		var out string
		out, err = defsCommand(CLI.Defs.File)
		if err == nil {
			fmt.Println(out)
		}
	case "watch <file>":
		sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = watchCommand(sigCtx, CLI.Watch.File, CLI.Watch.TickRate)
		stop()
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		writeError(err)
	}
}
