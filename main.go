package main

import (
	"context"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jbarratt/rps/notify"
	"github.com/jbarratt/rps/service"
	"github.com/jbarratt/rps/store"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/urfave/cli.v1"
)

func newApp(ctx context.Context, in io.Reader, out, errOut io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "rps"
	app.Usage = "play rock paper scissors against the computer"
	app.Version = "1.0.0"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level",
			Value:  "disabled",
			Usage:  "log level written to stderr (debug, info, warn, error, disabled)",
			EnvVar: "RPS_LOG_LEVEL",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for the computer's throws, 0 seeds from the clock",
		},
	}
	app.Before = func(c *cli.Context) error {
		setLogger(errOut)
		return nil
	}
	app.Action = func(c *cli.Context) error {
		if lvl, err := zerolog.ParseLevel(c.String("log-level")); err == nil {
			zerolog.SetGlobalLevel(lvl)
		} else {
			atLeast(zerolog.WarnLevel)
			log.Warn().Str("level", c.String("log-level")).Msg("unknown log level, logging warnings and errors")
		}

		seed := c.Int64("seed")
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Debug().Int64("seed", seed).Msg("seeded random source")

		svc := service.NewConsoleSvc(in, notify.NewConsole(out), store.New(), rand.New(rand.NewSource(seed)))
		_, err := svc.Run(ctx)
		return err
	}
	return app
}

func setLogger(w io.Writer) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
}

// atLeast lowers the global level so lvl events get through
func atLeast(lvl zerolog.Level) {
	if zerolog.GlobalLevel() > lvl {
		zerolog.SetGlobalLevel(lvl)
	}
}

// reportFailure logs err even when logging was left disabled
func reportFailure(err error) {
	atLeast(zerolog.ErrorLevel)
	log.Error().Err(err).Msg("game ended early")
}

func main() {
	_ = godotenv.Load()
	setLogger(os.Stderr)
	zerolog.SetGlobalLevel(zerolog.Disabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The game always exits 0, failures only show up in the log
	if err := newApp(ctx, os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		reportFailure(err)
	}
}
