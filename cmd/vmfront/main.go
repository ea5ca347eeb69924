package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"github.com/valerio/go-vmfront/vmfront"
	"github.com/valerio/go-vmfront/vmfront/backend"
	"github.com/valerio/go-vmfront/vmfront/display"
	"github.com/valerio/go-vmfront/vmfront/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "vmfront"
	app.Description = "Display, input and speaker frontend for a virtual machine"
	app.Usage = "vmfront [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "backend",
			Usage: "Presentation backend: sdl2, terminal or headless",
			Value: vmfront.BackendSDL2,
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "Display width in pixels",
			Value: display.DefaultWidth,
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "Display height in pixels",
			Value: display.DefaultHeight,
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of ticks to run in headless mode (0 = unlimited)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "tone",
			Usage: "Play a test tone at the given frequency in Hz",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "no-audio",
			Usage: "Do not open the host audio device",
		},
		cli.StringFlag{
			Name:  "limiter",
			Usage: "Refresh pacing: adaptive, ticker or none (default: adaptive, none for headless)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = runFrontend

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running frontend", "error", err)
		os.Exit(1)
	}
}

func runFrontend(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("debug") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	front, err := vmfront.New(vmfront.Config{
		Backend:      c.String("backend"),
		Title:        "vmfront",
		Width:        c.Int("width"),
		Height:       c.Int("height"),
		MaxTicks:     c.Int("frames"),
		DisableAudio: c.Bool("no-audio"),
	})
	if err != nil {
		return err
	}
	defer front.Cleanup()

	if hz := c.Int("tone"); hz > 0 {
		front.SetTone(hz)
	}

	// no VM wired in yet; drive the demo guest through the full path
	demo := vmfront.NewDemoMachine(c.Int("width"), c.Int("height"))

	limiter, err := newLimiter(c.String("limiter"), c.String("backend"))
	if err != nil {
		return err
	}
	if s, ok := limiter.(interface{ Stop() }); ok {
		defer s.Stop()
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-signals:
			slog.Info("Received signal to stop")
			return nil
		default:
		}

		demo.Tick()
		if err := front.Refresh(demo); err != nil {
			if errors.Is(err, backend.ErrQuit) {
				slog.Info("Host requested quit")
				return nil
			}
			return err
		}
		limiter.WaitForNextTick()
	}
}

// newLimiter picks the refresh pacing strategy. Headless runs unpaced
// unless a limiter is named explicitly.
func newLimiter(name, backendName string) (timing.Limiter, error) {
	switch name {
	case "":
		if backendName == vmfront.BackendHeadless {
			return timing.NewNoOpLimiter(), nil
		}
		return timing.NewAdaptiveLimiter(display.RefreshRate), nil
	case "adaptive":
		return timing.NewAdaptiveLimiter(display.RefreshRate), nil
	case "ticker":
		return timing.NewTickerLimiter(display.RefreshRate), nil
	case "none":
		return timing.NewNoOpLimiter(), nil
	}
	return nil, fmt.Errorf("unknown limiter: %s", name)
}
