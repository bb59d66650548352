package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"sparkcalc/app"
	"sparkcalc/hal"
	"sparkcalc/internal/buildinfo"
	"sparkcalc/sparkos/tasks/calculator"
)

func main() {
	var cfg hal.HeadlessConfig
	var appCfg app.Config
	var showVersion bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = stop once -keys is done, or run forever).")
	flag.StringVar(&cfg.Keys, "keys", "", "Key script fed to the keyboard in headless mode (\\n Enter, < Backspace, ! Escape).")
	flag.IntVar(&appCfg.TapeSize, "tape", calculator.DefaultTapeSize, "Number of past results to keep.")
	flag.BoolVar(&showVersion, "version", false, "Print the build and exit.")
	flag.Parse()

	if showVersion {
		fmt.Printf("sparkcalc %s (commit %s, built %s)\n", buildinfo.Short(), buildinfo.Commit, buildinfo.Date)
		return
	}
	if appCfg.TapeSize < 1 {
		fmt.Fprintln(os.Stderr, "-tape must be at least 1")
		os.Exit(2)
	}

	newApp := func(h hal.HAL) func() error {
		return app.New(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
