package hal

import (
	"context"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Hz         int
	Ticks      uint64
	StepBudget int

	// Keys is a key script typed one key event per tick (see ParseKeyScript).
	// With Ticks == 0 the runner stops SettleTicks after the script ends.
	Keys        string
	SettleTicks uint64
}

// RunHeadless runs the OS without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}
	if cfg.SettleTicks == 0 {
		cfg.SettleTicks = uint64(cfg.Hz/2) + 1
	}

	h := newHost(os.Stdout)
	h.kbd.queueScript(cfg.Keys)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	scripted := cfg.Keys != ""
	var tick, scriptDone uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step()
			if !h.kbd.pumpScript() && scripted && scriptDone == 0 {
				scriptDone = tick
			}
			for i := 0; i < cfg.StepBudget && step != nil; i++ {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
			if cfg.Ticks == 0 && scriptDone > 0 && tick-scriptDone >= cfg.SettleTicks {
				return nil
			}
		}
	}
}
