package app

import (
	"sparkcalc/hal"
	"sparkcalc/internal/buildinfo"
	logclient "sparkcalc/sparkos/client/logger"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/services/logger"
	"sparkcalc/sparkos/services/termkbd"
	"sparkcalc/sparkos/tasks/calculator"
)

type system struct {
	k *kernel.Kernel
}

// Config selects optional behavior of the calculator system.
type Config struct {
	// TapeSize is the number of past evaluations kept on screen and in
	// memory. Zero means calculator.DefaultTapeSize.
	TapeSize int
}

// New initializes and starts the system. The returned step function is
// called once per host frame.
func New(h hal.HAL, cfg Config) func() error {
	_ = newSystem(h, cfg)
	return func() error { return nil }
}

func newSystem(h hal.HAL, cfg Config) *system {
	installPanicHandler(h)

	k := kernel.New()

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	calcEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)))
	k.AddTask(termkbd.New(h.Input(), calcEP.Restrict(kernel.RightSend)))
	k.AddTask(calculator.New(
		h.Display(),
		calcEP.Restrict(kernel.RightRecv),
		logEP.Restrict(kernel.RightSend),
		cfg.TapeSize,
	))
	k.AddTask(bootTask{logCap: logEP.Restrict(kernel.RightSend)})

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					k.TickTo(seq)
				}
			}()
		}
	}

	return &system{k: k}
}

// bootTask announces the build once the logger is reachable.
type bootTask struct {
	logCap kernel.Capability
}

func (b bootTask) Run(ctx *kernel.Context) {
	_ = logclient.Logf(ctx, b.logCap, "sparkcalc %s: ready", buildinfo.Short())
}
