// Package app wires the configuration, the host event loop and the engine
// adapter together.
package app

import (
	"fmt"

	"hearth/internal/logger"
	"hearth/pkg/config"
	"hearth/pkg/engine"
	"hearth/pkg/host"
)

// Run creates the event loop and one engine with default state, and runs
// until the loop exits. It returns loop construction and run failures and
// any fatal startup error recorded by the engine.
func Run(cfg *config.Config, opts ...engine.Option) error {
	loop, err := host.NewEventLoop()
	if err != nil {
		return fmt.Errorf("failed to create event loop: %w", err)
	}

	flow := engine.Poll
	if cfg.WaitForEvents() {
		flow = engine.Wait
	}
	loop.SetControlFlow(flow)
	defer logger.Default().Close()

	e := engine.NewEngine(engine.DefaultPlatform(cfg), opts...)
	if err := loop.RunApp(e); err != nil {
		return fmt.Errorf("event loop failed: %w", err)
	}

	return e.Err()
}
