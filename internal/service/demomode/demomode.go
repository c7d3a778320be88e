// internal/service/demomode/demomode.go
package demomode

import (
	"context"
	"sync"

	xerrors "crmdemo-service/internal/pkg/errors"
	"crmdemo-service/internal/simulation"

	"go.uber.org/zap"
)

// Controller owns the demo-mode lifecycle: it persists the mode flag
// and drives the simulation engine. Restarting after a reset is this
// controller's decision, never the engine's.
type Controller struct {
	mu     sync.Mutex
	modes  ModeStore
	engine *simulation.Engine
	logger *zap.Logger
}

func NewController(modes ModeStore, engine *simulation.Engine, logger *zap.Logger) *Controller {
	return &Controller{
		modes:  modes,
		engine: engine,
		logger: logger,
	}
}

// Start enables demo mode: persists the flag and starts the engine.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.modes.SetActive(ctx, true); err != nil {
		return xerrors.Wrap(err, "failed to persist demo flag")
	}
	c.engine.Start()
	c.logger.Info("demo mode started")
	return nil
}

// Stop disables demo mode: clears the flag and stops the engine.
func (c *Controller) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.modes.SetActive(ctx, false); err != nil {
		return xerrors.Wrap(err, "failed to clear demo flag")
	}
	c.engine.Stop()
	c.logger.Info("demo mode stopped")
	return nil
}

// Reset rebuilds the demo dataset. When the simulation was running it
// is started again afterwards, so an active demo keeps flowing with
// fresh data; a stopped one stays stopped.
func (c *Controller) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	wasRunning := c.engine.Running()
	c.engine.Reset()
	if wasRunning {
		c.engine.Start()
	}
	c.logger.Info("demo mode reset", zap.Bool("restarted", wasRunning))
	return nil
}

// Resume restores the persisted state on boot: a flag left active from
// a previous run starts the engine again.
func (c *Controller) Resume(ctx context.Context) error {
	active, err := c.modes.Active(ctx)
	if err != nil {
		return xerrors.Wrap(err, "failed to read demo flag")
	}
	if active {
		c.engine.Start()
		c.logger.Info("demo mode resumed from persisted flag")
	}
	return nil
}

// Active reports the persisted demo flag.
func (c *Controller) Active(ctx context.Context) (bool, error) {
	return c.modes.Active(ctx)
}

// Running reports the live scheduler state.
func (c *Controller) Running() bool {
	return c.engine.Running()
}
