package demomode

import (
	"context"
	"testing"
	"time"

	"crmdemo-service/internal/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestController(t *testing.T) (*Controller, *MemoryModeStore, *simulation.Engine) {
	t.Helper()
	idle := simulation.Band{Min: time.Hour, Max: time.Hour}
	params := simulation.Params{
		Contacts:      5,
		Conversations: 2,
		Deals:         2,
		Activities:    1,
		Intervals: simulation.Intervals{
			NewMessage:   idle,
			NewLead:      idle,
			PipelineMove: idle,
			ScoreUpdate:  idle,
			Meeting:      idle,
			KPIDrift:     time.Hour,
		},
	}
	engine := simulation.NewEngine(params, simulation.NewSeededGenerator(1), zap.NewNop())
	modes := NewMemoryModeStore()
	return NewController(modes, engine, zap.NewNop()), modes, engine
}

func TestMemoryModeStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryModeStore()

	active, err := store.Active(ctx)
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, store.SetActive(ctx, true))
	active, err = store.Active(ctx)
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, store.SetActive(ctx, false))
	active, err = store.Active(ctx)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestControllerStartStop(t *testing.T) {
	ctx := context.Background()
	controller, modes, engine := newTestController(t)
	defer engine.Stop()

	require.NoError(t, controller.Start(ctx))
	assert.True(t, controller.Running())
	active, _ := modes.Active(ctx)
	assert.True(t, active)

	require.NoError(t, controller.Stop(ctx))
	assert.False(t, controller.Running())
	active, _ = modes.Active(ctx)
	assert.False(t, active)
}

func TestControllerResetRestartsOnlyWhenRunning(t *testing.T) {
	ctx := context.Background()
	controller, _, engine := newTestController(t)
	defer engine.Stop()

	// Stopped demo stays stopped after a reset.
	require.NoError(t, controller.Reset(ctx))
	assert.False(t, controller.Running())

	// Running demo keeps flowing after a reset.
	require.NoError(t, controller.Start(ctx))
	require.NoError(t, controller.Reset(ctx))
	assert.True(t, controller.Running())
}

func TestControllerResume(t *testing.T) {
	ctx := context.Background()
	controller, modes, engine := newTestController(t)
	defer engine.Stop()

	// Nothing persisted: resume does not start the engine.
	require.NoError(t, controller.Resume(ctx))
	assert.False(t, controller.Running())

	// Flag left active by a previous run: resume starts it.
	require.NoError(t, modes.SetActive(ctx, true))
	require.NoError(t, controller.Resume(ctx))
	assert.True(t, controller.Running())
}

func TestControllerActive(t *testing.T) {
	ctx := context.Background()
	controller, modes, engine := newTestController(t)
	defer engine.Stop()

	active, err := controller.Active(ctx)
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, modes.SetActive(ctx, true))
	active, err = controller.Active(ctx)
	require.NoError(t, err)
	assert.True(t, active)
}
