package simulation

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerStartIsIdempotent(t *testing.T) {
	gen := NewSeededGenerator(1)
	sched := NewScheduler([]Task{
		{Name: "a", Band: Band{Min: time.Hour, Max: time.Hour}, Run: func() {}},
		{Name: "b", Band: Band{Min: time.Hour, Max: time.Hour}, Run: func() {}},
	}, gen, zapNop())
	defer sched.Stop()

	sched.Start()
	sched.Start()
	sched.Start()

	assert.True(t, sched.Running())
	assert.Equal(t, 2, sched.ActiveTasks(), "duplicate Start must not double the timers")
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	gen := NewSeededGenerator(1)
	sched := NewScheduler([]Task{
		{Name: "a", Band: Band{Min: time.Hour, Max: time.Hour}, Run: func() {}},
	}, gen, zapNop())

	sched.Stop()
	assert.False(t, sched.Running())

	sched.Start()
	sched.Stop()
	sched.Stop()
	assert.False(t, sched.Running())
	assert.Zero(t, sched.ActiveTasks())
}

func TestSchedulerFiresAndRearms(t *testing.T) {
	gen := NewSeededGenerator(1)
	var fires atomic.Int32
	sched := NewScheduler([]Task{
		{Name: "fast", Band: Band{Min: time.Millisecond, Max: 3 * time.Millisecond}, Run: func() { fires.Add(1) }},
	}, gen, zapNop())

	sched.Start()
	require.Eventually(t, func() bool { return fires.Load() >= 3 }, time.Second, time.Millisecond,
		"a recurring task should re-arm after every fire")
	sched.Stop()

	after := fires.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, fires.Load(), "no fires after Stop")
}

func TestSchedulerRestartAfterStop(t *testing.T) {
	gen := NewSeededGenerator(1)
	var fires atomic.Int32
	sched := NewScheduler([]Task{
		{Name: "fast", Band: Band{Min: time.Millisecond, Max: 2 * time.Millisecond}, Run: func() { fires.Add(1) }},
	}, gen, zapNop())

	sched.Start()
	require.Eventually(t, func() bool { return fires.Load() >= 1 }, time.Second, time.Millisecond)
	sched.Stop()

	before := fires.Load()
	sched.Start()
	require.Eventually(t, func() bool { return fires.Load() > before }, time.Second, time.Millisecond)
	sched.Stop()
}
