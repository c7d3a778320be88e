// internal/simulation/scheduler.go
package simulation

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Band is the inclusive interval range a recurring task re-arms within.
// A fixed-period task has Min == Max.
type Band struct {
	Min time.Duration
	Max time.Duration
}

// Task is one independently recurring simulation action. Every fire
// computes a fresh random delay inside the band before re-arming.
type Task struct {
	Name string
	Band Band
	Run  func()
}

// Scheduler owns the battery of recurring tasks. Two states: stopped
// (initial) and running. Start and Stop are idempotent; Stop cancels
// all outstanding timers together.
type Scheduler struct {
	mu      sync.Mutex
	tasks   []Task
	gen     *Generator
	logger  *zap.Logger
	running bool
	active  atomic.Int32
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewScheduler(tasks []Task, gen *Generator, logger *zap.Logger) *Scheduler {
	return &Scheduler{tasks: tasks, gen: gen, logger: logger}
}

// Start arms one timer per task. A second Start while running is a
// no-op, guarding against duplicate timer registration.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	for _, task := range s.tasks {
		s.wg.Add(1)
		s.active.Add(1)
		go s.loop(ctx, task)
	}
	s.logger.Info("simulation scheduler started", zap.Int("tasks", len(s.tasks)))
}

func (s *Scheduler) loop(ctx context.Context, task Task) {
	defer s.wg.Done()
	defer s.active.Add(-1)

	timer := time.NewTimer(s.gen.DurationBetween(task.Band.Min, task.Band.Max))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			task.Run()
			timer.Reset(s.gen.DurationBetween(task.Band.Min, task.Band.Max))
		}
	}
}

// Stop cancels every task timer and waits for the loops to exit.
// Idempotent when already stopped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.cancel = nil
	s.running = false
	s.logger.Info("simulation scheduler stopped")
}

// Running reports whether the scheduler is in the running state.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// ActiveTasks reports how many task loops are currently live.
func (s *Scheduler) ActiveTasks() int {
	return int(s.active.Load())
}
