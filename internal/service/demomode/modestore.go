// internal/service/demomode/modestore.go
package demomode

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
)

const demoModeKey = "crmdemo:demo_mode"

// ModeStore persists the boolean demo-mode flag outside the engine,
// the server-side analog of the browser-persisted setting.
type ModeStore interface {
	Active(ctx context.Context) (bool, error)
	SetActive(ctx context.Context, active bool) error
}

// RedisModeStore keeps the flag in redis so it survives restarts.
type RedisModeStore struct {
	client *redis.Client
}

func NewRedisModeStore(client *redis.Client) *RedisModeStore {
	return &RedisModeStore{client: client}
}

func (s *RedisModeStore) Active(ctx context.Context) (bool, error) {
	val, err := s.client.Get(ctx, demoModeKey).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == "true", nil
}

func (s *RedisModeStore) SetActive(ctx context.Context, active bool) error {
	if !active {
		return s.client.Del(ctx, demoModeKey).Err()
	}
	return s.client.Set(ctx, demoModeKey, "true", 0).Err()
}

// MemoryModeStore is an in-process flag for single-node development
// and tests.
type MemoryModeStore struct {
	active atomic.Bool
}

func NewMemoryModeStore() *MemoryModeStore {
	return &MemoryModeStore{}
}

func (s *MemoryModeStore) Active(ctx context.Context) (bool, error) {
	return s.active.Load(), nil
}

func (s *MemoryModeStore) SetActive(ctx context.Context, active bool) error {
	s.active.Store(active)
	return nil
}
