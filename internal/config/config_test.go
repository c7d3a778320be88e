package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, 50, cfg.DemoContacts)
	assert.Equal(t, 20, cfg.DemoConversations)
	assert.Equal(t, 15, cfg.DemoDeals)
	assert.Equal(t, 10, cfg.DemoActivities)
	assert.Equal(t, 2*time.Second, cfg.AutoReplyDelay)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DEMO_CONTACTS", "5")
	t.Setenv("DEMO_AUTO_REPLY_DELAY", "500ms")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 5, cfg.DemoContacts)
	assert.Equal(t, 500*time.Millisecond, cfg.AutoReplyDelay)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DEMO_DEALS", "not-a-number")
	t.Setenv("DEMO_AUTO_REPLY_DELAY", "soon")

	cfg := Load()
	assert.Equal(t, 15, cfg.DemoDeals)
	assert.Equal(t, 2*time.Second, cfg.AutoReplyDelay)
}
