package simulation

import (
	"testing"
	"time"

	"crmdemo-service/internal/domain/demo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactsCountAndBounds(t *testing.T) {
	gen := NewSeededGenerator(1)
	contacts := gen.Contacts(50)
	require.Len(t, contacts, 50)

	for _, c := range contacts {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Nome)
		assert.GreaterOrEqual(t, c.Score, 20)
		assert.LessOrEqual(t, c.Score, 100)
		assert.GreaterOrEqual(t, c.ValorTotal, 5000)
		assert.LessOrEqual(t, c.ValorTotal, 150000)
		assert.NotEmpty(t, c.Tags)
	}
}

func TestContactsNonPositiveCount(t *testing.T) {
	gen := NewSeededGenerator(1)
	assert.Empty(t, gen.Contacts(0))
	assert.Empty(t, gen.Contacts(-3))
}

func TestConversationsRegisterThreads(t *testing.T) {
	gen := NewSeededGenerator(2)
	contacts := gen.Contacts(5)

	threads := make(map[string][]*demo.Message)
	conversations := gen.Conversations(20, contacts, func(id string, msgs []*demo.Message) {
		threads[id] = msgs
	})
	require.Len(t, conversations, 20)

	for _, conv := range conversations {
		msgs, ok := threads[conv.ID]
		require.True(t, ok, "conversation %s has no registered thread", conv.ID)
		assert.GreaterOrEqual(t, len(msgs), 3)
		assert.LessOrEqual(t, len(msgs), 15)
		assert.Equal(t, msgs[len(msgs)-1].Conteudo, conv.UltimaMensagem)
		assert.True(t, conv.CanalTipo.IsValid())
		assert.True(t, conv.Status.IsValid())
	}
}

func TestMessagesOrderedAscending(t *testing.T) {
	gen := NewSeededGenerator(3)
	msgs := gen.Messages(30)
	require.Len(t, msgs, 30)
	for i := 1; i < len(msgs); i++ {
		assert.False(t, msgs[i].CriadoEm.Before(msgs[i-1].CriadoEm))
	}
}

func TestDealsReferenceContacts(t *testing.T) {
	gen := NewSeededGenerator(4)
	contacts := gen.Contacts(3)
	deals := gen.Deals(15, contacts)
	require.Len(t, deals, 15)

	names := map[string]bool{}
	for _, c := range contacts {
		names[c.Nome] = true
	}
	for _, d := range deals {
		assert.True(t, d.Stage.IsValid())
		assert.True(t, names[d.Name], "deal name should come from the contact pool")
		assert.GreaterOrEqual(t, d.Value, 5000)
		assert.LessOrEqual(t, d.Value, 100000)
	}
}

func TestActivitiesNewestFirst(t *testing.T) {
	gen := NewSeededGenerator(5)
	activities := gen.Activities(10)
	require.Len(t, activities, 10)
	for i := 1; i < len(activities); i++ {
		assert.False(t, activities[i].CreatedAt.After(activities[i-1].CreatedAt))
	}
}

func TestPerformanceSeriesTenDaysOldestFirst(t *testing.T) {
	gen := NewSeededGenerator(6)
	points := gen.PerformanceSeries()
	require.Len(t, points, 10)
	assert.Equal(t, time.Now().AddDate(0, 0, -9).Format("2006-01-02"), points[0].Data)
	assert.Equal(t, time.Now().Format("2006-01-02"), points[9].Data)
}

func TestChannelPerformancePercentages(t *testing.T) {
	gen := NewSeededGenerator(7)
	stats := gen.ChannelPerformance()
	require.Len(t, stats, 3)
	assert.Equal(t, "WhatsApp", stats[0].Channel)
	assert.Equal(t, 45, stats[0].Percentage)
	assert.Equal(t, 30, stats[1].Percentage)
	assert.Equal(t, 25, stats[2].Percentage)
}

func TestPickIndexEmptyPool(t *testing.T) {
	gen := NewSeededGenerator(8)
	assert.Equal(t, -1, gen.PickIndex(0))
	assert.Equal(t, 0, gen.PickIndex(1))
}

func TestIntBetweenInclusive(t *testing.T) {
	gen := NewSeededGenerator(9)
	for i := 0; i < 200; i++ {
		n := gen.IntBetween(5, 15)
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 15)
	}
	assert.Equal(t, 7, gen.IntBetween(7, 7))
}

func TestDurationBetweenInclusive(t *testing.T) {
	gen := NewSeededGenerator(10)
	for i := 0; i < 200; i++ {
		d := gen.DurationBetween(time.Second, 3*time.Second)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.LessOrEqual(t, d, 3*time.Second)
	}
}
