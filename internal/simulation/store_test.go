package simulation

import (
	"fmt"
	"testing"

	"crmdemo-service/internal/domain/demo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityFeedCap(t *testing.T) {
	store := NewStore()
	for i := 0; i < maxActivities+20; i++ {
		store.AddActivity(&demo.Activity{ID: fmt.Sprintf("a-%d", i), Title: "x"})
	}

	activities := store.Activities()
	require.Len(t, activities, maxActivities)
	// Newest insert sits at the head, oldest entries fall off.
	assert.Equal(t, fmt.Sprintf("a-%d", maxActivities+19), activities[0].ID)
	assert.Equal(t, fmt.Sprintf("a-%d", 20), activities[maxActivities-1].ID)
}

func TestAdvanceRandomOpenDealSkipsWon(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(nil, nil, []*demo.Deal{
		{ID: "d1", Stage: demo.StageWon},
		{ID: "d2", Stage: demo.StageNegotiation},
	}, nil, demo.KPISnapshot{TaxaConversao: 24.5})

	deal, oldStage, newStage, ok := store.AdvanceRandomOpenDeal(func(n int) int {
		require.Equal(t, 1, n, "won deal must not be a candidate")
		return 0
	})
	require.True(t, ok)
	assert.Equal(t, "d2", deal.ID)
	assert.Equal(t, demo.StageNegotiation, oldStage)
	assert.Equal(t, demo.StageWon, newStage)
	assert.InDelta(t, 26.5, store.KPIs().TaxaConversao, 0.001)
}

func TestAdvanceRandomOpenDealNoCandidates(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(nil, nil, []*demo.Deal{{ID: "d1", Stage: demo.StageWon}}, nil, demo.KPISnapshot{})

	_, _, _, ok := store.AdvanceRandomOpenDeal(func(n int) int { return 0 })
	assert.False(t, ok)
}

func TestConversionRateClampedAt100(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(nil, nil, []*demo.Deal{
		{ID: "d1", Stage: demo.StageNegotiation},
	}, nil, demo.KPISnapshot{TaxaConversao: 99.5})

	_, _, _, ok := store.AdvanceRandomOpenDeal(func(n int) int { return 0 })
	require.True(t, ok)
	assert.Equal(t, 100.0, store.KPIs().TaxaConversao)
}

func TestScoreBumpHotLeadCrossing(t *testing.T) {
	store := NewStore()
	contact := &demo.Contact{ID: "c1", Nome: "Ana", Score: 75, Tags: []string{"Prospect"}}
	store.ReplaceAll([]*demo.Contact{contact}, nil, nil, nil, demo.KPISnapshot{LeadsQuentes: 12})

	got, crossed, ok := store.BumpRandomContactScore(func(n int) int { return 0 }, 10)
	require.True(t, ok)
	assert.True(t, crossed)
	assert.Equal(t, 85, got.Score)
	assert.True(t, got.HasTag(demo.HotLeadTag))
	assert.Equal(t, 13, store.KPIs().LeadsQuentes)

	// A second bump above the threshold is not a crossing.
	got, crossed, ok = store.BumpRandomContactScore(func(n int) int { return 0 }, 10)
	require.True(t, ok)
	assert.False(t, crossed)
	assert.Equal(t, 95, got.Score)
	assert.Equal(t, 13, store.KPIs().LeadsQuentes)
}

func TestScoreBumpClampAndTagDedup(t *testing.T) {
	store := NewStore()
	contact := &demo.Contact{ID: "c1", Score: 79, Tags: []string{demo.HotLeadTag}}
	store.ReplaceAll([]*demo.Contact{contact}, nil, nil, nil, demo.KPISnapshot{})

	got, crossed, ok := store.BumpRandomContactScore(func(n int) int { return 0 }, 40)
	require.True(t, ok)
	assert.True(t, crossed)
	assert.Equal(t, 100, got.Score)

	count := 0
	for _, tag := range got.Tags {
		if tag == demo.HotLeadTag {
			count++
		}
	}
	assert.Equal(t, 1, count, "hot-lead tag must not duplicate")
}

func TestScoreBumpEmptyContacts(t *testing.T) {
	store := NewStore()
	_, _, ok := store.BumpRandomContactScore(func(n int) int { return 0 }, 10)
	assert.False(t, ok)
}

func TestInsertLead(t *testing.T) {
	store := NewStore()
	existing := &demo.Contact{ID: "old"}
	store.ReplaceAll([]*demo.Contact{existing}, nil, nil, nil, demo.KPISnapshot{NovosLeads: 8})

	store.InsertLead(&demo.Contact{ID: "new"}, &demo.Deal{ID: "d1", Stage: demo.StageNew})

	contacts := store.Contacts()
	require.Len(t, contacts, 2)
	assert.Equal(t, "new", contacts[0].ID, "new contact is prepended")
	assert.Len(t, store.Deals(), 1)
	assert.Equal(t, 9, store.KPIs().NovosLeads)
}

func TestDealBoardProjection(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(nil, nil, []*demo.Deal{
		{ID: "d1", Stage: demo.StageNew},
		{ID: "d2", Stage: demo.StageNew},
		{ID: "d3", Stage: demo.StageWon},
		{ID: "d4", Stage: demo.Stage("bogus")},
	}, nil, demo.KPISnapshot{})

	board := store.DealBoard()
	require.Len(t, board, 5)

	titles := make([]string, 0, 5)
	total := 0
	for _, col := range board {
		titles = append(titles, col.Title)
		total += len(col.Leads)
	}
	assert.Equal(t, []string{"Novos Leads", "Qualificados", "Proposta", "Negociação", "Ganhos"}, titles)
	assert.Equal(t, 3, total, "invalid-stage deals are dropped from the projection")
	assert.Len(t, board[0].Leads, 2)
	assert.Len(t, board[4].Leads, 1)
}

func TestAppendIncomingMessage(t *testing.T) {
	store := NewStore()
	conv := &demo.Conversation{ID: "conv1", NaoLidas: 1}
	store.ReplaceAll(nil, []*demo.Conversation{conv}, nil, nil, demo.KPISnapshot{})
	store.RegisterThread("conv1", nil)

	msg := &demo.Message{ID: "m1", Conteudo: "Qual o preço?", RemetenteTipo: demo.SenderCliente}
	updated := store.AppendIncomingMessage("conv1", msg)
	require.NotNil(t, updated)
	assert.Equal(t, "Qual o preço?", updated.UltimaMensagem)
	assert.Equal(t, 2, updated.NaoLidas)
	assert.Len(t, store.Messages("conv1"), 1)

	assert.Nil(t, store.AppendIncomingMessage("ghost", msg))
}

func TestMessagesUnknownConversation(t *testing.T) {
	store := NewStore()
	assert.Empty(t, store.Messages("missing"))
}

func TestMoveDealValidation(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(nil, nil, []*demo.Deal{{ID: "d1", Stage: demo.StageNew}}, nil, demo.KPISnapshot{})

	assert.False(t, store.MoveDeal("d1", demo.Stage("bogus")))
	assert.False(t, store.MoveDeal("ghost", demo.StageWon))
	assert.True(t, store.MoveDeal("d1", demo.StageProposal))
	assert.Equal(t, demo.StageProposal, store.Deals()[0].Stage)
}

func TestRemoveContact(t *testing.T) {
	store := NewStore()
	store.ReplaceAll([]*demo.Contact{{ID: "c1"}, {ID: "c2"}}, nil, nil, nil, demo.KPISnapshot{})

	assert.True(t, store.RemoveContact("c1"))
	assert.False(t, store.RemoveContact("c1"))
	require.Len(t, store.Contacts(), 1)
	assert.Equal(t, "c2", store.Contacts()[0].ID)
}

func TestRecordMeeting(t *testing.T) {
	store := NewStore()
	store.ReplaceAll([]*demo.Contact{{ID: "c1", Nome: "Bruno"}}, nil, nil, nil, demo.KPISnapshot{VisitasAgendadas: 5})

	contact, ok := store.RecordMeeting(func(n int) int { return 0 })
	require.True(t, ok)
	assert.Equal(t, "Bruno", contact.Nome)
	assert.Equal(t, 6, store.KPIs().VisitasAgendadas)

	empty := NewStore()
	_, ok = empty.RecordMeeting(func(n int) int { return 0 })
	assert.False(t, ok)
}
