// internal/simulation/engine.go
package simulation

import (
	"time"

	"crmdemo-service/internal/domain/demo"

	"go.uber.org/zap"
)

// Intervals are the re-arm bands of the six recurring actions.
type Intervals struct {
	NewMessage   Band
	NewLead      Band
	PipelineMove Band
	ScoreUpdate  Band
	Meeting      Band
	KPIDrift     time.Duration
}

// Params tune the engine: base dataset sizes and timer bands.
type Params struct {
	Contacts      int
	Conversations int
	Deals         int
	Activities    int
	Intervals     Intervals
}

// DefaultParams returns the production demo profile.
func DefaultParams() Params {
	return Params{
		Contacts:      50,
		Conversations: 20,
		Deals:         15,
		Activities:    10,
		Intervals: Intervals{
			NewMessage:   Band{Min: 5 * time.Second, Max: 15 * time.Second},
			NewLead:      Band{Min: 20 * time.Second, Max: 40 * time.Second},
			PipelineMove: Band{Min: 15 * time.Second, Max: 30 * time.Second},
			ScoreUpdate:  Band{Min: 10 * time.Second, Max: 20 * time.Second},
			Meeting:      Band{Min: 30 * time.Second, Max: 60 * time.Second},
			KPIDrift:     8 * time.Second,
		},
	}
}

// initialKPIs is the snapshot every fresh base dataset starts from.
var initialKPIs = demo.KPISnapshot{
	LeadsQuentes:     12,
	NovosLeads:       8,
	VisitasAgendadas: 5,
	TaxaConversao:    24.5,
}

// Engine composes the store, the event bus and the scheduler into the
// demo simulation backend. It is an explicitly constructed instance:
// the demo-mode controller owns its lifecycle and the facade reads
// through it.
type Engine struct {
	params Params
	gen    *Generator
	store  *Store
	bus    *Bus
	sched  *Scheduler
	logger *zap.Logger
}

func NewEngine(params Params, gen *Generator, logger *zap.Logger) *Engine {
	e := &Engine{
		params: params,
		gen:    gen,
		store:  NewStore(),
		bus:    NewBus(logger),
		logger: logger,
	}
	e.sched = NewScheduler([]Task{
		{Name: "new-message", Band: params.Intervals.NewMessage, Run: e.simulateNewMessage},
		{Name: "new-lead", Band: params.Intervals.NewLead, Run: e.simulateNewLead},
		{Name: "pipeline-move", Band: params.Intervals.PipelineMove, Run: e.simulatePipelineMove},
		{Name: "score-update", Band: params.Intervals.ScoreUpdate, Run: e.simulateScoreUpdate},
		{Name: "meeting", Band: params.Intervals.Meeting, Run: e.simulateMeeting},
		{Name: "kpi-drift", Band: Band{Min: params.Intervals.KPIDrift, Max: params.Intervals.KPIDrift}, Run: e.driftKPIs},
	}, gen, logger)
	e.initializeBaseData()
	return e
}

// initializeBaseData regenerates the whole dataset from scratch:
// 50 contacts, 20 conversations (each with its registered thread),
// 15 deals, 10 activities and the initial KPI snapshot, by default.
func (e *Engine) initializeBaseData() {
	e.store.ClearThreads()
	contacts := e.gen.Contacts(e.params.Contacts)
	conversations := e.gen.Conversations(e.params.Conversations, contacts, e.store.RegisterThread)
	deals := e.gen.Deals(e.params.Deals, contacts)
	activities := e.gen.Activities(e.params.Activities)
	e.store.ReplaceAll(contacts, conversations, deals, activities, initialKPIs)
}

// Start begins the recurring simulation. Idempotent.
func (e *Engine) Start() {
	e.sched.Start()
}

// Stop halts all recurring actions. Idempotent.
func (e *Engine) Stop() {
	e.sched.Stop()
}

// Running reports whether the simulation is active.
func (e *Engine) Running() bool {
	return e.sched.Running()
}

// Reset stops the simulation, rebuilds the base dataset and publishes
// demo-reset. It never restarts the scheduler: the demo-mode
// controller decides whether to start again.
func (e *Engine) Reset() {
	e.Stop()
	e.initializeBaseData()
	e.bus.Notify(demo.EventDemoReset, struct{}{})
	e.logger.Info("demo data reset")
}

// Store exposes the authoritative state for read access.
func (e *Engine) Store() *Store {
	return e.store
}

// On subscribes to a simulation event channel.
func (e *Engine) On(event demo.Event, fn Handler) SubscriptionID {
	return e.bus.On(event, fn)
}

// Off removes a subscription.
func (e *Engine) Off(event demo.Event, id SubscriptionID) {
	e.bus.Off(event, id)
}

// ReceiveInbound appends an inbound client message to a conversation
// and publishes new-message. Used by the facade's delayed auto-reply.
func (e *Engine) ReceiveInbound(conversationID, conteudo string) (*demo.Conversation, *demo.Message) {
	msg := &demo.Message{
		ID:            NewID(),
		Conteudo:      conteudo,
		RemetenteTipo: demo.SenderCliente,
		Lida:          false,
		CriadoEm:      time.Now(),
	}
	conv := e.store.AppendIncomingMessage(conversationID, msg)
	if conv == nil {
		return nil, nil
	}
	e.bus.Notify(demo.EventNewMessage, demo.NewMessagePayload{Conversation: conv, Message: msg})
	return conv, msg
}

// PerformanceData returns a fresh ten-day dashboard series.
func (e *Engine) PerformanceData() []demo.PerformancePoint {
	return e.gen.PerformanceSeries()
}

// ChannelPerformance returns fresh per-channel dashboard rows.
func (e *Engine) ChannelPerformance() []demo.ChannelStats {
	return e.gen.ChannelPerformance()
}
