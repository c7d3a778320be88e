// internal/domain/demo/events.go
package demo

// Event nomeia um canal do bus de eventos da simulação.
type Event string

const (
	EventNewMessage       Event = "new-message"
	EventNewLead          Event = "new-lead"
	EventDealMoved        Event = "deal-moved"
	EventHotLead          Event = "hot-lead"
	EventMeetingScheduled Event = "meeting-scheduled"
	EventNewActivity      Event = "new-activity"
	EventKPIsUpdated      Event = "kpis-updated"
	EventDemoReset        Event = "demo-reset"
)

// NewMessagePayload acompanha EventNewMessage.
type NewMessagePayload struct {
	Conversation *Conversation `json:"conversation"`
	Message      *Message      `json:"message"`
}

// NewLeadPayload acompanha EventNewLead. O deal recém-criado sempre
// entra no estágio "new".
type NewLeadPayload struct {
	Contact *Contact `json:"contact"`
	Deal    *Deal    `json:"deal"`
}

// DealMovedPayload acompanha EventDealMoved.
type DealMovedPayload struct {
	Deal     *Deal `json:"deal"`
	OldStage Stage `json:"oldStage"`
	NewStage Stage `json:"newStage"`
}

// HotLeadPayload acompanha EventHotLead, publicado apenas quando o
// score cruza o limiar vindo de baixo.
type HotLeadPayload struct {
	Contact *Contact `json:"contact"`
}

// MeetingScheduledPayload acompanha EventMeetingScheduled.
type MeetingScheduledPayload struct {
	Contact *Contact `json:"contact"`
}

// KPIsUpdatedPayload acompanha EventKPIsUpdated com o snapshot corrente.
type KPIsUpdatedPayload struct {
	KPIs KPISnapshot `json:"kpis"`
}
