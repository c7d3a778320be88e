// internal/service/mockapi/facade.go
package mockapi

import (
	"context"
	"strings"
	"time"

	"crmdemo-service/internal/domain/demo"
	"crmdemo-service/internal/service/demomode"
	"crmdemo-service/internal/simulation"

	"go.uber.org/zap"
)

const contactPageSize = 20

// autoReplyText is the canned inbound reply sent after a manual send.
const autoReplyText = "Obrigado pela mensagem! Vou analisar e retorno em breve."

// Facade mimics a real API over the simulation engine, gated by the
// persisted demo flag. Every method answers with the { data: ... }
// envelope; when demo mode is off it returns the defined zero payload
// instead of touching the engine. The facade itself never fails a
// call: a broken flag store just reads as demo off.
type Facade struct {
	engine         *simulation.Engine
	modes          demomode.ModeStore
	autoReplyDelay time.Duration
	logger         *zap.Logger
}

func NewFacade(engine *simulation.Engine, modes demomode.ModeStore, autoReplyDelay time.Duration, logger *zap.Logger) *Facade {
	return &Facade{
		engine:         engine,
		modes:          modes,
		autoReplyDelay: autoReplyDelay,
		logger:         logger,
	}
}

func (f *Facade) demoActive(ctx context.Context) bool {
	active, err := f.modes.Active(ctx)
	if err != nil {
		f.logger.Warn("failed to read demo flag, treating as off", zap.Error(err))
		return false
	}
	return active
}

// ---- Dashboard ----

func (f *Facade) GetKPIs(ctx context.Context) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: demo.KPISnapshot{}}
	}
	return demo.Envelope{Data: f.engine.Store().KPIs()}
}

func (f *Facade) GetRecentActivities(ctx context.Context) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: []*demo.Activity{}}
	}
	return demo.Envelope{Data: f.engine.Store().Activities()}
}

func (f *Facade) GetPerformanceData(ctx context.Context) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: []demo.PerformancePoint{}}
	}
	return demo.Envelope{Data: f.engine.PerformanceData()}
}

func (f *Facade) GetChannelPerformance(ctx context.Context) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: []demo.ChannelStats{}}
	}
	return demo.Envelope{Data: f.engine.ChannelPerformance()}
}

// ---- Conversations ----

func (f *Facade) GetConversations(ctx context.Context, filters demo.ConversationFilters) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: []*demo.Conversation{}}
	}

	conversations := f.engine.Store().Conversations()
	filtered := make([]*demo.Conversation, 0, len(conversations))
	search := strings.ToLower(filters.Search)
	for _, c := range conversations {
		if search != "" && !strings.Contains(strings.ToLower(c.Contato.Nome), search) {
			continue
		}
		if filters.Status == string(demo.StatusUnread) && c.NaoLidas == 0 {
			continue
		}
		filtered = append(filtered, c)
	}
	return demo.Envelope{Data: filtered}
}

func (f *Facade) GetConversationByID(ctx context.Context, id string) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: nil}
	}

	conversation := f.engine.Store().ConversationByID(id)
	if conversation == nil {
		return demo.Envelope{Data: nil}
	}
	return demo.Envelope{Data: demo.ConversationDetail{
		Conversation: *conversation,
		Mensagens:    f.engine.Store().Messages(id),
	}}
}

// SendMessage appends an agent message to the thread and schedules the
// simulated auto-reply, which arrives as an inbound message and fires
// new-message.
func (f *Facade) SendMessage(ctx context.Context, conversationID string, req demo.SendMessageRequest) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: nil}
	}

	msg := &demo.Message{
		ID:            simulation.NewID(),
		Conteudo:      req.Conteudo,
		RemetenteTipo: demo.SenderAtendente,
		Lida:          false,
		CriadoEm:      time.Now(),
	}
	f.engine.Store().AppendThreadMessage(conversationID, msg)

	time.AfterFunc(f.autoReplyDelay, func() {
		f.engine.ReceiveInbound(conversationID, autoReplyText)
	})

	return demo.Envelope{Data: msg}
}

// ---- Pipeline ----

func (f *Facade) GetPipelineDeals(ctx context.Context) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: []*demo.StageColumn{}}
	}
	return demo.Envelope{Data: f.engine.Store().DealBoard()}
}

func (f *Facade) MoveDeal(ctx context.Context, dealID string, stage demo.Stage) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: nil}
	}
	moved := f.engine.Store().MoveDeal(dealID, stage)
	return demo.Envelope{Data: demo.OperationResult{Success: moved}}
}

// ---- Contacts ----

func (f *Facade) GetContacts(ctx context.Context, filters demo.ContactFilters) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: demo.ContactPage{Contatos: []*demo.Contact{}, Total: 0}}
	}

	contacts := f.engine.Store().Contacts()
	if filters.Search != "" {
		search := strings.ToLower(filters.Search)
		filtered := make([]*demo.Contact, 0, len(contacts))
		for _, c := range contacts {
			if strings.Contains(strings.ToLower(c.Nome), search) ||
				strings.Contains(strings.ToLower(c.Email), search) ||
				strings.Contains(strings.ToLower(c.Empresa), search) {
				filtered = append(filtered, c)
			}
		}
		contacts = filtered
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * contactPageSize
	if start > len(contacts) {
		start = len(contacts)
	}
	end := start + contactPageSize
	if end > len(contacts) {
		end = len(contacts)
	}

	return demo.Envelope{Data: demo.ContactPage{
		Contatos: contacts[start:end],
		Total:    len(contacts),
	}}
}

func (f *Facade) CreateContact(ctx context.Context, req demo.CreateContactRequest) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: nil}
	}

	contact := &demo.Contact{
		ID:            simulation.NewID(),
		Nome:          req.Nome,
		Email:         req.Email,
		Telefone:      req.Telefone,
		WhatsApp:      req.WhatsApp,
		Empresa:       req.Empresa,
		Cargo:         req.Cargo,
		Tags:          []string{"Novo"},
		Score:         50,
		UltimoContato: "Agora",
		CriadoEm:      time.Now(),
	}
	f.engine.Store().PrependContact(contact)
	return demo.Envelope{Data: contact}
}

func (f *Facade) DeleteContact(ctx context.Context, id string) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: nil}
	}
	removed := f.engine.Store().RemoveContact(id)
	return demo.Envelope{Data: demo.OperationResult{Success: removed}}
}

// ---- Automation ----

func (f *Facade) GetAutomationStatus(ctx context.Context) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: demo.AutomationStatus{IsRunning: false}}
	}
	return demo.Envelope{Data: demo.AutomationStatus{
		IsRunning: f.engine.Running(),
		LastRun:   time.Now(),
	}}
}

func (f *Facade) GetAutomationFlows(ctx context.Context) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: []demo.AutomationFlow{}}
	}
	return demo.Envelope{Data: automationFlows()}
}

// StartAutomation acknowledges the request. The simulated flows have
// no real runtime; the scheduler lifecycle belongs to the demo-mode
// controller.
func (f *Facade) StartAutomation(ctx context.Context) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: nil}
	}
	return demo.Envelope{Data: demo.OperationResult{Success: true}}
}

func (f *Facade) StopAutomation(ctx context.Context) demo.Envelope {
	if !f.demoActive(ctx) {
		return demo.Envelope{Data: nil}
	}
	return demo.Envelope{Data: demo.OperationResult{Success: true}}
}

func automationFlows() []demo.AutomationFlow {
	return []demo.AutomationFlow{
		{
			ID:        "auto-qualify-hot",
			Nome:      "Qualificar Leads Quentes",
			Descricao: "Move leads com score alto para qualificados",
			Ativo:     true,
			Gatilho:   "Score > 80",
			Regras:    map[string]int{"score_minimo": 80},
		},
		{
			ID:        "auto-cadence",
			Nome:      "Cadência de Follow-up",
			Descricao: "Envia mensagens automáticas de follow-up",
			Ativo:     true,
			Gatilho:   "Sem resposta há 24h",
			Regras:    map[string]int{"tempo_sem_resposta": 24},
		},
		{
			ID:        "auto-qualify-score",
			Nome:      "Atualizar Score",
			Descricao: "Atualiza score baseado em interações",
			Ativo:     true,
			Gatilho:   "Nova interação",
			Regras:    map[string]int{"tempo_interacao": 5},
		},
		{
			ID:        "auto-lost",
			Nome:      "Marcar como Perdido",
			Descricao: "Move para perdidos após 30 dias sem resposta",
			Ativo:     false,
			Gatilho:   "30 dias sem resposta",
			Regras:    map[string]int{"dias_sem_resposta": 30},
		},
	}
}
