// internal/simulation/actions.go
package simulation

import (
	"fmt"
	"strconv"
	"time"

	"crmdemo-service/internal/domain/demo"
)

// The six recurring actions. Each reads the store, applies one atomic
// state transition, appends its feed activity and publishes its event.
// Empty selection pools make the tick a no-op.

func (e *Engine) simulateNewMessage() {
	conversations := e.store.Conversations()
	idx := e.gen.PickIndex(len(conversations))
	if idx < 0 {
		return
	}

	msg := &demo.Message{
		ID:            NewID(),
		Conteudo:      e.gen.IncomingMessageText(),
		RemetenteTipo: demo.SenderCliente,
		Lida:          false,
		CriadoEm:      time.Now(),
	}
	conv := e.store.AppendIncomingMessage(conversations[idx].ID, msg)
	if conv == nil {
		return
	}

	e.bus.Notify(demo.EventNewMessage, demo.NewMessagePayload{Conversation: conv, Message: msg})
	e.addActivity(demo.ActivityMessage, "Nova mensagem recebida",
		fmt.Sprintf("%s: %s", conv.Contato.Nome, msg.Conteudo), conv.Contato.Nome)
}

func (e *Engine) simulateNewLead() {
	contact := e.gen.Contacts(1)[0]
	deal := &demo.Deal{
		ID:          NewID(),
		Name:        contact.Nome,
		Contact:     contact.Telefone,
		Email:       contact.Email,
		Phone:       contact.WhatsApp,
		Value:       e.gen.IntBetween(5000, 50000),
		Score:       e.gen.IntBetween(60, 95),
		Stage:       demo.StageNew,
		Tags:        []string{"Novo", "WhatsApp"},
		Source:      "WhatsApp",
		LastContact: "Agora",
		LastChannel: "whatsapp",
		CriadoEm:    time.Now(),
	}
	e.store.InsertLead(contact, deal)

	e.bus.Notify(demo.EventNewLead, demo.NewLeadPayload{Contact: contact, Deal: deal})
	e.addActivity(demo.ActivityNewLead, "Novo lead capturado!",
		fmt.Sprintf("%s - %s", contact.Nome, contact.Empresa), contact.Nome)
}

func (e *Engine) simulatePipelineMove() {
	deal, oldStage, newStage, ok := e.store.AdvanceRandomOpenDeal(e.gen.PickIndex)
	if !ok {
		return
	}

	e.bus.Notify(demo.EventDealMoved, demo.DealMovedPayload{Deal: deal, OldStage: oldStage, NewStage: newStage})

	activityType := demo.ActivityDealMoved
	title := "Negócio movido para " + newStage.DisplayName()
	if newStage == demo.StageWon {
		activityType = demo.ActivityDealWon
		title = "🎉 Negócio fechado!"
	}
	e.addActivity(activityType, title,
		fmt.Sprintf("%s - R$ %s", deal.Name, formatBRL(deal.Value)), deal.Name)
}

func (e *Engine) simulateScoreUpdate() {
	contact, crossed, ok := e.store.BumpRandomContactScore(e.gen.PickIndex, e.gen.IntBetween(5, 15))
	if !ok || !crossed {
		return
	}

	e.bus.Notify(demo.EventHotLead, demo.HotLeadPayload{Contact: contact})
	e.addActivity(demo.ActivityNewLead, "🔥 Lead ficou quente!",
		fmt.Sprintf("%s atingiu score %d", contact.Nome, contact.Score), contact.Nome)
}

func (e *Engine) simulateMeeting() {
	contact, ok := e.store.RecordMeeting(e.gen.PickIndex)
	if !ok {
		return
	}

	meetingDay := time.Now().Add(e.gen.DurationBetween(24*time.Hour, 7*24*time.Hour))
	e.bus.Notify(demo.EventMeetingScheduled, demo.MeetingScheduledPayload{Contact: contact})
	e.addActivity(demo.ActivityTask, "📅 Reunião agendada",
		fmt.Sprintf("Demo agendada com %s para %s", contact.Nome, meetingDay.Format("02/01/2006")), contact.Nome)
}

// driftKPIs nudges the counters independently of the dedicated actions.
// The resulting double counting is deliberate: no single canonical KPI
// computation exists for the demo.
func (e *Engine) driftKPIs() {
	novos, quentes, visitas := 0, 0, 0
	if e.gen.Chance(0.5) {
		novos = e.gen.IntBetween(0, 2)
	}
	if e.gen.Chance(0.3) {
		quentes = e.gen.IntBetween(0, 1)
	}
	if e.gen.Chance(0.2) {
		visitas = 1
	}

	snapshot := e.store.UpdateKPIs(func(k *demo.KPISnapshot) {
		k.NovosLeads += novos
		k.LeadsQuentes += quentes
		k.VisitasAgendadas += visitas
	})
	e.bus.Notify(demo.EventKPIsUpdated, demo.KPIsUpdatedPayload{KPIs: snapshot})
}

func (e *Engine) addActivity(activityType demo.ActivityType, title, description, contactName string) {
	activity := &demo.Activity{
		ID:          NewID(),
		Type:        activityType,
		Title:       title,
		Description: description,
		ContactName: contactName,
		CreatedAt:   time.Now(),
	}
	e.store.AddActivity(activity)
	e.bus.Notify(demo.EventNewActivity, activity)
}

// formatBRL renders an integer amount with pt-BR thousand separators.
func formatBRL(value int) string {
	digits := strconv.Itoa(value)
	if len(digits) <= 3 {
		return digits
	}
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	return string(out)
}
