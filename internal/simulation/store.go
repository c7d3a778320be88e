// internal/simulation/store.go
package simulation

import (
	"sync"

	"crmdemo-service/internal/domain/demo"
)

// maxActivities bounds the recent-activity feed; inserts beyond the cap
// drop the oldest entries.
const maxActivities = 50

var stageMeta = []struct {
	ID          demo.Stage
	Color       string
	Description string
}{
	{demo.StageNew, "bg-blue-500", "Leads recém chegados"},
	{demo.StageQualified, "bg-purple-500", "Leads com potencial confirmado"},
	{demo.StageProposal, "bg-amber-500", "Proposta enviada"},
	{demo.StageNegotiation, "bg-orange-500", "Em negociação final"},
	{demo.StageWon, "bg-green-500", "Negócios fechados"},
}

// Store holds the authoritative in-memory demo state. Only the
// simulation actions, initialization/reset and the facade's write
// methods mutate it; every exported method is an atomic unit under the
// store lock, so readers never observe a half-applied action.
type Store struct {
	mu            sync.RWMutex
	contacts      []*demo.Contact
	conversations []*demo.Conversation
	messages      map[string][]*demo.Message
	deals         []*demo.Deal
	activities    []*demo.Activity
	kpis          demo.KPISnapshot
}

func NewStore() *Store {
	return &Store{messages: make(map[string][]*demo.Message)}
}

// ReplaceAll swaps the whole state in one step. Used by initialization
// and reset; threads must already be registered via RegisterThread
// before the swap completes, so ReplaceAll keeps the current map.
func (s *Store) ReplaceAll(contacts []*demo.Contact, conversations []*demo.Conversation, deals []*demo.Deal, activities []*demo.Activity, kpis demo.KPISnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = contacts
	s.conversations = conversations
	s.deals = deals
	s.activities = activities
	s.kpis = kpis
}

// ClearThreads drops every registered message thread. Called before a
// reset regenerates the base data.
func (s *Store) ClearThreads() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = make(map[string][]*demo.Message)
}

// RegisterThread binds an ordered message list to a conversation id.
func (s *Store) RegisterThread(conversationID string, msgs []*demo.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[conversationID] = msgs
}

// Contacts returns a snapshot of the contact list.
func (s *Store) Contacts() []*demo.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*demo.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Conversations returns a snapshot of the conversation list.
func (s *Store) Conversations() []*demo.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*demo.Conversation, len(s.conversations))
	copy(out, s.conversations)
	return out
}

// ConversationByID returns the conversation or nil when absent.
func (s *Store) ConversationByID(id string) *demo.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conversationLocked(id)
}

func (s *Store) conversationLocked(id string) *demo.Conversation {
	for _, c := range s.conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Messages returns the thread for a conversation id, empty when no
// thread is registered. Never an error: missing lookups are recovered
// locally.
func (s *Store) Messages(conversationID string) []*demo.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := s.messages[conversationID]
	out := make([]*demo.Message, len(msgs))
	copy(out, msgs)
	return out
}

// Deals returns a snapshot of the flat deal list.
func (s *Store) Deals() []*demo.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*demo.Deal, len(s.deals))
	copy(out, s.deals)
	return out
}

// DealBoard projects the flat deal list into the five fixed funnel
// columns. Deals carrying a stage outside the chain are silently
// dropped from the projection.
func (s *Store) DealBoard() []*demo.StageColumn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	columns := make([]*demo.StageColumn, 0, len(stageMeta))
	index := make(map[demo.Stage]*demo.StageColumn, len(stageMeta))
	for _, meta := range stageMeta {
		col := &demo.StageColumn{
			ID:          meta.ID,
			Title:       meta.ID.DisplayName(),
			Color:       meta.Color,
			Description: meta.Description,
			Leads:       []*demo.Deal{},
		}
		columns = append(columns, col)
		index[meta.ID] = col
	}
	for _, deal := range s.deals {
		if col, ok := index[deal.Stage]; ok {
			col.Leads = append(col.Leads, deal)
		}
	}
	return columns
}

// Activities returns a snapshot of the feed, newest first.
func (s *Store) Activities() []*demo.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*demo.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// KPIs returns the current snapshot record.
func (s *Store) KPIs() demo.KPISnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kpis
}

// AddActivity prepends an entry and enforces the feed cap.
func (s *Store) AddActivity(a *demo.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addActivityLocked(a)
}

func (s *Store) addActivityLocked(a *demo.Activity) {
	s.activities = append([]*demo.Activity{a}, s.activities...)
	if len(s.activities) > maxActivities {
		s.activities = s.activities[:maxActivities]
	}
}

// AppendThreadMessage appends to a conversation's thread without
// touching the conversation record. Used by the facade's manual send,
// which only grows the thread; unread counts track inbound messages.
func (s *Store) AppendThreadMessage(conversationID string, m *demo.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[conversationID] = append(s.messages[conversationID], m)
}

// AppendIncomingMessage records an inbound message: thread append,
// last-message update and unread increment as one unit. Returns the
// updated conversation, or nil when the id is unknown.
func (s *Store) AppendIncomingMessage(conversationID string, m *demo.Message) *demo.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.conversationLocked(conversationID)
	if conv == nil {
		return nil
	}
	s.messages[conversationID] = append(s.messages[conversationID], m)
	conv.UltimaMensagem = m.Conteudo
	conv.UltimaMensagemEm = m.CriadoEm
	conv.NaoLidas++
	return conv
}

// InsertLead applies the whole new-lead transition as one unit:
// contact prepended, deal appended at stage "new", novosLeads bumped.
func (s *Store) InsertLead(c *demo.Contact, d *demo.Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append([]*demo.Contact{c}, s.contacts...)
	s.deals = append(s.deals, d)
	s.kpis.NovosLeads++
}

// AdvanceRandomOpenDeal advances one randomly chosen non-won deal a
// single stage forward. pick maps a candidate count to an index. When
// the winning stage is reached the conversion rate climbs by 2,
// clamped at 100. Returns ok=false when no deal is eligible; the
// caller treats that tick as a no-op.
func (s *Store) AdvanceRandomOpenDeal(pick func(n int) int) (deal *demo.Deal, oldStage, newStage demo.Stage, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := make([]*demo.Deal, 0, len(s.deals))
	for _, d := range s.deals {
		if _, hasNext := d.Stage.Next(); hasNext {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return nil, "", "", false
	}

	deal = candidates[pick(len(candidates))]
	oldStage = deal.Stage
	newStage, _ = oldStage.Next()
	deal.Stage = newStage

	if newStage == demo.StageWon {
		s.kpis.TaxaConversao += 2
		if s.kpis.TaxaConversao > 100 {
			s.kpis.TaxaConversao = 100
		}
	}
	return deal, oldStage, newStage, true
}

// BumpRandomContactScore raises one random contact's score by delta,
// clamped at 100. When the score crosses the hot-lead threshold from
// below, the hot-lead tag is added (deduplicated) and leadsQuentes is
// bumped, exactly once per crossing.
func (s *Store) BumpRandomContactScore(pick func(n int) int, delta int) (contact *demo.Contact, crossed bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.contacts) == 0 {
		return nil, false, false
	}
	contact = s.contacts[pick(len(s.contacts))]
	oldScore := contact.Score
	contact.Score = oldScore + delta
	if contact.Score > 100 {
		contact.Score = 100
	}

	crossed = oldScore < demo.HotLeadScore && contact.Score >= demo.HotLeadScore
	if crossed {
		if !contact.HasTag(demo.HotLeadTag) {
			contact.Tags = append(contact.Tags, demo.HotLeadTag)
		}
		s.kpis.LeadsQuentes++
	}
	return contact, crossed, true
}

// RecordMeeting picks a random contact and bumps visitasAgendadas.
func (s *Store) RecordMeeting(pick func(n int) int) (*demo.Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.contacts) == 0 {
		return nil, false
	}
	s.kpis.VisitasAgendadas++
	return s.contacts[pick(len(s.contacts))], true
}

// UpdateKPIs applies mutate under the lock and returns the resulting
// snapshot.
func (s *Store) UpdateKPIs(mutate func(*demo.KPISnapshot)) demo.KPISnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.kpis)
	return s.kpis
}

// PrependContact puts a contact at the head of the list.
func (s *Store) PrependContact(c *demo.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append([]*demo.Contact{c}, s.contacts...)
}

// RemoveContact deletes a contact by id. Only the facade's manual
// delete uses this; simulation actions never remove contacts.
func (s *Store) RemoveContact(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.contacts {
		if c.ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return true
		}
	}
	return false
}

// MoveDeal relocates a deal to an arbitrary valid stage (the manual
// drag-and-drop path; the simulation's pipeline action only ever
// advances one stage forward).
func (s *Store) MoveDeal(dealID string, stage demo.Stage) bool {
	if !stage.IsValid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.deals {
		if d.ID == dealID {
			d.Stage = stage
			return true
		}
	}
	return false
}
