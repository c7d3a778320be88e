// internal/simulation/generator.go
package simulation

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"crmdemo-service/internal/domain/demo"

	"github.com/go-faker/faker/v4"
	"github.com/oklog/ulid/v2"
)

var (
	companyPool = []string{
		"Tech Solutions", "Digital Agency", "E-commerce Plus",
		"Consulting Group", "Marketing Pro", "Sales Force",
		"Innovation Lab", "Creative Studio", "Data Systems",
	}

	contactTagPool = []string{
		"Cliente VIP", "Lead Quente", "Em Negociação",
		"Prospect", "Lead Frio", "WhatsApp", "Instagram",
	}

	dealTagPool = []string{"Software", "Enterprise", "PME", "Urgente"}

	originPool = []string{"Website", "WhatsApp", "Instagram", "Indicação"}

	cargoPool = []string{
		"Diretor Comercial", "Gerente de Vendas", "Analista de Marketing",
		"Sócio Fundador", "Coordenador de Operações", "Consultor",
		"Gerente de TI", "Supervisor de Atendimento",
	}

	messagePool = []string{
		"Olá! Vi o anúncio sobre o sistema",
		"Gostaria de saber mais sobre os planos",
		"Qual o valor do plano Enterprise?",
		"Podemos agendar uma demonstração?",
		"Muito interessante! Quando podemos conversar?",
		"Preciso de uma solução para minha empresa",
		"Quantos usuários posso ter?",
		"Vocês têm integração com WhatsApp?",
		"Como funciona o período de teste?",
		"Obrigado pelo atendimento!",
		"Vou analisar a proposta",
		"Fechado! Vamos prosseguir",
		"Preciso pensar melhor",
		"Podem enviar mais informações?",
	}

	incomingMessagePool = []string{
		"Olá, gostaria de mais informações",
		"Qual o preço?",
		"Podem me ligar?",
		"Estou interessado!",
		"Como funciona?",
	}

	activityTitlePool = []string{
		"Novo lead recebido",
		"Mensagem recebida no WhatsApp",
		"Negócio movido para Proposta",
		"Negócio fechado!",
		"Tarefa criada",
		"Cliente respondeu",
		"Reunião agendada",
		"Proposta enviada",
	}

	activityTypePool = []demo.ActivityType{
		demo.ActivityNewLead, demo.ActivityMessage, demo.ActivityDealMoved,
		demo.ActivityDealWon, demo.ActivityTask,
	}

	recentLabelPool = []string{"Agora", "5 min", "1h", "3h", "Ontem", "2 dias"}

	channelPool = []demo.Channel{
		demo.ChannelWhatsApp, demo.ChannelInstagram,
		demo.ChannelMessenger, demo.ChannelEmail,
	}

	statusPool = []demo.ConversationStatus{
		demo.StatusUnread, demo.StatusOpen, demo.StatusClosed, demo.StatusWaiting,
	}

	senderPool = []demo.SenderType{
		demo.SenderCliente, demo.SenderBot, demo.SenderAtendente,
	}
)

// Generator produces randomized demo records. There is no
// reproducibility contract between calls; tests that need determinism
// pass a fixed seed. Safe for concurrent use: the six simulation
// actions draw from it from independent goroutines.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a uniform integer in [min, max].
func (g *Generator) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return min + g.rng.Intn(max-min+1)
}

// DurationBetween returns a uniform duration in [min, max].
func (g *Generator) DurationBetween(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return min + time.Duration(g.rng.Int63n(int64(max-min)+1))
}

// Chance reports true with probability p in [0,1].
func (g *Generator) Chance(p float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() < p
}

func (g *Generator) pickString(pool []string) string {
	return pool[g.IntBetween(0, len(pool)-1)]
}

// PickIndex returns a uniform index for a pool of the given length,
// or -1 when the pool is empty.
func (g *Generator) PickIndex(length int) int {
	if length == 0 {
		return -1
	}
	return g.IntBetween(0, length-1)
}

// pickTags samples between min and max distinct tags from the pool.
func (g *Generator) pickTags(pool []string, min, max int) []string {
	n := g.IntBetween(min, max)
	if n > len(pool) {
		n = len(pool)
	}
	g.mu.Lock()
	perm := g.rng.Perm(len(pool))
	g.mu.Unlock()
	tags := make([]string, 0, n)
	for _, idx := range perm[:n] {
		tags = append(tags, pool[idx])
	}
	return tags
}

func (g *Generator) phone(mobile bool) string {
	ddd := g.IntBetween(11, 99)
	if mobile {
		return fmt.Sprintf("(%02d) 9%04d-%04d", ddd, g.IntBetween(0, 9999), g.IntBetween(0, 9999))
	}
	return fmt.Sprintf("(%02d) %04d-%04d", ddd, g.IntBetween(0, 9999), g.IntBetween(0, 9999))
}

func (g *Generator) cpf() string {
	return fmt.Sprintf("%03d.%03d.%03d-%02d",
		g.IntBetween(0, 999), g.IntBetween(0, 999), g.IntBetween(0, 999), g.IntBetween(0, 99))
}

func (g *Generator) recentTime(within time.Duration) time.Time {
	return time.Now().Add(-g.DurationBetween(0, within))
}

// RecentLabel returns one of the relative-time labels shown in lists.
func (g *Generator) RecentLabel() string {
	return g.pickString(recentLabelPool)
}

// IncomingMessageText returns a random inbound message body.
func (g *Generator) IncomingMessageText() string {
	return g.pickString(incomingMessagePool)
}

// NewID mints an opaque unique identifier.
func NewID() string {
	return ulid.Make().String()
}

// Contacts generates count fresh contacts. Non-positive counts yield
// an empty slice.
func (g *Generator) Contacts(count int) []*demo.Contact {
	contacts := make([]*demo.Contact, 0, max(count, 0))
	for i := 0; i < count; i++ {
		contacts = append(contacts, &demo.Contact{
			ID:            NewID(),
			Nome:          faker.Name(),
			Email:         faker.Email(),
			Telefone:      g.phone(false),
			WhatsApp:      g.phone(true),
			Empresa:       g.pickString(companyPool),
			Cargo:         g.pickString(cargoPool),
			CPFCNPJ:       g.cpf(),
			Tags:          g.pickTags(contactTagPool, 1, 3),
			Score:         g.IntBetween(20, 100),
			ValorTotal:    g.IntBetween(5000, 150000),
			Origem:        g.pickString(originPool),
			UltimoContato: g.RecentLabel(),
			CriadoEm:      g.recentTime(30 * 24 * time.Hour),
		})
	}
	return contacts
}

// Conversations generates count conversations against the given contact
// pool. For each conversation it also creates the conversation's message
// thread and registers it through register before the conversation is
// returned; a conversation without a thread would be invalid, so the
// two are created as a unit.
func (g *Generator) Conversations(count int, contacts []*demo.Contact, register func(conversationID string, msgs []*demo.Message)) []*demo.Conversation {
	conversations := make([]*demo.Conversation, 0, max(count, 0))
	for i := 0; i < count; i++ {
		var ref demo.ContactRef
		if idx := g.PickIndex(len(contacts)); idx >= 0 {
			c := contacts[idx]
			ref = demo.ContactRef{ID: c.ID, Nome: c.Nome, WhatsApp: c.WhatsApp, Email: c.Email}
		} else {
			ref = demo.ContactRef{ID: NewID(), Nome: faker.Name(), WhatsApp: g.phone(true), Email: faker.Email()}
		}

		conversationID := NewID()
		msgs := g.Messages(g.IntBetween(3, 15))
		if register != nil {
			register(conversationID, msgs)
		}

		last := "Olá!"
		if len(msgs) > 0 {
			last = msgs[len(msgs)-1].Conteudo
		}

		conversations = append(conversations, &demo.Conversation{
			ID:               conversationID,
			Contato:          ref,
			CanalTipo:        channelPool[g.PickIndex(len(channelPool))],
			Status:           statusPool[g.PickIndex(len(statusPool))],
			UltimaMensagem:   last,
			UltimaMensagemEm: time.Now(),
			NaoLidas:         g.IntBetween(0, 5),
			CriadoEm:         g.recentTime(7 * 24 * time.Hour),
		})
	}
	return conversations
}

// Messages generates count thread messages ordered ascending by criado_em.
func (g *Generator) Messages(count int) []*demo.Message {
	msgs := make([]*demo.Message, 0, max(count, 0))
	for i := 0; i < count; i++ {
		msgs = append(msgs, &demo.Message{
			ID:            NewID(),
			Conteudo:      g.pickString(messagePool),
			RemetenteTipo: senderPool[g.PickIndex(len(senderPool))],
			Lida:          g.Chance(0.5),
			CriadoEm:      g.recentTime(24 * time.Hour),
		})
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].CriadoEm.Before(msgs[j].CriadoEm) })
	return msgs
}

// Deals generates count pipeline deals referencing random contacts.
func (g *Generator) Deals(count int, contacts []*demo.Contact) []*demo.Deal {
	deals := make([]*demo.Deal, 0, max(count, 0))
	for i := 0; i < count; i++ {
		deal := &demo.Deal{
			ID:          NewID(),
			Value:       g.IntBetween(5000, 100000),
			Score:       g.IntBetween(40, 100),
			Stage:       demo.StageChain[g.PickIndex(len(demo.StageChain))],
			Tags:        g.pickTags(dealTagPool, 1, 3),
			Source:      g.pickString(originPool),
			LastContact: g.RecentLabel(),
			LastChannel: g.pickString([]string{"whatsapp", "email", "phone"}),
			CriadoEm:    g.recentTime(15 * 24 * time.Hour),
		}
		if idx := g.PickIndex(len(contacts)); idx >= 0 {
			c := contacts[idx]
			deal.Name = c.Nome
			deal.Contact = c.Telefone
			deal.Email = c.Email
			deal.Phone = c.WhatsApp
		} else {
			deal.Name = faker.Name()
			deal.Contact = g.phone(false)
			deal.Email = faker.Email()
			deal.Phone = g.phone(true)
		}
		deals = append(deals, deal)
	}
	return deals
}

// Activities generates count feed entries ordered newest first.
func (g *Generator) Activities(count int) []*demo.Activity {
	activities := make([]*demo.Activity, 0, max(count, 0))
	for i := 0; i < count; i++ {
		activities = append(activities, &demo.Activity{
			ID:          NewID(),
			Type:        activityTypePool[g.PickIndex(len(activityTypePool))],
			Title:       g.pickString(activityTitlePool),
			Description: faker.Sentence(),
			ContactName: faker.Name(),
			CreatedAt:   g.recentTime(2 * 24 * time.Hour),
		})
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i].CreatedAt.After(activities[j].CreatedAt) })
	return activities
}

// PerformanceSeries generates the ten-day dashboard series, oldest first.
func (g *Generator) PerformanceSeries() []demo.PerformancePoint {
	points := make([]demo.PerformancePoint, 0, 10)
	for i := 9; i >= 0; i-- {
		day := time.Now().AddDate(0, 0, -i)
		points = append(points, demo.PerformancePoint{
			Data:      day.Format("2006-01-02"),
			Conversas: g.IntBetween(10, 50),
			Leads:     g.IntBetween(5, 20),
			Vendas:    g.IntBetween(1, 10),
		})
	}
	return points
}

// ChannelPerformance generates the per-channel dashboard rows.
func (g *Generator) ChannelPerformance() []demo.ChannelStats {
	return []demo.ChannelStats{
		{
			Channel:     "WhatsApp",
			Messages:    g.IntBetween(100, 500),
			Contacts:    g.IntBetween(50, 200),
			Conversions: g.IntBetween(10, 50),
			Percentage:  45,
		},
		{
			Channel:     "Instagram",
			Messages:    g.IntBetween(50, 300),
			Contacts:    g.IntBetween(30, 150),
			Conversions: g.IntBetween(5, 30),
			Percentage:  30,
		},
		{
			Channel:     "Email",
			Messages:    g.IntBetween(30, 200),
			Contacts:    g.IntBetween(20, 100),
			Conversions: g.IntBetween(3, 20),
			Percentage:  25,
		},
	}
}
