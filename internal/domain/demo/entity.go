// internal/domain/demo/entity.go
package demo

import "time"

// Channel representa o canal de origem de uma conversa.
type Channel string

const (
	ChannelWhatsApp  Channel = "whatsapp"
	ChannelInstagram Channel = "instagram"
	ChannelMessenger Channel = "messenger"
	ChannelEmail     Channel = "email"
)

func (c Channel) IsValid() bool {
	switch c {
	case ChannelWhatsApp, ChannelInstagram, ChannelMessenger, ChannelEmail:
		return true
	}
	return false
}

// ConversationStatus representa o estado de atendimento de uma conversa.
type ConversationStatus string

const (
	StatusUnread  ConversationStatus = "unread"
	StatusOpen    ConversationStatus = "open"
	StatusClosed  ConversationStatus = "closed"
	StatusWaiting ConversationStatus = "waiting"
)

func (s ConversationStatus) IsValid() bool {
	switch s {
	case StatusUnread, StatusOpen, StatusClosed, StatusWaiting:
		return true
	}
	return false
}

// SenderType identifica quem enviou uma mensagem.
type SenderType string

const (
	SenderCliente   SenderType = "cliente"
	SenderBot       SenderType = "bot"
	SenderAtendente SenderType = "atendente"
)

// Stage representa a posição de um negócio no funil de vendas.
// A cadeia é estritamente ordenada e "won" é terminal.
type Stage string

const (
	StageNew         Stage = "new"
	StageQualified   Stage = "qualified"
	StageProposal    Stage = "proposal"
	StageNegotiation Stage = "negotiation"
	StageWon         Stage = "won"
)

// StageChain lists the pipeline stages in funnel order.
var StageChain = []Stage{StageNew, StageQualified, StageProposal, StageNegotiation, StageWon}

func (s Stage) IsValid() bool {
	for _, st := range StageChain {
		if s == st {
			return true
		}
	}
	return false
}

// Next returns the following stage in the funnel. The second return is
// false when the stage is terminal or unknown.
func (s Stage) Next() (Stage, bool) {
	for i, st := range StageChain {
		if s == st && i < len(StageChain)-1 {
			return StageChain[i+1], true
		}
	}
	return s, false
}

// DisplayName returns the pt-BR board title for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageNew:
		return "Novos Leads"
	case StageQualified:
		return "Qualificados"
	case StageProposal:
		return "Proposta"
	case StageNegotiation:
		return "Negociação"
	case StageWon:
		return "Ganhos"
	}
	return string(s)
}

// HotLeadScore is the threshold at which a contact becomes a hot lead.
const HotLeadScore = 80

// HotLeadTag is added to a contact the first time its score crosses the threshold.
const HotLeadTag = "Lead Quente"

// Contact é um contato do CRM. Contatos são criados pela geração de base
// ou pela ação de novo lead e nunca removidos pela simulação.
type Contact struct {
	ID            string    `json:"id"`
	Nome          string    `json:"nome"`
	Email         string    `json:"email"`
	Telefone      string    `json:"telefone"`
	WhatsApp      string    `json:"whatsapp"`
	Empresa       string    `json:"empresa"`
	Cargo         string    `json:"cargo"`
	CPFCNPJ       string    `json:"cpf_cnpj"`
	Tags          []string  `json:"tags"`
	Score         int       `json:"score"`
	ValorTotal    int       `json:"valorTotal"`
	Origem        string    `json:"origem"`
	UltimoContato string    `json:"ultimoContato"`
	CriadoEm      time.Time `json:"criado_em"`
}

// HasTag reports whether the contact already carries the given tag.
func (c *Contact) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ContactRef é o recorte de contato embutido em uma conversa.
type ContactRef struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

// Conversation é uma conversa multicanal. As mensagens não ficam
// embutidas: cada conversa possui exatamente uma thread registrada no
// mapa de mensagens do store, chaveada pelo id da conversa.
type Conversation struct {
	ID               string             `json:"id"`
	Contato          ContactRef         `json:"contato"`
	CanalTipo        Channel            `json:"canal_tipo"`
	Status           ConversationStatus `json:"status"`
	UltimaMensagem   string             `json:"ultima_mensagem"`
	UltimaMensagemEm time.Time          `json:"ultima_mensagem_em"`
	NaoLidas         int                `json:"nao_lidas"`
	CriadoEm         time.Time          `json:"criado_em"`
}

// Message é uma mensagem dentro de uma thread, ordenada por criado_em.
type Message struct {
	ID            string     `json:"id"`
	Conteudo      string     `json:"conteudo"`
	RemetenteTipo SenderType `json:"remetente_tipo"`
	Lida          bool       `json:"lida"`
	CriadoEm      time.Time  `json:"criado_em"`
}

// Deal é um negócio no pipeline. O armazenamento canônico é a lista
// plana com o campo Stage; a visão em colunas é uma projeção de leitura.
type Deal struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Contact     string    `json:"contact"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Value       int       `json:"value"`
	Score       int       `json:"score"`
	Stage       Stage     `json:"stage"`
	Tags        []string  `json:"tags"`
	Source      string    `json:"source"`
	LastContact string    `json:"lastContact"`
	LastChannel string    `json:"lastChannel"`
	CriadoEm    time.Time `json:"criado_em"`
}

// ActivityType classifica um registro do feed de atividades.
type ActivityType string

const (
	ActivityNewLead   ActivityType = "new_lead"
	ActivityMessage   ActivityType = "message"
	ActivityDealMoved ActivityType = "deal_moved"
	ActivityDealWon   ActivityType = "deal_won"
	ActivityTask      ActivityType = "task"
)

// Activity é um evento de negócio simulado, exibido no feed de
// atividades recentes (mais novas primeiro).
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ContactName string       `json:"contactName"`
	CreatedAt   time.Time    `json:"created_at"`
}

// KPISnapshot é o registro mutável único de métricas agregadas.
// As ações de simulação incrementam os campos diretamente; não há
// histórico nem reconciliação.
type KPISnapshot struct {
	LeadsQuentes     int     `json:"leadsQuentes"`
	NovosLeads       int     `json:"novosLeads"`
	VisitasAgendadas int     `json:"visitasAgendadas"`
	TaxaConversao    float64 `json:"taxaConversao"`
}

// StageColumn é uma coluna da projeção do pipeline em cinco estágios.
type StageColumn struct {
	ID          Stage   `json:"id"`
	Title       string  `json:"title"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
	Leads       []*Deal `json:"leads"`
}

// PerformancePoint é um ponto da série diária de performance.
type PerformancePoint struct {
	Data      string `json:"data"`
	Conversas int    `json:"conversas"`
	Leads     int    `json:"leads"`
	Vendas    int    `json:"vendas"`
}

// ChannelStats agrega números de um canal para o dashboard.
type ChannelStats struct {
	Channel     string `json:"channel"`
	Messages    int    `json:"messages"`
	Contacts    int    `json:"contacts"`
	Conversions int    `json:"conversions"`
	Percentage  int    `json:"percentage"`
}

// AutomationFlow descreve um fluxo de automação exibido nas configurações.
type AutomationFlow struct {
	ID        string         `json:"id"`
	Nome      string         `json:"nome"`
	Descricao string         `json:"descricao"`
	Ativo     bool           `json:"ativo"`
	Gatilho   string         `json:"gatilho"`
	Regras    map[string]int `json:"regras"`
}
