// internal/domain/demo/dto.go
package demo

import "time"

// Envelope espelha o formato de resposta de uma API real: todo método
// da fachada devolve o payload embrulhado em { "data": ... }.
type Envelope struct {
	Data interface{} `json:"data"`
}

// ConversationFilters são os filtros de listagem de conversas.
type ConversationFilters struct {
	Search string `form:"search"`
	Status string `form:"status"` // "unread" filtra conversas com não lidas
}

// ContactFilters são os filtros de listagem de contatos.
type ContactFilters struct {
	Search string `form:"search"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
}

// ContactPage é a página de contatos com o total antes da paginação.
type ContactPage struct {
	Contatos []*Contact `json:"contatos"`
	Total    int        `json:"total"`
}

// ConversationDetail é a conversa com sua thread embutida.
type ConversationDetail struct {
	Conversation
	Mensagens []*Message `json:"mensagens"`
}

// SendMessageRequest é o corpo do envio manual de mensagem.
type SendMessageRequest struct {
	Conteudo string `json:"conteudo" binding:"required"`
}

// CreateContactRequest é o corpo da criação manual de contato.
type CreateContactRequest struct {
	Nome     string `json:"nome" binding:"required,max=255"`
	Email    string `json:"email" binding:"omitempty,email,max=255"`
	Telefone string `json:"telefone" binding:"max=20"`
	WhatsApp string `json:"whatsapp" binding:"max=20"`
	Empresa  string `json:"empresa" binding:"max=255"`
	Cargo    string `json:"cargo" binding:"max=255"`
}

// MoveDealRequest é o corpo da movimentação manual de um deal.
type MoveDealRequest struct {
	StageID Stage `json:"stage_id" binding:"required"`
}

// AutomationStatus reporta o estado do agendador de simulação.
type AutomationStatus struct {
	IsRunning bool      `json:"isRunning"`
	LastRun   time.Time `json:"lastRun"`
}

// OperationResult é o payload de confirmação das operações de escrita.
type OperationResult struct {
	Success bool `json:"success"`
}
