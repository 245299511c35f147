package domain

// ID is used across domain entities.
type ID int64

// QuotationStatus values stored in cotacoes.status.
const (
	StatusDraft          = "rascunho"
	StatusAwaitingClient = "aguardando-cliente"
	StatusApproved       = "aprovada"
	StatusIssued         = "emitida"
)

// Leg direction tags stored in voos.tipo.
const (
	DirectionOutbound = "ida"
	DirectionReturn   = "volta"
	DirectionInternal = "interno"
)

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Role   string `json:"role"`
}
