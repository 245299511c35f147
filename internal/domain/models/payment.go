package models

// PaymentPlanEntry is one payment method decoded from the __PAGAMENTOS__
// directive embedded in the quotation notes. When Links is present its
// amounts are authoritative; Parcelas/Valor are advisory only.
type PaymentPlanEntry struct {
	ID         string        `json:"id"`
	FormaPagID string        `json:"formapagid"`
	Parcelas   string        `json:"parcelas"`
	Valor      float64       `json:"valor"`
	Descricao  string        `json:"descricao,omitempty"`
	Links      []PaymentLink `json:"links,omitempty"`
}

// PaymentLink is one explicit installment amount of an uneven split.
type PaymentLink struct {
	N     int     `json:"n"`
	Valor float64 `json:"valor"`
}
