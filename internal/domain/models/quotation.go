package models

// Quotation mirrors one row of cotacoes. The builder reads it, never writes.
type Quotation struct {
	ID             int64   `json:"id"`
	Codigo         string  `json:"codigo"`
	ClienteID      int64   `json:"clienteId"`
	EmpresaID      int64   `json:"empresaId"`
	Status         string  `json:"status"`
	ValorTotal     float64 `json:"valorTotal"`
	FormaPagamento string  `json:"formaPagamento"` // legacy single-method field
	Observacoes    string  `json:"observacoes"`    // free text; may embed directive lines

	CustosExtras []ExtraCost `json:"custosExtras"`
}

// ExtraCost is one itemized extra stored in the cotacoes.custos_extras JSON.
type ExtraCost struct {
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}
