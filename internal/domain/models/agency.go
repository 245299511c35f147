package models

// Agency is the display identity referenced by a quotation (empresas).
type Agency struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	Logo     string `json:"logo"`
	Cor      string `json:"cor"` // base brand colour, hex
}
