package models

// Client is one row of clientes.
type Client struct {
	ID         int64  `json:"id"`
	Nome       string `json:"nome"`
	Sobrenome  string `json:"sobrenome"`
	Documento  string `json:"documento"`
	Nascimento string `json:"nascimento"`
	Email      string `json:"email"`
	Telefone   string `json:"telefone"`
}

// Passenger is one traveler on a quotation. ClienteID is optional; when it
// matches a clientes row the passenger inherits blanks from that profile.
type Passenger struct {
	ID         int64  `json:"id"`
	CotacaoID  int64  `json:"cotacaoId"`
	ClienteID  int64  `json:"clienteId"`
	Nome       string `json:"nome"`
	Sobrenome  string `json:"sobrenome"`
	Documento  string `json:"documento"`
	Nascimento string `json:"nascimento"`
}
