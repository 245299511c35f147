package models

// FlightLeg is one purchased direction of a quotation (voos). A leg may carry
// a legacy capture payload (DadosJSON), relational option segments, or only
// its flat columns; at most one of payload/relational is authoritative and
// the payload wins, since it is the originally-quoted state.
type FlightLeg struct {
	ID          int64   `json:"id"`
	CotacaoID   int64   `json:"cotacaoId"`
	Tipo        string  `json:"tipo"` // ida / volta / interno
	Companhia   string  `json:"companhia"`
	NumeroVoo   string  `json:"numeroVoo"`
	Origem      string  `json:"origem"`
	Destino     string  `json:"destino"`
	DataPartida string  `json:"dataPartida"` // date column
	Partida     string  `json:"partida"`     // time column (may already include a date)
	DataChegada string  `json:"dataChegada"`
	Chegada     string  `json:"chegada"`
	Classe      string  `json:"classe"`
	Bagagem     string  `json:"bagagem"`
	Valor       float64 `json:"valor"`
	DadosJSON   string  `json:"-"` // raw capture payload, parsed lazily
}

// CapturePayload is the embedded JSON attached to a leg by the old
// flight-search integration.
type CapturePayload struct {
	Tipo      string              `json:"tipo"`
	Companhia string              `json:"companhia"`
	NumeroVoo string              `json:"numeroVoo"`
	Origem    string              `json:"origem"`
	Destino   string              `json:"destino"`
	Partida   string              `json:"partida"` // DD/MM/YYYY HH:MM
	Chegada   string              `json:"chegada"`
	Conexoes  []CaptureConnection `json:"conexoes"`
}

// CaptureConnection is one raw hop inside a capture payload.
type CaptureConnection struct {
	Companhia string `json:"companhia"`
	NumeroVoo string `json:"numeroVoo"`
	Origem    string `json:"origem"`
	Destino   string `json:"destino"`
	Partida   string `json:"partida"`
	Chegada   string `json:"chegada"`
}

// QuoteOption is a normalized priced alternative for a leg (cotacao_opcoes).
type QuoteOption struct {
	ID        int64   `json:"id"`
	CotacaoID int64   `json:"cotacaoId"`
	VooID     int64   `json:"vooId"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

// OptionSegment is one ordered hop of a quote option (opcao_segmentos).
type OptionSegment struct {
	ID        int64  `json:"id"`
	OpcaoID   int64  `json:"opcaoId"`
	Ordem     int    `json:"ordem"`
	Companhia string `json:"companhia"`
	NumeroVoo string `json:"numeroVoo"`
	Origem    string `json:"origem"`
	Destino   string `json:"destino"`
	Partida   string `json:"partida"`
	Chegada   string `json:"chegada"`
}

// FlightSegment is one resolved non-stop hop. In-memory only; timestamps are
// display strings and may be blank (renderers show a dash).
type FlightSegment struct {
	Origem    string `json:"origem"`
	Destino   string `json:"destino"`
	Companhia string `json:"companhia"`
	NumeroVoo string `json:"numeroVoo"`
	Partida   string `json:"partida"`
	Chegada   string `json:"chegada"`
}
