package models

// Palette is the multi-tone theme derived from one agency brand colour.
// Every renderer consumes the same named shades so a single configured
// colour yields a coherent document.
type Palette struct {
	Base         string `json:"base"`
	GradientTo   string `json:"gradientTo"`   // header gradient end, darken(0.8)
	BorderAccent string `json:"borderAccent"` // accent borders, lighten(0.6)
	RouteLine    string `json:"routeLine"`    // itinerary route lines, lighten(0.3)
	BadgeBg      string `json:"badgeBg"`      // status badge background, lighten(0.85)
}

// ResolvedLeg pairs a leg with its resolved segment sequence. Zero segments
// means "render the flat leg fields directly" (capture payload without route
// data), never an error.
type ResolvedLeg struct {
	Leg      FlightLeg       `json:"voo"`
	Segments []FlightSegment `json:"segmentos"`
}

// ItineraryGroups are the three direction buckets of a quotation.
type ItineraryGroups struct {
	Ida     []ResolvedLeg `json:"ida"`
	Volta   []ResolvedLeg `json:"volta"`
	Interno []ResolvedLeg `json:"interno"`
}

// PresentationModel is the single normalized view handed to the screen,
// print and PDF renderers. Built fresh per request; missing related records
// appear as zero values, never as errors.
type PresentationModel struct {
	Quotation  Quotation          `json:"cotacao"`
	Agency     Agency             `json:"empresa"`
	Palette    Palette            `json:"tema"`
	Client     Client             `json:"cliente"`
	Passengers []Passenger        `json:"passageiros"`
	Itinerary  ItineraryGroups    `json:"itinerario"`
	Payments   []PaymentPlanEntry `json:"pagamentos"`
	ShowPlan   bool               `json:"mostrarPagamentos"`
}
