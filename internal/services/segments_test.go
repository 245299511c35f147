package services

import (
	"testing"

	"agencybackend/internal/domain/models"
)

func TestResolveSegmentsPayloadWinsOverRelational(t *testing.T) {
	leg := models.FlightLeg{
		ID: 7,
		DadosJSON: `{
			"companhia": "LATAM",
			"numeroVoo": "LA3501",
			"conexoes": [
				{"origem": "GRU", "destino": "BSB", "partida": "10/03/2026 08:15", "chegada": "10/03/2026 10:00"},
				{"origem": "BSB", "destino": "MAO", "numeroVoo": "LA3777", "partida": "10/03/2026 11:30", "chegada": "10/03/2026 14:05"}
			]
		}`,
	}
	relational := map[int64][]models.OptionSegment{
		7: {{OpcaoID: 1, Ordem: 1, Origem: "GRU", Destino: "MAO"}},
	}

	segs := ResolveSegments(leg, relational)
	if len(segs) != 2 {
		t.Fatalf("expected 2 payload segments, got %d", len(segs))
	}
	if segs[0].Origem != "GRU" || segs[0].Destino != "BSB" || segs[1].Origem != "BSB" || segs[1].Destino != "MAO" {
		t.Fatalf("payload route lost: %+v", segs)
	}
	// connection without carrier inherits the payload's
	if segs[0].Companhia != "LATAM" {
		t.Fatalf("carrier fallback missing: %s", segs[0].Companhia)
	}
	if segs[1].NumeroVoo != "LA3777" {
		t.Fatalf("connection's own flight number must win: %s", segs[1].NumeroVoo)
	}
	if segs[0].Partida != "2026-03-10 08:15" {
		t.Fatalf("capture timestamp parse wrong: %s", segs[0].Partida)
	}
}

func TestResolveSegmentsPayloadDirect(t *testing.T) {
	leg := models.FlightLeg{
		ID:        3,
		DadosJSON: `{"companhia":"GOL","numeroVoo":"G31402","origem":"CGH","destino":"SDU","partida":"05/07/2026 07:00","chegada":"05/07/2026 08:05","conexoes":[]}`,
	}

	segs := ResolveSegments(leg, nil)
	if len(segs) != 1 {
		t.Fatalf("expected single direct segment, got %d", len(segs))
	}
	if segs[0].Origem != "CGH" || segs[0].Destino != "SDU" {
		t.Fatalf("direct route wrong: %+v", segs[0])
	}
}

func TestResolveSegmentsPayloadWithoutRouteIsEmpty(t *testing.T) {
	leg := models.FlightLeg{
		ID:        4,
		Origem:    "REC",
		Destino:   "FOR",
		DadosJSON: `{"companhia":"AZUL"}`,
	}

	segs := ResolveSegments(leg, nil)
	if len(segs) != 0 {
		t.Fatalf("payload without route must resolve empty, got %d segments", len(segs))
	}
}

func TestResolveSegmentsMalformedPayloadFallsThrough(t *testing.T) {
	leg := models.FlightLeg{
		ID:        5,
		Companhia: "AZUL",
		NumeroVoo: "AD4102",
		Origem:    "VCP",
		Destino:   "REC",
		DadosJSON: `{"companhia": "AZUL",`,
	}

	segs := ResolveSegments(leg, nil)
	if len(segs) != 1 {
		t.Fatalf("expected flat fallback segment, got %d", len(segs))
	}
	if segs[0].Origem != "VCP" || segs[0].Destino != "REC" {
		t.Fatalf("flat fallback wrong: %+v", segs[0])
	}
}

func TestResolveSegmentsRelationalOrdering(t *testing.T) {
	leg := models.FlightLeg{ID: 9}
	relational := map[int64][]models.OptionSegment{
		9: {
			{OpcaoID: 2, Ordem: 2, Origem: "LIS", Destino: "GRU"},
			{OpcaoID: 2, Ordem: 1, Origem: "MAD", Destino: "LIS"},
		},
	}

	segs := ResolveSegments(leg, relational)
	if len(segs) != 2 {
		t.Fatalf("expected 2 relational segments, got %d", len(segs))
	}
	if segs[0].Origem != "MAD" || segs[1].Origem != "LIS" {
		t.Fatalf("stored ordering not honored: %+v", segs)
	}
}

func TestResolveSegmentsFlatFallback(t *testing.T) {
	leg := models.FlightLeg{
		ID:          11,
		Companhia:   "GOL",
		NumeroVoo:   "G31844",
		Origem:      "POA",
		Destino:     "GIG",
		DataPartida: "2026-01-15",
		Partida:     "06:40",
		DataChegada: "2026-01-15",
		Chegada:     "08:25",
	}

	segs := ResolveSegments(leg, nil)
	if len(segs) != 1 {
		t.Fatalf("expected exactly one synthesized segment, got %d", len(segs))
	}
	s := segs[0]
	if s.Origem != "POA" || s.Destino != "GIG" || s.Companhia != "GOL" || s.NumeroVoo != "G31844" {
		t.Fatalf("flat columns not carried over: %+v", s)
	}
	if s.Partida != "2026-01-15 06:40" || s.Chegada != "2026-01-15 08:25" {
		t.Fatalf("date+time concat wrong: %q / %q", s.Partida, s.Chegada)
	}
}

func TestResolveSegmentsBadCaptureDateDegrades(t *testing.T) {
	leg := models.FlightLeg{
		ID:        12,
		DadosJSON: `{"origem":"GRU","destino":"MIA","partida":"31/02/2026 99:99","chegada":""}`,
	}

	segs := ResolveSegments(leg, nil)
	if len(segs) != 1 {
		t.Fatalf("expected direct segment, got %d", len(segs))
	}
	if segs[0].Partida != "" || segs[0].Chegada != "" {
		t.Fatalf("unparsable timestamps must degrade to blank: %+v", segs[0])
	}
}

func TestResolveSegmentsNoTimestampsAtAll(t *testing.T) {
	leg := models.FlightLeg{ID: 13, Origem: "SSA", Destino: "GRU"}

	segs := ResolveSegments(leg, nil)
	if len(segs) != 1 {
		t.Fatalf("expected one segment, got %d", len(segs))
	}
	if segs[0].Partida != "" {
		t.Fatalf("blank timestamp expected, got %q", segs[0].Partida)
	}
}
