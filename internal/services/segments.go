package services

import (
	"encoding/json"
	"sort"
	"strings"

	"agencybackend/internal/domain/models"
	"agencybackend/internal/utils"
)

// ParseCapturePayload decodes a leg's legacy capture JSON. Malformed or
// blank payloads report ok=false and the caller moves on to the next
// source; a broken capture must never block rendering.
func ParseCapturePayload(raw string) (models.CapturePayload, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.CapturePayload{}, false
	}
	var p models.CapturePayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return models.CapturePayload{}, false
	}
	return p, true
}

// ResolveSegments reduces one leg to its ordered hop sequence, applying
// source precedence: capture payload, then relational option segments, then
// the leg's own flat columns. The one case that yields zero segments is a
// payload with neither connections nor a direct route; renderers then fall
// back to the flat leg fields.
func ResolveSegments(leg models.FlightLeg, segmentsByLeg map[int64][]models.OptionSegment) []models.FlightSegment {
	if payload, ok := ParseCapturePayload(leg.DadosJSON); ok {
		return segmentsFromPayload(payload)
	}

	if segs := segmentsByLeg[leg.ID]; len(segs) > 0 {
		return segmentsFromOptions(segs)
	}

	return []models.FlightSegment{segmentFromFlatColumns(leg)}
}

func segmentsFromPayload(p models.CapturePayload) []models.FlightSegment {
	if len(p.Conexoes) > 0 {
		out := make([]models.FlightSegment, 0, len(p.Conexoes))
		for _, cx := range p.Conexoes {
			out = append(out, models.FlightSegment{
				Origem:    strings.TrimSpace(cx.Origem),
				Destino:   strings.TrimSpace(cx.Destino),
				Companhia: utils.FirstNonEmpty(cx.Companhia, p.Companhia),
				NumeroVoo: utils.FirstNonEmpty(cx.NumeroVoo, p.NumeroVoo),
				Partida:   utils.ParseCaptureDateTime(cx.Partida),
				Chegada:   utils.ParseCaptureDateTime(cx.Chegada),
			})
		}
		return out
	}

	// No connections: the payload itself is one direct hop, unless it also
	// lacks a route. Then resolution is empty, which is not an error.
	if strings.TrimSpace(p.Origem) == "" && strings.TrimSpace(p.Destino) == "" {
		return []models.FlightSegment{}
	}

	return []models.FlightSegment{{
		Origem:    strings.TrimSpace(p.Origem),
		Destino:   strings.TrimSpace(p.Destino),
		Companhia: strings.TrimSpace(p.Companhia),
		NumeroVoo: strings.TrimSpace(p.NumeroVoo),
		Partida:   utils.ParseCaptureDateTime(p.Partida),
		Chegada:   utils.ParseCaptureDateTime(p.Chegada),
	}}
}

func segmentsFromOptions(segs []models.OptionSegment) []models.FlightSegment {
	ordered := make([]models.OptionSegment, len(segs))
	copy(ordered, segs)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Ordem < ordered[j].Ordem })

	out := make([]models.FlightSegment, 0, len(ordered))
	for _, s := range ordered {
		out = append(out, models.FlightSegment{
			Origem:    strings.TrimSpace(s.Origem),
			Destino:   strings.TrimSpace(s.Destino),
			Companhia: strings.TrimSpace(s.Companhia),
			NumeroVoo: strings.TrimSpace(s.NumeroVoo),
			Partida:   strings.TrimSpace(s.Partida),
			Chegada:   strings.TrimSpace(s.Chegada),
		})
	}
	return out
}

func segmentFromFlatColumns(leg models.FlightLeg) models.FlightSegment {
	return models.FlightSegment{
		Origem:    strings.TrimSpace(leg.Origem),
		Destino:   strings.TrimSpace(leg.Destino),
		Companhia: strings.TrimSpace(leg.Companhia),
		NumeroVoo: strings.TrimSpace(leg.NumeroVoo),
		Partida:   utils.JoinDateTime(leg.DataPartida, leg.Partida),
		Chegada:   utils.JoinDateTime(leg.DataChegada, leg.Chegada),
	}
}
