package services

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"agencybackend/internal/domain/models"
	"agencybackend/internal/utils"
)

// Reserved directive prefixes embedded in cotacoes.observacoes. Every other
// line of the notes is opaque human text; the codec only reads, it never
// rewrites the notes.
const (
	PaymentPlanPrefix = "__PAGAMENTOS__="
	ShowPlanPrefix    = "__MOSTRAR_PAGAMENTOS__="
)

// DecodePaymentPlan extracts the payment plan and display toggle from a
// notes blob. A missing or broken __PAGAMENTOS__ directive decodes to an
// empty plan; the toggle defaults to true when no directive is present,
// because existing stored quotations expect the plan visible.
func DecodePaymentPlan(notes string) ([]models.PaymentPlanEntry, bool) {
	entries := []models.PaymentPlanEntry{}
	show := true

	for _, line := range strings.Split(notes, "\n") {
		line = strings.TrimSpace(line)

		if rest, ok := strings.CutPrefix(line, PaymentPlanPrefix); ok {
			entries = decodeEntries(rest)
			continue
		}
		if rest, ok := strings.CutPrefix(line, ShowPlanPrefix); ok {
			show = strings.TrimSpace(rest) == "true"
		}
	}

	return entries, show
}

// EncodePaymentPlan renders entries as one directive line, the exact shape
// DecodePaymentPlan reads back. Writers append it to the notes without
// touching the human-authored lines.
func EncodePaymentPlan(entries []models.PaymentPlanEntry) string {
	raw, err := json.Marshal(entries)
	if err != nil {
		return PaymentPlanPrefix + "[]"
	}
	return PaymentPlanPrefix + string(raw)
}

// EncodeShowPlan renders the display-toggle directive line.
func EncodeShowPlan(show bool) string {
	return ShowPlanPrefix + strconv.FormatBool(show)
}

// InstallmentValue is the displayed per-installment amount when an entry has
// no explicit links: total/parcelas rounded UP to the cent, so the sum of
// displayed installments is never below the total.
func InstallmentValue(total float64, parcelas string) float64 {
	n, err := strconv.Atoi(strings.TrimSpace(parcelas))
	if err != nil || n < 1 {
		n = 1
	}
	return utils.RoundUpCents(total / float64(n))
}

// SplitLinkColumns orders links by installment index and splits them into
// the two layout columns used by the renderers (alternating left/right).
func SplitLinkColumns(links []models.PaymentLink) (left, right []models.PaymentLink) {
	ordered := make([]models.PaymentLink, len(links))
	copy(ordered, links)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].N < ordered[j].N })

	for i, l := range ordered {
		if i%2 == 0 {
			left = append(left, l)
		} else {
			right = append(right, l)
		}
	}
	return left, right
}

// decodeEntries parses the directive JSON defensively. Legacy writers were
// loose about types (numbers as strings, strings as numbers), so every
// field is coerced rather than strictly unmarshalled.
func decodeEntries(raw string) []models.PaymentPlanEntry {
	var items []map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &items); err != nil {
		return []models.PaymentPlanEntry{}
	}

	out := make([]models.PaymentPlanEntry, 0, len(items))
	for i, item := range items {
		entry := models.PaymentPlanEntry{
			ID:         coerceString(item["id"]),
			FormaPagID: coerceString(item["formapagid"]),
			Parcelas:   coerceString(item["parcelas"]),
			Valor:      coerceFloat(item["valor"]),
			Descricao:  coerceString(item["descricao"]),
		}
		if entry.ID == "" {
			entry.ID = fmt.Sprintf("%d-%d", time.Now().UnixNano(), i)
		}
		if entry.Parcelas == "" {
			entry.Parcelas = "1"
		}
		if rawLinks, ok := item["links"].([]any); ok {
			entry.Links = coerceLinks(rawLinks)
		}
		out = append(out, entry)
	}
	return out
}

func coerceLinks(raw []any) []models.PaymentLink {
	out := make([]models.PaymentLink, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, models.PaymentLink{
			N:     int(coerceFloat(m["n"])),
			Valor: coerceFloat(m["valor"]),
		})
	}
	return out
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func coerceFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(t), ",", "."), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
