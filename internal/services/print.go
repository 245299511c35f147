package services

import (
	"fmt"
	"strings"

	"agencybackend/internal/domain/models"
	"agencybackend/internal/utils"
)

// BuildPrintDocument renders the "raw" back-office print view: a fixed-width
// plain-text document. It is a pure consumer of the assembled model and must
// never fail, whatever the model is missing.
func BuildPrintDocument(m models.PresentationModel) string {
	var b strings.Builder
	rule := strings.Repeat("=", 62)

	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("%s\n", utils.Safe(m.Agency.Nome, "AGENCIA DE VIAGENS")))
	if m.Agency.CNPJ != "" {
		b.WriteString(fmt.Sprintf("CNPJ: %s\n", m.Agency.CNPJ))
	}
	b.WriteString(fmt.Sprintf("COTACAO %s  [%s]\n", utils.Safe(m.Quotation.Codigo, "-"), utils.Safe(m.Quotation.Status, "-")))
	b.WriteString(rule + "\n\n")

	b.WriteString("CLIENTE\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", utils.Safe(m.Client.Nome, "-"), m.Client.Sobrenome))
	if m.Client.Documento != "" {
		b.WriteString(fmt.Sprintf("  Documento: %s\n", m.Client.Documento))
	}
	b.WriteString("\n")

	if len(m.Passengers) > 0 {
		b.WriteString("PASSAGEIROS\n")
		for i, p := range m.Passengers {
			b.WriteString(fmt.Sprintf("  %d) %s %s  doc=%s  nasc=%s\n",
				i+1, utils.Safe(p.Nome, "-"), p.Sobrenome, utils.Safe(p.Documento, "-"), utils.Safe(p.Nascimento, "-")))
		}
		b.WriteString("\n")
	}

	writeGroup(&b, "IDA", m.Itinerary.Ida)
	writeGroup(&b, "VOLTA", m.Itinerary.Volta)
	writeGroup(&b, "TRECHOS INTERNOS", m.Itinerary.Interno)

	if len(m.Quotation.CustosExtras) > 0 {
		b.WriteString("CUSTOS EXTRAS\n")
		for _, c := range m.Quotation.CustosExtras {
			b.WriteString(fmt.Sprintf("  %-40s %s\n", utils.Safe(c.Descricao, "-"), utils.FormatReal(c.Valor)))
		}
		b.WriteString("\n")
	}

	if m.ShowPlan && len(m.Payments) > 0 {
		b.WriteString("PAGAMENTO\n")
		for _, entry := range m.Payments {
			writePaymentEntry(&b, entry)
		}
		b.WriteString("\n")
	}

	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("TOTAL: %s\n", utils.FormatReal(m.Quotation.ValorTotal)))
	b.WriteString(rule + "\n")
	return b.String()
}

func writeGroup(b *strings.Builder, title string, legs []models.ResolvedLeg) {
	if len(legs) == 0 {
		return
	}
	b.WriteString(title + "\n")
	for _, rl := range legs {
		if len(rl.Segments) == 0 {
			// capture payload without route data: show the flat leg fields
			b.WriteString(fmt.Sprintf("  %s %s  %s -> %s\n",
				utils.Safe(rl.Leg.Companhia, "-"), rl.Leg.NumeroVoo,
				utils.Safe(rl.Leg.Origem, "-"), utils.Safe(rl.Leg.Destino, "-")))
			continue
		}
		for _, seg := range rl.Segments {
			b.WriteString(fmt.Sprintf("  %s %s  %s -> %s  %s / %s\n",
				utils.Safe(seg.Companhia, "-"), seg.NumeroVoo,
				utils.Safe(seg.Origem, "-"), utils.Safe(seg.Destino, "-"),
				utils.Safe(seg.Partida, "-"), utils.Safe(seg.Chegada, "-")))
		}
		if n := len(rl.Segments); n > 1 {
			b.WriteString(fmt.Sprintf("  (%d conexao(oes))\n", n-1))
		}
	}
	b.WriteString("\n")
}

func writePaymentEntry(b *strings.Builder, entry models.PaymentPlanEntry) {
	label := utils.FirstNonEmpty(entry.Descricao, entry.FormaPagID, "pagamento")
	b.WriteString(fmt.Sprintf("  %s - total %s\n", label, utils.FormatReal(entry.Valor)))

	if len(entry.Links) > 0 {
		left, right := SplitLinkColumns(entry.Links)
		for i := 0; i < len(left); i++ {
			line := fmt.Sprintf("    %2dª %s", left[i].N, utils.FormatReal(left[i].Valor))
			if i < len(right) {
				line += fmt.Sprintf("   %2dª %s", right[i].N, utils.FormatReal(right[i].Valor))
			}
			b.WriteString(line + "\n")
		}
		return
	}

	b.WriteString(fmt.Sprintf("    %s x de %s\n",
		utils.Safe(entry.Parcelas, "1"),
		utils.FormatReal(InstallmentValue(entry.Valor, entry.Parcelas))))
}
