package services

import (
	"bytes"
	"fmt"

	"agencybackend/internal/domain/models"
	"agencybackend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// QuoteDocsService produces the PDF export of a quotation.
type QuoteDocsService struct {
	Presentation PresentationService
	RequestID    string
}

func (s QuoteDocsService) GenerateQuotationPDF(key string) ([]byte, string, error) {
	model, err := s.Presentation.Assemble(key)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_cotacao_pdf", "cotacao="+key)
	return buildQuotationPDF(model)
}

func buildQuotationPDF(m models.PresentationModel) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Cotacao", false)
	pdf.AddPage()

	// Header band in the agency theme.
	br, bg, bb := mustRGB(m.Palette.Base)
	gr, gg, gb := mustRGB(m.Palette.GradientTo)
	pdf.SetFillColor(br, bg, bb)
	pdf.Rect(0, 0, 210, 26, "F")
	pdf.SetFillColor(gr, gg, gb)
	pdf.Rect(0, 26, 210, 2, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(10, 8)
	pdf.Cell(0, 8, utils.Safe(m.Agency.Nome, "Agencia de Viagens"))
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(10, 16)
	pdf.Cell(0, 6, fmt.Sprintf("Cotacao %s  -  %s", utils.Safe(m.Quotation.Codigo, "-"), utils.Safe(m.Quotation.Status, "-")))

	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(34)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Cliente")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%s %s  %s", utils.Safe(m.Client.Nome, "-"), m.Client.Sobrenome, m.Client.Documento))
	pdf.Ln(9)

	if len(m.Passengers) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Passageiros")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, p := range m.Passengers {
			pdf.Cell(0, 6, fmt.Sprintf("%s %s  doc: %s  nasc: %s",
				utils.Safe(p.Nome, "-"), p.Sobrenome, utils.Safe(p.Documento, "-"), utils.Safe(p.Nascimento, "-")))
			pdf.Ln(6)
		}
		pdf.Ln(3)
	}

	lr, lg, lb := mustRGB(m.Palette.RouteLine)
	writePDFGroup(pdf, "Ida", m.Itinerary.Ida, lr, lg, lb)
	writePDFGroup(pdf, "Volta", m.Itinerary.Volta, lr, lg, lb)
	writePDFGroup(pdf, "Trechos internos", m.Itinerary.Interno, lr, lg, lb)

	if len(m.Quotation.CustosExtras) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Custos extras")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, c := range m.Quotation.CustosExtras {
			pdf.Cell(130, 6, utils.Safe(c.Descricao, "-"))
			pdf.Cell(0, 6, utils.FormatReal(c.Valor))
			pdf.Ln(6)
		}
		pdf.Ln(3)
	}

	if m.ShowPlan && len(m.Payments) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Pagamento")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, entry := range m.Payments {
			writePDFPaymentEntry(pdf, entry)
		}
		pdf.Ln(3)
	}

	ar, ag, ab := mustRGB(m.Palette.BorderAccent)
	pdf.SetDrawColor(ar, ag, ab)
	pdf.SetLineWidth(0.8)
	y := pdf.GetY() + 2
	pdf.Line(10, y, 200, y)
	pdf.SetY(y + 2)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Total: "+utils.FormatReal(m.Quotation.ValorTotal))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("COTACAO_%s.pdf", utils.SafeFilenamePart(utils.FirstNonEmpty(m.Quotation.Codigo, fmt.Sprintf("%d", m.Quotation.ID))))
	return buf.Bytes(), filename, nil
}

func writePDFGroup(pdf *gofpdf.Fpdf, title string, legs []models.ResolvedLeg, r, g, b int) {
	if len(legs) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)

	for _, rl := range legs {
		if len(rl.Segments) == 0 {
			pdf.Cell(0, 6, fmt.Sprintf("%s %s  %s -> %s",
				utils.Safe(rl.Leg.Companhia, "-"), rl.Leg.NumeroVoo,
				utils.Safe(rl.Leg.Origem, "-"), utils.Safe(rl.Leg.Destino, "-")))
			pdf.Ln(6)
			continue
		}
		for _, seg := range rl.Segments {
			pdf.Cell(0, 6, fmt.Sprintf("%s %s  %s -> %s  %s / %s",
				utils.Safe(seg.Companhia, "-"), seg.NumeroVoo,
				utils.Safe(seg.Origem, "-"), utils.Safe(seg.Destino, "-"),
				utils.Safe(seg.Partida, "-"), utils.Safe(seg.Chegada, "-")))
			pdf.Ln(6)
		}
		pdf.SetDrawColor(r, g, b)
		pdf.SetLineWidth(0.4)
		y := pdf.GetY() + 1
		pdf.Line(10, y, 120, y)
		pdf.SetY(y + 2)
	}
	pdf.Ln(2)
}

func writePDFPaymentEntry(pdf *gofpdf.Fpdf, entry models.PaymentPlanEntry) {
	label := utils.FirstNonEmpty(entry.Descricao, entry.FormaPagID, "pagamento")
	pdf.Cell(0, 6, fmt.Sprintf("%s - total %s", label, utils.FormatReal(entry.Valor)))
	pdf.Ln(6)

	if len(entry.Links) > 0 {
		left, right := SplitLinkColumns(entry.Links)
		for i := 0; i < len(left); i++ {
			pdf.Cell(95, 6, fmt.Sprintf("   %da parcela: %s", left[i].N, utils.FormatReal(left[i].Valor)))
			if i < len(right) {
				pdf.Cell(0, 6, fmt.Sprintf("%da parcela: %s", right[i].N, utils.FormatReal(right[i].Valor)))
			}
			pdf.Ln(6)
		}
		return
	}

	pdf.Cell(0, 6, fmt.Sprintf("   %s x de %s",
		utils.Safe(entry.Parcelas, "1"),
		utils.FormatReal(InstallmentValue(entry.Valor, entry.Parcelas))))
	pdf.Ln(6)
}

// mustRGB converts a palette shade for gofpdf. Palette values are produced
// by DerivePalette and always parse; a zero triple is a safe fallback.
func mustRGB(hex string) (int, int, int) {
	r, g, b, err := parseHexColor(hex)
	if err != nil {
		return 0, 0, 0
	}
	return r, g, b
}
