package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"agencybackend/internal/http/middleware"
	"agencybackend/internal/repositories"
	"agencybackend/internal/services"

	"github.com/gin-gonic/gin"
)

func presentationService(c *gin.Context) services.PresentationService {
	return services.PresentationService{
		QuotationRepo: repositories.QuotationRepository{},
		AgencyRepo:    repositories.AgencyRepository{},
		ClientRepo:    repositories.ClientRepository{},
		FlightRepo:    repositories.FlightRepository{},
		RequestID:     middleware.GetRequestID(c),
	}
}

// GET /api/cotacoes
func GetQuotations(c *gin.Context) {
	repo := repositories.QuotationRepository{}
	list, err := repo.ListQuotations(0)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao listar cotações", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cotacoes": list})
}

// GET /api/cotacoes/:id
// Accepts either the numeric id or the codigo.
func GetQuotationByID(c *gin.Context) {
	repo := repositories.QuotationRepository{}
	q, err := repo.GetByIDOrCode(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "cotação não encontrada", nil)
		return
	}
	c.JSON(http.StatusOK, q)
}

// GET /api/cotacoes/:id/apresentacao
// Screen renderer: the assembled model as JSON.
func GetQuotationPresentation(c *gin.Context) {
	model, err := presentationService(c).Assemble(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// GET /api/cotacoes/:id/impressao
// Print renderer: fixed-width plain text.
func GetQuotationPrint(c *gin.Context) {
	model, err := presentationService(c).Assemble(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(services.BuildPrintDocument(model)))
}

// GET /api/cotacoes/:id/pdf
func GetQuotationPDF(c *gin.Context) {
	svc := services.QuoteDocsService{
		Presentation: presentationService(c),
		RequestID:    middleware.GetRequestID(c),
	}

	pdfBytes, filename, err := svc.GenerateQuotationPDF(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/tema?cor=%232563EB
// Palette preview for the colour picker; no assembly involved.
func GetThemePreview(c *gin.Context) {
	cor := strings.TrimSpace(c.Query("cor"))
	palette, err := services.DerivePalette(cor)
	if err != nil {
		palette = services.DerivePaletteOrDefault(cor)
		c.JSON(http.StatusOK, gin.H{"tema": palette, "padrao": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tema": palette})
}

type paymentPreviewRequest struct {
	Observacoes string `json:"observacoes"`
}

// POST /api/pagamentos/preview
// Decodes the directive lines of a notes draft without a full assembly.
func PostPaymentPreview(c *gin.Context) {
	var req paymentPreviewRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	entries, show := services.DecodePaymentPlan(req.Observacoes)
	c.JSON(http.StatusOK, gin.H{
		"pagamentos": entries,
		"mostrar":    show,
	})
}
