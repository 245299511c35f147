package api

import (
	"log"
	stdhttp "net/http"

	intconfig "agencybackend/internal/config"
	h "agencybackend/internal/http/handlers"
	"agencybackend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "rota não encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Pure preview helpers for incremental UI (colour picker, notes
		// editor); no auth, no assembly.
		api.GET("/tema", h.GetThemePreview)
		api.POST("/pagamentos/preview", h.PostPaymentPreview)

		// Back-office screens
		office := api.Group("")
		office.Use(middleware.JWTAuth(env.JWTSecret))

		cotacoes := office.Group("/cotacoes")
		cotacoes.GET("", h.GetQuotations)
		cotacoes.GET("/:id", h.GetQuotationByID)
		cotacoes.GET("/:id/apresentacao", h.GetQuotationPresentation)
		cotacoes.GET("/:id/impressao", h.GetQuotationPrint)
		cotacoes.GET("/:id/pdf", h.GetQuotationPDF)

		clientes := office.Group("/clientes")
		clientes.GET("", h.GetClients)
		clientes.GET("/:id", h.GetClientByID)

		empresas := office.Group("/empresas")
		empresas.GET("/:id", h.GetAgencyByID)
	}

	return r
}
