package handlers

import (
	"net/http"
	"strconv"

	"agencybackend/internal/repositories"
	"agencybackend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/empresas/:id
// Includes the derived theme so the settings screen previews the palette.
func GetAgencyByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id inválido", nil)
		return
	}

	repo := repositories.AgencyRepository{}
	agency, err := repo.GetByID(id)
	if err != nil {
		RespondError(c, http.StatusNotFound, "empresa não encontrada", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"empresa": agency,
		"tema":    services.DerivePaletteOrDefault(agency.Cor),
	})
}
