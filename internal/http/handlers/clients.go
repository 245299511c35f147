package handlers

import (
	"net/http"
	"strconv"

	"agencybackend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/clientes
func GetClients(c *gin.Context) {
	repo := repositories.ClientRepository{}
	list, err := repo.ListClients(c.Query("busca"), 0)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao listar clientes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientes": list})
}

// GET /api/clientes/:id
func GetClientByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id inválido", nil)
		return
	}

	repo := repositories.ClientRepository{}
	client, err := repo.GetByID(id)
	if err != nil {
		RespondError(c, http.StatusNotFound, "cliente não encontrado", nil)
		return
	}
	c.JSON(http.StatusOK, client)
}
