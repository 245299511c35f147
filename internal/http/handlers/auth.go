package handlers

import (
	"database/sql"
	"net/http"
	"time"

	intconfig "agencybackend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret []byte

// SetJWTSecret wires the signing key from the environment at router setup.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// AuthUser mirrors the login response user payload.
type AuthUser struct {
	ID     int64  `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}

	var (
		user      AuthUser
		senhaHash string
	)

	err := intconfig.DB.QueryRow(`
        SELECT id, nome, email, senha_hash, perfil
        FROM usuarios
        WHERE email = ?
    `, req.Email).Scan(
		&user.ID,
		&user.Nome,
		&user.Email,
		&senhaHash,
		&user.Perfil,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou senha incorretos"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao consultar usuário: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(senhaHash), []byte(req.Senha)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou senha incorretos"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Perfil,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao gerar token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

type registerRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}

	var exists int
	err := intconfig.DB.QueryRow(`
        SELECT COUNT(*)
        FROM usuarios
        WHERE email = ?
    `, req.Email).Scan(&exists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao verificar usuário: " + err.Error()})
		return
	}
	if exists > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email já cadastrado"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao gerar hash da senha"})
		return
	}

	res, err := intconfig.DB.Exec(`
        INSERT INTO usuarios (nome, email, senha_hash, perfil, criado_em)
        VALUES (?, ?, ?, 'operador', NOW())
    `, req.Nome, req.Email, string(hash))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao salvar usuário: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()

	c.JSON(http.StatusCreated, gin.H{
		"message": "cadastro realizado",
		"user": gin.H{
			"id":     id,
			"nome":   req.Nome,
			"email":  req.Email,
			"perfil": "operador",
		},
	})
}
