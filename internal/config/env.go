package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr   string
	GinMode   string
	JWTSecret string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "troque-este-segredo-em-producao"
	}

	return Env{
		AppAddr:   appAddr,
		GinMode:   ginMode,
		JWTSecret: secret,
	}
}
