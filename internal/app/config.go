package app

import (
	"strings"
	"time"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/utils"
)

type Config struct {
	Port           string
	GinMode        string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	CORSOrigins    []string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	ginMode := utils.GetEnv("GIN_MODE", "debug", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	corsOrigins := utils.GetEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173", log)
	return Config{
		Port:           port,
		GinMode:        ginMode,
		JWTSecretKey:   jwtSecretKey,
		AccessTokenTTL: time.Duration(accessTokenTTLSeconds) * time.Second,
		CORSOrigins:    strings.Split(corsOrigins, ","),
	}
}
