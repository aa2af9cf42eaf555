package config

type ServerConfig struct {
	Port        int
	Environment string
	LogLevel    string
	// BaseURL es la URL pública del API, usada al armar referencias absolutas
	BaseURL     string
	CORSOrigins []string
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:        getEnvInt("SERVER_PORT", 8085),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8085"),
		// El frontend de talenta corre en Vite durante el desarrollo
		CORSOrigins: getEnvStringSlice("CORS_ORIGINS", []string{"http://localhost:5173"}),
	}
}
