package config

type AIConfig struct {
	Enabled   bool
	APIKey    string
	Model     string
	MaxTokens int
}

func loadAIConfig() AIConfig {
	return AIConfig{
		Enabled:   getEnvBool("AI_ENABLED", false),
		APIKey:    getEnv("OPENAI_API_KEY", ""),
		Model:     getEnv("AI_MODEL", "gpt-4o-mini"),
		MaxTokens: getEnvInt("AI_MAX_TOKENS", 512),
	}
}
