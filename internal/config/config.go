package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            int
	DatabaseURL     string
	LogLevel        string
	GeminiAPIKey    string
	GeminiModel     string
	EmbedModel      string
	Temperature     float64
	TopP            float64
	MaxOutputTokens int
	TranslateAPIKey string
	NatsURL         string
	NatsToken       string
	Collection      string
	TopK            int
}

func Load() Config {
	return Config{
		Port:            envInt("HAKSABOT_PORT", 8000),
		DatabaseURL:     envStr("DATABASE_URL", ""),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		GeminiAPIKey:    envStr("GEMINI_API_KEY", ""),
		GeminiModel:     envStr("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		EmbedModel:      envStr("GEMINI_EMBED_MODEL", "text-embedding-004"),
		Temperature:     envFloat("GEMINI_TEMPERATURE", 0.6),
		TopP:            envFloat("GEMINI_TOP_P", 0.5),
		MaxOutputTokens: envInt("GEMINI_MAX_OUTPUT_TOKENS", 200),
		TranslateAPIKey: envStr("TRANSLATE_API_KEY", ""),
		NatsURL:         envStr("NATS_URL", ""),
		NatsToken:       envStr("NATS_TOKEN", ""),
		Collection:      envStr("VECTOR_COLLECTION", "mjc_homepage"),
		TopK:            envInt("RETRIEVAL_TOP_K", 3),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
