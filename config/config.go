package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port                string
	DBPath              string
	GeminiEndpoint      string
	GeminiAPIKey        string
	GeminiModel         string
	RemoteStoreEndpoint string
	RemoteStoreAPIKey   string
	ResourceDomains     string
	ReminderCron        string
	BufferCSV           string
	BufferXLSX          string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:                get("PORT", "8080"),
		DBPath:              get("DB_PATH", "studyplan.db"),
		GeminiEndpoint:      get("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com"),
		GeminiAPIKey:        get("GEMINI_API_KEY", ""),
		GeminiModel:         get("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		RemoteStoreEndpoint: get("REMOTE_STORE_ENDPOINT", ""),
		RemoteStoreAPIKey:   get("REMOTE_STORE_API_KEY", ""),
		ResourceDomains:     get("RESOURCE_ALLOWED_DOMAINS", ""),
		ReminderCron:        get("REMINDER_CRON", "0 9 * * *"),
		BufferCSV:           get("BUFFER_CSV", ""),
		BufferXLSX:          get("BUFFER_XLSX", ""),
	}
	log.Printf("[cfg] port=%s db=%s model=%s remote=%q", cfg.Port, cfg.DBPath, cfg.GeminiModel, cfg.RemoteStoreEndpoint)
	return cfg
}
