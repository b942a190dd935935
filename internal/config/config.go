package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config concentra as variáveis de ambiente usadas pelo serviço.
type Config struct {
	Port                      string
	DialogflowProjectID       string
	DialogflowCredentialsFile string
	LanguageCode              string
	GeminiModel               string
	QuizGenTimeout            time.Duration
	IntentTimeout             time.Duration
}

const (
	defaultPort           = "8080"
	defaultLanguageCode   = "pt-BR"
	defaultGeminiModel    = "gemini-2.0-flash"
	defaultQuizGenTimeout = 15 * time.Second
	defaultIntentTimeout  = 10 * time.Second
)

// Load lê a configuração do ambiente. DIALOGFLOW_PROJECT_ID é obrigatório.
func Load() (*Config, error) {
	projectID := os.Getenv("DIALOGFLOW_PROJECT_ID")
	if projectID == "" {
		return nil, errors.New("DIALOGFLOW_PROJECT_ID environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	lang := os.Getenv("LANGUAGE_CODE")
	if lang == "" {
		lang = defaultLanguageCode
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}

	return &Config{
		Port:                      port,
		DialogflowProjectID:       projectID,
		DialogflowCredentialsFile: os.Getenv("DIALOGFLOW_CREDENTIALS_FILE"),
		LanguageCode:              lang,
		GeminiModel:               model,
		QuizGenTimeout:            durationFromEnv("QUIZ_GEN_TIMEOUT_SECONDS", defaultQuizGenTimeout),
		IntentTimeout:             durationFromEnv("INTENT_TIMEOUT_SECONDS", defaultIntentTimeout),
	}, nil
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
