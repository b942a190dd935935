package quiz

import (
	"context"

	"github.com/estuda-ai/chatbot-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type QuizContainer struct {
	Engine Engine
}

func NewQuizContainer(cfg *config.Config) *QuizContainer {
	ctx := context.Background()

	provider, err := NewGeminiProvider(ctx, cfg.GeminiModel)
	if err != nil {
		// Sem provedor todo quiz usa o conjunto de fallback.
		logrus.WithError(err).Warn("Cliente Gemini indisponível, quizzes usarão o fallback")
	}

	generator := NewGenerator(provider, cfg.QuizGenTimeout)
	engine := NewEngine(NewMemoryStore(), generator)

	return &QuizContainer{
		Engine: engine,
	}
}
