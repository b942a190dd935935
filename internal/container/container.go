package container

import (
	"context"
	"log"

	"github.com/estuda-ai/chatbot-lambda/internal/chat"
	"github.com/estuda-ai/chatbot-lambda/internal/config"
	"github.com/estuda-ai/chatbot-lambda/internal/intent"
	"github.com/estuda-ai/chatbot-lambda/internal/quiz"
)

type Container struct {
	Config        *config.Config
	QuizContainer *quiz.QuizContainer
	ChatContainer *chat.ChatContainer
}

func New() *Container {
	config.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	detector, err := intent.NewDialogflowDetector(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create dialogflow client: %v", err)
	}

	quizContainer := quiz.NewQuizContainer(cfg)
	chatContainer := chat.NewChatContainer(quizContainer.Engine, detector)

	return &Container{
		Config:        cfg,
		QuizContainer: quizContainer,
		ChatContainer: chatContainer,
	}
}
