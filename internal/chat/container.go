package chat

import (
	"github.com/estuda-ai/chatbot-lambda/internal/intent"
	"github.com/estuda-ai/chatbot-lambda/internal/quiz"
)

type ChatContainer struct {
	Handler *Handler
}

func NewChatContainer(engine quiz.Engine, detector intent.Detector) *ChatContainer {
	service := NewService(engine, detector)
	handler := NewHandler(service)

	return &ChatContainer{
		Handler: handler,
	}
}
