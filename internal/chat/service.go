package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/estuda-ai/chatbot-lambda/internal/config"
	"github.com/estuda-ai/chatbot-lambda/internal/intent"
	"github.com/estuda-ai/chatbot-lambda/internal/quiz"
)

var cancelKeywords = map[string]struct{}{
	"sair":     {},
	"cancelar": {},
}

var startKeywords = []string{"quiz", "jogar", "perguntas", "teste"}

const quizAlreadyActiveMessage = "Você já tem um quiz em andamento. " +
	"Responda a pergunta atual ou envie \"sair\" para encerrar."

// Service decide o destino de cada mensagem. A ordem importa: cancelamento
// tem prioridade sobre tudo; um quiz ativo intercepta qualquer mensagem até
// ser respondido, finalizado ou cancelado; só então a mensagem segue para o
// Dialogflow.
type Service interface {
	HandleMessage(ctx context.Context, sessionID, message string) (*quiz.Reply, error)
}

type service struct {
	engine   quiz.Engine
	detector intent.Detector
}

func NewService(engine quiz.Engine, detector intent.Detector) Service {
	return &service{engine: engine, detector: detector}
}

func (s *service) HandleMessage(ctx context.Context, sessionID, message string) (*quiz.Reply, error) {
	log := config.WithContext(ctx)
	normalized := strings.ToLower(strings.TrimSpace(message))

	if _, ok := cancelKeywords[normalized]; ok {
		return s.engine.Cancel(ctx, sessionID), nil
	}

	if containsStartKeyword(normalized) && !s.engine.IsActive(sessionID) {
		reply, err := s.engine.Start(ctx, sessionID)
		if errors.Is(err, quiz.ErrQuizAlreadyActive) {
			// Duas requisições da mesma sessão disputaram o início do quiz.
			log.Warnf("Início de quiz concorrente para a sessão %s", sessionID)
			return &quiz.Reply{Message: quizAlreadyActiveMessage, Intent: quiz.IntentQuizAnswerInvalid}, nil
		}
		return reply, err
	}

	// Sem quiz ativo o Answer devolve (nil, nil) e a mensagem cai no Dialogflow.
	if reply, err := s.engine.Answer(ctx, sessionID, message); err != nil || reply != nil {
		return reply, err
	}

	result, err := s.detector.DetectIntent(ctx, sessionID, message)
	if err != nil {
		return nil, err
	}

	return &quiz.Reply{
		Message:  result.FulfillmentText,
		ImageURL: result.ImageURL,
		Intent:   result.Intent,
	}, nil
}

func containsStartKeyword(normalized string) bool {
	for _, keyword := range startKeywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}
