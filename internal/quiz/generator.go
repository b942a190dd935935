package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var errProviderUnavailable = errors.New("provedor de perguntas indisponível")

// Generator obtém um conjunto válido de QuestionCount perguntas. Qualquer
// falha (provedor, timeout, JSON inválido, quantidade errada) é devolvida
// como erro; o fallback é responsabilidade do Engine.
type Generator interface {
	Generate(ctx context.Context) ([]Question, error)
}

type generator struct {
	provider Provider
	timeout  time.Duration
}

func NewGenerator(provider Provider, timeout time.Duration) Generator {
	return &generator{provider: provider, timeout: timeout}
}

func (g *generator) Generate(ctx context.Context) ([]Question, error) {
	if g.provider == nil {
		return nil, errProviderUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	questions, err := g.provider.SendPrompt(ctx, systemPrompt, buildUserPrompt())
	if err != nil {
		return nil, err
	}

	return validateQuestions(questions)
}

func validateQuestions(questions []Question) ([]Question, error) {
	if len(questions) != QuestionCount {
		return nil, fmt.Errorf("esperadas %d perguntas, recebidas %d", QuestionCount, len(questions))
	}

	for i := range questions {
		q := &questions[i]
		if strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("pergunta %d sem enunciado", i+1)
		}
		for _, letter := range optionLetters {
			if strings.TrimSpace(q.Options[letter]) == "" {
				return nil, fmt.Errorf("pergunta %d sem alternativa %s", i+1, letter)
			}
		}
		q.CorrectLetter = strings.ToUpper(strings.TrimSpace(q.CorrectLetter))
		if len(q.CorrectLetter) != 1 || !strings.Contains("ABCD", q.CorrectLetter) {
			return nil, fmt.Errorf("pergunta %d com resposta correta inválida: %q", i+1, q.CorrectLetter)
		}
	}

	return questions, nil
}
