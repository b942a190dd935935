package quiz

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/estuda-ai/chatbot-lambda/internal/config"
)

var (
	ErrSessionNotFound   = errors.New("quiz session not found")
	ErrQuizAlreadyActive = errors.New("quiz already active for session")
)

var answerPattern = regexp.MustCompile(`^[A-D]$`)

// Engine é a máquina de estados do quiz. Todas as operações de uma mesma
// sessão são serializadas por um mutex por chave, então requisições
// concorrentes do mesmo session id nunca perdem atualizações.
type Engine interface {
	IsActive(sessionID string) bool
	Start(ctx context.Context, sessionID string) (*Reply, error)
	Answer(ctx context.Context, sessionID, message string) (*Reply, error)
	Complete(ctx context.Context, sessionID string) (*Reply, error)
	Cancel(ctx context.Context, sessionID string) *Reply
}

type engine struct {
	store     SessionStore
	generator Generator
	locks     *keyedMutex
}

func NewEngine(store SessionStore, generator Generator) Engine {
	return &engine{
		store:     store,
		generator: generator,
		locks:     newKeyedMutex(),
	}
}

func (e *engine) IsActive(sessionID string) bool {
	_, ok := e.store.Get(sessionID)
	return ok
}

// Start cria uma nova sessão com as perguntas geradas, ou com o conjunto de
// fallback quando a geração falha. Nunca falha por causa do provedor; o único
// erro possível é já existir um quiz ativo para a sessão.
func (e *engine) Start(ctx context.Context, sessionID string) (*Reply, error) {
	log := config.WithContext(ctx)

	e.locks.Lock(sessionID)
	defer e.locks.Unlock(sessionID)

	if _, ok := e.store.Get(sessionID); ok {
		return nil, ErrQuizAlreadyActive
	}

	questions, err := e.generator.Generate(ctx)
	if err != nil {
		log.WithError(err).Warn("Geração de perguntas falhou, usando conjunto de fallback")
		questions = fallbackQuestions()
	}

	session := &QuizSession{
		SessionID: sessionID,
		Questions: questions,
		Answers:   []AnsweredRecord{},
	}
	e.store.Put(session)

	log.Infof("Quiz iniciado para a sessão %s", sessionID)

	message := fmt.Sprintf(welcomeMessage, QuestionCount) +
		formatQuestion(questions[0], 1, QuestionCount)
	return &Reply{Message: message, Intent: IntentQuizStarted}, nil
}

// Answer corrige uma resposta da sessão. Retorna (nil, nil) quando não há quiz
// ativo, sinalizando ao chamador que a mensagem deve seguir o fluxo normal.
func (e *engine) Answer(ctx context.Context, sessionID, message string) (*Reply, error) {
	e.locks.Lock(sessionID)
	defer e.locks.Unlock(sessionID)

	session, ok := e.store.Get(sessionID)
	if !ok {
		return nil, nil
	}

	letter := strings.ToUpper(strings.TrimSpace(message))
	if !answerPattern.MatchString(letter) {
		return &Reply{Message: invalidAnswerMessage, Intent: IntentQuizAnswerInvalid}, nil
	}

	question := session.Questions[session.CurrentIndex]
	wasCorrect := letter == question.CorrectLetter
	if wasCorrect {
		session.Score++
	}
	session.Answers = append(session.Answers, AnsweredRecord{
		QuestionText:  question.Text,
		UserLetter:    letter,
		CorrectLetter: question.CorrectLetter,
		WasCorrect:    wasCorrect,
	})
	session.CurrentIndex++
	e.store.Put(session)

	if session.CurrentIndex == len(session.Questions) {
		return e.completeLocked(ctx, session), nil
	}

	next := session.Questions[session.CurrentIndex]
	text := formatFeedback(question, wasCorrect) +
		formatQuestion(next, session.CurrentIndex+1, len(session.Questions))
	return &Reply{Message: text, Intent: IntentQuizAnswer}, nil
}

// Complete encerra a sessão explicitamente. A sessão é removida como parte da
// própria chamada; uma segunda chamada encontra ErrSessionNotFound.
func (e *engine) Complete(ctx context.Context, sessionID string) (*Reply, error) {
	e.locks.Lock(sessionID)
	defer e.locks.Unlock(sessionID)

	session, ok := e.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e.completeLocked(ctx, session), nil
}

// completeLocked assume que o lock da sessão já está em posse do chamador.
func (e *engine) completeLocked(ctx context.Context, session *QuizSession) *Reply {
	log := config.WithContext(ctx)

	total := len(session.Questions)
	percentage := int(math.Round(100 * float64(session.Score) / float64(total)))

	e.store.Delete(session.SessionID)
	log.Infof("Quiz finalizado para a sessão %s: %d/%d (%d%%)",
		session.SessionID, session.Score, total, percentage)

	message := fmt.Sprintf(completedSummaryFmt, session.Score, total, percentage, tierMessage(percentage))
	return &Reply{Message: message, Intent: IntentQuizComplete}
}

// Cancel remove a sessão incondicionalmente, em qualquer progresso. Nunca erra:
// cancelar sem quiz ativo devolve uma resposta distinta de "nada a cancelar".
func (e *engine) Cancel(ctx context.Context, sessionID string) *Reply {
	log := config.WithContext(ctx)

	e.locks.Lock(sessionID)
	defer e.locks.Unlock(sessionID)

	if e.store.Delete(sessionID) {
		log.Infof("Quiz cancelado para a sessão %s", sessionID)
		return &Reply{Message: cancelledMessage, Intent: IntentQuizCancelled}
	}
	return &Reply{Message: nothingToCancelMsg, Intent: IntentQuizCancelNone}
}
