package quiz

import (
	"fmt"
	"strings"
)

const (
	welcomeMessage = "Vamos começar o quiz! São %d perguntas de múltipla escolha. " +
		"Responda com a letra da alternativa (A, B, C ou D). " +
		"Envie \"sair\" a qualquer momento para encerrar.\n\n"

	invalidAnswerMessage = "Resposta inválida. Por favor responda com A, B, C ou D " +
		"(ou envie \"sair\" para encerrar o quiz)."

	cancelledMessage    = "Quiz encerrado. Até a próxima!"
	nothingToCancelMsg  = "Não há nenhum quiz em andamento."
	completedSummaryFmt = "Quiz finalizado! Você acertou %d de %d perguntas (%d%%).\n\n%s"
)

func formatQuestion(q Question, number, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pergunta %d/%d: %s\n\n", number, total, q.Text)
	for _, letter := range optionLetters {
		fmt.Fprintf(&b, "%s) %s\n", letter, q.Options[letter])
	}
	return b.String()
}

func formatFeedback(q Question, wasCorrect bool) string {
	if wasCorrect {
		return fmt.Sprintf("✅ Resposta correta!\n%s\n\n", q.Explanation)
	}
	return fmt.Sprintf("❌ Resposta incorreta. A alternativa certa era %s.\n%s\n\n",
		q.CorrectLetter, q.Explanation)
}

// tierMessage aplica a tabela de faixas de desempenho sobre o percentual de acerto.
func tierMessage(percentage int) string {
	switch {
	case percentage >= 80:
		return "Excelente! Você é um verdadeiro especialista! 🏆"
	case percentage >= 60:
		return "Muito bem! Você mandou muito bem no quiz. 👏"
	case percentage >= 40:
		return "Bom esforço! Continue estudando que você chega lá. 💪"
	default:
		return "Não desanime! Que tal revisar o conteúdo e tentar de novo? 📚"
	}
}
