package quiz

// QuestionCount é o tamanho fixo de todo quiz, gerado ou de fallback.
const QuestionCount = 10

var optionLetters = []string{"A", "B", "C", "D"}

type Question struct {
	Text          string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectLetter string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
}

// AnsweredRecord guarda o resultado de uma resposta já corrigida. Nunca é alterado.
type AnsweredRecord struct {
	QuestionText  string `json:"question"`
	UserLetter    string `json:"user_letter"`
	CorrectLetter string `json:"correct_letter"`
	WasCorrect    bool   `json:"was_correct"`
}

// QuizSession é o estado de um quiz em andamento, existente apenas enquanto ativo.
// Invariantes: len(Questions) == QuestionCount, len(Answers) == CurrentIndex,
// Score <= CurrentIndex.
type QuizSession struct {
	SessionID    string
	Questions    []Question
	CurrentIndex int
	Score        int
	Answers      []AnsweredRecord
}

type Reply struct {
	Message  string
	ImageURL string
	Intent   string
}

const (
	IntentQuizStarted       = "quiz.start"
	IntentQuizAnswer        = "quiz.answer"
	IntentQuizAnswerInvalid = "quiz.answer.invalid"
	IntentQuizComplete      = "quiz.complete"
	IntentQuizCancelled     = "quiz.cancel"
	IntentQuizCancelNone    = "quiz.cancel.none"
)
