package intent

import "context"

// Result é a parte da resposta do provedor de NLU que o chat repassa ao
// usuário: texto de fulfillment, nome da intent e uma imagem opcional.
type Result struct {
	FulfillmentText string
	Intent          string
	ImageURL        string
}

type Detector interface {
	DetectIntent(ctx context.Context, sessionID, text string) (*Result, error)
}
