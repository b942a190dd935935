package chat

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// ChatResponse é o contrato do POST /chat. ImageURL é serializado como null
// quando a resposta não tem imagem; SessionID só aparece quando o servidor
// gerou um id novo para o chamador.
type ChatResponse struct {
	Message   string  `json:"message"`
	ImageURL  *string `json:"image_url"`
	Intent    string  `json:"intent"`
	SessionID string  `json:"session_id,omitempty"`
}
