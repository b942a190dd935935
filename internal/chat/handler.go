package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/estuda-ai/chatbot-lambda/internal/config"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ProcessMessage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para o chat")
		config.Error(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		log.Warn("Mensagem vazia recebida no chat")
		config.Error(w, http.StatusBadRequest, "message is required", "")
		return
	}

	minted := false
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
		minted = true
	}

	reply, err := h.service.HandleMessage(r.Context(), req.SessionID, req.Message)
	if err != nil {
		log.WithError(err).Error("Erro ao processar mensagem do chat")
		config.Error(w, http.StatusInternalServerError, "failed to process message", err.Error())
		return
	}

	resp := ChatResponse{
		Message: reply.Message,
		Intent:  reply.Intent,
	}
	if reply.ImageURL != "" {
		resp.ImageURL = &reply.ImageURL
	}
	if minted {
		resp.SessionID = req.SessionID
	}

	config.JSON(w, http.StatusOK, resp)
}
