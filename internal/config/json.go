package config

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Falha ao serializar resposta JSON")
	}
}

func Error(w http.ResponseWriter, status int, msg, details string) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details})
}
