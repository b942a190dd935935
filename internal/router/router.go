package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/estuda-ai/chatbot-lambda/internal/chat"
	"github.com/estuda-ai/chatbot-lambda/internal/config"
	"github.com/estuda-ai/chatbot-lambda/internal/middlewares"
)

type RouterConfig struct {
	ChatHandler *chat.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/chat", func(r chi.Router) {
		r.Mount("/", chat.Routes(cfg.ChatHandler))
	})

	return r
}
