package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

func Init() {
	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// WithContext retorna um logger com o request id da requisição atual, quando houver.
func WithContext(ctx context.Context) logrus.FieldLogger {
	if ctx == nil {
		return logrus.StandardLogger()
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return logrus.WithField("request_id", reqID)
	}
	return logrus.StandardLogger()
}
