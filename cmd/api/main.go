package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/estuda-ai/chatbot-lambda/internal/container"
	"github.com/estuda-ai/chatbot-lambda/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	c := container.New()
	r := router.New(router.RouterConfig{
		ChatHandler: c.ChatContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(r)
		lambda.Start(handler)
		return
	}

	logrus.Infof("Chat service rodando na porta %s", c.Config.Port)
	if err := http.ListenAndServe(":"+c.Config.Port, r); err != nil {
		logrus.WithError(err).Fatal("Falha ao iniciar o servidor HTTP")
	}
}
