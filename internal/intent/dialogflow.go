package intent

import (
	"context"
	"fmt"
	"time"

	dialogflow "cloud.google.com/go/dialogflow/apiv2"
	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"github.com/estuda-ai/chatbot-lambda/internal/config"
	"google.golang.org/api/option"
)

type dialogflowDetector struct {
	client       *dialogflow.SessionsClient
	projectID    string
	languageCode string
	timeout      time.Duration
}

func NewDialogflowDetector(ctx context.Context, cfg *config.Config) (Detector, error) {
	var opts []option.ClientOption
	if cfg.DialogflowCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.DialogflowCredentialsFile))
	}

	client, err := dialogflow.NewSessionsClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Dialogflow: %w", err)
	}

	return &dialogflowDetector{
		client:       client,
		projectID:    cfg.DialogflowProjectID,
		languageCode: cfg.LanguageCode,
		timeout:      cfg.IntentTimeout,
	}, nil
}

func (d *dialogflowDetector) DetectIntent(ctx context.Context, sessionID, text string) (*Result, error) {
	log := config.WithContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req := &dialogflowpb.DetectIntentRequest{
		Session: fmt.Sprintf("projects/%s/agent/sessions/%s", d.projectID, sessionID),
		QueryInput: &dialogflowpb.QueryInput{
			Input: &dialogflowpb.QueryInput_Text{
				Text: &dialogflowpb.TextInput{
					Text:         text,
					LanguageCode: d.languageCode,
				},
			},
		},
	}

	resp, err := d.client.DetectIntent(ctx, req)
	if err != nil {
		log.WithError(err).Error("Falha ao detectar intent no Dialogflow")
		return nil, fmt.Errorf("falha ao detectar intent: %w", err)
	}

	queryResult := resp.GetQueryResult()
	result := &Result{
		FulfillmentText: queryResult.GetFulfillmentText(),
		Intent:          queryResult.GetIntent().GetDisplayName(),
		ImageURL:        extractImageURL(queryResult.GetFulfillmentMessages()),
	}

	log.Infof("Intent detectada para a sessão %s: %s", sessionID, result.Intent)
	return result, nil
}

// extractImageURL percorre as mensagens de fulfillment em ordem; mensagens
// posteriores sobrescrevem a imagem encontrada em mensagens anteriores.
func extractImageURL(messages []*dialogflowpb.Intent_Message) string {
	var imageURL string
	for _, m := range messages {
		if url := imageFromMessage(m); url != "" {
			imageURL = url
		}
	}
	return imageURL
}

// imageFromMessage busca uma URL de imagem em uma única mensagem, na ordem:
// imagem inline, campo "image_url" de payload customizado, imagem de card.
func imageFromMessage(m *dialogflowpb.Intent_Message) string {
	if img := m.GetImage(); img.GetImageUri() != "" {
		return img.GetImageUri()
	}
	if payload := m.GetPayload(); payload != nil {
		if v, ok := payload.GetFields()["image_url"]; ok {
			if url := v.GetStringValue(); url != "" {
				return url
			}
		}
	}
	if card := m.GetCard(); card.GetImageUri() != "" {
		return card.GetImageUri()
	}
	return ""
}
