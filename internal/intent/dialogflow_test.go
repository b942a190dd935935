package intent

import (
	"testing"

	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"google.golang.org/protobuf/types/known/structpb"
)

func imageMessage(uri string) *dialogflowpb.Intent_Message {
	return &dialogflowpb.Intent_Message{
		Message: &dialogflowpb.Intent_Message_Image_{
			Image: &dialogflowpb.Intent_Message_Image{ImageUri: uri},
		},
	}
}

func cardMessage(uri string) *dialogflowpb.Intent_Message {
	return &dialogflowpb.Intent_Message{
		Message: &dialogflowpb.Intent_Message_Card_{
			Card: &dialogflowpb.Intent_Message_Card{ImageUri: uri},
		},
	}
}

func payloadMessage(t *testing.T, fields map[string]interface{}) *dialogflowpb.Intent_Message {
	t.Helper()
	payload, err := structpb.NewStruct(fields)
	if err != nil {
		t.Fatalf("Falha ao montar payload de teste: %v", err)
	}
	return &dialogflowpb.Intent_Message{
		Message: &dialogflowpb.Intent_Message_Payload{Payload: payload},
	}
}

func textMessage(text string) *dialogflowpb.Intent_Message {
	return &dialogflowpb.Intent_Message{
		Message: &dialogflowpb.Intent_Message_Text_{
			Text: &dialogflowpb.Intent_Message_Text{Text: []string{text}},
		},
	}
}

func TestExtractImageURL(t *testing.T) {
	t.Run("NoMessages", func(t *testing.T) {
		if url := extractImageURL(nil); url != "" {
			t.Errorf("Sem mensagens deveria devolver vazio, recebido: %q", url)
		}
	})

	t.Run("TextOnly", func(t *testing.T) {
		messages := []*dialogflowpb.Intent_Message{textMessage("olá")}
		if url := extractImageURL(messages); url != "" {
			t.Errorf("Mensagem de texto não tem imagem, recebido: %q", url)
		}
	})

	t.Run("InlineImage", func(t *testing.T) {
		messages := []*dialogflowpb.Intent_Message{imageMessage("https://cdn.example.com/a.png")}
		if url := extractImageURL(messages); url != "https://cdn.example.com/a.png" {
			t.Errorf("Imagem inline incorreta: %q", url)
		}
	})

	t.Run("PayloadImageURL", func(t *testing.T) {
		messages := []*dialogflowpb.Intent_Message{
			payloadMessage(t, map[string]interface{}{"image_url": "https://cdn.example.com/p.png"}),
		}
		if url := extractImageURL(messages); url != "https://cdn.example.com/p.png" {
			t.Errorf("Imagem de payload incorreta: %q", url)
		}
	})

	t.Run("PayloadWithoutImageField", func(t *testing.T) {
		messages := []*dialogflowpb.Intent_Message{
			payloadMessage(t, map[string]interface{}{"outro_campo": "valor"}),
		}
		if url := extractImageURL(messages); url != "" {
			t.Errorf("Payload sem image_url deveria devolver vazio, recebido: %q", url)
		}
	})

	t.Run("CardImage", func(t *testing.T) {
		messages := []*dialogflowpb.Intent_Message{cardMessage("https://cdn.example.com/c.png")}
		if url := extractImageURL(messages); url != "https://cdn.example.com/c.png" {
			t.Errorf("Imagem de card incorreta: %q", url)
		}
	})

	t.Run("LaterFragmentOverwrites", func(t *testing.T) {
		messages := []*dialogflowpb.Intent_Message{
			imageMessage("https://cdn.example.com/primeira.png"),
			textMessage("sem imagem"),
			cardMessage("https://cdn.example.com/ultima.png"),
		}
		if url := extractImageURL(messages); url != "https://cdn.example.com/ultima.png" {
			t.Errorf("Fragmento posterior deveria sobrescrever o anterior, recebido: %q", url)
		}
	})
}

func TestImageFromMessage(t *testing.T) {
	t.Run("InlineWinsOverCard", func(t *testing.T) {
		// Um único fragmento é checado na ordem: inline, payload, card.
		m := &dialogflowpb.Intent_Message{
			Message: &dialogflowpb.Intent_Message_Image_{
				Image: &dialogflowpb.Intent_Message_Image{ImageUri: "https://cdn.example.com/inline.png"},
			},
		}
		if url := imageFromMessage(m); url != "https://cdn.example.com/inline.png" {
			t.Errorf("Imagem inline deveria vencer, recebido: %q", url)
		}
	})

	t.Run("EmptyInlineFallsThrough", func(t *testing.T) {
		m := imageMessage("")
		if url := imageFromMessage(m); url != "" {
			t.Errorf("Imagem inline vazia não é uma URL, recebido: %q", url)
		}
	})
}
