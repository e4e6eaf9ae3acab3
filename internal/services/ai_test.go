package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
)

// stubAIService points an AIService at a local server that answers every
// chat completion with the given content.
func stubAIService(t *testing.T, content string, delay time.Duration) *AIService {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if delay > 0 {
			time.Sleep(delay)
		}
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return NewAIServiceWithClient(openai.NewClientWithConfig(cfg))
}

func TestAIService_SummarizeNotes(t *testing.T) {
	svc := stubAIService(t, `{"summary":"Reunion corta.","actionItems":["Enviar minuta"],"participants":["ana@red7x7.cl"]}`, 0)

	summary, err := svc.SummarizeNotes(context.Background(), "Notas de la reunion")
	require.NoError(t, err)
	require.Equal(t, "Reunion corta.", summary.Summary)
	require.Equal(t, []string{"Enviar minuta"}, summary.ActionItems)
	require.Equal(t, []string{"ana@red7x7.cl"}, summary.Participants)
}

func TestAIService_SummarizeNotes_UnparseableResponse(t *testing.T) {
	svc := stubAIService(t, "Sure! Here is your summary: the meeting went well.", 0)

	_, err := svc.SummarizeNotes(context.Background(), "Notas")
	var unparseable *UnparseableResponseError
	require.ErrorAs(t, err, &unparseable)
	require.Contains(t, unparseable.Raw, "the meeting went well")
}

func TestAIService_SummarizeNotes_Timeout(t *testing.T) {
	svc := stubAIService(t, `{"summary":"s","actionItems":[],"participants":[]}`, 200*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.SummarizeNotes(ctx, "Notas")
	require.ErrorIs(t, err, ErrAITimeout)
}

func TestAIService_SummarizeNotes_NotConfigured(t *testing.T) {
	var svc *AIService

	_, err := svc.SummarizeNotes(context.Background(), "Notas")
	require.ErrorIs(t, err, ErrAINotConfigured)

	_, err = NewAIServiceWithClient(nil).SummarizeNotes(context.Background(), "Notas")
	require.ErrorIs(t, err, ErrAINotConfigured)
}
