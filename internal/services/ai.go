package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/red7x7/membership-api/internal/dto"
)

var (
	// ErrAINotConfigured is returned before any network call when no API key
	// is set.
	ErrAINotConfigured = errors.New("AI service is not configured")
	// ErrAITimeout marks an upstream round trip that exceeded its deadline;
	// the caller may simply retry.
	ErrAITimeout = errors.New("AI service timed out")
)

// UnparseableResponseError carries the raw upstream text for diagnostics.
type UnparseableResponseError struct {
	Raw string
}

func (e *UnparseableResponseError) Error() string {
	return "could not parse AI response"
}

const summarizePrompt = `You are an assistant that summarizes meeting notes.
Return a single JSON object with the keys summary (a short text), actionItems
(a list of strings) and participants (a list of email addresses). Return only
the JSON object, with no surrounding text.`

// AIService calls the external summarization collaborator.
type AIService struct {
	client *openai.Client
}

// NewAIService creates an AIService from an API key.
func NewAIService(apiKey string) *AIService {
	return &AIService{client: openai.NewClient(apiKey)}
}

// NewAIServiceWithClient creates an AIService from a preconfigured client
// (used for testing against a stub endpoint).
func NewAIServiceWithClient(client *openai.Client) *AIService {
	return &AIService{client: client}
}

// SummarizeNotes sends meeting notes to the collaborator and parses its JSON
// reply. The result is advisory only; it never creates or mutates a meeting.
func (s *AIService) SummarizeNotes(ctx context.Context, notes string) (*dto.AISummaryDTO, error) {
	if s == nil || s.client == nil {
		return nil, ErrAINotConfigured
	}

	prompt := fmt.Sprintf("%s\n\nNotes:\n%s", summarizePrompt, notes)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrAITimeout
		}
		return nil, fmt.Errorf("AI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, &UnparseableResponseError{Raw: ""}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)

	var summary dto.AISummaryDTO
	if err := json.Unmarshal([]byte(content), &summary); err != nil {
		return nil, &UnparseableResponseError{Raw: content}
	}

	return &summary, nil
}
