package facades

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
	"github.com/sbilibin2017/gw-health-tracker/internal/models"
)

// ChatCompletionClient is the part of the OpenAI client used by the facade.
type ChatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAICompletionFacade implements chat completion using the OpenAI API.
type OpenAICompletionFacade struct {
	client ChatCompletionClient
	model  string
}

// NewOpenAICompletionFacade creates a new facade with an OpenAI client.
func NewOpenAICompletionFacade(client ChatCompletionClient, model string) *OpenAICompletionFacade {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAICompletionFacade{client: client, model: model}
}

// Complete sends the system and user messages and returns the first choice.
// It never returns an error; failures are reported through the completion status.
func (f *OpenAICompletionFacade) Complete(ctx context.Context, systemPrompt, userPrompt string) models.Completion {
	req := openai.ChatCompletionRequest{
		Model: f.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	}

	resp, err := f.client.CreateChatCompletion(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to create chat completion", "model", f.model, "error", err)
		return models.Completion{Status: models.CompletionTransportError, Err: err}
	}

	if len(resp.Choices) == 0 {
		logger.Log.Warnw("chat completion returned no choices", "model", f.model, "id", resp.ID)
		return models.Completion{Status: models.CompletionEmpty}
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		logger.Log.Warnw("chat completion returned empty content", "model", f.model, "id", resp.ID)
		return models.Completion{Status: models.CompletionEmpty}
	}

	return models.Completion{Status: models.CompletionOK, Text: text}
}
