package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dimensions-ai/brandbot-api/internal/logger"
	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const providerNameOpenAI = "openai"

// OpenAIProvider implements the Provider interface using OpenAI's Chat
// Completions API.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{client: &client}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return providerNameOpenAI
}

// Complete sends a single chat completion request and returns the
// trimmed completion text.
func (p *OpenAIProvider) Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error) {
	transaction := sentry.StartTransaction(ctx, "openai.complete")
	defer transaction.Finish()
	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameOpenAI)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(request.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(request.SystemPrompt),
			openai.UserMessage(request.Prompt),
		},
		Temperature: openai.Float(request.Temperature),
		MaxTokens:   openai.Int(request.MaxTokens),
	}

	span := transaction.StartChild("openai.api_call")
	start := time.Now()
	resp, err := p.client.Chat.Completions.New(ctx, params)
	span.Finish()

	if err != nil {
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("openai returned no choices")
	}

	usage := TokenUsage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}
	logger.LogGeneration(request.Model, time.Since(start), usage.Map(), logger.Fields{
		"provider": providerNameOpenAI,
	})

	transaction.SetTag("success", "true")
	return &CompletionResponse{
		Text:  strings.TrimSpace(resp.Choices[0].Message.Content),
		Usage: usage,
	}, nil
}
