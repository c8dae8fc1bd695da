package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dimensions-ai/brandbot-api/internal/logger"
	"github.com/getsentry/sentry-go"
	"google.golang.org/genai"
)

const providerNameGemini = "gemini"

// GeminiProvider implements the Provider interface using Google's Gemini API
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return providerNameGemini
}

// Complete sends a single generation request to Gemini.
func (p *GeminiProvider) Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error) {
	transaction := sentry.StartTransaction(ctx, "gemini.complete")
	defer transaction.Finish()
	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameGemini)

	temperature := float32(request.Temperature)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: request.SystemPrompt}},
		},
		Temperature:     &temperature,
		MaxOutputTokens: int32(request.MaxTokens),
	}

	span := transaction.StartChild("gemini.api_call")
	start := time.Now()
	result, err := p.client.Models.GenerateContent(ctx, request.Model, genai.Text(request.Prompt), config)
	span.Finish()

	if err != nil {
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("gemini returned an empty completion")
	}

	var usage TokenUsage
	if result.UsageMetadata != nil {
		usage = TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}
	logger.LogGeneration(request.Model, time.Since(start), usage.Map(), logger.Fields{
		"provider": providerNameGemini,
	})

	transaction.SetTag("success", "true")
	return &CompletionResponse{Text: text, Usage: usage}, nil
}
