package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dimensions-ai/brandbot-api/internal/config"
	"github.com/dimensions-ai/brandbot-api/internal/content"
	"github.com/dimensions-ai/brandbot-api/internal/dna"
	"github.com/dimensions-ai/brandbot-api/internal/llm"
	"github.com/dimensions-ai/brandbot-api/internal/logger"
	"github.com/dimensions-ai/brandbot-api/internal/metrics"
	"github.com/dimensions-ai/brandbot-api/internal/models"
	"github.com/dimensions-ai/brandbot-api/internal/observability"
	"github.com/dimensions-ai/brandbot-api/internal/prompt"
	"github.com/dimensions-ai/brandbot-api/internal/readability"
	"github.com/dimensions-ai/brandbot-api/internal/store"
)

var (
	// ErrMissingTarget is returned when a generation request names
	// neither a client id nor a business id.
	ErrMissingTarget = errors.New("either client_id or business_id is required")

	// ErrBusinessNotFound is returned for an unknown business id.
	ErrBusinessNotFound = errors.New("business not found")
)

// GenerationService runs the full content pipeline: resolve the profile,
// compose the prompt, call the completion provider and post-process the
// reply into sections with a readability score.
type GenerationService struct {
	store         *store.Store
	dna           *dna.Loader
	builder       *prompt.Builder
	factory       *llm.ProviderFactory
	model         string
	cloudwatch    *metrics.Client
	sentryMetrics *metrics.SentryMetrics

	// provider overrides factory resolution when set (tests)
	provider llm.Provider
}

// NewGenerationService creates the service from the app configuration.
func NewGenerationService(cfg *config.Config, st *store.Store, loader *dna.Loader, cw *metrics.Client) *GenerationService {
	return &GenerationService{
		store:         st,
		dna:           loader,
		builder:       prompt.NewBuilder(),
		factory:       llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey),
		model:         cfg.Model,
		cloudwatch:    cw,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

// SetProvider pins the completion provider, bypassing the factory.
func (s *GenerationService) SetProvider(p llm.Provider) {
	s.provider = p
}

func (s *GenerationService) getProvider(ctx context.Context) (llm.Provider, error) {
	if s.provider != nil {
		return s.provider, nil
	}
	return s.factory.GetProvider(ctx, s.model)
}

// Generate produces content for a stored client or a legacy business
// DNA profile. Unknown ids surface as store.ErrClientNotFound or
// ErrBusinessNotFound; a request naming neither id fails with
// ErrMissingTarget.
func (s *GenerationService) Generate(ctx context.Context, req models.PromptRequest) (*models.GenerateResponse, error) {
	fullPrompt, target, err := s.composePrompt(req)
	if err != nil {
		return nil, err
	}

	raw, err := s.complete(ctx, "generate_content", target, fullPrompt)
	if err != nil {
		return nil, err
	}

	sections := content.ExtractSections(raw)
	return &models.GenerateResponse{
		GeneratedContent:     sections.Content,
		Rationale:            sections.Rationale,
		MarketingSuggestions: sections.Suggestions,
		ReadabilityScore:     readability.Analyze(sections.Content),
	}, nil
}

func (s *GenerationService) composePrompt(req models.PromptRequest) (fullPrompt, target string, err error) {
	switch {
	case req.ClientID != nil:
		client, err := s.store.GetClient(*req.ClientID)
		if err != nil {
			return "", "", err
		}
		rules := s.store.EffectiveRules(client.ID)
		return s.builder.BuildClientPrompt(client, rules, req.Prompt), fmt.Sprintf("client:%d", client.ID), nil

	case req.BusinessID != "":
		profile, ok := s.dna.Lookup(req.BusinessID)
		if !ok {
			return "", "", ErrBusinessNotFound
		}
		return s.builder.BuildBusinessPrompt(profile, req.Prompt), "business:" + req.BusinessID, nil

	default:
		return "", "", ErrMissingTarget
	}
}

// Preview generates content against ad-hoc rule settings without reading
// stored rules.
func (s *GenerationService) Preview(ctx context.Context, req models.ContentPreviewRequest) (*models.ContentPreviewResponse, error) {
	fullPrompt := s.builder.BuildPreviewPrompt(req)

	raw, err := s.complete(ctx, "content_preview", "preview", fullPrompt)
	if err != nil {
		return nil, err
	}

	sections := content.ExtractSections(raw)

	marketingSuggestions := req.MarketingSuggestions == nil || *req.MarketingSuggestions
	contentLength := req.ContentLength
	if contentLength == "" {
		contentLength = "medium"
	}

	return &models.ContentPreviewResponse{
		GeneratedContent: sections.Content,
		SettingsUsed: map[string]interface{}{
			"tone":                  req.Tone,
			"audience":              req.Audience,
			"mandatory_keywords":    req.MandatoryKeywords,
			"excluded_keywords":     req.ExcludedKeywords,
			"content_length":        contentLength,
			"marketing_suggestions": marketingSuggestions,
		},
	}, nil
}

// complete runs one completion call with tracing and token metrics.
func (s *GenerationService) complete(ctx context.Context, traceName, target, fullPrompt string) (string, error) {
	provider, err := s.getProvider(ctx)
	if err != nil {
		return "", err
	}

	trace := observability.GetClient().StartTrace(ctx, traceName, map[string]interface{}{
		"target": target,
		"model":  s.model,
	})
	defer trace.Finish()
	generation := trace.Generation("completion", nil)
	defer generation.Finish()

	start := time.Now()
	resp, err := provider.Complete(ctx, llm.NewCompletionRequest(s.model, fullPrompt))
	if err != nil {
		generation.SetLevel("ERROR")
		logger.Error("Completion request failed", err, logger.Fields{
			"model":  s.model,
			"target": target,
		})
		return "", err
	}

	generation.LogCompletion(s.model, fullPrompt, resp.Text,
		resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens)

	if s.cloudwatch != nil {
		s.cloudwatch.RecordTokenUsage(s.model, resp.Usage.TotalTokens, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}
	s.sentryMetrics.RecordTokenUsage(ctx, s.model, resp.Usage.TotalTokens, resp.Usage.InputTokens, resp.Usage.OutputTokens)

	logger.Info("Completion succeeded", logger.Fields{
		"model":       s.model,
		"target":      target,
		"duration_ms": time.Since(start).Milliseconds(),
		"chars":       len(resp.Text),
	})
	return resp.Text, nil
}
