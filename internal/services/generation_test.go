package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dimensions-ai/brandbot-api/internal/config"
	"github.com/dimensions-ai/brandbot-api/internal/dna"
	"github.com/dimensions-ai/brandbot-api/internal/llm"
	"github.com/dimensions-ai/brandbot-api/internal/models"
	"github.com/dimensions-ai/brandbot-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	reply    string
	err      error
	lastReq  *llm.CompletionRequest
	requests int
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.lastReq = req
	p.requests++
	if p.err != nil {
		return nil, p.err
	}
	return &llm.CompletionResponse{Text: p.reply}, nil
}

func newTestService(t *testing.T, provider llm.Provider) (*GenerationService, *store.Store) {
	t.Helper()
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "business_dna.json"),
		[]byte(`{"dimensions": {"brand_voice": "Warm", "target_audience": "Marketers", "brand_positioning": "Partner", "tone_guide": "Plain"}}`), 0o644))

	cfg := &config.Config{Model: "gpt-4o-mini", DataDir: dataDir}
	st := store.New(dataDir)
	svc := NewGenerationService(cfg, st, dna.New(dataDir), nil)
	svc.SetProvider(provider)
	return svc, st
}

func TestGenerateForBusiness(t *testing.T) {
	provider := &stubProvider{reply: "Big launch copy.\nRationale: fits the voice\nMarketing Suggestions: run a teaser"}
	svc, _ := newTestService(t, provider)

	resp, err := svc.Generate(context.Background(), models.PromptRequest{
		Prompt:     "Write a launch post",
		BusinessID: "dimensions",
	})
	require.NoError(t, err)

	assert.Equal(t, "Big launch copy.", resp.GeneratedContent)
	assert.Equal(t, "fits the voice", resp.Rationale)
	assert.Equal(t, "run a teaser", resp.MarketingSuggestions)
	assert.NotZero(t, resp.ReadabilityScore.SentenceLength)

	require.NotNil(t, provider.lastReq)
	assert.Contains(t, provider.lastReq.Prompt, "- Voice: Warm")
	assert.Contains(t, provider.lastReq.Prompt, "User Request: Write a launch post")
	assert.Equal(t, llm.DefaultSystemPrompt, provider.lastReq.SystemPrompt)
}

func TestGenerateForClientUsesEffectiveRules(t *testing.T) {
	provider := &stubProvider{reply: "Copy.\nRationale: r\nMarketing Suggestions: s"}
	svc, st := newTestService(t, provider)

	client, err := st.CreateClient(models.ClientCreate{
		CompanyName:   "Acme",
		ContactPerson: "Ada",
		Email:         "ada@acme.example",
		PlanType:      "pro",
		BrandTone:     "Confident",
		AudienceType:  "B2B",
	})
	require.NoError(t, err)
	require.NoError(t, st.SetClientRules(client.ID, models.ContentRulesClient{Tone: "Bold"}))

	_, err = svc.Generate(context.Background(), models.PromptRequest{
		Prompt:   "Write a tagline",
		ClientID: &client.ID,
	})
	require.NoError(t, err)

	assert.Contains(t, provider.lastReq.Prompt, "Acme, a pro plan client")
	assert.Contains(t, provider.lastReq.Prompt, "- Tone: Bold")
	// Fields without an override fall back to the global defaults
	assert.Contains(t, provider.lastReq.Prompt, "- Audience: B2B")
}

func TestGenerateUnknownClient(t *testing.T) {
	svc, _ := newTestService(t, &stubProvider{reply: "x"})

	missing := 99
	_, err := svc.Generate(context.Background(), models.PromptRequest{Prompt: "p", ClientID: &missing})
	assert.ErrorIs(t, err, store.ErrClientNotFound)
}

func TestGenerateUnknownBusiness(t *testing.T) {
	svc, _ := newTestService(t, &stubProvider{reply: "x"})

	_, err := svc.Generate(context.Background(), models.PromptRequest{Prompt: "p", BusinessID: "nope"})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestGenerateMissingTarget(t *testing.T) {
	provider := &stubProvider{reply: "x"}
	svc, _ := newTestService(t, provider)

	_, err := svc.Generate(context.Background(), models.PromptRequest{Prompt: "p"})
	assert.ErrorIs(t, err, ErrMissingTarget)
	assert.Zero(t, provider.requests, "no completion call for an invalid request")
}

func TestGenerateUpstreamFailurePropagates(t *testing.T) {
	upstream := errors.New("completion service unavailable")
	svc, _ := newTestService(t, &stubProvider{err: upstream})

	_, err := svc.Generate(context.Background(), models.PromptRequest{Prompt: "p", BusinessID: "dimensions"})
	assert.ErrorIs(t, err, upstream)
}

func TestPreview(t *testing.T) {
	provider := &stubProvider{reply: "Preview copy.\nRationale: r\nMarketing Suggestions: s"}
	svc, _ := newTestService(t, provider)

	resp, err := svc.Preview(context.Background(), models.ContentPreviewRequest{
		Tone:     "Playful",
		Audience: "B2C",
	})
	require.NoError(t, err)

	assert.Equal(t, "Preview copy.", resp.GeneratedContent)
	assert.Equal(t, "Playful", resp.SettingsUsed["tone"])
	assert.Equal(t, "medium", resp.SettingsUsed["content_length"])
	assert.Equal(t, true, resp.SettingsUsed["marketing_suggestions"])
	assert.Contains(t, provider.lastReq.Prompt, "- Tone: Playful")
}
