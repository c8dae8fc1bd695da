package prompt

import (
	"testing"

	"github.com/dimensions-ai/brandbot-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildBusinessPrompt(t *testing.T) {
	b := NewBuilder()
	profile := models.BusinessDNA{
		BrandVoice:       "Warm and direct",
		TargetAudience:   "Marketing teams",
		BrandPositioning: "Managed content partner",
		ToneGuide:        "Plain language",
	}

	out := b.BuildBusinessPrompt(profile, "Write a launch tweet")

	assert.Contains(t, out, "- Voice: Warm and direct")
	assert.Contains(t, out, "- Target Audience: Marketing teams")
	assert.Contains(t, out, "- Brand Positioning: Managed content partner")
	assert.Contains(t, out, "- Tone Guide: Plain language")
	assert.Contains(t, out, "User Request: Write a launch tweet")
	assert.Contains(t, out, "provide 2 marketing suggestions")
}

func TestBuildBusinessPromptEmptyProfileRendersNone(t *testing.T) {
	b := NewBuilder()

	out := b.BuildBusinessPrompt(models.BusinessDNA{}, "Write something")

	assert.Contains(t, out, "- Voice: None")
	assert.Contains(t, out, "- Tone Guide: None")
}

func TestBuildClientPrompt(t *testing.T) {
	b := NewBuilder()
	doc := "Always mention the free tier."
	client := models.Client{
		CompanyName:         "Acme",
		PlanType:            "pro",
		BrandTone:           "Confident",
		AudienceType:        "B2B",
		InstructionDocument: &doc,
	}
	rules := models.ContentRulesClient{
		Tone:              "Bold",
		Audience:          "Developers",
		ContentLength:     "short",
		MandatoryKeywords: []string{"fast", "reliable"},
	}

	out := b.BuildClientPrompt(client, rules, "Draft a newsletter intro")

	assert.Contains(t, out, "Acme, a pro plan client")
	assert.Contains(t, out, "- Tone: Bold")
	assert.Contains(t, out, "- Mandatory Keywords: fast, reliable")
	assert.Contains(t, out, "- Excluded Keywords: None")
	assert.Contains(t, out, "Always mention the free tier.")
	assert.Contains(t, out, "User Request: Draft a newsletter intro")
}

func TestBuildClientPromptWithoutDocument(t *testing.T) {
	b := NewBuilder()
	client := models.Client{CompanyName: "Acme", PlanType: "starter"}

	out := b.BuildClientPrompt(client, models.ContentRulesClient{}, "Hello")

	assert.NotContains(t, out, "Brand instruction document")
}

func TestBuildPreviewPrompt(t *testing.T) {
	b := NewBuilder()
	disabled := false

	out := b.BuildPreviewPrompt(models.ContentPreviewRequest{
		Tone:                 "Playful",
		Audience:             "B2C",
		ExcludedKeywords:     []string{"synergy"},
		MarketingSuggestions: &disabled,
	})

	assert.Contains(t, out, "- Tone: Playful")
	assert.Contains(t, out, "- Content Length: medium")
	assert.Contains(t, out, "- Excluded Keywords: synergy")
	assert.Contains(t, out, "- Marketing Suggestions: Disabled")
	assert.Contains(t, out, "User Request: Write a product description")
}
