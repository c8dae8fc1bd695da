// Package prompt assembles completion prompts from brand profiles and
// content rules. User input is embedded verbatim - nothing is escaped, so
// delimiter-like text in a request can bleed into the section markers the
// splitter relies on.
package prompt

import (
	"fmt"
	"strings"

	"github.com/dimensions-ai/brandbot-api/internal/models"
)

// sectionInstruction is the fixed trailer that makes the model emit the
// three sections the splitter expects.
const sectionInstruction = "Generate a response that aligns with the above. " +
	"Then explain your choices in a rationale and provide 2 marketing suggestions."

// Builder composes prompts for the completion service.
type Builder struct{}

// NewBuilder creates a prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildBusinessPrompt embeds a business DNA profile as bullet context
// ahead of the user's request. Empty profile fields render as "None".
func (b *Builder) BuildBusinessPrompt(profile models.BusinessDNA, userRequest string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert content writer for a brand with the following traits:\n")
	fmt.Fprintf(&sb, "- Voice: %s\n", orNone(profile.BrandVoice))
	fmt.Fprintf(&sb, "- Target Audience: %s\n", orNone(profile.TargetAudience))
	fmt.Fprintf(&sb, "- Brand Positioning: %s\n", orNone(profile.BrandPositioning))
	fmt.Fprintf(&sb, "- Tone Guide: %s\n\n", orNone(profile.ToneGuide))
	fmt.Fprintf(&sb, "User Request: %s\n\n", userRequest)
	sb.WriteString(sectionInstruction)
	return sb.String()
}

// BuildClientPrompt embeds a stored client profile plus its effective
// content rules, and the client's instruction document when present.
func (b *Builder) BuildClientPrompt(client models.Client, rules models.ContentRulesClient, userRequest string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert content writer for %s, a %s plan client with the following brand profile:\n",
		client.CompanyName, client.PlanType)
	fmt.Fprintf(&sb, "- Brand Tone: %s\n", orNone(client.BrandTone))
	fmt.Fprintf(&sb, "- Audience Type: %s\n\n", orNone(client.AudienceType))

	sb.WriteString("Content rules for this client:\n")
	fmt.Fprintf(&sb, "- Tone: %s\n", orNone(rules.Tone))
	fmt.Fprintf(&sb, "- Audience: %s\n", orNone(rules.Audience))
	fmt.Fprintf(&sb, "- Content Length: %s\n", orNone(rules.ContentLength))
	fmt.Fprintf(&sb, "- Mandatory Keywords: %s\n", joinOrNone(rules.MandatoryKeywords))
	fmt.Fprintf(&sb, "- Excluded Keywords: %s\n\n", joinOrNone(rules.ExcludedKeywords))

	if client.InstructionDocument != nil && *client.InstructionDocument != "" {
		sb.WriteString("Brand instruction document:\n")
		sb.WriteString(*client.InstructionDocument)
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, "User Request: %s\n\n", userRequest)
	sb.WriteString(sectionInstruction)
	return sb.String()
}

// BuildPreviewPrompt composes the ad-hoc rules preview prompt.
func (b *Builder) BuildPreviewPrompt(req models.ContentPreviewRequest) string {
	marketing := "Disabled"
	if req.MarketingSuggestions == nil || *req.MarketingSuggestions {
		marketing = "Enabled"
	}
	samplePrompt := req.SamplePrompt
	if samplePrompt == "" {
		samplePrompt = "Write a product description"
	}
	contentLength := req.ContentLength
	if contentLength == "" {
		contentLength = "medium"
	}

	var sb strings.Builder
	sb.WriteString("Generate content with the following specifications:\n")
	fmt.Fprintf(&sb, "- Tone: %s\n", req.Tone)
	fmt.Fprintf(&sb, "- Audience: %s\n", req.Audience)
	fmt.Fprintf(&sb, "- Content Length: %s\n", contentLength)
	fmt.Fprintf(&sb, "- Mandatory Keywords: %s\n", joinOrNone(req.MandatoryKeywords))
	fmt.Fprintf(&sb, "- Excluded Keywords: %s\n", joinOrNone(req.ExcludedKeywords))
	fmt.Fprintf(&sb, "- Marketing Suggestions: %s\n\n", marketing)
	fmt.Fprintf(&sb, "User Request: %s\n\n", samplePrompt)
	sb.WriteString(sectionInstruction)
	return sb.String()
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
