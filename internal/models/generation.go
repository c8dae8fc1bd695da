package models

// PromptRequest asks for content generation against either a stored
// client (client_id) or a legacy business DNA profile (business_id).
type PromptRequest struct {
	Prompt     string `json:"prompt" binding:"required"`
	BusinessID string `json:"business_id"`
	ClientID   *int   `json:"client_id"`
}

// ReadabilityScore summarizes how readable the generated content is.
type ReadabilityScore struct {
	GradeLevel     float64 `json:"grade_level"`
	SentenceLength float64 `json:"sentence_length"`
}

// GenerateResponse is the three-section generation result.
type GenerateResponse struct {
	GeneratedContent     string           `json:"generated_content"`
	Rationale            string           `json:"rationale"`
	MarketingSuggestions string           `json:"marketing_suggestions"`
	ReadabilityScore     ReadabilityScore `json:"readability_score"`
}

// ContentPreviewRequest tests generation against ad-hoc rule settings
// without touching stored rules.
type ContentPreviewRequest struct {
	Tone                 string   `json:"tone" binding:"required"`
	Audience             string   `json:"audience" binding:"required"`
	MandatoryKeywords    []string `json:"mandatory_keywords"`
	ExcludedKeywords     []string `json:"excluded_keywords"`
	ContentLength        string   `json:"content_length"`
	MarketingSuggestions *bool    `json:"marketing_suggestions"`
	SamplePrompt         string   `json:"sample_prompt"`
}

// ContentPreviewResponse echoes the settings alongside the preview text.
type ContentPreviewResponse struct {
	GeneratedContent string                 `json:"generated_content"`
	SettingsUsed     map[string]interface{} `json:"settings_used"`
}
