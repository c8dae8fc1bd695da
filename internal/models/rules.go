package models

// ContentRulesGlobal holds the default generation constraints applied to
// every client that has no override of its own.
type ContentRulesGlobal struct {
	Enabled              bool     `json:"enabled"`
	DefaultTone          string   `json:"default_tone"`
	DefaultAudience      string   `json:"default_audience"`
	MandatoryKeywords    []string `json:"mandatory_keywords"`
	ExcludedKeywords     []string `json:"excluded_keywords"`
	DefaultContentLength string   `json:"default_content_length"`
}

// DefaultGlobalRules returns the built-in rules used when no rules file
// exists or it cannot be read.
func DefaultGlobalRules() ContentRulesGlobal {
	return ContentRulesGlobal{
		Enabled:              true,
		DefaultTone:          "Professional",
		DefaultAudience:      "B2B",
		MandatoryKeywords:    []string{},
		ExcludedKeywords:     []string{},
		DefaultContentLength: "medium",
	}
}

// ContentRulesGlobalUpdate is a partial update of the global rules.
// Nil fields are left unchanged.
type ContentRulesGlobalUpdate struct {
	Enabled              *bool    `json:"enabled"`
	DefaultTone          *string  `json:"default_tone"`
	DefaultAudience      *string  `json:"default_audience"`
	MandatoryKeywords    []string `json:"mandatory_keywords"`
	ExcludedKeywords     []string `json:"excluded_keywords"`
	DefaultContentLength *string  `json:"default_content_length"`
}

// ContentRulesClient is a per-client rules override. Empty fields fall
// back to the global rules; a nil MarketingSuggestions keeps the default
// (enabled).
type ContentRulesClient struct {
	ClientID             int      `json:"client_id"`
	Tone                 string   `json:"tone,omitempty"`
	Audience             string   `json:"audience,omitempty"`
	MandatoryKeywords    []string `json:"mandatory_keywords"`
	ExcludedKeywords     []string `json:"excluded_keywords"`
	ContentLength        string   `json:"content_length,omitempty"`
	MarketingSuggestions *bool    `json:"marketing_suggestions,omitempty"`
}

// RulesDocument is the on-disk shape of content_rules.json. Client
// overrides are keyed by stringified client id.
type RulesDocument struct {
	GlobalRules ContentRulesGlobal            `json:"global_rules"`
	ClientRules map[string]ContentRulesClient `json:"client_rules"`
}

// ContentRulesResponse is the API view of the rules document.
type ContentRulesResponse struct {
	GlobalRules ContentRulesGlobal   `json:"global_rules"`
	ClientRules []ContentRulesClient `json:"client_rules"`
}
