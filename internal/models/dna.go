package models

// BusinessDNA is a named brand profile used for legacy business-id
// generation. Profiles live in a read-only JSON map keyed by business id.
type BusinessDNA struct {
	BrandVoice       string `json:"brand_voice"`
	TargetAudience   string `json:"target_audience"`
	BrandPositioning string `json:"brand_positioning"`
	ToneGuide        string `json:"tone_guide"`
}
