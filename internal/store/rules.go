package store

import (
	"strconv"

	"github.com/dimensions-ai/brandbot-api/internal/models"
)

// LoadRules reads the rules document, resolving a missing or corrupt
// file to the built-in defaults.
func (s *Store) LoadRules() models.RulesDocument {
	var doc models.RulesDocument
	if !s.readJSON(s.rulesPath(), &doc) {
		return models.RulesDocument{
			GlobalRules: models.DefaultGlobalRules(),
			ClientRules: map[string]models.ContentRulesClient{},
		}
	}
	if doc.ClientRules == nil {
		doc.ClientRules = map[string]models.ContentRulesClient{}
	}
	if doc.GlobalRules.MandatoryKeywords == nil {
		doc.GlobalRules.MandatoryKeywords = []string{}
	}
	if doc.GlobalRules.ExcludedKeywords == nil {
		doc.GlobalRules.ExcludedKeywords = []string{}
	}
	return doc
}

func (s *Store) saveRules(doc models.RulesDocument) error {
	return s.writeJSON(s.rulesPath(), doc)
}

// UpdateGlobalRules shallow-merges the partial update into the global
// rules and persists the document. Nil fields are left unchanged.
func (s *Store) UpdateGlobalRules(update models.ContentRulesGlobalUpdate) (models.ContentRulesGlobal, error) {
	doc := s.LoadRules()

	if update.Enabled != nil {
		doc.GlobalRules.Enabled = *update.Enabled
	}
	if update.DefaultTone != nil {
		doc.GlobalRules.DefaultTone = *update.DefaultTone
	}
	if update.DefaultAudience != nil {
		doc.GlobalRules.DefaultAudience = *update.DefaultAudience
	}
	if update.MandatoryKeywords != nil {
		doc.GlobalRules.MandatoryKeywords = update.MandatoryKeywords
	}
	if update.ExcludedKeywords != nil {
		doc.GlobalRules.ExcludedKeywords = update.ExcludedKeywords
	}
	if update.DefaultContentLength != nil {
		doc.GlobalRules.DefaultContentLength = *update.DefaultContentLength
	}

	if err := s.saveRules(doc); err != nil {
		return models.ContentRulesGlobal{}, err
	}
	return doc.GlobalRules, nil
}

// SetClientRules assigns or overwrites the full rules override for a
// client.
func (s *Store) SetClientRules(id int, rules models.ContentRulesClient) error {
	doc := s.LoadRules()
	rules.ClientID = id
	doc.ClientRules[strconv.Itoa(id)] = rules
	return s.saveRules(doc)
}

// GetClientRules returns the rules override for a client, reporting
// whether one exists. Absence means "use global rules".
func (s *Store) GetClientRules(id int) (models.ContentRulesClient, bool) {
	doc := s.LoadRules()
	rules, ok := doc.ClientRules[strconv.Itoa(id)]
	return rules, ok
}

// EffectiveRules merges a client's override over the global defaults.
// Empty override fields fall back to the corresponding global value;
// clients without an override get the globals verbatim.
func (s *Store) EffectiveRules(id int) models.ContentRulesClient {
	doc := s.LoadRules()

	marketing := true
	effective := models.ContentRulesClient{
		ClientID:             id,
		Tone:                 doc.GlobalRules.DefaultTone,
		Audience:             doc.GlobalRules.DefaultAudience,
		MandatoryKeywords:    doc.GlobalRules.MandatoryKeywords,
		ExcludedKeywords:     doc.GlobalRules.ExcludedKeywords,
		ContentLength:        doc.GlobalRules.DefaultContentLength,
		MarketingSuggestions: &marketing,
	}

	override, ok := doc.ClientRules[strconv.Itoa(id)]
	if !ok {
		return effective
	}

	if override.Tone != "" {
		effective.Tone = override.Tone
	}
	if override.Audience != "" {
		effective.Audience = override.Audience
	}
	if len(override.MandatoryKeywords) > 0 {
		effective.MandatoryKeywords = override.MandatoryKeywords
	}
	if len(override.ExcludedKeywords) > 0 {
		effective.ExcludedKeywords = override.ExcludedKeywords
	}
	if override.ContentLength != "" {
		effective.ContentLength = override.ContentLength
	}
	if override.MarketingSuggestions != nil {
		effective.MarketingSuggestions = override.MarketingSuggestions
	}
	return effective
}
