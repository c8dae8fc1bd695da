package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSections(t *testing.T) {
	s := ExtractSections("Hello\nRationale: because\nMarketing Suggestions: try X")

	assert.Equal(t, "Hello", s.Content)
	assert.Equal(t, "because", s.Rationale)
	assert.Equal(t, "try X", s.Suggestions)
}

func TestExtractSectionsNoRationaleMarker(t *testing.T) {
	raw := "Just some prose with no markers at all."
	s := ExtractSections(raw)

	assert.Equal(t, raw, s.Content)
	assert.Equal(t, "Not available", s.Rationale)
	assert.Equal(t, "Not available", s.Suggestions)
}

func TestExtractSectionsNoSuggestionsMarker(t *testing.T) {
	s := ExtractSections("Body text\nRationale: it fits the brief")

	assert.Equal(t, "Body text", s.Content)
	assert.Equal(t, "it fits the brief", s.Rationale)
	assert.Equal(t, "Not available", s.Suggestions)
}

func TestExtractSectionsSplitsOnFirstMarkerOnly(t *testing.T) {
	s := ExtractSections("A\nRationale: first\nRationale: second\nMarketing Suggestions: x")

	assert.Equal(t, "A", s.Content)
	assert.Equal(t, "first\nRationale: second", s.Rationale)
	assert.Equal(t, "x", s.Suggestions)
}

func TestExtractSectionsMarkerIsCaseSensitive(t *testing.T) {
	raw := "Text\nrationale: lowercase marker is not recognized"
	s := ExtractSections(raw)

	assert.Equal(t, raw, s.Content)
	assert.Equal(t, "Not available", s.Rationale)
}
