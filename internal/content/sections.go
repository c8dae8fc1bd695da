// Package content post-processes raw completion text into the three
// sections the API returns.
package content

import "strings"

const (
	rationaleMarker   = "Rationale:"
	suggestionsMarker = "Marketing Suggestions:"

	// notAvailable stands in for a section the model did not emit.
	notAvailable = "Not available"
)

// Sections is the parsed three-part completion output.
type Sections struct {
	Content     string
	Rationale   string
	Suggestions string
}

// ExtractSections splits raw completion text on the literal section
// markers. The parse is order-dependent and depends entirely on the model
// echoing the markers verbatim: without "Rationale:" the whole text is
// returned as content, and without "Marketing Suggestions:" the
// suggestions section is reported as unavailable.
func ExtractSections(raw string) Sections {
	before, after, found := strings.Cut(raw, rationaleMarker)
	if !found {
		return Sections{
			Content:     raw,
			Rationale:   notAvailable,
			Suggestions: notAvailable,
		}
	}

	sections := Sections{Content: strings.TrimSpace(before)}

	rationale, suggestions, found := strings.Cut(after, suggestionsMarker)
	sections.Rationale = strings.TrimSpace(rationale)
	if found {
		sections.Suggestions = strings.TrimSpace(suggestions)
	} else {
		sections.Suggestions = notAvailable
	}
	return sections
}
