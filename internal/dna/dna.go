// Package dna loads the read-only business DNA profiles used for legacy
// business-id content generation.
package dna

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/dimensions-ai/brandbot-api/internal/models"
)

const dnaFile = "business_dna.json"

// Loader reads business DNA profiles from a JSON map keyed by business id.
type Loader struct {
	path string
}

// New creates a loader for the DNA file under dataDir.
func New(dataDir string) *Loader {
	return &Loader{path: filepath.Join(dataDir, dnaFile)}
}

func (l *Loader) load() (map[string]models.BusinessDNA, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}
	var profiles map[string]models.BusinessDNA
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Lookup returns the DNA profile for a business id, reporting whether it
// exists. A missing or unreadable file counts as "not found".
func (l *Loader) Lookup(businessID string) (models.BusinessDNA, bool) {
	profiles, err := l.load()
	if err != nil {
		return models.BusinessDNA{}, false
	}
	profile, ok := profiles[businessID]
	return profile, ok
}

// ListIDs returns the available business ids in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	profiles, err := l.load()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(profiles))
	for id := range profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
