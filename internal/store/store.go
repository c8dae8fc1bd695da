// Package store persists clients and content rules as flat JSON files.
//
// Every operation follows the same discipline: read the entire document,
// mutate it in memory, write the entire document back. There is no file
// locking - concurrent writers race and the last write wins. Reads fail
// open (missing or corrupt files resolve to an empty collection or the
// default rules) while write errors always propagate to the caller.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/dimensions-ai/brandbot-api/internal/logger"
)

const (
	clientsFile      = "clients.json"
	contentRulesFile = "content_rules.json"

	fileMode = 0o644
	dirMode  = 0o755
)

// ErrClientNotFound is returned when no client matches the requested id.
var ErrClientNotFound = errors.New("client not found")

// Store reads and writes the JSON documents under a data directory.
type Store struct {
	dataDir string
}

// New creates a store rooted at dataDir. The directory is created lazily
// on the first write.
func New(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

func (s *Store) clientsPath() string {
	return filepath.Join(s.dataDir, clientsFile)
}

func (s *Store) rulesPath() string {
	return filepath.Join(s.dataDir, contentRulesFile)
}

// writeJSON marshals v with 2-space indentation and writes it to path,
// creating the data directory if needed.
func (s *Store) writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(s.dataDir, dirMode); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, fileMode)
}

// readJSON reads path into v. It reports whether the read succeeded;
// callers substitute their default value when it did not.
func (s *Store) readJSON(path string, v interface{}) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read data file", logger.Fields{"path": path, "error": err.Error()})
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn("Failed to parse data file", logger.Fields{"path": path, "error": err.Error()})
		return false
	}
	return true
}
