package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dimensions-ai/brandbot-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir())
}

func createTestClient(t *testing.T, s *Store, company string) models.Client {
	t.Helper()
	client, err := s.CreateClient(models.ClientCreate{
		CompanyName:   company,
		ContactPerson: "Ada Lovelace",
		Email:         "ada@" + company + ".example",
		PlanType:      "pro",
		BrandTone:     "Confident",
		AudienceType:  "B2B",
	})
	require.NoError(t, err)
	return client
}

func TestCreateClientAssignsIncreasingIDs(t *testing.T) {
	s := newTestStore(t)

	first := createTestClient(t, s, "acme")
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "active", first.Status)
	assert.False(t, first.DateJoined.IsZero())
	assert.True(t, first.MarketingSuggestions)

	second := createTestClient(t, s, "globex")
	assert.Equal(t, 2, second.ID)

	// Deleting a lower id must not cause id reuse
	removed, err := s.DeleteClient(first.ID)
	require.NoError(t, err)
	require.True(t, removed)

	third := createTestClient(t, s, "initech")
	assert.Equal(t, 3, third.ID)
}

// newUnwritableStore roots a store at a path occupied by a regular file,
// so every write fails when the data directory cannot be created.
func newUnwritableStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(path, []byte("occupied"), 0o644))
	return New(path)
}

func TestCreateClientWriteFailurePropagates(t *testing.T) {
	s := newUnwritableStore(t)

	_, err := s.CreateClient(models.ClientCreate{
		CompanyName:   "acme",
		ContactPerson: "Ada Lovelace",
		Email:         "ada@acme.example",
		PlanType:      "pro",
		BrandTone:     "Confident",
		AudienceType:  "B2B",
	})
	assert.Error(t, err)
}

func TestUpdateClientPartialFields(t *testing.T) {
	s := newTestStore(t)
	client := createTestClient(t, s, "acme")
	require.Nil(t, client.LastActivity)

	tone := "Playful"
	updated, err := s.UpdateClient(client.ID, models.ClientUpdate{BrandTone: &tone})
	require.NoError(t, err)

	assert.Equal(t, "Playful", updated.BrandTone)
	assert.Equal(t, client.CompanyName, updated.CompanyName)
	assert.Equal(t, client.Email, updated.Email)
	assert.Equal(t, client.DateJoined.Unix(), updated.DateJoined.Unix())
	require.NotNil(t, updated.LastActivity)
}

func TestUpdateClientNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.UpdateClient(42, models.ClientUpdate{})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDeleteClient(t *testing.T) {
	s := newTestStore(t)
	client := createTestClient(t, s, "acme")

	removed, err := s.DeleteClient(client.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = s.GetClient(client.ID)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDeleteClientAbsentIsNoOp(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	createTestClient(t, s, "acme")

	info, err := os.Stat(filepath.Join(dir, clientsFile))
	require.NoError(t, err)
	before := info.ModTime()

	removed, err := s.DeleteClient(999)
	require.NoError(t, err)
	assert.False(t, removed)

	info, err = os.Stat(filepath.Join(dir, clientsFile))
	require.NoError(t, err)
	assert.Equal(t, before, info.ModTime(), "absent delete must not rewrite the file")
}

func TestSearchClientsQueryMatchesThreeFields(t *testing.T) {
	s := newTestStore(t)
	createTestClient(t, s, "acme")
	createTestClient(t, s, "globex")

	byCompany, total := s.SearchClients("ACME", "", "", 1, 10)
	assert.Equal(t, 1, total)
	require.Len(t, byCompany, 1)
	assert.Equal(t, "acme", byCompany[0].CompanyName)

	byEmail, total := s.SearchClients("ada@globex", "", "", 1, 10)
	assert.Equal(t, 1, total)
	require.Len(t, byEmail, 1)

	byContact, total := s.SearchClients("lovelace", "", "", 1, 10)
	assert.Equal(t, 2, total)
	assert.Len(t, byContact, 2)
}

func TestSearchClientsFilters(t *testing.T) {
	s := newTestStore(t)
	client := createTestClient(t, s, "acme")
	createTestClient(t, s, "globex")

	inactive := "inactive"
	_, err := s.UpdateClient(client.ID, models.ClientUpdate{Status: &inactive})
	require.NoError(t, err)

	results, total := s.SearchClients("", "PRO", "inactive", 1, 10)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, client.ID, results[0].ID)

	_, total = s.SearchClients("", "enterprise", "", 1, 10)
	assert.Zero(t, total)
}

func TestSearchClientsPagination(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 12; i++ {
		createTestClient(t, s, "acme")
	}

	page1, total := s.SearchClients("", "", "", 1, 10)
	assert.Equal(t, 12, total)
	assert.Len(t, page1, 10)

	page2, total := s.SearchClients("", "", "", 2, 10)
	assert.Equal(t, 12, total)
	assert.Len(t, page2, 2)
	assert.Equal(t, 11, page2[0].ID)

	beyond, total := s.SearchClients("", "", "", 5, 10)
	assert.Equal(t, 12, total)
	assert.Empty(t, beyond)
}

func TestSearchClientsCoercesInvalidPagination(t *testing.T) {
	s := newTestStore(t)
	createTestClient(t, s, "acme")
	createTestClient(t, s, "globex")

	results, total := s.SearchClients("", "", "", 0, -5)
	assert.Equal(t, 2, total)
	require.Len(t, results, 1, "page and pageSize are coerced to 1")
	assert.Equal(t, 1, results[0].ID)
}

func TestSearchClientsExcludesDocuments(t *testing.T) {
	s := newTestStore(t)
	client := createTestClient(t, s, "acme")

	doc := "never use passive voice"
	_, err := s.UpdateClient(client.ID, models.ClientUpdate{InstructionDocument: &doc})
	require.NoError(t, err)

	results, _ := s.SearchClients("", "", "", 1, 10)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].InstructionDocument)

	// The full record still carries the document
	full, err := s.GetClient(client.ID)
	require.NoError(t, err)
	require.NotNil(t, full.InstructionDocument)
	assert.Equal(t, doc, *full.InstructionDocument)
}

func TestListClientsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	created := createTestClient(t, s, "acme")

	loaded := s.ListClients(false)
	require.Len(t, loaded, 1)
	assert.Equal(t, created.ID, loaded[0].ID)
	assert.Equal(t, created.CompanyName, loaded[0].CompanyName)
	assert.Equal(t, created.DateJoined.Unix(), loaded[0].DateJoined.Unix())
}

func TestListClientsFailsOpenOnCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, clientsFile), []byte("{not json"), 0o644))

	s := New(dir)
	assert.Empty(t, s.ListClients(false))
}

func TestClientsFileIsIndentedJSON(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	createTestClient(t, s, "acme")

	data, err := os.ReadFile(filepath.Join(dir, clientsFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")

	var clients []models.Client
	require.NoError(t, json.Unmarshal(data, &clients))
	require.Len(t, clients, 1)
}
