package store

import (
	"strings"
	"time"

	"github.com/dimensions-ai/brandbot-api/internal/models"
)

// loadClients reads the full client collection. Missing or corrupt files
// resolve to an empty collection.
func (s *Store) loadClients() []models.Client {
	var clients []models.Client
	if !s.readJSON(s.clientsPath(), &clients) {
		return []models.Client{}
	}
	return clients
}

func (s *Store) saveClients(clients []models.Client) error {
	return s.writeJSON(s.clientsPath(), clients)
}

// ListClients returns all clients. When excludeDocuments is set the large
// instruction_document field is stripped from each record, which keeps
// list views cheap.
func (s *Store) ListClients(excludeDocuments bool) []models.Client {
	clients := s.loadClients()
	if !excludeDocuments {
		return clients
	}
	stripped := make([]models.Client, len(clients))
	for i, c := range clients {
		c.InstructionDocument = nil
		stripped[i] = c
	}
	return stripped
}

// SearchClients filters the collection and returns one page plus the
// pre-pagination total. The query matches company name, contact person
// and email as a case-insensitive substring; plan and status filters are
// exact case-insensitive matches. Invalid page or pageSize values are
// coerced to 1 rather than rejected.
func (s *Store) SearchClients(query, planFilter, statusFilter string, page, pageSize int) ([]models.Client, int) {
	clients := s.ListClients(true)

	if query != "" {
		q := strings.ToLower(query)
		matched := clients[:0]
		for _, c := range clients {
			if strings.Contains(strings.ToLower(c.CompanyName), q) ||
				strings.Contains(strings.ToLower(c.ContactPerson), q) ||
				strings.Contains(strings.ToLower(c.Email), q) {
				matched = append(matched, c)
			}
		}
		clients = matched
	}

	if planFilter != "" {
		matched := clients[:0]
		for _, c := range clients {
			if strings.EqualFold(c.PlanType, planFilter) {
				matched = append(matched, c)
			}
		}
		clients = matched
	}

	if statusFilter != "" {
		matched := clients[:0]
		for _, c := range clients {
			if strings.EqualFold(c.Status, statusFilter) {
				matched = append(matched, c)
			}
		}
		clients = matched
	}

	total := len(clients)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	start := (page - 1) * pageSize
	if start >= total {
		return []models.Client{}, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return clients[start:end], total
}

// CreateClient assigns the next id (max existing + 1, or 1 for an empty
// collection), stamps date_joined and appends the record.
func (s *Store) CreateClient(create models.ClientCreate) (models.Client, error) {
	clients := s.loadClients()

	nextID := 1
	for _, c := range clients {
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
	}

	marketingSuggestions := true
	if create.MarketingSuggestions != nil {
		marketingSuggestions = *create.MarketingSuggestions
	}

	client := models.Client{
		ID:                   nextID,
		CompanyName:          create.CompanyName,
		ContactPerson:        create.ContactPerson,
		Email:                create.Email,
		PlanType:             create.PlanType,
		BrandTone:            create.BrandTone,
		AudienceType:         create.AudienceType,
		MarketingSuggestions: marketingSuggestions,
		Status:               "active",
		DateJoined:           time.Now(),
		InstructionDocument:  create.InstructionDocument,
		DocumentFilename:     create.DocumentFilename,
	}

	clients = append(clients, client)
	if err := s.saveClients(clients); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

// UpdateClient applies a partial update to the matching record. Nil
// fields are left unchanged; last_activity is always refreshed.
func (s *Store) UpdateClient(id int, update models.ClientUpdate) (models.Client, error) {
	clients := s.loadClients()
	for i := range clients {
		if clients[i].ID != id {
			continue
		}
		applyClientUpdate(&clients[i], update)
		now := time.Now()
		clients[i].LastActivity = &now
		if err := s.saveClients(clients); err != nil {
			return models.Client{}, err
		}
		return clients[i], nil
	}
	return models.Client{}, ErrClientNotFound
}

func applyClientUpdate(c *models.Client, update models.ClientUpdate) {
	if update.CompanyName != nil {
		c.CompanyName = *update.CompanyName
	}
	if update.ContactPerson != nil {
		c.ContactPerson = *update.ContactPerson
	}
	if update.Email != nil {
		c.Email = *update.Email
	}
	if update.PlanType != nil {
		c.PlanType = *update.PlanType
	}
	if update.BrandTone != nil {
		c.BrandTone = *update.BrandTone
	}
	if update.AudienceType != nil {
		c.AudienceType = *update.AudienceType
	}
	if update.MarketingSuggestions != nil {
		c.MarketingSuggestions = *update.MarketingSuggestions
	}
	if update.Status != nil {
		c.Status = *update.Status
	}
	if update.InstructionDocument != nil {
		c.InstructionDocument = update.InstructionDocument
	}
	if update.DocumentFilename != nil {
		c.DocumentFilename = update.DocumentFilename
	}
}

// DeleteClient removes the matching record. It reports whether a record
// was removed; nothing is written when the id is absent.
func (s *Store) DeleteClient(id int) (bool, error) {
	clients := s.loadClients()
	remaining := clients[:0]
	for _, c := range clients {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(clients) {
		return false, nil
	}
	if err := s.saveClients(remaining); err != nil {
		return false, err
	}
	return true, nil
}

// GetClient returns the client with the given id.
func (s *Store) GetClient(id int) (models.Client, error) {
	for _, c := range s.loadClients() {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Client{}, ErrClientNotFound
}
