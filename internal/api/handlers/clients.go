package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dimensions-ai/brandbot-api/internal/logger"
	"github.com/dimensions-ai/brandbot-api/internal/models"
	"github.com/dimensions-ai/brandbot-api/internal/store"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 10

// ClientsHandler serves the admin client CRUD endpoints.
type ClientsHandler struct {
	store *store.Store
}

func NewClientsHandler(st *store.Store) *ClientsHandler {
	return &ClientsHandler{store: st}
}

// List searches and paginates the client collection. Invalid pagination
// input is coerced rather than rejected.
func (h *ClientsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	clients, total := h.store.SearchClients(
		c.Query("search"),
		c.Query("plan_type"),
		c.Query("status"),
		page, pageSize,
	)

	c.JSON(http.StatusOK, models.ClientPage{
		Clients:  clients,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Create adds a new client
func (h *ClientsHandler) Create(c *gin.Context) {
	var create models.ClientCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.store.CreateClient(create)
	if err != nil {
		logger.Error("Failed to create client", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}

	logger.Info("Created new client", logger.Fields{"client_id": client.ID, "company": client.CompanyName})
	c.JSON(http.StatusOK, client)
}

// Get returns a single client by id, including its instruction document
func (h *ClientsHandler) Get(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	client, err := h.store.GetClient(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// Update applies a partial update to a client
func (h *ClientsHandler) Update(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	var update models.ClientUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.store.UpdateClient(id, update)
	if errors.Is(err, store.ErrClientNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	if err != nil {
		logger.Error("Failed to update client", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}

	logger.Info("Updated client", logger.Fields{"client_id": client.ID})
	c.JSON(http.StatusOK, client)
}

// Delete removes a client by id
func (h *ClientsHandler) Delete(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	removed, err := h.store.DeleteClient(id)
	if err != nil {
		logger.Error("Failed to delete client", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	logger.Info("Deleted client", logger.Fields{"client_id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

// clientID parses the :id path parameter, writing a 400 when invalid.
func clientID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client id"})
		return 0, false
	}
	return id, true
}
