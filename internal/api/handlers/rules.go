package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/dimensions-ai/brandbot-api/internal/logger"
	"github.com/dimensions-ai/brandbot-api/internal/models"
	"github.com/dimensions-ai/brandbot-api/internal/services"
	"github.com/dimensions-ai/brandbot-api/internal/store"
	"github.com/gin-gonic/gin"
)

// RulesHandler serves the content rules admin endpoints.
type RulesHandler struct {
	store *store.Store
	svc   *services.GenerationService
}

func NewRulesHandler(st *store.Store, svc *services.GenerationService) *RulesHandler {
	return &RulesHandler{store: st, svc: svc}
}

// Get returns the global rules and all client overrides
func (h *RulesHandler) Get(c *gin.Context) {
	doc := h.store.LoadRules()

	clientRules := make([]models.ContentRulesClient, 0, len(doc.ClientRules))
	for idStr, rules := range doc.ClientRules {
		if id, err := strconv.Atoi(idStr); err == nil {
			rules.ClientID = id
		}
		clientRules = append(clientRules, rules)
	}
	sort.Slice(clientRules, func(i, j int) bool {
		return clientRules[i].ClientID < clientRules[j].ClientID
	})

	c.JSON(http.StatusOK, models.ContentRulesResponse{
		GlobalRules: doc.GlobalRules,
		ClientRules: clientRules,
	})
}

// UpdateGlobal shallow-merges a partial update into the global rules
func (h *RulesHandler) UpdateGlobal(c *gin.Context) {
	var update models.ContentRulesGlobalUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rules, err := h.store.UpdateGlobalRules(update)
	if err != nil {
		logger.Error("Failed to update global content rules", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update global content rules"})
		return
	}

	logger.Info("Updated global content rules", nil)
	c.JSON(http.StatusOK, gin.H{
		"message":      "Global content rules updated successfully",
		"global_rules": rules,
	})
}

// UpdateClient assigns the full rules override for a client
func (h *RulesHandler) UpdateClient(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	if _, err := h.store.GetClient(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var rules models.ContentRulesClient
	if err := c.ShouldBindJSON(&rules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.SetClientRules(id, rules); err != nil {
		logger.Error("Failed to update client content rules", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client content rules"})
		return
	}

	logger.Info("Updated content rules for client", logger.Fields{"client_id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Content rules updated for client " + strconv.Itoa(id)})
}

// Preview generates content against ad-hoc rule settings
func (h *RulesHandler) Preview(c *gin.Context) {
	var req models.ContentPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.svc.Preview(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to generate content preview", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate content preview"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
