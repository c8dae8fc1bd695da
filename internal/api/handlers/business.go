package handlers

import (
	"net/http"

	"github.com/dimensions-ai/brandbot-api/internal/dna"
	"github.com/dimensions-ai/brandbot-api/internal/logger"
	"github.com/gin-gonic/gin"
)

// BusinessHandler serves the read-only business DNA profiles.
type BusinessHandler struct {
	dna *dna.Loader
}

func NewBusinessHandler(loader *dna.Loader) *BusinessHandler {
	return &BusinessHandler{dna: loader}
}

// List returns the available business ids
func (h *BusinessHandler) List(c *gin.Context) {
	ids, err := h.dna.ListIDs()
	if err != nil {
		logger.Error("Failed to read business DNA", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read business configurations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available_business_ids": ids})
}

// Get returns the DNA profile for one business id
func (h *BusinessHandler) Get(c *gin.Context) {
	businessID := c.Param("business_id")
	profile, ok := h.dna.Lookup(businessID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business ID '" + businessID + "' not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"business_id": businessID, "dna": profile})
}
