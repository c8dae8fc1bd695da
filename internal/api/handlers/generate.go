package handlers

import (
	"errors"
	"net/http"

	"github.com/dimensions-ai/brandbot-api/internal/logger"
	"github.com/dimensions-ai/brandbot-api/internal/models"
	"github.com/dimensions-ai/brandbot-api/internal/services"
	"github.com/dimensions-ai/brandbot-api/internal/store"
	"github.com/gin-gonic/gin"
)

// GenerateHandler serves the content generation endpoint.
type GenerateHandler struct {
	svc *services.GenerationService
}

func NewGenerateHandler(svc *services.GenerationService) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

// Generate produces the three-section content response for a client id
// or a legacy business id.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req models.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.svc.Generate(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrMissingTarget):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrBusinessNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Business ID '" + req.BusinessID + "' not found"})
	case errors.Is(err, store.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
	case err != nil:
		logger.Error("Content generation failed", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate content"})
	default:
		c.JSON(http.StatusOK, resp)
	}
}
