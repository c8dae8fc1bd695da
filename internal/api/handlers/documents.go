package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/dimensions-ai/brandbot-api/internal/document"
	"github.com/dimensions-ai/brandbot-api/internal/logger"
	"github.com/dimensions-ai/brandbot-api/internal/models"
	"github.com/dimensions-ai/brandbot-api/internal/store"
	"github.com/gin-gonic/gin"
)

// DocumentsHandler manages per-client instruction documents.
type DocumentsHandler struct {
	store *store.Store
}

func NewDocumentsHandler(st *store.Store) *DocumentsHandler {
	return &DocumentsHandler{store: st}
}

// Upload attaches an instruction document to a client. The upload is
// decoded as UTF-8 with a Latin-1 fallback; binary content is rejected.
func (h *DocumentsHandler) Upload(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	text, err := document.Decode(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be decodable text, not binary content"})
		return
	}

	filename := fileHeader.Filename
	client, err := h.store.UpdateClient(id, models.ClientUpdate{
		InstructionDocument: &text,
		DocumentFilename:    &filename,
	})
	if errors.Is(err, store.ErrClientNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	if err != nil {
		logger.Error("Failed to store instruction document", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store instruction document"})
		return
	}

	logger.Info("Uploaded instruction document", logger.Fields{
		"client_id": client.ID,
		"filename":  filename,
		"bytes":     len(data),
	})
	c.JSON(http.StatusOK, gin.H{
		"message":           "Document uploaded successfully",
		"document_filename": filename,
	})
}

// Get returns a client's instruction document
func (h *DocumentsHandler) Get(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	client, err := h.store.GetClient(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	if client.InstructionDocument == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client has no instruction document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client_id":            client.ID,
		"instruction_document": *client.InstructionDocument,
		"document_filename":    client.DocumentFilename,
	})
}
