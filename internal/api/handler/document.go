package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janmeier/trackjob/internal/api/middleware"
	"github.com/janmeier/trackjob/internal/repository"
	"github.com/janmeier/trackjob/internal/service"
)

// maxDocumentSize caps uploads at 10 MB.
const maxDocumentSize = 10 << 20

// DocumentHandler handles CV and cover-letter upload endpoints.
type DocumentHandler struct {
	documents *service.DocumentService
}

// NewDocumentHandler creates a new document handler.
// Parameters:
//   - documents: document service instance.
// Returns:
//   - *DocumentHandler: initialized handler.
func NewDocumentHandler(documents *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
	}
}

// Upload handles POST /api/v1/applications/:id/documents/:kind.
// The request is a multipart form with a single "file" field; kind is
// "cv" or "cover_letter".
func (h *DocumentHandler) Upload(c *gin.Context) {
	kind := service.DocumentKind(c.Param("kind"))
	if kind != service.DocumentCV && kind != service.DocumentCoverLetter {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document kind"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing file field: " + err.Error(),
		})
		return
	}
	if fileHeader.Size > maxDocumentSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to read upload: " + err.Error(),
		})
		return
	}
	defer file.Close()

	url, err := h.documents.Attach(
		c.Request.Context(), middleware.UserID(c), c.Param("id"),
		kind, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDocument):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to store document: " + err.Error(),
			})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"url":       url,
		"file_name": fileHeader.Filename,
	})
}
