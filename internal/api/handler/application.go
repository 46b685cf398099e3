package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janmeier/trackjob/internal/api/middleware"
	"github.com/janmeier/trackjob/internal/domain"
	"github.com/janmeier/trackjob/internal/repository"
	"github.com/janmeier/trackjob/internal/service"
)

// ApplicationHandler handles job application CRUD endpoints.
type ApplicationHandler struct {
	applications *service.ApplicationService
	documents    *service.DocumentService
}

// NewApplicationHandler creates a new application handler.
// Parameters:
//   - applications: application service instance.
//   - documents: document service, used to clean up attachments on delete.
// Returns:
//   - *ApplicationHandler: initialized handler.
func NewApplicationHandler(applications *service.ApplicationService, documents *service.DocumentService) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		documents:    documents,
	}
}

// List handles GET /api/v1/applications.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ApplicationHandler) List(c *gin.Context) {
	records, err := h.applications.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list applications: " + err.Error(),
		})
		return
	}
	if records == nil {
		records = []domain.JobApplication{}
	}
	c.JSON(http.StatusOK, gin.H{
		"applications": records,
		"total":        len(records),
	})
}

// Get handles GET /api/v1/applications/:id.
func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.applications.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load application: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, app)
}

// Create handles POST /api/v1/applications.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var app domain.JobApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := h.applications.Create(c.Request.Context(), middleware.UserID(c), &app); err != nil {
		if errors.Is(err, service.ErrInvalidApplication) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create application: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// Update handles PUT /api/v1/applications/:id.
func (h *ApplicationHandler) Update(c *gin.Context) {
	var app domain.JobApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}
	app.ID = c.Param("id")

	if err := h.applications.Update(c.Request.Context(), middleware.UserID(c), &app); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidApplication):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to update application: " + err.Error(),
			})
		}
		return
	}
	c.JSON(http.StatusOK, app)
}

// Delete handles DELETE /api/v1/applications/:id. Stored attachments are
// removed along with the record.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)
	app, err := h.applications.Get(c.Request.Context(), userID, c.Param("id"))
	if err == nil {
		h.documents.Cleanup(c.Request.Context(), app)
	}

	if err := h.applications.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete application: " + err.Error(),
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// Autocomplete handles GET /api/v1/autocomplete.
func (h *ApplicationHandler) Autocomplete(c *gin.Context) {
	data, err := h.applications.Autocomplete(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load autocomplete data: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, data)
}

// NextIncomplete handles GET /api/v1/applications/incomplete/next.
// The exclude query parameter skips the record currently being edited.
func (h *ApplicationHandler) NextIncomplete(c *gin.Context) {
	next, remaining, err := h.applications.NextIncomplete(
		c.Request.Context(), middleware.UserID(c), c.Query("exclude"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to scan applications: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"application": next,
		"remaining":   remaining,
	})
}
