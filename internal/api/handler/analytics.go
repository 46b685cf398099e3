package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janmeier/trackjob/internal/api/middleware"
	"github.com/janmeier/trackjob/internal/domain"
	"github.com/janmeier/trackjob/internal/service"
)

// AnalyticsHandler handles timeline and cohort analytics endpoints.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
// Parameters:
//   - analytics: analytics service instance.
// Returns:
//   - *AnalyticsHandler: initialized handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
	}
}

// referenceDate resolves the optional as_of query parameter, defaulting
// to today. All analytics endpoints accept it so results are reproducible.
func referenceDate(c *gin.Context) (domain.Date, error) {
	value := c.Query("as_of")
	if value == "" {
		return domain.Today(), nil
	}
	return domain.ParseDate(value)
}

// Daily handles GET /api/v1/analytics/daily.
func (h *AnalyticsHandler) Daily(c *gin.Context) {
	reference, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series, err := h.analytics.Daily(c.Request.Context(), middleware.UserID(c), reference)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute daily metrics: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"days":  series,
		"total": len(series),
	})
}

// Summary handles GET /api/v1/analytics/summary.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	reference, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.analytics.Summary(c.Request.Context(), middleware.UserID(c), reference)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute summary: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Companies handles GET /api/v1/analytics/companies.
func (h *AnalyticsHandler) Companies(c *gin.Context) {
	rows, err := h.analytics.Companies(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute company stats: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": rows})
}

// Areas handles GET /api/v1/analytics/areas.
func (h *AnalyticsHandler) Areas(c *gin.Context) {
	rows, err := h.analytics.Areas(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute area stats: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": rows})
}

// Incomplete handles GET /api/v1/analytics/incomplete.
func (h *AnalyticsHandler) Incomplete(c *gin.Context) {
	records, err := h.analytics.Incomplete(
		c.Request.Context(), middleware.UserID(c), c.Query("exclude"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to scan applications: " + err.Error(),
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

// Calendar handles GET /api/v1/analytics/calendar?month=YYYY-MM.
func (h *AnalyticsHandler) Calendar(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = domain.Today().Format("2006-01")
	}

	days, err := h.analytics.Calendar(c.Request.Context(), middleware.UserID(c), month)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build calendar: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"month": month,
		"days":  days,
	})
}
