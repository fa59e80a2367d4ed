package handlers

import (
	"errors"
	"net/http"

	"guidely/models"
	"guidely/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes calendar-edit operations on a provider's
// availability document.
type AvailabilityHandler struct {
	Svc availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// GetAvailabilityHandler handles GET /applications/:id/availability.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	cal, err := h.Svc.GetCalendar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

// ReplaceAvailabilityHandler handles PUT /applications/:id/availability,
// a whole-document overwrite, not a patch.
func (h *AvailabilityHandler) ReplaceAvailabilityHandler(c *gin.Context) {
	var input models.AvailabilityCalendar
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cal, err := h.Svc.ReplaceCalendar(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

// BulkSetDaysHandler handles POST /applications/:id/availability/days. Each
// malformed date is reported individually; the rest of the batch applies.
func (h *AvailabilityHandler) BulkSetDaysHandler(c *gin.Context) {
	var input struct {
		Days []models.DaySchedule `json:"days"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if len(input.Days) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no days supplied"})
		return
	}

	result, err := h.Svc.BulkSetDays(c.Request.Context(), c.Param("id"), input.Days)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ApplyPatternHandler handles POST /applications/:id/availability/patterns.
func (h *AvailabilityHandler) ApplyPatternHandler(c *gin.Context) {
	var input struct {
		DayOfWeek   int    `json:"dayOfWeek"`
		WindowStart string `json:"windowStart"`
		WindowEnd   string `json:"windowEnd"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cal, err := h.Svc.ApplyRecurringPattern(c.Request.Context(), c.Param("id"), input.DayOfWeek, input.WindowStart, input.WindowEnd)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

// AddUnavailablePeriodHandler handles POST /applications/:id/availability/unavailable-periods.
func (h *AvailabilityHandler) AddUnavailablePeriodHandler(c *gin.Context) {
	var input struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
		Reason    string `json:"reason,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cal, err := h.Svc.AddUnavailablePeriod(c.Request.Context(), c.Param("id"), input.StartDate, input.EndDate, input.Reason)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

// ClearScheduleHandler handles DELETE /applications/:id/availability/days.
func (h *AvailabilityHandler) ClearScheduleHandler(c *gin.Context) {
	cal, err := h.Svc.ClearSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

func respondAvailabilityError(c *gin.Context, err error) {
	var (
		invalidDateErr *availability.InvalidDateError
		validationErr  *availability.ValidationError
	)

	switch {
	case errors.As(err, &invalidDateErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidDateErr.Error(), "date": invalidDateErr.Date})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	default:
		getLogger(c).Error("availability operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
