package handlers

import (
	"errors"
	"net/http"

	bookingRepo "guidely/database/repository/booking"
	"guidely/models"
	"guidely/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the availability & booking manager over HTTP.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := h.Svc.CreateBooking(c.Request.Context(), input)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": bk})
}

// UpdateBookingStatusHandler handles PATCH /bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	bookingID := c.Param("id")
	var input models.BookingStatusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := h.Svc.UpdateStatus(c.Request.Context(), bookingID, input.Status, input.AdminNotes)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// GetBookingHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bk, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// ListBookingsHandler handles GET /bookings with optional providerId, status
// and clientEmail filters.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	filter := bookingRepo.Filter{
		ProviderID:  c.Query("providerId"),
		Status:      models.BookingStatus(c.Query("status")),
		ClientEmail: c.Query("clientEmail"),
	}

	bookings, err := h.Svc.ListBookings(c.Request.Context(), filter)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetProviderCalendarHandler handles GET /provider-calendars/:providerId.
func (h *BookingHandler) GetProviderCalendarHandler(c *gin.Context) {
	cal, err := h.Svc.GetProviderCalendar(c.Request.Context(), c.Param("providerId"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

// respondBookingError maps service errors onto the HTTP error taxonomy. A
// date conflict always reports the specific conflicting dates so the client
// can highlight them.
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var (
		validationErr *booking.ValidationError
		conflictErr   *booking.DateConflictError
		transitionErr *booking.InvalidTransitionError
		notFoundErr   *booking.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": "requested dates are no longer available", "conflictDates": conflictErr.Dates})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": transitionErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
