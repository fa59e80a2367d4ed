package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every route handler the router needs.
type HandlerBundle struct {
	// Booking endpoints.
	CreateBookingHandler       gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	GetProviderCalendarHandler gin.HandlerFunc

	// Availability endpoints.
	GetAvailabilityHandler      gin.HandlerFunc
	ReplaceAvailabilityHandler  gin.HandlerFunc
	BulkSetDaysHandler          gin.HandlerFunc
	ApplyPatternHandler         gin.HandlerFunc
	AddUnavailablePeriodHandler gin.HandlerFunc
	ClearScheduleHandler        gin.HandlerFunc

	// Provider endpoints.
	RegisterProviderHandler gin.HandlerFunc
	GetProviderByIDHandler  gin.HandlerFunc

	// Admin review workflow.
	AdminHandler *AdminHandler
}
