package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bookingRepo "guidely/database/repository/booking"
	"guidely/models"
	"guidely/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBookingService returns canned results so the tests exercise only the
// HTTP mapping.
type stubBookingService struct {
	booking  *models.Booking
	bookings []models.Booking
	calendar *models.ProviderCalendar
	err      error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, input models.BookingRequestInput) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, adminNotes string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) ListBookings(ctx context.Context, filter bookingRepo.Filter) ([]models.Booking, error) {
	return s.bookings, s.err
}

func (s *stubBookingService) GetProviderCalendar(ctx context.Context, providerID string) (*models.ProviderCalendar, error) {
	return s.calendar, s.err
}

func (s *stubBookingService) RebuildProviderCalendar(ctx context.Context, providerID string) (*models.ProviderCalendar, error) {
	return s.calendar, s.err
}

func newBookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/bookings", h.CreateBookingHandler)
	r.GET("/bookings", h.ListBookingsHandler)
	r.GET("/bookings/:id", h.GetBookingHandler)
	r.PATCH("/bookings/:id/status", h.UpdateBookingStatusHandler)
	r.GET("/provider-calendars/:providerId", h.GetProviderCalendarHandler)
	return r
}

const createBody = `{
	"providerId": "prov-1",
	"pricePerDay": 300000,
	"dates": {"kind": "range", "start": "2025-03-01", "end": "2025-03-03"},
	"clientName": "Alice",
	"clientEmail": "alice@example.com",
	"serviceType": "tour-guide"
}`

func TestCreateBookingHandlerCreated(t *testing.T) {
	router := newBookingRouter(&stubBookingService{booking: &models.Booking{
		ID:         "bk-1",
		ProviderID: "prov-1",
		Status:     models.BookingStatusPending,
		DateRange:  []string{"2025-03-01", "2025-03-02", "2025-03-03"},
		TotalPrice: 900000,
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Booking models.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "bk-1", body.Booking.ID)
	assert.Equal(t, models.BookingStatusPending, body.Booking.Status)
	assert.Equal(t, 900000.0, body.Booking.TotalPrice)
}

func TestCreateBookingHandlerConflict(t *testing.T) {
	router := newBookingRouter(&stubBookingService{
		err: &booking.DateConflictError{Dates: []string{"2025-03-03"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	var body struct {
		Error         string   `json:"error"`
		ConflictDates []string `json:"conflictDates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"2025-03-03"}, body.ConflictDates)
	assert.NotEmpty(t, body.Error)
}

func TestCreateBookingHandlerValidationError(t *testing.T) {
	router := newBookingRouter(&stubBookingService{
		err: &booking.ValidationError{Field: "dates", Message: "no dates requested"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "dates", body["field"])
}

func TestCreateBookingHandlerMalformedJSON(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBookingStatusHandlerInvalidTransition(t *testing.T) {
	router := newBookingRouter(&stubBookingService{
		err: &booking.InvalidTransitionError{
			From: models.BookingStatusCompleted,
			To:   models.BookingStatusPending,
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/bookings/bk-1/status", strings.NewReader(`{"status": "pending"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot transition")
}

func TestGetBookingHandlerNotFound(t *testing.T) {
	router := newBookingRouter(&stubBookingService{
		err: &booking.NotFoundError{Resource: "booking", ID: "ghost"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/ghost", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBookingHandlerInternalError(t *testing.T) {
	router := newBookingRouter(&stubBookingService{
		err: context.DeadlineExceeded,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/bk-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "deadline", "internal details must not leak to clients")
}

func TestListBookingsHandlerEmptyIsArray(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings?providerId=prov-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookings": []}`, w.Body.String())
}

func TestGetProviderCalendarHandler(t *testing.T) {
	router := newBookingRouter(&stubBookingService{calendar: &models.ProviderCalendar{
		ProviderID:       "prov-1",
		UnavailableDates: []string{"2025-03-03", "2025-03-04"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/provider-calendars/prov-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var cal models.ProviderCalendar
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cal))
	assert.Equal(t, []string{"2025-03-03", "2025-03-04"}, cal.UnavailableDates)
}
