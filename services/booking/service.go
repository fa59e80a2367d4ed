package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "guidely/database/repository/booking"
	calendarRepo "guidely/database/repository/calendar"
	providerRepo "guidely/database/repository/provider"
	"guidely/models"
	"guidely/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production availability & booking manager.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	CalendarRepo calendarRepo.CalendarRepository
	ProviderRepo providerRepo.ProviderRepository

	// Cache is optional; when nil, calendar reads go straight to Mongo.
	Cache    *redis.Client
	CacheTTL time.Duration
}

func calendarCacheKey(providerID string) string {
	return "provider-calendar:" + providerID
}

// CreateBooking validates and normalizes a booking request, runs the conflict
// check and ledger write as one transactional unit, and then rebuilds the
// provider's calendar cache. A cache rebuild failure never rolls back the
// booking; the cache simply stays stale until the next booking event.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.BookingRequestInput) (*models.Booking, error) {
	if err := validateBookingInput(input); err != nil {
		return nil, err
	}

	provider, err := s.ProviderRepo.GetByID(ctx, input.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "provider", ID: input.ProviderID}
		}
		return nil, fmt.Errorf("fetching provider %s: %w", input.ProviderID, err)
	}

	loc := utils.LoadTimezone(provider.Timezone)
	dates, err := NormalizeDates(input.Dates, loc)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	bk := &models.Booking{
		ID:          uuid.New().String(),
		ProviderID:  input.ProviderID,
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
		ServiceType: input.ServiceType,
		PricePerDay: input.PricePerDay,
		Message:     input.Message,
		TotalPrice:  TotalPrice(input.PricePerDay, len(dates)),
		Status:      models.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if len(dates) == 1 {
		bk.Date = dates[0]
	} else {
		bk.DateRange = dates
	}

	conflicts, err := s.Repo.CreateIfNoConflict(ctx, bk)
	if err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}
	if len(conflicts) > 0 {
		return nil, &DateConflictError{Dates: conflicts}
	}

	s.rebuildCalendar(ctx, bk.ProviderID)
	return bk, nil
}

// UpdateStatus validates the state machine transition, persists it
// conditionally on the booking's current status, and rebuilds the provider's
// calendar cache.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, adminNotes string) (*models.Booking, error) {
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}
	}

	current, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "booking", ID: bookingID}
		}
		return nil, fmt.Errorf("fetching booking %s: %w", bookingID, err)
	}

	if !CanTransition(current.Status, status) {
		return nil, &InvalidTransitionError{From: current.Status, To: status}
	}

	updated, err := s.Repo.UpdateStatus(ctx, bookingID, current.Status, status, adminNotes)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStale) {
			// Someone else transitioned the booking first; report against
			// its fresh state.
			fresh, getErr := s.Repo.GetByID(ctx, bookingID)
			if getErr != nil {
				return nil, fmt.Errorf("updating booking %s: %w", bookingID, err)
			}
			return nil, &InvalidTransitionError{From: fresh.Status, To: status}
		}
		return nil, fmt.Errorf("updating booking %s: %w", bookingID, err)
	}

	s.rebuildCalendar(ctx, updated.ProviderID)
	return updated, nil
}

// GetBooking returns a single booking by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	bk, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "booking", ID: bookingID}
		}
		return nil, err
	}
	return bk, nil
}

// ListBookings returns bookings matching the filter.
func (s *DefaultBookingService) ListBookings(ctx context.Context, filter bookingRepo.Filter) ([]models.Booking, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", filter.Status)}
	}
	return s.Repo.List(ctx, filter)
}

func validateBookingInput(input models.BookingRequestInput) error {
	switch {
	case strings.TrimSpace(input.ProviderID) == "":
		return &ValidationError{Field: "providerId", Message: "required"}
	case strings.TrimSpace(input.ClientName) == "":
		return &ValidationError{Field: "clientName", Message: "required"}
	case strings.TrimSpace(input.ClientEmail) == "":
		return &ValidationError{Field: "clientEmail", Message: "required"}
	case strings.TrimSpace(input.ServiceType) == "":
		return &ValidationError{Field: "serviceType", Message: "required"}
	case input.PricePerDay <= 0:
		return &ValidationError{Field: "pricePerDay", Message: "must be positive"}
	}
	return nil
}

// GetProviderCalendar serves the denormalized cache, with a Redis
// read-through in front of the Mongo document. A missing cache document is
// regenerated from the ledger rather than treated as an error.
func (s *DefaultBookingService) GetProviderCalendar(ctx context.Context, providerID string) (*models.ProviderCalendar, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, calendarCacheKey(providerID)).Result(); err == nil {
			var cal models.ProviderCalendar
			if err := json.Unmarshal([]byte(data), &cal); err == nil {
				return &cal, nil
			}
		}
	}

	cal, err := s.CalendarRepo.Get(ctx, providerID)
	if err != nil {
		if !errors.Is(err, calendarRepo.ErrNotFound) {
			return nil, err
		}
		cal, err = s.RebuildProviderCalendar(ctx, providerID)
		if err != nil {
			return nil, err
		}
	}

	if s.Cache != nil {
		if data, err := json.Marshal(cal); err == nil {
			ttl := s.CacheTTL
			if ttl <= 0 {
				ttl = 5 * time.Minute
			}
			if err := s.Cache.Set(ctx, calendarCacheKey(providerID), data, ttl).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache provider calendar",
					zap.String("providerID", providerID), zap.Error(err))
			}
		}
	}
	return cal, nil
}

// RebuildProviderCalendar recomputes the provider's unavailable-dates set
// from scratch out of the booking ledger and overwrites the cache document.
// The full recompute is deliberate: incremental patching reintroduces the
// staleness bugs this cache exists to avoid.
func (s *DefaultBookingService) RebuildProviderCalendar(ctx context.Context, providerID string) (*models.ProviderCalendar, error) {
	dates, err := s.Repo.ActiveDates(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("deriving unavailable dates for provider %s: %w", providerID, err)
	}
	if dates == nil {
		dates = []string{}
	}

	cal := &models.ProviderCalendar{
		ProviderID:       providerID,
		UnavailableDates: dates,
		LastUpdated:      time.Now(),
	}
	if err := s.CalendarRepo.Upsert(ctx, cal); err != nil {
		return nil, fmt.Errorf("persisting provider calendar %s: %w", providerID, err)
	}

	if s.Cache != nil {
		if err := s.Cache.Del(ctx, calendarCacheKey(providerID)).Err(); err != nil {
			utils.GetLogger().Warn("failed to invalidate provider calendar cache",
				zap.String("providerID", providerID), zap.Error(err))
		}
	}
	return cal, nil
}

// rebuildCalendar is the post-mutation hook. Failures are logged and
// swallowed: the ledger write stands and the cache stays stale until the
// next successful rebuild on this provider.
func (s *DefaultBookingService) rebuildCalendar(ctx context.Context, providerID string) {
	if _, err := s.RebuildProviderCalendar(ctx, providerID); err != nil {
		utils.GetLogger().Warn("calendar cache rebuild failed; cache stale until next booking event",
			zap.String("providerID", providerID), zap.Error(err))
	}
}
