package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Booking is a booking request record. Exactly one of Date / DateRange is
// populated after normalization: a single-day booking uses Date, a multi-day
// booking carries the full expanded date list in DateRange.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	ProviderID  string        `bson:"provider_id" json:"providerId"`
	ClientName  string        `bson:"client_name" json:"clientName"`
	ClientEmail string        `bson:"client_email" json:"clientEmail"`
	ClientPhone string        `bson:"client_phone" json:"clientPhone"`
	ServiceType string        `bson:"service_type" json:"serviceType"`
	PricePerDay float64       `bson:"price_per_day" json:"pricePerDay"`
	Message     string        `bson:"message,omitempty" json:"message,omitempty"`
	Date        string        `bson:"date,omitempty" json:"date,omitempty"`
	DateRange   []string      `bson:"date_range,omitempty" json:"dateRange,omitempty"`
	TotalPrice  float64       `bson:"total_price" json:"totalPrice"` // computed once at creation
	Status      BookingStatus `bson:"status" json:"status"`
	AdminNotes  string        `bson:"admin_notes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Dates returns the full list of calendar dates this booking occupies.
func (b *Booking) Dates() []string {
	if b.Date != "" {
		return []string{b.Date}
	}
	return b.DateRange
}

// Active reports whether the booking still occupies its dates for conflict
// purposes. Completed bookings stay active: a finished job keeps its days
// blocked as a historical record.
func (b *Booking) Active() bool {
	return b.Status != BookingStatusCancelled
}
