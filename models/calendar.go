package models

import "time"

// ProviderCalendar is the denormalized per-provider cache of dates that are
// no longer bookable: the union of all dates covered by that provider's
// non-cancelled bookings. It is rebuilt from scratch on every booking event,
// never patched incrementally. Conflict checks never consult it; they always
// re-derive from the booking ledger.
type ProviderCalendar struct {
	ProviderID       string    `bson:"provider_id" json:"providerId"`
	UnavailableDates []string  `bson:"unavailable_dates" json:"unavailableDates"` // sorted
	LastUpdated      time.Time `bson:"last_updated" json:"lastUpdated"`
}
