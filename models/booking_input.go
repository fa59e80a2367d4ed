package models

// Date payload kinds accepted by the booking API. The shape is resolved once
// at ingestion into a normalized date list; nothing downstream ever inspects
// the raw payload again.
const (
	DateKindSingle   = "single"
	DateKindRange    = "range"
	DateKindExplicit = "explicit"
)

// BookingDates is the tagged date payload of a booking request.
//
//	{"kind": "single",   "date": "2025-03-01"}
//	{"kind": "range",    "start": "2025-03-01", "end": "2025-03-03"}
//	{"kind": "explicit", "dates": ["2025-03-01", "2025-03-04"]}
type BookingDates struct {
	Kind  string   `json:"kind"`
	Date  string   `json:"date,omitempty"`
	Start string   `json:"start,omitempty"`
	End   string   `json:"end,omitempty"`
	Dates []string `json:"dates,omitempty"`
}

// BookingRequestInput is the client-facing body of POST /bookings.
type BookingRequestInput struct {
	ProviderID  string       `json:"providerId"`
	PricePerDay float64      `json:"pricePerDay"`
	Dates       BookingDates `json:"dates"`
	ClientName  string       `json:"clientName"`
	ClientEmail string       `json:"clientEmail"`
	ClientPhone string       `json:"clientPhone"`
	ServiceType string       `json:"serviceType"`
	Message     string       `json:"message,omitempty"`
}

// BookingStatusUpdateInput is the body of PATCH /bookings/:id/status.
type BookingStatusUpdateInput struct {
	Status     BookingStatus `json:"status"`
	AdminNotes string        `json:"adminNotes,omitempty"`
}
