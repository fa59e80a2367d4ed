package booking

// TotalPrice computes the booking price at creation time. The price is fixed
// once computed and never recomputed on later status changes. A booking
// always charges at least one day.
func TotalPrice(pricePerDay float64, days int) float64 {
	if days < 1 {
		days = 1
	}
	return pricePerDay * float64(days)
}
