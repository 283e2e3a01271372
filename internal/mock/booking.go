// README: Stand-in booking backend with canned offers and in-memory bookings.
package mock

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingServer extends the call protocol with in-memory booking state, so
// confirmations can be looked up within a process lifetime.
type BookingServer struct {
	*Server

	mu       sync.Mutex
	bookings map[string]map[string]any
}

// NewBookingServer serves flight and hotel offers plus trip booking.
func NewBookingServer(log *zap.Logger) *BookingServer {
	b := &BookingServer{bookings: map[string]map[string]any{}}
	b.Server = NewServer("booking-backend", map[string]ToolFunc{
		"search_flights": searchFlights,
		"search_hotels":  searchHotels,
		"book_trip":      b.bookTrip,
	}, log)
	return b
}

func searchFlights(params map[string]any) (any, error) {
	origin := stringParam(params, "origin", "New York")
	destination := stringParam(params, "destination", "Paris")

	return []map[string]any{
		{
			"flight_id":      "FL001",
			"airline":        "Air France",
			"flight_number":  "AF007",
			"origin":         origin,
			"destination":    destination,
			"departure_time": "08:30",
			"arrival_time":   "20:45",
			"duration":       "8h 15m",
			"price":          650.00,
			"stops":          0,
		},
		{
			"flight_id":      "FL002",
			"airline":        "Delta Airlines",
			"flight_number":  "DL123",
			"origin":         origin,
			"destination":    destination,
			"departure_time": "14:20",
			"arrival_time":   "02:35+1",
			"duration":       "8h 15m",
			"price":          580.00,
			"stops":          0,
		},
	}, nil
}

func searchHotels(params map[string]any) (any, error) {
	return []map[string]any{
		{
			"hotel_id":        "HT001",
			"name":            "Grand Hotel Central",
			"rating":          4.5,
			"price_per_night": 180.00,
			"location":        "City Center",
			"amenities":       []string{"WiFi", "Pool", "Spa", "Restaurant"},
		},
		{
			"hotel_id":        "HT002",
			"name":            "Boutique Palace",
			"rating":          4.8,
			"price_per_night": 250.00,
			"location":        "Historic District",
			"amenities":       []string{"WiFi", "Concierge", "Restaurant", "Bar"},
		},
	}, nil
}

func (b *BookingServer) bookTrip(params map[string]any) (any, error) {
	bookingID := uuid.NewString()
	confirmation := "TS" + strings.ToUpper(strings.ReplaceAll(bookingID, "-", "")[:8])

	record := map[string]any{
		"booking_id":          bookingID,
		"status":              "confirmed",
		"confirmation_number": confirmation,
		"total_cost":          1000.00,
		"booking_date":        time.Now().Format(time.RFC3339),
	}

	b.mu.Lock()
	b.bookings[bookingID] = record
	b.mu.Unlock()

	return map[string]any{
		"success":             true,
		"booking_id":          bookingID,
		"confirmation_number": confirmation,
		"total_cost":          1000.00,
		"status":              "confirmed",
	}, nil
}

// Booking returns a stored booking record, if any.
func (b *BookingServer) Booking(id string) (map[string]any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	record, ok := b.bookings[id]
	return record, ok
}
