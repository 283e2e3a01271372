// README: Trip planning, search and booking handlers.
package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelsmart/internal/models"
	"travelsmart/internal/store"
)

type planRequest struct {
	Destination         string         `json:"destination"`
	DepartureCity       string         `json:"departure_city"`
	StartDate           string         `json:"start_date"`
	EndDate             string         `json:"end_date"`
	Budget              *float64       `json:"budget"`
	TravelType          string         `json:"travel_type"`
	PartySize           int            `json:"party_size"`
	Preferences         map[string]any `json:"preferences"`
	SpecialRequirements string         `json:"special_requirements"`
}

// toTripRequest converts the wire form into a validated domain request.
func (r planRequest) toTripRequest() (models.TripRequest, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return models.TripRequest{}, err
	}
	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return models.TripRequest{}, err
	}
	travelType, err := models.ParseTravelType(r.TravelType)
	if err != nil {
		return models.TripRequest{}, err
	}

	partySize := r.PartySize
	if partySize == 0 {
		partySize = 1
	}

	req := models.TripRequest{
		Destination:         r.Destination,
		DepartureCity:       r.DepartureCity,
		StartDate:           start,
		EndDate:             end,
		Budget:              r.Budget,
		TravelType:          travelType,
		PartySize:           partySize,
		Preferences:         r.Preferences,
		SpecialRequirements: r.SpecialRequirements,
	}
	if err := req.Validate(time.Now()); err != nil {
		return models.TripRequest{}, err
	}
	return req, nil
}

// HandlePlanTrip handles POST /api/v1/trips/plan.
func (s *Server) HandlePlanTrip(c *gin.Context) {
	var body planRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req, err := body.toTripRequest()
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := s.planner.PlanTrip(c.Request.Context(), req)
	if result.Status == models.StatusError {
		// Planning failed upstream; the response still describes the failure.
		writeJSON(c, http.StatusBadGateway, result)
		return
	}
	writeJSON(c, http.StatusOK, result)
}

// HandleBookTrip handles POST /api/v1/trips/book. The confirmation is passed
// through from the booking backend; persistence and notification run after
// the response is decided and never fail the booking.
func (s *Server) HandleBookTrip(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	confirmation := s.planner.BookTrip(c.Request.Context(), payload)
	if confirmation["status"] == string(models.StatusError) {
		writeJSON(c, http.StatusBadGateway, confirmation)
		return
	}

	s.recordBooking(c.Request.Context(), payload, confirmation)
	writeJSON(c, http.StatusOK, confirmation)
}

func (s *Server) recordBooking(ctx context.Context, payload, confirmation map[string]any) {
	bookingID, _ := confirmation["booking_id"].(string)
	if bookingID == "" {
		return
	}

	if s.bookings != nil {
		status, _ := confirmation["status"].(string)
		number, _ := confirmation["confirmation_number"].(string)
		cost, _ := confirmation["total_cost"].(float64)
		userID, _ := payload["user_id"].(string)

		booking := &store.Booking{
			BookingID:          bookingID,
			UserID:             userID,
			Status:             status,
			ConfirmationNumber: number,
			TotalCost:          cost,
			Details:            confirmation,
		}
		if err := s.bookings.Save(ctx, booking); err != nil {
			s.log.Warn("booking persistence failed", zap.String("booking_id", bookingID), zap.Error(err))
		}
	}

	if s.notifier != nil {
		s.notifier.BookingConfirmed(ctx, bookingID, confirmation)
	}
}

// HandleWeather handles GET /api/v1/weather.
func (s *Server) HandleWeather(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		writeError(c, http.StatusBadRequest, "destination is required")
		return
	}
	start, err := parseDate("start_date", c.Query("start_date"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDate("end_date", c.Query("end_date"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	forecast := s.planner.GetWeatherData(c.Request.Context(), destination, start, end)
	if forecast == nil {
		writeError(c, http.StatusBadGateway, "weather backend unavailable")
		return
	}
	writeJSON(c, http.StatusOK, forecast)
}

// HandleInsights handles GET /api/v1/insights.
func (s *Server) HandleInsights(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		writeError(c, http.StatusBadRequest, "destination is required")
		return
	}
	travelType, err := models.ParseTravelType(c.Query("travel_type"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	partySize := 1
	if raw := c.Query("party_size"); raw != "" {
		partySize, err = strconv.Atoi(raw)
		if err != nil || partySize <= 0 {
			writeError(c, http.StatusBadRequest, "party_size must be a positive integer")
			return
		}
	}

	insights := s.planner.GetTravelInsights(c.Request.Context(), destination, travelType, partySize)
	if insights == nil {
		writeError(c, http.StatusBadGateway, "insights backend unavailable")
		return
	}
	writeJSON(c, http.StatusOK, insights)
}

// HandleSearchFlights handles POST /api/v1/flights/search.
func (s *Server) HandleSearchFlights(c *gin.Context) {
	var body planRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req, err := body.toTripRequest()
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"flights": s.planner.SearchFlights(c.Request.Context(), req)})
}

// HandleSearchHotels handles POST /api/v1/hotels/search.
func (s *Server) HandleSearchHotels(c *gin.Context) {
	var body planRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	// Hotel searches have no departure leg.
	if body.DepartureCity == "" {
		body.DepartureCity = body.Destination
	}
	req, err := body.toTripRequest()
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"hotels": s.planner.SearchHotels(c.Request.Context(), req)})
}
