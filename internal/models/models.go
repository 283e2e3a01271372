// README: Domain models for trip requests, plan results and booking records.
package models

import (
	"errors"
	"fmt"
	"time"
)

// TravelType classifies the purpose of a trip.
type TravelType string

const (
	TravelBusiness  TravelType = "business"
	TravelLeisure   TravelType = "leisure"
	TravelAdventure TravelType = "adventure"
	TravelFamily    TravelType = "family"
	TravelRomantic  TravelType = "romantic"
)

// ParseTravelType maps a string onto a known TravelType.
// The empty string defaults to leisure, matching the original request model.
func ParseTravelType(s string) (TravelType, error) {
	switch TravelType(s) {
	case TravelBusiness, TravelLeisure, TravelAdventure, TravelFamily, TravelRomantic:
		return TravelType(s), nil
	case "":
		return TravelLeisure, nil
	default:
		return "", fmt.Errorf("unknown travel type %q", s)
	}
}

// Validation failure reasons. Handlers map these onto HTTP 400 responses.
var (
	ErrMissingDestination = errors.New("destination is required")
	ErrMissingDeparture   = errors.New("departure city is required")
	ErrStartDatePast      = errors.New("start date cannot be in the past")
	ErrDateOrdering       = errors.New("end date must be after start date")
	ErrTripTooLong        = errors.New("trip duration cannot exceed 365 days")
	ErrPartySize          = errors.New("party size must be positive")
	ErrNegativeBudget     = errors.New("budget cannot be negative")
)

// TripRequest describes what the user wants to plan. Immutable once built;
// Validate must pass before the request reaches the orchestrator.
type TripRequest struct {
	Destination         string         `json:"destination"`
	DepartureCity       string         `json:"departure_city"`
	StartDate           time.Time      `json:"start_date"`
	EndDate             time.Time      `json:"end_date"`
	Budget              *float64       `json:"budget,omitempty"`
	TravelType          TravelType     `json:"travel_type"`
	PartySize           int            `json:"party_size"`
	Preferences         map[string]any `json:"preferences,omitempty"`
	SpecialRequirements string         `json:"special_requirements,omitempty"`
}

// Validate checks the request against the date and field rules.
// today is passed in so the past-date rule is testable.
func (r TripRequest) Validate(today time.Time) error {
	if r.Destination == "" {
		return ErrMissingDestination
	}
	if r.DepartureCity == "" {
		return ErrMissingDeparture
	}
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	if day(r.StartDate).Before(day(today)) {
		return ErrStartDatePast
	}
	if !day(r.EndDate).After(day(r.StartDate)) {
		return ErrDateOrdering
	}
	if day(r.EndDate).Sub(day(r.StartDate)) > 365*24*time.Hour {
		return ErrTripTooLong
	}
	if r.PartySize <= 0 {
		return ErrPartySize
	}
	if r.Budget != nil && *r.Budget < 0 {
		return ErrNegativeBudget
	}
	return nil
}

// Nights returns the number of nights between start and end date.
func (r TripRequest) Nights() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// PlanStatus is the overall outcome of a planning request.
type PlanStatus string

const (
	StatusSuccess PlanStatus = "success"
	StatusError   PlanStatus = "error"
)

// Location identifies a place, optionally with coordinates resolved by the
// geocoding enrichment step.
type Location struct {
	City      string   `json:"city"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// WeatherCondition is a single forecast entry as served by the weather backend.
type WeatherCondition struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// FlightOption is the flight offer shape served by the booking backend.
type FlightOption struct {
	FlightID      string  `json:"flight_id"`
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flight_number"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration"`
	Price         float64 `json:"price"`
	Stops         int     `json:"stops"`
}

// HotelOption is the hotel offer shape served by the booking backend.
type HotelOption struct {
	HotelID       string   `json:"hotel_id"`
	Name          string   `json:"name"`
	Rating        float64  `json:"rating"`
	PricePerNight float64  `json:"price_per_night"`
	Location      string   `json:"location"`
	Amenities     []string `json:"amenities"`
}

// TripPlanResult aggregates the outcome of one planning request.
// Status success always carries a non-empty TravelPlan; status error always
// carries a non-empty Message. Not mutated after construction.
type TripPlanResult struct {
	Status          PlanStatus       `json:"status"`
	TravelPlan      string           `json:"travel_plan,omitempty"`
	WeatherForecast map[string]any   `json:"weather_forecast,omitempty"`
	LocalInsights   map[string]any   `json:"local_insights,omitempty"`
	FlightOptions   []map[string]any `json:"flight_options"`
	HotelOptions    []map[string]any `json:"hotel_options"`
	Destination     *Location        `json:"destination,omitempty"`
	Request         *TripRequest     `json:"request,omitempty"`
	Message         string           `json:"message,omitempty"`
}

// BookingConfirmation is returned by the booking backend's book_trip tool.
type BookingConfirmation struct {
	BookingID          string    `json:"booking_id"`
	Status             string    `json:"status"`
	ConfirmationNumber string    `json:"confirmation_number"`
	TotalCost          float64   `json:"total_cost"`
	BookingDate        time.Time `json:"booking_date"`
}
