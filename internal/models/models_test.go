package models

import (
	"errors"
	"testing"
	"time"
)

func TestTripRequestValidate(t *testing.T) {
	today := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	base := TripRequest{
		Destination:   "Paris",
		DepartureCity: "New York",
		StartDate:     day(7),
		EndDate:       day(14),
		PartySize:     2,
	}

	tests := []struct {
		name    string
		mutate  func(*TripRequest)
		wantErr error
	}{
		{"valid", func(r *TripRequest) {}, nil},
		{"start today is allowed", func(r *TripRequest) { r.StartDate = day(0); r.EndDate = day(3) }, nil},
		{"start in the past", func(r *TripRequest) { r.StartDate = day(-1) }, ErrStartDatePast},
		{"end equals start", func(r *TripRequest) { r.EndDate = r.StartDate }, ErrDateOrdering},
		{"end before start", func(r *TripRequest) { r.EndDate = day(3) }, ErrDateOrdering},
		{"span over a year", func(r *TripRequest) { r.EndDate = day(7 + 366) }, ErrTripTooLong},
		{"span exactly a year", func(r *TripRequest) { r.EndDate = day(7 + 365) }, nil},
		{"missing destination", func(r *TripRequest) { r.Destination = "" }, ErrMissingDestination},
		{"missing departure", func(r *TripRequest) { r.DepartureCity = "" }, ErrMissingDeparture},
		{"zero party size", func(r *TripRequest) { r.PartySize = 0 }, ErrPartySize},
		{"negative budget", func(r *TripRequest) { b := -10.0; r.Budget = &b }, ErrNegativeBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			err := req.Validate(today)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseTravelType(t *testing.T) {
	for _, s := range []string{"business", "leisure", "adventure", "family", "romantic"} {
		got, err := ParseTravelType(s)
		if err != nil || string(got) != s {
			t.Errorf("ParseTravelType(%q) = %v, %v", s, got, err)
		}
	}

	got, err := ParseTravelType("")
	if err != nil || got != TravelLeisure {
		t.Errorf("ParseTravelType(empty) = %v, %v, want leisure", got, err)
	}

	if _, err := ParseTravelType("spelunking"); err == nil {
		t.Error("ParseTravelType(unknown) expected error")
	}
}

func TestNights(t *testing.T) {
	req := TripRequest{
		StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 7, 0, 0, 0, 0, time.UTC),
	}
	if got := req.Nights(); got != 6 {
		t.Errorf("Nights() = %d, want 6", got)
	}
}
