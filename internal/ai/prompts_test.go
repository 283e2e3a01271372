package ai

import (
	"strings"
	"testing"
	"time"

	"travelsmart/internal/models"
)

func TestBuildTravelPlanPrompt(t *testing.T) {
	budget := 3000.0
	req := models.TripRequest{
		Destination:   "Paris",
		DepartureCity: "New York",
		StartDate:     time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 7, 7, 0, 0, 0, 0, time.UTC),
		Budget:        &budget,
		TravelType:    models.TravelLeisure,
		PartySize:     2,
		Preferences:   map[string]any{"pace": "relaxed"},
	}

	got := buildTravelPlanPrompt(req, map[string]any{"forecast": "sunny"}, nil)

	for _, want := range []string{
		"Paris", "New York", "2026-07-01", "2026-07-07",
		"$3000.00", "leisure", "Party size: 2", "relaxed",
		"sunny", "Local insights: Not available",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildTravelPlanPromptDefaults(t *testing.T) {
	req := models.TripRequest{
		Destination:   "Lisbon",
		DepartureCity: "Berlin",
		StartDate:     time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC),
		TravelType:    models.TravelBusiness,
		PartySize:     1,
	}

	got := buildTravelPlanPrompt(req, nil, nil)

	for _, want := range []string{
		"Budget: Not specified",
		"Preferences: None specified",
		"Special requirements: None",
		"Weather information: Not available",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing default %q", want)
		}
	}
}

func TestBuildPackingPrompt(t *testing.T) {
	got := buildPackingPrompt(
		"Reykjavik",
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
		nil,
		[]string{"hiking", "northern lights"},
	)

	for _, want := range []string{"Reykjavik", "2026-01-10", "hiking, northern lights", "Weather forecast: Not available"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	got = buildPackingPrompt("Rome", time.Now(), time.Now(), nil, nil)
	if !strings.Contains(got, "General tourism") {
		t.Error("prompt missing activity fallback")
	}
}

func TestBuildQuestionPrompt(t *testing.T) {
	got := buildQuestionPrompt("Do I need a visa?", "")
	if !strings.Contains(got, "No additional context") {
		t.Error("prompt missing context fallback")
	}
}
