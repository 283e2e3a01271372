package ai

import (
	"context"
	"time"

	"travelsmart/internal/models"
)

// Assistant defines the contract for the language model behind trip planning.
// Every operation is a single non-streaming prompt/response exchange; errors
// propagate to the caller, which decides whether they are fatal.
type Assistant interface {
	// GenerateTravelPlan turns a trip request plus whatever weather and
	// insights data is available (either may be nil) into an itinerary
	// narrative.
	GenerateTravelPlan(ctx context.Context, req models.TripRequest, weather, insights any) (string, error)

	// OptimizeItinerary suggests improvements to an existing itinerary under
	// optional constraints.
	OptimizeItinerary(ctx context.Context, itinerary map[string]any, constraints map[string]any) (string, error)

	// AnswerQuestion answers a free-form travel question with optional context.
	AnswerQuestion(ctx context.Context, question, questionContext string) (string, error)

	// GeneratePackingList builds a packing list for a destination and date
	// range, optionally informed by a forecast and planned activities.
	GeneratePackingList(ctx context.Context, destination string, start, end time.Time, forecast any, activities []string) (string, error)
}
