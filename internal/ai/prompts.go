package ai

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"travelsmart/internal/models"
)

const (
	travelPlanSystem = `You are an expert travel advisor with deep knowledge of global destinations,
weather patterns, local customs, and travel logistics. Create comprehensive, personalized travel
recommendations based on user preferences, weather conditions, and local insights.`

	optimizeSystem = `You are a travel optimization expert. Analyze and improve travel itineraries
for better efficiency, cost-effectiveness, and enjoyment while considering user constraints.`

	questionSystem = `You are a knowledgeable travel assistant. Provide accurate, helpful,
and practical answers to travel-related questions.`

	packingSystem = `You are a travel packing expert. Create comprehensive, practical packing
lists based on destination, weather, and planned activities.`
)

const dateLayout = "2006-01-02"

// asJSON renders a payload for prompt embedding, falling back to fallback
// when the payload is absent or not encodable.
func asJSON(v any, fallback string) string {
	if v == nil {
		return fallback
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fallback
	}
	return string(b)
}

func buildTravelPlanPrompt(req models.TripRequest, weather, insights any) string {
	budget := "Not specified"
	if req.Budget != nil {
		budget = fmt.Sprintf("$%.2f", *req.Budget)
	}
	prefs := "None specified"
	if len(req.Preferences) > 0 {
		prefs = asJSON(req.Preferences, prefs)
	}
	special := req.SpecialRequirements
	if special == "" {
		special = "None"
	}

	return fmt.Sprintf(`Create a detailed travel plan for:
- Destination: %s
- Departure from: %s
- Travel dates: %s to %s
- Budget: %s
- Travel type: %s
- Party size: %d
- Preferences: %s
- Special requirements: %s

Weather information: %s
Local insights: %s

Please provide:
1. Best time to visit and weather considerations
2. Recommended activities and attractions
3. Suggested accommodation areas
4. Local transportation options
5. Cultural tips and local customs
6. Food recommendations
7. Packing suggestions based on weather
8. Budget breakdown estimate
9. Safety considerations
10. Hidden gems and local favorites

Format the response as a comprehensive travel guide.`,
		req.Destination,
		req.DepartureCity,
		req.StartDate.Format(dateLayout),
		req.EndDate.Format(dateLayout),
		budget,
		req.TravelType,
		req.PartySize,
		prefs,
		special,
		asJSON(weather, "Not available"),
		asJSON(insights, "Not available"),
	)
}

func buildOptimizePrompt(itinerary map[string]any, constraints map[string]any) string {
	constraintText := "None specified"
	if len(constraints) > 0 {
		constraintText = asJSON(constraints, constraintText)
	}

	return fmt.Sprintf(`Optimize this travel itinerary:
%s

Constraints: %s

Please provide:
1. Suggested improvements for time management
2. Cost optimization opportunities
3. Better routing between activities
4. Alternative options for activities/accommodations
5. Tips for avoiding crowds and long waits
6. Seasonal considerations and timing advice

Format as specific, actionable recommendations.`,
		asJSON(itinerary, "{}"),
		constraintText,
	)
}

func buildQuestionPrompt(question, questionContext string) string {
	if questionContext == "" {
		questionContext = "No additional context"
	}
	return fmt.Sprintf(`Question: %s
Context: %s

Please provide a comprehensive, accurate answer with practical advice and specific recommendations where applicable.`,
		question, questionContext)
}

func buildPackingPrompt(destination string, start, end time.Time, forecast any, activities []string) string {
	activityText := "General tourism"
	if len(activities) > 0 {
		activityText = strings.Join(activities, ", ")
	}

	return fmt.Sprintf(`Generate a packing list for:
- Destination: %s
- Travel dates: %s to %s
- Weather forecast: %s
- Planned activities: %s

Organize the list by categories:
1. Clothing (by weather and activities)
2. Toiletries and personal care
3. Electronics and gadgets
4. Documents and money
5. Health and safety items
6. Activity-specific gear
7. Miscellaneous essentials

Include quantity suggestions and priority levels (essential/recommended/optional).`,
		destination,
		start.Format(dateLayout),
		end.Format(dateLayout),
		asJSON(forecast, "Not available"),
		activityText,
	)
}
