// README: Stand-in insights backend with canned destination knowledge.
package mock

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// knownDestinations holds curated insight records; anything else gets a
// generic profile.
var knownDestinations = map[string]map[string]any{
	"paris": {
		"overview":           "The City of Light, famous for art, fashion, gastronomy and culture",
		"best_time_to_visit": "April-June, September-October",
		"currency":           "EUR",
		"language":           "French",
		"timezone":           "CET",
		"safety_rating":      8.5,
		"cost_level":         "High",
		"top_attractions": []string{
			"Eiffel Tower", "Louvre Museum", "Notre-Dame Cathedral",
			"Arc de Triomphe", "Sacré-Cœur",
		},
		"local_transport": []string{"Metro", "Bus", "Taxi", "Vélib bikes"},
		"cultural_tips": []string{
			"Learn basic French phrases",
			"Dress elegantly",
			"Dining etiquette is important",
		},
	},
	"tokyo": {
		"overview":           "A vibrant metropolis blending traditional culture with cutting-edge technology",
		"best_time_to_visit": "March-May, September-November",
		"currency":           "JPY",
		"language":           "Japanese",
		"timezone":           "JST",
		"safety_rating":      9.5,
		"cost_level":         "High",
		"top_attractions": []string{
			"Senso-ji Temple", "Tokyo Skytree", "Shibuya Crossing",
			"Meiji Shrine", "Tsukiji Fish Market",
		},
		"local_transport": []string{"JR Lines", "Metro", "Taxi"},
		"cultural_tips": []string{
			"Bow when greeting",
			"Remove shoes indoors",
			"Don't tip in restaurants",
		},
	},
}

// NewInsightsServer serves curated and generic destination insights.
func NewInsightsServer(log *zap.Logger) *Server {
	return NewServer("travel-insights-backend", map[string]ToolFunc{
		"get_destination_insights": getDestinationInsights,
		"get_attractions":          getAttractions,
		"get_restaurants":          getRestaurants,
		"get_local_tips":           getLocalTips,
	}, log)
}

func getDestinationInsights(params map[string]any) (any, error) {
	destination := stringParam(params, "destination", "Paris")
	travelType := stringParam(params, "travel_type", "leisure")

	insights, ok := knownDestinations[strings.ToLower(destination)]
	if !ok {
		insights = map[string]any{
			"overview":           "A wonderful destination to explore: " + destination,
			"best_time_to_visit": "Check local weather patterns",
			"currency":           "Local currency",
			"language":           "Local language",
			"timezone":           "Local timezone",
			"safety_rating":      7.0,
			"cost_level":         "Medium",
			"top_attractions":    []string{"Historic sites", "Local markets", "Cultural centers"},
			"local_transport":    []string{"Public transport", "Taxi", "Walking"},
			"cultural_tips":      []string{"Respect local customs", "Learn basic phrases", "Dress appropriately"},
		}
	}

	return map[string]any{
		"destination":  destination,
		"travel_type":  travelType,
		"insights":     insights,
		"generated_at": time.Now().Format(time.RFC3339),
	}, nil
}

func getAttractions(params map[string]any) (any, error) {
	return []map[string]any{
		{
			"name":        "Historic Monument",
			"category":    "historical",
			"rating":      4.5,
			"price":       "€15",
			"duration":    "2-3 hours",
			"description": "A beautiful historic site with rich cultural significance",
		},
		{
			"name":        "Art Museum",
			"category":    "museum",
			"rating":      4.8,
			"price":       "€20",
			"duration":    "3-4 hours",
			"description": "World-class art collection spanning centuries",
		},
		{
			"name":        "Central Park",
			"category":    "nature",
			"rating":      4.3,
			"price":       "Free",
			"duration":    "1-2 hours",
			"description": "Beautiful green space in the heart of the city",
		},
	}, nil
}

func getRestaurants(params map[string]any) (any, error) {
	return []map[string]any{
		{
			"name":        "Le Petit Bistro",
			"cuisine":     "French",
			"rating":      4.6,
			"price_range": "€€€",
			"specialties": []string{"Coq au vin", "Bouillabaisse", "Crème brûlée"},
			"atmosphere":  "Cozy, traditional",
		},
		{
			"name":        "Modern Fusion",
			"cuisine":     "International",
			"rating":      4.4,
			"price_range": "€€€€",
			"specialties": []string{"Fusion dishes", "Innovative cocktails"},
			"atmosphere":  "Contemporary, upscale",
		},
		{
			"name":        "Street Food Market",
			"cuisine":     "Various",
			"rating":      4.2,
			"price_range": "€",
			"specialties": []string{"Local street food", "Fresh ingredients"},
			"atmosphere":  "Casual, vibrant",
		},
	}, nil
}

func getLocalTips(params map[string]any) (any, error) {
	destination := stringParam(params, "destination", "Paris")

	return map[string]any{
		"destination": destination,
		"tips": map[string]any{
			"transportation": []string{
				"Buy a metro day pass for unlimited travel",
				"Download local transport apps",
				"Walking is often faster for short distances",
			},
			"money": []string{
				"Carry some cash for small vendors",
				"Notify your bank about travel",
				"Check if tipping is customary",
			},
			"safety": []string{
				"Keep copies of important documents",
				"Be aware of common tourist scams",
				"Stay in well-lit areas at night",
			},
			"etiquette": []string{
				"Learn basic greetings in local language",
				"Respect local customs and traditions",
				"Dress appropriately for religious sites",
			},
			"hidden_gems": []string{
				"Ask locals for their favorite spots",
				"Explore neighborhoods beyond tourist areas",
				"Try local markets and food halls",
			},
		},
		"generated_at": time.Now().Format(time.RFC3339),
	}, nil
}
