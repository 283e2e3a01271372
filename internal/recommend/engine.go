// README: Recommendation engine; composes higher-level queries on the assistant with caching.
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"travelsmart/internal/ai"
	"travelsmart/internal/cache"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// BudgetRange bounds a recommendation query by price.
type BudgetRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Recommendation is a personalized recommendation report.
type Recommendation struct {
	Report      string         `json:"recommendations"`
	Score       float64        `json:"personalization_score"`
	Preferences map[string]any `json:"user_preferences,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// SeasonalRecommendation keys a report to a named month.
type SeasonalRecommendation struct {
	Month       string         `json:"month"`
	Report      string         `json:"recommendations"`
	Preferences map[string]any `json:"preferences_considered,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// ActivityPlan holds a day-oriented activity recommendation.
type ActivityPlan struct {
	Destination string    `json:"destination"`
	Plan        string    `json:"activity_plan"`
	Interests   []string  `json:"interests_matched"`
	TravelStyle string    `json:"travel_style"`
	Duration    int       `json:"duration"`
	GeneratedAt time.Time `json:"generated_at"`
}

// BudgetAnalysis holds a budget-optimized comparison across destinations.
type BudgetAnalysis struct {
	Analysis        string    `json:"budget_analysis"`
	TotalBudget     float64   `json:"total_budget"`
	DailyBudget     float64   `json:"daily_budget"`
	PerPersonBudget float64   `json:"per_person_budget"`
	Destinations    []string  `json:"destinations_analyzed"`
	GeneratedAt     time.Time `json:"optimization_date"`
}

// Engine builds recommendation queries on top of the assistant. Identical
// queries are served from the cache within the TTL window, since they are
// expensive and deterministic enough.
type Engine struct {
	assistant ai.Assistant
	cache     cache.Cache
	ttl       time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewEngine(assistant ai.Assistant, c cache.Cache, ttl time.Duration, log *zap.Logger) *Engine {
	return &Engine{
		assistant: assistant,
		cache:     c,
		ttl:       ttl,
		log:       log,
		now:       time.Now,
	}
}

// cachedAnswer serves the raw model answer for (op, params) from the cache,
// asking the assistant only on a miss.
func (e *Engine) cachedAnswer(ctx context.Context, op string, params map[string]any, question, questionContext string) (string, error) {
	key := cache.Key(op, params)
	if v, ok := e.cache.Get(ctx, key); ok {
		if text, ok := v.(string); ok {
			e.log.Debug("recommendation cache hit", zap.String("op", op))
			return text, nil
		}
	}

	text, err := e.assistant.AnswerQuestion(ctx, question, questionContext)
	if err != nil {
		return "", err
	}
	e.cache.Set(ctx, key, text, e.ttl)
	return text, nil
}

// Personalized generates a recommendation report from user preferences,
// optional travel history, and an optional budget range. The score is
// computed deterministically from the inputs, independent of the model.
func (e *Engine) Personalized(ctx context.Context, preferences map[string]any, history []map[string]any, budget *BudgetRange) (Recommendation, error) {
	budgetText := "No limit - No limit"
	if budget != nil {
		budgetText = fmt.Sprintf("$%.2f - $%.2f", budget.Low, budget.High)
	}

	question := fmt.Sprintf(`Generate personalized travel recommendations for a user with the following profile:

Preferences: %s
Travel History: %s
Budget Range: %s

Please provide:
1. Top 5 destination recommendations with specific reasons
2. Best travel times for each destination
3. Recommended activities based on interests
4. Budget breakdown for each destination
5. Travel tips specific to their preferences
6. Alternative options if primary choices are unavailable

Format as a comprehensive recommendation report.`,
		mustJSON(preferences), mustJSON(history), budgetText)

	report, err := e.cachedAnswer(ctx,
		"personalized_recommendations",
		map[string]any{"preferences": preferences, "history": history, "budget": budget},
		question,
		"personalized recommendations",
	)
	if err != nil {
		return Recommendation{}, fmt.Errorf("personalized recommendations: %w", err)
	}

	return Recommendation{
		Report:      report,
		Score:       PersonalizationScore(preferences, history),
		Preferences: preferences,
		GeneratedAt: e.now(),
	}, nil
}

// SimilarDestinations finds destinations similar to one the user liked.
// The model's free-text answer is segmented best-effort into destination
// records; a partial or empty list is an acceptable degraded result.
func (e *Engine) SimilarDestinations(ctx context.Context, liked string, preferences map[string]any) ([]Destination, error) {
	question := fmt.Sprintf(`Find destinations similar to %s that would appeal to someone with these preferences:
%s

Consider similarities in:
- Culture and atmosphere
- Activities and attractions
- Climate and geography
- Cost and accessibility
- Food and local experiences

Provide 5-7 similar destinations with:
- Name and country
- Similarity score (1-10)
- Key similarities
- Unique differentiators
- Best time to visit
- Approximate budget level`,
		liked, mustJSON(preferences))

	response, err := e.cachedAnswer(ctx,
		"similar_destinations",
		map[string]any{"liked": liked, "preferences": preferences},
		question,
		fmt.Sprintf("similar destinations to %s", liked),
	)
	if err != nil {
		e.log.Warn("similar destinations query failed", zap.String("liked", liked), zap.Error(err))
		return nil, nil
	}

	return ParseDestinations(response), nil
}

// Seasonal recommends destinations for a specific month. A month outside
// 1..12 is labeled "Unknown" rather than rejected.
func (e *Engine) Seasonal(ctx context.Context, month int, preferences map[string]any) (SeasonalRecommendation, error) {
	monthName := "Unknown"
	if month >= 1 && month <= 12 {
		monthName = monthNames[month-1]
	}

	question := fmt.Sprintf(`Recommend the best travel destinations for %s considering:

User Preferences: %s

For each recommendation, include:
- Destination name and region
- Why it's perfect for %s
- Weather conditions
- Special events or seasons
- Crowd levels and pricing
- Recommended activities
- What to pack

Provide 5-8 destinations with variety in:
- Geographic regions
- Climate types
- Activity types
- Budget levels`,
		monthName, mustJSON(preferences), monthName)

	report, err := e.cachedAnswer(ctx,
		"seasonal_recommendations",
		map[string]any{"month": month, "preferences": preferences},
		question,
		fmt.Sprintf("seasonal travel for %s", monthName),
	)
	if err != nil {
		return SeasonalRecommendation{}, fmt.Errorf("seasonal recommendations: %w", err)
	}

	return SeasonalRecommendation{
		Month:       monthName,
		Report:      report,
		Preferences: preferences,
		GeneratedAt: e.now(),
	}, nil
}

// Activities designs a day-by-day activity plan for a destination.
func (e *Engine) Activities(ctx context.Context, destination string, interests []string, travelStyle string, durationDays int) (ActivityPlan, error) {
	if travelStyle == "" {
		travelStyle = "balanced"
	}

	question := fmt.Sprintf(`Create activity recommendations for:

Destination: %s
Interests: %s
Travel style: %s
Trip duration: %d days

Provide a day-by-day activity plan including:
- Must-do experiences
- Hidden gems
- Cultural activities
- Outdoor adventures
- Relaxation options
- Local experiences

For each activity include:
- Activity name and type
- Duration and best time
- Cost estimate
- Booking requirements
- Why it matches their interests
- Nearby activities to combine

Balance the itinerary between:
- Popular attractions and local experiences
- Active and relaxing activities
- Indoor and outdoor options
- Different price points`,
		destination, joinOr(interests, "general sightseeing"), travelStyle, durationDays)

	plan, err := e.cachedAnswer(ctx,
		"activity_recommendations",
		map[string]any{"destination": destination, "interests": interests, "style": travelStyle, "days": durationDays},
		question,
		fmt.Sprintf("activities for %s", destination),
	)
	if err != nil {
		return ActivityPlan{}, fmt.Errorf("activity recommendations: %w", err)
	}

	return ActivityPlan{
		Destination: destination,
		Plan:        plan,
		Interests:   interests,
		TravelStyle: travelStyle,
		Duration:    durationDays,
		GeneratedAt: e.now(),
	}, nil
}

// BudgetOptimized ranks candidate destinations by value under a total budget.
func (e *Engine) BudgetOptimized(ctx context.Context, destinations []string, budget float64, start, end time.Time, partySize int) (BudgetAnalysis, error) {
	duration := int(end.Sub(start).Hours() / 24)

	question := fmt.Sprintf(`Optimize travel recommendations for:

Destinations being considered: %s
Total budget: $%.2f
Travel duration: %d days
Party size: %d
Travel dates: %s to %s

For each destination, provide:
- Estimated total cost breakdown
- Budget optimization strategies
- Best value accommodations
- Free/low-cost activities
- Money-saving tips
- Value rating (1-10)

Rank destinations by overall value considering:
- Cost vs experience quality
- Seasonal pricing
- Hidden costs to avoid
- Budget stretch opportunities`,
		joinOr(destinations, "none"), budget, duration, partySize,
		start.Format("2006-01-02"), end.Format("2006-01-02"))

	analysis, err := e.cachedAnswer(ctx,
		"budget_optimized_suggestions",
		map[string]any{"destinations": destinations, "budget": budget, "start": start.Format("2006-01-02"), "end": end.Format("2006-01-02"), "party": partySize},
		question,
		"budget optimization",
	)
	if err != nil {
		return BudgetAnalysis{}, fmt.Errorf("budget optimized suggestions: %w", err)
	}

	daily := budget
	if duration > 0 {
		daily = budget / float64(duration)
	}
	perPerson := budget
	if partySize > 0 {
		perPerson = budget / float64(partySize)
	}

	return BudgetAnalysis{
		Analysis:        analysis,
		TotalBudget:     budget,
		DailyBudget:     daily,
		PerPersonBudget: perPerson,
		Destinations:    destinations,
		GeneratedAt:     e.now(),
	}, nil
}

// PersonalizationScore measures how well recommendations can be tailored to
// the given profile. Deterministic; capped at 100.
func PersonalizationScore(preferences map[string]any, history []map[string]any) float64 {
	score := 0.0

	if len(preferences) > 0 {
		score += 30

		if len(preferences) > 5 {
			score += 20
		}
		if v, ok := preferences["activities"]; ok && nonEmpty(v) {
			score += 15
		}
		if _, ok := preferences["accommodation"]; ok {
			score += 10
		}
		if _, ok := preferences["budget"]; ok {
			score += 10
		}
	}

	if len(history) > 0 {
		score += 15
		if len(history) > 3 {
			score += 10
		}
	}

	if score > 100 {
		return 100
	}
	return score
}

// nonEmpty reports whether a preference value carries content.
func nonEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case []string:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

func mustJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func joinOr(parts []string, fallback string) string {
	if len(parts) == 0 {
		return fallback
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}
