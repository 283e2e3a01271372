// README: API gateway; registers HTTP routes and delegates to the planning services.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelsmart/internal/models"
	"travelsmart/internal/recommend"
	"travelsmart/internal/store"
)

// Planner is the orchestrator surface the handlers depend on.
type Planner interface {
	PlanTrip(ctx context.Context, req models.TripRequest) models.TripPlanResult
	BookTrip(ctx context.Context, payload map[string]any) map[string]any
	GetWeatherData(ctx context.Context, destination string, start, end time.Time) map[string]any
	GetTravelInsights(ctx context.Context, destination string, travelType models.TravelType, partySize int) map[string]any
	SearchFlights(ctx context.Context, req models.TripRequest) []map[string]any
	SearchHotels(ctx context.Context, req models.TripRequest) []map[string]any
	Health(ctx context.Context) map[string]bool
}

// Recommender is the recommendation surface the handlers depend on.
type Recommender interface {
	Personalized(ctx context.Context, preferences map[string]any, history []map[string]any, budget *recommend.BudgetRange) (recommend.Recommendation, error)
	SimilarDestinations(ctx context.Context, liked string, preferences map[string]any) ([]recommend.Destination, error)
	Seasonal(ctx context.Context, month int, preferences map[string]any) (recommend.SeasonalRecommendation, error)
	Activities(ctx context.Context, destination string, interests []string, travelStyle string, durationDays int) (recommend.ActivityPlan, error)
	BudgetOptimized(ctx context.Context, destinations []string, budget float64, start, end time.Time, partySize int) (recommend.BudgetAnalysis, error)
}

// Assistant covers the direct model operations exposed over HTTP.
type Assistant interface {
	OptimizeItinerary(ctx context.Context, itinerary, constraints map[string]any) (string, error)
	AnswerQuestion(ctx context.Context, question, questionContext string) (string, error)
	GeneratePackingList(ctx context.Context, destination string, start, end time.Time, forecast any, activities []string) (string, error)
}

// BookingStore persists booking confirmations. Optional.
type BookingStore interface {
	Save(ctx context.Context, b *store.Booking) error
	Get(ctx context.Context, bookingID string) (*store.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*store.Booking, error)
}

// PreferenceStore persists user preference documents. Optional.
type PreferenceStore interface {
	Upsert(ctx context.Context, userID string, preferences map[string]any) error
	Get(ctx context.Context, userID string) (map[string]any, error)
}

// Notifier emits booking events. Optional; use notify.Nop when unset.
type Notifier interface {
	BookingConfirmed(ctx context.Context, bookingID string, confirmation map[string]any)
	BookingUpdated(ctx context.Context, bookingID, status string)
}

type ServerDeps struct {
	Planner     Planner
	Recommender Recommender
	Assistant   Assistant
	Bookings    BookingStore
	Preferences PreferenceStore
	Notifier    Notifier
	Log         *zap.Logger
}

type Server struct {
	planner     Planner
	recommender Recommender
	assistant   Assistant
	bookings    BookingStore
	preferences PreferenceStore
	notifier    Notifier
	log         *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		planner:     deps.Planner,
		recommender: deps.Recommender,
		assistant:   deps.Assistant,
		bookings:    deps.Bookings,
		preferences: deps.Preferences,
		notifier:    deps.Notifier,
		log:         deps.Log,
	}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.HandleHealth)

	api := r.Group("/api/v1")
	api.POST("/trips/plan", s.HandlePlanTrip)
	api.POST("/trips/book", s.HandleBookTrip)

	api.GET("/weather", s.HandleWeather)
	api.GET("/insights", s.HandleInsights)
	api.POST("/flights/search", s.HandleSearchFlights)
	api.POST("/hotels/search", s.HandleSearchHotels)

	api.POST("/recommendations/personalized", s.HandlePersonalized)
	api.POST("/recommendations/similar", s.HandleSimilar)
	api.GET("/recommendations/seasonal", s.HandleSeasonal)
	api.POST("/recommendations/activities", s.HandleActivities)
	api.POST("/recommendations/budget", s.HandleBudget)

	api.POST("/packing-list", s.HandlePackingList)
	api.POST("/itinerary/optimize", s.HandleOptimizeItinerary)
	api.POST("/ask", s.HandleAsk)

	api.GET("/bookings/:id", s.HandleGetBooking)
	api.GET("/users/:id/bookings", s.HandleListBookings)
	api.PUT("/users/:id/preferences", s.HandlePutPreferences)
	api.GET("/users/:id/preferences", s.HandleGetPreferences)

	return r
}

// HandleHealth reports service and backend health.
func (s *Server) HandleHealth(c *gin.Context) {
	backends := s.planner.Health(c.Request.Context())

	status := "healthy"
	for _, ok := range backends {
		if !ok {
			status = "degraded"
			break
		}
	}
	writeJSON(c, http.StatusOK, gin.H{
		"status":   status,
		"service":  "travelsmart-api",
		"backends": backends,
	})
}
