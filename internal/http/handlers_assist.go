// README: Recommendation and assistant-backed handlers.
package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"travelsmart/internal/recommend"
)

type personalizedReq struct {
	Preferences map[string]any         `json:"preferences"`
	History     []map[string]any       `json:"travel_history"`
	Budget      *recommend.BudgetRange `json:"budget_range"`
}

// HandlePersonalized handles POST /api/v1/recommendations/personalized.
func (s *Server) HandlePersonalized(c *gin.Context) {
	var body personalizedReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	rec, err := s.recommender.Personalized(c.Request.Context(), body.Preferences, body.History, body.Budget)
	if err != nil {
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, rec)
}

type similarReq struct {
	Destination string         `json:"destination"`
	Preferences map[string]any `json:"preferences"`
}

// HandleSimilar handles POST /api/v1/recommendations/similar.
func (s *Server) HandleSimilar(c *gin.Context) {
	var body similarReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Destination == "" {
		writeError(c, http.StatusBadRequest, "destination is required")
		return
	}

	destinations, err := s.recommender.SimilarDestinations(c.Request.Context(), body.Destination, body.Preferences)
	if err != nil {
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	if destinations == nil {
		destinations = []recommend.Destination{}
	}
	writeJSON(c, http.StatusOK, gin.H{"destinations": destinations})
}

// HandleSeasonal handles GET /api/v1/recommendations/seasonal.
func (s *Server) HandleSeasonal(c *gin.Context) {
	month := int(time.Now().Month())
	if raw := c.Query("month"); raw != "" {
		var err error
		month, err = strconv.Atoi(raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, "month must be an integer")
			return
		}
	}

	rec, err := s.recommender.Seasonal(c.Request.Context(), month, nil)
	if err != nil {
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, rec)
}

type activitiesReq struct {
	Destination string   `json:"destination"`
	Interests   []string `json:"interests"`
	TravelStyle string   `json:"travel_style"`
	Duration    int      `json:"duration"`
}

// HandleActivities handles POST /api/v1/recommendations/activities.
func (s *Server) HandleActivities(c *gin.Context) {
	var body activitiesReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Destination == "" {
		writeError(c, http.StatusBadRequest, "destination is required")
		return
	}
	if body.Duration <= 0 {
		body.Duration = 3
	}

	plan, err := s.recommender.Activities(c.Request.Context(), body.Destination, body.Interests, body.TravelStyle, body.Duration)
	if err != nil {
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, plan)
}

type budgetReq struct {
	Destinations []string `json:"destinations"`
	TotalBudget  float64  `json:"total_budget"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	PartySize    int      `json:"party_size"`
}

// HandleBudget handles POST /api/v1/recommendations/budget.
func (s *Server) HandleBudget(c *gin.Context) {
	var body budgetReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if body.TotalBudget <= 0 {
		writeError(c, http.StatusBadRequest, "total_budget must be positive")
		return
	}
	start, err := parseDate("start_date", body.StartDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDate("end_date", body.EndDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if body.PartySize <= 0 {
		body.PartySize = 1
	}

	analysis, err := s.recommender.BudgetOptimized(c.Request.Context(), body.Destinations, body.TotalBudget, start, end, body.PartySize)
	if err != nil {
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, analysis)
}

type packingReq struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Activities  []string `json:"activities"`
}

// HandlePackingList handles POST /api/v1/packing-list. The current forecast
// is folded in when the weather backend is reachable.
func (s *Server) HandlePackingList(c *gin.Context) {
	var body packingReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Destination == "" {
		writeError(c, http.StatusBadRequest, "destination is required")
		return
	}
	start, err := parseDate("start_date", body.StartDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDate("end_date", body.EndDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	var forecast any
	if m := s.planner.GetWeatherData(c.Request.Context(), body.Destination, start, end); m != nil {
		forecast = m
	}

	list, err := s.assistant.GeneratePackingList(c.Request.Context(), body.Destination, start, end, forecast, body.Activities)
	if err != nil {
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"destination":  body.Destination,
		"packing_list": list,
	})
}

type optimizeReq struct {
	Itinerary   map[string]any `json:"itinerary"`
	Constraints map[string]any `json:"constraints"`
}

// HandleOptimizeItinerary handles POST /api/v1/itinerary/optimize.
func (s *Server) HandleOptimizeItinerary(c *gin.Context) {
	var body optimizeReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if len(body.Itinerary) == 0 {
		writeError(c, http.StatusBadRequest, "itinerary is required")
		return
	}

	optimized, err := s.assistant.OptimizeItinerary(c.Request.Context(), body.Itinerary, body.Constraints)
	if err != nil {
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"optimized_itinerary": optimized})
}

type askReq struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// HandleAsk handles POST /api/v1/ask.
func (s *Server) HandleAsk(c *gin.Context) {
	var body askReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Question == "" {
		writeError(c, http.StatusBadRequest, "question is required")
		return
	}

	answer, err := s.assistant.AnswerQuestion(c.Request.Context(), body.Question, body.Context)
	if err != nil {
		writeError(c, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"answer": answer})
}
