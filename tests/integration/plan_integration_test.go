package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"travelsmart/internal/backend"
	"travelsmart/internal/mock"
	"travelsmart/internal/models"
	"travelsmart/internal/service"
)

// scriptedAssistant stands in for the model so the wiring test does not need
// an API key.
type scriptedAssistant struct{}

func (scriptedAssistant) GenerateTravelPlan(ctx context.Context, req models.TripRequest, weather, insights any) (string, error) {
	return "Day 1: arrive in " + req.Destination + ".", nil
}

func (scriptedAssistant) OptimizeItinerary(ctx context.Context, itinerary, constraints map[string]any) (string, error) {
	return "optimized", nil
}

func (scriptedAssistant) AnswerQuestion(ctx context.Context, question, questionContext string) (string, error) {
	return "answer", nil
}

func (scriptedAssistant) GeneratePackingList(ctx context.Context, destination string, start, end time.Time, forecast any, activities []string) (string, error) {
	return "list", nil
}

// TestPlanFlowAgainstMockBackends exercises the orchestrator through real
// HTTP round trips to the stand-in backends.
func TestPlanFlowAgainstMockBackends(t *testing.T) {
	zlog := zap.NewNop()

	weatherSrv := httptest.NewServer(mock.NewWeatherServer(zlog).Router())
	defer weatherSrv.Close()
	insightsSrv := httptest.NewServer(mock.NewInsightsServer(zlog).Router())
	defer insightsSrv.Close()
	bookingSrv := httptest.NewServer(mock.NewBookingServer(zlog).Router())
	defer bookingSrv.Close()

	orchestrator := service.NewOrchestrator(service.Deps{
		Assistant: scriptedAssistant{},
		Weather:   backend.NewClient("weather", weatherSrv.URL, zlog),
		Insights:  backend.NewClient("insights", insightsSrv.URL, zlog),
		Booking:   backend.NewClient("booking", bookingSrv.URL, zlog),
		Log:       zlog,
	})

	budget := 3000.0
	req := models.TripRequest{
		Destination:   "Paris",
		DepartureCity: "New York",
		StartDate:     time.Now().AddDate(0, 1, 0),
		EndDate:       time.Now().AddDate(0, 1, 7),
		Budget:        &budget,
		TravelType:    models.TravelLeisure,
		PartySize:     2,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := orchestrator.PlanTrip(ctx, req)
	if result.Status != models.StatusSuccess {
		t.Fatalf("plan failed: %s", result.Message)
	}
	if !strings.Contains(result.TravelPlan, "Paris") {
		t.Errorf("TravelPlan = %q", result.TravelPlan)
	}
	if result.WeatherForecast == nil || result.LocalInsights == nil {
		t.Error("context payloads missing from successful plan")
	}
	if len(result.FlightOptions) != 2 || len(result.HotelOptions) != 2 {
		t.Errorf("offers = %d flights, %d hotels", len(result.FlightOptions), len(result.HotelOptions))
	}

	confirmation := orchestrator.BookTrip(ctx, map[string]any{"flight_id": "FL001"})
	number, _ := confirmation["confirmation_number"].(string)
	if !strings.HasPrefix(number, "TS") {
		t.Errorf("confirmation = %v", confirmation)
	}

	health := orchestrator.Health(ctx)
	for name, ok := range health {
		if !ok {
			t.Errorf("backend %s unhealthy", name)
		}
	}

	// A dead backend degrades, it does not abort.
	weatherSrv.Close()
	result = orchestrator.PlanTrip(ctx, req)
	if result.Status != models.StatusSuccess {
		t.Fatalf("plan failed after weather outage: %s", result.Message)
	}
	if result.WeatherForecast != nil {
		t.Error("weather payload present after outage")
	}
}

// TestDeployedAPIHealth hits a running deployment when one is configured.
func TestDeployedAPIHealth(t *testing.T) {
	if os.Getenv("TRAVELSMART_INTEGRATION") == "" {
		t.Skip("TRAVELSMART_INTEGRATION not set")
	}

	baseURL := strings.TrimRight(os.Getenv("TRAVELSMART_API_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	client := &http.Client{Timeout: 30 * time.Second}

	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}

	var health struct {
		Status   string          `json:"status"`
		Backends map[string]bool `json:"backends"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	t.Logf("deployment status: %s, backends: %v", health.Status, health.Backends)

	body, _ := json.Marshal(map[string]any{
		"destination":    "Paris",
		"departure_city": "New York",
		"start_date":     time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		"end_date":       time.Now().AddDate(0, 1, 7).Format("2006-01-02"),
		"party_size":     2,
	})
	planResp, err := client.Post(baseURL+"/api/v1/trips/plan", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/v1/trips/plan: %v", err)
	}
	defer planResp.Body.Close()
	if planResp.StatusCode != http.StatusOK {
		t.Fatalf("plan status = %d", planResp.StatusCode)
	}
}
