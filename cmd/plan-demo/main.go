// README: End-to-end demo; plans a Paris trip against locally running backends.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"travelsmart/internal/ai"
	"travelsmart/internal/backend"
	"travelsmart/internal/config"
	"travelsmart/internal/models"
	"travelsmart/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	assistant, err := ai.NewGemini(ctx, apiKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize assistant: %v", err)
	}
	defer assistant.Close()

	zlog := zap.NewNop()
	orchestrator := service.NewOrchestrator(service.Deps{
		Assistant: assistant,
		Weather:   backend.NewClient("weather", cfg.WeatherURL, zlog),
		Insights:  backend.NewClient("insights", cfg.InsightsURL, zlog),
		Booking:   backend.NewClient("booking", cfg.BookingURL, zlog),
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

	result := orchestrator.PlanTrip(ctx, req)
	if result.Status != models.StatusSuccess {
		log.Fatalf("Planning failed: %s", result.Message)
	}

	fmt.Println("=== Travel Plan ===")
	fmt.Println(result.TravelPlan)
	fmt.Printf("\nFlights found: %d\n", len(result.FlightOptions))
	fmt.Printf("Hotels found:  %d\n", len(result.HotelOptions))
	if result.WeatherForecast != nil {
		fmt.Println("Weather forecast included.")
	}
}
