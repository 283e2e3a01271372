// README: Orchestrator; fans out to weather/insights/booking backends and the assistant.
package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"travelsmart/internal/ai"
	"travelsmart/internal/backend"
	"travelsmart/internal/models"
)

const dateLayout = "2006-01-02"

// DestinationResolver enriches a plan with a geocoded destination.
type DestinationResolver interface {
	Resolve(ctx context.Context, destination string) (*models.Location, error)
}

// Orchestrator coordinates the weather, insights and booking backends and
// the assistant into trip-planning results. Each backend call is isolated:
// one backend's failure never aborts the others. Only narrative generation
// is fatal to a planning request.
type Orchestrator struct {
	assistant ai.Assistant
	weather   backend.Caller
	insights  backend.Caller
	booking   backend.Caller
	resolver  DestinationResolver // optional
	log       *zap.Logger
}

type Deps struct {
	Assistant ai.Assistant
	Weather   backend.Caller
	Insights  backend.Caller
	Booking   backend.Caller
	Resolver  DestinationResolver
	Log       *zap.Logger
}

func NewOrchestrator(deps Deps) *Orchestrator {
	return &Orchestrator{
		assistant: deps.Assistant,
		weather:   deps.Weather,
		insights:  deps.Insights,
		booking:   deps.Booking,
		resolver:  deps.Resolver,
		log:       deps.Log,
	}
}

// PlanTrip runs the full planning flow for an already-validated request:
//
//  1. weather and insights lookups run concurrently; each failure degrades
//     to an absent payload,
//  2. the assistant generates the narrative from whatever data is present;
//     a failure here fails the whole request and skips the offer searches,
//  3. flight and hotel searches each degrade to an empty list on failure.
func (o *Orchestrator) PlanTrip(ctx context.Context, req models.TripRequest) models.TripPlanResult {
	o.log.Info("planning trip",
		zap.String("destination", req.Destination),
		zap.String("departure", req.DepartureCity),
	)

	var weather, insights map[string]any
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		weather = o.GetWeatherData(ctx, req.Destination, req.StartDate, req.EndDate)
	}()
	go func() {
		defer wg.Done()
		insights = o.GetTravelInsights(ctx, req.Destination, req.TravelType, req.PartySize)
	}()
	wg.Wait()

	plan, err := o.assistant.GenerateTravelPlan(ctx, req, payloadOrNil(weather), payloadOrNil(insights))
	if err != nil {
		o.log.Error("narrative generation failed", zap.String("destination", req.Destination), zap.Error(err))
		return models.TripPlanResult{
			Status:        models.StatusError,
			Message:       err.Error(),
			Request:       &req,
			FlightOptions: []map[string]any{},
			HotelOptions:  []map[string]any{},
		}
	}

	flights := o.SearchFlights(ctx, req)
	hotels := o.SearchHotels(ctx, req)

	result := models.TripPlanResult{
		Status:          models.StatusSuccess,
		TravelPlan:      plan,
		WeatherForecast: weather,
		LocalInsights:   insights,
		FlightOptions:   flights,
		HotelOptions:    hotels,
		Request:         &req,
	}

	if o.resolver != nil {
		if loc, err := o.resolver.Resolve(ctx, req.Destination); err == nil {
			result.Destination = loc
		} else {
			o.log.Debug("destination resolution skipped", zap.String("destination", req.Destination), zap.Error(err))
		}
	}

	return result
}

// GetWeatherData returns the weather forecast payload, or nil when the
// weather backend is unavailable.
func (o *Orchestrator) GetWeatherData(ctx context.Context, destination string, start, end time.Time) map[string]any {
	res := o.weather.Call(ctx, "get_weather_forecast", map[string]any{
		"location":   destination,
		"start_date": start.Format(dateLayout),
		"end_date":   end.Format(dateLayout),
	})
	if !res.OK() {
		return nil
	}
	return asMap(res.Payload)
}

// GetTravelInsights returns destination insights, or nil when the insights
// backend is unavailable.
func (o *Orchestrator) GetTravelInsights(ctx context.Context, destination string, travelType models.TravelType, partySize int) map[string]any {
	res := o.insights.Call(ctx, "get_destination_insights", map[string]any{
		"destination": destination,
		"travel_type": string(travelType),
		"party_size":  partySize,
	})
	if !res.OK() {
		return nil
	}
	return asMap(res.Payload)
}

// SearchFlights returns flight offers for the request, or an empty list when
// the booking backend is unavailable.
func (o *Orchestrator) SearchFlights(ctx context.Context, req models.TripRequest) []map[string]any {
	res := o.booking.Call(ctx, "search_flights", map[string]any{
		"origin":         req.DepartureCity,
		"destination":    req.Destination,
		"departure_date": req.StartDate.Format(dateLayout),
		"return_date":    req.EndDate.Format(dateLayout),
		"passengers":     req.PartySize,
		"budget":         req.Budget,
	})
	if !res.OK() {
		return []map[string]any{}
	}
	return asList(res.Payload)
}

// SearchHotels returns hotel offers for the request, or an empty list when
// the booking backend is unavailable.
func (o *Orchestrator) SearchHotels(ctx context.Context, req models.TripRequest) []map[string]any {
	res := o.booking.Call(ctx, "search_hotels", map[string]any{
		"destination": req.Destination,
		"check_in":    req.StartDate.Format(dateLayout),
		"check_out":   req.EndDate.Format(dateLayout),
		"guests":      req.PartySize,
		"budget":      req.Budget,
	})
	if !res.OK() {
		return []map[string]any{}
	}
	return asList(res.Payload)
}

// BookTrip delegates a booking payload to the booking backend and passes the
// confirmation through unchanged. Failures become an error-status map.
func (o *Orchestrator) BookTrip(ctx context.Context, payload map[string]any) map[string]any {
	o.log.Info("booking trip")

	res := o.booking.Call(ctx, "book_trip", payload)
	if !res.OK() {
		return map[string]any{
			"status":  string(models.StatusError),
			"message": res.Err.Error(),
		}
	}
	if confirmation := asMap(res.Payload); confirmation != nil {
		return confirmation
	}
	return map[string]any{
		"status":  string(models.StatusError),
		"message": "booking backend returned an unexpected payload shape",
	}
}

// Health probes every backend's liveness endpoint.
func (o *Orchestrator) Health(ctx context.Context) map[string]bool {
	return map[string]bool{
		"weather":  o.weather.HealthCheck(ctx),
		"insights": o.insights.HealthCheck(ctx),
		"booking":  o.booking.HealthCheck(ctx),
	}
}

func asMap(payload any) map[string]any {
	m, _ := payload.(map[string]any)
	return m
}

func asList(payload any) []map[string]any {
	items, ok := payload.([]any)
	if !ok {
		return []map[string]any{}
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func payloadOrNil(m map[string]any) any {
	if m == nil {
		return nil
	}
	return m
}
