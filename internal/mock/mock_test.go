package mock

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func callTool(t *testing.T, srv *httptest.Server, tool string, parameters map[string]any) (*http.Response, []byte) {
	t.Helper()
	body, err := json.Marshal(map[string]any{"tool": tool, "parameters": parameters})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(srv.URL+"/call", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /call: %v", err)
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, buf.Bytes()
}

func TestHealthEndpoint(t *testing.T) {
	srv := httptest.NewServer(NewWeatherServer(zap.NewNop()).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "healthy" || body["service"] != "weather-backend" {
		t.Errorf("health body = %v", body)
	}
}

func TestUnknownToolRejected(t *testing.T) {
	srv := httptest.NewServer(NewWeatherServer(zap.NewNop()).Router())
	defer srv.Close()

	resp, raw := callTool(t, srv, "summon_rain", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if !strings.Contains(string(raw), "Unknown tool") {
		t.Errorf("body = %s", raw)
	}
}

func TestWeatherForecast(t *testing.T) {
	srv := httptest.NewServer(NewWeatherServer(zap.NewNop()).Router())
	defer srv.Close()

	resp, raw := callTool(t, srv, "get_weather_forecast", map[string]any{
		"location":   "Paris",
		"start_date": "2026-09-10",
		"end_date":   "2026-09-17",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, raw)
	}

	var body struct {
		Location string           `json:"location"`
		Forecast []map[string]any `json:"forecast"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Location != "Paris" {
		t.Errorf("location = %q", body.Location)
	}
	if len(body.Forecast) != 5 {
		t.Errorf("forecast has %d days, want 5", len(body.Forecast))
	}
	for i, day := range body.Forecast {
		if day["temperature"] == nil || day["weather"] == nil {
			t.Errorf("day %d missing fields: %v", i, day)
		}
	}
}

func TestWeatherForecastRequiresLocation(t *testing.T) {
	srv := httptest.NewServer(NewWeatherServer(zap.NewNop()).Router())
	defer srv.Close()

	resp, _ := callTool(t, srv, "get_weather_forecast", map[string]any{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestInsightsKnownAndGeneric(t *testing.T) {
	srv := httptest.NewServer(NewInsightsServer(zap.NewNop()).Router())
	defer srv.Close()

	_, raw := callTool(t, srv, "get_destination_insights", map[string]any{
		"destination": "Paris",
		"travel_type": "leisure",
	})
	var parisBody struct {
		Insights map[string]any `json:"insights"`
	}
	if err := json.Unmarshal(raw, &parisBody); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if parisBody.Insights["currency"] != "EUR" {
		t.Errorf("Paris currency = %v", parisBody.Insights["currency"])
	}

	// Unknown destinations get the generic profile, matched case-insensitively.
	_, raw = callTool(t, srv, "get_destination_insights", map[string]any{"destination": "Ouagadougou"})
	var genericBody struct {
		Insights map[string]any `json:"insights"`
	}
	if err := json.Unmarshal(raw, &genericBody); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got, _ := genericBody.Insights["overview"].(string); !strings.Contains(got, "Ouagadougou") {
		t.Errorf("generic overview = %q", got)
	}
	if genericBody.Insights["cost_level"] != "Medium" {
		t.Errorf("generic cost level = %v", genericBody.Insights["cost_level"])
	}

	_, raw = callTool(t, srv, "get_destination_insights", map[string]any{"destination": "TOKYO"})
	var tokyoBody struct {
		Insights map[string]any `json:"insights"`
	}
	if err := json.Unmarshal(raw, &tokyoBody); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tokyoBody.Insights["currency"] != "JPY" {
		t.Errorf("TOKYO did not match the tokyo record: %v", tokyoBody.Insights["currency"])
	}
}

func TestBookingSearchAndBook(t *testing.T) {
	booking := NewBookingServer(zap.NewNop())
	srv := httptest.NewServer(booking.Router())
	defer srv.Close()

	_, raw := callTool(t, srv, "search_flights", map[string]any{
		"origin":      "New York",
		"destination": "Paris",
	})
	var flights []map[string]any
	if err := json.Unmarshal(raw, &flights); err != nil {
		t.Fatalf("decode flights: %v", err)
	}
	if len(flights) != 2 {
		t.Fatalf("got %d flights, want 2", len(flights))
	}
	if flights[0]["flight_number"] != "AF007" || flights[1]["price"] != 580.00 {
		t.Errorf("unexpected offers: %v", flights)
	}
	if flights[0]["origin"] != "New York" || flights[0]["destination"] != "Paris" {
		t.Errorf("offer does not echo route: %v", flights[0])
	}

	_, raw = callTool(t, srv, "search_hotels", map[string]any{"destination": "Paris"})
	var hotels []map[string]any
	if err := json.Unmarshal(raw, &hotels); err != nil {
		t.Fatalf("decode hotels: %v", err)
	}
	if len(hotels) != 2 || hotels[0]["hotel_id"] != "HT001" {
		t.Errorf("unexpected hotels: %v", hotels)
	}

	_, raw = callTool(t, srv, "book_trip", map[string]any{"flight_id": "FL001"})
	var confirmation map[string]any
	if err := json.Unmarshal(raw, &confirmation); err != nil {
		t.Fatalf("decode confirmation: %v", err)
	}
	if confirmation["success"] != true || confirmation["status"] != "confirmed" {
		t.Fatalf("confirmation = %v", confirmation)
	}
	number, _ := confirmation["confirmation_number"].(string)
	if !strings.HasPrefix(number, "TS") || len(number) != 10 {
		t.Errorf("confirmation_number = %q", number)
	}

	id, _ := confirmation["booking_id"].(string)
	if _, ok := booking.Booking(id); !ok {
		t.Errorf("booking %q not stored", id)
	}
}
