// README: Stand-in weather backend with generated forecasts.
package mock

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// NewWeatherServer serves generated forecast data keyed off the current date.
func NewWeatherServer(log *zap.Logger) *Server {
	return NewServer("weather-backend", map[string]ToolFunc{
		"get_weather_forecast": getWeatherForecast,
		"get_current_weather":  getCurrentWeather,
		"get_weather_alerts":   getWeatherAlerts,
	}, log)
}

func getWeatherForecast(params map[string]any) (any, error) {
	location, ok := params["location"].(string)
	if !ok || location == "" {
		return nil, errors.New("location is required")
	}

	return map[string]any{
		"location":   location,
		"forecast":   generateForecast(time.Now()),
		"start_date": params["start_date"],
		"end_date":   params["end_date"],
	}, nil
}

func getCurrentWeather(params map[string]any) (any, error) {
	location, ok := params["location"].(string)
	if !ok || location == "" {
		return nil, errors.New("location is required")
	}

	return map[string]any{
		"location": location,
		"current_weather": map[string]any{
			"temperature": map[string]any{
				"current":    22.0,
				"feels_like": 20.0,
				"min":        18.0,
				"max":        26.0,
			},
			"humidity":   65,
			"pressure":   1013,
			"weather":    map[string]any{"main": "Clear", "description": "Clear sky"},
			"wind":       map[string]any{"speed": 3.5, "direction": 180},
			"visibility": 10,
			"timestamp":  time.Now().Format(time.RFC3339),
		},
	}, nil
}

func getWeatherAlerts(params map[string]any) (any, error) {
	location, ok := params["location"].(string)
	if !ok || location == "" {
		return nil, errors.New("location is required")
	}
	return map[string]any{
		"location": location,
		"alerts":   []any{},
		"message":  "No active weather alerts",
	}, nil
}

// generateForecast produces five days of plausible weather starting at from.
func generateForecast(from time.Time) []map[string]any {
	const baseTemp = 20.0

	forecast := make([]map[string]any, 0, 5)
	for i := 0; i < 5; i++ {
		date := from.AddDate(0, 0, i)
		temp := baseTemp + float64(i*2) - 5

		sky, description := "Clear", "Clear sky"
		if i%2 != 0 {
			sky, description = "Cloudy", "Partly cloudy"
		}

		forecast = append(forecast, map[string]any{
			"date": date.Format("2006-01-02 15:04:05"),
			"temperature": map[string]any{
				"current":    temp,
				"feels_like": temp - 2,
				"min":        temp - 5,
				"max":        temp + 5,
			},
			"humidity": 60 + i*5,
			"weather":  map[string]any{"main": sky, "description": description},
			"wind":     map[string]any{"speed": 5 + i, "direction": 180},
		})
	}
	return forecast
}
