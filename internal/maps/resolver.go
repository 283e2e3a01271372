// README: Google Maps geocoding; resolves a destination string to a Location.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"travelsmart/internal/models"
)

// Resolver geocodes destination names for plan enrichment. Resolution is
// best-effort; callers must treat failures as non-fatal.
type Resolver struct {
	client *maps.Client
}

// NewResolver creates a Resolver with the given API key.
func NewResolver(apiKey string) (*Resolver, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Resolver{client: client}, nil
}

// Resolve geocodes a destination into a Location with coordinates.
func (r *Resolver) Resolve(ctx context.Context, destination string) (*models.Location, error) {
	results, err := r.client.Geocode(ctx, &maps.GeocodingRequest{Address: destination})
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", destination, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no geocoding result for %q", destination)
	}

	best := results[0]
	lat := best.Geometry.Location.Lat
	lng := best.Geometry.Location.Lng

	loc := &models.Location{
		City:      destination,
		Latitude:  &lat,
		Longitude: &lng,
	}
	for _, component := range best.AddressComponents {
		for _, t := range component.Types {
			switch t {
			case "locality":
				loc.City = component.LongName
			case "country":
				loc.Country = component.LongName
			}
		}
	}
	return loc, nil
}
