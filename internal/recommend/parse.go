package recommend

import "strings"

// Destination is one parsed record from a similar-destinations answer.
type Destination struct {
	Name    string   `json:"name"`
	Details []string `json:"details"`
}

// destination-indicating keywords; a line containing one starts a new record.
var destinationMarkers = []string{"destination:", "city:", "country:"}

// ParseDestinations segments a free-text model answer into destination
// records. Best-effort by contract: unrecognized text yields a partial or
// empty list, never an error.
func ParseDestinations(response string) []Destination {
	var destinations []Destination
	var current *Destination

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if containsMarker(line) {
			if current != nil {
				destinations = append(destinations, *current)
			}
			current = &Destination{Name: line}
			continue
		}
		if current != nil {
			current.Details = append(current.Details, line)
		}
	}

	if current != nil {
		destinations = append(destinations, *current)
	}
	return destinations
}

func containsMarker(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range destinationMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
