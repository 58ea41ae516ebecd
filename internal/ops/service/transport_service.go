package service

import (
	"fmt"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
)

// TransportService delivery route planning
type TransportService struct{}

func NewTransportService() *TransportService {
	return &TransportService{}
}

// nameDistance is a proxy metric over location names: the sum of absolute
// byte differences position by position, with the longer tail counted in
// full. It stands in for geographic distance until geocoding lands.
func nameDistance(a, b string) int {
	dist := 0
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		d := int(a[i]) - int(b[i])
		if d < 0 {
			d = -d
		}
		dist += d
	}
	for i := n; i < len(a); i++ {
		dist += int(a[i])
	}
	for i := n; i < len(b); i++ {
		dist += int(b[i])
	}
	return dist
}

// OptimizeRoute orders locations by greedy nearest neighbor starting from
// the first element. Ties keep the earlier element in the original input.
// Deterministic for a fixed input.
func (s *TransportService) OptimizeRoute(locations []string) ([]string, error) {
	if len(locations) < 2 {
		return nil, fmt.Errorf("%w: at least two locations are required", httputil.ErrValidation)
	}

	remaining := make([]string, len(locations)-1)
	copy(remaining, locations[1:])

	route := make([]string, 0, len(locations))
	route = append(route, locations[0])
	current := locations[0]

	for len(remaining) > 0 {
		best := 0
		bestDist := nameDistance(current, remaining[0])
		for i := 1; i < len(remaining); i++ {
			if d := nameDistance(current, remaining[i]); d < bestDist {
				best = i
				bestDist = d
			}
		}
		current = remaining[best]
		route = append(route, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return route, nil
}
