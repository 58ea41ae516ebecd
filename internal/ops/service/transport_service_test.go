package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
)

func TestOptimizeRouteTooFewLocations(t *testing.T) {
	svc := NewTransportService()

	for _, locations := range [][]string{nil, {}, {"Colombo"}} {
		_, err := svc.OptimizeRoute(locations)
		if !errors.Is(err, httputil.ErrValidation) {
			t.Errorf("OptimizeRoute(%v): expected validation error, got %v", locations, err)
		}
	}
}

func TestOptimizeRouteTwoLocations(t *testing.T) {
	svc := NewTransportService()

	route, err := svc.OptimizeRoute([]string{"A", "B"})
	if err != nil {
		t.Fatalf("OptimizeRoute: %v", err)
	}
	if !reflect.DeepEqual(route, []string{"A", "B"}) {
		t.Errorf("Expected [A B], got %v", route)
	}
}

func TestOptimizeRouteStartsAtFirstElement(t *testing.T) {
	svc := NewTransportService()

	route, err := svc.OptimizeRoute([]string{"Kandy", "Galle", "Kandana"})
	if err != nil {
		t.Fatalf("OptimizeRoute: %v", err)
	}
	if route[0] != "Kandy" {
		t.Errorf("Expected route to start at the first input element, got %v", route)
	}
	if len(route) != 3 {
		t.Fatalf("Expected a permutation of all 3 locations, got %v", route)
	}
	seen := map[string]bool{}
	for _, loc := range route {
		seen[loc] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected every location exactly once, got %v", route)
	}
}

func TestOptimizeRouteDeterministic(t *testing.T) {
	svc := NewTransportService()
	input := []string{"Colombo", "Kandy", "Galle", "Jaffna", "Matara"}

	first, err := svc.OptimizeRoute(input)
	if err != nil {
		t.Fatalf("OptimizeRoute: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := svc.OptimizeRoute(input)
		if err != nil {
			t.Fatalf("OptimizeRoute: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Expected identical routes across runs, got %v then %v", first, again)
		}
	}
}

func TestOptimizeRouteTieKeepsInputOrder(t *testing.T) {
	svc := NewTransportService()

	// "B" and "D" are one byte away from "C" on either side; the earlier
	// input element wins the tie.
	route, err := svc.OptimizeRoute([]string{"C", "D", "B"})
	if err != nil {
		t.Fatalf("OptimizeRoute: %v", err)
	}
	if !reflect.DeepEqual(route, []string{"C", "D", "B"}) {
		t.Errorf("Expected tie to keep input order [C D B], got %v", route)
	}
}

func TestOptimizeRouteDoesNotMutateInput(t *testing.T) {
	svc := NewTransportService()
	input := []string{"Colombo", "Galle", "Kandy"}
	snapshot := []string{"Colombo", "Galle", "Kandy"}

	if _, err := svc.OptimizeRoute(input); err != nil {
		t.Fatalf("OptimizeRoute: %v", err)
	}
	if !reflect.DeepEqual(input, snapshot) {
		t.Errorf("Expected input untouched, got %v", input)
	}
}

func TestNameDistance(t *testing.T) {
	if d := nameDistance("abc", "abc"); d != 0 {
		t.Errorf("Expected zero distance for equal names, got %d", d)
	}
	if d := nameDistance("a", "b"); d != 1 {
		t.Errorf("Expected distance 1, got %d", d)
	}
	// tail bytes of the longer name count in full
	if d := nameDistance("a", "ab"); d != int('b') {
		t.Errorf("Expected tail byte to count in full, got %d", d)
	}
	if nameDistance("abc", "abd") != nameDistance("abd", "abc") {
		t.Error("Expected the metric to be symmetric")
	}
}
