// Package planner turns a trip profile into the YAML planning document and
// sends it to the itinerary model. The document is internal plumbing — the
// user never sees it, only the prose that comes back.
package planner

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/roadtrip-planner/internal/domain"
)

const (
	docVersion     = "1.1"
	docAgentName   = "roadtrip_trip_planner"
	docDescription = "User-provided configuration for a road-trip planner AI."
)

// Document is the structured configuration consumed by the planning model.
// Key order in the serialized YAML follows struct declaration order, which
// keeps prompts byte-stable across runs for identical profiles.
type Document struct {
	Version     string      `yaml:"version"`
	AgentName   string      `yaml:"agent_name"`
	Description string      `yaml:"description"`
	TripConfig  domain.Trip `yaml:"trip_config"`
}

// BuildDocument wraps a trip profile in the document envelope.
// It performs default substitution only: enum fields left empty take their
// declared defaults, and nil collections become empty ones so they serialize
// as [] rather than null. Nothing else about the profile is transformed —
// in particular, per-POI detour fallback is a read-time concern
// (PointOfInterest.EffectiveDetourHours), not a serialization one.
func BuildDocument(trip domain.Trip) Document {
	if trip.Direction == "" {
		trip.Direction = domain.DirectionRoundTrip
	}
	if trip.DrivingBalance == "" {
		trip.DrivingBalance = domain.BalanceBalanced
	}
	if trip.OvernightStyle == "" {
		trip.OvernightStyle = domain.OvernightEvenlySpread
	}
	if trip.LodgingStyle == "" {
		trip.LodgingStyle = domain.LodgingUpscale
	}
	if trip.PlanningFocus == "" {
		trip.PlanningFocus = domain.FocusBalanced
	}
	if trip.OutputDetailLevel == "" {
		trip.OutputDetailLevel = domain.DetailDailyOutline
	}
	if trip.DiscoveryCategories == nil {
		trip.DiscoveryCategories = []domain.DiscoveryCategory{}
	}
	if trip.PointsOfInterest == nil {
		trip.PointsOfInterest = []domain.PointOfInterest{}
	}

	return Document{
		Version:     docVersion,
		AgentName:   docAgentName,
		Description: docDescription,
		TripConfig:  trip,
	}
}

// EncodeDocument renders the document as YAML text.
func EncodeDocument(doc Document) (string, error) {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("planner.EncodeDocument: %w", err)
	}
	return string(raw), nil
}
