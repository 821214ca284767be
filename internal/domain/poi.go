package domain

// POIKind classifies what sort of idea a point of interest is.
type POIKind string

const (
	// POISpecificStop is a concrete named place (hotel, restaurant, attraction).
	POISpecificStop POIKind = "specific_stop"
	// POICityOrRegion is a city or area where the planner should find options.
	POICityOrRegion POIKind = "city_or_region"
	// POICategoryAlongRoute is a type of stop to look for anywhere en route.
	POICategoryAlongRoute POIKind = "category_along_route"
)

// POIPriority says how hard the planner must try to include a stop.
type POIPriority string

const (
	PriorityMustDo     POIPriority = "must_do"
	PriorityNiceToHave POIPriority = "nice_to_have"
)

// PointOfInterest is one stop or idea within a trip.
// The order of a trip's POI slice is meaningful — it is display and
// iteration order, never sorted.
//
// Optional string fields are pointers: nil means unset, and an empty string
// submitted by a client is coerced to nil during normalisation.
type PointOfInterest struct {
	Label              string      `json:"label" yaml:"label"`
	Kind               POIKind     `json:"poi_kind" yaml:"poi_kind"`
	LocationHint       *string     `json:"location_hint" yaml:"location_hint"`
	Category           *string     `json:"category" yaml:"category"`
	Details            *string     `json:"details" yaml:"details"`
	MaxDetourHours     *float64    `json:"max_detour_hours" yaml:"max_detour_hours"`
	MinTimeOnSiteHours *float64    `json:"min_time_on_site_hours" yaml:"min_time_on_site_hours"`
	Priority           POIPriority `json:"priority" yaml:"priority"`
}

// EffectiveDetourHours returns this stop's detour allowance, falling back to
// the parent trip's default when the stop does not set one. The fallback
// happens here, at read time — the serialized document reflects whatever the
// record holds, nil included.
func (p PointOfInterest) EffectiveDetourHours(tripDefault float64) float64 {
	if p.MaxDetourHours != nil {
		return *p.MaxDetourHours
	}
	return tripDefault
}
