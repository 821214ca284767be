// Package domain contains the core data types for the road-trip planner.
// This package has zero external dependencies and is imported by every other
// internal package (store, service, planner, handler).
package domain

// ReservedNewTripName is the sentinel the trip-selection UI uses for
// "no trip selected / start fresh". It must never collide with a persisted
// trip name; the service layer rejects it as a save target.
const ReservedNewTripName = "<New Trip>"

// TripDirection says whether the route ends where it started.
type TripDirection string

const (
	DirectionOneWay    TripDirection = "one_way"
	DirectionRoundTrip TripDirection = "round_trip"
)

// DrivingBalance expresses how the traveller wants to split time between
// covering distance and doing things.
type DrivingBalance string

const (
	BalanceMostlyDriving    DrivingBalance = "mostly_driving"
	BalanceBalanced         DrivingBalance = "balanced"
	BalanceMostlyActivities DrivingBalance = "mostly_activities"
)

// OvernightStyle controls how overnight stops are spaced along the route.
type OvernightStyle string

const (
	OvernightEvenlySpread      OvernightStyle = "evenly_spread"
	OvernightPushFarFirstDay   OvernightStyle = "push_far_on_first_day"
	OvernightShortFirstDayEven OvernightStyle = "short_first_day_then_even"
)

// LodgingStyle is the traveller's hotel preference tier.
type LodgingStyle string

const (
	LodgingBudget       LodgingStyle = "budget"
	LodgingMidRange     LodgingStyle = "mid_range"
	LodgingUpscale      LodgingStyle = "upscale"
	LodgingLuxuryResort LodgingStyle = "luxury_resort"
)

// PlanningFocus is the overall optimisation goal for the itinerary.
type PlanningFocus string

const (
	FocusMinimizeDriving PlanningFocus = "minimize_driving_time"
	FocusMaximizeScenic  PlanningFocus = "maximize_scenic_or_interesting_stops"
	FocusBalanced        PlanningFocus = "balanced"
)

// DetailLevel controls how granular the generated itinerary should be.
type DetailLevel string

const (
	DetailHighLevelOverview DetailLevel = "high_level_overview"
	DetailDailyOutline      DetailLevel = "daily_outline"
	DetailDailyPlan         DetailLevel = "detailed_daily_plan"
)

// Trip is one trip's full configuration as edited by a user.
// Field declaration order is the serialization order for both the stored
// JSON record and the YAML planning document, so do not reorder fields.
//
// The three budget fields are pointers: nil means "unset", never zero — a
// zero input is coerced to nil during normalisation in the service layer.
type Trip struct {
	Name                 string              `json:"trip_name" yaml:"trip_name"`
	Origin               string              `json:"origin" yaml:"origin"`
	Destination          string              `json:"destination" yaml:"destination"`
	Direction            TripDirection       `json:"trip_direction" yaml:"trip_direction"`
	TotalDays            int                 `json:"total_days_available" yaml:"total_days_available"`
	MaxDailyDriveHours   float64             `json:"max_daily_drive_hours" yaml:"max_daily_drive_hours"`
	DrivingBalance       DrivingBalance      `json:"driving_days_preference" yaml:"driving_days_preference"`
	OvernightStyle       OvernightStyle      `json:"overnight_stop_distance_style" yaml:"overnight_stop_distance_style"`
	OverallBudget        *float64            `json:"overall_trip_budget" yaml:"overall_trip_budget"`
	LodgingBudget        *float64            `json:"lodging_budget_per_night" yaml:"lodging_budget_per_night"`
	FoodBudget           *float64            `json:"food_budget_per_day_per_person" yaml:"food_budget_per_day_per_person"`
	LodgingStyle         LodgingStyle        `json:"lodging_style" yaml:"lodging_style"`
	TravelersDescription string              `json:"travelers_description" yaml:"travelers_description"`
	SpecialNeeds         string              `json:"mobility_or_special_needs" yaml:"mobility_or_special_needs"`
	DiscoveryCategories  []DiscoveryCategory `json:"auto_discovery_categories" yaml:"auto_discovery_categories"`
	DefaultMaxDetour     float64             `json:"default_max_detour_hours" yaml:"default_max_detour_hours"`
	PointsOfInterest     []PointOfInterest   `json:"points_of_interest" yaml:"points_of_interest"`
	PlanningFocus        PlanningFocus       `json:"planning_focus" yaml:"planning_focus"`
	OutputDetailLevel    DetailLevel         `json:"output_detail_level" yaml:"output_detail_level"`
}

// NewTrip returns a trip profile populated with starter defaults.
// It is a pure constructor: no validation happens here — range and enum
// checks are the responsibility of whoever accepts user input.
func NewTrip() Trip {
	return Trip{
		Origin:               "Bowie, MD",
		Destination:          "Miami, FL",
		Direction:            DirectionRoundTrip,
		TotalDays:            10,
		MaxDailyDriveHours:   5.0,
		DrivingBalance:       BalanceBalanced,
		OvernightStyle:       OvernightEvenlySpread,
		LodgingStyle:         LodgingUpscale,
		TravelersDescription: "2 adults, no kids",
		DiscoveryCategories:  []DiscoveryCategory{},
		DefaultMaxDetour:     2.0,
		PointsOfInterest:     []PointOfInterest{},
		PlanningFocus:        FocusBalanced,
		OutputDetailLevel:    DetailDailyOutline,
	}
}
