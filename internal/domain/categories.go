package domain

// DiscoveryCategory is one entry in the fixed vocabulary of things the
// planner can be told to look for along the route. A trip holds a set of
// these; order within the set carries no meaning.
type DiscoveryCategory string

const (
	CategoryMichelinDining     DiscoveryCategory = "michelin_star_dining"
	CategoryHighEndDining      DiscoveryCategory = "other_high_end_dining"
	CategoryBlackCultureSites  DiscoveryCategory = "historic_black_culture_sites"
	CategoryMuseumsAndCulture  DiscoveryCategory = "museums_and_culture"
	CategoryWaterfalls         DiscoveryCategory = "waterfalls"
	CategoryHikingTrails       DiscoveryCategory = "hiking_trails"
	CategoryBeaches            DiscoveryCategory = "beaches_or_ocean_access"
	CategoryLakesAndWaterfront DiscoveryCategory = "lakes_and_waterfronts"
	CategoryScenicDrives       DiscoveryCategory = "scenic_drives_or_overlooks"
	CategoryThemeParks         DiscoveryCategory = "theme_parks"
	CategoryNightlife          DiscoveryCategory = "nightlife"
	CategoryGolf               DiscoveryCategory = "golf"
)

// DiscoveryCategories lists the full vocabulary in display order.
// Clients use this to render the preference picker; the service uses it to
// drop unknown tags from submitted profiles.
func DiscoveryCategories() []DiscoveryCategory {
	return []DiscoveryCategory{
		CategoryMichelinDining,
		CategoryHighEndDining,
		CategoryBlackCultureSites,
		CategoryMuseumsAndCulture,
		CategoryWaterfalls,
		CategoryHikingTrails,
		CategoryBeaches,
		CategoryLakesAndWaterfront,
		CategoryScenicDrives,
		CategoryThemeParks,
		CategoryNightlife,
		CategoryGolf,
	}
}

// Valid reports whether c is part of the fixed vocabulary.
func (c DiscoveryCategory) Valid() bool {
	for _, known := range DiscoveryCategories() {
		if c == known {
			return true
		}
	}
	return false
}
