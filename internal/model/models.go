package model

import "time"

// SpaceType classifies a growing location.
type SpaceType string

const (
	SpaceBalcony    SpaceType = "balcony"
	SpaceWindowsill SpaceType = "windowsill"
	SpaceTerrace    SpaceType = "terrace"
)

// Direction is an 8-point compass direction.
type Direction string

const (
	North     Direction = "N"
	NorthEast Direction = "NE"
	East      Direction = "E"
	SouthEast Direction = "SE"
	South     Direction = "S"
	SouthWest Direction = "SW"
	West      Direction = "W"
	NorthWest Direction = "NW"
)

// Directions lists all valid compass directions.
var Directions = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// WateringNeed expresses how much water a catalog plant requires.
type WateringNeed string

const (
	WaterLow    WateringNeed = "low"
	WaterMedium WateringNeed = "medium"
	WaterHigh   WateringNeed = "high"
)

// Space represents a physical growing location owned by a user.
type Space struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          SpaceType `json:"type"`
	Direction     Direction `json:"direction"`
	SunlightHours float64   `json:"sunlight_hours"` // 0..12
	AreaSqM       float64   `json:"area_sq_m"`      // > 0
	Notes         string    `json:"notes,omitempty"`
}

// CatalogPlant is a read-only reference record describing a species.
// The light range and pot size feed the recommendation engine.
type CatalogPlant struct {
	Slug              string       `json:"slug"`
	CommonName        string       `json:"common_name"`
	ScientificName    string       `json:"scientific_name"`
	WateringNeed      WateringNeed `json:"watering_need"`
	FertilizationDays int          `json:"fertilization_freq_days,omitempty"`
	PotSizeMinLiters  float64      `json:"pot_size_min_liters,omitempty"`
	LightMinHours     float64      `json:"light_min_hours"`
	LightMaxHours     float64      `json:"light_max_hours"`
}

// UserPlant links a CatalogPlant to a Space for one user.
type UserPlant struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SpaceID   string    `json:"space_id"`
	PlantSlug string    `json:"plant_id"` // catalog slug; JSON name kept for wire compatibility
	Nickname  string    `json:"nickname,omitempty"`
	Status    string    `json:"status"` // defaults to "active"
	CreatedAt time.Time `json:"created_at"`
}

// Suggestion is a computed, never persisted ranking result.
type Suggestion struct {
	PlantSlug  string  `json:"plant_slug"`
	CommonName string  `json:"common_name"`
	Score      float64 `json:"score"`
	Rationale  string  `json:"rationale"`
}

// WaterTask is one entry on the watering dashboard.
type WaterTask struct {
	ID            string    `json:"id"`
	PlantName     string    `json:"plantName"`
	SpaceName     string    `json:"spaceName"`
	SunlightHours float64   `json:"sunlightHours"`
	DueAt         time.Time `json:"dueAt"`
	Note          string    `json:"note,omitempty"`
}

// User is the locally stored profile of the signed-in user.
// The core reads it but never writes it outside of login.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ValidDirection reports whether d is one of the 8 compass points.
func ValidDirection(d Direction) bool {
	for _, v := range Directions {
		if d == v {
			return true
		}
	}
	return false
}
