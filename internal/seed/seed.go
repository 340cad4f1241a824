package seed

import (
	"time"

	"plantmate/internal/model"
)

// Spaces returns the default spaces used when neither the backend nor the
// local store has any data.
func Spaces() []model.Space {
	return []model.Space{
		{ID: "s1", Name: "South Balcony", Type: model.SpaceBalcony, Direction: model.South, SunlightHours: 6, AreaSqM: 1.8},
		{ID: "s2", Name: "Kitchen Window", Type: model.SpaceWindowsill, Direction: model.East, SunlightHours: 3, AreaSqM: 0.6},
	}
}

// Catalog returns the built-in plant catalog. The catalog is reference data:
// the core never mutates it, it only refreshes it from the backend.
func Catalog() []model.CatalogPlant {
	return []model.CatalogPlant{
		{Slug: "basil", CommonName: "Basil", ScientificName: "Ocimum basilicum", WateringNeed: model.WaterHigh, FertilizationDays: 14, PotSizeMinLiters: 3, LightMinHours: 5, LightMaxHours: 10},
		{Slug: "mint", CommonName: "Mint", ScientificName: "Mentha spicata", WateringNeed: model.WaterHigh, FertilizationDays: 21, PotSizeMinLiters: 3, LightMinHours: 2, LightMaxHours: 6},
		{Slug: "rosemary", CommonName: "Rosemary", ScientificName: "Salvia rosmarinus", WateringNeed: model.WaterLow, FertilizationDays: 30, PotSizeMinLiters: 5, LightMinHours: 6, LightMaxHours: 12},
		{Slug: "cherry-tomato", CommonName: "Cherry Tomato", ScientificName: "Solanum lycopersicum", WateringNeed: model.WaterHigh, FertilizationDays: 10, PotSizeMinLiters: 10, LightMinHours: 6, LightMaxHours: 12},
		{Slug: "chili", CommonName: "Chili Pepper", ScientificName: "Capsicum annuum", WateringNeed: model.WaterMedium, FertilizationDays: 14, PotSizeMinLiters: 7, LightMinHours: 6, LightMaxHours: 12},
		{Slug: "lavender", CommonName: "Lavender", ScientificName: "Lavandula angustifolia", WateringNeed: model.WaterLow, FertilizationDays: 45, PotSizeMinLiters: 5, LightMinHours: 6, LightMaxHours: 11},
		{Slug: "parsley", CommonName: "Parsley", ScientificName: "Petroselinum crispum", WateringNeed: model.WaterMedium, FertilizationDays: 21, PotSizeMinLiters: 2, LightMinHours: 3, LightMaxHours: 7},
		{Slug: "chives", CommonName: "Chives", ScientificName: "Allium schoenoprasum", WateringNeed: model.WaterMedium, FertilizationDays: 28, PotSizeMinLiters: 2, LightMinHours: 3, LightMaxHours: 8},
		{Slug: "snake-plant", CommonName: "Snake Plant", ScientificName: "Dracaena trifasciata", WateringNeed: model.WaterLow, FertilizationDays: 60, PotSizeMinLiters: 4, LightMinHours: 1, LightMaxHours: 5},
		{Slug: "pothos", CommonName: "Pothos", ScientificName: "Epipremnum aureum", WateringNeed: model.WaterLow, FertilizationDays: 45, PotSizeMinLiters: 3, LightMinHours: 1, LightMaxHours: 4},
		{Slug: "fern", CommonName: "Boston Fern", ScientificName: "Nephrolepis exaltata", WateringNeed: model.WaterHigh, FertilizationDays: 30, PotSizeMinLiters: 4, LightMinHours: 1, LightMaxHours: 4},
		{Slug: "geranium", CommonName: "Geranium", ScientificName: "Pelargonium hortorum", WateringNeed: model.WaterMedium, FertilizationDays: 14, PotSizeMinLiters: 4, LightMinHours: 5, LightMaxHours: 10},
	}
}

// WaterTasks returns the default dashboard tasks. Due times are derived from
// the supplied reference time so callers stay deterministic in tests.
func WaterTasks(now time.Time) []model.WaterTask {
	return []model.WaterTask{
		{
			ID:            "t1",
			PlantName:     "Basil",
			SpaceName:     "South Balcony",
			SunlightHours: 6,
			DueAt:         now,
			Note:          "Keep soil moist, not soggy.",
		},
		{
			ID:            "t2",
			PlantName:     "Mint",
			SpaceName:     "Kitchen Window",
			SunlightHours: 3,
			DueAt:         now.Add(2 * time.Hour),
			Note:          "Avoid waterlogging; drains fast.",
		},
	}
}
