package pm

import "plantmate/internal/model"

// IndexBySlug builds an O(1) lookup over the catalog keyed by slug.
// The index never validates referential integrity; missing slugs simply miss.
func IndexBySlug(catalog []model.CatalogPlant) map[string]model.CatalogPlant {
	m := make(map[string]model.CatalogPlant, len(catalog))
	for _, p := range catalog {
		m[p.Slug] = p
	}
	return m
}

// IndexByID builds an O(1) lookup over spaces keyed by id.
func IndexByID(spaces []model.Space) map[string]model.Space {
	m := make(map[string]model.Space, len(spaces))
	for _, s := range spaces {
		m[s.ID] = s
	}
	return m
}

// Placeholder is rendered for fields of dangling references.
const Placeholder = "-"

// EnrichedPlant is a user plant joined best-effort with its catalog record
// and space. Dangling references keep the record and render placeholders.
type EnrichedPlant struct {
	model.UserPlant
	CommonName     string
	ScientificName string
	WateringNeed   string
	SpaceName      string
	SunlightHours  float64
	HasSpace       bool
	HasCatalog     bool
}

// EnrichUserPlants joins each user plant with catalog and space lookups.
// Order is preserved. References that no longer resolve are tolerated.
func EnrichUserPlants(plants []model.UserPlant, catalog []model.CatalogPlant, spaces []model.Space) []EnrichedPlant {
	bySlug := IndexBySlug(catalog)
	byID := IndexByID(spaces)

	out := make([]EnrichedPlant, 0, len(plants))
	for _, up := range plants {
		e := EnrichedPlant{
			UserPlant:      up,
			CommonName:     Placeholder,
			ScientificName: Placeholder,
			WateringNeed:   Placeholder,
			SpaceName:      Placeholder,
		}
		if cat, ok := bySlug[up.PlantSlug]; ok {
			e.CommonName = cat.CommonName
			e.ScientificName = cat.ScientificName
			e.WateringNeed = string(cat.WateringNeed)
			e.HasCatalog = true
		}
		if sp, ok := byID[up.SpaceID]; ok {
			e.SpaceName = sp.Name
			e.SunlightHours = sp.SunlightHours
			e.HasSpace = true
		}
		out = append(out, e)
	}
	return out
}
