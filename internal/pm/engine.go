package pm

import (
	"fmt"
	"math"
	"slices"

	"plantmate/internal/model"
)

// Weights is the tunable criterion table for the recommendation engine.
// Each entry weighs one compatibility signal between a catalog plant and a
// space; keeping them named and explicit makes the scoring auditable
// criterion by criterion.
type Weights struct {
	Light     float64 // fit between space sunlight hours and the plant's light range
	Direction float64 // fit between compass exposure and the plant's light appetite
	Area      float64 // fit between space area and the plant's minimum pot size
}

// DefaultWeights favors light fit, the signal users care about most.
func DefaultWeights() Weights {
	return Weights{Light: 0.6, Direction: 0.25, Area: 0.15}
}

// directionExposure maps a compass direction to a relative brightness factor
// in [0,1]. Northern-hemisphere convention: south-facing is brightest.
var directionExposure = map[model.Direction]float64{
	model.South:     1.0,
	model.SouthEast: 0.85,
	model.SouthWest: 0.85,
	model.East:      0.6,
	model.West:      0.6,
	model.NorthEast: 0.35,
	model.NorthWest: 0.35,
	model.North:     0.2,
}

// Engine scores catalog plants against a space. Scoring is deterministic:
// it reads no clock and uses no randomness, so identical inputs always
// produce identical ordered output.
type Engine struct {
	weights Weights
}

// NewEngine creates an Engine with the given weight table.
func NewEngine(w Weights) *Engine {
	return &Engine{weights: w}
}

// Suggest ranks catalog plants for the space, excluding plants the user
// already keeps in that space. The result is sorted descending by score
// with ties kept in catalog order, and truncated to limit.
//
// A nil space or an empty catalog yields an empty result; a limit larger
// than the catalog returns every scored candidate.
func (e *Engine) Suggest(space *model.Space, catalog []model.CatalogPlant, owned []model.UserPlant, limit int) []model.Suggestion {
	if space == nil || len(catalog) == 0 || limit <= 0 {
		return []model.Suggestion{}
	}

	inSpace := make(map[string]bool)
	for _, up := range owned {
		if up.SpaceID == space.ID {
			inSpace[up.PlantSlug] = true
		}
	}

	out := make([]model.Suggestion, 0, len(catalog))
	for _, p := range catalog {
		if inSpace[p.Slug] {
			continue
		}
		score, rationale := e.score(space, p)
		out = append(out, model.Suggestion{
			PlantSlug:  p.Slug,
			CommonName: p.CommonName,
			Score:      score,
			Rationale:  rationale,
		})
	}

	// Stable: candidates with equal scores keep catalog order.
	slices.SortStableFunc(out, func(a, b model.Suggestion) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if limit < len(out) {
		out = out[:limit]
	}
	return out
}

// score computes the weighted combination of the per-criterion components
// and a one-line rationale naming the dominant factor.
func (e *Engine) score(space *model.Space, p model.CatalogPlant) (float64, string) {
	light := lightFit(space.SunlightHours, p.LightMinHours, p.LightMaxHours)
	dir := directionFit(space.Direction, p.LightMinHours, p.LightMaxHours)
	area := areaFit(space.AreaSqM, p.PotSizeMinLiters)

	total := e.weights.Light*light + e.weights.Direction*dir + e.weights.Area*area
	score := math.Round(total*100) / 100

	return score, rationale(space, p, light, dir, area)
}

// lightFit is 1 inside the plant's preferred range and decays linearly with
// the distance to the nearest bound, reaching 0 at 6 hours away.
func lightFit(sun, min, max float64) float64 {
	if min == 0 && max == 0 {
		return 0.5 // no declared preference
	}
	if sun >= min && sun <= max {
		return 1
	}
	var dist float64
	if sun < min {
		dist = min - sun
	} else {
		dist = sun - max
	}
	return clamp01(1 - dist/6)
}

// directionFit compares the compass exposure with the plant's light appetite
// (the midpoint of its preferred range scaled to a day).
func directionFit(d model.Direction, min, max float64) float64 {
	exposure, ok := directionExposure[d]
	if !ok {
		return 0.5
	}
	appetite := ((min + max) / 2) / 12
	return clamp01(1 - math.Abs(exposure-appetite))
}

// areaFit compares the space area with the footprint implied by the plant's
// minimum pot size (roughly 25 liters of pot per square meter).
func areaFit(areaSqM, potLiters float64) float64 {
	if potLiters <= 0 {
		return 1
	}
	required := potLiters / 25
	if areaSqM >= required {
		return 1
	}
	if required == 0 {
		return 1
	}
	return clamp01(areaSqM / required)
}

// rationale names the weakest criterion when one clearly falls short,
// otherwise summarizes the light match, the dominant signal.
func rationale(space *model.Space, p model.CatalogPlant, light, dir, area float64) string {
	const shortfall = 0.75

	// Check in weight order so the heaviest mismatching criterion wins.
	if light < shortfall && light <= dir && light <= area {
		return fmt.Sprintf("needs %s-%sh light, space gets %sh/day - limited fit",
			trimFloat(p.LightMinHours), trimFloat(p.LightMaxHours), trimFloat(space.SunlightHours))
	}
	if dir < shortfall && dir <= area {
		return fmt.Sprintf("light appetite does not match %s-facing exposure", space.Direction)
	}
	if area < shortfall {
		return fmt.Sprintf("needs a %sL+ pot, tight in %s m2", trimFloat(p.PotSizeMinLiters), trimFloat(space.AreaSqM))
	}
	return fmt.Sprintf("needs %s-%sh light, space gets %sh/day - good match",
		trimFloat(p.LightMinHours), trimFloat(p.LightMaxHours), trimFloat(space.SunlightHours))
}

func trimFloat(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprintf("%.1f", f)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
