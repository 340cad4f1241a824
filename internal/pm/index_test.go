package pm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantmate/internal/model"
	"plantmate/internal/seed"
)

func TestEnrichUserPlants(t *testing.T) {
	plants := []model.UserPlant{
		{ID: "up1", SpaceID: "s1", PlantSlug: "basil", Nickname: "Benny"},
		{ID: "up2", SpaceID: "gone", PlantSlug: "basil"},
		{ID: "up3", SpaceID: "s1", PlantSlug: "extinct"},
	}

	out := EnrichUserPlants(plants, seed.Catalog(), seed.Spaces())
	require.Len(t, out, 3, "dangling references keep the record")

	assert.True(t, out[0].HasCatalog)
	assert.True(t, out[0].HasSpace)
	assert.Equal(t, "Basil", out[0].CommonName)
	assert.Equal(t, "South Balcony", out[0].SpaceName)
	assert.Equal(t, 6.0, out[0].SunlightHours)

	assert.False(t, out[1].HasSpace)
	assert.Equal(t, Placeholder, out[1].SpaceName)
	assert.True(t, out[1].HasCatalog)

	assert.False(t, out[2].HasCatalog)
	assert.Equal(t, Placeholder, out[2].CommonName)
	assert.Equal(t, Placeholder, out[2].WateringNeed)
	assert.True(t, out[2].HasSpace)
}

func TestIndexBySlugLastWins(t *testing.T) {
	catalog := []model.CatalogPlant{
		{Slug: "basil", CommonName: "First"},
		{Slug: "basil", CommonName: "Second"},
	}
	m := IndexBySlug(catalog)
	require.Len(t, m, 1)
	assert.Equal(t, "Second", m["basil"].CommonName)
}
