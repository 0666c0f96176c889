package catalog_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/internal/cooking/cookingtest"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

func TestLoadFS_BuildsNameIndexSkippingCaptions(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	actor, ok := cat.ResolveName("Apple")
	require.True(t, ok)
	assert.Equal(t, "Item_Fruit_A", actor)

	_, ok = cat.ResolveName("An apple.")
	assert.False(t, ok, "_Caption entries must not be indexed as display names")

	_, ok = cat.ResolveName("Not A Real Thing")
	assert.False(t, ok)
}

func TestLoadFS_CompilesAndOrPatterns(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	var elixir catalog.CompiledRecipe
	for _, r := range cat.Recipes {
		if r.Recipe.ResultActorName == "Item_Cook_C_17" {
			elixir = r
		}
	}
	require.Equal(t, [][]string{{"CookEnemy"}, {"CookMushroom"}}, elixir.AndParts)
}

func TestLoadFS_MissingTableFails(t *testing.T) {
	mapFS := fstest.MapFS{
		"SystemData.json": &fstest.MapFile{Data: []byte(`{"FailActorName":"Item_Cook_O_01"}`)},
	}
	_, err := catalog.LoadFS(mapFS)
	require.Error(t, err)
	var invalid cooking.InvalidCatalogError
	assert.True(t, errors.As(err, &invalid))
}

func TestMaterial_LooksUpByActorID(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	m, ok := cat.Material("Item_Fruit_A")
	require.True(t, ok)
	assert.Equal(t, "CookFruit", m.CookTag)

	_, ok = cat.Material("Item_Does_Not_Exist")
	assert.False(t, ok)
}
