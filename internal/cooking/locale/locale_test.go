package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsned/totk-cooking-server/internal/cooking/cookingtest"
	"github.com/rsned/totk-cooking-server/internal/cooking/locale"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

func TestResolveMaterials_EmptyList(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	_, err = locale.New(cat).ResolveMaterials(nil)
	assert.Equal(t, cooking.EmptyMaterialListError{}, err)
}

func TestResolveMaterials_UnknownName(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	_, err = locale.New(cat).ResolveMaterials([]string{"Apple", "Not A Real Thing"})
	assert.Equal(t, cooking.InvalidMaterialError{Name: "Not A Real Thing"}, err)
}

func TestResolveMaterials_PreservesOrderAndDuplicates(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	materials, err := locale.New(cat).ResolveMaterials([]string{"Apple", "Apple", "Raw Meat"})
	require.NoError(t, err)
	require.Len(t, materials, 3)
	assert.Equal(t, "Item_Fruit_A", materials[0].ActorName)
	assert.Equal(t, "Item_Fruit_A", materials[1].ActorName)
	assert.Equal(t, "Item_Meat_01", materials[2].ActorName)
}
