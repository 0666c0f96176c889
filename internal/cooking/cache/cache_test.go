package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsned/totk-cooking-server/internal/cooking/cache"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

func TestCache_PutThenGet(t *testing.T) {
	c, err := cache.New(8)
	require.NoError(t, err)

	key := cache.Signature([]string{"Item_Fruit_A"}, "USen")
	_, ok := c.Get(key)
	assert.False(t, ok)

	want := cooking.CookResult{MealName: "Fruit Dish"}
	c.Put(key, want)

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, c.Len())
}

func TestSignature_DiffersByOrderAndLanguage(t *testing.T) {
	a := cache.Signature([]string{"Item_Fruit_A", "Item_Meat_01"}, "USen")
	b := cache.Signature([]string{"Item_Meat_01", "Item_Fruit_A"}, "USen")
	c := cache.Signature([]string{"Item_Fruit_A", "Item_Meat_01"}, "EUde")

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}
