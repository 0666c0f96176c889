package engine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsned/totk-cooking-server/internal/cooking/cookingtest"
	"github.com/rsned/totk-cooking-server/internal/cooking/engine"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

func TestCook_PlainMealHasNoEffect(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	result, err := engine.Cook(cat, []string{"Apple"}, "USen")
	require.NoError(t, err)

	assert.Equal(t, "None", result.Effect)
	assert.Equal(t, "Fruit Dish", result.MealName) // no effect prefix when no effect is committed
	assert.NotEqual(t, "None", result.HealthRecovery)
	assert.Regexp(t, `%$`, result.CriticalRate)
}

func TestCook_HeartyEffectGrantsFullRecoveryAndQuantisedLevel(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	result, err := engine.Cook(cat, []string{"Hearty Truffle"}, "USen")
	require.NoError(t, err)

	assert.Equal(t, "Hearty", result.Effect)
	assert.Equal(t, "Hearty Dish", result.MealName) // effect name prefixed onto the base meal name
	assert.Contains(t, result.HealthRecovery, "Full Recovery")
	assert.Equal(t, "None", result.EffectDuration)
	assert.Equal(t, "4", result.EffectLevel) // quantised to a multiple of 4
}

func TestCook_MonsterExtractNarratesHealthRandomness(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	result, err := engine.Cook(cat, []string{"Monster Extract", "Apple"}, "USen")
	require.NoError(t, err)

	assert.Contains(t, result.RNG, "Monster Extract sets health recovery to")
	assert.Regexp(t, `%$`, result.CriticalRate)
}

func TestCook_MonsterExtractOnlyLevelReportsThreeBranches(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	// A LifeMaxUp effect always takes the only_level branch, whose vector
	// is [MinLv, baseline, baseline+bonus] -- three elements, not two.
	result, err := engine.Cook(cat, []string{"Monster Extract", "Hearty Truffle", "Apple"}, "USen")
	require.NoError(t, err)

	assert.Equal(t, "Hearty", result.Effect)
	assert.Regexp(t, `^Monster Extract sets effect level to one of \d+ / \d+ / \d+ \(equal chance\)$`, result.RNG)
}

func TestCook_FiveOfAKindIsNotAFailureMeal(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	names := []string{"Raw Meat", "Raw Meat", "Raw Meat", "Raw Meat", "Raw Meat"}
	result, err := engine.Cook(cat, names, "USen")
	require.NoError(t, err)

	assert.NotEqual(t, "Dubious Food", result.MealName)
	assert.Equal(t, "30 Rupees", result.SellPrice)
}

func TestCook_FairyTonicSellsForTwoRupees(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	result, err := engine.Cook(cat, []string{"Fairy"}, "USen")
	require.NoError(t, err)

	assert.Equal(t, "2 Rupees", result.SellPrice)
	assert.Equal(t, "None", result.Effect)
}

func TestCook_ConflictingElixirEffectsDowngradeToFailure(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	names := []string{"Chillshroom", "Sunshroom", "Monster Guts"}
	result, err := engine.Cook(cat, names, "USen")
	require.NoError(t, err)

	assert.Equal(t, "Dubious Food", result.MealName)
	assert.Equal(t, "None", result.Effect)
	assert.Equal(t, "None", result.EffectDuration)
	assert.Equal(t, "0", result.EffectLevel)
	assert.Equal(t, "2 Rupees", result.SellPrice)
}

func TestCook_EmptyMaterialList(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	_, err = engine.Cook(cat, nil, "USen")
	require.Error(t, err)
	var empty cooking.EmptyMaterialListError
	assert.True(t, errors.As(err, &empty))
}

func TestCook_InvalidMaterialName(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	_, err = engine.Cook(cat, []string{"Not A Real Thing"}, "USen")
	require.Error(t, err)
	var invalid cooking.InvalidMaterialError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "Not A Real Thing", invalid.Name)
}

func TestCook_OrderIndependenceOfRecipeMatching(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	forward, err := engine.Cook(cat, []string{"Monster Extract", "Apple"}, "USen")
	require.NoError(t, err)
	backward, err := engine.Cook(cat, []string{"Apple", "Monster Extract"}, "USen")
	require.NoError(t, err)

	assert.Equal(t, forward.MealName, backward.MealName)
	assert.Equal(t, forward.SellPrice, backward.SellPrice)
	assert.Equal(t, forward.CriticalRate, backward.CriticalRate)
}

func TestCook_IsDeterministic(t *testing.T) {
	cat, err := cookingtest.NewFixtureCatalog()
	require.NoError(t, err)

	first, err := engine.Cook(cat, []string{"Apple"}, "USen")
	require.NoError(t, err)
	second, err := engine.Cook(cat, []string{"Apple"}, "USen")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
