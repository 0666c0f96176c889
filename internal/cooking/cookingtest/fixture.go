// Package cookingtest builds a small, self-consistent catalog fixture
// shared by the catalog, locale, and engine test suites, so every package
// exercises the real catalog.LoadFS code path instead of hand-built
// *catalog.Catalog literals that could drift from what loading actually
// produces.
package cookingtest

import (
	"encoding/json"
	"fmt"
	"testing/fstest"

	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// NewFixtureCatalog builds the standard test catalog: a handful of
// materials, effects, and recipes covering every branch spec.md §8's
// scenarios exercise (plain meal, full-recovery Hearty effect, Monster
// Extract, a five-of-a-kind meal, the fairy tonic, and an Elixir
// multi-effect conflict).
func NewFixtureCatalog() (*catalog.Catalog, error) {
	system := cooking.SystemData{
		FailActorName:                "Item_Cook_O_01",
		FairyActorName:               "Item_Cook_B_17",
		RockHardActorName:            "Item_Cook_O_02",
		EnemyExtractActorName:        "Item_Enemy_Extract",
		SubtleLifeRecoverRate:        0.25,
		LifeRecoverRate:              1.0,
		SubtleLifeRecover:            4,
		FailLifeRecover:              0,
		SuperSuccessAddEffectiveTime: 180,
		PriceRateList: []cooking.PriceRateEntry{
			{MaterialNum: 1, Rate: 1.0},
			{MaterialNum: 2, Rate: 1.0},
			{MaterialNum: 3, Rate: 1.2},
			{MaterialNum: 4, Rate: 1.2},
			{MaterialNum: 5, Rate: 1.5},
		},
		SuperSuccessRateList: []cooking.SuperSuccessRateEntry{
			{MaterialTypeNum: 1, Rate: 0},
			{MaterialTypeNum: 2, Rate: 5},
			{MaterialTypeNum: 3, Rate: 10},
			{MaterialTypeNum: 4, Rate: 15},
			{MaterialTypeNum: 5, Rate: 20},
		},
	}

	materials := []cooking.Material{
		{ActorName: "Item_Fruit_A", CookTag: "CookFruit", HitPointRecover: 4, CureEffectType: "None", SellingPrice: 2},
		{ActorName: "Item_Mushroom_E", CookTag: "CookMushroom", HitPointRecover: 0, CureEffectType: "LifeMaxUp", CureEffectLevel: 8, SellingPrice: 15},
		{ActorName: "Item_Enemy_Extract", CookTag: "CookEnemy", HitPointRecover: 0, CureEffectType: "None", SellingPrice: 2},
		{ActorName: "Item_Meat_01", CookTag: "CookMeat", HitPointRecover: 4, CureEffectType: "None", SellingPrice: 4},
		{ActorName: "Item_Fairy", CookTag: "CookFairy", HitPointRecover: 4, CureEffectType: "None", SellingPrice: 20},
		{ActorName: "Item_Mushroom_Chill", CookTag: "CookMushroom", HitPointRecover: 1, CureEffectType: "ResistHot", CureEffectLevel: 1, SellingPrice: 3},
		{ActorName: "Item_Mushroom_Sun", CookTag: "CookMushroom", HitPointRecover: 1, CureEffectType: "ResistCold", CureEffectLevel: 1, SellingPrice: 3},
		{ActorName: "Item_Monster_Guts", CookTag: "CookEnemy", HitPointRecover: 0, CureEffectType: "None", SellingPrice: 1},
		{ActorName: "Item_Fruit_RockHard", CookTag: "CookFruit", HitPointRecover: 1, CureEffectType: "None", SellingPrice: 1},
	}

	effects := []cooking.Effect{
		{EffectType: "LifeRecover", MaxLv: 160, SuperSuccessAddVolume: 20},
		{EffectType: "LifeMaxUp", BaseTime: 0, Rate: 1, MinLv: 4, MaxLv: 4, SuperSuccessAddVolume: 4},
		{EffectType: "ResistHot", BaseTime: 30, Rate: 1, MinLv: 1, MaxLv: 3, SuperSuccessAddVolume: 1},
		{EffectType: "ResistCold", BaseTime: 30, Rate: 1, MinLv: 1, MaxLv: 3, SuperSuccessAddVolume: 1},
	}

	recipes := []cooking.Recipe{
		{ResultActorName: "Item_Cook_C_17", PictureBookNum: 10, Recipe: "CookEnemy + CookMushroom"},
		{ResultActorName: "Item_Cook_A_05", PictureBookNum: 77, Recipe: "CookEnemy + CookFruit"},
		{ResultActorName: "Item_Cook_O_02", PictureBookNum: 150, Recipe: "Item_Fruit_RockHard + Item_Fruit_RockHard"},
		{ResultActorName: "Item_Cook_O_01", PictureBookNum: 145, Recipe: "CookEnemy or CookInsect"},
	}

	singleRecipes := []cooking.Recipe{
		{ResultActorName: "Item_Cook_A_01", PictureBookNum: 1, Recipe: "Item_Fruit_A or CookFruit"},
		{ResultActorName: "Item_Cook_A_02", PictureBookNum: 50, Recipe: "Item_Mushroom_E"},
		{ResultActorName: "Item_Cook_R_01", PictureBookNum: 30, Recipe: "Item_Meat_01 or CookMeat"},
		{ResultActorName: "Item_Cook_B_17", PictureBookNum: 0, Recipe: "Item_Fairy or CookFairy"},
	}

	recipeCards := []string{
		"Item_Cook_C_17_ResistHot",
		"Item_Cook_C_17_ResistCold",
		"Item_Cook_C_17_LifeMaxUp",
	}

	locale := cooking.LocaleDict{
		"Material": {
			"Item_Fruit_A_Name":        {"USen": "Apple"},
			"Item_Mushroom_E_Name":     {"USen": "Hearty Truffle"},
			"Item_Enemy_Extract_Name":  {"USen": "Monster Extract"},
			"Item_Meat_01_Name":        {"USen": "Raw Meat"},
			"Item_Fairy_Name":          {"USen": "Fairy"},
			"Item_Mushroom_Chill_Name": {"USen": "Chillshroom"},
			"Item_Mushroom_Sun_Name":   {"USen": "Sunshroom"},
			"Item_Monster_Guts_Name":   {"USen": "Monster Guts"},
			"Item_Fruit_RockHard_Name": {"USen": "Rock-Hard Food Base"},
			"Item_Fruit_A_Caption":     {"USen": "An apple."},
		},
		"Meal": {
			"Item_Cook_A_01_Name": {"USen": "Fruit Dish"},
			"Item_Cook_A_02_Name": {"USen": "Dish"},
			"Item_Cook_A_05_Name": {"USen": "Monster Stew"},
			"Item_Cook_R_01_Name": {"USen": "Meat Skewer"},
			"Item_Cook_B_17_Name": {"USen": "Fairy Tonic"},
			"Item_Cook_O_01_Name": {"USen": "Dubious Food"},
			"Item_Cook_O_02_Name": {"USen": "Rock-Hard Food"},
			"Item_Cook_C_17_Name": {"USen": "Elixir"},
		},
		"Effect": {
			"LifeMaxUp_Name": {"USen": "Hearty"},
		},
		"App": {
			"FullRecovery_Name": {"USen": "Full Recovery"},
		},
		"Buff": {
			"LifeMaxUp": {"USen": "Hearty"},
		},
	}

	files := map[string]any{
		"SystemData.json":       system,
		"MaterialData.json":     materials,
		"EffectData.json":       effects,
		"RecipeData.json":       recipes,
		"SingleRecipeData.json": singleRecipes,
		"RecipeCardData.json":   recipeCards,
		"LanguageData.json":     locale,
	}

	mapFS := fstest.MapFS{}
	for name, v := range files {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshaling fixture %s: %w", name, err)
		}
		mapFS[name] = &fstest.MapFile{Data: data}
	}

	return catalog.LoadFS(mapFS)
}
