package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsned/totk-cooking-server/internal/cooking/store"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

func writeCatalogDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"SystemData.json": `{
			"FailActorName": "Item_Cook_O_01",
			"RockHardActorName": "Item_Cook_O_02",
			"LifeRecoverRate": 1.0
		}`,
		"MaterialData.json": `[
			{"ActorName": "Item_Fruit_A", "CookTag": "CookFruit", "HitPointRecover": 4, "CureEffectType": "None", "SellingPrice": 2}
		]`,
		"EffectData.json":       `[{"EffectType": "LifeRecover", "MaxLv": 160, "SuperSuccessAddVolume": 20}]`,
		"RecipeData.json":       `[{"ResultActorName": "Item_Cook_O_01", "PictureBookNum": 145, "Recipe": "CookEnemy or CookInsect"}]`,
		"SingleRecipeData.json": `[{"ResultActorName": "Item_Cook_A_01", "PictureBookNum": 1, "Recipe": "Item_Fruit_A or CookFruit"}]`,
		"RecipeCardData.json":   `[]`,
		"LanguageData.json":     `{"Material": {"Item_Fruit_A_Name": {"USen": "Apple"}}}`,
	}
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
	}
	return dir
}

func openTestDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.OpenAndInit(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSyncMetadata_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	value, err := db.GetSyncMetadata(ctx, "catalog_last_sync")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, db.SetSyncMetadata(ctx, "catalog_last_sync", "2026-07-29T00:00:00Z"))

	value, err = db.GetSyncMetadata(ctx, "catalog_last_sync")
	require.NoError(t, err)
	assert.Equal(t, "2026-07-29T00:00:00Z", value)
}

func TestCookLogStore_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	logs := store.NewCookLogStore(db)

	require.NoError(t, logs.Record(ctx, "Item_Fruit_A", cooking.CookResult{
		ActorName: "Item_Cook_A_01", MealName: "Fruit Dish", SellPrice: "2 Rupees", CriticalRate: "0%",
	}))
	require.NoError(t, logs.Record(ctx, "Item_Meat_01", cooking.CookResult{
		ActorName: "Item_Cook_R_01", MealName: "Meat Skewer", SellPrice: "6 Rupees", CriticalRate: "5%",
	}))

	entries, err := logs.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Meat Skewer", entries[0].MealName, "most recent entry comes first")
	assert.Equal(t, "Fruit Dish", entries[1].MealName)
}

func TestCookLogStore_RecentRespectsLimit(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	logs := store.NewCookLogStore(db)

	for i := 0; i < 5; i++ {
		require.NoError(t, logs.Record(ctx, "Item_Fruit_A", cooking.CookResult{MealName: "Fruit Dish"}))
	}

	entries, err := logs.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCatalogStore_ImportThenLoadRoundTrips(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	catalogs := store.NewCatalogStore(db)

	imported, err := catalogs.ImportDir(ctx, writeCatalogDir(t))
	require.NoError(t, err)
	assert.Len(t, imported.Materials, 1)

	reloaded, err := catalogs.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, imported.System.FailActorName, reloaded.System.FailActorName)

	actor, ok := reloaded.ResolveName("Apple")
	require.True(t, ok)
	assert.Equal(t, "Item_Fruit_A", actor)
}

func TestCatalogStore_LoadBeforeImportReturnsNil(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	catalogs := store.NewCatalogStore(db)

	cat, err := catalogs.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, cat)
}
