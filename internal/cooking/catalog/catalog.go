// Package catalog loads the immutable data tables the cooking engine
// resolves recipes against, and builds the lookup indexes the pipeline
// stages need.
package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// CompiledRecipe is a Recipe whose pattern expression has already been
// split into an AND-of-OR literal grid, so matching is a cheap set-cover
// check instead of repeated string splitting.
type CompiledRecipe struct {
	Recipe   cooking.Recipe
	AndParts [][]string
}

// Catalog is the full set of immutable data tables plus the indexes the
// engine needs, built once at load time.
type Catalog struct {
	System          cooking.SystemData
	Materials       map[string]cooking.Material
	Effects         map[string]cooking.Effect
	EffectOrder     []string
	Recipes         []CompiledRecipe
	SingleRecipes   []CompiledRecipe
	RecipeCardTable []string
	Locale          cooking.LocaleDict

	// nameIndex maps a display name (in any configured language) to an
	// internal actor id.
	nameIndex map[string]string
}

// ResolveName maps a display name to an actor id. ok is false if the name
// is not present in the locale index.
func (c *Catalog) ResolveName(name string) (string, bool) {
	actor, ok := c.nameIndex[name]
	return actor, ok
}

// Material looks up a material by actor id. The name index is built from
// the locale's Material entries, not from the material table, so an id
// produced by ResolveName can still be missing here.
func (c *Catalog) Material(actorName string) (cooking.Material, bool) {
	m, ok := c.Materials[actorName]
	return m, ok
}

// Effect looks up an effect definition by its type id.
func (c *Catalog) Effect(effectType string) (cooking.Effect, bool) {
	e, ok := c.Effects[effectType]
	return e, ok
}

// fileSet names the JSON files expected at the root of a catalog source.
type fileSet struct {
	System        cooking.SystemData
	Materials     []cooking.Material
	Effects       []cooking.Effect
	Recipes       []cooking.Recipe
	SingleRecipes []cooking.Recipe
	RecipeCards   []string
	Locale        cooking.LocaleDict
}

const (
	fileSystemData   = "SystemData.json"
	fileMaterialData = "MaterialData.json"
	fileEffectData   = "EffectData.json"
	fileRecipeData   = "RecipeData.json"
	fileSingleRecipe = "SingleRecipeData.json"
	fileRecipeCard   = "RecipeCardData.json"
	fileLanguageData = "LanguageData.json"
)

// LoadFS loads a catalog from the given filesystem, reading the seven
// canonical JSON tables from its root.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var raw fileSet

	if err := readJSON(fsys, fileSystemData, &raw.System); err != nil {
		return nil, fmt.Errorf("loading %s: %w", fileSystemData, err)
	}
	if err := readJSON(fsys, fileMaterialData, &raw.Materials); err != nil {
		return nil, fmt.Errorf("loading %s: %w", fileMaterialData, err)
	}
	if err := readJSON(fsys, fileEffectData, &raw.Effects); err != nil {
		return nil, fmt.Errorf("loading %s: %w", fileEffectData, err)
	}
	if err := readJSON(fsys, fileRecipeData, &raw.Recipes); err != nil {
		return nil, fmt.Errorf("loading %s: %w", fileRecipeData, err)
	}
	if err := readJSON(fsys, fileSingleRecipe, &raw.SingleRecipes); err != nil {
		return nil, fmt.Errorf("loading %s: %w", fileSingleRecipe, err)
	}
	if err := readJSON(fsys, fileRecipeCard, &raw.RecipeCards); err != nil {
		return nil, fmt.Errorf("loading %s: %w", fileRecipeCard, err)
	}
	if err := readJSON(fsys, fileLanguageData, &raw.Locale); err != nil {
		return nil, fmt.Errorf("loading %s: %w", fileLanguageData, err)
	}

	return build(raw)
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	return LoadFS(os.DirFS(filepath.Clean(dir)))
}

func readJSON(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return cooking.InvalidCatalogError{Reason: fmt.Sprintf("missing table %s: %v", name, err)}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return cooking.InvalidCatalogError{Reason: fmt.Sprintf("malformed table %s: %v", name, err)}
	}
	return nil
}

// build assembles a Catalog from raw decoded tables, validating required
// fields and constructing every index the pipeline needs.
func build(raw fileSet) (*Catalog, error) {
	if raw.System.FailActorName == "" {
		return nil, cooking.InvalidCatalogError{Reason: "SystemData.FailActorName is required"}
	}
	if raw.System.RockHardActorName == "" {
		raw.System.RockHardActorName = cooking.ActorRockHardFood
	}
	if len(raw.Materials) == 0 {
		return nil, cooking.InvalidCatalogError{Reason: "MaterialData is empty"}
	}
	if len(raw.Effects) == 0 {
		return nil, cooking.InvalidCatalogError{Reason: "EffectData is empty"}
	}
	if len(raw.Recipes) == 0 {
		return nil, cooking.InvalidCatalogError{Reason: "RecipeData is empty"}
	}
	if len(raw.SingleRecipes) == 0 {
		return nil, cooking.InvalidCatalogError{Reason: "SingleRecipeData is empty"}
	}

	c := &Catalog{
		System:          raw.System,
		Materials:       make(map[string]cooking.Material, len(raw.Materials)),
		Effects:         make(map[string]cooking.Effect, len(raw.Effects)),
		EffectOrder:     make([]string, 0, len(raw.Effects)),
		RecipeCardTable: raw.RecipeCards,
		Locale:          raw.Locale,
		nameIndex:       make(map[string]string),
	}

	for _, m := range raw.Materials {
		c.Materials[m.ActorName] = m
	}
	for _, e := range raw.Effects {
		c.Effects[e.EffectType] = e
		c.EffectOrder = append(c.EffectOrder, e.EffectType)
	}

	for _, r := range raw.Recipes {
		c.Recipes = append(c.Recipes, CompiledRecipe{Recipe: r, AndParts: compileAndOr(r.Recipe)})
	}
	for _, r := range raw.SingleRecipes {
		c.SingleRecipes = append(c.SingleRecipes, CompiledRecipe{Recipe: r, AndParts: compileAndOr(r.Recipe)})
	}

	c.buildNameIndex()

	return c, nil
}

// compileAndOr splits a recipe pattern ("a + b or c + d") into an AND-of-OR
// literal grid. Single-recipe patterns have no " + " and yield one AND-part.
func compileAndOr(pattern string) [][]string {
	andParts := strings.Split(pattern, " + ")
	grid := make([][]string, 0, len(andParts))
	for _, part := range andParts {
		grid = append(grid, strings.Split(part, " or "))
	}
	return grid
}

// buildNameIndex populates the display-name -> actor-id index from
// Locale.Material, skipping _Caption keys and empty translations.
func (c *Catalog) buildNameIndex() {
	materialEntries, ok := c.Locale["Material"]
	if !ok {
		return
	}
	for key, byLang := range materialEntries {
		if strings.HasSuffix(key, "_Caption") {
			continue
		}
		actorName := strings.TrimSuffix(key, "_Name")
		for _, name := range byLang {
			if name == "" {
				continue
			}
			c.nameIndex[name] = actorName
		}
	}
}
