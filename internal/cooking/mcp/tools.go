package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rsned/totk-cooking-server/internal/cooking/cache"
	"github.com/rsned/totk-cooking-server/internal/cooking/engine"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// ToolDefinition describes an MCP tool.
type ToolDefinition struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	InputSchema JSONSchema `json:"inputSchema"`
}

// JSONSchema is a simplified JSON Schema representation.
type JSONSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties,omitempty"`
	Required   []string            `json:"required,omitempty"`
}

// Property describes a schema property.
type Property struct {
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	Default     any       `json:"default,omitempty"`
	Minimum     *float64  `json:"minimum,omitempty"`
	Maximum     *float64  `json:"maximum,omitempty"`
	Items       *Property `json:"items,omitempty"`
}

// GetToolDefinitions returns all tool definitions this server exposes.
func GetToolDefinitions() []ToolDefinition {
	return []ToolDefinition{cookTool(), cookHistoryTool(), catalogStatsTool()}
}

func cookTool() ToolDefinition {
	return ToolDefinition{
		Name: "cook",
		Description: "Resolve the dish produced by cooking 1-5 ingredients, by their display " +
			"names, reproducing the in-game cooking algorithm.",
		InputSchema: JSONSchema{
			Type: "object",
			Properties: map[string]Property{
				"materials": {
					Type:        "array",
					Description: "Ordered ingredient display names, 1 to 5 entries",
					Items:       &Property{Type: "string"},
				},
				"lang": {
					Type:        "string",
					Description: "Locale code to render the result in",
					Default:     "USen",
				},
			},
			Required: []string{"materials"},
		},
	}
}

func cookHistoryTool() ToolDefinition {
	return ToolDefinition{
		Name:        "cook_history",
		Description: "List the most recent cook() invocations recorded by this server.",
		InputSchema: JSONSchema{
			Type: "object",
			Properties: map[string]Property{
				"limit": {
					Type:        "integer",
					Description: "Maximum number of entries to return",
					Default:     20,
				},
			},
		},
	}
}

func catalogStatsTool() ToolDefinition {
	return ToolDefinition{
		Name:        "catalog_stats",
		Description: "Report counts of loaded materials, effects, recipes, and single recipes.",
		InputSchema: JSONSchema{Type: "object"},
	}
}

// CookParams are the parameters for the cook tool.
type CookParams struct {
	Materials []string `json:"materials"`
	Lang      string   `json:"lang"`
}

func (s *Server) toolCook(ctx context.Context, args json.RawMessage) (cooking.CookResult, error) {
	var p CookParams
	if err := json.Unmarshal(args, &p); err != nil {
		return cooking.CookResult{}, fmt.Errorf("invalid cook params: %w", err)
	}
	if p.Lang == "" {
		p.Lang = "USen"
	}

	sig := cache.Signature(p.Materials, p.Lang)
	if s.cache != nil {
		if result, ok := s.cache.Get(sig); ok {
			return result, nil
		}
	}

	result, err := engine.Cook(s.cat, p.Materials, p.Lang)
	if err != nil {
		var invalid cooking.InvalidMaterialError
		var empty cooking.EmptyMaterialListError
		if errors.As(err, &invalid) || errors.As(err, &empty) {
			return cooking.CookResult{}, err
		}
		return cooking.CookResult{}, fmt.Errorf("cooking: %w", err)
	}

	if s.cache != nil {
		s.cache.Put(sig, result)
	}

	if s.logs != nil {
		logSig := strings.Join(p.Materials, ",")
		if err := s.logs.Record(ctx, logSig, result); err != nil {
			s.logger.Warn("failed to record cook history", "error", err)
		}
	}

	return result, nil
}

// CookHistoryParams are the parameters for the cook_history tool.
type CookHistoryParams struct {
	Limit int `json:"limit"`
}

func (s *Server) toolCookHistory(ctx context.Context, args json.RawMessage) (any, error) {
	var p CookHistoryParams
	if len(args) > 0 {
		if err := json.Unmarshal(args, &p); err != nil {
			return nil, fmt.Errorf("invalid cook_history params: %w", err)
		}
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}

	if s.logs == nil {
		return []any{}, nil
	}

	entries, err := s.logs.Recent(ctx, p.Limit)
	if err != nil {
		return nil, fmt.Errorf("querying cook history: %w", err)
	}
	return entries, nil
}

// CatalogStatsResult reports catalog table sizes.
type CatalogStatsResult struct {
	Materials     int `json:"materials"`
	Effects       int `json:"effects"`
	Recipes       int `json:"recipes"`
	SingleRecipes int `json:"single_recipes"`
}

func (s *Server) toolCatalogStats(_ context.Context, _ json.RawMessage) (any, error) {
	return CatalogStatsResult{
		Materials:     len(s.cat.Materials),
		Effects:       len(s.cat.Effects),
		Recipes:       len(s.cat.Recipes),
		SingleRecipes: len(s.cat.SingleRecipes),
	}, nil
}
