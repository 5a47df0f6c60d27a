package agent

import (
	"context"
	"fmt"

	"cat-breed-info/internal/domain/breeds"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

const BreedToolName = "get-cat-breed-info"

// BreedTool devuelve el resumen legible de una raza, pensado para consumo de un LLM.
type BreedTool struct {
	svc *breeds.Service
}

func NewBreedTool(svc *breeds.Service) *BreedTool {
	return &BreedTool{svc: svc}
}

// Describe devuelve el resumen de la raza, o ok=false si no existe.
// Los errores de fetch se devuelven tal cual.
func (t *BreedTool) Describe(ctx context.Context, breedName string) (string, bool, error) {
	b, ok, err := t.svc.Lookup(ctx, breedName)
	if err != nil || !ok {
		return "", false, err
	}
	return breeds.Summarize(b), true, nil
}

func (t *BreedTool) Definition() mcp.Tool {
	return mcp.NewTool(BreedToolName,
		mcp.WithDescription("Returns a human-readable summary (origin, temperament, life span, weight, description) for a cat breed from TheCatAPI. Partial names are allowed."),
		mcp.WithString("breed_name",
			mcp.Required(),
			mcp.Description("Name of the cat breed, e.g. 'Siamese'"),
		),
	)
}

func (t *BreedTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := cast.ToString(req.GetArguments()["breed_name"])

	summary, ok, err := t.Describe(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no breed found for %q", name)), nil
	}
	return mcp.NewToolResultText(summary), nil
}
