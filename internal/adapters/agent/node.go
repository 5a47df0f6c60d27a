package agent

import (
	"context"
	"encoding/json"
	"strings"

	"cat-breed-info/internal/domain/breeds"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

const BreedNodeName = "cat-breed-node"

// NodeResult es la salida estructurada del nodo.
type NodeResult struct {
	Found     bool           `json:"found"`
	BreedName string         `json:"breed_name"`
	Summary   *string        `json:"summary"`
	Raw       *breeds.Record `json:"raw"`
	Error     string         `json:"error,omitempty"`
}

// BreedNode es un nodo para grafos de agentes: recibe un map de inputs y devuelve
// un resultado estructurado.
type BreedNode struct {
	svc *breeds.Service
}

func NewBreedNode(svc *breeds.Service) *BreedNode {
	return &BreedNode{svc: svc}
}

// Run lee "breed_name" (o "breed" como fallback). Los errores de fetch se devuelven como error.
func (n *BreedNode) Run(ctx context.Context, inputs map[string]any) (NodeResult, error) {
	name := inputName(inputs)
	if name == "" {
		return NodeResult{Error: "No breed_name provided"}, nil
	}

	b, ok, err := n.svc.Lookup(ctx, name)
	if err != nil {
		return NodeResult{}, err
	}
	if !ok {
		return NodeResult{BreedName: name}, nil
	}

	found, _ := b.Name()
	summary := breeds.Summarize(b)
	return NodeResult{
		Found:     true,
		BreedName: found,
		Summary:   &summary,
		Raw:       &b,
	}, nil
}

func (n *BreedNode) Definition() mcp.Tool {
	return mcp.NewTool(BreedNodeName,
		mcp.WithDescription("Looks up a cat breed and returns JSON with found, breed_name, summary and the raw TheCatAPI record."),
		mcp.WithString("breed_name", mcp.Description("Name of the cat breed")),
		mcp.WithString("breed", mcp.Description("Alias of breed_name")),
	)
}

func (n *BreedNode) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := n.Run(ctx, req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}

func inputName(inputs map[string]any) string {
	for _, key := range []string{"breed_name", "breed"} {
		if v := strings.TrimSpace(cast.ToString(inputs[key])); v != "" {
			return v
		}
	}
	return ""
}
